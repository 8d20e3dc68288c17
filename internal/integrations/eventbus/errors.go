package eventbus

import "errors"

var (
	// ErrEncode возвращается, если событие не удалось сериализовать
	ErrEncode = errors.New("eventbus: failed to encode event")

	// ErrPublish возвращается при ошибке записи в kafka
	ErrPublish = errors.New("eventbus: failed to publish event")
)
