package identify_user

import "errors"

var (
	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("identify_user: invalid phone number")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("identify_user: internal error")
)
