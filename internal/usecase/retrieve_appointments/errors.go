package retrieve_appointments

import "errors"

var (
	// ErrUserNotIdentified возвращается, когда абонент еще не назвал номер телефона
	ErrUserNotIdentified = errors.New("retrieve_appointments: user not identified")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("retrieve_appointments: internal error")
)
