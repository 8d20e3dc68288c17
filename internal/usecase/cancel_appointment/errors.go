package cancel_appointment

import "errors"

var (
	// ErrUserNotIdentified возвращается, когда абонент еще не назвал номер телефона
	ErrUserNotIdentified = errors.New("cancel_appointment: user not identified")

	// ErrNoAppointments возвращается, когда у абонента нет активных записей
	ErrNoAppointments = errors.New("cancel_appointment: no active appointments")

	// ErrAppointmentAmbiguous возвращается, когда по фразе нельзя выбрать одну запись
	ErrAppointmentAmbiguous = errors.New("cancel_appointment: appointment is ambiguous")

	// ErrCancelFailed возвращается, когда запись не удалось отменить
	ErrCancelFailed = errors.New("cancel_appointment: cancel failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_appointment: internal error")
)
