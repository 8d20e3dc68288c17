package modify_appointment

import "errors"

var (
	// ErrUserNotIdentified возвращается, когда абонент еще не назвал номер телефона
	ErrUserNotIdentified = errors.New("modify_appointment: user not identified")

	// ErrNoAppointments возвращается, когда у абонента нет активных записей
	ErrNoAppointments = errors.New("modify_appointment: no active appointments")

	// ErrAppointmentAmbiguous возвращается, когда по фразе нельзя выбрать одну запись
	ErrAppointmentAmbiguous = errors.New("modify_appointment: appointment is ambiguous")

	// ErrAppointmentNotFound возвращается, когда запись исчезла до переноса
	ErrAppointmentNotFound = errors.New("modify_appointment: appointment not found")

	// ErrInvalidDate возвращается, когда новую дату не удалось распознать
	ErrInvalidDate = errors.New("modify_appointment: invalid date")

	// ErrInvalidTime возвращается, когда новое время не удалось распознать
	ErrInvalidTime = errors.New("modify_appointment: invalid time")

	// ErrInvalidSlot возвращается, когда новый слот не разрешен политикой расписания
	ErrInvalidSlot = errors.New("modify_appointment: slot is not offered")

	// ErrSlotNotAvailable возвращается, когда новый слот занят другой записью
	ErrSlotNotAvailable = errors.New("modify_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("modify_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("modify_appointment: internal error")
)
