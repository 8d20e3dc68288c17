package book_appointment

import "errors"

var (
	// ErrUserNotIdentified возвращается, когда абонент еще не назвал номер телефона
	ErrUserNotIdentified = errors.New("book_appointment: user not identified")

	// ErrInvalidDate возвращается, когда дату не удалось распознать
	ErrInvalidDate = errors.New("book_appointment: invalid date")

	// ErrInvalidTime возвращается, когда время не удалось распознать
	ErrInvalidTime = errors.New("book_appointment: invalid time")

	// ErrInvalidSlot возвращается, когда слот не разрешен политикой расписания
	ErrInvalidSlot = errors.New("book_appointment: slot is not offered")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("book_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
