package appointments

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrPolicyViolation возвращается, когда слот не разрешен политикой расписания
	ErrPolicyViolation = errors.New("appointments: slot violates scheduling policy")

	// ErrSlotConflict возвращается, когда слот уже занят активной записью
	ErrSlotConflict = errors.New("appointments: slot already booked")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("appointments: store error")
)
