package fetch_slots

import "errors"

var (
	// ErrNoSlotsAvailable возвращается, когда в горизонте записи нет свободных слотов
	ErrNoSlotsAvailable = errors.New("fetch_slots: no slots available")
)
