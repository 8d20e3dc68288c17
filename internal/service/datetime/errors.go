package datetime

import "errors"

var (
	// ErrDateParse возвращается, когда фраза не распознана как дата
	ErrDateParse = errors.New("datetime: could not parse date")

	// ErrTimeParse возвращается, когда фраза не распознана как время
	ErrTimeParse = errors.New("datetime: could not parse time")
)
