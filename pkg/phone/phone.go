package phone

import (
	"errors"
	"strings"
	"unicode"
)

const (
	minDigits = 7
	maxDigits = 15
)

var (
	// ErrEmpty номер не передан
	ErrEmpty = errors.New("phone number is required")

	// ErrTooShort номер содержит меньше 7 цифр
	ErrTooShort = errors.New("phone number is too short")

	// ErrTooLong номер содержит больше 15 цифр
	ErrTooLong = errors.New("phone number is too long")
)

// Normalize оставляет в номере только цифры
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate проверяет количество цифр в номере (7-15, E.164)
func Validate(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmpty
	}
	digits := Normalize(raw)
	switch {
	case len(digits) < minDigits:
		return ErrTooShort
	case len(digits) > maxDigits:
		return ErrTooLong
	}
	return nil
}
