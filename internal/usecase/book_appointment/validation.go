package book_appointment

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.DatePhrase) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if strings.TrimSpace(req.TimePhrase) == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidTime)
	}

	return nil
}

// resolveName возвращает имя из запроса или имя, известное по профилю
func resolveName(req *Request) (string, error) {
	if name := strings.TrimSpace(req.UserName); name != "" {
		return name, nil
	}
	if name := strings.TrimSpace(req.Caller.DisplayName()); name != "" {
		return name, nil
	}
	return "", fmt.Errorf("%w: user name is required", ErrInvalidInput)
}
