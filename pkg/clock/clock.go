package clock

import "time"

// Real возвращает текущее системное время
type Real struct{}

// Now возвращает текущее время
func (Real) Now() time.Time {
	return time.Now()
}

// Fixed всегда возвращает один и тот же момент, используется в тестах
type Fixed struct {
	At time.Time
}

// Now возвращает зафиксированное время
func (f Fixed) Now() time.Time {
	return f.At
}
