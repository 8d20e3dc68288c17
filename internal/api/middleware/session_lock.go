package middleware

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
)

// SessionLocker выдает мьютекс на каждую сессию
// Записи удаляются, когда мьютекс никто не держит и не ждет
type SessionLocker struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewSessionLocker() *SessionLocker {
	return &SessionLocker{locks: make(map[string]*sessionLock)}
}

// Lock захватывает мьютекс сессии и возвращает функцию освобождения
func (l *SessionLocker) Lock(sessionID string) func() {
	l.mu.Lock()
	lock, ok := l.locks[sessionID]
	if !ok {
		lock = &sessionLock{}
		l.locks[sessionID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, sessionID)
		}
		l.mu.Unlock()
	}
}

// Len количество сессий с активными вызовами
func (l *SessionLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// SessionSerializer выполняет вызовы инструментов одной сессии строго по очереди
// Разные сессии обрабатываются параллельно
func SessionSerializer(locker *SessionLocker, varName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := mux.Vars(r)[varName]
			if sessionID == "" {
				next.ServeHTTP(w, r)
				return
			}

			unlock := locker.Lock(sessionID)
			defer unlock()

			next.ServeHTTP(w, r)
		})
	}
}
