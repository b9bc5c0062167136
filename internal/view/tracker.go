// Package view отслеживает последний запрос каждой сессии, чтобы
// медленный старый ответ не перетирал результат более нового запроса.
package view

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scope - независимая часть экрана (карта области, панель ближайших)
type Scope string

const (
	ScopeArea   Scope = "area"
	ScopeNearby Scope = "nearby"
)

// Token - метка запроса
type Token struct {
	SessionID string
	Scope     Scope
	ID        uuid.UUID
}

type entry struct {
	current  uuid.UUID
	lastSeen time.Time
}

type key struct {
	session string
	scope   Scope
}

// Tracker хранит текущую метку для каждой пары (сессия, область)
type Tracker struct {
	mu      sync.Mutex
	entries map[key]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewTracker создает трекер; сессии без запросов дольше ttl забываются
func NewTracker(ttl time.Duration) *Tracker {
	return &Tracker{
		entries: make(map[key]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Begin помечает новый запрос сессии. Все ранее выданные метки этой области устаревают.
// Пустой sessionID означает запрос без отслеживания.
func (t *Tracker) Begin(sessionID string, scope Scope) Token {
	token := Token{SessionID: sessionID, Scope: scope, ID: uuid.New()}
	if sessionID == "" {
		return token
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.evictLocked(now)
	t.entries[key{session: sessionID, scope: scope}] = entry{current: token.ID, lastSeen: now}
	return token
}

// IsCurrent сообщает, остается ли запрос последним для своей сессии
func (t *Tracker) IsCurrent(token Token) bool {
	if token.SessionID == "" {
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key{session: token.SessionID, scope: token.Scope}]
	if !ok {
		// сессия вытеснена по ttl, новее запроса не было
		return true
	}
	return e.current == token.ID
}

// Len - число отслеживаемых пар (сессия, область)
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *Tracker) evictLocked(now time.Time) {
	if t.ttl <= 0 {
		return
	}
	for k, e := range t.entries {
		if now.Sub(e.lastSeen) > t.ttl {
			delete(t.entries, k)
		}
	}
}
