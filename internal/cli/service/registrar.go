package service

import (
	"sync"
	"time"
)

// TimerRegistrar — регистратор напоминаний на таймерах процесса.
// Используется в режиме notify run; в мобильной обёртке его место
// занимает платформенный плагин уведомлений.
type TimerRegistrar struct {
	fire       func(id string)
	allowExact bool
	now        func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
}

var _ Registrar = (*TimerRegistrar)(nil)

// NewTimerRegistrar создаёт регистратор. fire вызывается при срабатывании;
// allowExact=false имитирует отсутствие разрешения на точное планирование.
func NewTimerRegistrar(allowExact bool, fire func(id string)) *TimerRegistrar {
	return &TimerRegistrar{
		fire:       fire,
		allowExact: allowExact,
		now:        time.Now,
		timers:     make(map[string]*time.Timer),
	}
}

// Register ставит ежедневное срабатывание на hour:minute.
// Неточный режим откладывает срабатывание вперёд до границы 15 минут.
func (t *TimerRegistrar) Register(id string, hour, minute int, exact bool) error {
	if exact && !t.allowExact {
		return ErrExactUnavailable
	}

	delay := t.untilNext(hour, minute)
	if !exact {
		const step = 15 * time.Minute
		if rem := delay % step; rem != 0 {
			delay += step - rem
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if old, ok := t.timers[id]; ok {
		old.Stop()
	}
	t.timers[id] = time.AfterFunc(delay, func() { t.fired(id, hour, minute, exact) })
	return nil
}

// Cancel снимает регистрацию.
func (t *TimerRegistrar) Cancel(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
}

// Pending возвращает идентификаторы активных регистраций.
func (t *TimerRegistrar) Pending() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]string, 0, len(t.timers))
	for id := range t.timers {
		ids = append(ids, id)
	}
	return ids
}

// fired вызывает обработчик и перевзводит таймер на следующие сутки.
func (t *TimerRegistrar) fired(id string, hour, minute int, exact bool) {
	t.mu.Lock()
	_, stillRegistered := t.timers[id]
	t.mu.Unlock()
	if !stillRegistered {
		return
	}
	if t.fire != nil {
		t.fire(id)
	}
	_ = t.Register(id, hour, minute, exact)
}

// untilNext считает задержку до ближайшего hour:minute.
func (t *TimerRegistrar) untilNext(hour, minute int) time.Duration {
	now := t.now()
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
