package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerRegistrar_ExactRequiresPermission(t *testing.T) {
	r := NewTimerRegistrar(false, nil)
	err := r.Register("r1", 7, 0, true)
	assert.ErrorIs(t, err, ErrExactUnavailable)

	// неточный режим доступен всегда
	assert.NoError(t, r.Register("r1", 7, 0, false))
	assert.Equal(t, []string{"r1"}, r.Pending())
	r.Cancel("r1")
	assert.Len(t, r.Pending(), 0)
}

func TestTimerRegistrar_ReplaceKeepsSingleTimer(t *testing.T) {
	r := NewTimerRegistrar(true, nil)
	assert.NoError(t, r.Register("r1", 7, 0, true))
	assert.NoError(t, r.Register("r1", 21, 0, true))
	assert.Len(t, r.Pending(), 1)
	r.Cancel("r1")
}

func TestTimerRegistrar_FiresAndRearms(t *testing.T) {
	var fired atomic.Int32
	r := NewTimerRegistrar(true, func(id string) { fired.Add(1) })

	// время «сейчас» прямо перед срабатыванием, чтобы не ждать сутки
	base := time.Date(2025, 3, 2, 6, 59, 59, 900_000_000, time.UTC)
	r.now = func() time.Time { return base }

	assert.NoError(t, r.Register("r1", 7, 0, true))

	assert.Eventually(t, func() bool { return fired.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)
	// после срабатывания таймер перевзведён на следующие сутки
	assert.Equal(t, []string{"r1"}, r.Pending())
	r.Cancel("r1")
}

func TestTimerRegistrar_CancelledTimerDoesNotFire(t *testing.T) {
	var fired atomic.Int32
	r := NewTimerRegistrar(true, func(id string) { fired.Add(1) })

	base := time.Date(2025, 3, 2, 6, 59, 59, 900_000_000, time.UTC)
	r.now = func() time.Time { return base }

	assert.NoError(t, r.Register("r1", 7, 0, true))
	r.Cancel("r1")

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}
