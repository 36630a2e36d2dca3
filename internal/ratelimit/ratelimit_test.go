package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_Check(t *testing.T) {
	t.Run("sixth attempt in window is denied", func(t *testing.T) {
		l := NewLimiter(NewMemoryStore(), time.Minute, 5)

		for i := 0; i < 5; i++ {
			assert.True(t, l.Check("1.2.3.4"), "attempt %d should be allowed", i+1)
		}
		assert.False(t, l.Check("1.2.3.4"), "sixth attempt should be denied")
		assert.False(t, l.Check("1.2.3.4"), "further attempts stay denied")
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		l := NewLimiter(NewMemoryStore(), time.Minute, 5)
		current := time.Now()
		l.now = func() time.Time { return current }

		for i := 0; i < 6; i++ {
			l.Check("1.2.3.4")
		}
		assert.False(t, l.Check("1.2.3.4"))

		current = current.Add(time.Minute)
		assert.True(t, l.Check("1.2.3.4"), "attempts allowed again after the window elapses")
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := NewLimiter(NewMemoryStore(), time.Minute, 5)

		for i := 0; i < 6; i++ {
			l.Check("1.2.3.4")
		}
		assert.False(t, l.Check("1.2.3.4"))
		assert.True(t, l.Check("5.6.7.8"), "another client's counter is unaffected")
	})

	t.Run("concurrent clients", func(t *testing.T) {
		l := NewLimiter(NewMemoryStore(), time.Minute, 5)

		var wg sync.WaitGroup
		for c := 0; c < 20; c++ {
			wg.Add(1)
			go func(c int) {
				defer wg.Done()
				key := fmt.Sprintf("10.0.0.%d", c)
				allowed := 0
				for i := 0; i < 10; i++ {
					if l.Check(key) {
						allowed++
					}
				}
				assert.Equal(t, 5, allowed, "each key gets exactly max allowed attempts")
			}(c)
		}
		wg.Wait()
	})
}

func TestMemoryStore_Incr(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()

	assert.Equal(t, 1, s.Incr("k", now, time.Minute))
	assert.Equal(t, 2, s.Incr("k", now.Add(time.Second), time.Minute))
	assert.Equal(t, 3, s.Incr("k", now.Add(2*time.Second), time.Minute))

	// a fresh key starts its own window
	assert.Equal(t, 1, s.Incr("other", now, time.Minute))

	// expiry restarts the counter at 1
	assert.Equal(t, 1, s.Incr("k", now.Add(time.Minute), time.Minute))
}
