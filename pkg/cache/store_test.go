package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestStoreGetSet(t *testing.T) {
	s := New[string]()
	_, ok := s.Get("missing")
	require.False(t, ok)

	s.Set("k", "v")
	got, ok := s.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", got)
}

func TestStoreTTLExpiry(t *testing.T) {
	clk := newFakeClock()
	s := New[int](testOptions(clk)...)

	s.SetTTL("k", 7, time.Minute)

	// Live strictly before the deadline and at the deadline itself.
	clk.Advance(59 * time.Second)
	got, ok := s.Get("k")
	require.True(t, ok)
	require.Equal(t, 7, got)

	clk.Advance(time.Second)
	_, ok = s.Get("k")
	require.True(t, ok, "entry should still be live at exactly now+ttl")

	// A miss strictly after the deadline.
	clk.Advance(time.Nanosecond)
	_, ok = s.Get("k")
	require.False(t, ok)

	// Expired entry was lazily evicted.
	require.Equal(t, 0, s.Len())
}

func TestStoreInvalidateAll(t *testing.T) {
	clk := newFakeClock()
	s := New[int](testOptions(clk)...)

	s.Set("a", 1)
	s.Set("b", 2)
	require.Equal(t, 2, s.Len())

	s.InvalidateAll()
	_, ok := s.Get("a")
	require.False(t, ok)
	_, ok = s.Get("b")
	require.False(t, ok)
	require.Equal(t, 0, s.Len())
}

func TestStoreLastWriterWins(t *testing.T) {
	s := New[int]()
	s.Set("k", 1)
	s.Set("k", 2)
	got, ok := s.Get("k")
	require.True(t, ok)
	require.Equal(t, 2, got)
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("k%d", j%10)
				s.Set(key, i)
				if v, ok := s.Get(key); ok {
					_ = v
				}
				if j%50 == 0 {
					s.InvalidateAll()
				}
			}
		}(i)
	}
	wg.Wait()
}

func testOptions(clk *fakeClock) []Option {
	return []Option{WithTTL(time.Minute), WithClock(clk.Now)}
}
