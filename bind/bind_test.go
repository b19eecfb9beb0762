package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetNotifiesListeners(t *testing.T) {
	b := New(0)

	var got []int
	b.Listen(func(v int) {
		got = append(got, v)
	})

	b.Set(1)
	b.Set(2)

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, b.Get())
}

func TestSetSuppressesEqualValues(t *testing.T) {
	b := New("a")

	calls := 0
	b.Listen(func(string) {
		calls++
	})

	b.Set("a")
	assert.Equal(t, 0, calls)

	b.Set("b")
	b.Set("b")
	assert.Equal(t, 1, calls)
}

func TestNotifyIsUnconditional(t *testing.T) {
	b := New("a")

	calls := 0
	b.Listen(func(string) {
		calls++
	})

	b.Notify("a")
	b.Notify("a")

	assert.Equal(t, 2, calls)
}

func TestBindCallsImmediately(t *testing.T) {
	b := New(7)

	var got []int
	b.Bind(func(v int) {
		got = append(got, v)
	})
	b.Set(8)

	assert.Equal(t, []int{7, 8}, got)
}

func TestUnlisten(t *testing.T) {
	b := New(0)

	calls := 0
	unlisten := b.Listen(func(int) {
		calls++
	})

	b.Set(1)
	unlisten()
	b.Set(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, b.Get())
}

func TestUnbindAll(t *testing.T) {
	b := New(0)

	calls := 0
	b.Listen(func(int) { calls++ })
	b.Listen(func(int) { calls++ })

	b.UnbindAll()
	b.Set(1)

	assert.Equal(t, 0, calls)
}

func TestNewWithEqual(t *testing.T) {
	type point struct{ xs []int }

	b := NewWithEqual(point{}, func(a, b point) bool {
		return len(a.xs) == len(b.xs)
	})

	calls := 0
	b.Listen(func(point) { calls++ })

	b.Set(point{})
	assert.Equal(t, 0, calls)

	b.Set(point{xs: []int{1}})
	assert.Equal(t, 1, calls)
}
