package hero

import (
	"context"
	"testing"
	"time"

	"amritha-heritage/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRotator(t *testing.T, length int, interval time.Duration) *Rotator {
	r, err := New("home", length, interval, zerolog.Nop())
	require.NoError(t, err)
	return r
}

func TestNew_Validation(t *testing.T) {
	_, err := New("home", 0, time.Second, zerolog.Nop())
	assert.Error(t, err)

	_, err = New("home", 3, 0, zerolog.Nop())
	assert.Error(t, err)
}

func TestRotator_AdvanceWraps(t *testing.T) {
	r := newTestRotator(t, 3, time.Hour)
	assert.Equal(t, 0, r.Current())

	assert.Equal(t, 1, r.Advance())
	assert.Equal(t, 2, r.Advance())
	assert.Equal(t, 0, r.Advance())
}

func TestRotator_Select(t *testing.T) {
	r := newTestRotator(t, 3, time.Hour)

	require.NoError(t, r.Select(2))
	assert.Equal(t, 2, r.Current())
	assert.Equal(t, 0, r.Advance(), "rotation continues from the selected slide")

	for _, i := range []int{-1, 3, 10} {
		err := r.Select(i)
		assert.ErrorIs(t, err, model.ErrInvalidSlide)
	}
	assert.Equal(t, 0, r.Current(), "rejected selection leaves the index alone")
}

func TestRotator_StartRotates(t *testing.T) {
	r := newTestRotator(t, 3, 10*time.Millisecond)
	r.Start(context.Background())
	defer r.Stop()

	assert.True(t, r.Running())
	assert.Eventually(t, func() bool { return r.Current() != 0 }, time.Second, 5*time.Millisecond)
}

func TestRotator_StartTwiceIsNoop(t *testing.T) {
	r := newTestRotator(t, 3, time.Hour)
	r.Start(context.Background())
	done := r.done
	r.Start(context.Background())

	assert.Equal(t, done, r.done, "second start keeps the running goroutine")
	r.Stop()
}

func TestRotator_StopHaltsRotation(t *testing.T) {
	r := newTestRotator(t, 1000, 5*time.Millisecond)

	r.Stop() // before Start

	r.Start(context.Background())
	assert.Eventually(t, func() bool { return r.Current() > 0 }, time.Second, 5*time.Millisecond)

	r.Stop()
	assert.False(t, r.Running())
	stopped := r.Current()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, r.Current(), "no ticks after stop")

	r.Stop()
}

func TestRotator_ContextCancelStopsGoroutine(t *testing.T) {
	r := newTestRotator(t, 3, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	done := r.done

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("rotator goroutine did not exit after context cancel")
	}

	r.Stop()
}

func TestRotator_RestartAfterContextCancel(t *testing.T) {
	r := newTestRotator(t, 3, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	cancel()
	assert.Eventually(t, func() bool { return !r.Running() }, time.Second, time.Millisecond)

	require.NoError(t, r.Select(0))
	r.Start(context.Background())
	defer r.Stop()

	assert.True(t, r.Running())
	assert.Eventually(t, func() bool { return r.Current() != 0 }, time.Second, 5*time.Millisecond)
}

func TestRotator_RestartAfterStop(t *testing.T) {
	r := newTestRotator(t, 3, 10*time.Millisecond)
	r.Start(context.Background())
	r.Stop()

	require.NoError(t, r.Select(0))
	r.Start(context.Background())
	defer r.Stop()

	assert.Eventually(t, func() bool { return r.Current() != 0 }, time.Second, 5*time.Millisecond)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())

	home := newTestRotator(t, 3, time.Hour)
	acc, err := New("accommodation", 3, time.Hour, zerolog.Nop())
	require.NoError(t, err)

	reg.Add(home)
	reg.Add(acc)
	assert.Equal(t, []string{"accommodation", "home"}, reg.Names())

	got, err := reg.Get("home")
	require.NoError(t, err)
	assert.Same(t, home, got)

	_, err = reg.Get("gallery")
	assert.ErrorIs(t, err, model.ErrUnknownPage)

	reg.StartAll(context.Background())
	assert.True(t, home.Running())
	assert.True(t, acc.Running())

	reg.StopAll()
	assert.False(t, home.Running())
	assert.False(t, acc.Running())
}

func TestRegistry_AddReplacesAndStops(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())
	old := newTestRotator(t, 3, time.Hour)
	reg.Add(old)
	old.Start(context.Background())

	replacement := newTestRotator(t, 5, time.Hour)
	reg.Add(replacement)

	assert.False(t, old.Running())
	got, err := reg.Get("home")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Len())
}
