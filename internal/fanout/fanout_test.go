package fanout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPreservesIndexOrder(t *testing.T) {
	got, err := All(context.Background(), 5, func(ctx context.Context, i int) (int, error) {
		// later indexes finish first
		time.Sleep(time.Duration(5-i) * 5 * time.Millisecond)
		return i * 10, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20, 30, 40}, got)
}

func TestAllZero(t *testing.T) {
	got, err := All(context.Background(), 0, func(ctx context.Context, i int) (string, error) {
		t.Fatal("fn must not be called")
		return "", nil
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAllFirstErrorWins(t *testing.T) {
	errFast := errors.New("fast failure")
	errSlow := errors.New("slow failure")
	_, err := All(context.Background(), 2, func(ctx context.Context, i int) (int, error) {
		if i == 0 {
			return 0, errFast
		}
		time.Sleep(30 * time.Millisecond)
		return 0, errSlow
	})
	assert.ErrorIs(t, err, errFast)
}

func TestEachDoesNotCancelSiblings(t *testing.T) {
	var finished atomic.Int32
	var sawCancel atomic.Bool
	boom := errors.New("boom")

	err := Each(context.Background(), 4, func(ctx context.Context, i int) error {
		if i == 0 {
			return boom
		}
		select {
		case <-ctx.Done():
			sawCancel.Store(true)
		case <-time.After(40 * time.Millisecond):
		}
		finished.Add(1)
		return nil
	})

	require.ErrorIs(t, err, boom)
	// Each waits for the whole group, so the slow siblings are done by now.
	assert.Equal(t, int32(3), finished.Load())
	assert.False(t, sawCancel.Load())
}
