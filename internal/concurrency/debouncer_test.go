package concurrency_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/hueportal/internal/concurrency"
)

func Test_Debouncer(t *testing.T) {

	t.Run("should only run the last call", func(t *testing.T) {
		t.Parallel()

		// arrange
		d := concurrency.NewDebouncer(20 * time.Millisecond)
		var last, runs atomic.Int32

		// act
		for i := int32(1); i <= 5; i++ {
			i := i
			d.Call(func() error {
				last.Store(i)
				runs.Add(1)
				return nil
			})
		}

		// assert
		assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
		time.Sleep(40 * time.Millisecond)
		assert.Equal(t, int32(1), runs.Load())
		assert.Equal(t, int32(5), last.Load())
	})

	t.Run("flush: should run the pending call immediately", func(t *testing.T) {
		t.Parallel()

		d := concurrency.NewDebouncer(time.Hour)
		var runs atomic.Int32
		d.Call(func() error {
			runs.Add(1)
			return nil
		})

		assert.NoError(t, d.Flush())
		assert.NoError(t, d.Flush())

		assert.Equal(t, int32(1), runs.Load())
	})

	t.Run("flush: should return the pending call's error", func(t *testing.T) {
		t.Parallel()

		failed := errors.New("write failed")
		d := concurrency.NewDebouncer(time.Hour)
		d.Call(func() error { return failed })

		assert.ErrorIs(t, d.Flush(), failed)
		assert.NoError(t, d.Flush())
	})

	t.Run("stop: should drop the pending call", func(t *testing.T) {
		t.Parallel()

		d := concurrency.NewDebouncer(10 * time.Millisecond)
		var runs atomic.Int32
		d.Call(func() error {
			runs.Add(1)
			return nil
		})

		d.Stop()
		time.Sleep(30 * time.Millisecond)
		assert.NoError(t, d.Flush())

		assert.Equal(t, int32(0), runs.Load())
	})
}
