package maturity

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:           "Test worker pool with simple tasks",
			numTasks:       5,
			numWorkers:     2,
			expectedErrors: 0,
		},
		{
			name:           "Test worker pool with error in task",
			numTasks:       2,
			numWorkers:     2,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)
			defer wp.Close()

			var mu sync.Mutex
			var taskExecutionCount int
			var errorCount int
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				task := func(i int) func() error {
					return func() error {
						defer wg.Done()
						if i == tt.numTasks-1 && tt.expectedErrors > 0 {
							mu.Lock()
							errorCount++
							mu.Unlock()
							return assert.AnError
						}
						time.Sleep(20 * time.Millisecond)
						mu.Lock()
						taskExecutionCount++
						mu.Unlock()
						return nil
					}
				}(i)

				err := wp.AddTask(context.Background(), task)
				require.NoError(t, err, "failed to add task to pool")
			}

			wg.Wait()

			assert.Equal(t, tt.numTasks-tt.expectedErrors, taskExecutionCount, "number of executed tasks does not match")
			assert.Equal(t, tt.expectedErrors, errorCount, "number of errors does not match")
		})
	}
}

func TestWorkerPool_CloseDrainsQueue(t *testing.T) {
	wp := NewWorkerPool(1)

	var executed atomic.Int32
	for i := 0; i < 3; i++ {
		require.NoError(t, wp.AddTask(context.Background(), func() error {
			time.Sleep(5 * time.Millisecond)
			executed.Add(1)
			return nil
		}))
	}

	wp.Close()
	wp.Close()
	assert.Equal(t, int32(3), executed.Load())
}

func TestWorkerPool_AddTaskBlockedUntilCanceled(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error {
		close(started)
		<-release
		return nil
	}))
	<-started
	require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
}
