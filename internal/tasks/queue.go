// Package tasks is the in-process work queue behind the TaskQueue port:
// bounded channel, worker goroutines, per-task retry. Delivery is
// at-least-once within the process; callers only get "enqueued".
package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/confcentral/confcentral/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type Handler func(ctx context.Context, task ports.Task) error

type Queue struct {
	ch       chan ports.Task
	handlers map[string]Handler
	strategy retry.Strategy
	logger   logger.Logger
	workers  int

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func New(workers, buffer int, log logger.Logger) *Queue {
	q := &Queue{
		ch:       make(chan ports.Task, buffer),
		handlers: map[string]Handler{},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    time.Second,
			Backoff:  2,
		},
		logger:  log,
		workers: workers,
	}
	return q
}

// Handle registers the handler for a task type. Register everything before
// Start.
func (q *Queue) Handle(taskType string, h Handler) {
	q.handlers[taskType] = h
}

// Enqueue accepts a task for asynchronous execution. It fails only when the
// queue is shut down, the buffer is full, or ctx expires.
func (q *Queue) Enqueue(ctx context.Context, task ports.Task) error {
	q.mu.Lock()
	closed := q.closed
	q.mu.Unlock()
	if closed {
		return fmt.Errorf("task queue is shut down")
	}

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	select {
	case q.ch <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

// Start launches the workers. They drain the queue until Stop is called.
func (q *Queue) Start(ctx context.Context) {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx)
	}
	q.logger.Info("task queue started",
		logger.Int("workers", q.workers),
		logger.Int("buffer", cap(q.ch)),
	)
}

// Stop closes intake and waits for in-flight tasks to finish.
func (q *Queue) Stop() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	q.wg.Wait()
	q.logger.Info("task queue stopped")
}

func (q *Queue) worker(ctx context.Context) {
	defer q.wg.Done()
	for task := range q.ch {
		q.process(ctx, task)
	}
}

func (q *Queue) process(ctx context.Context, task ports.Task) {
	h, ok := q.handlers[task.Type]
	if !ok {
		q.logger.Error("no handler for task",
			logger.String("task_id", task.ID),
			logger.String("task_type", task.Type),
		)
		return
	}

	delay := q.strategy.Delay
	var err error
	for attempt := 1; attempt <= q.strategy.Attempts; attempt++ {
		if err = h(ctx, task); err == nil {
			return
		}
		if attempt < q.strategy.Attempts {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			}
			delay *= time.Duration(q.strategy.Backoff)
		}
	}

	q.logger.Error("task failed after retries",
		logger.String("task_id", task.ID),
		logger.String("task_type", task.Type),
		logger.String("error", err.Error()),
	)
}
