package taxengine

import (
	"context"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one unit of engine work, typically a single submission poll.
type Task func() error

// WorkerPool bounds how many submissions are polled concurrently. Enqueueing
// blocks when all workers are busy and the queue is full, which naturally
// throttles the poller against a slow engine.
type WorkerPool struct {
	queue chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{queue: make(chan Task, size)}
	for i := 0; i < size; i++ {
		go wp.run()
	}
	return wp
}

func (wp *WorkerPool) run() {
	for task := range wp.queue {
		if err := task(); err != nil {
			zap.L().Error("submission poll failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.queue <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.queue:
	default:
		close(wp.queue)
	}
}
