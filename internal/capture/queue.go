// Package capture acquires frames and hands them to the measurement loop through a
// bounded FIFO queue.
package capture

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"gocv.io/x/gocv"
)

// ErrQueueClosed is returned by Get once the producer has finished and the queue is drained.
var ErrQueueClosed = errors.New("frame queue closed")

// Frame is one acquired image. The receiver owns Mat and must Close it.
type Frame struct {
	Mat      gocv.Mat
	Seq      int64
	Captured time.Time
}

// Close releases the frame's pixels.
func (f Frame) Close() {
	f.Mat.Close()
}

// Queue is a bounded hand-off between one producer and one consumer. Frames come out in
// the order they went in.
type Queue struct {
	ch        chan Frame
	closeOnce sync.Once
	dropped   atomic.Int64
	accepted  atomic.Int64
}

// NewQueue creates a queue holding at most size frames.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{ch: make(chan Frame, size)}
}

// Offer enqueues f without blocking. When the queue is full the new frame is closed and
// counted as dropped, and Offer returns false.
func (q *Queue) Offer(f Frame) bool {
	select {
	case q.ch <- f:
		q.accepted.Add(1)
		return true
	default:
		f.Close()
		q.dropped.Add(1)
		return false
	}
}

// Put enqueues f, blocking until there is room or ctx is done. On cancellation the frame
// is closed.
func (q *Queue) Put(ctx context.Context, f Frame) error {
	select {
	case q.ch <- f:
		q.accepted.Add(1)
		return nil
	case <-ctx.Done():
		f.Close()
		return ctx.Err()
	}
}

// Get blocks until a frame is available, the queue is closed and drained, or ctx is done.
func (q *Queue) Get(ctx context.Context) (Frame, error) {
	select {
	case f, ok := <-q.ch:
		if !ok {
			return Frame{}, ErrQueueClosed
		}
		return f, nil
	case <-ctx.Done():
		return Frame{}, ctx.Err()
	}
}

// Close marks the end of production. Only the producer calls it.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.ch) })
}

// Drain closes every frame still queued. Call it after the producer has stopped.
func (q *Queue) Drain() {
	for {
		select {
		case f, ok := <-q.ch:
			if !ok {
				return
			}
			f.Close()
		default:
			return
		}
	}
}

// Dropped returns how many frames were discarded because the queue was full.
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}

// Accepted returns how many frames entered the queue.
func (q *Queue) Accepted() int64 {
	return q.accepted.Load()
}
