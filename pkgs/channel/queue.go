package channel

import (
	"io"
	"sync"
	"time"
)

// Queue is a bounded in-memory output queue. Writers block while the queue is
// full, readers block while it is empty.
type Queue struct {
	mu       sync.Mutex
	data     []byte
	capacity int
	closed   bool

	readable chan struct{}
	writable chan struct{}
	done     chan struct{}
}

// NewQueue creates a queue holding at most capacity bytes.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 256
	}
	return &Queue{
		data:     make([]byte, 0, capacity),
		capacity: capacity,
		readable: make(chan struct{}, 1),
		writable: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

func (q *Queue) WriteTimeout(p []byte, timeout time.Duration) (int, error) {
	expired := deadline(timeout)
	written := 0
	for {
		q.mu.Lock()
		if q.closed {
			q.mu.Unlock()
			return written, ErrClosed
		}
		n := min(q.capacity-len(q.data), len(p)-written)
		q.data = append(q.data, p[written:written+n]...)
		written += n
		room := len(q.data) < q.capacity
		q.mu.Unlock()

		// pass the wakeup on to other waiting writers
		if room && written == len(p) {
			notify(q.writable)
		}

		if n > 0 {
			notify(q.readable)
		}
		if written == len(p) {
			return written, nil
		}
		if timeout == Immediate {
			return written, ErrTimeout
		}

		select {
		case <-q.writable:
		case <-q.done:
		case <-expired:
			return written, ErrTimeout
		}
	}
}

// Write implements io.Writer without a timeout.
func (q *Queue) Write(p []byte) (int, error) {
	return q.WriteTimeout(p, Infinite)
}

// ReadTimeout waits at most timeout for data and returns whatever is queued,
// up to len(p) bytes.
func (q *Queue) ReadTimeout(p []byte, timeout time.Duration) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	expired := deadline(timeout)
	for {
		q.mu.Lock()
		if len(q.data) > 0 {
			n := copy(p, q.data)
			q.data = append(q.data[:0], q.data[n:]...)
			more := len(q.data) > 0
			q.mu.Unlock()
			notify(q.writable)
			if more {
				notify(q.readable)
			}
			return n, nil
		}
		closed := q.closed
		q.mu.Unlock()

		if closed {
			return 0, io.EOF
		}
		if timeout == Immediate {
			return 0, ErrTimeout
		}

		select {
		case <-q.readable:
		case <-q.done:
		case <-expired:
			return 0, ErrTimeout
		}
	}
}

// Read blocks until data is available or the queue is closed and drained.
func (q *Queue) Read(p []byte) (int, error) {
	return q.ReadTimeout(p, Infinite)
}

// Len returns the number of queued bytes.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.data)
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return q.capacity
}

// Close stops further writes. Queued data can still be read.
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.done)
	}
	return nil
}

func deadline(timeout time.Duration) <-chan time.Time {
	if timeout <= 0 {
		return nil
	}
	return time.After(timeout)
}

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
