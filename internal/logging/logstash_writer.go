package logging

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var errCoolingDown = errors.New("logstash: waiting before reconnect")

// LogstashWriter forwards newline-delimited JSON log lines to a Logstash TCP
// input. Writes never fail because Logstash is down: the line is dropped and
// counted, and the writer reconnects after a cool-down.
type LogstashWriter struct {
	addr      string
	dialer    net.Dialer
	writeWait time.Duration
	backoff   time.Duration

	mu       sync.Mutex
	conn     net.Conn
	retryAt  time.Time
	closed   bool
	dropped  atomic.Int64
	deadline func() time.Time
}

type Option func(*LogstashWriter)

func WithDialTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) { w.dialer.Timeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) { w.writeWait = d }
}

// WithRetryInterval sets how long the writer stays disconnected after a
// failure. Zero means retry on every write.
func WithRetryInterval(d time.Duration) Option {
	return func(w *LogstashWriter) { w.backoff = d }
}

func NewLogstashWriter(addr string, opts ...Option) (*LogstashWriter, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("logstash: empty address")
	}
	w := &LogstashWriter{
		addr:      addr,
		dialer:    net.Dialer{Timeout: 2 * time.Second},
		writeWait: time.Second,
		backoff:   5 * time.Second,
		deadline:  time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	line := make([]byte, len(p), len(p)+1)
	copy(line, p)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}
	if err := w.connectLocked(); err != nil {
		w.dropped.Add(1)
		return len(p), nil
	}
	if w.writeWait > 0 {
		_ = w.conn.SetWriteDeadline(w.deadline().Add(w.writeWait))
	}
	if _, err := w.conn.Write(line); err != nil {
		w.dropped.Add(1)
		w.resetLocked()
	}
	return len(p), nil
}

// Dropped reports how many lines were discarded while Logstash was unreachable.
func (w *LogstashWriter) Dropped() int64 {
	return w.dropped.Load()
}

func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

func (w *LogstashWriter) connectLocked() error {
	if w.conn != nil {
		return nil
	}
	if !w.retryAt.IsZero() && w.deadline().Before(w.retryAt) {
		return errCoolingDown
	}
	conn, err := w.dialer.DialContext(context.Background(), "tcp", w.addr)
	if err != nil {
		w.retryAt = w.deadline().Add(w.backoff)
		return err
	}
	w.conn = conn
	w.retryAt = time.Time{}
	return nil
}

func (w *LogstashWriter) resetLocked() {
	if w.conn != nil {
		_ = w.conn.Close()
		w.conn = nil
	}
	w.retryAt = w.deadline().Add(w.backoff)
}
