package mail

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
)

const defaultSendTimeout = 30 * time.Second

// Dispatcher is a bounded queue drained by a fixed set of workers. Delivery
// errors are logged and dropped.
type Dispatcher struct {
	mailer  Mailer
	logger  logging.Logger
	queue   chan Message
	workers int
	timeout time.Duration
}

func NewDispatcher(m Mailer, l logging.Logger, workers, size int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if size < 1 {
		size = 1
	}
	return &Dispatcher{
		mailer:  m,
		logger:  l.With("module", "mail_dispatcher"),
		queue:   make(chan Message, size),
		workers: workers,
		timeout: defaultSendTimeout,
	}
}

// Enqueue schedules msg for delivery. When the queue is full the message is
// dropped with a warning.
func (d *Dispatcher) Enqueue(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.logger.Warn(context.Background(), "mail queue full, message dropped", "subject", msg.Subject)
	}
}

// Run starts the workers and blocks until ctx is done and every worker has
// returned. Messages still queued at that point are discarded.
func (d *Dispatcher) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.work(ctx)
		}()
	}

	d.logger.Info(ctx, "Mail dispatcher started", "workers", d.workers)
	wg.Wait()

	if n := len(d.queue); n > 0 {
		d.logger.Warn(context.Background(), "Mail dispatcher stopped with undelivered messages", "count", n)
	} else {
		d.logger.Info(context.Background(), "Mail dispatcher stopped")
	}
	return nil
}

func (d *Dispatcher) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-d.queue:
			d.deliver(ctx, msg)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.mailer.Send(ctx, msg); err != nil {
		d.logger.Error(ctx, "mail delivery failed", "subject", msg.Subject, "error", err)
		return
	}
	d.logger.Debug(ctx, "mail delivered", "subject", msg.Subject)
}
