package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/config"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/errs"
)

// Consumer subscribes a durable queue to the booking change feed exchange
// and fans every delivery out to all registered handlers. A failed handler
// nacks the delivery back onto the queue, so the broker redelivers it
// (at-least-once); decode failures are logged and dropped instead, since
// redelivering a malformed body can never succeed.
type Consumer struct {
	cfg      config.FeedConfig
	handlers []Handler
	logger   *slog.Logger

	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConsumer(cfg config.FeedConfig, handlers []Handler, logger *slog.Logger) *Consumer {
	return &Consumer{cfg: cfg, handlers: handlers, logger: logger}
}

func (c *Consumer) Connect() error {
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return errs.Wrap(err, "feed dial failed")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "feed channel open failed")
	}

	if err := ch.ExchangeDeclare(c.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrapf(err, "declare exchange %s failed", c.cfg.Exchange)
	}

	q, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrapf(err, "declare queue %s failed", c.cfg.Queue)
	}

	for _, key := range c.cfg.Bindings {
		if err := ch.QueueBind(q.Name, key, c.cfg.Exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return errs.Wrapf(err, "bind queue key %s failed", key)
		}
	}

	if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "set qos failed")
	}

	c.conn = conn
	c.ch = ch
	return nil
}

func (c *Consumer) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	deliveries, err := c.ch.ConsumeWithContext(ctx, c.cfg.Queue, "booking-lifecycle", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "consume failed")
	}

	c.logger.Info("feed consumer started",
		"queue", c.cfg.Queue,
		"exchange", c.cfg.Exchange,
		"bindings", c.cfg.Bindings,
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			if err := c.handleDelivery(ctx, d); err != nil {
				c.logger.Warn("change event failed, requeueing",
					"routing_key", d.RoutingKey,
					"error", err,
				)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery) error {
	var change Change
	if err := json.Unmarshal(d.Body, &change); err != nil {
		// Poison message; requeueing cannot fix it.
		c.logger.Error("dropping undecodable change event",
			"routing_key", d.RoutingKey,
			"error", err,
		)
		return nil
	}
	return c.Dispatch(ctx, change)
}

// Dispatch runs every handler against the change concurrently. Handlers do
// not call each other and tolerate running alongside one another on the
// same event. The first handler error is returned so the delivery gets
// redelivered; already-applied handlers are idempotent under that replay.
func (c *Consumer) Dispatch(ctx context.Context, change Change) error {
	results := make([]error, len(c.handlers))

	var wg sync.WaitGroup
	for i, h := range c.handlers {
		wg.Add(1)
		go func(i int, h Handler) {
			defer wg.Done()
			if err := h.Handle(ctx, change); err != nil {
				c.logger.Error("lifecycle handler failed",
					"handler", h.Name(),
					"booking_id", change.BookingID,
					"error", err,
				)
				results[i] = err
			}
		}(i, h)
	}
	wg.Wait()

	for _, err := range results {
		if err != nil {
			return err
		}
	}
	return nil
}
