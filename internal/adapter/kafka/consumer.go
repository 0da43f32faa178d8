package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

// A consumer is used for composition.
//
// Fetching records from kafka broker and closing underlying [kgo.Client].

type consumerParent interface {
	processFetches(context.Context, kgo.Fetches) error
}

type consumer struct {
	opPrefix      string
	parent        consumerParent
	cl            ConsumerClient
	slowDownTimer *time.Timer
}

func (c consumer) run(ctx context.Context) {
	const op = "run"
	log := slog.With("op", makeOp(c.opPrefix, op))

	log.Info("running")

	for {
		select {
		case <-ctx.Done():
			return
		default:
			err := c.consume(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				log.Error("failed to consume", "err", err)
				c.slowDown()
			}
		}
	}
}

func (c consumer) consume(ctx context.Context) error {
	const op = "consume"

	fetches, err := c.pollFetches(ctx)
	if err != nil {
		return opErr(err, c.opPrefix, op)
	}

	if fetches.Empty() {
		return nil
	}

	err = c.parent.processFetches(ctx, fetches)
	if err != nil {
		return opErr(err, c.opPrefix, op)
	}

	err = c.commit(ctx)
	if err != nil {
		return opErr(err, c.opPrefix, op)
	}
	return nil
}

func (c consumer) pollFetches(ctx context.Context) (kgo.Fetches, error) {
	const op = "pollFetches"

	fetches := c.cl.PollFetches(ctx)
	if err := fetches.Err0(); err != nil {
		return nil, opErr(err, c.opPrefix, op)
	}

	err := c.handleFetchesErrs(fetches)
	if err != nil {
		return nil, opErr(err, c.opPrefix, op)
	}

	return fetches, nil
}

func (c consumer) handleFetchesErrs(fetches kgo.Fetches) error {
	var errsMessages []string
	fetches.EachError(func(t string, p int32, err error) {
		if err != nil {
			errMsg := fmt.Sprintf(
				"topic %q partition %d: %q", t, p, err,
			)
			errsMessages = append(errsMessages, errMsg)
		}
	})

	if len(errsMessages) != 0 {
		return errors.New(strings.Join(errsMessages, "; "))
	}
	return nil
}

func (c consumer) slowDown() {
	c.slowDownTimer.Reset(1 * time.Second)
	<-c.slowDownTimer.C
}

func (c consumer) commit(ctx context.Context) error {
	const op = "commit"

	err := ctx.Err()
	if err != nil {
		return opErr(err, c.opPrefix, op)
	}

	err = c.cl.CommitUncommittedOffsets(ctx)
	if err != nil {
		return opErr(err, c.opPrefix, op)
	}
	return nil
}

func (c consumer) close() {
	const op = "close"
	log := slog.With("op", makeOp(c.opPrefix, op))

	c.slowDownTimer.Stop()

	log.Info("closing consumer...")
	c.cl.Close()
	log.Info("consumer is closed")
}

// An OrderNotificationsConsumer reads placed orders from the
// order-events topic and surfaces an "order placed" notification for
// each of them.
type OrderNotificationsConsumer struct {
	opPrefix string
	consumer consumer
	notifier port.Notifier
	decoder  Decoder
}

func NewOrderNotificationsConsumer(
	opts ...ConsumerOpt,
) (nc OrderNotificationsConsumer, err error) {
	const op = "NewOrderNotificationsConsumer"

	var options consumerOpts
	if err := options.apply(opts...); err != nil {
		return nc, opErr(err, op)
	}

	opPrefix := "OrderNotificationsConsumer"

	nc.opPrefix = opPrefix
	nc.notifier = options.notifier
	nc.decoder = options.decoder

	nc.consumer = consumer{
		opPrefix:      opPrefix,
		parent:        nc,
		cl:            options.cl,
		slowDownTimer: time.NewTimer(0),
	}

	return nc, nil
}

func (c OrderNotificationsConsumer) Run(ctx context.Context) {
	c.consumer.run(ctx)
}

func (c OrderNotificationsConsumer) Close() {
	c.consumer.close()
}

func (c OrderNotificationsConsumer) processFetches(
	ctx context.Context, fetches kgo.Fetches,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, v := range c.toDomain(fetches) {
		c.notifier.OrderPlaced(v.OrderID)
	}
	return nil
}

func (c OrderNotificationsConsumer) toDomain(
	fetches kgo.Fetches,
) (vs []domain.Order) {
	const op = "toDomain"
	log := slog.With("op", makeOp(c.opPrefix, op))

	fetches.EachRecord(func(r *kgo.Record) {
		v, err := c.decodeRecValue(r)
		if err != nil {
			log.Error(
				"failed to decode value",
				"err", opErr(err, c.opPrefix, op),
			)
			return
		}
		vs = append(vs, v)
	})
	return vs
}

func (c OrderNotificationsConsumer) decodeRecValue(
	r *kgo.Record,
) (domain.Order, error) {
	var s schema.OrderPlacedV1
	err := c.decoder.Decode(r.Value, &s)
	if err != nil {
		return domain.Order{}, err
	}
	return schemaV1ToOrder(s)
}
