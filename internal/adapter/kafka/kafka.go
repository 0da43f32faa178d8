package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/shopspring/decimal"
	"github.com/twmb/franz-go/pkg/kgo"
)

var ErrTooFewOpts = errors.New("too few options")

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type ConsumerClient interface {
	PollFetches(context.Context) kgo.Fetches
	CommitUncommittedOffsets(context.Context) error
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ConsumerOpt func(*consumerOpts) error

type consumerOpts struct {
	cl       ConsumerClient
	decoder  Decoder
	notifier port.Notifier
}

func (co *consumerOpts) apply(opts ...ConsumerOpt) error {
	for _, opt := range opts {
		if err := opt(co); err != nil {
			return err
		}
	}
	return nil
}

func ConsumerClientOpt(
	seedBrokers []string, topic, group string,
) ConsumerOpt {
	return func(co *consumerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.ConsumeTopics(topic),
			kgo.ConsumerGroup(group),
			kgo.DisableAutoCommit(),
		)
		if err != nil {
			return err
		}
		co.cl = cl
		return nil
	}
}

func ConsumerDecoderOpt(decoder Decoder) ConsumerOpt {
	return func(co *consumerOpts) error {
		if decoder == nil {
			return errors.New("decoder is nil")
		}
		co.decoder = decoder
		return nil
	}
}

func ConsumerNotifierOpt(n port.Notifier) ConsumerOpt {
	return func(co *consumerOpts) error {
		if n == nil {
			return errors.New("notifier is nil")
		}
		co.notifier = n
		return nil
	}
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func orderToSchemaV1(v domain.Order) (s schema.OrderPlacedV1) {
	s.OrderID = v.OrderID
	s.FirstName = v.FirstName
	s.LastName = v.LastName
	s.Address = v.Address
	s.TotalAmount = v.TotalAmount.String()
	s.CreatedAt = v.CreatedAt.UTC().Format(time.RFC3339Nano)

	s.Items = make([]schema.OrderItemV1, len(v.Items))
	for i := range v.Items {
		s.Items[i].ProductID = v.Items[i].ProductID
		s.Items[i].Quantity = v.Items[i].Quantity
	}
	return
}

func schemaV1ToOrder(s schema.OrderPlacedV1) (domain.Order, error) {
	var v domain.Order
	v.OrderID = s.OrderID
	v.FirstName = s.FirstName
	v.LastName = s.LastName
	v.Address = s.Address

	total, err := decimal.NewFromString(s.TotalAmount)
	if err != nil {
		return domain.Order{}, err
	}
	v.TotalAmount = total

	createdAt, err := time.Parse(time.RFC3339Nano, s.CreatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	v.CreatedAt = createdAt

	v.Items = make([]domain.OrderItem, len(s.Items))
	for i := range s.Items {
		v.Items[i].ProductID = s.Items[i].ProductID
		v.Items[i].Quantity = s.Items[i].Quantity
	}
	return v, nil
}
