package rmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueType identifies one of a handful of canonical usage patterns for
// RabbitMQ within a platform built on this module
type QueueType string

const (
	// QueueTypeFanout identifies a queue used to record events that multiple services'
	// consumer processes may be interested in: using this queue type results in a fanout
	// exchange being created, with each consumer binding its own temporary queue to that
	// exchange
	QueueTypeFanout QueueType = "fanout"

	// QueueTypeWork identifies a queue used to record requests that should be fulfilled
	// by only a single worker process
	QueueTypeWork QueueType = "work"
)

// QueueDeclaration records the canonical details of how a particular queue is to be
// configured
type QueueDeclaration struct {
	Name string
	Type QueueType
}

// Producer can send arbitrary messages, signed under a shared secret, to a
// single message queue
type Producer interface {
	Send(ctx context.Context, data interface{}) error
}

// Consumer can receive AMQP messages from a single message queue; only
// deliveries whose signature checks out are ever emitted from Recv
type Consumer interface {
	Close()
	Recv(ctx context.Context) (<-chan amqp.Delivery, error)
}
