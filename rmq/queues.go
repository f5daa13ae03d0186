package rmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NewProducer initializes a Producer from an AMQP client connection, sending
// messages signed under secret according to the canonical usage pattern for
// this queue
func (d *QueueDeclaration) NewProducer(conn *amqp.Connection, secret []byte) (Producer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	defer ch.Close()

	switch d.Type {
	case QueueTypeFanout:
		return d.newFanoutProducer(conn, ch, secret)
	case QueueTypeWork:
		return d.newWorkProducer(conn, ch, secret)
	}
	return nil, fmt.Errorf("queue '%s' has unrecognized type %s", d.Name, d.Type)
}

// NewConsumer initializes a Consumer from an AMQP client connection,
// receiving and verifying messages according to the canonical usage pattern
// for this queue
func (d *QueueDeclaration) NewConsumer(conn *amqp.Connection, secret []byte) (Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	switch d.Type {
	case QueueTypeFanout:
		return d.newFanoutConsumer(ch, secret)
	case QueueTypeWork:
		return d.newWorkConsumer(ch, secret)
	}
	ch.Close()
	return nil, fmt.Errorf("queue '%s' has unrecognized type %s", d.Name, d.Type)
}
