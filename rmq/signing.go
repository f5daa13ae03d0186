package rmq

import (
	"context"
	"encoding/hex"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/silverlode/mac-common/hmacsha256"
)

// SignatureHeader is the AMQP message header under which the hex-encoded
// HMAC-SHA256 tag of the message body is carried
const SignatureHeader = "x-hmac-signature"

// ErrUnsignedDelivery is returned when a delivery carries no signature
// header, or a header of an unexpected type
var ErrUnsignedDelivery = errors.New("delivery is not signed")

// ErrInvalidSignature is returned when a delivery's signature does not match
// its body under the configured secret
var ErrInvalidSignature = errors.New("delivery signature is invalid")

// signBody computes the hex-encoded tag that authenticates a message body
func signBody(secret, body []byte) string {
	tag := hmacsha256.Sum(secret, body)
	return hex.EncodeToString(tag[:])
}

// verifyDelivery checks the signature header of a received delivery against
// its body
func verifyDelivery(secret []byte, d *amqp.Delivery) error {
	header, ok := d.Headers[SignatureHeader]
	if !ok {
		return ErrUnsignedDelivery
	}
	value, ok := header.(string)
	if !ok {
		return ErrUnsignedDelivery
	}
	provided, err := hex.DecodeString(value)
	if err != nil {
		return ErrInvalidSignature
	}
	tag := hmacsha256.Sum(secret, d.Body)
	if !hmacsha256.Equal(provided, tag[:]) {
		return ErrInvalidSignature
	}
	return nil
}

// verifyLoop filters a channel of raw deliveries down to those that verify
// under the given secret: verified deliveries are acked and forwarded,
// everything else is rejected without requeue and dropped. The returned
// channel is closed when the input channel closes or ctx is done.
func verifyLoop(ctx context.Context, secret []byte, in <-chan amqp.Delivery) <-chan amqp.Delivery {
	out := make(chan amqp.Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-in:
				if !ok {
					return
				}
				if err := verifyDelivery(secret, &d); err != nil {
					_ = d.Nack(false, false)
					continue
				}
				// Ack only once the delivery has been handed off; a message
				// stranded by cancellation goes back on the queue instead of
				// being silently dropped
				select {
				case <-ctx.Done():
					_ = d.Nack(false, true)
					return
				case out <- d:
					_ = d.Ack(false)
				}
			}
		}
	}()
	return out
}
