// Package rmq provides utility code to help backend applications connect to
// a RabbitMQ server and exchange authenticated messages over AMQP queues:
// every message published through this package carries an HMAC-SHA256 tag
// computed over its JSON payload under a shared secret, and consumers verify
// that tag before a delivery is ever handed to application code. Messages
// that fail verification are rejected without requeueing.
package rmq
