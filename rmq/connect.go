package rmq

import (
	"fmt"
	"net/url"
)

// FormatConnectionString builds the amqp:// URI for the RabbitMQ server that
// a service's signed producers and consumers should connect to, with the
// password url-escaped. Pass the result to amqp.Dial before declaring queues
// via QueueDeclaration.
func FormatConnectionString(host string, port int, vhost, user, password string) string {
	urlencodedPassword := url.QueryEscape(password)
	return fmt.Sprintf("amqp://%s:%s@%s:%d/%s", user, urlencodedPassword, host, port, vhost)
}
