// Publisher ships packed viewer messages to an AMQP 0.9.1 broker; a
// bridge process on the other side forwards them to the viewer's
// websocket. The publisher retries the initial broker connection for a
// short window so it tolerates starting before the broker does.

package transport

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/spaghettifunk/scenecast/core"
	"github.com/spaghettifunk/scenecast/protocol"
)

const (
	connectTimeout = 15 * time.Second
	contentType    = "application/x-msgpack"
)

type Publisher struct {
	config     Config
	connection *amqp.Connection
	channel    *amqp.Channel
}

func NewPublisher(config Config) (*Publisher, error) {
	p := &Publisher{config: config}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// connect establishes the broker connection and declares the command
// queue.
func (p *Publisher) connect() error {
	timeout := time.Now().Add(connectTimeout)
	var err error

	for time.Now().Before(timeout) {
		p.connection, err = amqp.Dial(p.config.URL)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to broker %s: %w", p.config.URL, err)
	}

	p.channel, err = p.connection.Channel()
	if err != nil {
		return fmt.Errorf("failed to open a channel: %w", err)
	}

	if _, err = p.channel.QueueDeclare(p.config.Queue, false, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", p.config.Queue, err)
	}

	core.LogInfo("connected to broker, publishing on %s", p.config.Queue)
	return nil
}

// Publish packs the message and sends it on the configured queue. A
// command that fails to serialize aborts the publish; nothing partial
// goes out.
func (p *Publisher) Publish(ctx context.Context, message *protocol.Message) error {
	body, err := message.Pack()
	if err != nil {
		return err
	}
	core.LogDebug("publishing %d command(s), %d bytes", len(message.Commands), len(body))
	return p.channel.PublishWithContext(ctx, "", p.config.Queue, false, false, amqp.Publishing{
		ContentType: contentType,
		Body:        body,
	})
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.connection != nil {
		return p.connection.Close()
	}
	return nil
}
