package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the topic exchange transfer events are published to
const DefaultExchange = "ledger.notifications"

// Channel is the subset of *amqp.Channel the publisher needs
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes transfer events to a topic exchange, routed by user id
type AMQPPublisher struct {
	channel  Channel
	conn     *amqp.Connection
	exchange string
	logger   coreport.Logger
}

// NewAMQPPublisher creates a publisher on an already opened channel
func NewAMQPPublisher(channel Channel, exchange string, logger coreport.Logger) *AMQPPublisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &AMQPPublisher{
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}
}

// DialAMQP connects to the broker, declares the exchange and returns a publisher owning the connection
func DialAMQP(url, exchange string, logger coreport.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	publisher := NewAMQPPublisher(ch, exchange, logger)
	if err := ch.ExchangeDeclare(publisher.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp declare exchange %s: %w", publisher.exchange, err)
	}

	publisher.conn = conn
	return publisher, nil
}

// RoutingKey returns the routing key of a user's events
func RoutingKey(userID uuid.UUID) string {
	return "user." + userID.String()
}

// Publish sends event to the exchange. Unroutable messages are dropped by the broker.
func (p *AMQPPublisher) Publish(ctx context.Context, userID uuid.UUID, event entity.TransferEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Transient,
		MessageId:    event.ReferenceNumber + ":" + string(event.Direction),
		Timestamp:    event.Timestamp,
		Type:         event.Type,
		Body:         body,
	}

	key := RoutingKey(userID)
	if err := p.channel.PublishWithContext(ctx, p.exchange, key, false, false, msg); err != nil {
		return fmt.Errorf("amqp publish %s: %w", key, err)
	}

	p.logger.Debug("Notification published", map[string]any{
		"exchange":         p.exchange,
		"routing_key":      key,
		"reference_number": event.ReferenceNumber,
	})
	return nil
}

// Close closes the channel and, when the publisher dialed it, the connection
func (p *AMQPPublisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
