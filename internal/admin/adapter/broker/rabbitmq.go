package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"resto-admin/internal/admin/domain/models"
	"resto-admin/internal/xpkg/config"
	"resto-admin/internal/xpkg/logger"
)

const notificationsExchange = "notifications_fanout"

// RabbitMQ fans order status changes out to notification consumers
// (customer displays, the kitchen board).
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mylog   logger.Logger
}

func New(cfg config.RabbitMQ, mylog logger.Logger) (*RabbitMQ, error) {
	connStr := fmt.Sprintf("amqp://%s:%s@%s:%s%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.VHost)

	conn, err := amqp.Dial(connStr)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		notificationsExchange, // name
		"fanout",              // type
		true,                  // durable
		false,                 // auto-deleted
		false,                 // internal
		false,                 // no-wait
		nil,                   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	mylog.Action("rabbitmq_connected").Info("Connected to RabbitMQ")
	return &RabbitMQ{
		conn:    conn,
		channel: channel,
		mylog:   mylog,
	}, nil
}

func (r *RabbitMQ) PublishStatusUpdate(ctx context.Context, msg models.StatusUpdateMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = r.channel.PublishWithContext(pubCtx,
		notificationsExchange, // exchange
		"",                    // routing key
		false,                 // mandatory
		false,                 // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return err
	}

	r.mylog.Action("status_update_published").Debug("Status update published", "order_id", msg.OrderID)
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
