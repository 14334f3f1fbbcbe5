package mq

import (
	"context"
	"encoding/json"

	"storebook/internal/pkg/errs"
	"storebook/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reservationDecidedQueue = "reservation.decided"

// Connect dials RabbitMQ and returns a publisher plus a cleanup func.
func Connect(url string) (*Publisher, func(), error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open AMQP channel")
	}

	if _, err := ch.QueueDeclare(
		reservationDecidedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to declare reservation queue")
	}

	cleanup := func() {
		ch.Close()
		conn.Close()
	}
	return &Publisher{ch: ch}, cleanup, nil
}

// Publisher pushes reservation decision events onto RabbitMQ. A nil
// Publisher drops events silently so the broker stays optional.
type Publisher struct {
	ch *amqp.Channel
}

func (p *Publisher) PublishReservationDecided(ctx context.Context, event commands.ReservationEvent) error {
	if p == nil || p.ch == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}

	err = p.ch.PublishWithContext(ctx,
		"",                      // default exchange
		reservationDecidedQueue, // routing key
		false,                   // mandatory
		false,                   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrap(err, "failed to publish reservation event")
	}
	return nil
}
