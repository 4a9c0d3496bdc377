package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/clinic-booking-gateway/internal/config"
	inport "github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// AppointmentListener drops cached availability when the backend announces
// an appointment change for a doctor. Without these events the cache would
// keep serving slots that were just booked or freed.
type AppointmentListener struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	resolver inport.SlotResolverUseCase
	cfg      *config.Config
	logger   out.LoggerPort
}

// AppointmentEvent is the broker payload; only the doctor matters, the slot
// list is re-fetched on the next resolution anyway.
type AppointmentEvent struct {
	DoctorID int64 `json:"id_medico"`
}

func NewAppointmentListener(resolver inport.SlotResolverUseCase, cfg *config.Config, logger out.LoggerPort) (*AppointmentListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &AppointmentListener{
		conn:     conn,
		channel:  channel,
		resolver: resolver,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

func (l *AppointmentListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	l.logger.Info("rabbitmq.appointment.queue.started", out.LogFields{
		"queue": queue.Name,
	})

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				l.processMessage(ctx, msg)
			}
		}
	}()

	return nil
}

func (l *AppointmentListener) processMessage(ctx context.Context, msg amqp.Delivery) {
	var event AppointmentEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil || event.DoctorID == 0 {
		// Malformed events are dropped, requeueing would loop forever.
		l.logger.Warn("rabbitmq.appointment.message.malformed", out.LogFields{
			"routingKey": msg.RoutingKey,
		})
		msg.Ack(false)
		return
	}

	l.resolver.InvalidateDoctor(ctx, event.DoctorID)
	l.logger.Debug("rabbitmq.appointment.cache_invalidated", out.LogFields{
		"doctorId":   event.DoctorID,
		"routingKey": msg.RoutingKey,
	})
	msg.Ack(false)
}

func (l *AppointmentListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
