package notify

//go:generate go run go.uber.org/mock/mockgen -source=./notify.go -destination=./mocks/notify_mock.go -package=mocks

import (
	"context"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Level string

const (
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// Notification is the payload published on the notifications topic.
type Notification struct {
	ID        string `json:"id"`
	Level     Level  `json:"level"`
	Message   string `json:"message"`
	Entity    string `json:"entity"`
	Timestamp string `json:"timestamp"`
}

// Notifier surfaces operation outcomes to the front desk operator. Delivery is best effort.
type Notifier interface {
	Error(ctx context.Context, entity, message string)
	Success(ctx context.Context, entity, message string)
}

type notifierImpl struct {
	kafka   kafka.Client
	topic   string
	enabled bool
}

func New(cfg *config.Config, client kafka.Client) Notifier {
	return &notifierImpl{
		kafka:   client,
		topic:   cfg.Kafka.Topics.Notifications,
		enabled: cfg.Kafka.Enable && client != nil,
	}
}

func (n *notifierImpl) Error(ctx context.Context, entity, message string) {
	log.Warn().Str("entity", entity).Msg(message)

	n.publish(ctx, LevelError, entity, message)
}

func (n *notifierImpl) Success(ctx context.Context, entity, message string) {
	log.Info().Str("entity", entity).Msg(message)

	n.publish(ctx, LevelSuccess, entity, message)
}

func (n *notifierImpl) publish(ctx context.Context, level Level, entity, message string) {
	if !n.enabled {
		return
	}

	notification := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		Entity:    entity,
		Timestamp: timezone.Format(timezone.Now(), constant.DateFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := n.kafka.SendMessages(c, n.topic, kafka.Message{Key: entity, Value: notification}); err != nil {
			log.Error().Err(err).Str("entity", entity).Msg("failed to publish notification")
		}
	}()
}
