package notify_test

import (
	"context"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/shared/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotifier_PublishesWhenEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topics.Notifications = "frontdesk.notifications"

	published := make(chan kafka.Message, 1)

	client.EXPECT().
		SendMessages(gomock.Any(), "frontdesk.notifications", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			published <- messages[0]

			return nil
		})

	notify.New(cfg, client).Error(context.Background(), "booking", "Failed to create booking")

	select {
	case message := <-published:
		assert.Equal(t, "booking", message.Key)

		notification, ok := message.Value.(notify.Notification)
		require.True(t, ok)
		assert.Equal(t, notify.LevelError, notification.Level)
		assert.Equal(t, "Failed to create booking", notification.Message)
		assert.NotEmpty(t, notification.ID)
	case <-time.After(time.Second):
		t.Fatal("notification was not published")
	}
}

func TestNotifier_SkipsKafkaWhenDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	notifier := notify.New(&config.Config{}, client)

	notifier.Success(context.Background(), "room", "Room created")
	notifier.Error(context.Background(), "room", "Failed to create room")
}
