package mailer

import (
	"carelink-service/internal/app/drivers/mailer"
	"carelink-service/internal/pkg/dto/requests"
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestSMTPMailerService(t *testing.T) {
	payload := &requests.EmailPayload{
		To:      []string{"jane@example.com"},
		Subject: "Appointment Reminder",
		Body:    "See you tomorrow",
	}

	t.Run("Builds Message", func(t *testing.T) {
		var gotAddr, gotFrom string
		var gotMsg []byte
		svc := &smtpMailerService{
			Client:      &mailer.SMTPClient{Host: "smtp.local", Port: 2525},
			EmailSender: "noreply@carelink.local",
			sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
				gotAddr, gotFrom, gotMsg = addr, from, msg
				return nil
			},
		}

		require.NoError(t, svc.SendEmail(context.Background(), payload))
		assert.Equal(t, "smtp.local:2525", gotAddr)
		assert.Equal(t, "noreply@carelink.local", gotFrom)
		assert.Contains(t, string(gotMsg), "Subject: Appointment Reminder")
		assert.Contains(t, string(gotMsg), "To: jane@example.com")
	})

	t.Run("Relay Failure", func(t *testing.T) {
		svc := &smtpMailerService{
			Client: &mailer.SMTPClient{Host: "smtp.local", Port: 2525},
			sendMail: func(string, smtp.Auth, string, []string, []byte) error {
				return errors.New("connection refused")
			},
		}
		assert.Error(t, svc.SendEmail(context.Background(), payload))
	})
}

func TestQueueMailerService(t *testing.T) {
	ctx := context.Background()
	payload := &requests.EmailPayload{To: []string{"jane@example.com"}, Subject: "s", Body: "b"}

	t.Run("Publishes JSON Payload", func(t *testing.T) {
		channel := new(MockPublisher)
		svc := NewQueueMailerService(channel, "mailer")

		channel.On("PublishWithContext", ctx, "", "mailer", false, false, mock.MatchedBy(func(msg amqp091.Publishing) bool {
			var decoded requests.EmailPayload
			return json.Unmarshal(msg.Body, &decoded) == nil && decoded.To[0] == "jane@example.com"
		})).Return(nil)

		require.NoError(t, svc.SendEmail(ctx, payload))
		channel.AssertExpectations(t)
	})

	t.Run("Publish Failure", func(t *testing.T) {
		channel := new(MockPublisher)
		svc := NewQueueMailerService(channel, "mailer")
		channel.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("channel closed"))

		assert.Error(t, svc.SendEmail(ctx, payload))
	})
}
