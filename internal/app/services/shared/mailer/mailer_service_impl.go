package mailer

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/drivers/mailer"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailerService struct {
	Client      *mailer.SMTPClient
	EmailSender string
	sendMail    sendMailFunc
}

// NewSMTPMailerService sends each email directly through the SMTP relay.
func NewSMTPMailerService(client *mailer.SMTPClient, emailSender string) contracts.MailerService {
	return &smtpMailerService{
		Client:      client,
		EmailSender: emailSender,
		sendMail:    smtp.SendMail,
	}
}

func (s *smtpMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte(fmt.Sprintf(
		constvars.EmailSendBasicEmailSubjectFormat,
		s.EmailSender,
		strings.Join(request.To, ", "),
		request.Subject,
		request.Body,
	))
	err := s.sendMail(s.Client.Address(), s.Client.Auth, s.EmailSender, request.To, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}
	return nil
}

// publisher is the part of *amqp091.Channel used for delivery.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type queueMailerService struct {
	Channel publisher
	Queue   string
}

// NewQueueMailerService hands emails to the mailer queue for an external consumer.
func NewQueueMailerService(channel publisher, queue string) contracts.MailerService {
	return &queueMailerService{
		Channel: channel,
		Queue:   queue,
	}
}

func (s *queueMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}
	return nil
}
