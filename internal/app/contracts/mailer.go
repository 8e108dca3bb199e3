package contracts

import (
	"carelink-service/internal/pkg/dto/requests"
	"context"
)

// MailerService delivers a single email, either directly or through a queue.
type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
