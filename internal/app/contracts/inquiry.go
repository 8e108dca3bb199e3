package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type InquiryUsecase interface {
	ListInquiries(ctx context.Context) ([]responses.Inquiry, error)
	GetInquiry(ctx context.Context, inquiryID string) (*responses.Inquiry, error)
	CreateInquiry(ctx context.Context, session *models.Session, request *requests.CreateInquiry) (*responses.Inquiry, error)
	UpdateInquiry(ctx context.Context, session *models.Session, request *requests.UpdateInquiry) (*responses.Inquiry, error)
	DeleteInquiry(ctx context.Context, session *models.Session, inquiryID string) error
	AddComment(ctx context.Context, session *models.Session, request *requests.AddComment) (*responses.Inquiry, error)
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) (inquiryID string, err error)
	FindByID(ctx context.Context, inquiryID string) (*models.Inquiry, error)
	// FindAll returns every inquiry, newest first.
	FindAll(ctx context.Context) ([]models.Inquiry, error)
	UpdateText(ctx context.Context, inquiryID, text string) error
	Delete(ctx context.Context, inquiryID string) error
	PushComment(ctx context.Context, inquiryID string, comment *models.Comment) error
}
