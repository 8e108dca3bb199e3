package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type HistoryUsecase interface {
	ListHistories(ctx context.Context) ([]responses.History, error)
	GetHistory(ctx context.Context, historyID string) (*responses.History, error)
	CreateHistory(ctx context.Context, session *models.Session, request *requests.CreateHistory) (*responses.History, error)
	UpdateHistory(ctx context.Context, session *models.Session, request *requests.UpdateHistory) (*responses.History, error)
	DeleteHistory(ctx context.Context, session *models.Session, historyID string) error
	UploadMedia(ctx context.Context, session *models.Session, request *requests.UploadHistoryMedia) (*responses.UploadedMedia, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, history *models.History) (historyID string, err error)
	FindByID(ctx context.Context, historyID string) (*models.History, error)
	FindByIDs(ctx context.Context, historyIDs []string) ([]models.History, error)
	FindAll(ctx context.Context) ([]models.History, error)
	Update(ctx context.Context, history *models.History) error
	// DeleteAndUnlink removes the history and every account reference to it
	// atomically. It reports false when no history had that id.
	DeleteAndUnlink(ctx context.Context, historyID string) (deleted bool, err error)
}
