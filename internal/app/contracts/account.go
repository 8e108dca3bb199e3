package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AccountUsecase interface {
	GetProfile(ctx context.Context, accountID string) (*responses.Account, error)
	GetPatients(ctx context.Context) ([]responses.Account, error)
	GetPractitioners(ctx context.Context) ([]responses.Account, error)
	CreateAccount(ctx context.Context, request *requests.Signup) (*responses.Account, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.EditAccount) (*responses.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
	AddAvailableDates(ctx context.Context, session *models.Session, request *requests.AddAvailableDates) (*responses.Account, error)
	ReserveDate(ctx context.Context, session *models.Session, request *requests.ReserveDate) (*responses.Account, error)
	RatePractitioner(ctx context.Context, session *models.Session, request *requests.RatePractitioner) (*responses.Account, error)
	DeleteHistory(ctx context.Context, session *models.Session, request *requests.UnlinkHistory) error
}

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) (accountID string, err error)
	FindByID(ctx context.Context, accountID string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByRole(ctx context.Context, role models.Role) ([]models.Account, error)
	// FindNamesByIDs returns a map of account id to name. Unknown or malformed ids are skipped.
	FindNamesByIDs(ctx context.Context, accountIDs []string) (map[string]string, error)
	UpdateProfile(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, accountID string) error
	PushHistory(ctx context.Context, patientID, historyID string) error
	PushInquiry(ctx context.Context, patientID, inquiryID string) error
	PullInquiry(ctx context.Context, patientID, inquiryID string) error
	AddAvailableDates(ctx context.Context, practitionerID string, dates []time.Time) error
	// PullAvailableDate reports whether a matching date was removed.
	PullAvailableDate(ctx context.Context, practitionerID string, date time.Time) (removed bool, err error)
	UpsertRating(ctx context.Context, practitionerID, patientID string, value float64) error
}
