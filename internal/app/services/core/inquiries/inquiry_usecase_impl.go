package inquiries

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type inquiryUsecase struct {
	InquiryRepository contracts.InquiryRepository
	AccountRepository contracts.AccountRepository
	Log               *zap.Logger
}

func NewInquiryUsecase(
	inquiryRepository contracts.InquiryRepository,
	accountRepository contracts.AccountRepository,
	logger *zap.Logger,
) contracts.InquiryUsecase {
	return &inquiryUsecase{
		InquiryRepository: inquiryRepository,
		AccountRepository: accountRepository,
		Log:               logger,
	}
}

// ListInquiries returns every inquiry newest first with owner and commenter
// names resolved at read time.
func (uc *inquiryUsecase) ListInquiries(ctx context.Context) ([]responses.Inquiry, error) {
	inquiries, err := uc.InquiryRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names, err := uc.resolveNames(ctx, inquiries...)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Inquiry, 0, len(inquiries))
	for i := range inquiries {
		result = append(result, buildInquiry(&inquiries[i], names))
	}
	return result, nil
}

func (uc *inquiryUsecase) GetInquiry(ctx context.Context, inquiryID string) (*responses.Inquiry, error) {
	inquiry, err := uc.findInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	return uc.render(ctx, inquiry)
}

func (uc *inquiryUsecase) CreateInquiry(ctx context.Context, session *models.Session, request *requests.CreateInquiry) (*responses.Inquiry, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrOnlyPatientsAllowed(nil, session.Role.String())
	}
	if request.UserID != "" && request.UserID != session.AccountID {
		return nil, exceptions.ErrCallerMismatch(nil, session.AccountID, request.UserID)
	}

	inquiry := &models.Inquiry{
		UserID:   session.AccountID,
		Inquiry:  request.Inquiry,
		Comments: []models.Comment{},
	}
	inquiry.SetCreatedAtUpdatedAt()

	inquiryID, err := uc.InquiryRepository.Create(ctx, inquiry)
	if err != nil {
		return nil, err
	}
	inquiry.ID = inquiryID

	// Link the inquiry into the owner's profile, dropping it when that fails
	err = uc.AccountRepository.PushInquiry(ctx, session.AccountID, inquiryID)
	if err != nil {
		if deleteErr := uc.InquiryRepository.Delete(ctx, inquiryID); deleteErr != nil {
			uc.Log.Error("inquiryUsecase.CreateInquiry error removing unlinked inquiry",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingInquiryIDKey, inquiryID),
				zap.Error(deleteErr),
			)
		}
		return nil, err
	}

	uc.Log.Info("inquiryUsecase.CreateInquiry succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingInquiryIDKey, inquiryID),
		zap.String(constvars.LoggingPatientIDKey, session.AccountID),
	)
	response := buildInquiry(inquiry, map[string]string{session.AccountID: session.Name})
	return &response, nil
}

func (uc *inquiryUsecase) UpdateInquiry(ctx context.Context, session *models.Session, request *requests.UpdateInquiry) (*responses.Inquiry, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	inquiry, err := uc.findOwnedInquiry(ctx, session, request.InquiryID)
	if err != nil {
		return nil, err
	}

	err = uc.InquiryRepository.UpdateText(ctx, inquiry.ID, request.Inquiry)
	if err != nil {
		return nil, err
	}
	inquiry.Inquiry = request.Inquiry
	inquiry.SetUpdatedAt()
	return uc.render(ctx, inquiry)
}

func (uc *inquiryUsecase) DeleteInquiry(ctx context.Context, session *models.Session, inquiryID string) error {
	if err := requireSession(session); err != nil {
		return err
	}

	inquiry, err := uc.findOwnedInquiry(ctx, session, inquiryID)
	if err != nil {
		return err
	}

	err = uc.InquiryRepository.Delete(ctx, inquiry.ID)
	if err != nil {
		return err
	}
	return uc.AccountRepository.PullInquiry(ctx, inquiry.UserID, inquiry.ID)
}

// AddComment appends a practitioner comment. Existing comments are never modified.
func (uc *inquiryUsecase) AddComment(ctx context.Context, session *models.Session, request *requests.AddComment) (*responses.Inquiry, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	inquiry, err := uc.findInquiry(ctx, request.InquiryID)
	if err != nil {
		return nil, err
	}
	if !session.IsPractitioner() {
		return nil, exceptions.ErrOnlyPractitionersAllowed(nil, session.Role.String())
	}
	if request.PractitionerID != "" && request.PractitionerID != session.AccountID {
		return nil, exceptions.ErrCallerMismatch(nil, session.AccountID, request.PractitionerID)
	}

	comment := &models.Comment{
		PractitionerID: session.AccountID,
		Text:           request.Text,
		CreatedAt:      time.Now().UTC(),
	}
	err = uc.InquiryRepository.PushComment(ctx, inquiry.ID, comment)
	if err != nil {
		return nil, err
	}
	inquiry.Comments = append(inquiry.Comments, *comment)
	inquiry.UpdatedAt = comment.CreatedAt

	uc.Log.Info("inquiryUsecase.AddComment succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingInquiryIDKey, inquiry.ID),
		zap.String(constvars.LoggingPractitionerIDKey, session.AccountID),
	)
	return uc.render(ctx, inquiry)
}

func (uc *inquiryUsecase) findInquiry(ctx context.Context, inquiryID string) (*models.Inquiry, error) {
	inquiry, err := uc.InquiryRepository.FindByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, exceptions.ErrInquiryNotExist(nil, inquiryID)
	}
	return inquiry, nil
}

func (uc *inquiryUsecase) findOwnedInquiry(ctx context.Context, session *models.Session, inquiryID string) (*models.Inquiry, error) {
	inquiry, err := uc.findInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inquiry.UserID != session.AccountID {
		return nil, exceptions.ErrNotResourceOwner(nil, session.AccountID, inquiryID)
	}
	return inquiry, nil
}

func (uc *inquiryUsecase) render(ctx context.Context, inquiry *models.Inquiry) (*responses.Inquiry, error) {
	names, err := uc.resolveNames(ctx, *inquiry)
	if err != nil {
		return nil, err
	}
	response := buildInquiry(inquiry, names)
	return &response, nil
}

// resolveNames looks up the display names of every owner and commenter with a
// single query. Deleted accounts are simply absent from the result.
func (uc *inquiryUsecase) resolveNames(ctx context.Context, inquiries ...models.Inquiry) (map[string]string, error) {
	accountIDs := make([]string, 0, len(inquiries))
	for _, inquiry := range inquiries {
		accountIDs = append(accountIDs, inquiry.UserID)
		for _, comment := range inquiry.Comments {
			accountIDs = append(accountIDs, comment.PractitionerID)
		}
	}
	if len(accountIDs) == 0 {
		return map[string]string{}, nil
	}
	return uc.AccountRepository.FindNamesByIDs(ctx, accountIDs)
}

func buildInquiry(inquiry *models.Inquiry, names map[string]string) responses.Inquiry {
	return utils.BuildInquiryResponse(inquiry, names, constvars.UnknownUserName, constvars.UnknownPractitionerName)
}

func requireSession(session *models.Session) error {
	if session == nil || session.AccountID == "" {
		return exceptions.ErrMissingSessionData(nil)
	}
	return nil
}
