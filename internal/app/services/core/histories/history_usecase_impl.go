package histories

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
)

const bytesPerMegabyte = 1 << 20

type historyUsecase struct {
	HistoryRepository contracts.HistoryRepository
	AccountRepository contracts.AccountRepository
	MinioStorage      contracts.Storage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewHistoryUsecase(
	historyRepository contracts.HistoryRepository,
	accountRepository contracts.AccountRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.HistoryUsecase {
	return &historyUsecase{
		HistoryRepository: historyRepository,
		AccountRepository: accountRepository,
		MinioStorage:      minioStorage,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *historyUsecase) ListHistories(ctx context.Context) ([]responses.History, error) {
	histories, err := uc.HistoryRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return utils.BuildHistoriesResponse(histories), nil
}

func (uc *historyUsecase) GetHistory(ctx context.Context, historyID string) (*responses.History, error) {
	history, err := uc.findHistory(ctx, historyID)
	if err != nil {
		return nil, err
	}
	response := utils.BuildHistoryResponse(history)
	return &response, nil
}

// CreateHistory stores a history record and links it to the calling patient.
func (uc *historyUsecase) CreateHistory(ctx context.Context, session *models.Session, request *requests.CreateHistory) (*responses.History, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	patient, err := uc.AccountRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if !patient.IsPatient() {
		return nil, exceptions.ErrPatientNotExist(nil, request.PatientID)
	}
	if session.AccountID != patient.ID {
		return nil, exceptions.ErrCallerMismatch(nil, session.AccountID, patient.ID)
	}

	history := &models.History{
		Title:       request.Title,
		Media:       request.Media,
		Description: request.Description,
	}
	history.SetCreatedAtUpdatedAt()

	history.ID, err = uc.HistoryRepository.Create(ctx, history)
	if err != nil {
		return nil, err
	}

	err = uc.AccountRepository.PushHistory(ctx, patient.ID, history.ID)
	if err != nil {
		if _, deleteErr := uc.HistoryRepository.DeleteAndUnlink(ctx, history.ID); deleteErr != nil {
			uc.Log.Error("historyUsecase.CreateHistory error removing unlinked history",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingHistoryIDKey, history.ID),
				zap.Error(deleteErr),
			)
		}
		return nil, err
	}

	uc.Log.Info("historyUsecase.CreateHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingHistoryIDKey, history.ID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	response := utils.BuildHistoryResponse(history)
	return &response, nil
}

func (uc *historyUsecase) UpdateHistory(ctx context.Context, session *models.Session, request *requests.UpdateHistory) (*responses.History, error) {
	history, err := uc.findOwnedHistory(ctx, session, request.HistoryID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		history.Title = *request.Title
	}
	if request.Media != nil {
		history.Media = *request.Media
	}
	if request.Description != nil {
		history.Description = *request.Description
	}
	history.SetUpdatedAt()

	err = uc.HistoryRepository.Update(ctx, history)
	if err != nil {
		return nil, err
	}
	response := utils.BuildHistoryResponse(history)
	return &response, nil
}

func (uc *historyUsecase) DeleteHistory(ctx context.Context, session *models.Session, historyID string) error {
	history, err := uc.findOwnedHistory(ctx, session, historyID)
	if err != nil {
		return err
	}

	deleted, err := uc.HistoryRepository.DeleteAndUnlink(ctx, history.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrHistoryNotExist(nil, historyID)
	}
	return nil
}

// UploadMedia stores the file in the history bucket and returns a URL for it.
// The URL is public when a public base URL is configured, presigned otherwise.
func (uc *historyUsecase) UploadMedia(ctx context.Context, session *models.Session, request *requests.UploadHistoryMedia) (*responses.UploadedMedia, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	limit := int64(uc.InternalConfig.Minio.MaxUploadSizeInMegabyte) * bytesPerMegabyte
	if limit > 0 && request.FileHeader.Size > limit {
		return nil, exceptions.ErrFileTooLarge(nil, request.FileHeader.Size, limit)
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateObjectName(session.AccountID, request.FileHeader.Filename)
	objectName, err := uc.MinioStorage.UploadFile(ctx, request.File, request.FileHeader, bucketName, objectName)
	if err != nil {
		return nil, err
	}

	var url string
	if baseURL := strings.TrimRight(uc.InternalConfig.Minio.PublicBaseUrl, "/"); baseURL != "" {
		url = fmt.Sprintf("%s/%s/%s", baseURL, bucketName, objectName)
	} else {
		expiry := time.Duration(uc.InternalConfig.Minio.PresignedUrlExpiryInHour) * time.Hour
		url, err = uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
		if err != nil {
			return nil, err
		}
	}

	uc.Log.Info("historyUsecase.UploadMedia succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingBucketNameKey, bucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.UploadedMedia{ObjectName: objectName, URL: url}, nil
}

func (uc *historyUsecase) findHistory(ctx context.Context, historyID string) (*models.History, error) {
	history, err := uc.HistoryRepository.FindByID(ctx, historyID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, exceptions.ErrHistoryNotExist(nil, historyID)
	}
	return history, nil
}

// findOwnedHistory loads the history and checks that the caller is a patient
// whose profile references it.
func (uc *historyUsecase) findOwnedHistory(ctx context.Context, session *models.Session, historyID string) (*models.History, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	history, err := uc.findHistory(ctx, historyID)
	if err != nil {
		return nil, err
	}

	account, err := uc.AccountRepository.FindByID(ctx, session.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsPatient() || !slices.Contains(account.Patient.History, historyID) {
		return nil, exceptions.ErrNotResourceOwner(nil, session.AccountID, historyID)
	}
	return history, nil
}

func requireSession(session *models.Session) error {
	if session == nil || session.AccountID == "" {
		return exceptions.ErrMissingSessionData(nil)
	}
	return nil
}
