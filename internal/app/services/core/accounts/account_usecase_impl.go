package accounts

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"slices"
	"time"

	"go.uber.org/zap"
)

type accountUsecase struct {
	AccountRepository     contracts.AccountRepository
	HistoryRepository     contracts.HistoryRepository
	ReservationRepository contracts.ReservationRepository
	Log                   *zap.Logger
}

func NewAccountUsecase(
	accountRepository contracts.AccountRepository,
	historyRepository contracts.HistoryRepository,
	reservationRepository contracts.ReservationRepository,
	logger *zap.Logger,
) contracts.AccountUsecase {
	return &accountUsecase{
		AccountRepository:     accountRepository,
		HistoryRepository:     historyRepository,
		ReservationRepository: reservationRepository,
		Log:                   logger,
	}
}

func (uc *accountUsecase) GetProfile(ctx context.Context, accountID string) (*responses.Account, error) {
	account, err := uc.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return uc.buildProfile(ctx, account)
}

func (uc *accountUsecase) GetPatients(ctx context.Context) ([]responses.Account, error) {
	patients, err := uc.AccountRepository.FindByRole(ctx, models.RolePatient)
	if err != nil {
		return nil, err
	}

	// Resolve every referenced history with one query
	historyIDs := []string{}
	for _, patient := range patients {
		if patient.IsPatient() {
			historyIDs = append(historyIDs, patient.Patient.History...)
		}
	}
	histories, err := uc.HistoryRepository.FindByIDs(ctx, historyIDs)
	if err != nil {
		return nil, err
	}
	historyByID := make(map[string]models.History, len(histories))
	for _, history := range histories {
		historyByID[history.ID] = history
	}

	result := make([]responses.Account, 0, len(patients))
	for i := range patients {
		if !patients[i].IsPatient() {
			uc.logVariantMismatch(ctx, &patients[i])
			continue
		}
		owned := make([]models.History, 0, len(patients[i].Patient.History))
		for _, historyID := range patients[i].Patient.History {
			if history, ok := historyByID[historyID]; ok {
				owned = append(owned, history)
			}
		}
		response, err := utils.BuildAccountResponse(&patients[i], owned)
		if err != nil {
			uc.logVariantMismatch(ctx, &patients[i])
			continue
		}
		result = append(result, *response)
	}
	return result, nil
}

func (uc *accountUsecase) GetPractitioners(ctx context.Context) ([]responses.Account, error) {
	practitioners, err := uc.AccountRepository.FindByRole(ctx, models.RolePractitioner)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Account, 0, len(practitioners))
	for i := range practitioners {
		response, err := utils.BuildAccountResponse(&practitioners[i], nil)
		if err != nil {
			uc.logVariantMismatch(ctx, &practitioners[i])
			continue
		}
		result = append(result, *response)
	}
	return result, nil
}

func (uc *accountUsecase) CreateAccount(ctx context.Context, request *requests.Signup) (*responses.Account, error) {
	existing, err := uc.AccountRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil, request.Email)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	account, err := utils.BuildAccountFromSignup(request, hashedPassword)
	if err != nil {
		return nil, err
	}

	account.ID, err = uc.AccountRepository.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	return utils.BuildAccountResponse(account, nil)
}

func (uc *accountUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.EditAccount) (*responses.Account, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if session.AccountID != request.AccountID {
		return nil, exceptions.ErrCallerMismatch(nil, session.AccountID, request.AccountID)
	}

	account, err := uc.findAccount(ctx, request.AccountID)
	if err != nil {
		return nil, err
	}

	err = utils.ApplyAccountEdits(account, request)
	if err != nil {
		return nil, err
	}

	err = uc.AccountRepository.UpdateProfile(ctx, account)
	if err != nil {
		return nil, err
	}
	return uc.buildProfile(ctx, account)
}

func (uc *accountUsecase) DeleteAccount(ctx context.Context, accountID string) error {
	if _, err := uc.findAccount(ctx, accountID); err != nil {
		return err
	}
	return uc.AccountRepository.Delete(ctx, accountID)
}

func (uc *accountUsecase) AddAvailableDates(ctx context.Context, session *models.Session, request *requests.AddAvailableDates) (*responses.Account, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	practitioner, err := uc.findPractitioner(ctx, request.PractitionerID)
	if err != nil {
		return nil, err
	}
	if session.AccountID != practitioner.ID {
		return nil, exceptions.ErrCallerMismatch(nil, session.AccountID, practitioner.ID)
	}

	err = uc.AccountRepository.AddAvailableDates(ctx, practitioner.ID, utils.UniqueDates(requests.DateTimes(request.Dates)))
	if err != nil {
		return nil, err
	}
	return uc.reloadProfile(ctx, practitioner.ID)
}

// ReserveDate removes the date from the practitioner's availability. Reserving
// a date that is not available succeeds without changes.
func (uc *accountUsecase) ReserveDate(ctx context.Context, session *models.Session, request *requests.ReserveDate) (*responses.Account, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrOnlyPatientsAllowed(nil, session.Role.String())
	}

	practitioner, err := uc.findPractitioner(ctx, request.PractitionerID)
	if err != nil {
		return nil, err
	}

	date := utils.NormalizeDate(request.Date.Time())
	removed, err := uc.AccountRepository.PullAvailableDate(ctx, practitioner.ID, date)
	if err != nil {
		return nil, err
	}

	if removed {
		uc.recordReservation(ctx, session, practitioner, date)
	}
	return uc.reloadProfile(ctx, practitioner.ID)
}

func (uc *accountUsecase) RatePractitioner(ctx context.Context, session *models.Session, request *requests.RatePractitioner) (*responses.Account, error) {
	if request.Value == nil || !models.IsValidRatingValue(*request.Value) {
		var value float64
		if request.Value != nil {
			value = *request.Value
		}
		return nil, exceptions.ErrInvalidRatingValue(nil, value)
	}
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if request.PractitionerID == session.AccountID {
		return nil, exceptions.ErrSelfRating(nil, session.AccountID)
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrOnlyPatientsAllowed(nil, session.Role.String())
	}
	if request.PatientID != "" && request.PatientID != session.AccountID {
		return nil, exceptions.ErrCallerMismatch(nil, session.AccountID, request.PatientID)
	}

	practitioner, err := uc.findPractitioner(ctx, request.PractitionerID)
	if err != nil {
		return nil, err
	}

	err = uc.AccountRepository.UpsertRating(ctx, practitioner.ID, session.AccountID, *request.Value)
	if err != nil {
		return nil, err
	}
	return uc.reloadProfile(ctx, practitioner.ID)
}

// DeleteHistory deletes a history owned by the caller together with every
// account reference to it.
func (uc *accountUsecase) DeleteHistory(ctx context.Context, session *models.Session, request *requests.UnlinkHistory) error {
	if err := requireSession(session); err != nil {
		return err
	}
	if session.AccountID != request.AccountID {
		return exceptions.ErrCallerMismatch(nil, session.AccountID, request.AccountID)
	}

	account, err := uc.findAccount(ctx, request.AccountID)
	if err != nil {
		return err
	}
	if !account.IsPatient() || !slices.Contains(account.Patient.History, request.HistoryID) {
		return exceptions.ErrHistoryNotExist(nil, request.HistoryID)
	}

	deleted, err := uc.HistoryRepository.DeleteAndUnlink(ctx, request.HistoryID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrHistoryNotExist(nil, request.HistoryID)
	}
	return nil
}

func (uc *accountUsecase) recordReservation(ctx context.Context, session *models.Session, practitioner *models.Account, date time.Time) {
	reservation := &models.Reservation{
		PractitionerID:   practitioner.ID,
		PractitionerName: practitioner.Name,
		PatientID:        session.AccountID,
		PatientName:      session.Name,
		PatientEmail:     session.Email,
		Date:             date,
		CreatedAt:        time.Now().UTC(),
	}

	// the date is already taken at this point, a missing record only costs the reminder
	_, err := uc.ReservationRepository.Create(ctx, reservation)
	if err != nil {
		uc.Log.Error("accountUsecase.ReserveDate failed to record reservation",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingPractitionerIDKey, practitioner.ID),
			zap.String(constvars.LoggingPatientIDKey, session.AccountID),
			zap.Error(err),
		)
	}
}

func (uc *accountUsecase) findAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := uc.AccountRepository.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrAccountNotExist(nil, accountID)
	}
	return account, nil
}

func (uc *accountUsecase) findPractitioner(ctx context.Context, practitionerID string) (*models.Account, error) {
	account, err := uc.AccountRepository.FindByID(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	if !account.IsPractitioner() {
		return nil, exceptions.ErrPractitionerNotExist(nil, practitionerID)
	}
	return account, nil
}

func (uc *accountUsecase) reloadProfile(ctx context.Context, accountID string) (*responses.Account, error) {
	account, err := uc.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return uc.buildProfile(ctx, account)
}

func (uc *accountUsecase) buildProfile(ctx context.Context, account *models.Account) (*responses.Account, error) {
	var histories []models.History
	if account.IsPatient() {
		var err error
		histories, err = uc.HistoryRepository.FindByIDs(ctx, account.Patient.History)
		if err != nil {
			return nil, err
		}
	}

	response, err := utils.BuildAccountResponse(account, histories)
	if err != nil {
		return nil, exceptions.ErrInvalidRoleType(err, account.Role.String())
	}
	return response, nil
}

func (uc *accountUsecase) logVariantMismatch(ctx context.Context, account *models.Account) {
	uc.Log.Warn("accountUsecase skipped account with mismatched role variant",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAccountIDKey, account.ID),
		zap.String(constvars.LoggingRoleKey, account.Role.String()),
	)
}

func requireSession(session *models.Session) error {
	if session == nil || session.AccountID == "" {
		return exceptions.ErrMissingSessionData(nil)
	}
	return nil
}
