package accounts

import (
	"carelink-service/internal/app/contracts/mocks"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	practitionerID = "65a000000000000000000001"
	patientID      = "65a000000000000000000002"
	otherPatientID = "65a000000000000000000003"
	historyID      = "65a0000000000000000000aa"
)

type accountMocks struct {
	accounts     *mocks.AccountRepository
	histories    *mocks.HistoryRepository
	reservations *mocks.ReservationRepository
}

func newTestUsecase() (*accountUsecase, *accountMocks) {
	m := &accountMocks{
		accounts:     new(mocks.AccountRepository),
		histories:    new(mocks.HistoryRepository),
		reservations: new(mocks.ReservationRepository),
	}
	uc := NewAccountUsecase(m.accounts, m.histories, m.reservations, zap.NewNop()).(*accountUsecase)
	return uc, m
}

func practitionerAccount(days []time.Time, ratings []models.Rating) *models.Account {
	return &models.Account{
		ID:   practitionerID,
		Name: "Dr. Grey",
		Role: models.RolePractitioner,
		Practitioner: &models.PractitionerProfile{
			Profession:    "Surgeon",
			AvailableDays: days,
			Ratings:       ratings,
		},
	}
}

func patientAccount(id string, history ...string) *models.Account {
	return &models.Account{
		ID:      id,
		Name:    "Jane",
		Email:   "jane@example.com",
		Role:    models.RolePatient,
		Patient: &models.PatientProfile{History: history, Inquiries: []string{}},
	}
}

func patientSession(id string) *models.Session {
	return &models.Session{AccountID: id, Email: "jane@example.com", Name: "Jane", Role: models.RolePatient}
}

func practitionerSession(id string) *models.Session {
	return &models.Session{AccountID: id, Name: "Dr. Grey", Role: models.RolePractitioner}
}

func TestAccountUsecase_AddAvailableDates(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Deduplicates Before Storing", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, practitionerID).Return(practitionerAccount(nil, nil), nil).Once()
		m.accounts.On("AddAvailableDates", ctx, practitionerID, []time.Time{day}).Return(nil)
		m.accounts.On("FindByID", ctx, practitionerID).Return(practitionerAccount([]time.Time{day}, nil), nil).Once()

		response, err := uc.AddAvailableDates(ctx, practitionerSession(practitionerID), &requests.AddAvailableDates{
			PractitionerID: practitionerID,
			Dates:          []requests.Date{requests.Date(day), requests.Date(day)},
		})
		require.NoError(t, err)
		assert.Equal(t, []time.Time{day}, response.AvailableDays)
		m.accounts.AssertExpectations(t)
	})

	t.Run("Target Is Patient", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, patientID).Return(patientAccount(patientID), nil)

		_, err := uc.AddAvailableDates(ctx, patientSession(patientID), &requests.AddAvailableDates{
			PractitionerID: patientID,
			Dates:          []requests.Date{requests.Date(day)},
		})
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
		m.accounts.AssertNotCalled(t, "AddAvailableDates", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Other Practitioner Forbidden", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, practitionerID).Return(practitionerAccount(nil, nil), nil)

		_, err := uc.AddAvailableDates(ctx, practitionerSession("65a0000000000000000000ff"), &requests.AddAvailableDates{
			PractitionerID: practitionerID,
			Dates:          []requests.Date{requests.Date(day)},
		})
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
		m.accounts.AssertNotCalled(t, "AddAvailableDates", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAccountUsecase_ReserveDate(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	request := &requests.ReserveDate{PractitionerID: practitionerID, Date: requests.Date(day)}

	t.Run("Removes Date And Records Reservation", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, practitionerID).Return(practitionerAccount([]time.Time{day}, nil), nil).Once()
		m.accounts.On("PullAvailableDate", ctx, practitionerID, day).Return(true, nil)
		m.reservations.On("Create", ctx, mock.MatchedBy(func(r *models.Reservation) bool {
			return r.PatientID == patientID && r.PatientEmail == "jane@example.com" && r.Date.Equal(day) && r.PractitionerName == "Dr. Grey"
		})).Return("r1", nil)
		m.accounts.On("FindByID", ctx, practitionerID).Return(practitionerAccount([]time.Time{}, nil), nil).Once()

		response, err := uc.ReserveDate(ctx, patientSession(patientID), request)
		require.NoError(t, err)
		assert.Empty(t, response.AvailableDays)
		m.reservations.AssertExpectations(t)
	})

	t.Run("Absent Date Succeeds Without Reservation", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, practitionerID).Return(practitionerAccount(nil, nil), nil)
		m.accounts.On("PullAvailableDate", ctx, practitionerID, day).Return(false, nil)

		_, err := uc.ReserveDate(ctx, patientSession(patientID), request)
		require.NoError(t, err)
		m.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Reservation Record Failure Is Not Fatal", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, practitionerID).Return(practitionerAccount(nil, nil), nil)
		m.accounts.On("PullAvailableDate", ctx, practitionerID, day).Return(true, nil)
		m.reservations.On("Create", ctx, mock.Anything).Return("", errors.New("write failed"))

		_, err := uc.ReserveDate(ctx, patientSession(patientID), request)
		assert.NoError(t, err)
	})

	t.Run("Practitioner Caller Forbidden Before Mutation", func(t *testing.T) {
		uc, m := newTestUsecase()

		_, err := uc.ReserveDate(ctx, practitionerSession(practitionerID), request)
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
		m.accounts.AssertNotCalled(t, "PullAvailableDate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Session Unauthorized", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.ReserveDate(ctx, nil, request)
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
	})
}

func TestAccountUsecase_RatePractitioner(t *testing.T) {
	ctx := context.Background()
	value := func(v float64) *float64 { return &v }

	t.Run("Upserts And Returns Average", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, practitionerID).Return(practitionerAccount(nil, nil), nil).Once()
		m.accounts.On("UpsertRating", ctx, practitionerID, patientID, 4.0).Return(nil)
		m.accounts.On("FindByID", ctx, practitionerID).Return(practitionerAccount(nil, []models.Rating{
			{PatientID: patientID, Value: 4},
			{PatientID: otherPatientID, Value: 5},
		}), nil).Once()

		response, err := uc.RatePractitioner(ctx, patientSession(patientID), &requests.RatePractitioner{
			PractitionerID: practitionerID,
			PatientID:      patientID,
			Value:          value(4),
		})
		require.NoError(t, err)
		require.NotNil(t, response.AverageRating)
		assert.Equal(t, 4.5, *response.AverageRating)
		m.accounts.AssertExpectations(t)
	})

	t.Run("Out Of Range Value", func(t *testing.T) {
		uc, m := newTestUsecase()
		_, err := uc.RatePractitioner(ctx, patientSession(patientID), &requests.RatePractitioner{
			PractitionerID: practitionerID,
			Value:          value(5.5),
		})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		m.accounts.AssertNotCalled(t, "UpsertRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Self Rating Forbidden", func(t *testing.T) {
		uc, m := newTestUsecase()
		_, err := uc.RatePractitioner(ctx, practitionerSession(practitionerID), &requests.RatePractitioner{
			PractitionerID: practitionerID,
			Value:          value(5),
		})
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
		m.accounts.AssertNotCalled(t, "UpsertRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Practitioner Caller Forbidden", func(t *testing.T) {
		uc, _ := newTestUsecase()
		_, err := uc.RatePractitioner(ctx, practitionerSession("65a0000000000000000000ff"), &requests.RatePractitioner{
			PractitionerID: practitionerID,
			Value:          value(3),
		})
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
	})

	t.Run("Rating On Behalf Of Another Patient", func(t *testing.T) {
		uc, _ := newTestUsecase()
		_, err := uc.RatePractitioner(ctx, patientSession(patientID), &requests.RatePractitioner{
			PractitionerID: practitionerID,
			PatientID:      otherPatientID,
			Value:          value(3),
		})
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
	})

	t.Run("Target Not Practitioner", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, otherPatientID).Return(patientAccount(otherPatientID), nil)

		_, err := uc.RatePractitioner(ctx, patientSession(patientID), &requests.RatePractitioner{
			PractitionerID: otherPatientID,
			Value:          value(3),
		})
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestAccountUsecase_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient With Resolved Histories", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, patientID).Return(patientAccount(patientID, historyID), nil)
		m.histories.On("FindByIDs", ctx, []string{historyID}).Return([]models.History{{ID: historyID, Title: "Blood test"}}, nil)

		response, err := uc.GetProfile(ctx, patientID)
		require.NoError(t, err)
		require.Len(t, response.Histories, 1)
		assert.Equal(t, "Blood test", response.Histories[0].Title)
		assert.Nil(t, response.AverageRating)
	})

	t.Run("Practitioner Without Ratings Averages Zero", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, practitionerID).Return(practitionerAccount(nil, nil), nil)

		response, err := uc.GetProfile(ctx, practitionerID)
		require.NoError(t, err)
		require.NotNil(t, response.AverageRating)
		assert.Equal(t, 0.0, *response.AverageRating)
		m.histories.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Account", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, patientID).Return(nil, nil)

		_, err := uc.GetProfile(ctx, patientID)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestAccountUsecase_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Editing Another Account Forbidden", func(t *testing.T) {
		uc, m := newTestUsecase()
		_, err := uc.UpdateProfile(ctx, patientSession(patientID), &requests.EditAccount{AccountID: otherPatientID, Name: "X"})
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
		m.accounts.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("Keeps Role And Updates Name", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, patientID).Return(patientAccount(patientID), nil)
		m.accounts.On("UpdateProfile", ctx, mock.MatchedBy(func(a *models.Account) bool {
			return a.Name == "Jane Doe" && a.Role == models.RolePatient
		})).Return(nil)
		m.histories.On("FindByIDs", ctx, mock.Anything).Return([]models.History{}, nil)

		response, err := uc.UpdateProfile(ctx, patientSession(patientID), &requests.EditAccount{AccountID: patientID, Name: "Jane Doe"})
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", response.Name)
		assert.Equal(t, "Patient", response.Role)
	})
}

func TestAccountUsecase_CreateAccount(t *testing.T) {
	ctx := context.Background()
	years := 5

	t.Run("Duplicate Email Conflict", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByEmail", ctx, "doc@example.com").Return(practitionerAccount(nil, nil), nil)

		_, err := uc.CreateAccount(ctx, &requests.Signup{Email: "doc@example.com"})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
	})

	t.Run("Creates Practitioner", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByEmail", ctx, "doc@example.com").Return(nil, nil)
		m.accounts.On("Create", ctx, mock.AnythingOfType("*models.Account")).Return(practitionerID, nil)

		response, err := uc.CreateAccount(ctx, &requests.Signup{
			Email: "doc@example.com", Password: "password123", Role: "Practitioner",
			Name: "Doc", Contact: "1", Profession: "GP", YearsExperience: &years, Location: "Oslo",
		})
		require.NoError(t, err)
		assert.Equal(t, practitionerID, response.ID)
		assert.Equal(t, "GP", response.Profession)
	})
}

func TestAccountUsecase_DeleteHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes Owned History", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, patientID).Return(patientAccount(patientID, historyID), nil)
		m.histories.On("DeleteAndUnlink", ctx, historyID).Return(true, nil)

		err := uc.DeleteHistory(ctx, patientSession(patientID), &requests.UnlinkHistory{AccountID: patientID, HistoryID: historyID})
		assert.NoError(t, err)
		m.histories.AssertExpectations(t)
	})

	t.Run("History Not Linked To Account", func(t *testing.T) {
		uc, m := newTestUsecase()
		m.accounts.On("FindByID", ctx, patientID).Return(patientAccount(patientID), nil)

		err := uc.DeleteHistory(ctx, patientSession(patientID), &requests.UnlinkHistory{AccountID: patientID, HistoryID: historyID})
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
		m.histories.AssertNotCalled(t, "DeleteAndUnlink", mock.Anything, mock.Anything)
	})

	t.Run("Another Patients History Forbidden", func(t *testing.T) {
		uc, _ := newTestUsecase()
		err := uc.DeleteHistory(ctx, patientSession(otherPatientID), &requests.UnlinkHistory{AccountID: patientID, HistoryID: historyID})
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
	})
}

func TestAccountUsecase_GetPatients(t *testing.T) {
	ctx := context.Background()
	uc, m := newTestUsecase()
	broken := models.Account{ID: "65a0000000000000000000ee", Role: models.RolePatient}
	m.accounts.On("FindByRole", ctx, models.RolePatient).Return([]models.Account{*patientAccount(patientID, historyID), broken}, nil)
	m.histories.On("FindByIDs", ctx, []string{historyID}).Return([]models.History{{ID: historyID, Title: "X-ray"}}, nil)

	patients, err := uc.GetPatients(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "X-ray", patients[0].Histories[0].Title)
}
