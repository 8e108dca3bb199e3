// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"carelink-service/internal/app/models"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, account *models.Account) (string, error) {
	args := m.Called(ctx, account)
	return args.String(0), args.Error(1)
}

func (m *AccountRepository) FindByID(ctx context.Context, accountID string) (*models.Account, error) {
	args := m.Called(ctx, accountID)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *AccountRepository) FindByRole(ctx context.Context, role models.Role) ([]models.Account, error) {
	args := m.Called(ctx, role)
	accounts, _ := args.Get(0).([]models.Account)
	return accounts, args.Error(1)
}

func (m *AccountRepository) FindNamesByIDs(ctx context.Context, accountIDs []string) (map[string]string, error) {
	args := m.Called(ctx, accountIDs)
	names, _ := args.Get(0).(map[string]string)
	return names, args.Error(1)
}

func (m *AccountRepository) UpdateProfile(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *AccountRepository) Delete(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *AccountRepository) PushHistory(ctx context.Context, patientID, historyID string) error {
	return m.Called(ctx, patientID, historyID).Error(0)
}

func (m *AccountRepository) PushInquiry(ctx context.Context, patientID, inquiryID string) error {
	return m.Called(ctx, patientID, inquiryID).Error(0)
}

func (m *AccountRepository) PullInquiry(ctx context.Context, patientID, inquiryID string) error {
	return m.Called(ctx, patientID, inquiryID).Error(0)
}

func (m *AccountRepository) AddAvailableDates(ctx context.Context, practitionerID string, dates []time.Time) error {
	return m.Called(ctx, practitionerID, dates).Error(0)
}

func (m *AccountRepository) PullAvailableDate(ctx context.Context, practitionerID string, date time.Time) (bool, error) {
	args := m.Called(ctx, practitionerID, date)
	return args.Bool(0), args.Error(1)
}

func (m *AccountRepository) UpsertRating(ctx context.Context, practitionerID, patientID string, value float64) error {
	return m.Called(ctx, practitionerID, patientID, value).Error(0)
}

type InquiryRepository struct {
	mock.Mock
}

func (m *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) (string, error) {
	args := m.Called(ctx, inquiry)
	return args.String(0), args.Error(1)
}

func (m *InquiryRepository) FindByID(ctx context.Context, inquiryID string) (*models.Inquiry, error) {
	args := m.Called(ctx, inquiryID)
	inquiry, _ := args.Get(0).(*models.Inquiry)
	return inquiry, args.Error(1)
}

func (m *InquiryRepository) FindAll(ctx context.Context) ([]models.Inquiry, error) {
	args := m.Called(ctx)
	inquiries, _ := args.Get(0).([]models.Inquiry)
	return inquiries, args.Error(1)
}

func (m *InquiryRepository) UpdateText(ctx context.Context, inquiryID, text string) error {
	return m.Called(ctx, inquiryID, text).Error(0)
}

func (m *InquiryRepository) Delete(ctx context.Context, inquiryID string) error {
	return m.Called(ctx, inquiryID).Error(0)
}

func (m *InquiryRepository) PushComment(ctx context.Context, inquiryID string, comment *models.Comment) error {
	return m.Called(ctx, inquiryID, comment).Error(0)
}

type HistoryRepository struct {
	mock.Mock
}

func (m *HistoryRepository) Create(ctx context.Context, history *models.History) (string, error) {
	args := m.Called(ctx, history)
	return args.String(0), args.Error(1)
}

func (m *HistoryRepository) FindByID(ctx context.Context, historyID string) (*models.History, error) {
	args := m.Called(ctx, historyID)
	history, _ := args.Get(0).(*models.History)
	return history, args.Error(1)
}

func (m *HistoryRepository) FindByIDs(ctx context.Context, historyIDs []string) ([]models.History, error) {
	args := m.Called(ctx, historyIDs)
	histories, _ := args.Get(0).([]models.History)
	return histories, args.Error(1)
}

func (m *HistoryRepository) FindAll(ctx context.Context) ([]models.History, error) {
	args := m.Called(ctx)
	histories, _ := args.Get(0).([]models.History)
	return histories, args.Error(1)
}

func (m *HistoryRepository) Update(ctx context.Context, history *models.History) error {
	return m.Called(ctx, history).Error(0)
}

func (m *HistoryRepository) DeleteAndUnlink(ctx context.Context, historyID string) (bool, error) {
	args := m.Called(ctx, historyID)
	return args.Bool(0), args.Error(1)
}

type ReservationRepository struct {
	mock.Mock
}

func (m *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) (string, error) {
	args := m.Called(ctx, reservation)
	return args.String(0), args.Error(1)
}

func (m *ReservationRepository) FindBetween(ctx context.Context, from, to time.Time) ([]models.Reservation, error) {
	args := m.Called(ctx, from, to)
	reservations, _ := args.Get(0).([]models.Reservation)
	return reservations, args.Error(1)
}
