package mocks

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Auth, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Auth)
	return response, args.Error(1)
}

func (m *AuthUsecase) Signin(ctx context.Context, request *requests.Signin) (*responses.Auth, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Auth)
	return response, args.Error(1)
}

func (m *AuthUsecase) ValidateToken(ctx context.Context, request *requests.ValidateToken) (*responses.AccountSummary, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.AccountSummary)
	return response, args.Error(1)
}

func (m *AuthUsecase) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

type AccountUsecase struct {
	mock.Mock
}

func (m *AccountUsecase) GetProfile(ctx context.Context, accountID string) (*responses.Account, error) {
	args := m.Called(ctx, accountID)
	response, _ := args.Get(0).(*responses.Account)
	return response, args.Error(1)
}

func (m *AccountUsecase) GetPatients(ctx context.Context) ([]responses.Account, error) {
	args := m.Called(ctx)
	response, _ := args.Get(0).([]responses.Account)
	return response, args.Error(1)
}

func (m *AccountUsecase) GetPractitioners(ctx context.Context) ([]responses.Account, error) {
	args := m.Called(ctx)
	response, _ := args.Get(0).([]responses.Account)
	return response, args.Error(1)
}

func (m *AccountUsecase) CreateAccount(ctx context.Context, request *requests.Signup) (*responses.Account, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Account)
	return response, args.Error(1)
}

func (m *AccountUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.EditAccount) (*responses.Account, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Account)
	return response, args.Error(1)
}

func (m *AccountUsecase) DeleteAccount(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *AccountUsecase) AddAvailableDates(ctx context.Context, session *models.Session, request *requests.AddAvailableDates) (*responses.Account, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Account)
	return response, args.Error(1)
}

func (m *AccountUsecase) ReserveDate(ctx context.Context, session *models.Session, request *requests.ReserveDate) (*responses.Account, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Account)
	return response, args.Error(1)
}

func (m *AccountUsecase) RatePractitioner(ctx context.Context, session *models.Session, request *requests.RatePractitioner) (*responses.Account, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Account)
	return response, args.Error(1)
}

func (m *AccountUsecase) DeleteHistory(ctx context.Context, session *models.Session, request *requests.UnlinkHistory) error {
	return m.Called(ctx, session, request).Error(0)
}

type InquiryUsecase struct {
	mock.Mock
}

func (m *InquiryUsecase) ListInquiries(ctx context.Context) ([]responses.Inquiry, error) {
	args := m.Called(ctx)
	response, _ := args.Get(0).([]responses.Inquiry)
	return response, args.Error(1)
}

func (m *InquiryUsecase) GetInquiry(ctx context.Context, inquiryID string) (*responses.Inquiry, error) {
	args := m.Called(ctx, inquiryID)
	response, _ := args.Get(0).(*responses.Inquiry)
	return response, args.Error(1)
}

func (m *InquiryUsecase) CreateInquiry(ctx context.Context, session *models.Session, request *requests.CreateInquiry) (*responses.Inquiry, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Inquiry)
	return response, args.Error(1)
}

func (m *InquiryUsecase) UpdateInquiry(ctx context.Context, session *models.Session, request *requests.UpdateInquiry) (*responses.Inquiry, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Inquiry)
	return response, args.Error(1)
}

func (m *InquiryUsecase) DeleteInquiry(ctx context.Context, session *models.Session, inquiryID string) error {
	return m.Called(ctx, session, inquiryID).Error(0)
}

func (m *InquiryUsecase) AddComment(ctx context.Context, session *models.Session, request *requests.AddComment) (*responses.Inquiry, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Inquiry)
	return response, args.Error(1)
}

type HistoryUsecase struct {
	mock.Mock
}

func (m *HistoryUsecase) ListHistories(ctx context.Context) ([]responses.History, error) {
	args := m.Called(ctx)
	response, _ := args.Get(0).([]responses.History)
	return response, args.Error(1)
}

func (m *HistoryUsecase) GetHistory(ctx context.Context, historyID string) (*responses.History, error) {
	args := m.Called(ctx, historyID)
	response, _ := args.Get(0).(*responses.History)
	return response, args.Error(1)
}

func (m *HistoryUsecase) CreateHistory(ctx context.Context, session *models.Session, request *requests.CreateHistory) (*responses.History, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.History)
	return response, args.Error(1)
}

func (m *HistoryUsecase) UpdateHistory(ctx context.Context, session *models.Session, request *requests.UpdateHistory) (*responses.History, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.History)
	return response, args.Error(1)
}

func (m *HistoryUsecase) DeleteHistory(ctx context.Context, session *models.Session, historyID string) error {
	return m.Called(ctx, session, historyID).Error(0)
}

func (m *HistoryUsecase) UploadMedia(ctx context.Context, session *models.Session, request *requests.UploadHistoryMedia) (*responses.UploadedMedia, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.UploadedMedia)
	return response, args.Error(1)
}

type ReminderUsecase struct {
	mock.Mock
}

func (m *ReminderUsecase) SendDailyReminders(ctx context.Context, now time.Time) (*contracts.ReminderResult, error) {
	args := m.Called(ctx, now)
	result, _ := args.Get(0).(*contracts.ReminderResult)
	return result, args.Error(1)
}
