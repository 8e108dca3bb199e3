package mocks

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/dto/requests"
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/stretchr/testify/mock"
)

type RedisRepository struct {
	mock.Mock
}

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *RedisRepository) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, exp)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int, error) {
	args := m.Called(ctx, key, exp)
	return args.Int(0), args.Error(1)
}

func (m *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *LockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, file, fileHeader, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MailerService struct {
	mock.Mock
}

func (m *MailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	return m.Called(ctx, request).Error(0)
}

type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) CreateToken(ctx context.Context, claims *contracts.TokenClaims) (string, error) {
	args := m.Called(ctx, claims)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) VerifyToken(ctx context.Context, token string) (*contracts.TokenClaims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*contracts.TokenClaims)
	return claims, args.Error(1)
}
