package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Signup(ctx context.Context, request *requests.Signup) (*responses.Auth, error)
	Signin(ctx context.Context, request *requests.Signin) (*responses.Auth, error)
	ValidateToken(ctx context.Context, request *requests.ValidateToken) (*responses.AccountSummary, error)
	// Authenticate verifies token and resolves the session from the current account record.
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

type TokenClaims struct {
	AccountID string
	Role      models.Role
}

type TokenManager interface {
	CreateToken(ctx context.Context, claims *TokenClaims) (string, error)
	VerifyToken(ctx context.Context, token string) (*TokenClaims, error)
}
