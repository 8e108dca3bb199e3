package auth

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/app/services/shared/ratelimiter"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AccountRepository contracts.AccountRepository
	AccountUsecase    contracts.AccountUsecase
	TokenManager      contracts.TokenManager
	SigninLimiter     *ratelimiter.ResourceLimiter
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	accountRepository contracts.AccountRepository,
	accountUsecase contracts.AccountUsecase,
	tokenManager contracts.TokenManager,
	signinLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AccountRepository: accountRepository,
		AccountUsecase:    accountUsecase,
		TokenManager:      tokenManager,
		SigninLimiter:     signinLimiter,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

// Signup creates the account and signs it in.
func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Auth, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	account, err := uc.AccountUsecase.CreateAccount(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Signup error creating account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	summary := responses.AccountSummary{
		ID:    account.ID,
		Email: account.Email,
		Role:  account.Role,
		Name:  account.Name,
	}
	token, err := uc.issueToken(ctx, account.ID, models.Role(account.Role))
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, account.ID),
	)
	return &responses.Auth{Token: token, User: summary}, nil
}

func (uc *authUsecase) Signin(ctx context.Context, request *requests.Signin) (*responses.Auth, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Signin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Throttle attempts per email before touching the account
	limiterInput := &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      request.Email,
		LimiterGroupName:  constvars.RedisKeySigninLimiterGroup,
		WindowDurationSec: uc.InternalConfig.App.SigninWindowInSeconds,
		MaxQuota:          uc.InternalConfig.App.SigninMaxAttempts,
		NowUTC:            time.Now().UTC(),
	}
	if uc.SigninLimiter != nil {
		limit, err := uc.SigninLimiter.ApplyResourceLimiter(ctx, limiterInput)
		if err != nil {
			return nil, err
		}
		if !limit.Allowed {
			uc.Log.Warn("authUsecase.Signin attempts exhausted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int("retry_after_secs", limit.RetryAfterSecs),
			)
			return nil, exceptions.ErrTooManyRequests(nil, constvars.RedisKeySigninLimiterGroup)
		}
	}

	account, err := uc.AccountRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrAccountNotExist(nil, request.Email)
	}

	if !utils.CheckPasswordHash(request.Password, account.Password) {
		uc.Log.Warn("authUsecase.Signin wrong password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccountIDKey, account.ID),
		)
		return nil, exceptions.ErrInvalidCredentials(nil, request.Email)
	}

	token, err := uc.issueToken(ctx, account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	// Only failed attempts count against the quota
	if uc.SigninLimiter != nil {
		if err := uc.SigninLimiter.ResetResourceLimiter(ctx, limiterInput); err != nil {
			uc.Log.Warn("authUsecase.Signin could not reset attempts",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("authUsecase.Signin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, account.ID),
	)
	return &responses.Auth{Token: token, User: utils.BuildAccountSummary(account)}, nil
}

func (uc *authUsecase) ValidateToken(ctx context.Context, request *requests.ValidateToken) (*responses.AccountSummary, error) {
	account, err := uc.resolveAccount(ctx, request.Token)
	if err != nil {
		return nil, err
	}
	summary := utils.BuildAccountSummary(account)
	return &summary, nil
}

func (uc *authUsecase) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	account, err := uc.resolveAccount(ctx, token)
	if err != nil {
		return nil, err
	}

	return &models.Session{
		AccountID: account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
	}, nil
}

// resolveAccount verifies token and loads the account it names. The role claim
// is ignored, callers use the role of the stored account.
func (uc *authUsecase) resolveAccount(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	claims, err := uc.TokenManager.VerifyToken(ctx, token)
	if err != nil {
		uc.Log.Info("authUsecase rejected token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	account, err := uc.AccountRepository.FindByID(ctx, claims.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return account, nil
}

func (uc *authUsecase) issueToken(ctx context.Context, accountID string, role models.Role) (string, error) {
	token, err := uc.TokenManager.CreateToken(ctx, &contracts.TokenClaims{AccountID: accountID, Role: role})
	if err != nil {
		uc.Log.Error("authUsecase error creating token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAccountIDKey, accountID),
			zap.Error(err),
		)
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}
