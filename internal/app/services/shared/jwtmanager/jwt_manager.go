package jwtmanager

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const defaultTokenTTL = time.Hour

var (
	errEmptySecret  = errors.New("JWT_SECRET is empty")
	errEmptySubject = errors.New("subject is required")
	errInvalidToken = errors.New("token is invalid")
)

// JWTManager signs and verifies HS256 session tokens.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, errEmptySecret
	}

	ttl := time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

var _ contracts.TokenManager = (*JWTManager)(nil)

// CreateToken issues a token carrying the account id as subject and its role,
// expiring ttl after issue.
func (j *JWTManager) CreateToken(ctx context.Context, in *contracts.TokenClaims) (string, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Info("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.AccountID) == "" {
		return "", errEmptySubject
	}

	now := j.now().UTC()
	claims := sessionClaims{
		Role: in.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   in.AccountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// VerifyToken rejects malformed, wrongly signed and expired tokens.
func (j *JWTManager) VerifyToken(ctx context.Context, token string) (*contracts.TokenClaims, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Info("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if strings.TrimSpace(token) == "" {
		return nil, errInvalidToken
	}

	claims := &sessionClaims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, errInvalidToken
	}
	if !claims.ExpiresAt.After(j.now()) {
		return nil, errInvalidToken
	}

	return &contracts.TokenClaims{
		AccountID: claims.Subject,
		Role:      models.Role(claims.Role),
	}, nil
}
