package controllers

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func usecaseContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), constvars.AppDefaultRequestTimeoutInSeconds*time.Second)
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func sessionFromRequest(r *http.Request) (*models.Session, error) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	return session, nil
}

func urlParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if value == "" {
		return "", exceptions.ErrURLParamIDValidation(nil, name)
	}
	return value, nil
}
