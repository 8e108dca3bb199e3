package controllers

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Signup called", zap.String(constvars.LoggingRequestIDKey, requestID))

	// Bind body to request
	request := new(requests.Signup)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeSignupRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AuthUsecase.Signup(ctx, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Signup error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.Signup succeeded", zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccessMessage, response)
}

func (ctrl *AuthController) Signin(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Signin called", zap.String(constvars.LoggingRequestIDKey, requestID))

	// Bind body to request
	request := new(requests.Signin)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeSigninRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AuthUsecase.Signin(ctx, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Signin error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.Signin succeeded", zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SigninSuccessMessage, response)
}

// ValidateToken verifies the bearer token and returns the account it belongs to.
func (ctrl *AuthController) ValidateToken(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.ValidateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	token := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))
	if token == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	response, err := ctrl.AuthUsecase.ValidateToken(ctx, &requests.ValidateToken{Token: token})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ValidateTokenSuccessMessage, response)
}
