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

type AccountController struct {
	Log            *zap.Logger
	AccountUsecase contracts.AccountUsecase
}

func NewAccountController(logger *zap.Logger, accountUsecase contracts.AccountUsecase) *AccountController {
	return &AccountController{
		Log:            logger,
		AccountUsecase: accountUsecase,
	}
}

func (ctrl *AccountController) GetPatients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := usecaseContext(r)
	defer cancel()

	response, err := ctrl.AccountUsecase.GetPatients(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, response)
}

func (ctrl *AccountController) GetPractitioners(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := usecaseContext(r)
	defer cancel()

	response, err := ctrl.AccountUsecase.GetPractitioners(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPractitionersSuccessMessage, response)
}

func (ctrl *AccountController) GetProfile(w http.ResponseWriter, r *http.Request) {
	accountID, err := urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	response, err := ctrl.AccountUsecase.GetProfile(ctx, accountID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, response)
}

// CreateUser is the admin variant of signup. It does not sign the account in.
func (ctrl *AccountController) CreateUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AccountController.CreateUser called", zap.String(constvars.LoggingRequestIDKey, requestID))

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
	response, err := ctrl.AccountUsecase.CreateAccount(ctx, request)
	if err != nil {
		ctrl.Log.Error("AccountController.CreateUser error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AccountController.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUserSuccessMessage, response)
}

func (ctrl *AccountController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	accountID, err := urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	err = ctrl.AccountUsecase.DeleteAccount(ctx, accountID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AccountController.DeleteUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteUserSuccessMessage, nil)
}

func (ctrl *AccountController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AccountController.UpdateProfile called", zap.String(constvars.LoggingRequestIDKey, requestID))

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.EditAccount)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.AccountID, err = urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeEditAccountRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AccountUsecase.UpdateProfile(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("AccountController.UpdateProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateUserSuccessMessage, response)
}

func (ctrl *AccountController) AddAvailableDates(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AccountController.AddAvailableDates called", zap.String(constvars.LoggingRequestIDKey, requestID))

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.AddAvailableDates)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PractitionerID, err = urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AccountUsecase.AddAvailableDates(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("AccountController.AddAvailableDates error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AccountController.AddAvailableDates succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, request.PractitionerID),
		zap.Int(constvars.LoggingCountKey, len(request.Dates)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddAvailableDatesSuccessMessage, response)
}

func (ctrl *AccountController) ReserveDate(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AccountController.ReserveDate called", zap.String(constvars.LoggingRequestIDKey, requestID))

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.ReserveDate)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PractitionerID, err = urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AccountUsecase.ReserveDate(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("AccountController.ReserveDate error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReserveDateSuccessMessage, response)
}

func (ctrl *AccountController) RatePractitioner(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AccountController.RatePractitioner called", zap.String(constvars.LoggingRequestIDKey, requestID))

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.RatePractitioner)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PractitionerID, err = urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeRatePractitionerRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AccountUsecase.RatePractitioner(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("AccountController.RatePractitioner error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RatePractitionerSuccessMessage, response)
}

func (ctrl *AccountController) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UnlinkHistory)
	request.AccountID, err = urlParam(r, constvars.URLParamUserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.HistoryID, err = urlParam(r, constvars.URLParamHistoryID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	err = ctrl.AccountUsecase.DeleteHistory(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("AccountController.DeleteHistory error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHistoryIDKey, request.HistoryID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteHistorySuccessMessage, nil)
}
