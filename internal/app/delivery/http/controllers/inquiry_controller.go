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

type InquiryController struct {
	Log            *zap.Logger
	InquiryUsecase contracts.InquiryUsecase
}

func NewInquiryController(logger *zap.Logger, inquiryUsecase contracts.InquiryUsecase) *InquiryController {
	return &InquiryController{
		Log:            logger,
		InquiryUsecase: inquiryUsecase,
	}
}

func (ctrl *InquiryController) ListInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := usecaseContext(r)
	defer cancel()

	response, err := ctrl.InquiryUsecase.ListInquiries(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInquiriesSuccessMessage, response)
}

func (ctrl *InquiryController) GetInquiry(w http.ResponseWriter, r *http.Request) {
	inquiryID, err := urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	response, err := ctrl.InquiryUsecase.GetInquiry(ctx, inquiryID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInquirySuccessMessage, response)
}

func (ctrl *InquiryController) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("InquiryController.CreateInquiry called", zap.String(constvars.LoggingRequestIDKey, requestID))

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.CreateInquiry)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeCreateInquiryRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.InquiryUsecase.CreateInquiry(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("InquiryController.CreateInquiry error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("InquiryController.CreateInquiry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInquiryIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateInquirySuccessMessage, response)
}

func (ctrl *InquiryController) AddComment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("InquiryController.AddComment called", zap.String(constvars.LoggingRequestIDKey, requestID))

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.AddComment)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.InquiryID, err = urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeAddCommentRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.InquiryUsecase.AddComment(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("InquiryController.AddComment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInquiryIDKey, request.InquiryID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddCommentSuccessMessage, response)
}

func (ctrl *InquiryController) UpdateInquiry(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.UpdateInquiry)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.InquiryID, err = urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateInquiryRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	response, err := ctrl.InquiryUsecase.UpdateInquiry(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("InquiryController.UpdateInquiry error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateInquirySuccessMessage, response)
}

func (ctrl *InquiryController) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	inquiryID, err := urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	err = ctrl.InquiryUsecase.DeleteInquiry(ctx, session, inquiryID)
	if err != nil {
		ctrl.Log.Error("InquiryController.DeleteInquiry error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInquiryIDKey, inquiryID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteInquirySuccessMessage, nil)
}
