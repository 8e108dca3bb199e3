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

// multipartMemoryLimit is the part of a multipart body kept in memory, the rest spills to temp files.
const multipartMemoryLimit = 8 << 20

type HistoryController struct {
	Log            *zap.Logger
	HistoryUsecase contracts.HistoryUsecase
}

func NewHistoryController(logger *zap.Logger, historyUsecase contracts.HistoryUsecase) *HistoryController {
	return &HistoryController{
		Log:            logger,
		HistoryUsecase: historyUsecase,
	}
}

func (ctrl *HistoryController) ListHistories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := usecaseContext(r)
	defer cancel()

	response, err := ctrl.HistoryUsecase.ListHistories(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHistoriesSuccessMessage, response)
}

func (ctrl *HistoryController) GetHistory(w http.ResponseWriter, r *http.Request) {
	historyID, err := urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	response, err := ctrl.HistoryUsecase.GetHistory(ctx, historyID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHistorySuccessMessage, response)
}

func (ctrl *HistoryController) CreateHistory(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("HistoryController.CreateHistory called", zap.String(constvars.LoggingRequestIDKey, requestID))

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.CreateHistory)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PatientID, err = urlParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeCreateHistoryRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.HistoryUsecase.CreateHistory(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("HistoryController.CreateHistory error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("HistoryController.CreateHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHistoryIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateHistorySuccessMessage, response)
}

func (ctrl *HistoryController) UploadMedia(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("HistoryController.UploadMedia called", zap.String(constvars.LoggingRequestIDKey, requestID))

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = r.ParseMultipartForm(multipartMemoryLimit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.FormFieldMedia)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	request := &requests.UploadHistoryMedia{
		File:       file,
		FileHeader: fileHeader,
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	response, err := ctrl.HistoryUsecase.UploadMedia(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("HistoryController.UploadMedia error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadHistoryMediaSuccessMessage, response)
}

func (ctrl *HistoryController) UpdateHistory(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateHistory)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.HistoryID, err = urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateHistoryRequest(request)

	ctx, cancel := usecaseContext(r)
	defer cancel()

	response, err := ctrl.HistoryUsecase.UpdateHistory(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("HistoryController.UpdateHistory error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHistoryIDKey, request.HistoryID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateHistorySuccessMessage, response)
}

func (ctrl *HistoryController) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	historyID, err := urlParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := usecaseContext(r)
	defer cancel()

	err = ctrl.HistoryUsecase.DeleteHistory(ctx, session, historyID)
	if err != nil {
		ctrl.Log.Error("HistoryController.DeleteHistory error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHistoryIDKey, historyID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteHistorySuccessMessage, nil)
}
