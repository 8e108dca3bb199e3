package controllers

import (
	"bytes"
	"carelink-service/internal/app/contracts/mocks"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testPatientID      = "65a000000000000000000001"
	testPractitionerID = "65a000000000000000000002"
	testInquiryID      = "65a000000000000000000003"
	testHistoryID      = "65a000000000000000000004"
)

var (
	patientSession      = &models.Session{AccountID: testPatientID, Role: models.RolePatient}
	practitionerSession = &models.Session{AccountID: testPractitionerID, Role: models.RolePractitioner}
)

// serve routes a single request through a chi router so URL params resolve.
func serve(method, pattern, target string, body string, session *models.Session, handler http.HandlerFunc) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, handler)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if session != nil {
		req = req.WithContext(utils.WithSession(req.Context(), session))
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestAuthController_Signup(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)
		authUsecase.On("Signup", mock.Anything, mock.MatchedBy(func(r *requests.Signup) bool {
			return r.Email == "ana@example.com" && r.Role == "Patient"
		})).Return(&responses.Auth{Token: "jwt"}, nil)
		ctrl := NewAuthController(zap.NewNop(), authUsecase)

		body := `{"email":" Ana@Example.com ","password":"Secret123!","role":"Patient","name":"Ana","contact":"0812"}`
		rr := serve("POST", "/signup", "/signup", body, nil, ctrl.Signup)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, true, decodeBody(t, rr)["success"])
		authUsecase.AssertExpectations(t)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)
		ctrl := NewAuthController(zap.NewNop(), authUsecase)

		rr := serve("POST", "/signup", "/signup", `{"email":`, nil, ctrl.Signup)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		authUsecase.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Role", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)
		ctrl := NewAuthController(zap.NewNop(), authUsecase)

		body := `{"email":"ana@example.com","password":"Secret123!","role":"Admin","name":"Ana","contact":"0812"}`
		rr := serve("POST", "/signup", "/signup", body, nil, ctrl.Signup)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		authUsecase.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)
		authUsecase.On("Signup", mock.Anything, mock.Anything).Return(nil, exceptions.ErrEmailAlreadyExist(nil, "ana@example.com"))
		ctrl := NewAuthController(zap.NewNop(), authUsecase)

		body := `{"email":"ana@example.com","password":"Secret123!","role":"Patient","name":"Ana","contact":"0812"}`
		rr := serve("POST", "/signup", "/signup", body, nil, ctrl.Signup)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestAuthController_ValidateToken(t *testing.T) {
	t.Run("Missing Header", func(t *testing.T) {
		ctrl := NewAuthController(zap.NewNop(), new(mocks.AuthUsecase))

		rr := serve("GET", "/validate-token", "/validate-token", "", nil, ctrl.ValidateToken)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Valid Token", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)
		authUsecase.On("ValidateToken", mock.Anything, &requests.ValidateToken{Token: "jwt"}).
			Return(&responses.AccountSummary{ID: testPatientID}, nil)
		ctrl := NewAuthController(zap.NewNop(), authUsecase)

		router := chi.NewRouter()
		router.Get("/validate-token", ctrl.ValidateToken)
		req := httptest.NewRequest("GET", "/validate-token", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer jwt")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		data := decodeBody(t, rr)["data"].(map[string]interface{})
		assert.Equal(t, testPatientID, data["id"])
	})
}

func TestAccountController_ReserveDate(t *testing.T) {
	t.Run("Practitioner Id From Path", func(t *testing.T) {
		accountUsecase := new(mocks.AccountUsecase)
		accountUsecase.On("ReserveDate", mock.Anything, patientSession, mock.MatchedBy(func(r *requests.ReserveDate) bool {
			return r.PractitionerID == testPractitionerID && !r.Date.IsZero()
		})).Return(&responses.Account{ID: testPractitionerID}, nil)
		ctrl := NewAccountController(zap.NewNop(), accountUsecase)

		rr := serve("PUT", "/reserve-date/{id}", "/reserve-date/"+testPractitionerID,
			`{"date":"2026-10-20T09:00:00Z"}`, patientSession, ctrl.ReserveDate)

		assert.Equal(t, http.StatusOK, rr.Code)
		accountUsecase.AssertExpectations(t)
	})

	t.Run("Calendar Date Is Midnight UTC", func(t *testing.T) {
		accountUsecase := new(mocks.AccountUsecase)
		want := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
		accountUsecase.On("ReserveDate", mock.Anything, patientSession, mock.MatchedBy(func(r *requests.ReserveDate) bool {
			return r.Date.Time().Equal(want)
		})).Return(&responses.Account{ID: testPractitionerID}, nil)
		ctrl := NewAccountController(zap.NewNop(), accountUsecase)

		rr := serve("PUT", "/reserve-date/{id}", "/reserve-date/"+testPractitionerID,
			`{"date":"2026-10-20"}`, patientSession, ctrl.ReserveDate)

		assert.Equal(t, http.StatusOK, rr.Code)
		accountUsecase.AssertExpectations(t)
	})

	t.Run("Unparseable Date", func(t *testing.T) {
		accountUsecase := new(mocks.AccountUsecase)
		ctrl := NewAccountController(zap.NewNop(), accountUsecase)

		rr := serve("PUT", "/reserve-date/{id}", "/reserve-date/"+testPractitionerID,
			`{"date":"20/10/2026"}`, patientSession, ctrl.ReserveDate)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		accountUsecase.AssertNotCalled(t, "ReserveDate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Date", func(t *testing.T) {
		accountUsecase := new(mocks.AccountUsecase)
		ctrl := NewAccountController(zap.NewNop(), accountUsecase)

		rr := serve("PUT", "/reserve-date/{id}", "/reserve-date/"+testPractitionerID,
			`{}`, patientSession, ctrl.ReserveDate)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		accountUsecase.AssertNotCalled(t, "ReserveDate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("No Session", func(t *testing.T) {
		accountUsecase := new(mocks.AccountUsecase)
		ctrl := NewAccountController(zap.NewNop(), accountUsecase)

		rr := serve("PUT", "/reserve-date/{id}", "/reserve-date/"+testPractitionerID,
			`{"date":"2026-10-20T09:00:00Z"}`, nil, ctrl.ReserveDate)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		accountUsecase.AssertNotCalled(t, "ReserveDate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Forbidden From Usecase", func(t *testing.T) {
		accountUsecase := new(mocks.AccountUsecase)
		accountUsecase.On("ReserveDate", mock.Anything, practitionerSession, mock.Anything).
			Return(nil, exceptions.ErrOnlyPatientsAllowed(nil, string(models.RolePractitioner)))
		ctrl := NewAccountController(zap.NewNop(), accountUsecase)

		rr := serve("PUT", "/reserve-date/{id}", "/reserve-date/"+testPractitionerID,
			`{"date":"2026-10-20T09:00:00Z"}`, practitionerSession, ctrl.ReserveDate)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestAccountController_AddAvailableDates(t *testing.T) {
	t.Run("Calendar Dates And Timestamps", func(t *testing.T) {
		accountUsecase := new(mocks.AccountUsecase)
		accountUsecase.On("AddAvailableDates", mock.Anything, practitionerSession, mock.MatchedBy(func(r *requests.AddAvailableDates) bool {
			times := requests.DateTimes(r.Dates)
			return r.PractitionerID == testPractitionerID && len(times) == 2 &&
				times[0].Equal(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)) &&
				times[1].Equal(time.Date(2026, 10, 21, 9, 30, 0, 0, time.UTC))
		})).Return(&responses.Account{ID: testPractitionerID}, nil)
		ctrl := NewAccountController(zap.NewNop(), accountUsecase)

		rr := serve("PUT", "/add-available-dates/{id}", "/add-available-dates/"+testPractitionerID,
			`{"dates":["2026-10-20","2026-10-21T09:30:00Z"]}`, practitionerSession, ctrl.AddAvailableDates)

		assert.Equal(t, http.StatusOK, rr.Code)
		accountUsecase.AssertExpectations(t)
	})

	t.Run("Empty Dates", func(t *testing.T) {
		accountUsecase := new(mocks.AccountUsecase)
		ctrl := NewAccountController(zap.NewNop(), accountUsecase)

		rr := serve("PUT", "/add-available-dates/{id}", "/add-available-dates/"+testPractitionerID,
			`{"dates":[]}`, practitionerSession, ctrl.AddAvailableDates)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		accountUsecase.AssertNotCalled(t, "AddAvailableDates", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAccountController_RatePractitioner(t *testing.T) {
	t.Run("Out Of Range", func(t *testing.T) {
		accountUsecase := new(mocks.AccountUsecase)
		ctrl := NewAccountController(zap.NewNop(), accountUsecase)

		rr := serve("PUT", "/rate-practitioner/{id}", "/rate-practitioner/"+testPractitionerID,
			`{"patientId":"`+testPatientID+`","value":7}`, patientSession, ctrl.RatePractitioner)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		accountUsecase.AssertNotCalled(t, "RatePractitioner", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Zero Is Accepted", func(t *testing.T) {
		accountUsecase := new(mocks.AccountUsecase)
		accountUsecase.On("RatePractitioner", mock.Anything, patientSession, mock.MatchedBy(func(r *requests.RatePractitioner) bool {
			return r.Value != nil && *r.Value == 0
		})).Return(&responses.Account{ID: testPractitionerID}, nil)
		ctrl := NewAccountController(zap.NewNop(), accountUsecase)

		rr := serve("PUT", "/rate-practitioner/{id}", "/rate-practitioner/"+testPractitionerID,
			`{"patientId":"`+testPatientID+`","value":0}`, patientSession, ctrl.RatePractitioner)

		assert.Equal(t, http.StatusOK, rr.Code)
		accountUsecase.AssertExpectations(t)
	})
}

func TestAccountController_DeleteHistory(t *testing.T) {
	accountUsecase := new(mocks.AccountUsecase)
	accountUsecase.On("DeleteHistory", mock.Anything, patientSession, &requests.UnlinkHistory{
		AccountID: testPatientID,
		HistoryID: testHistoryID,
	}).Return(nil)
	ctrl := NewAccountController(zap.NewNop(), accountUsecase)

	rr := serve("DELETE", "/delete-history/{userId}/{historyId}",
		"/delete-history/"+testPatientID+"/"+testHistoryID, "", patientSession, ctrl.DeleteHistory)

	assert.Equal(t, http.StatusOK, rr.Code)
	accountUsecase.AssertExpectations(t)
}

func TestInquiryController_AddComment(t *testing.T) {
	t.Run("Inquiry Not Found", func(t *testing.T) {
		inquiryUsecase := new(mocks.InquiryUsecase)
		inquiryUsecase.On("AddComment", mock.Anything, practitionerSession, mock.Anything).
			Return(nil, exceptions.ErrInquiryNotExist(nil, testInquiryID))
		ctrl := NewInquiryController(zap.NewNop(), inquiryUsecase)

		rr := serve("POST", "/add-comment/{id}", "/add-comment/"+testInquiryID,
			`{"practitionerId":"`+testPractitionerID+`","text":"rest"}`, practitionerSession, ctrl.AddComment)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Empty Text", func(t *testing.T) {
		inquiryUsecase := new(mocks.InquiryUsecase)
		ctrl := NewInquiryController(zap.NewNop(), inquiryUsecase)

		rr := serve("POST", "/add-comment/{id}", "/add-comment/"+testInquiryID,
			`{"practitionerId":"`+testPractitionerID+`","text":"   "}`, practitionerSession, ctrl.AddComment)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Created", func(t *testing.T) {
		inquiryUsecase := new(mocks.InquiryUsecase)
		inquiryUsecase.On("AddComment", mock.Anything, practitionerSession, mock.MatchedBy(func(r *requests.AddComment) bool {
			return r.InquiryID == testInquiryID && r.Text == "rest"
		})).Return(&responses.Inquiry{ID: testInquiryID}, nil)
		ctrl := NewInquiryController(zap.NewNop(), inquiryUsecase)

		rr := serve("POST", "/add-comment/{id}", "/add-comment/"+testInquiryID,
			`{"practitionerId":"`+testPractitionerID+`","text":" rest "}`, practitionerSession, ctrl.AddComment)

		assert.Equal(t, http.StatusCreated, rr.Code)
		inquiryUsecase.AssertExpectations(t)
	})
}

func TestInquiryController_ListInquiries(t *testing.T) {
	t.Run("Deadline Exceeded", func(t *testing.T) {
		inquiryUsecase := new(mocks.InquiryUsecase)
		inquiryUsecase.On("ListInquiries", mock.Anything).Return(nil, context.DeadlineExceeded)
		ctrl := NewInquiryController(zap.NewNop(), inquiryUsecase)

		rr := serve("GET", "/all-inquiries", "/all-inquiries", "", nil, ctrl.ListInquiries)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	t.Run("Ok", func(t *testing.T) {
		inquiryUsecase := new(mocks.InquiryUsecase)
		inquiryUsecase.On("ListInquiries", mock.Anything).Return([]responses.Inquiry{{ID: testInquiryID, UserName: "Ana"}}, nil)
		ctrl := NewInquiryController(zap.NewNop(), inquiryUsecase)

		rr := serve("GET", "/all-inquiries", "/all-inquiries", "", nil, ctrl.ListInquiries)

		assert.Equal(t, http.StatusOK, rr.Code)
		data := decodeBody(t, rr)["data"].([]interface{})
		require.Len(t, data, 1)
	})
}

func TestHistoryController_UploadMedia(t *testing.T) {
	newUploadRequest := func(t *testing.T, field string) *http.Request {
		t.Helper()
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile(field, "scan.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/upload-media", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return req.WithContext(utils.WithSession(req.Context(), patientSession))
	}

	t.Run("Uploaded", func(t *testing.T) {
		historyUsecase := new(mocks.HistoryUsecase)
		historyUsecase.On("UploadMedia", mock.Anything, patientSession, mock.MatchedBy(func(r *requests.UploadHistoryMedia) bool {
			return r.FileHeader != nil && r.FileHeader.Filename == "scan.png"
		})).Return(&responses.UploadedMedia{URL: "http://minio/histories/scan.png"}, nil)
		ctrl := NewHistoryController(zap.NewNop(), historyUsecase)

		rr := httptest.NewRecorder()
		ctrl.UploadMedia(rr, newUploadRequest(t, constvars.FormFieldMedia))

		assert.Equal(t, http.StatusCreated, rr.Code)
		historyUsecase.AssertExpectations(t)
	})

	t.Run("Wrong Field", func(t *testing.T) {
		historyUsecase := new(mocks.HistoryUsecase)
		ctrl := NewHistoryController(zap.NewNop(), historyUsecase)

		rr := httptest.NewRecorder()
		ctrl.UploadMedia(rr, newUploadRequest(t, "file"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		historyUsecase.AssertNotCalled(t, "UploadMedia", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHistoryController_CreateHistory(t *testing.T) {
	historyUsecase := new(mocks.HistoryUsecase)
	historyUsecase.On("CreateHistory", mock.Anything, patientSession, mock.MatchedBy(func(r *requests.CreateHistory) bool {
		return r.PatientID == testPatientID && r.Title == "Blood test"
	})).Return(&responses.History{ID: testHistoryID}, nil)
	ctrl := NewHistoryController(zap.NewNop(), historyUsecase)

	rr := serve("POST", "/add-history/{patientId}", "/add-history/"+testPatientID,
		`{"title":"Blood test","description":"fasting"}`, patientSession, ctrl.CreateHistory)

	assert.Equal(t, http.StatusCreated, rr.Code)
	historyUsecase.AssertExpectations(t)
}
