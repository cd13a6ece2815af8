package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/dto"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/session"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"
)

type stubJobService struct {
	created *dto.CreateJobRequest
	resp    *dto.JobResponse
	err     error
}

func (s *stubJobService) CreateJob(_ context.Context, _ string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	s.created = req
	return s.resp, s.err
}

func (s *stubJobService) GetJob(_ context.Context, _ string, _ bool) (*dto.JobResponse, error) {
	return s.resp, s.err
}

func (s *stubJobService) UnassignedOrganizations(_ context.Context, _ int) (*dto.UnassignedOrganizationsResponse, error) {
	return &dto.UnassignedOrganizationsResponse{}, s.err
}

type stubActivationService struct {
	result    *dto.ActivationResult
	outcome   *dto.CardPaymentOutcome
	err       error
	lastJobID string
}

func (s *stubActivationService) ActivateWithInvoice(_ context.Context, _, jobID string, _ int) (*dto.ActivationResult, error) {
	s.lastJobID = jobID
	return s.result, s.err
}

func (s *stubActivationService) ProcessCardPayment(_ context.Context, _ string, _ *dto.ProcessPaymentRequest) (*dto.CardPaymentOutcome, error) {
	return s.outcome, s.err
}

func (s *stubActivationService) CompleteCheckout(_ context.Context, _, jobID, _ string) (*dto.ActivationResult, error) {
	s.lastJobID = jobID
	return s.result, s.err
}

func (s *stubActivationService) PriceFor(durationMonths int) int {
	if durationMonths == 12 {
		return 400
	}
	return 300
}

func newTestRouter(jobSvc *stubJobService, actSvc *stubActivationService) (*gin.Engine, session.Store) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	base := NewBaseHandler(validator.New())
	store := session.NewMemoryStore()
	h := NewJobPostingHandler(base, jobSvc, actSvc, store)

	// Fake auth: routes under test always run as u1
	authed := router.Group("/api/v1")
	authed.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, "u1")
	})
	jobs := authed.Group("/jobs")
	{
		jobs.POST("", h.CreateJob)
		jobs.POST("/activate", h.Activate)
		jobs.POST("/process-payment", h.ProcessPayment)
		jobs.GET("/payment-success", h.PaymentSuccess)
	}
	return router, store
}

func TestCreateJob_ValidationErrors(t *testing.T) {
	router, _ := newTestRouter(&stubJobService{}, &stubActivationService{})

	body := `{"title":"Organist","body":"x","country":"mars"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "country")
}

func TestCreateJob_Success(t *testing.T) {
	jobSvc := &stubJobService{resp: &dto.JobResponse{ID: "job-1", Slug: "organist"}}
	router, _ := newTestRouter(jobSvc, &stubActivationService{})

	body := `{"title":"Organist","body":"x","country":"unitedStates","state":"NY"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, jobSvc.created)
	assert.Equal(t, "NY", jobSvc.created.State)

	var resp dto.JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "job-1", resp.ID)
}

func TestActivate_InvalidDuration(t *testing.T) {
	router, _ := newTestRouter(&stubJobService{}, &stubActivationService{})

	body := `{"job_id":"job-1","duration":9,"payment_method":"invoice"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/activate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "duration")
}

func TestActivate_InvoiceJSON(t *testing.T) {
	actSvc := &stubActivationService{result: &dto.ActivationResult{
		Status:         "activated",
		JobID:          "job-1",
		Amount:         400,
		DurationMonths: 12,
	}}
	router, _ := newTestRouter(&stubJobService{}, actSvc)

	body := `{"job_id":"job-1","duration":12,"payment_method":"invoice"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/activate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "job-1", actSvc.lastJobID)

	var result dto.ActivationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 400, result.Amount)
}

func TestActivate_FormPostRedirects(t *testing.T) {
	actSvc := &stubActivationService{result: &dto.ActivationResult{
		Status:         "activated",
		JobID:          "job-1",
		Amount:         400,
		DurationMonths: 12,
	}}
	router, store := newTestRouter(&stubJobService{}, actSvc)

	form := url.Values{
		"job_id":         {"job-1"},
		"duration":       {"12"},
		"payment_method": {"invoice"},
		"redirect":       {"/jobs/posted"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/activate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/jobs/posted", w.Header().Get("Location"))

	notice, _, err := session.TakeFlashes(context.Background(), store, "u1")
	require.NoError(t, err)
	assert.Contains(t, notice, "$400")
}

func TestActivate_CardMethodRejected(t *testing.T) {
	router, _ := newTestRouter(&stubJobService{}, &stubActivationService{})

	body := `{"job_id":"job-1","duration":12,"payment_method":"credit"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/activate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessPayment_RequiresAction(t *testing.T) {
	actSvc := &stubActivationService{outcome: &dto.CardPaymentOutcome{
		RequiresAction: true,
		PaymentIntent:  &dto.PaymentIntentRef{ID: "pi_1", ClientSecret: "sec"},
	}}
	router, _ := newTestRouter(&stubJobService{}, actSvc)

	body := `{"payment_method_id":"pm_1","duration":6}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/process-payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var outcome dto.CardPaymentOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
	assert.True(t, outcome.RequiresAction)
	require.NotNil(t, outcome.PaymentIntent)
	assert.Equal(t, "pi_1", outcome.PaymentIntent.ID)
}

func TestPaymentSuccess_MissingParams(t *testing.T) {
	router, _ := newTestRouter(&stubJobService{}, &stubActivationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/payment-success?jobId=job-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentSuccess_NotOwner(t *testing.T) {
	actSvc := &stubActivationService{err: apperrors.ErrNotJobOwner}
	router, _ := newTestRouter(&stubJobService{}, actSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/payment-success?jobId=job-1&session_id=cs_1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
