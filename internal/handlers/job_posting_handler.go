package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/dto"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/session"
	"jobboard_backend/pkg/apperrors"
)

type JobPostingHandler struct {
	*BaseHandler
	jobService        services.JobService
	activationService services.ActivationService
	sessions          session.Store
}

func NewJobPostingHandler(
	base *BaseHandler,
	jobService services.JobService,
	activationService services.ActivationService,
	sessions session.Store,
) *JobPostingHandler {
	return &JobPostingHandler{
		BaseHandler:       base,
		jobService:        jobService,
		activationService: activationService,
		sessions:          sessions,
	}
}

func (h *JobPostingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("/:id", h.GetJob)
	}

	authed := rg.Group("/jobs")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.CreateJob)
		authed.POST("/activate", h.Activate)
		authed.POST("/process-payment", h.ProcessPayment)
		authed.GET("/payment-success", h.PaymentSuccess)
	}

	admin := rg.Group("/admin/jobs")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/unassigned-organizations", h.UnassignedOrganizations)
	}
}

func (h *JobPostingHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.jobService.CreateJob(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *JobPostingHandler) GetJob(c *gin.Context) {
	resp, err := h.jobService.GetJob(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Activate handles the form submission that publishes a posting with
// invoice billing. Browser form posts get a flash plus redirect; API
// clients get the result as JSON.
func (h *JobPostingHandler) Activate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ActivateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if req.PaymentMethod != "invoice" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Card payments go through /jobs/process-payment"))
		return
	}

	result, err := h.activationService.ActivateWithInvoice(c.Request.Context(), userID, req.JobID, req.Duration)
	if err != nil {
		if h.wantsRedirect(c, req.Redirect) {
			h.flashAndRedirect(c, userID, "", "Your job posting could not be activated.", req.Redirect)
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	if h.wantsRedirect(c, req.Redirect) {
		notice := fmt.Sprintf("Your job posting is now live for %d months ($%d). An invoice will be sent to your email.",
			result.DurationMonths, result.Amount)
		if result.Status == services.ActivationStatusAlreadyActive {
			notice = "Your job posting is already live."
		}
		h.flashAndRedirect(c, userID, notice, "", req.Redirect)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *JobPostingHandler) ProcessPayment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ProcessPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	outcome, err := h.activationService.ProcessCardPayment(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// PaymentSuccess is the hosted-checkout return URL.
func (h *JobPostingHandler) PaymentSuccess(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID := c.Query("jobId")
	sessionID := c.Query("session_id")
	if jobID == "" || sessionID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing jobId or session_id"))
		return
	}

	result, err := h.activationService.CompleteCheckout(c.Request.Context(), userID, jobID, sessionID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *JobPostingHandler) UnassignedOrganizations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	resp, err := h.jobService.UnassignedOrganizations(c.Request.Context(), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobPostingHandler) wantsRedirect(c *gin.Context, redirect string) bool {
	return redirect != "" && c.ContentType() == "application/x-www-form-urlencoded"
}

func (h *JobPostingHandler) flashAndRedirect(c *gin.Context, userID, notice, errMsg, redirect string) {
	ctx := c.Request.Context()
	if redirect == "" {
		redirect = "/"
	}
	if notice != "" {
		if err := session.SetNotice(ctx, h.sessions, userID, notice); err != nil {
			logger.CtxWithError(ctx, "Failed to set flash notice", err)
		}
	}
	if errMsg != "" {
		if err := session.SetError(ctx, h.sessions, userID, errMsg); err != nil {
			logger.CtxWithError(ctx, "Failed to set flash error", err)
		}
	}
	c.Redirect(http.StatusSeeOther, redirect)
}
