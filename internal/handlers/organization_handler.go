package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/dto"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
)

type OrganizationHandler struct {
	*BaseHandler
	orgService services.OrganizationService
}

func NewOrganizationHandler(base *BaseHandler, orgService services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		BaseHandler: base,
		orgService:  orgService,
	}
}

func (h *OrganizationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orgs := rg.Group("/organizations")
	{
		orgs.GET("/:id", h.GetOrganization)
	}

	authed := rg.Group("/organizations")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.CreateOrganization)
	}
}

func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrganizationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.orgService.CreateOrganization(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	resp, err := h.orgService.GetOrganization(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
