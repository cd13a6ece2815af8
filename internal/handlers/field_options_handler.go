package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/fields"
	"jobboard_backend/pkg/apperrors"
)

// FieldOptionsHandler exposes the option sets form fields render from, so
// the frontend never hardcodes them.
type FieldOptionsHandler struct {
	*BaseHandler
}

func NewFieldOptionsHandler(base *BaseHandler) *FieldOptionsHandler {
	return &FieldOptionsHandler{BaseHandler: base}
}

func (h *FieldOptionsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/fields/:handle/options", h.GetOptions)
}

func (h *FieldOptionsHandler) GetOptions(c *gin.Context) {
	handle := c.Param("handle")
	options, ok := fields.Options(handle)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrNotFound(nil, "fields", "Unknown field handle: "+handle))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"handle":  handle,
		"options": options,
	})
}
