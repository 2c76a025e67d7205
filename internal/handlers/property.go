package handlers

import (
	"net/http"

	"homeinsight-septic/internal/models"
	"homeinsight-septic/internal/services"
	"homeinsight-septic/internal/validators"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	detailsService *services.PropertyDetailsService
	validator      validators.AddressValidator
}

func NewPropertyHandler(detailsService *services.PropertyDetailsService, validator validators.AddressValidator) *PropertyHandler {
	return &PropertyHandler{
		detailsService: detailsService,
		validator:      validator,
	}
}

// GetPropertyDetails reports whether the property at the given address has
// a septic sewage system. Validation runs before the upstream lookup, so a
// request that cannot be resolved never leaves the process.
func (h *PropertyHandler) GetPropertyDetails(c *gin.Context) {
	var query models.AddressQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.validator.ValidateLookup(&query); err != nil {
		_ = c.Error(err)
		return
	}

	details, err := h.detailsService.GetPropertyDetails(c.Request.Context(), &query)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, details)
}
