package handler

import (
	"github.com/acme/backend/internal/application/administrator"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
)

// SystemConfigurationHandler serves the singleton system configuration
type SystemConfigurationHandler struct {
	BaseHandler
	configService *administrator.SystemConfigurationService
}

// NewSystemConfigurationHandler creates a new SystemConfigurationHandler
func NewSystemConfigurationHandler(configService *administrator.SystemConfigurationService) *SystemConfigurationHandler {
	return &SystemConfigurationHandler{
		configService: configService,
	}
}

// Get godoc
// @Summary      Show the system configuration
// @Description  Readable by any authenticated principal
// @Tags         system-configuration
// @Produce      json
// @Success      200 {object} APIResponse[administrator.SystemConfigurationResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /system-configuration [get]
func (h *SystemConfigurationHandler) Get(c *gin.Context) {
	resp, err := h.configService.Show(c.Request.Context(), h.request(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update the system configuration
// @Description  The system currency must be one of the accepted currencies
// @Tags         system-configuration
// @Accept       json
// @Produce      json
// @Param        request body administrator.SystemConfigurationInput true "Configuration"
// @Success      200 {object} APIResponse[administrator.SystemConfigurationResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /administrator/system-configuration [put]
func (h *SystemConfigurationHandler) Update(c *gin.Context) {
	var in administrator.SystemConfigurationInput
	if !h.bindJSON(c, &in) {
		return
	}

	resp, err := h.configService.Update(c.Request.Context(), h.requestAs(c, identity.RoleAdministrator), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
