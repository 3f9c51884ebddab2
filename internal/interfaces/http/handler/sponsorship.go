package handler

import (
	"github.com/acme/backend/internal/application/sponsor"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
)

// SponsorshipHandler serves sponsorships to sponsors
type SponsorshipHandler struct {
	BaseHandler
	sponsorshipService *sponsor.SponsorshipService
	dashboardService   *sponsor.DashboardService
}

// NewSponsorshipHandler creates a new SponsorshipHandler
func NewSponsorshipHandler(sponsorshipService *sponsor.SponsorshipService, dashboardService *sponsor.DashboardService) *SponsorshipHandler {
	return &SponsorshipHandler{
		sponsorshipService: sponsorshipService,
		dashboardService:   dashboardService,
	}
}

// List godoc
// @Summary      List my sponsorships
// @Tags         sponsor-sponsorships
// @Produce      json
// @Param        page       query int    false "Page number" default(1)
// @Param        page_size  query int    false "Page size" default(20)
// @Param        order_by   query string false "Order by" Enums(code, moment, start_date, created_at)
// @Param        order_dir  query string false "Order direction" Enums(asc, desc)
// @Param        search     query string false "Code contains"
// @Success      200 {object} APIResponse[[]sponsor.SponsorshipListItem]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sponsor/sponsorships [get]
func (h *SponsorshipHandler) List(c *gin.Context) {
	var filter sponsor.SponsorshipListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.sponsorshipService.ListMine(c.Request.Context(), h.requestAs(c, identity.RoleSponsor), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @Summary      Show a sponsorship
// @Description  Published sponsorships are visible to every sponsor, drafts only to their owner
// @Tags         sponsor-sponsorships
// @Produce      json
// @Param        id path string true "Sponsorship ID" format(uuid)
// @Success      200 {object} APIResponse[sponsor.SponsorshipResponse]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sponsor/sponsorships/{id} [get]
func (h *SponsorshipHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.sponsorshipService.Show(c.Request.Context(), h.requestAs(c, identity.RoleSponsor), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Publish godoc
// @Summary      Publish a sponsorship
// @Description  The sponsorship must be a draft of the caller with a positive amount in an accepted currency
// @Tags         sponsor-sponsorships
// @Produce      json
// @Param        id path string true "Sponsorship ID" format(uuid)
// @Success      200 {object} APIResponse[sponsor.SponsorshipResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sponsor/sponsorships/{id}/publish [post]
func (h *SponsorshipHandler) Publish(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.sponsorshipService.Publish(c.Request.Context(), h.requestAs(c, identity.RoleSponsor), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Dashboard godoc
// @Summary      Sponsor dashboard
// @Description  Invoice counts and per-currency statistics of the calling sponsor
// @Tags         sponsor-dashboard
// @Produce      json
// @Success      200 {object} APIResponse[sponsor.DashboardResponse]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sponsor/dashboard [get]
func (h *SponsorshipHandler) Dashboard(c *gin.Context) {
	resp, err := h.dashboardService.Show(c.Request.Context(), h.requestAs(c, identity.RoleSponsor))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
