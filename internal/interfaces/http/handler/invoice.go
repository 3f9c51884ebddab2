package handler

import (
	"github.com/acme/backend/internal/application/sponsor"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/acme/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler serves the invoices of a sponsorship
type InvoiceHandler struct {
	BaseHandler
	invoiceService *sponsor.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *sponsor.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// masterID reads the masterId query parameter. Like a malformed path id, a
// malformed master fails authorisation.
func (h *InvoiceHandler) masterID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.MasterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.Forbidden(c, "Access to this resource is forbidden")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.MasterID)
	if err != nil {
		h.Forbidden(c, "Access to this resource is forbidden")
		return uuid.Nil, false
	}
	return id, true
}

// List godoc
// @Summary      List the invoices of a sponsorship
// @Tags         sponsor-invoices
// @Produce      json
// @Param        masterId query string true "Sponsorship ID" format(uuid)
// @Success      200 {object} APIResponse[sponsor.InvoiceList]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sponsor/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	masterID, ok := h.masterID(c)
	if !ok {
		return
	}

	list, err := h.invoiceService.ListMine(c.Request.Context(), h.requestAs(c, identity.RoleSponsor), masterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, list)
}

// GetByID godoc
// @Summary      Show an invoice
// @Tags         sponsor-invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[sponsor.InvoiceResponse]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sponsor/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.invoiceService.Show(c.Request.Context(), h.requestAs(c, identity.RoleSponsor), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Create godoc
// @Summary      Create an invoice
// @Description  Only the owner of a draft sponsorship may add invoices to it
// @Tags         sponsor-invoices
// @Accept       json
// @Produce      json
// @Param        masterId query string              true "Sponsorship ID" format(uuid)
// @Param        request  body  sponsor.InvoiceInput true "Invoice"
// @Success      201 {object} APIResponse[sponsor.InvoiceResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sponsor/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	masterID, ok := h.masterID(c)
	if !ok {
		return
	}
	req := h.requestAs(c, identity.RoleSponsor)
	if err := h.invoiceService.AuthoriseCreate(c.Request.Context(), req, masterID); err != nil {
		h.HandleError(c, err)
		return
	}
	var in sponsor.InvoiceInput
	if !h.bindJSON(c, &in) {
		return
	}

	resp, err := h.invoiceService.Create(c.Request.Context(), req, masterID, in)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update godoc
// @Summary      Update a draft invoice
// @Tags         sponsor-invoices
// @Accept       json
// @Produce      json
// @Param        id      path string              true "Invoice ID" format(uuid)
// @Param        request body sponsor.InvoiceInput true "Invoice"
// @Success      200 {object} APIResponse[sponsor.InvoiceResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sponsor/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	req := h.requestAs(c, identity.RoleSponsor)
	if err := h.invoiceService.AuthoriseEdit(c.Request.Context(), req, id); err != nil {
		h.HandleError(c, err)
		return
	}
	var in sponsor.InvoiceInput
	if !h.bindJSON(c, &in) {
		return
	}

	resp, err := h.invoiceService.Update(c.Request.Context(), req, id, in)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Publish godoc
// @Summary      Publish an invoice
// @Tags         sponsor-invoices
// @Accept       json
// @Produce      json
// @Param        id      path string              true "Invoice ID" format(uuid)
// @Param        request body sponsor.InvoiceInput true "Invoice"
// @Success      200 {object} APIResponse[sponsor.InvoiceResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sponsor/invoices/{id}/publish [post]
func (h *InvoiceHandler) Publish(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	req := h.requestAs(c, identity.RoleSponsor)
	if err := h.invoiceService.AuthoriseEdit(c.Request.Context(), req, id); err != nil {
		h.HandleError(c, err)
		return
	}
	var in sponsor.InvoiceInput
	if !h.bindJSON(c, &in) {
		return
	}

	resp, err := h.invoiceService.Publish(c.Request.Context(), req, id, in)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a draft invoice
// @Tags         sponsor-invoices
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sponsor/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), h.requestAs(c, identity.RoleSponsor), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Document godoc
// @Summary      Invoice PDF
// @Description  Renders the invoice to PDF and returns a time-limited download link
// @Tags         sponsor-invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[sponsor.DocumentResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sponsor/invoices/{id}/document [get]
func (h *InvoiceHandler) Document(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.invoiceService.Document(c.Request.Context(), h.requestAs(c, identity.RoleSponsor), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
