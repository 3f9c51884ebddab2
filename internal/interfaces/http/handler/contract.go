package handler

import (
	"github.com/acme/backend/internal/application/client"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
)

// ContractHandler serves the client's contracts
type ContractHandler struct {
	BaseHandler
	contractService *client.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contractService *client.ContractService) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// List godoc
// @Summary      List my contracts
// @Description  Contracts owned by the calling client, paged
// @Tags         client-contracts
// @Produce      json
// @Param        page       query int    false "Page number" default(1)
// @Param        page_size  query int    false "Page size" default(20)
// @Param        order_by   query string false "Order by" Enums(code, instantiation_moment, provider_name, created_at)
// @Param        order_dir  query string false "Order direction" Enums(asc, desc)
// @Param        search     query string false "Code, provider or customer contains"
// @Success      200 {object} APIResponse[[]client.ContractListItem]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /client/contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	var filter client.ContractListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.contractService.ListMine(c.Request.Context(), h.requestAs(c, identity.RoleClient), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @Summary      Show a contract
// @Tags         client-contracts
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Success      200 {object} APIResponse[client.ContractResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /client/contracts/{id} [get]
func (h *ContractHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.contractService.Show(c.Request.Context(), h.requestAs(c, identity.RoleClient), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Create godoc
// @Summary      Create a contract
// @Description  The contract starts in draft mode, owned by the calling client
// @Tags         client-contracts
// @Accept       json
// @Produce      json
// @Param        request body client.ContractInput true "Contract"
// @Success      201 {object} APIResponse[client.ContractResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /client/contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	var in client.ContractInput
	if !h.bindJSON(c, &in) {
		return
	}

	resp, err := h.contractService.Create(c.Request.Context(), h.requestAs(c, identity.RoleClient), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update godoc
// @Summary      Update a draft contract
// @Tags         client-contracts
// @Accept       json
// @Produce      json
// @Param        id      path string             true "Contract ID" format(uuid)
// @Param        request body client.ContractInput true "Contract"
// @Success      200 {object} APIResponse[client.ContractResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /client/contracts/{id} [put]
func (h *ContractHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	req := h.requestAs(c, identity.RoleClient)
	if err := h.contractService.AuthoriseEdit(c.Request.Context(), req, id); err != nil {
		h.HandleError(c, err)
		return
	}
	var in client.ContractInput
	if !h.bindJSON(c, &in) {
		return
	}

	resp, err := h.contractService.Update(c.Request.Context(), req, id, in)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Publish godoc
// @Summary      Publish a contract
// @Description  Applies the submitted form and leaves draft mode; the project's budget cap is checked
// @Tags         client-contracts
// @Accept       json
// @Produce      json
// @Param        id      path string             true "Contract ID" format(uuid)
// @Param        request body client.ContractInput true "Contract"
// @Success      200 {object} APIResponse[client.ContractResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /client/contracts/{id}/publish [post]
func (h *ContractHandler) Publish(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	req := h.requestAs(c, identity.RoleClient)
	if err := h.contractService.AuthoriseEdit(c.Request.Context(), req, id); err != nil {
		h.HandleError(c, err)
		return
	}
	var in client.ContractInput
	if !h.bindJSON(c, &in) {
		return
	}

	resp, err := h.contractService.Publish(c.Request.Context(), req, id, in)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a draft contract
// @Tags         client-contracts
// @Param        id path string true "Contract ID" format(uuid)
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /client/contracts/{id} [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.contractService.Delete(c.Request.Context(), h.requestAs(c, identity.RoleClient), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
