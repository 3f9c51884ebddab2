package handler

import (
	"github.com/acme/backend/internal/application/developer"
	"github.com/acme/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
)

// TrainingModuleHandler serves the developer's training modules
type TrainingModuleHandler struct {
	BaseHandler
	moduleService *developer.TrainingModuleService
}

// NewTrainingModuleHandler creates a new TrainingModuleHandler
func NewTrainingModuleHandler(moduleService *developer.TrainingModuleService) *TrainingModuleHandler {
	return &TrainingModuleHandler{
		moduleService: moduleService,
	}
}

// List godoc
// @Summary      List my training modules
// @Tags         developer-training-modules
// @Produce      json
// @Param        page       query int    false "Page number" default(1)
// @Param        page_size  query int    false "Page size" default(20)
// @Param        order_by   query string false "Order by" Enums(code, creation_moment, difficulty_level, created_at)
// @Param        order_dir  query string false "Order direction" Enums(asc, desc)
// @Param        search     query string false "Code or details contains"
// @Success      200 {object} APIResponse[[]developer.TrainingModuleListItem]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /developer/training-modules [get]
func (h *TrainingModuleHandler) List(c *gin.Context) {
	var filter developer.TrainingModuleListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.moduleService.ListMine(c.Request.Context(), h.requestAs(c, identity.RoleDeveloper), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @Summary      Show a training module
// @Tags         developer-training-modules
// @Produce      json
// @Param        id path string true "Training module ID" format(uuid)
// @Success      200 {object} APIResponse[developer.TrainingModuleResponse]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /developer/training-modules/{id} [get]
func (h *TrainingModuleHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.moduleService.Show(c.Request.Context(), h.requestAs(c, identity.RoleDeveloper), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Create godoc
// @Summary      Create a training module
// @Tags         developer-training-modules
// @Accept       json
// @Produce      json
// @Param        request body developer.TrainingModuleInput true "Training module"
// @Success      201 {object} APIResponse[developer.TrainingModuleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /developer/training-modules [post]
func (h *TrainingModuleHandler) Create(c *gin.Context) {
	var in developer.TrainingModuleInput
	if !h.bindJSON(c, &in) {
		return
	}

	resp, err := h.moduleService.Create(c.Request.Context(), h.requestAs(c, identity.RoleDeveloper), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update godoc
// @Summary      Update a draft training module
// @Tags         developer-training-modules
// @Accept       json
// @Produce      json
// @Param        id      path string                      true "Training module ID" format(uuid)
// @Param        request body developer.TrainingModuleInput true "Training module"
// @Success      200 {object} APIResponse[developer.TrainingModuleResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /developer/training-modules/{id} [put]
func (h *TrainingModuleHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	req := h.requestAs(c, identity.RoleDeveloper)
	if err := h.moduleService.AuthoriseEdit(c.Request.Context(), req, id); err != nil {
		h.HandleError(c, err)
		return
	}
	var in developer.TrainingModuleInput
	if !h.bindJSON(c, &in) {
		return
	}

	resp, err := h.moduleService.Update(c.Request.Context(), req, id, in)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Publish godoc
// @Summary      Publish a training module
// @Tags         developer-training-modules
// @Accept       json
// @Produce      json
// @Param        id      path string                      true "Training module ID" format(uuid)
// @Param        request body developer.TrainingModuleInput true "Training module"
// @Success      200 {object} APIResponse[developer.TrainingModuleResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /developer/training-modules/{id}/publish [post]
func (h *TrainingModuleHandler) Publish(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	req := h.requestAs(c, identity.RoleDeveloper)
	if err := h.moduleService.AuthoriseEdit(c.Request.Context(), req, id); err != nil {
		h.HandleError(c, err)
		return
	}
	var in developer.TrainingModuleInput
	if !h.bindJSON(c, &in) {
		return
	}

	resp, err := h.moduleService.Publish(c.Request.Context(), req, id, in)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a draft training module
// @Tags         developer-training-modules
// @Param        id path string true "Training module ID" format(uuid)
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /developer/training-modules/{id} [delete]
func (h *TrainingModuleHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.moduleService.Delete(c.Request.Context(), h.requestAs(c, identity.RoleDeveloper), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
