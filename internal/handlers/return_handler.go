package handlers

import (
	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/internal/validators"
	"github.com/agatodfddd/luxora-store/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ReturnHandler struct {
	returnService services.ReturnService
	logger        *logger.Logger
}

func NewReturnHandler(returnService services.ReturnService, logger *logger.Logger) *ReturnHandler {
	return &ReturnHandler{
		returnService: returnService,
		logger:        logger,
	}
}

// CreateReturn files a return request from the storefront
// @Router /returns [post]
func (h *ReturnHandler) CreateReturn(c *gin.Context) {
	var req models.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateReturnRequest(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	request, err := h.returnService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Return request")
		return
	}

	utils.CreatedResponse(c, "Return request submitted successfully", request)
}

// ListReturns returns the return queue, newest first
// @Router /admin/returns [get]
func (h *ReturnHandler) ListReturns(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	requests, total, err := h.returnService.List(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, h.logger, err, "Return request")
		return
	}

	meta := &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
		Count:      len(requests),
	}
	utils.SuccessResponseWithMeta(c, "Return requests retrieved successfully", requests, meta)
}

// GetReturn returns a single return request
// @Router /admin/returns/{id} [get]
func (h *ReturnHandler) GetReturn(c *gin.Context) {
	id := c.Param("id")

	request, err := h.returnService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err, "Return request")
		return
	}

	utils.SuccessResponse(c, "Return request retrieved successfully", request)
}

// UpdateReturnStatus moves a return request through the review workflow
// @Router /admin/returns/{id}/status [put]
func (h *ReturnHandler) UpdateReturnStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateReturnStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	request, err := h.returnService.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		respondServiceError(c, h.logger, err, "Return request")
		return
	}

	utils.SuccessResponse(c, "Return request status updated successfully", request)
}
