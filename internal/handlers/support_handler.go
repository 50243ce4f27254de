package handlers

import (
	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/internal/validators"
	"github.com/agatodfddd/luxora-store/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	supportService services.SupportService
	logger         *logger.Logger
}

func NewSupportHandler(supportService services.SupportService, logger *logger.Logger) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
		logger:         logger,
	}
}

// CreateTicket opens a support ticket from the storefront
// @Router /support/tickets [post]
func (h *SupportHandler) CreateTicket(c *gin.Context) {
	var req models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	ticket, err := h.supportService.CreateTicket(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Ticket")
		return
	}

	utils.CreatedResponse(c, "Ticket created successfully", ticket)
}

// ListTickets returns the support queue
// @Router /admin/support/tickets [get]
func (h *SupportHandler) ListTickets(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	tickets, total, err := h.supportService.ListTickets(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, h.logger, err, "Ticket")
		return
	}

	meta := &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
		Count:      len(tickets),
	}
	utils.SuccessResponseWithMeta(c, "Tickets retrieved successfully", tickets, meta)
}

// UpdateTicket changes a ticket's status and/or admin notes
// @Router /admin/support/tickets/{id} [put]
func (h *SupportHandler) UpdateTicket(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if req.Status != nil && !req.Status.IsValid() {
		utils.BadRequestResponse(c, "Invalid ticket status")
		return
	}

	ticket, err := h.supportService.UpdateTicket(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Ticket")
		return
	}

	utils.SuccessResponse(c, "Ticket updated successfully", ticket)
}

// CreateMessage stores a contact-form submission
// @Router /contact [post]
func (h *SupportHandler) CreateMessage(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	message, err := h.supportService.CreateMessage(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Message")
		return
	}

	utils.CreatedResponse(c, "Message received successfully", message)
}

// ListMessages returns the contact inbox
// @Router /admin/messages [get]
func (h *SupportHandler) ListMessages(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	messages, total, err := h.supportService.ListMessages(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, h.logger, err, "Message")
		return
	}

	meta := &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
		Count:      len(messages),
	}
	utils.SuccessResponseWithMeta(c, "Messages retrieved successfully", messages, meta)
}

// UpdateMessageStatus marks a message read or archived
// @Router /admin/messages/{id}/status [put]
func (h *SupportHandler) UpdateMessageStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}
	if !req.Status.IsValid() {
		utils.BadRequestResponse(c, "Invalid message status")
		return
	}

	message, err := h.supportService.UpdateMessageStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondServiceError(c, h.logger, err, "Message")
		return
	}

	utils.SuccessResponse(c, "Message status updated successfully", message)
}
