package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incident-assist/backend/internal/model"
	"github.com/incident-assist/backend/internal/service"
)

type AskHandler struct {
	svc *service.AskService
}

func NewAskHandler(svc *service.AskService) *AskHandler {
	return &AskHandler{svc: svc}
}

// Ask godoc
// @Summary Ask a question about recent incidents
// @Tags ask
// @Accept json
// @Produce json
// @Param request body model.AskRequest true "Question payload"
// @Success 200 {object} model.AskResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/ask [post]
func (h *AskHandler) Ask(c *gin.Context) {
	var req model.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	answer, err := h.svc.Ask(c.Request.Context(), req.UserQuestion)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuestion):
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Please provide a user question"})
		case errors.Is(err, service.ErrNoIncidents):
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "No incidents found"})
		default:
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, model.AskResponse{Response: answer})
}
