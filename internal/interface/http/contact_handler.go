package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/homelyhq/homely-backend/internal/application"
	"github.com/homelyhq/homely-backend/pkg/response"
	"github.com/homelyhq/homely-backend/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message" binding:"required"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	m, err := h.Svc.Submit(c.Request.Context(), application.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidInput) {
			response.Error[any](c, http.StatusBadRequest, "message is required", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("contact submit failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}
	response.Success(c, http.StatusCreated, m, "message received", nil)
}
