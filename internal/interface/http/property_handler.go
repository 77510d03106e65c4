package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/homelyhq/homely-backend/internal/application"
	"github.com/homelyhq/homely-backend/pkg/response"
	"github.com/homelyhq/homely-backend/pkg/validation"
)

type PropertyHandler struct {
	Svc    *application.PropertyService
	Logger *logrus.Logger
}

func NewPropertyHandler(svc *application.PropertyService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Logger: logger}
}

type toggleLikeRequest struct {
	PropertyID int64 `json:"propertyId" binding:"required,gt=0"`
	UserID     int64 `json:"userId" binding:"required,gt=0"`
}

type createPropertyRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
	Image       *string  `json:"image"`
	Address     *string  `json:"address"`
}

// ToggleLike handles POST /api/properties/like.
func (h *PropertyHandler) ToggleLike(c *gin.Context) {
	var req toggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	like, err := h.Svc.ToggleLike(c.Request.Context(), req.PropertyID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidInput):
			response.Error[any](c, http.StatusBadRequest, "propertyId and userId are required", nil)
		case errors.Is(err, application.ErrNotFound):
			response.Error[any](c, http.StatusNotFound, "property or user not found", nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).WithFields(logrus.Fields{
					"property_id": req.PropertyID,
					"user_id":     req.UserID,
				}).Error("toggle like failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		}
		return
	}
	msg := "property unliked"
	if like.Liked {
		msg = "property liked"
	}
	response.Success(c, http.StatusOK, like, msg, nil)
}

// Get handles GET /api/properties. With ?id= it returns a single listing,
// without it the full list.
func (h *PropertyHandler) Get(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error[any](c, http.StatusBadRequest, "id must be a positive integer", nil)
			return
		}
		p, err := h.Svc.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, application.ErrNotFound) {
				response.Error[any](c, http.StatusNotFound, "property not found", nil)
				return
			}
			if h.Logger != nil {
				h.Logger.WithError(err).WithField("property_id", id).Error("get property failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
			return
		}
		response.Success(c, http.StatusOK, p, "property", nil)
		return
	}

	props, err := h.Svc.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list properties failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}
	response.Success(c, http.StatusOK, props, "properties", map[string]any{"count": len(props)})
}

// Create handles POST /api/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), application.CreatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Image:       req.Image,
		Address:     req.Address,
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidInput) {
			response.Error[any](c, http.StatusBadRequest, "title is required", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("create property failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}
	response.Success(c, http.StatusCreated, p, "property created", nil)
}

// Search handles GET /api/properties/search?q=.
func (h *PropertyHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("q", q).Error("property search failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

// UploadImage handles POST /api/properties/image (multipart form, field "image").
// Returns the public URL to reference in a subsequent property create.
func (h *PropertyHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.UploadImage(c.Request.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("image upload failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	response.Success[any](c, http.StatusCreated, map[string]any{"url": url}, "image uploaded", nil)
}
