package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"storefront/internal/service"
)

// ImageHandler handles the generic image upload.
type ImageHandler struct {
	imageService service.ImageService
}

// NewImageHandler creates a new image handler.
func NewImageHandler(imageService service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// ImageUploadRequest carries a base64 image.
type ImageUploadRequest struct {
	ImageBase64 string `json:"imagebase64" validate:"required"`
}

// ImageUploadResponse reports the upload outcome. Failures still use HTTP 200.
type ImageUploadResponse struct {
	Status string `json:"Status"`
	Data   string `json:"data,omitempty"`
}

// UploadImage godoc
// @Summary Upload an image
// @Tags images
// @Accept json
// @Produce json
// @Param request body ImageUploadRequest true "Image payload"
// @Success 200 {object} ImageUploadResponse
// @Router /upload-image [post]
func (h *ImageHandler) UploadImage(c echo.Context) error {
	var req ImageUploadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, ImageUploadResponse{Status: "error", Data: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, ImageUploadResponse{Status: "error", Data: err.Error()})
	}

	if err := h.imageService.Upload(c.Request().Context(), req.ImageBase64); err != nil {
		logrus.WithError(err).Warn("image upload failed")
		return c.JSON(http.StatusOK, ImageUploadResponse{Status: "error", Data: err.Error()})
	}
	return c.JSON(http.StatusOK, ImageUploadResponse{Status: "ok"})
}
