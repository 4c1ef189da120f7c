package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"strconv"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// imageHandler handles note image uploads and soft deletion.
type imageHandler struct {
	noteService portssvc.NoteSvcFacade
}

func newImageHandler(ns portssvc.NoteSvcFacade) *imageHandler {
	return &imageHandler{noteService: ns}
}

// registerImageRoutes registers the authenticated image routes.
func registerImageRoutes(rg *gin.RouterGroup, noteService portssvc.NoteSvcFacade) {
	h := newImageHandler(noteService)

	rg.POST("/upload_image/:id", h.uploadImage)
	rg.POST("/upload_multiple_images/:id", h.uploadMultipleImages)
	rg.POST("/delete_image/:id", h.deleteImage)
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// uploadImage attaches a single uploaded image to a currency.
func (h *imageHandler) uploadImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operator, _ := middleware.GetOperatorFromContext(c)

	currencyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectDashboard(c, "", "Invalid currency id")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		redirectDashboard(c, "", "No image file provided")
		return
	}

	data, err := readUpload(file)
	if err != nil {
		logger.Error("Failed to read upload", slog.String("error", err.Error()))
		redirectDashboard(c, "", "Failed to read uploaded file")
		return
	}

	caption := c.PostForm("caption")
	if _, err := h.noteService.AttachImage(c.Request.Context(), currencyID, data, file.Filename, caption, operator); err != nil {
		h.redirectUploadError(c, logger, currencyID, err)
		return
	}

	logger.Info("Image uploaded", slog.Int64("currency_id", currencyID), slog.String("original_filename", file.Filename))
	redirectDashboard(c, "Image uploaded successfully", "")
}

// uploadMultipleImages attaches every file of a multi-file upload, continuing
// past individual failures and reporting a summary.
func (h *imageHandler) uploadMultipleImages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operator, _ := middleware.GetOperatorFromContext(c)

	currencyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectDashboard(c, "", "Invalid currency id")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		redirectDashboard(c, "", "No image files provided")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		redirectDashboard(c, "", "No image files provided")
		return
	}

	caption := c.PostForm("caption")
	uploaded := 0
	failed := 0
	for _, file := range files {
		data, err := readUpload(file)
		if err != nil {
			logger.Error("Failed to read upload", slog.String("original_filename", file.Filename), slog.String("error", err.Error()))
			failed++
			continue
		}
		if _, err := h.noteService.AttachImage(c.Request.Context(), currencyID, data, file.Filename, caption, operator); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				redirectDashboard(c, "", "Currency not found")
				return
			}
			logger.Warn("Failed to attach image", slog.String("original_filename", file.Filename), slog.String("error", err.Error()))
			failed++
			continue
		}
		uploaded++
	}

	logger.Info("Multi-image upload finished",
		slog.Int64("currency_id", currencyID),
		slog.Int("uploaded", uploaded),
		slog.Int("failed", failed),
	)

	if failed > 0 {
		redirectDashboard(c, "", fmt.Sprintf("Uploaded %d images, %d failed", uploaded, failed))
		return
	}
	redirectDashboard(c, fmt.Sprintf("Uploaded %d images successfully", uploaded), "")
}

// deleteImage soft-deletes a note image.
func (h *imageHandler) deleteImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operator, _ := middleware.GetOperatorFromContext(c)

	imageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectDashboard(c, "", "Invalid image id")
		return
	}

	reason := c.PostForm("reason")
	if err := h.noteService.SoftDeleteImage(c.Request.Context(), imageID, operator, reason); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			redirectDashboard(c, "", "Image not found")
		case errors.Is(err, apperrors.ErrAlreadyDeleted):
			redirectDashboard(c, "", "Image is already deleted")
		default:
			logger.Error("Failed to delete image", slog.Int64("image_id", imageID), slog.String("error", err.Error()))
			redirectDashboard(c, "", "Failed to delete image")
		}
		return
	}

	logger.Info("Image soft-deleted", slog.Int64("image_id", imageID))
	redirectDashboard(c, "Image deleted successfully", "")
}

func (h *imageHandler) redirectUploadError(c *gin.Context, logger *slog.Logger, currencyID int64, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		redirectDashboard(c, "", "Currency not found")
	case errors.Is(err, apperrors.ErrValidation):
		redirectDashboard(c, "", validationMessage(err))
	default:
		logger.Error("Failed to upload image", slog.Int64("currency_id", currencyID), slog.String("error", err.Error()))
		redirectDashboard(c, "", "Failed to upload image")
	}
}
