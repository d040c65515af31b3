package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/SscSPs/product_catalog/internal/apperrors"
	portssvc "github.com/SscSPs/product_catalog/internal/core/ports/services"
	"github.com/SscSPs/product_catalog/internal/dto"
	"github.com/SscSPs/product_catalog/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	uploadFormField     = "file"
	unprocessedFileMsg  = "Could not process the uploaded file"
	uploadSuccessFormat = "File uploaded and processed successfully. Total products stored: %d"
)

// uploadHandler handles bulk CSV imports.
type uploadHandler struct {
	uploadService  portssvc.UploadSvcFacade
	maxUploadBytes int64
}

func newUploadHandler(us portssvc.UploadSvcFacade, maxUploadBytes int64) *uploadHandler {
	return &uploadHandler{
		uploadService:  us,
		maxUploadBytes: maxUploadBytes,
	}
}

// registerUploadRoutes registers the bulk import route behind its own rate limit.
func registerUploadRoutes(rg *gin.RouterGroup, uploadService portssvc.UploadSvcFacade, maxUploadBytes int64, limit gin.HandlerFunc) {
	h := newUploadHandler(uploadService, maxUploadBytes)
	rg.POST("/upload-products", limit, h.uploadProducts)
}

// uploadProducts godoc
// @Summary Bulk import products from CSV
// @Description Accepts a CSV with the headers name,price,expiration. Invalid rows are skipped; the response reports how many products were stored.
// @Tags products
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "CSV file (text/csv)"
// @Success 200 {object} dto.JSONResponse "File uploaded and processed successfully"
// @Failure 400 {object} dto.ErrorResponse "No file uploaded, invalid file type or invalid CSV headers"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 429 {object} dto.ErrorResponse "Too many uploads"
// @Failure 500 {object} dto.ErrorResponse "Could not process the uploaded file"
// @Router /upload-products [post]
func (h *uploadHandler) uploadProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	var data []byte
	var mimeType string
	fileHeader, err := c.FormFile(uploadFormField)
	switch {
	case err == nil:
		mimeType = fileHeader.Header.Get("Content-Type")
		data, err = readUpload(fileHeader)
		if err != nil {
			logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				StatusCode: http.StatusInternalServerError,
				Message:    unprocessedFileMsg,
				Error:      err.Error(),
			})
			return
		}
	case isTooLarge(err):
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			StatusCode: http.StatusRequestEntityTooLarge,
			Message:    fmt.Sprintf("File exceeds %d bytes", h.maxUploadBytes),
		})
		return
	default:
		// Missing field: let the service report it like any other invalid upload.
		logger.Debug("No file in upload request", slog.String("error", err.Error()))
	}

	stored, err := h.uploadService.ImportProducts(c.Request.Context(), data, mimeType)
	if err != nil {
		if msg, ok := uploadErrorMessage(err); ok {
			logger.Warn("Rejected upload", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Message:    msg,
				Error:      err.Error(),
			})
			return
		}
		logger.Error("Failed to import products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    unprocessedFileMsg,
			Error:      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.JSONResponse{
		Status:  http.StatusOK,
		Message: fmt.Sprintf(uploadSuccessFormat, stored),
	})
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// uploadErrors are the client-side upload failures and their user-facing messages.
var uploadErrors = []struct {
	err error
	msg string
}{
	{apperrors.ErrNoFileUploaded, "No file uploaded"},
	{apperrors.ErrInvalidFileType, "Invalid file type"},
	{apperrors.ErrInvalidCSVHeader, "Invalid CSV headers"},
	{apperrors.ErrInvalidFileData, "Invalid file data"},
}

func uploadErrorMessage(err error) (string, bool) {
	for _, known := range uploadErrors {
		if errors.Is(err, known.err) {
			return known.msg, true
		}
	}
	return "", false
}
