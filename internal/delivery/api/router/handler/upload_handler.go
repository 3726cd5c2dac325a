package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"stampshop/internal/delivery/api/response"
	"stampshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const sniffLen = 512

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts trade-license documents.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadDocument handles POST /uploads with a multipart "file" field.
func (h *UploadHandler) UploadDocument(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Invalid(c, "File is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Invalid(c, "Unreadable file")
	}
	defer file.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return response.Invalid(c, "Unreadable file")
	}
	head = head[:n]

	// trust the bytes over the client-declared part header
	contentType := http.DetectContentType(head)

	url, err := h.uploadUC.UploadDocument(c.Request().Context(), &usecase.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Body:        io.MultiReader(bytes.NewReader(head), file),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url})
}

// ServeDocument handles GET /files/* by streaming the stored document.
func (h *UploadHandler) ServeDocument(c echo.Context) error {
	doc, err := h.uploadUC.OpenDocument(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer doc.Body.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, "inline")
	header.Set(echo.HeaderXContentTypeOptions, "nosniff")
	if doc.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(doc.Size, 10))
	}

	return c.Stream(http.StatusOK, doc.ContentType, doc.Body)
}
