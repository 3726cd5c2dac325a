package impl

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"stampshop/config"
	deliverycontext "stampshop/internal/delivery/context"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/service"
	"stampshop/internal/usecase"
	"stampshop/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxUploadBytes = 10 << 20

// acceptedDocuments maps allowed media types to their canonical extension.
var acceptedDocuments = map[string]string{
	"application/pdf": ".pdf",
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage  service.DocumentStorage
	maxBytes int64
	logger   *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.DocumentStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	maxBytes := int64(defaultMaxUploadBytes)
	if params.Config.Storage != nil && params.Config.Storage.MaxUploadBytes > 0 {
		maxBytes = params.Config.Storage.MaxUploadBytes
	}

	return &uploadService{
		storage:  params.Storage,
		maxBytes: maxBytes,
		logger:   params.Logger,
	}
}

// UploadDocument checks type and size, then stores the document.
func (srv *uploadService) UploadDocument(ctx context.Context, input *usecase.UploadInput) (string, error) {
	mediaType, _, err := mime.ParseMediaType(input.ContentType)
	if err != nil {
		return "", domainerrors.ErrInvalidDocument
	}

	ext, ok := acceptedDocuments[strings.ToLower(mediaType)]
	if !ok {
		return "", domainerrors.ErrInvalidDocument
	}

	if input.Size > srv.maxBytes {
		return "", domainerrors.ErrDocumentTooLarge.WithDetails(map[string]string{
			"limit": util.FormatBytes(srv.maxBytes),
		})
	}

	name := strings.TrimSuffix(path.Base(input.Filename), path.Ext(input.Filename)) + ext
	body := io.LimitReader(input.Body, srv.maxBytes)

	url, err := srv.storage.Upload(ctx, name, mediaType, body)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Document upload failed",
			slog.String("filename", input.Filename),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrUploadFailed.WrapMessage(err.Error())
	}

	return url, nil
}

// OpenDocument returns the stored document for key.
func (srv *uploadService) OpenDocument(ctx context.Context, key string) (*service.Document, error) {
	doc, err := srv.storage.Open(ctx, key)
	if err != nil {
		if errors.Is(err, domainerrors.ErrDocumentNotFound) {
			return nil, domainerrors.ErrDocumentNotFound
		}
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Document read failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return doc, nil
}
