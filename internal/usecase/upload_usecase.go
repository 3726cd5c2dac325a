package usecase

import (
	"context"
	"io"

	"stampshop/internal/domain/service"
)

// UploadInput describes one uploaded document.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadUsecase stores trade-license documents.
type UploadUsecase interface {
	// UploadDocument stores the document and returns its URL.
	UploadDocument(ctx context.Context, input *UploadInput) (string, error)
	// OpenDocument reads back a stored document by its storage key.
	OpenDocument(ctx context.Context, key string) (*service.Document, error)
}
