package service

import (
	"context"
	"io"
)

// Document is a stored upload opened for reading. The caller closes Body.
type Document struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// DocumentStorage stores customer uploads such as trade licenses.
type DocumentStorage interface {
	// Upload writes the document and returns a URL the shop staff can open.
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	// Open reads back the document stored under key.
	Open(ctx context.Context, key string) (*Document, error)
}
