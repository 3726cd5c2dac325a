package impl

import (
	"bytes"
	"context"
	"io"
	"testing"

	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/service"
	mockSvc "stampshop/internal/mocks/service"
	"stampshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUploadService(t *testing.T) (usecase.UploadUsecase, *mockSvc.MockDocumentStorage) {
	storage := mockSvc.NewMockDocumentStorage(t)

	srv := NewUploadService(UploadServiceParams{
		Storage: storage,
		Config:  newTestConfig(),
		Logger:  newDiscardLogger(),
	})

	return srv, storage
}

func uploadInput(contentType string, size int) *usecase.UploadInput {
	return &usecase.UploadInput{
		Filename:    "licence.PDF",
		ContentType: contentType,
		Size:        int64(size),
		Body:        bytes.NewReader(make([]byte, size)),
	}
}

func TestUploadService_UploadDocument_Success(t *testing.T) {
	srv, storage := createTestUploadService(t)
	ctx := context.Background()

	var stored []byte
	storage.EXPECT().
		Upload(ctx, "licence.pdf", "application/pdf", mock.Anything).
		Run(func(_ context.Context, _ string, _ string, body io.Reader) { stored, _ = io.ReadAll(body) }).
		Return("https://cdn.example/trade-licenses/abc.pdf", nil)

	url, err := srv.UploadDocument(ctx, uploadInput("application/pdf", 512))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/trade-licenses/abc.pdf", url)
	assert.Len(t, stored, 512)
}

func TestUploadService_UploadDocument_JPEGExtension(t *testing.T) {
	srv, storage := createTestUploadService(t)
	ctx := context.Background()

	storage.EXPECT().Upload(ctx, "licence.jpg", "image/jpeg", mock.Anything).Return("u", nil)

	_, err := srv.UploadDocument(ctx, uploadInput("image/jpeg", 10))
	require.NoError(t, err)
}

func TestUploadService_UploadDocument_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		srv, _ := createTestUploadService(t)

		_, err := srv.UploadDocument(ctx, uploadInput("application/zip", 10))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidDocument)
	})

	t.Run("unparseable type", func(t *testing.T) {
		srv, _ := createTestUploadService(t)

		_, err := srv.UploadDocument(ctx, uploadInput("", 10))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidDocument)
	})

	t.Run("too large", func(t *testing.T) {
		srv, _ := createTestUploadService(t)

		_, err := srv.UploadDocument(ctx, uploadInput("image/png", 2048))
		assert.ErrorIs(t, err, domainerrors.ErrDocumentTooLarge)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, map[string]string{"limit": "1.0 KB"}, appErr.Details())
	})

	t.Run("storage failure", func(t *testing.T) {
		srv, storage := createTestUploadService(t)
		storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))

		_, err := srv.UploadDocument(ctx, uploadInput("image/png", 10))
		assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	})
}

func TestUploadService_OpenDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		srv, storage := createTestUploadService(t)
		doc := &service.Document{Body: io.NopCloser(bytes.NewReader([]byte("png"))), ContentType: "image/png", Size: 3}
		storage.EXPECT().Open(ctx, "trade-licenses/abc.png").Return(doc, nil)

		got, err := srv.OpenDocument(ctx, "trade-licenses/abc.png")
		require.NoError(t, err)
		assert.Same(t, doc, got)
	})

	t.Run("missing", func(t *testing.T) {
		srv, storage := createTestUploadService(t)
		storage.EXPECT().Open(ctx, "trade-licenses/nope.png").Return(nil, domainerrors.ErrDocumentNotFound)

		_, err := srv.OpenDocument(ctx, "trade-licenses/nope.png")
		assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		srv, storage := createTestUploadService(t)
		storage.EXPECT().Open(ctx, "trade-licenses/abc.png").Return(nil, errors.New("bucket gone"))

		_, err := srv.OpenDocument(ctx, "trade-licenses/abc.png")
		assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	})
}
