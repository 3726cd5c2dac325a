// Package storage keeps uploaded trade-license documents in a gocloud bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"stampshop/config"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selectable through storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const (
	keyPrefix        = "trade-licenses"
	defaultBucketURL = "mem://"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	newID         func() uuid.UUID
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.DocumentStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		newID:         uuid.New,
	}
}

// Params holds dependencies for the document storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by storage.bucketUrl.
func New(params Params) (service.DocumentStorage, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		publicBaseURL = cfg.PublicBaseURL
	}
	// stored URLs go into orders, which only accept absolute ones
	if u, err := url.Parse(publicBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("storage: publicBaseUrl %q is not an absolute URL", publicBaseURL)
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Document storage ready", slog.String("bucket", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, publicBaseURL), nil
}

// Upload stores the document under a random key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := path.Join(keyPrefix, s.newID().String()+strings.ToLower(path.Ext(filename)))

	// cancelling before Close discards the write
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:        contentType,
		ContentDisposition: "inline",
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	if _, err := io.Copy(w, body); err != nil {
		cancel()
		_ = w.Close()

		return "", errors.WithStack(err)
	}

	if err := w.Close(); err != nil {
		return "", errors.WithStack(err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Open streams back an uploaded document. Keys outside the upload prefix
// are reported as missing.
func (s *blobStorage) Open(ctx context.Context, key string) (*service.Document, error) {
	if path.Clean(key) != key || !strings.HasPrefix(key, keyPrefix+"/") {
		return nil, domainerrors.ErrDocumentNotFound
	}

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrDocumentNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &service.Document{
		Body:        r,
		ContentType: r.ContentType(),
		Size:        r.Size(),
	}, nil
}

// Module provides the document storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
