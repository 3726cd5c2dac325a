package cart

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"stampshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// DefaultFileName is the cart file created under the user's config dir.
const DefaultFileName = "supreme-stamps-cart.json"

// FilePersister keeps the cart as a JSON array on disk.
type FilePersister struct {
	path string
}

// NewFilePersister stores the cart at path.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// DefaultPath returns the cart file location inside the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve config dir")
	}

	return filepath.Join(dir, "stampshop", DefaultFileName), nil
}

// Load reads the cart. A missing file is an empty cart.
func (p *FilePersister) Load(_ context.Context) ([]entity.CartItem, error) {
	raw, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entity.CartItem{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read cart file %s", p.path)
	}

	var items []entity.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrapf(err, "failed to parse cart file %s", p.path)
	}

	return items, nil
}

// Save replaces the cart file atomically.
func (p *FilePersister) Save(_ context.Context, items []entity.CartItem) error {
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create cart dir")
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return errors.Wrap(err, "failed to write cart file")
	}

	return errors.Wrap(os.Rename(tmp, p.path), "failed to replace cart file")
}
