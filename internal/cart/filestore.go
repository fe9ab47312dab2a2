package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"apparel-storefront/internal/domain"
)

// FileStorage keeps one guest cart as a single JSON array in a file under
// dir, named after the guest key.
type FileStorage struct {
	dir string
	key string
}

func NewFileStorage(dir, key string) *FileStorage {
	return &FileStorage{dir: dir, key: key}
}

func (f *FileStorage) path() (string, error) {
	if f.key == "" || strings.ContainsAny(f.key, `/\`) {
		return "", fmt.Errorf("invalid cart key %q", f.key)
	}
	return filepath.Join(f.dir, f.key+".json"), nil
}

func (f *FileStorage) Load(ctx context.Context) ([]domain.CartLine, error) {
	p, err := f.path()
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart file: %w", err)
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode cart file %s: %w", p, err)
	}
	return lines, nil
}

func (f *FileStorage) Save(ctx context.Context, lines []domain.CartLine) error {
	p, err := f.path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, raw, 0o600); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}
