package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	appcfg "github.com/folio-space/core/internal/config"
)

// localStore keeps media on the local filesystem under a static directory.
type localStore struct {
	dir     string
	baseURL string
}

func newLocalStore(cfg appcfg.LocalConfig) (*localStore, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "static/uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", dir, err)
	}
	return &localStore{dir: dir, baseURL: cfg.BaseURL}, nil
}

func (l *localStore) Upload(ctx context.Context, payload []byte, contentType, suggestedName string) (string, string, error) {
	key := ObjectKey(suggestedName, time.Now())

	path := l.pathFor(key)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return l.objectURL(key), key, nil
}

func (l *localStore) Delete(ctx context.Context, referenceID string) error {
	key := strings.TrimSpace(referenceID)
	if key == "" {
		return nil
	}
	if err := os.Remove(l.pathFor(key)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrStorageDelete, err)
	}
	return nil
}

// pathFor maps a key to a file inside the static dir. Only the final
// segment is used, so traversal segments in a reference id are inert.
// The router serves the dir under /uploads, matching the key prefix.
func (l *localStore) pathFor(key string) string {
	return filepath.Join(l.dir, filepath.Base(filepath.FromSlash(key)))
}

func (l *localStore) objectURL(key string) string {
	if l.baseURL != "" {
		return l.baseURL + "/" + key
	}
	return "/" + key
}
