// Package storage provides the media store gateway: opaque upload/delete
// over a configuration-selected backend (S3 or local disk).
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/folio-space/core/internal/config"
)

var (
	// ErrStorageWrite marks a failed upload. Submits that hit it must abort
	// before any database write.
	ErrStorageWrite = errors.New("storage write failed")
	// ErrStorageDelete marks a failed delete of an existing object. Callers
	// releasing replaced media log it and continue.
	ErrStorageDelete = errors.New("storage delete failed")
)

// MediaStore uploads media and deletes it by reference id. Delete is
// idempotent: an empty reference id is a no-op and a missing object succeeds.
type MediaStore interface {
	Upload(ctx context.Context, payload []byte, contentType, suggestedName string) (url, referenceID string, err error)
	Delete(ctx context.Context, referenceID string) error
}

// New selects the backend from config.
func New(cfg config.StorageConfig) (MediaStore, error) {
	switch cfg.Strategy {
	case config.StrategyS3:
		return newS3Store(cfg.S3)
	case config.StrategyLocal:
		return newLocalStore(cfg.Local)
	default:
		return nil, fmt.Errorf("unknown storage strategy %q", cfg.Strategy)
	}
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9.]`)

// ObjectKey builds the object key for an upload:
// uploads/<unix-ms>_<sanitized-name>. The key doubles as the reference id.
func ObjectKey(suggestedName string, now time.Time) string {
	name := filepath.Base(strings.TrimSpace(suggestedName))
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	name = unsafeNameChars.ReplaceAllString(name, "_")
	return fmt.Sprintf("uploads/%d_%s", now.UnixMilli(), name)
}

// DetectContentType prefers the declared type, falling back to sniffing.
func DetectContentType(declared string, payload []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return http.DetectContentType(payload)
}
