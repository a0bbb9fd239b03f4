// Package media implements the cover-image lifecycle shared by the admin
// content forms: uploads replace and release the previous object, switching
// to an external URL releases it too.
package media

import (
	"context"

	"github.com/folio-space/core/internal/modules/storage"
	"go.uber.org/zap"
)

// Mode says where the entity's image comes from.
type Mode string

const (
	ModeUpload   Mode = "upload"
	ModeExternal Mode = "external"
)

// Current is the media state persisted on an entity. ReferenceID is empty
// for external URLs.
type Current struct {
	URL         string
	ReferenceID string
}

// File is a new upload from a multipart form.
type File struct {
	Payload     []byte
	ContentType string
	Name        string
}

// Request is the media part of a submitted form.
type Request struct {
	Mode        Mode
	File        *File // nil in upload mode keeps the current image
	ExternalURL string
}

// Resolve applies the lifecycle rules and returns the media state to persist.
//
// A failed upload aborts the submit: the caller must not write the entity.
// A failed delete of the replaced object is logged and swallowed, because the
// new state is already decided and an orphaned object is preferable to a
// failed save.
func Resolve(ctx context.Context, store storage.MediaStore, logger *zap.Logger, cur Current, req Request) (Current, error) {
	switch req.Mode {
	case ModeExternal:
		if cur.ReferenceID != "" && cur.URL != "" {
			releaseOld(ctx, store, logger, cur.ReferenceID)
		}
		return Current{URL: req.ExternalURL, ReferenceID: ""}, nil

	case ModeUpload:
		if req.File == nil {
			return cur, nil
		}
		if cur.ReferenceID != "" {
			releaseOld(ctx, store, logger, cur.ReferenceID)
		}
		url, ref, err := store.Upload(ctx, req.File.Payload, req.File.ContentType, req.File.Name)
		if err != nil {
			return cur, err
		}
		return Current{URL: url, ReferenceID: ref}, nil
	}

	return cur, nil
}

// Release deletes an entity's uploaded object, e.g. when the entity itself
// is deleted. External URLs (empty reference id) are a no-op.
func Release(ctx context.Context, store storage.MediaStore, logger *zap.Logger, cur Current) {
	if cur.ReferenceID == "" {
		return
	}
	releaseOld(ctx, store, logger, cur.ReferenceID)
}

func releaseOld(ctx context.Context, store storage.MediaStore, logger *zap.Logger, referenceID string) {
	if err := store.Delete(ctx, referenceID); err != nil {
		logger.Warn("failed to release replaced media", zap.String("reference_id", referenceID), zap.Error(err))
	}
}
