package media

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/folio-space/core/internal/modules/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore records calls and can be told to fail.
type fakeStore struct {
	uploads   int
	deletes   []string
	uploadErr error
	deleteErr error
}

func (f *fakeStore) Upload(ctx context.Context, payload []byte, contentType, name string) (string, string, error) {
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	f.uploads++
	ref := fmt.Sprintf("uploads/%d_%s", f.uploads, name)
	return "https://media.example.com/" + ref, ref, nil
}

func (f *fakeStore) Delete(ctx context.Context, referenceID string) error {
	f.deletes = append(f.deletes, referenceID)
	return f.deleteErr
}

func TestResolveNewUploadReplacesOldObject(t *testing.T) {
	store := &fakeStore{}
	cur := Current{URL: "https://media.example.com/uploads/old.png", ReferenceID: "uploads/old.png"}

	next, err := Resolve(context.Background(), store, zap.NewNop(), cur, Request{
		Mode: ModeUpload,
		File: &File{Payload: []byte("img"), ContentType: "image/png", Name: "new.png"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"uploads/old.png"}, store.deletes)
	assert.Equal(t, "uploads/1_new.png", next.ReferenceID)
	assert.Equal(t, "https://media.example.com/uploads/1_new.png", next.URL)
}

func TestResolveUploadWithoutFileKeepsCurrent(t *testing.T) {
	store := &fakeStore{}
	cur := Current{URL: "https://media.example.com/uploads/old.png", ReferenceID: "uploads/old.png"}

	next, err := Resolve(context.Background(), store, zap.NewNop(), cur, Request{Mode: ModeUpload})
	require.NoError(t, err)

	assert.Equal(t, cur, next)
	assert.Zero(t, store.uploads)
	assert.Empty(t, store.deletes)
}

func TestResolveExternalReleasesUploadedObject(t *testing.T) {
	store := &fakeStore{}
	cur := Current{URL: "https://media.example.com/uploads/old.png", ReferenceID: "uploads/old.png"}

	next, err := Resolve(context.Background(), store, zap.NewNop(), cur, Request{
		Mode:        ModeExternal,
		ExternalURL: "https://elsewhere.example.com/pic.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"uploads/old.png"}, store.deletes)
	assert.Equal(t, "https://elsewhere.example.com/pic.jpg", next.URL)
	assert.Empty(t, next.ReferenceID)
}

func TestResolveExternalOverExternalDeletesNothing(t *testing.T) {
	store := &fakeStore{}
	cur := Current{URL: "https://elsewhere.example.com/old.jpg"}

	next, err := Resolve(context.Background(), store, zap.NewNop(), cur, Request{
		Mode:        ModeExternal,
		ExternalURL: "https://elsewhere.example.com/new.jpg",
	})
	require.NoError(t, err)

	assert.Empty(t, store.deletes)
	assert.Equal(t, "https://elsewhere.example.com/new.jpg", next.URL)
}

func TestResolveUploadFailureAborts(t *testing.T) {
	store := &fakeStore{uploadErr: fmt.Errorf("%w: bucket unreachable", storage.ErrStorageWrite)}
	cur := Current{}

	_, err := Resolve(context.Background(), store, zap.NewNop(), cur, Request{
		Mode: ModeUpload,
		File: &File{Payload: []byte("img"), Name: "new.png"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrStorageWrite))
}

func TestResolveDeleteFailureIsSwallowed(t *testing.T) {
	store := &fakeStore{deleteErr: fmt.Errorf("%w: backend down", storage.ErrStorageDelete)}
	cur := Current{URL: "https://media.example.com/uploads/old.png", ReferenceID: "uploads/old.png"}

	next, err := Resolve(context.Background(), store, zap.NewNop(), cur, Request{
		Mode: ModeUpload,
		File: &File{Payload: []byte("img"), Name: "new.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads/1_new.png", next.ReferenceID)
}

func TestReleaseSkipsExternal(t *testing.T) {
	store := &fakeStore{}
	Release(context.Background(), store, zap.NewNop(), Current{URL: "https://elsewhere.example.com/x.jpg"})
	assert.Empty(t, store.deletes)

	Release(context.Background(), store, zap.NewNop(), Current{URL: "u", ReferenceID: "uploads/x.png"})
	assert.Equal(t, []string{"uploads/x.png"}, store.deletes)
}
