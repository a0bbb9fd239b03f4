package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	appcfg "github.com/folio-space/core/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	assert.Equal(t, "uploads/1700000000000_photo.png", ObjectKey("photo.png", now))
	assert.Equal(t, "uploads/1700000000000_my_photo__1_.png", ObjectKey("my photo (1).png", now))
	assert.Equal(t, "uploads/1700000000000_file", ObjectKey("", now))
	// Only the base name survives; directories cannot leak into the key.
	assert.Equal(t, "uploads/1700000000000_passwd", ObjectKey("../../etc/passwd", now))
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "image/png", DetectContentType("image/png", nil))

	pngHeader := []byte("\x89PNG\r\n\x1a\n0000000000")
	assert.Equal(t, "image/png", DetectContentType("", pngHeader))
	assert.Equal(t, "image/png", DetectContentType("application/octet-stream", pngHeader))
}

func TestLocalStoreUploadDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := newLocalStore(appcfg.LocalConfig{Dir: dir, BaseURL: "https://me.example.com"})
	require.NoError(t, err)

	url, ref, err := store.Upload(context.Background(), []byte("payload"), "image/png", "pic.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://me.example.com/uploads/"))
	assert.True(t, strings.HasPrefix(ref, "uploads/"))
	assert.True(t, strings.HasSuffix(ref, "_pic.png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, store.Delete(context.Background(), ref))
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStoreDeleteIsIdempotent(t *testing.T) {
	store, err := newLocalStore(appcfg.LocalConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), ""))
	assert.NoError(t, store.Delete(context.Background(), "uploads/1_missing.png"))
}

func TestLocalStoreDeleteIgnoresTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := newLocalStore(appcfg.LocalConfig{Dir: dir})
	require.NoError(t, err)

	outside := filepath.Join(filepath.Dir(dir), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	require.NoError(t, store.Delete(context.Background(), "uploads/../../outside.txt"))
	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestNewSelectsStrategy(t *testing.T) {
	local, err := New(appcfg.StorageConfig{Strategy: appcfg.StrategyLocal, Local: appcfg.LocalConfig{Dir: t.TempDir()}})
	require.NoError(t, err)
	assert.IsType(t, &localStore{}, local)

	_, err = New(appcfg.StorageConfig{Strategy: appcfg.StrategyS3})
	assert.Error(t, err)

	s3Cfg := appcfg.S3Config{
		Bucket: "media", Region: "us-east-1",
		AccessKeyID: "AKIA", SecretAccessKey: "secret",
	}
	s3Store, err := New(appcfg.StorageConfig{Strategy: appcfg.StrategyS3, S3: s3Cfg})
	require.NoError(t, err)
	assert.NotNil(t, s3Store)
}

func TestS3ObjectURL(t *testing.T) {
	base := appcfg.S3Config{
		Bucket: "media", Region: "eu-west-1",
		AccessKeyID: "AKIA", SecretAccessKey: "secret",
	}

	plain, err := newS3Store(base)
	require.NoError(t, err)
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com/uploads/1_a.png", plain.objectURL("uploads/1_a.png"))

	withDomain := base
	withDomain.CustomDomain = "https://cdn.example.com"
	cdn, err := newS3Store(withDomain)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/1_a.png", cdn.objectURL("uploads/1_a.png"))

	withEndpoint := base
	withEndpoint.Endpoint = "minio.internal:9000"
	minio, err := newS3Store(withEndpoint)
	require.NoError(t, err)
	assert.Equal(t, "https://minio.internal:9000/media/uploads/1_a.png", minio.objectURL("uploads/1_a.png"))
}
