package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, maxMB int64) *AssetStorage {
	t.Helper()
	s, err := NewAssetStorage(t.TempDir(), "http://cdn.local/media/", maxMB)
	require.NoError(t, err)
	return s
}

func TestAssetStorage_UploadAndPublicURL(t *testing.T) {
	s := newTestStorage(t, 1)
	ctx := context.Background()

	size, err := s.Upload(ctx, "videos", "1700000000.mp4", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.EqualValues(t, 7, size)

	data, err := os.ReadFile(filepath.Join(s.RootPath(), "videos", "1700000000.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	assert.Equal(t, "http://cdn.local/media/videos/1700000000.mp4", s.PublicURL("videos", "1700000000.mp4"))
}

func TestAssetStorage_UploadTooLarge(t *testing.T) {
	s := newTestStorage(t, 1)

	big := bytes.Repeat([]byte("a"), 1024*1024+1)
	_, err := s.Upload(context.Background(), "videos", "big.mp4", bytes.NewReader(big))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooLarge))

	_, statErr := os.Stat(filepath.Join(s.RootPath(), "videos", "big.mp4"))
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(s.RootPath(), "videos", "big.mp4.tmp"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAssetStorage_RejectsTraversal(t *testing.T) {
	s := newTestStorage(t, 1)
	ctx := context.Background()

	_, err := s.Upload(ctx, "videos", "../escape.mp4", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = s.Upload(ctx, "..", "file.mp4", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestAssetStorage_DeleteIsIdempotent(t *testing.T) {
	s := newTestStorage(t, 1)
	ctx := context.Background()

	_, err := s.Upload(ctx, "videos", "a.mp4", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "videos", "a.mp4"))
	require.NoError(t, s.Delete(ctx, "videos", "a.mp4"))
}

func TestAssetStorage_ObjectFromURL(t *testing.T) {
	s := newTestStorage(t, 1)

	bucket, name, ok := s.ObjectFromURL(s.PublicURL("thumbnails", "1.png"))
	require.True(t, ok)
	assert.Equal(t, "thumbnails", bucket)
	assert.Equal(t, "1.png", name)

	_, _, ok = s.ObjectFromURL("https://elsewhere.example/videos/1.mp4")
	assert.False(t, ok)

	_, _, ok = s.ObjectFromURL("http://cdn.local/media/videos")
	assert.False(t, ok)
}

func TestAssetStorage_UniqueName(t *testing.T) {
	s := newTestStorage(t, 1)
	s.now = func() time.Time { return time.Unix(0, 42) }

	assert.Equal(t, "42.mp4", s.UniqueName("My Clip.MP4"))
	assert.Equal(t, "42", s.UniqueName("noext"))
	assert.Equal(t, "42.mov", s.UniqueName("../../etc/clip.mov"))
}

func TestAssetStorage_UploadCancelledContext(t *testing.T) {
	s := newTestStorage(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Upload(ctx, "videos", "a.mp4", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
