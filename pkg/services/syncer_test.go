package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RubenBarrionuevo/kyero2is24/pkg/config"
	"github.com/RubenBarrionuevo/kyero2is24/pkg/kyero"
)

func newTestSyncer(baseDir string) *Syncer {
	cfg := &config.Config{
		ImagesDir:      baseDir,
		HTTPTimeout:    5 * time.Second,
		MaxRetries:     1,
		RetryBaseDelay: time.Millisecond,
		UserAgent:      "test-agent",
	}
	return NewSyncer(cfg, zap.NewNop())
}

// imageServer serves fake image bytes and counts requests. Paths containing
// "bad" answer 500.
func imageServer(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if strings.Contains(r.URL.Path, "bad") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("image-bytes"))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func manifestFor(t *testing.T, srv *httptest.Server, id string, imageIDs ...string) *Manifest {
	t.Helper()
	prop := kyero.Property{ID: id, Ref: "REF-" + id}
	for _, imgID := range imageIDs {
		prop.Images.Image = append(prop.Images.Image, kyero.Image{
			ID:  imgID,
			URL: fmt.Sprintf("%s/img/%s.jpg", srv.URL, imgID),
		})
	}
	feed := &kyero.Feed{Properties: []kyero.Property{prop}}
	return BuildManifest(feed, zap.NewNop())
}

func TestSync_DownloadsMissingImages(t *testing.T) {
	srv, _ := imageServer(t)
	base := t.TempDir()

	stats, err := newTestSyncer(base).Sync(context.Background(), manifestFor(t, srv, "P1", "1", "2", "3"))
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Downloaded)
	assert.Zero(t, stats.Skipped)
	assert.Zero(t, stats.Failed)

	for _, name := range []string{"image_1.jpg", "image_2.jpg", "image_3.jpg"} {
		data, err := os.ReadFile(filepath.Join(base, "P1", name))
		require.NoError(t, err)
		assert.Equal(t, "image-bytes", string(data))
	}
}

func TestSync_SecondRunDownloadsNothing(t *testing.T) {
	srv, hits := imageServer(t)
	base := t.TempDir()
	syncer := newTestSyncer(base)
	m := manifestFor(t, srv, "P1", "1", "2", "3")

	_, err := syncer.Sync(context.Background(), m)
	require.NoError(t, err)
	hitsAfterFirst := atomic.LoadInt32(hits)

	stats, err := syncer.Sync(context.Background(), m)
	require.NoError(t, err)

	assert.Zero(t, stats.Downloaded)
	assert.Equal(t, 3, stats.Skipped)
	assert.Equal(t, hitsAfterFirst, atomic.LoadInt32(hits), "no requests on second run")
}

func TestSync_RemovesStaleDirectories(t *testing.T) {
	srv, _ := imageServer(t)
	base := t.TempDir()

	staleDir := filepath.Join(base, "P99")
	require.NoError(t, os.MkdirAll(staleDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staleDir, "image_9.jpg"), []byte("old"), 0o644))

	stats, err := newTestSyncer(base).Sync(context.Background(), manifestFor(t, srv, "P1", "1"))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Removed)
	assert.NoDirExists(t, staleDir)
	assert.DirExists(t, filepath.Join(base, "P1"))
}

func TestSync_PartialFailureContinues(t *testing.T) {
	srv, _ := imageServer(t)
	base := t.TempDir()

	stats, err := newTestSyncer(base).Sync(context.Background(), manifestFor(t, srv, "P1", "1", "bad", "3"))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Downloaded)
	assert.Equal(t, 1, stats.Failed)
	assert.FileExists(t, filepath.Join(base, "P1", "image_1.jpg"))
	assert.NoFileExists(t, filepath.Join(base, "P1", "image_bad.jpg"))
	assert.FileExists(t, filepath.Join(base, "P1", "image_3.jpg"))
}

func TestSync_DirectoryCreatedForNewProperty(t *testing.T) {
	srv, _ := imageServer(t)
	base := t.TempDir()

	_, err := newTestSyncer(base).Sync(context.Background(), manifestFor(t, srv, "P42"))
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(base, "P42"))
}

func TestLocalFilename(t *testing.T) {
	tests := []struct {
		name string
		img  ImageRef
		want string
	}{
		{"from image id", ImageRef{ID: "7", URL: "http://x/any.png"}, "image_7.jpg"},
		{"from url segment", ImageRef{URL: "http://x/photos/villa-front.png"}, "villa-front.png"},
		{"no id no path", ImageRef{URL: "http://x/"}, "image_unknown.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, localFilename(tt.img))
		})
	}
}

func TestBuildManifest(t *testing.T) {
	feed := &kyero.Feed{Properties: []kyero.Property{
		{ID: "P2", Images: kyero.Images{Image: []kyero.Image{{ID: "1", URL: "http://x/1.jpg"}}}},
		{Ref: "REF-NO-ID"},
		{ID: "P1", Images: kyero.Images{Image: []kyero.Image{
			{ID: "2", URL: " http://x/a.jpg?w=1&amp;h=2 "},
			{ID: "3", URL: ""},
		}}},
	}}

	m := BuildManifest(feed, zap.NewNop())

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"P2", "P1"}, m.IDs(), "feed order preserved")
	assert.Equal(t, 1, m.SkippedProperties())
	assert.True(t, m.Has("P1"))
	assert.False(t, m.Has("P99"))

	p1 := m.Images("P1")
	require.Len(t, p1, 1, "images without url are dropped")
	// Double-escaped URLs are unescaped and trimmed.
	assert.Equal(t, "http://x/a.jpg?w=1&h=2", p1[0].URL)
}
