package services

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/RubenBarrionuevo/kyero2is24/pkg/config"
	"github.com/RubenBarrionuevo/kyero2is24/pkg/kyero"
	"github.com/RubenBarrionuevo/kyero2is24/pkg/utils"
)

// ImageRef is one photo reference from the feed.
type ImageRef struct {
	ID  string
	URL string
}

// Manifest maps property ids to their photo references, in feed order. It is
// rebuilt from scratch on every run and never persisted.
type Manifest struct {
	ids     []string
	images  map[string][]ImageRef
	skipped int
}

func (m *Manifest) add(id string, refs []ImageRef) {
	if _, ok := m.images[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.images[id] = append(m.images[id], refs...)
}

// IDs returns the property ids in feed order.
func (m *Manifest) IDs() []string { return m.ids }

// Images returns the photo references of one property.
func (m *Manifest) Images(id string) []ImageRef { return m.images[id] }

// Has reports whether the feed still lists the property.
func (m *Manifest) Has(id string) bool {
	_, ok := m.images[id]
	return ok
}

func (m *Manifest) Len() int { return len(m.ids) }

// SkippedProperties counts feed entries that carried no id and therefore
// cannot be synced.
func (m *Manifest) SkippedProperties() int { return m.skipped }

// BuildManifest derives the expected property → images mapping from a parsed
// feed. Properties without an id and images without a URL are skipped with a
// warning.
func BuildManifest(feed *kyero.Feed, log *zap.Logger) *Manifest {
	m := &Manifest{images: make(map[string][]ImageRef)}

	for i := range feed.Properties {
		prop := &feed.Properties[i]
		id := strings.TrimSpace(prop.ID)
		if id == "" {
			log.Warn("property without id, excluded from image sync",
				zap.String("ref", prop.Ref))
			m.skipped++
			continue
		}

		refs := make([]ImageRef, 0, len(prop.Images.Image))
		for _, img := range prop.Images.Image {
			// Feeds occasionally double-escape image URLs.
			u := strings.TrimSpace(html.UnescapeString(img.URL))
			if u == "" {
				log.Warn("image without url",
					zap.String("property", id),
					zap.String("image", img.ID))
				continue
			}
			refs = append(refs, ImageRef{ID: img.ID, URL: u})
		}
		m.add(id, refs)
	}

	return m
}

// SyncStats summarizes one reconciliation pass over the local image store.
type SyncStats struct {
	Downloaded        int
	Skipped           int
	Failed            int
	Removed           int
	RemoveFailed      int
	SkippedProperties int
}

// Syncer reconciles the local image store against a manifest. It is the only
// component that mutates the store.
type Syncer struct {
	baseDir   string
	client    *http.Client
	userAgent string
	retry     utils.Retry
	log       *zap.Logger
}

func NewSyncer(cfg *config.Config, log *zap.Logger) *Syncer {
	return &Syncer{
		baseDir:   cfg.ImagesDir,
		client:    &http.Client{Timeout: cfg.HTTPTimeout},
		userAgent: cfg.UserAgent,
		retry: utils.Retry{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   cfg.RetryBaseDelay,
			Log:         log,
		},
		log: log,
	}
}

// Sync brings the store in line with the manifest: stale property
// directories are removed, missing images downloaded, existing files left
// untouched. Individual download or deletion failures are logged and
// counted, never fatal.
func (s *Syncer) Sync(ctx context.Context, m *Manifest) (SyncStats, error) {
	stats := SyncStats{SkippedProperties: m.SkippedProperties()}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return stats, fmt.Errorf("create image store %s: %w", s.baseDir, err)
	}

	s.removeStale(m, &stats)

	for _, id := range m.IDs() {
		refs := m.Images(id)
		dir := filepath.Join(s.baseDir, id)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.log.Error("cannot create property directory",
				zap.String("dir", dir), zap.Error(err))
			stats.Failed += len(refs)
			continue
		}

		if len(refs) == 0 {
			s.log.Warn("no images for property", zap.String("property", id))
			continue
		}

		for _, img := range refs {
			dest := filepath.Join(dir, localFilename(img))

			if _, err := os.Stat(dest); err == nil {
				s.log.Info("image already present, skipping download",
					zap.String("path", dest))
				stats.Skipped++
				continue
			}

			if err := s.download(ctx, img.URL, dest); err != nil {
				s.log.Warn("image download failed",
					zap.String("property", id),
					zap.String("url", img.URL),
					zap.Error(err))
				stats.Failed++
				continue
			}

			s.log.Info("image saved",
				zap.String("property", id),
				zap.String("path", dest))
			stats.Downloaded++
		}
	}

	return stats, nil
}

// removeStale deletes property directories the feed no longer mentions. A
// failed deletion leaves the directory in place and is flagged in the stats.
func (s *Syncer) removeStale(m *Manifest, stats *SyncStats) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		s.log.Error("cannot enumerate image store",
			zap.String("dir", s.baseDir), zap.Error(err))
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() || m.Has(entry.Name()) {
			continue
		}
		dir := filepath.Join(s.baseDir, entry.Name())
		if err := os.RemoveAll(dir); err != nil {
			s.log.Error("cannot remove stale directory",
				zap.String("dir", dir), zap.Error(err))
			stats.RemoveFailed++
			continue
		}
		s.log.Info("stale property directory removed", zap.String("dir", dir))
		stats.Removed++
	}
}

func (s *Syncer) download(ctx context.Context, imageURL, dest string) error {
	return s.retry.Do("download "+imageURL, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", s.userAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("bad status: %s", resp.Status)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, data, 0o644)
	})
}

// localFilename derives the stable on-disk name of an image: the feed's
// image id when present, the URL's final path segment otherwise. Re-runs
// skip any name that already exists; content is never re-checked.
func localFilename(img ImageRef) string {
	if img.ID != "" {
		return fmt.Sprintf("image_%s.jpg", img.ID)
	}
	if u, err := url.Parse(img.URL); err == nil {
		if base := path.Base(u.Path); base != "" && base != "." && base != "/" {
			return base
		}
	}
	return "image_unknown.jpg"
}
