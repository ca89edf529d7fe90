// Package logos resolves team and league logo references (URLs, local
// paths, upload refs) into bitmaps sized for the ticker. Downloads are
// cached on disk so a restart does not refetch every logo.
package logos

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/ledmatrix/sportsticker/internal/logging"
)

const fetchTimeout = 10 * time.Second

// Loader implements logo resolution with a disk cache for remote images and
// an in-memory cache of prepared bitmaps. Safe for concurrent use.
type Loader struct {
	dir    string
	client *http.Client
	logger *slog.Logger

	mu       sync.Mutex
	prepared map[string]image.Image
	failed   map[string]struct{}
}

// NewLoader constructs a Loader caching downloads under dir.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	_ = os.MkdirAll(dir, 0o755)
	return &Loader{
		dir:      dir,
		client:   &http.Client{Timeout: fetchTimeout},
		logger:   logger,
		prepared: make(map[string]image.Image),
		failed:   make(map[string]struct{}),
	}
}

// Resolve returns the logo for ref scaled into a size x size square, or
// false when the reference cannot be loaded. Failures are remembered so a
// dead URL is not refetched on every rebuild.
func (l *Loader) Resolve(ref string, size int) (image.Image, bool) {
	if ref == "" || size < 1 {
		return nil, false
	}

	key := fmt.Sprintf("%s|%d", ref, size)
	l.mu.Lock()
	if img, ok := l.prepared[key]; ok {
		l.mu.Unlock()
		return img, true
	}
	if _, bad := l.failed[ref]; bad {
		l.mu.Unlock()
		return nil, false
	}
	l.mu.Unlock()

	src, err := l.load(ref)
	if err != nil {
		logging.Warn(l.logger, "logo load failed", "ref", ref, "error", err)
		l.mu.Lock()
		l.failed[ref] = struct{}{}
		l.mu.Unlock()
		return nil, false
	}

	prepared := Prepare(src, size)
	l.mu.Lock()
	l.prepared[key] = prepared
	l.mu.Unlock()
	return prepared, true
}

func (l *Loader) load(ref string) (image.Image, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return l.loadRemote(ref)
	}
	return loadFile(ref)
}

func (l *Loader) loadRemote(url string) (image.Image, error) {
	cachePath := filepath.Join(l.dir, cacheKey(url)+".png")
	if img, err := loadFile(cachePath); err == nil {
		return img, nil
	}

	resp, err := l.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch logo: unexpected status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}

	if file, createErr := os.Create(cachePath); createErr == nil {
		if encodeErr := png.Encode(file, img); encodeErr != nil {
			os.Remove(cachePath)
		}
		file.Close()
	}
	return img, nil
}

func loadFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func cacheKey(url string) string {
	sum := sha1.Sum([]byte(url))
	return hex.EncodeToString(sum[:8])
}
