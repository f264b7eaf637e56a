package renderer

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"Folio3D/internal/logger"
	"Folio3D/internal/palette"
)

// maxImageBytes caps a remote image download.
const maxImageBytes = 16 << 20

// PlaceholderName is the cache key of the texture shown until an image loads.
const PlaceholderName = "placeholder"

// TextureStats provides debugging and profiling information
type TextureStats struct {
	TotalTextures  int
	CacheHits      int
	CacheMisses    int
	Failed         int
	Pending        int
	ActiveTextures int
}

type fetched struct {
	ref string
	img image.Image
	err error
}

// TextureManager manages texture loading, caching, and lifecycle. Images
// are fetched and decoded off the render thread; Upload moves finished
// images to the GPU and must be called from the thread owning the context.
type TextureManager struct {
	textureCache    map[string]uint32 // ref -> OpenGL texture ID
	textureRefCount map[uint32]int    // texture ID -> reference count
	texturePaths    map[uint32]string // texture ID -> ref (for debugging)
	pending         map[string]bool
	failed          map[string]error
	mu              sync.RWMutex
	stats           TextureStats

	ready  chan fetched
	client *http.Client
	wg     sync.WaitGroup

	// upload and free are replaced in tests.
	upload func(img *image.RGBA) uint32
	free   func(id uint32)
}

// NewTextureManager creates a new texture manager instance
func NewTextureManager() *TextureManager {
	return &TextureManager{
		textureCache:    make(map[string]uint32),
		textureRefCount: make(map[uint32]int),
		texturePaths:    make(map[uint32]string),
		pending:         make(map[string]bool),
		failed:          make(map[string]error),
		ready:           make(chan fetched, 16),
		client:          &http.Client{Timeout: 20 * time.Second},
		upload:          glUpload,
		free:            func(id uint32) { gl.DeleteTextures(1, &id) },
	}
}

// Placeholder returns the texture shown while an image is missing, creating
// it on first use.
func (tm *TextureManager) Placeholder() uint32 {
	tm.mu.RLock()
	id, ok := tm.textureCache[PlaceholderName]
	tm.mu.RUnlock()
	if ok {
		return id
	}
	id, _ = tm.CreateTextureFromImage(placeholderImage(), PlaceholderName)
	return id
}

func placeholderImage() *image.RGBA {
	const size = 8
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	dark := palette.RGBA8(palette.Panel, 1)
	light := palette.RGBA8(palette.Night, 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := dark
			if (x+y)%2 == 0 {
				c = light
			}
			copy(img.Pix[img.PixOffset(x, y):], c[:])
		}
	}
	return img
}

// LoadImageAsync starts fetching ref (a file path or http(s) URL) unless it
// is cached, pending or has already failed.
func (tm *TextureManager) LoadImageAsync(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	tm.mu.Lock()
	if _, ok := tm.textureCache[ref]; ok || tm.pending[ref] || tm.failed[ref] != nil {
		tm.mu.Unlock()
		return
	}
	tm.pending[ref] = true
	tm.stats.CacheMisses++
	tm.mu.Unlock()

	tm.wg.Add(1)
	go func() {
		defer tm.wg.Done()
		img, err := tm.fetch(ctx, ref)
		select {
		case tm.ready <- fetched{ref: ref, img: img, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (tm *TextureManager) fetch(ctx context.Context, ref string) (image.Image, error) {
	var r io.ReadCloser
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return nil, err
		}
		resp, err := tm.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: %s", ref, resp.Status)
		}
		r = resp.Body
	} else {
		f, err := os.Open(ref)
		if err != nil {
			return nil, err
		}
		r = f
	}
	defer r.Close()

	img, _, err := image.Decode(io.LimitReader(r, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ref, err)
	}
	return img, nil
}

// Upload moves every image finished since the last call onto the GPU.
// Failed loads are logged and leave the placeholder in place.
func (tm *TextureManager) Upload() int {
	n := 0
	for {
		select {
		case f := <-tm.ready:
			tm.mu.Lock()
			delete(tm.pending, f.ref)
			tm.mu.Unlock()
			if f.err != nil {
				tm.mu.Lock()
				tm.failed[f.ref] = f.err
				tm.stats.Failed++
				tm.mu.Unlock()
				logger.Log.Warn("Image unavailable, keeping placeholder", zap.String("ref", f.ref), zap.Error(f.err))
				continue
			}
			if _, err := tm.CreateTextureFromImage(f.img, f.ref); err == nil {
				n++
			}
		default:
			return n
		}
	}
}

// Lookup returns the texture for ref, or the placeholder while it is missing.
func (tm *TextureManager) Lookup(ref string) uint32 {
	tm.mu.RLock()
	id, ok := tm.textureCache[ref]
	tm.mu.RUnlock()
	if ok {
		return id
	}
	return tm.Placeholder()
}

// Failed returns the error recorded for ref, if its load failed.
func (tm *TextureManager) Failed(ref string) error {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.failed[ref]
}

// Wait blocks until every fetch goroutine has handed off its result.
func (tm *TextureManager) Wait() {
	tm.wg.Wait()
}

// CreateTextureFromImage creates a texture from an image.Image
// cached under name; an existing texture under name is reused.
func (tm *TextureManager) CreateTextureFromImage(img image.Image, name string) (uint32, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if textureID, exists := tm.textureCache[name]; exists {
		tm.textureRefCount[textureID]++
		tm.stats.CacheHits++
		return textureID, nil
	}

	b := img.Bounds()
	if b.Empty() {
		return 0, fmt.Errorf("texture %s: empty image", name)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	flipRows(rgba)

	textureID := tm.upload(rgba)

	tm.textureCache[name] = textureID
	tm.textureRefCount[textureID] = 1
	tm.texturePaths[textureID] = name
	tm.stats.TotalTextures++

	logger.Log.Debug("Texture created from image",
		zap.String("name", name),
		zap.Uint32("textureID", textureID),
		zap.Int("width", rgba.Rect.Dx()),
		zap.Int("height", rgba.Rect.Dy()))

	return textureID, nil
}

// flipRows turns image rows upside down: images store the top row first,
// GL samples v=0 from the first row uploaded.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

func glUpload(rgba *image.RGBA) uint32 {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(rgba.Rect.Size().X), int32(rgba.Rect.Size().Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return textureID
}

// AddReference increments the reference count for a texture
func (tm *TextureManager) AddReference(textureID uint32) {
	if textureID == 0 {
		return
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.textureRefCount[textureID]++
}

// ReleaseTexture decrements reference count and frees texture if count reaches 0
func (tm *TextureManager) ReleaseTexture(textureID uint32) {
	if textureID == 0 {
		return
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	refCount, exists := tm.textureRefCount[textureID]
	if !exists {
		logger.Log.Warn("Attempted to release unknown texture",
			zap.Uint32("textureID", textureID))
		return
	}

	refCount--
	tm.textureRefCount[textureID] = refCount

	if refCount <= 0 {
		tm.free(textureID)

		path := tm.texturePaths[textureID]
		delete(tm.textureCache, path)
		delete(tm.textureRefCount, textureID)
		delete(tm.texturePaths, textureID)

		logger.Log.Debug("Texture freed",
			zap.Uint32("textureID", textureID),
			zap.String("ref", path))
	}
}

// GetStats returns current texture manager statistics
func (tm *TextureManager) GetStats() TextureStats {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	stats := tm.stats
	stats.ActiveTextures = len(tm.textureRefCount)
	stats.Pending = len(tm.pending)
	return stats
}

// LogStats logs current texture statistics
func (tm *TextureManager) LogStats() {
	stats := tm.GetStats()
	logger.Log.Info("Texture Manager Stats",
		zap.Int("totalTextures", stats.TotalTextures),
		zap.Int("activeTextures", stats.ActiveTextures),
		zap.Int("pending", stats.Pending),
		zap.Int("failed", stats.Failed),
		zap.Int("cacheHits", stats.CacheHits),
		zap.Int("cacheMisses", stats.CacheMisses))
}

// Clear releases all textures
func (tm *TextureManager) Clear() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	for textureID := range tm.textureRefCount {
		tm.free(textureID)
	}

	tm.textureCache = make(map[string]uint32)
	tm.textureRefCount = make(map[uint32]int)
	tm.texturePaths = make(map[uint32]string)

	logger.Log.Info("Texture manager cleared")
}
