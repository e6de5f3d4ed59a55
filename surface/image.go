package surface

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Image is a host image handle. It may be handed out before its pixels
// are available; Complete reports when they are.
type Image interface {
	Complete() bool
	NaturalWidth() int
	NaturalHeight() int
}

// ImageSource is implemented by images that expose their decoded pixels.
type ImageSource interface {
	Image
	Pixels() image.Image
}

// ImageLoader constructs images from a URL. The returned image is usually
// incomplete and finishes loading in the background.
type ImageLoader interface {
	Load(ctx context.Context, src string) Image
}

// ErrImageNotLoaded is returned by Bitmap.Err before loading finishes.
var ErrImageNotLoaded = errors.New("surface: image not loaded")

// Bitmap is an Image decoded from a file, an HTTP URL or memory.
type Bitmap struct {
	src      string
	complete atomic.Bool
	done     chan struct{}

	mu     sync.Mutex
	img    image.Image
	err    error
	onLoad []func(*Bitmap)
}

// NewBitmapFromImage wraps already decoded pixels. The result is complete.
func NewBitmapFromImage(img image.Image) *Bitmap {
	b := &Bitmap{done: make(chan struct{}), img: img}
	b.complete.Store(true)
	close(b.done)
	return b
}

// LoadBitmap starts loading src on a new goroutine and returns at once.
// src may be an http(s) URL, a file URL or a plain path.
func LoadBitmap(ctx context.Context, client *http.Client, src string) *Bitmap {
	b := &Bitmap{src: src, done: make(chan struct{}), err: ErrImageNotLoaded}
	if client == nil {
		client = http.DefaultClient
	}
	go b.load(ctx, client)
	return b
}

func (b *Bitmap) load(ctx context.Context, client *http.Client) {
	img, err := fetchImage(ctx, client, b.src)

	b.mu.Lock()
	b.img, b.err = img, err
	if err == nil {
		b.complete.Store(true)
	}
	close(b.done)
	callbacks := b.onLoad
	b.onLoad = nil
	b.mu.Unlock()

	for _, fn := range callbacks {
		fn(b)
	}
}

func fetchImage(ctx context.Context, client *http.Client, src string) (image.Image, error) {
	var r io.ReadCloser
	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("surface: load %s: %w", src, err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("surface: load %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("surface: load %s: status %s", src, resp.Status)
		}
		r = resp.Body
	default:
		path := src
		if u, err := url.Parse(src); err == nil && u.Scheme == "file" {
			path = u.Path
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("surface: load %s: %w", src, err)
		}
		r = f
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("surface: decode %s: %w", src, err)
	}
	return img, nil
}

// Src returns the URL the bitmap was loaded from, or "" for in-memory images.
func (b *Bitmap) Src() string { return b.src }

// Complete reports whether the pixels are decoded and available.
func (b *Bitmap) Complete() bool { return b.complete.Load() }

// Done is closed when loading finishes, successfully or not.
func (b *Bitmap) Done() <-chan struct{} { return b.done }

// Err returns the load error. It is ErrImageNotLoaded while loading.
func (b *Bitmap) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// OnLoad registers fn to run once loading finishes. If it already has, fn
// runs immediately on the calling goroutine.
func (b *Bitmap) OnLoad(fn func(*Bitmap)) {
	b.mu.Lock()
	select {
	case <-b.done:
		b.mu.Unlock()
		fn(b)
		return
	default:
	}
	b.onLoad = append(b.onLoad, fn)
	b.mu.Unlock()
}

// Pixels returns the decoded image, or nil while incomplete.
func (b *Bitmap) Pixels() image.Image {
	if !b.Complete() {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.img
}

// NaturalWidth returns the intrinsic pixel width, 0 while incomplete.
func (b *Bitmap) NaturalWidth() int {
	if img := b.Pixels(); img != nil {
		return img.Bounds().Dx()
	}
	return 0
}

// NaturalHeight returns the intrinsic pixel height, 0 while incomplete.
func (b *Bitmap) NaturalHeight() int {
	if img := b.Pixels(); img != nil {
		return img.Bounds().Dy()
	}
	return 0
}

// BitmapLoader is an ImageLoader producing Bitmaps.
type BitmapLoader struct {
	Client *http.Client
}

// Load implements ImageLoader.
func (l BitmapLoader) Load(ctx context.Context, src string) Image {
	return LoadBitmap(ctx, l.Client, src)
}
