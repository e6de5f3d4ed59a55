package canvas2d

import (
	"context"
	"log/slog"

	"github.com/phanxgames/canvas2d/surface"
)

// TextureOptions configures a Texture2D. A zero Width or Height means the
// image's natural size on that axis.
type TextureOptions struct {
	Repetition       surface.Repetition
	OffsetX, OffsetY float64
	Width, Height    float64
}

// Texture2D is an image used as a repeating fill pattern. The pattern is
// created on first use against a context and cached; offset and size
// changes only rebuild its placement transform.
type Texture2D struct {
	image      surface.Image
	repetition surface.Repetition

	offsetX, offsetY float64
	width, height    float64

	pattern    surface.Pattern
	patternCtx surface.Context2D
	placement  surface.Matrix
	batching   bool
}

// NewTexture2D wraps img, which may still be loading.
func NewTexture2D(img surface.Image, opts TextureOptions) (*Texture2D, error) {
	t := &Texture2D{placement: surface.Identity}
	if err := t.SetImage(img); err != nil {
		return nil, err
	}
	if err := t.SetRepetition(opts.Repetition); err != nil {
		return nil, err
	}
	if err := t.SetImageOffset(opts.OffsetX, opts.OffsetY); err != nil {
		return nil, err
	}
	if opts.Width != 0 {
		if err := t.SetImageWidth(opts.Width); err != nil {
			return nil, err
		}
	}
	if opts.Height != 0 {
		if err := t.SetImageHeight(opts.Height); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// LoadTexture2D starts loading src through loader and returns the texture
// immediately. It draws nothing until the image completes.
func LoadTexture2D(ctx context.Context, loader surface.ImageLoader, src string, opts TextureOptions) (*Texture2D, error) {
	if loader == nil {
		loader = surface.BitmapLoader{}
	}
	img := loader.Load(ctx, src)
	if b, ok := img.(*surface.Bitmap); ok {
		b.OnLoad(func(b *surface.Bitmap) {
			if err := b.Err(); err != nil {
				Logger().Debug("texture load failed", slog.String("src", src), slog.Any("err", err))
				return
			}
			Logger().Debug("texture loaded", slog.String("src", src),
				slog.Int("width", b.NaturalWidth()), slog.Int("height", b.NaturalHeight()))
		})
	}
	return NewTexture2D(img, opts)
}

// Image returns the image handle.
func (t *Texture2D) Image() surface.Image { return t.image }

// SetImage replaces the image and discards any cached pattern.
func (t *Texture2D) SetImage(img surface.Image) error {
	if img == nil {
		return &TypeError{Field: "image", Want: "Image"}
	}
	t.image = img
	t.pattern = nil
	t.patternCtx = nil
	return nil
}

// Repetition returns the tiling mode.
func (t *Texture2D) Repetition() surface.Repetition { return t.repetition }

// SetRepetition changes the tiling mode. The empty value means repeat.
func (t *Texture2D) SetRepetition(r surface.Repetition) error {
	rep, err := surface.ParseRepetition(string(r))
	if err != nil {
		return &TypeError{Field: "repetition", Want: "repeat, repeat-x, repeat-y or no-repeat"}
	}
	if rep != t.repetition {
		t.pattern = nil
		t.patternCtx = nil
	}
	t.repetition = rep
	return nil
}

// ImageOffset returns the pattern offset.
func (t *Texture2D) ImageOffset() (x, y float64) { return t.offsetX, t.offsetY }

// SetImageOffsetX assigns the horizontal pattern offset.
func (t *Texture2D) SetImageOffsetX(x float64) error {
	if err := checkFinite("imageOffsetX", x); err != nil {
		return err
	}
	t.offsetX = x
	t.changed()
	return nil
}

// SetImageOffsetY assigns the vertical pattern offset.
func (t *Texture2D) SetImageOffsetY(y float64) error {
	if err := checkFinite("imageOffsetY", y); err != nil {
		return err
	}
	t.offsetY = y
	t.changed()
	return nil
}

// SetImageOffset assigns both offsets, rebuilding the placement once.
func (t *Texture2D) SetImageOffset(x, y float64) error {
	px, py := t.offsetX, t.offsetY
	batch := beginBatch(&t.batching, func() { t.offsetX, t.offsetY = px, py }, t.updatePlacement)
	defer batch.end()

	if err := t.SetImageOffsetX(x); err != nil {
		return err
	}
	if err := t.SetImageOffsetY(y); err != nil {
		return err
	}
	return batch.commit()
}

// ImageSize returns the explicit draw size. Zero means natural size.
func (t *Texture2D) ImageSize() (w, h float64) { return t.width, t.height }

// SetImageWidth assigns the drawn width of one tile.
func (t *Texture2D) SetImageWidth(w float64) error {
	if err := checkPositive("imageWidth", w); err != nil {
		return err
	}
	t.width = w
	t.changed()
	return nil
}

// SetImageHeight assigns the drawn height of one tile.
func (t *Texture2D) SetImageHeight(h float64) error {
	if err := checkPositive("imageHeight", h); err != nil {
		return err
	}
	t.height = h
	t.changed()
	return nil
}

// SetImageSize assigns both tile dimensions, rebuilding the placement once.
func (t *Texture2D) SetImageSize(w, h float64) error {
	pw, ph := t.width, t.height
	batch := beginBatch(&t.batching, func() { t.width, t.height = pw, ph }, t.updatePlacement)
	defer batch.end()

	if err := t.SetImageWidth(w); err != nil {
		return err
	}
	if err := t.SetImageHeight(h); err != nil {
		return err
	}
	return batch.commit()
}

// ResetImageSize returns to the image's natural size.
func (t *Texture2D) ResetImageSize() {
	t.width, t.height = 0, 0
	t.changed()
}

// Placement returns the current pattern transform.
func (t *Texture2D) Placement() surface.Matrix { return t.placement }

func (t *Texture2D) changed() {
	if !t.batching {
		t.updatePlacement()
	}
}

// updatePlacement rebuilds the pattern transform: translate by the offset,
// then scale natural size to the explicit size.
func (t *Texture2D) updatePlacement() {
	sx, sy := 1.0, 1.0
	if t.image != nil && t.image.Complete() {
		if nw := float64(t.image.NaturalWidth()); t.width > 0 && nw > 0 {
			sx = t.width / nw
		}
		if nh := float64(t.image.NaturalHeight()); t.height > 0 && nh > 0 {
			sy = t.height / nh
		}
	}
	t.placement = surface.Identity.TranslateSelf(t.offsetX, t.offsetY).ScaleSelf(sx, sy)
	if t.pattern != nil {
		t.pattern.SetTransform(t.placement)
	}
}

// CreatePattern returns the paint for ctx, or nil while the image is still
// loading. The pattern is created once per context and reused.
func (t *Texture2D) CreatePattern(ctx surface.Context2D) (surface.Pattern, error) {
	if ctx == nil {
		return nil, &TypeError{Field: "ctx", Want: "Context2D"}
	}
	if t.image == nil || !t.image.Complete() {
		return nil, nil
	}
	if t.pattern == nil || t.patternCtx != ctx {
		p, err := ctx.CreatePattern(t.image, t.repetition)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, nil
		}
		t.pattern = p
		t.patternCtx = ctx
	}
	t.updatePlacement()
	return t.pattern, nil
}
