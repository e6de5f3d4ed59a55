package ggsurface

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFont is the initial font of every canvas.
const DefaultFont = "10px sans-serif"

// fontSpec is a parsed CSS font shorthand.
type fontSpec struct {
	size   float64 // CSS pixels
	bold   bool
	italic bool
	mono   bool
}

// parseFont parses "[style] [weight] <size> <family>[, <family>...]".
// Sizes in px, pt and em (of 16px) are understood.
func parseFont(s string) (fontSpec, error) {
	fields := strings.Fields(s)
	var spec fontSpec
	for i, f := range fields {
		lf := strings.ToLower(f)
		switch lf {
		case "normal", "small-caps":
			continue
		case "italic", "oblique":
			spec.italic = true
			continue
		case "bold", "bolder":
			spec.bold = true
			continue
		case "lighter":
			continue
		}
		if w, err := strconv.Atoi(lf); err == nil {
			spec.bold = w >= 600
			continue
		}
		size, err := parseFontSize(lf)
		if err != nil {
			return fontSpec{}, fmt.Errorf("ggsurface: bad font %q: %w", s, err)
		}
		spec.size = size
		family := strings.ToLower(strings.Join(fields[i+1:], " "))
		spec.mono = strings.Contains(family, "mono") || strings.Contains(family, "courier")
		return spec, nil
	}
	return fontSpec{}, fmt.Errorf("ggsurface: bad font %q: missing size", s)
}

func parseFontSize(s string) (float64, error) {
	// A line height may follow the size ("12px/1.5").
	s, _, _ = strings.Cut(s, "/")
	unit := 1.0
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "pt"):
		s = strings.TrimSuffix(s, "pt")
		unit = 4.0 / 3.0
	case strings.HasSuffix(s, "em"):
		s = strings.TrimSuffix(s, "em")
		unit = 16
	default:
		return 0, fmt.Errorf("unsupported size %q", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("size must be positive, got %v", v)
	}
	return v * unit, nil
}

var (
	sourcesMu sync.Mutex
	sources   = map[[3]bool]*text.FontSource{}
)

// fontSource returns the shared Go font source for the requested family and
// style, parsing it on first use.
func fontSource(spec fontSpec) (*text.FontSource, error) {
	key := [3]bool{spec.mono, spec.bold, spec.italic}
	sourcesMu.Lock()
	defer sourcesMu.Unlock()
	if src, ok := sources[key]; ok {
		return src, nil
	}
	src, err := text.NewFontSource(fontData(spec))
	if err != nil {
		return nil, fmt.Errorf("ggsurface: load font: %w", err)
	}
	sources[key] = src
	return src, nil
}

func fontData(spec fontSpec) []byte {
	switch {
	case spec.mono && spec.bold && spec.italic:
		return gomonobolditalic.TTF
	case spec.mono && spec.bold:
		return gomonobold.TTF
	case spec.mono && spec.italic:
		return gomonoitalic.TTF
	case spec.mono:
		return gomono.TTF
	case spec.bold && spec.italic:
		return gobolditalic.TTF
	case spec.bold:
		return gobold.TTF
	case spec.italic:
		return goitalic.TTF
	}
	return goregular.TTF
}
