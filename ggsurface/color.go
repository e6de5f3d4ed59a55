package ggsurface

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// parseColor converts a CSS color string to a straight-alpha gg color. It
// accepts hex forms, rgb(), rgba(), hsl(), hsla(), named colors and
// "transparent".
func parseColor(s string) (gg.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return gg.RGBA{}, fmt.Errorf("ggsurface: empty color")
	case s == "transparent":
		return gg.Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSLFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.RGBA{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}, nil
	}
	return gg.RGBA{}, fmt.Errorf("ggsurface: unknown color %q", s)
}

func parseHex(s string) (gg.RGBA, error) {
	hex := s[1:]
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("ggsurface: bad hex color %q", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return gg.RGBA{}, fmt.Errorf("ggsurface: bad hex color %q", s)
		}
	}
	return gg.Hex(hex), nil
}

// funcArgs splits "name(a, b, c / d)" into its arguments.
func funcArgs(s string) ([]string, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("ggsurface: bad color function %q", s)
	}
	body := s[open+1 : len(s)-1]
	body = strings.NewReplacer(",", " ", "/", " ").Replace(body)
	return strings.Fields(body), nil
}

// parseComponent parses a number or percentage. Percentages scale to full.
func parseComponent(s string, full float64) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, err
		}
		return v / 100 * full, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseAlpha(args []string) (float64, error) {
	if len(args) < 4 {
		return 1, nil
	}
	a, err := parseComponent(args[3], 1)
	if err != nil {
		return 0, err
	}
	return clamp01(a), nil
}

func parseRGBFunc(s string) (gg.RGBA, error) {
	args, err := funcArgs(s)
	if err != nil {
		return gg.RGBA{}, err
	}
	if len(args) != 3 && len(args) != 4 {
		return gg.RGBA{}, fmt.Errorf("ggsurface: bad color %q", s)
	}
	var rgb [3]float64
	for i := range rgb {
		v, err := parseComponent(args[i], 255)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("ggsurface: bad color %q: %w", s, err)
		}
		rgb[i] = clamp01(v / 255)
	}
	a, err := parseAlpha(args)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("ggsurface: bad color %q: %w", s, err)
	}
	return gg.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: a}, nil
}

func parseHSLFunc(s string) (gg.RGBA, error) {
	args, err := funcArgs(s)
	if err != nil {
		return gg.RGBA{}, err
	}
	if len(args) != 3 && len(args) != 4 {
		return gg.RGBA{}, fmt.Errorf("ggsurface: bad color %q", s)
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("ggsurface: bad color %q: %w", s, err)
	}
	sat, err := parseComponent(args[1], 1)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("ggsurface: bad color %q: %w", s, err)
	}
	light, err := parseComponent(args[2], 1)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("ggsurface: bad color %q: %w", s, err)
	}
	a, err := parseAlpha(args)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("ggsurface: bad color %q: %w", s, err)
	}
	c := gg.HSL(h, clamp01(sat), clamp01(light))
	c.A = a
	return c, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
