package canvas2d

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/image/colornames"
)

// EnvConfig holds renderer defaults read from the environment. With the
// prefix "CANVAS" the variables are CANVAS_WIDTH, CANVAS_HEIGHT,
// CANVAS_DEVICE_PIXEL_RATIO, CANVAS_BACKGROUND and CANVAS_DEBUG.
type EnvConfig struct {
	Width            float64 `envconfig:"WIDTH" default:"800"`
	Height           float64 `envconfig:"HEIGHT" default:"600"`
	DevicePixelRatio float64 `envconfig:"DEVICE_PIXEL_RATIO" default:"1"`
	Background       string  `envconfig:"BACKGROUND" default:"#000"`
	Debug            bool    `envconfig:"DEBUG" default:"false"`
}

// LoadEnvConfig reads EnvConfig from the environment.
func LoadEnvConfig(prefix string) (*EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("canvas2d: load env config: %w", err)
	}
	if err := checkCSSColor(cfg.Background); err != nil {
		return nil, fmt.Errorf("canvas2d: load env config: %w", err)
	}
	return &cfg, nil
}

// checkCSSColor reports whether s has the shape of a CSS color: a hex
// form, rgb()/rgba()/hsl()/hsla() with numeric arguments, a named color,
// or "transparent".
func checkCSSColor(s string) error {
	bad := &TypeError{Field: "background", Want: "CSS color"}
	c := strings.ToLower(strings.TrimSpace(s))
	if c == "transparent" {
		return nil
	}
	if _, ok := colornames.Map[c]; ok {
		return nil
	}
	if hex, ok := strings.CutPrefix(c, "#"); ok {
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return bad
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return bad
		}
		return nil
	}
	open := strings.IndexByte(c, '(')
	if open < 0 || !strings.HasSuffix(c, ")") {
		return bad
	}
	switch c[:open] {
	case "rgb", "rgba", "hsl", "hsla":
	default:
		return bad
	}
	args := strings.Fields(strings.NewReplacer(",", " ", "/", " ").Replace(c[open+1 : len(c)-1]))
	if len(args) != 3 && len(args) != 4 {
		return bad
	}
	for _, a := range args {
		a = strings.TrimSuffix(strings.TrimSuffix(a, "%"), "deg")
		if _, err := strconv.ParseFloat(a, 64); err != nil {
			return bad
		}
	}
	return nil
}

// Options converts the configuration to renderer options. Sizes are
// validated when the renderer is built.
func (c *EnvConfig) Options() []RendererOption {
	return []RendererOption{
		WithSize(c.Width, c.Height),
		WithDevicePixelRatio(c.DevicePixelRatio),
		WithBackground(CSSColor(c.Background)),
		WithDebug(c.Debug),
	}
}
