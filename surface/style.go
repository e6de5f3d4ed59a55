package surface

import "fmt"

// Style is anything assignable to a context's fill or stroke style.
type Style interface {
	styleKind() string
}

// CSSColor is a CSS color string such as "#fff", "rgba(0, 0, 0, 0.5)" or
// "cornflowerblue".
type CSSColor string

func (CSSColor) styleKind() string { return "color" }

// String returns the color text.
func (c CSSColor) String() string { return string(c) }

// Gradient is a host paint object built with CreateRadialGradient.
type Gradient interface {
	Style
	// AddColorStop adds a stop at offset in [0, 1] with a CSS color.
	AddColorStop(offset float64, color string) error
}

// Pattern is a host paint object built with CreatePattern. Its transform
// maps pattern space to user space.
type Pattern interface {
	Style
	SetTransform(m Matrix)
}

// GradientBase embeds into host gradient types to satisfy Style.
type GradientBase struct{}

func (GradientBase) styleKind() string { return "gradient" }

// PatternBase embeds into host pattern types to satisfy Style.
type PatternBase struct{}

func (PatternBase) styleKind() string { return "pattern" }

// StyleKind names the kind of paint s is: "color", "gradient" or "pattern".
func StyleKind(s Style) string {
	if s == nil {
		return ""
	}
	return s.styleKind()
}

// Repetition is a pattern tiling mode.
type Repetition string

const (
	Repeat   Repetition = "repeat"
	RepeatX  Repetition = "repeat-x"
	RepeatY  Repetition = "repeat-y"
	NoRepeat Repetition = "no-repeat"
)

// ParseRepetition validates a tiling mode name. The empty string means
// Repeat.
func ParseRepetition(s string) (Repetition, error) {
	switch Repetition(s) {
	case "":
		return Repeat, nil
	case Repeat, RepeatX, RepeatY, NoRepeat:
		return Repetition(s), nil
	}
	return "", fmt.Errorf("surface: unknown repetition %q", s)
}

// TilesX reports whether the pattern repeats horizontally.
func (r Repetition) TilesX() bool { return r == Repeat || r == RepeatX || r == "" }

// TilesY reports whether the pattern repeats vertically.
func (r Repetition) TilesY() bool { return r == Repeat || r == RepeatY || r == "" }
