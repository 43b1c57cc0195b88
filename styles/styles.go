// Package styles renders a resolved caption group into per-word visual state.
//
// Every variant receives the same Input and differs only in how it draws it,
// so switching styles never changes which word is active or which group is shown.
package styles

import (
	"strings"

	"reel-composer/scene"
	"reel-composer/types"
)

// Kind selects a caption style
type Kind int

const (
	Classic Kind = iota
	Bounce
	Highlight
	None
)

// Default is used for unrecognized style keys
const Default = Classic

var kindNames = map[Kind]string{
	Classic:   "subtitle_classic",
	Bounce:    "tiktok_bounce",
	Highlight: "highlight_word",
	None:      "none",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Default]
}

// Parse maps a caption style key to a Kind. Unknown keys, including the
// declared-but-unimplemented "karaoke", fall back to Default.
func Parse(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tiktok_bounce", "bounce":
		return Bounce
	case "highlight_word", "highlight":
		return Highlight
	case "subtitle_classic", "classic":
		return Classic
	case "none":
		return None
	default:
		return Default
	}
}

// Input is the shared contract of every caption style
type Input struct {
	Words       []types.WordTimestamp // visible group
	ActiveIndex int                   // absolute index of the active word
	GroupStart  int                   // absolute index of Words[0]
	Frame       int
	FPS         int
	AccentColor string
	FontFamily  string
	Placement   scene.Placement
	Width       float64 // output width in px
}

// Style renders a caption group. Render returns nil when there is nothing to show.
type Style interface {
	Kind() Kind
	Render(in Input) *scene.CaptionLayer
}

// For returns the Style implementing kind
func For(kind Kind) Style {
	switch kind {
	case Bounce:
		return bounce{}
	case Highlight:
		return highlight{}
	case None:
		return none{}
	default:
		return classic{}
	}
}

// Named is For(Parse(name))
func Named(name string) Style {
	return For(Parse(name))
}

const (
	white       = "#FFFFFF"
	boxColor    = "rgba(0,0,0,0.8)"
	sidePadding = 40.0
)

func maxBoxWidth(width float64) float64 {
	if width <= 0 {
		return 0
	}
	return width - 2*sidePadding
}

type none struct{}

func (none) Kind() Kind { return None }

func (none) Render(Input) *scene.CaptionLayer { return nil }
