// Package scene is the renderer-agnostic visual state of a single frame.
// Values are plain data so a frame can be serialized, diffed or cached.
package scene

// Frame is the aggregate render state for one instant.
// Paint order: Background, BRoll (in order), Avatar, Captions.
type Frame struct {
	Index      int              `json:"frame"`
	Time       float64          `json:"t"`
	Opacity    float64          `json:"opacity"`
	Background Background       `json:"background"`
	BRoll      []BRollState     `json:"broll,omitempty"`
	Avatar     *AvatarState     `json:"avatar,omitempty"`
	Captions   *CaptionLayer    `json:"captions,omitempty"`
	Audio      *AudioAttachment `json:"audio,omitempty"`
}

// Background is the base layer
type Background struct {
	Kind       string   `json:"kind"` // solid | gradient | animated
	Color      string   `json:"color"`
	Angle      float64  `json:"angle,omitempty"`
	Stops      []string `json:"stops,omitempty"`
	Highlights []Orb    `json:"highlights,omitempty"`
}

// Orb is a blurred radial highlight floating over the animated background
type Orb struct {
	X      float64 `json:"x"` // px from the Anchor edge
	Y      float64 `json:"y"`
	Size   float64 `json:"size"`
	Blur   float64 `json:"blur"`
	Color  string  `json:"color"`
	Alpha  string  `json:"alpha"`  // hex alpha suffix applied to Color
	Anchor string  `json:"anchor"` // left | right
}

// Rect is a placement box in output pixels
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// AvatarState places the presenter video
type AvatarState struct {
	VideoURL     string  `json:"video_url"`
	Position     string  `json:"position"`
	Rect         Rect    `json:"rect"`
	CornerRadius float64 `json:"corner_radius"`
	Shadow       bool    `json:"shadow"`
	MaskGradient bool    `json:"mask_gradient"`
}

// AudioAttachment references the narration track; it is never fetched
type AudioAttachment struct {
	URL string `json:"url"`
}

// Placement is the vertical anchor of the caption line
type Placement struct {
	Anchor string  `json:"anchor"` // top | center | bottom
	Offset float64 `json:"offset"` // px from the anchored edge; 0 for center
}

// Box is a rounded background container
type Box struct {
	Color        string  `json:"color"`
	CornerRadius float64 `json:"corner_radius"`
	PaddingX     float64 `json:"padding_x"`
	PaddingY     float64 `json:"padding_y"`
	MaxWidth     float64 `json:"max_width,omitempty"`
}

// CaptionLayer is what a caption style renders for one frame
type CaptionLayer struct {
	Style      string      `json:"style"`
	Placement  Placement   `json:"placement"`
	FontFamily string      `json:"font_family,omitempty"`
	Gap        float64     `json:"gap,omitempty"`
	Box        *Box        `json:"box,omitempty"`
	Text       string      `json:"text,omitempty"`
	Words      []WordState `json:"words,omitempty"`
}

// WordState is the per-frame state of one visible word
type WordState struct {
	Word       string  `json:"word"`
	Index      int     `json:"index"`
	Active     bool    `json:"active"`
	Progress   float64 `json:"progress"`
	Scale      float64 `json:"scale"`
	OffsetY    float64 `json:"offset_y"`
	Color      string  `json:"color"`
	Background string  `json:"background,omitempty"`
	PaddingX   float64 `json:"padding_x,omitempty"`
	FontSize   float64 `json:"font_size"`
	FontWeight int     `json:"font_weight"`
	Uppercase  bool    `json:"uppercase,omitempty"`
}

// BRollState is one active overlay segment
type BRollState struct {
	ID         string  `json:"id"`
	Kind       string  `json:"kind"`
	LocalFrame int     `json:"local_frame"`
	Opacity    float64 `json:"opacity"`

	Text  *TextReveal `json:"text,omitempty"`
	Code  *CodeReveal `json:"code,omitempty"`
	Media *MediaLayer `json:"media,omitempty"`
}

// TextReveal is an animated headline
type TextReveal struct {
	Style      string  `json:"style"`
	Text       string  `json:"text"`
	Scale      float64 `json:"scale"`
	OffsetY    float64 `json:"offset_y"`
	Opacity    float64 `json:"opacity"`
	Cursor     bool    `json:"cursor,omitempty"`
	FontFamily string  `json:"font_family,omitempty"`
	Glow       string  `json:"glow,omitempty"`
}

// CodeReveal is a code block being typed out
type CodeReveal struct {
	Language   string   `json:"language"`
	Theme      string   `json:"theme"`
	Background string   `json:"background"`
	Foreground string   `json:"foreground"`
	Lines      []string `json:"lines"`
	CaretLine  int      `json:"caret_line"` // -1 when no line is being typed
	Revealed   int      `json:"revealed"`
}

// MediaLayer is a full-frame clip or still
type MediaLayer struct {
	Kind string `json:"kind"` // video | image
	URL  string `json:"url"`
	Fit  string `json:"fit"`
}
