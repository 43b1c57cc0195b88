package types

// WordTimestamp locates one spoken word on the narration timeline
type WordTimestamp struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// ContentType tags the payload carried by an overlay segment
type ContentType string

const (
	ContentTextAnimation    ContentType = "text_animation"
	ContentCodeAnimation    ContentType = "code_animation"
	ContentStockVideo       ContentType = "stock_video"
	ContentUserUpload       ContentType = "user_upload"
	ContentAnimatedGraphics ContentType = "animated_graphics"
	ContentDiagramReveal    ContentType = "diagram_reveal"
	ContentIconAnimation    ContentType = "icon_animation"
	ContentScreenRecording  ContentType = "screen_recording"
)

// OverlayContent is the typed payload of a b-roll segment.
// Only the fields matching Type are meaningful.
type OverlayContent struct {
	Type ContentType `json:"type"`

	// text_animation
	Text      string `json:"text,omitempty"`
	TextStyle string `json:"style,omitempty"` // pop | slide | fade | typewriter

	// code_animation
	Language string `json:"language,omitempty"`
	Code     string `json:"code,omitempty"`
	Theme    string `json:"theme,omitempty"` // dark | light

	// stock_video
	Query string `json:"query,omitempty"`
	URL   string `json:"url,omitempty"`

	// user_upload
	AssetURL string `json:"asset_url,omitempty"`
}

// OverlaySegment is one time-boxed b-roll element.
// Array order is paint order: later segments paint on top.
type OverlaySegment struct {
	ID        string         `json:"id"`
	StartTime float64        `json:"start_time"`
	Duration  float64        `json:"duration"`
	Content   OverlayContent `json:"content"`
}

// AvatarSettings controls the optional presenter overlay
type AvatarSettings struct {
	Mode     string `json:"mode"`     // face | presenter | faceless | none
	Position string `json:"position"` // full | corner_br | corner_bl | corner_tr | corner_tl | bottom_third
	VideoURL string `json:"video_url,omitempty"`
}

// Presenter reports whether the presenter overlay should be drawn
func (a AvatarSettings) Presenter() bool {
	return (a.Mode == "face" || a.Mode == "presenter") && a.VideoURL != ""
}

// Reel is the full, already-validated input of one composition
type Reel struct {
	ID              string           `json:"id"`
	AudioURL        string           `json:"audio_url"`
	WordTimestamps  []WordTimestamp  `json:"word_timestamps"`
	DurationSeconds float64          `json:"duration"`
	CaptionStyle    string           `json:"caption_style"`
	VisualStyle     string           `json:"visual_style"`
	PrimaryColor    string           `json:"primary_color,omitempty"`
	SecondaryColor  string           `json:"secondary_color,omitempty"`
	AccentColor     string           `json:"accent_color,omitempty"`
	FontTitle       string           `json:"font_title,omitempty"`
	FontBody        string           `json:"font_body,omitempty"`
	BackgroundStyle string           `json:"background_style,omitempty"` // gradient | solid | animated | stock
	Avatar          AvatarSettings   `json:"avatar"`
	Overlays        []OverlaySegment `json:"overlays"`
}

// RunState tracks one host render run
type RunState struct {
	RunID         string  `json:"run_id"`
	ReelID        string  `json:"reel_id"`
	StartedAt     string  `json:"started_at"`
	CompletedAt   string  `json:"completed_at"`
	FPS           int     `json:"fps"`
	TotalFrames   int     `json:"total_frames"`
	CaptionStyle  string  `json:"caption_style"`
	FramesFile    string  `json:"frames_file"`
	SRTFile       string  `json:"srt_file"`
	VTTFile       string  `json:"vtt_file"`
	CachedChunks  int     `json:"cached_chunks"`
	RenderSeconds float64 `json:"render_seconds"`
	Error         string  `json:"error,omitempty"`
}
