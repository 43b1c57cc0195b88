// Package compose evaluates every layer of a reel at a single frame.
//
// A Composer is built once per reel and is read-only afterwards, so any
// number of goroutines may call Frame concurrently and in any order.
package compose

import (
	"reel-composer/broll"
	"reel-composer/captions"
	"reel-composer/config"
	"reel-composer/scene"
	"reel-composer/styles"
	"reel-composer/timeline"
	"reel-composer/types"
)

// Composer holds everything resolved from a reel and its config
type Composer struct {
	reel      types.Reel
	track     *captions.Track
	style     styles.Style
	groupSize int
	placement scene.Placement

	fps           int
	width, height float64
	totalFrames   int

	palette    config.Preset
	background string
}

// New resolves presets, overrides and caption settings for reel.
// Callers must not mutate reel's slices afterwards.
func New(reel types.Reel, cfg *config.Config) *Composer {
	fps := cfg.Video.FPS
	if fps <= 0 {
		fps = timeline.DefaultFPS
	}

	styleKey := reel.CaptionStyle
	if styleKey == "" {
		styleKey = cfg.Captions.DefaultStyle
	}

	height := float64(cfg.Video.Height)
	return &Composer{
		reel:        reel,
		track:       captions.NewTrack(reel.WordTimestamps),
		style:       styles.Named(styleKey),
		groupSize:   cfg.Captions.WordsPerGroup,
		placement:   styles.ResolvePlacement(cfg.Captions.Position, reel.Avatar.Position, height),
		fps:         fps,
		width:       float64(cfg.Video.Width),
		height:      height,
		totalFrames: timeline.TotalFrames(reel.DurationSeconds, fps),
		palette:     palette(reel, cfg.Visuals),
		background:  firstNonEmpty(reel.BackgroundStyle, cfg.Visuals.BackgroundStyle, "gradient"),
	}
}

// palette starts from the reel's preset and applies per-reel overrides
func palette(reel types.Reel, v config.VisualsConfig) config.Preset {
	p, _ := v.ResolvePreset(reel.VisualStyle)
	p.PrimaryColor = firstNonEmpty(reel.PrimaryColor, p.PrimaryColor)
	p.SecondaryColor = firstNonEmpty(reel.SecondaryColor, p.SecondaryColor)
	p.AccentColor = firstNonEmpty(reel.AccentColor, p.AccentColor)
	p.FontTitle = firstNonEmpty(reel.FontTitle, p.FontTitle)
	p.FontBody = firstNonEmpty(reel.FontBody, p.FontBody)
	return p
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// TotalFrames is the reel length in frames
func (c *Composer) TotalFrames() int { return c.totalFrames }

// FPS is the frame rate frames are evaluated at
func (c *Composer) FPS() int { return c.fps }

// StyleKind is the caption style in use after fallback
func (c *Composer) StyleKind() styles.Kind { return c.style.Kind() }

// Palette is the resolved colour and font set
func (c *Composer) Palette() config.Preset { return c.palette }

// Active resolves the spoken word and its caption group at frame i.
// It does not depend on the caption style.
func (c *Composer) Active(i int) (captions.Group, int, bool) {
	return c.track.At(timeline.FrameToSeconds(i, c.fps), c.groupSize)
}

// Frame computes the visual state of frame i. Frames outside
// [0, TotalFrames) are evaluated anyway with a zero opacity.
func (c *Composer) Frame(i int) scene.Frame {
	f := scene.Frame{
		Index:      i,
		Time:       timeline.FrameToSeconds(i, c.fps),
		Opacity:    c.opacity(i),
		Background: c.backgroundAt(i),
		Avatar:     c.avatar(),
		Captions:   c.captionsAt(i),
	}

	visual := broll.Visual{FontTitle: c.palette.FontTitle, AccentColor: c.palette.AccentColor}
	for _, a := range broll.Schedule(c.reel.Overlays, i, c.fps) {
		if st, ok := broll.Render(a, c.fps, visual); ok {
			f.BRoll = append(f.BRoll, st)
		}
	}

	if c.reel.AudioURL != "" {
		f.Audio = &scene.AudioAttachment{URL: c.reel.AudioURL}
	}
	return f
}

// opacity fades the whole reel in and out over half a second
func (c *Composer) opacity(i int) float64 {
	return timeline.Envelope(float64(i), float64(c.totalFrames), float64(c.fps)/2)
}

func (c *Composer) captionsAt(i int) *scene.CaptionLayer {
	group, idx, ok := c.Active(i)
	if !ok || group.Empty() {
		return nil
	}
	return c.style.Render(styles.Input{
		Words:       group.Words,
		ActiveIndex: idx,
		GroupStart:  group.Start,
		Frame:       i,
		FPS:         c.fps,
		AccentColor: c.palette.AccentColor,
		FontFamily:  c.palette.FontBody,
		Placement:   c.placement,
		Width:       c.width,
	})
}
