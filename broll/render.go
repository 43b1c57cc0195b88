package broll

import (
	"math"
	"path"
	"strings"

	"reel-composer/scene"
	"reel-composer/timeline"
	"reel-composer/types"
)

// Visual carries the reel-level styling b-roll payloads borrow
type Visual struct {
	FontTitle   string
	AccentColor string
}

// typing speed of code reveals: the whole block is typed in this many seconds
const codeTypingSec = 2.0

// Render turns an active segment into its visual state.
// ok is false for payloads that draw nothing (missing media, unsupported kinds).
func Render(a Active, fps int, v Visual) (scene.BRollState, bool) {
	st := scene.BRollState{
		ID:         a.Segment.ID,
		Kind:       string(a.Segment.Content.Type),
		LocalFrame: a.LocalFrame,
		Opacity:    a.Opacity,
	}

	c := a.Segment.Content
	switch c.Type {
	case types.ContentTextAnimation:
		st.Text = textReveal(c, a, fps, v)
	case types.ContentCodeAnimation:
		st.Code = codeReveal(c, a.LocalFrame, fps)
	case types.ContentStockVideo:
		if c.URL == "" {
			return st, false
		}
		st.Media = &scene.MediaLayer{Kind: "video", URL: c.URL, Fit: "cover"}
	case types.ContentUserUpload:
		if c.AssetURL == "" {
			return st, false
		}
		st.Media = &scene.MediaLayer{Kind: uploadKind(c.AssetURL), URL: c.AssetURL, Fit: "cover"}
	default:
		return st, false
	}
	return st, true
}

func textReveal(c types.OverlayContent, a Active, fps int, v Visual) *scene.TextReveal {
	p := timeline.Spring(a.LocalFrame, fps, timeline.TextSpring)
	tr := &scene.TextReveal{
		Style:      c.TextStyle,
		Text:       c.Text,
		Scale:      1,
		Opacity:    a.Opacity,
		FontFamily: v.FontTitle,
		Glow:       v.AccentColor,
	}

	switch c.TextStyle {
	case "pop":
		tr.Scale = timeline.Interpolate(p, []float64{0, 1}, []float64{0.5, 1}, timeline.Extend, timeline.Extend)
	case "slide":
		tr.OffsetY = timeline.Interpolate(p, []float64{0, 1}, []float64{100, 0}, timeline.Extend, timeline.Extend)
	case "fade":
		tr.Opacity = a.Opacity * timeline.Clamp01(p)
	case "typewriter":
		runes := []rune(c.Text)
		// a settled spring can sit a hair under 1
		visible := int(math.Floor(p*float64(len(runes)) + 1e-9))
		if visible > len(runes) {
			visible = len(runes)
		}
		if visible < 0 {
			visible = 0
		}
		tr.Text = string(runes[:visible])
		tr.Cursor = a.LocalFrame%30 < 15
	}
	return tr
}

func codeReveal(c types.OverlayContent, local, fps int) *scene.CodeReveal {
	cr := &scene.CodeReveal{
		Language:   c.Language,
		Theme:      "dark",
		Background: "#1E1E1E",
		Foreground: "#D4D4D4",
		CaretLine:  -1,
	}
	if c.Theme == "light" {
		cr.Theme = "light"
		cr.Background = "#FFFFFF"
		cr.Foreground = "#1E1E1E"
	}

	total := len([]rune(c.Code))
	perFrame := float64(total) / (float64(fps) * codeTypingSec)
	revealed := int(math.Floor(float64(local) * perFrame))
	if revealed > total {
		revealed = total
	}
	cr.Revealed = revealed

	lines := strings.Split(c.Code, "\n")
	cr.Lines = make([]string, len(lines))
	charCount := 0
	for i, line := range lines {
		runes := []rune(line)
		lineStart := charCount
		charCount += len(runes) + 1

		n := revealed - lineStart
		if n < 0 {
			n = 0
		}
		if n > len(runes) {
			n = len(runes)
		}
		cr.Lines[i] = string(runes[:n])

		if cr.CaretLine < 0 && revealed >= lineStart && revealed < lineStart+len(runes) {
			cr.CaretLine = i
		}
	}
	return cr
}

func uploadKind(url string) string {
	ext := strings.ToLower(path.Ext(strings.SplitN(url, "?", 2)[0]))
	switch ext {
	case ".mp4", ".webm", ".mov":
		return "video"
	default:
		return "image"
	}
}
