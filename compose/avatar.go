package compose

import "reel-composer/scene"

const (
	avatarMargin    = 40.0
	avatarTopInset  = 80.0 // clears the status bar
	avatarRadius    = 20.0
	cornerFraction  = 0.35
	bottomThirdFrac = 0.4
)

func (c *Composer) avatar() *scene.AvatarState {
	a := c.reel.Avatar
	if !a.Presenter() {
		return nil
	}

	st := &scene.AvatarState{
		VideoURL:     a.VideoURL,
		Position:     a.Position,
		CornerRadius: avatarRadius,
		Shadow:       true,
	}

	w, h := c.width, c.height
	side := w * cornerFraction
	switch a.Position {
	case "full":
		st.Rect = scene.Rect{Width: w, Height: h}
		st.CornerRadius = 0
		st.Shadow = false
	case "corner_bl":
		st.Rect = scene.Rect{X: avatarMargin, Y: h - avatarMargin - side, Width: side, Height: side}
	case "corner_tr":
		st.Rect = scene.Rect{X: w - avatarMargin - side, Y: avatarTopInset, Width: side, Height: side}
	case "corner_tl":
		st.Rect = scene.Rect{X: avatarMargin, Y: avatarTopInset, Width: side, Height: side}
	case "bottom_third":
		bh := h * bottomThirdFrac
		st.Rect = scene.Rect{Y: h - bh, Width: w, Height: bh}
		st.CornerRadius = 0
		st.Shadow = false
		st.MaskGradient = true
	default:
		// corner_br and anything unrecognized
		st.Rect = scene.Rect{X: w - avatarMargin - side, Y: h - avatarMargin - side, Width: side, Height: side}
	}
	return st
}
