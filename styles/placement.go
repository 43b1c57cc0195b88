package styles

import "reel-composer/scene"

// PlacementFor keeps the caption line clear of the presenter overlay.
// Top-corner presenters push captions to the bottom; everything else centers them.
func PlacementFor(avatarPosition string, height float64) scene.Placement {
	switch avatarPosition {
	case "corner_tr", "corner_tl":
		return anchored("bottom", height)
	default:
		return anchored("center", height)
	}
}

// ResolvePlacement honours an explicit top|center|bottom setting and
// falls back to PlacementFor for "auto" or anything else.
func ResolvePlacement(setting, avatarPosition string, height float64) scene.Placement {
	switch setting {
	case "top", "center", "bottom":
		return anchored(setting, height)
	default:
		return PlacementFor(avatarPosition, height)
	}
}

func anchored(anchor string, height float64) scene.Placement {
	switch anchor {
	case "top":
		return scene.Placement{Anchor: "top", Offset: height * 0.15}
	case "bottom":
		return scene.Placement{Anchor: "bottom", Offset: height * 0.2}
	default:
		return scene.Placement{Anchor: "center"}
	}
}
