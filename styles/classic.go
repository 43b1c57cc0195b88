package styles

import (
	"strings"

	"reel-composer/scene"
)

// classic is a static subtitle line. It ignores word activity and the accent colour.
type classic struct{}

func (classic) Kind() Kind { return Classic }

func (classic) Render(in Input) *scene.CaptionLayer {
	if len(in.Words) == 0 {
		return nil
	}

	parts := make([]string, len(in.Words))
	for i, w := range in.Words {
		parts[i] = w.Word
	}

	return &scene.CaptionLayer{
		Style:      Classic.String(),
		Placement:  in.Placement,
		FontFamily: in.FontFamily,
		Box: &scene.Box{
			Color:        boxColor,
			CornerRadius: 8,
			PaddingX:     24,
			PaddingY:     12,
			MaxWidth:     maxBoxWidth(in.Width),
		},
		Text: strings.Join(parts, " "),
	}
}
