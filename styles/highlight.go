package styles

import "reel-composer/scene"

// highlight draws the group inside a pill and puts a chip behind the active word
type highlight struct{}

func (highlight) Kind() Kind { return Highlight }

func (highlight) Render(in Input) *scene.CaptionLayer {
	if len(in.Words) == 0 {
		return nil
	}

	layer := &scene.CaptionLayer{
		Style:      Highlight.String(),
		Placement:  in.Placement,
		FontFamily: in.FontFamily,
		Gap:        12,
		Box: &scene.Box{
			Color:        boxColor,
			CornerRadius: 16,
			PaddingX:     32,
			PaddingY:     16,
			MaxWidth:     maxBoxWidth(in.Width),
		},
		Words: make([]scene.WordState, 0, len(in.Words)),
	}

	for i, w := range in.Words {
		abs := in.GroupStart + i
		ws := scene.WordState{
			Word:       w.Word,
			Index:      abs,
			Progress:   1,
			Scale:      1,
			Color:      white,
			FontSize:   48,
			FontWeight: 700,
		}
		if abs == in.ActiveIndex {
			ws.Active = true
			ws.Background = in.AccentColor
			ws.PaddingX = 12
		}
		layer.Words = append(layer.Words, ws)
	}
	return layer
}
