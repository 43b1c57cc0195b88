package styles

import (
	"reflect"
	"testing"

	"reel-composer/types"
)

func group() []types.WordTimestamp {
	return []types.WordTimestamp{
		{Word: "make", Start: 3.0, End: 3.2},
		{Word: "it", Start: 3.2, End: 3.3},
		{Word: "pop", Start: 3.3, End: 3.6},
	}
}

func input(frame int) Input {
	return Input{
		Words:       group(),
		ActiveIndex: 4, // "it"
		GroupStart:  3,
		Frame:       frame,
		FPS:         30,
		AccentColor: "#00ff88",
		FontFamily:  "Inter",
		Width:       1080,
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"tiktok_bounce", Bounce},
		{"bounce", Bounce},
		{"highlight_word", Highlight},
		{"HIGHLIGHT", Highlight},
		{"subtitle_classic", Classic},
		{"classic", Classic},
		{"none", None},
		{"karaoke", Default},
		{"foo", Default},
		{"", Default},
	}
	for _, tc := range tests {
		if got := Parse(tc.in); got != tc.want {
			t.Errorf("Parse(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestForDispatchesByKind(t *testing.T) {
	for _, k := range []Kind{Bounce, Highlight, Classic, None} {
		if got := For(k).Kind(); got != k {
			t.Errorf("For(%v).Kind() = %v", k, got)
		}
	}
	if got := Named("foo").Kind(); got != Default {
		t.Errorf("Named(foo) = %v; want default", got)
	}
}

func TestEmptyGroupRendersNothing(t *testing.T) {
	in := input(100)
	in.Words = nil
	for _, k := range []Kind{Bounce, Highlight, Classic, None} {
		if layer := For(k).Render(in); layer != nil {
			t.Errorf("%v rendered %+v for empty group", k, layer)
		}
	}
}

func TestNoneRendersNothing(t *testing.T) {
	if layer := For(None).Render(input(100)); layer != nil {
		t.Fatalf("none rendered %+v", layer)
	}
}

func TestBounce(t *testing.T) {
	// "it" starts at 3.2s = frame 96
	layer := For(Bounce).Render(input(96))
	if layer == nil || len(layer.Words) != 3 {
		t.Fatalf("bounce layer = %+v", layer)
	}

	active := layer.Words[1]
	if !active.Active || active.Index != 4 {
		t.Fatalf("active word state = %+v", active)
	}
	if active.Word != "IT" || !active.Uppercase {
		t.Errorf("bounce should uppercase words, got %q", active.Word)
	}
	if active.Color != "#00ff88" {
		t.Errorf("active color = %q", active.Color)
	}
	// at its first frame the spring is at rest position 0: depressed and pushed down
	if active.Scale != 0.8 || active.OffsetY != 20 || active.Progress != 0 {
		t.Errorf("active at release: scale %v offset %v progress %v", active.Scale, active.OffsetY, active.Progress)
	}

	for _, i := range []int{0, 2} {
		w := layer.Words[i]
		if w.Active || w.Color != white || w.Scale != 1 || w.OffsetY != 0 {
			t.Errorf("inactive word %d state = %+v", i, w)
		}
	}

	settled := For(Bounce).Render(input(96 + 90)).Words[1]
	if settled.Scale < 0.999 || settled.Scale > 1.001 {
		t.Errorf("settled scale = %v", settled.Scale)
	}
}

func TestBounceOvershootsWhileSettling(t *testing.T) {
	sawOvershoot := false
	for f := 96; f < 120; f++ {
		w := For(Bounce).Render(input(f)).Words[1]
		if w.Scale > 1 {
			sawOvershoot = true
		}
		if w.Progress < 0 || w.Progress > 1 {
			t.Fatalf("progress out of range at %d: %v", f, w.Progress)
		}
	}
	if !sawOvershoot {
		t.Errorf("expected the damped bounce to overshoot rest scale")
	}
}

func TestHighlight(t *testing.T) {
	layer := For(Highlight).Render(input(100))
	if layer.Box == nil || layer.Box.CornerRadius != 16 || layer.Box.MaxWidth != 1000 {
		t.Fatalf("highlight box = %+v", layer.Box)
	}
	for i, w := range layer.Words {
		wantActive := i == 1
		if w.Active != wantActive {
			t.Errorf("word %d active = %v", i, w.Active)
		}
		if wantActive && w.Background != "#00ff88" {
			t.Errorf("active chip = %q", w.Background)
		}
		if !wantActive && w.Background != "" {
			t.Errorf("inactive word %d has chip %q", i, w.Background)
		}
		if w.Color != white || w.Scale != 1 {
			t.Errorf("highlight word %d should be static white, got %+v", i, w)
		}
	}

	// no motion: two different frames give the same layer
	if !reflect.DeepEqual(layer, For(Highlight).Render(input(110))) {
		t.Errorf("highlight changed between frames with the same active word")
	}
}

func TestClassic(t *testing.T) {
	layer := For(Classic).Render(input(100))
	if layer.Text != "make it pop" {
		t.Errorf("classic text = %q", layer.Text)
	}
	if len(layer.Words) != 0 {
		t.Errorf("classic should not emit per-word state")
	}

	other := input(100)
	other.ActiveIndex = 3
	other.AccentColor = "#ff0000"
	if !reflect.DeepEqual(layer, For(Classic).Render(other)) {
		t.Errorf("classic output depends on activity or accent")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	for _, k := range []Kind{Bounce, Highlight, Classic} {
		for f := 90; f < 130; f++ {
			a := For(k).Render(input(f))
			b := For(k).Render(input(f))
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("%v frame %d not reproducible", k, f)
			}
		}
	}
}

func TestPlacement(t *testing.T) {
	tests := []struct {
		setting, avatar string
		wantAnchor      string
		wantOffset      float64
	}{
		{"auto", "bottom_third", "center", 0},
		{"auto", "corner_tr", "bottom", 384},
		{"auto", "corner_tl", "bottom", 384},
		{"auto", "corner_br", "center", 0},
		{"", "full", "center", 0},
		{"top", "corner_tr", "top", 288},
		{"bottom", "bottom_third", "bottom", 384},
	}
	for _, tc := range tests {
		got := ResolvePlacement(tc.setting, tc.avatar, 1920)
		if got.Anchor != tc.wantAnchor || got.Offset != tc.wantOffset {
			t.Errorf("ResolvePlacement(%q, %q) = %+v", tc.setting, tc.avatar, got)
		}
	}
}
