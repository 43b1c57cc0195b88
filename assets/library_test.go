package assets

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"reel-composer/types"
)

const tagsJSON = `{
  "_instructions": "tag each clip with lowercase keywords",
  "ocean_waves.mp4": ["ocean", "water", "calm"],
  "city_night.mp4": ["city", "night", "lights"],
  "rainy_city.mp4": ["city", "rain"],
  "broken.mp4": "not a list"
}`

func loadTestLibrary(t *testing.T) *Library {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.json")
	if err := os.WriteFile(path, []byte(tagsJSON), 0644); err != nil {
		t.Fatal(err)
	}
	lib, err := Load("assets/video", path, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return lib
}

func stock(id, query, url string) types.OverlaySegment {
	return types.OverlaySegment{ID: id, StartTime: 1, Duration: 2,
		Content: types.OverlayContent{Type: types.ContentStockVideo, Query: query, URL: url}}
}

func TestLoadSkipsInstructionsAndBadEntries(t *testing.T) {
	if n := loadTestLibrary(t).Len(); n != 3 {
		t.Errorf("Len = %d; want 3", n)
	}
}

func TestLoadMissingFile(t *testing.T) {
	lib, err := Load("assets", filepath.Join(t.TempDir(), "none.json"), zap.NewNop().Sugar())
	if err != nil || lib.Len() != 0 {
		t.Fatalf("Load missing = %v, %v", lib, err)
	}
}

func TestResolve(t *testing.T) {
	lib := loadTestLibrary(t)
	reel := types.Reel{Overlays: []types.OverlaySegment{
		stock("a", "City lights at night", ""),
		stock("b", "a city street", ""),
		stock("c", "desert", ""),
		stock("d", "ocean", "https://cdn/fixed.mp4"),
		{ID: "e", Content: types.OverlayContent{Type: types.ContentTextAnimation, Text: "ocean"}},
	}}

	if n := lib.Resolve(&reel); n != 2 {
		t.Fatalf("resolved %d; want 2", n)
	}
	if got := reel.Overlays[0].Content.URL; got != filepath.Join("assets/video", "city_night.mp4") {
		t.Errorf("a = %q", got)
	}
	// city_night is taken, so the other city clip is used
	if got := reel.Overlays[1].Content.URL; got != filepath.Join("assets/video", "rainy_city.mp4") {
		t.Errorf("b = %q", got)
	}
	if got := reel.Overlays[2].Content.URL; got != "" {
		t.Errorf("unmatched query resolved to %q", got)
	}
	if got := reel.Overlays[3].Content.URL; got != "https://cdn/fixed.mp4" {
		t.Errorf("explicit url replaced: %q", got)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	lib := loadTestLibrary(t)
	for i := 0; i < 10; i++ {
		reel := types.Reel{Overlays: []types.OverlaySegment{stock("a", "city", "")}}
		lib.Resolve(&reel)
		if got := reel.Overlays[0].Content.URL; got != filepath.Join("assets/video", "city_night.mp4") {
			t.Fatalf("run %d picked %q", i, got)
		}
	}
}
