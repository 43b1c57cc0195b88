package config

// Preset is a named visual style
type Preset struct {
	PrimaryColor   string `yaml:"primary_color"`
	SecondaryColor string `yaml:"secondary_color"`
	AccentColor    string `yaml:"accent_color"`
	FontTitle      string `yaml:"font_title"`
	FontBody       string `yaml:"font_body"`
}

const DefaultPresetName = "modern_minimal"

var builtinPresets = map[string]Preset{
	"modern_minimal": {
		PrimaryColor: "#000000", SecondaryColor: "#FFFFFF", AccentColor: "#3B82F6",
		FontTitle: "Inter", FontBody: "Inter",
	},
	"bold_colorful": {
		PrimaryColor: "#FF6B6B", SecondaryColor: "#4ECDC4", AccentColor: "#FFE66D",
		FontTitle: "Poppins", FontBody: "Inter",
	},
	"dark_professional": {
		PrimaryColor: "#1A1A2E", SecondaryColor: "#16213E", AccentColor: "#E94560",
		FontTitle: "Montserrat", FontBody: "Inter",
	},
	"bright_casual": {
		PrimaryColor: "#FFEAA7", SecondaryColor: "#FDCB6E", AccentColor: "#6C5CE7",
		FontTitle: "Nunito", FontBody: "Nunito",
	},
	"neon_tech": {
		PrimaryColor: "#0D0D0D", SecondaryColor: "#1A1A1A", AccentColor: "#00FF88",
		FontTitle: "Space Grotesk", FontBody: "JetBrains Mono",
	},
	"clean_corporate": {
		PrimaryColor: "#FFFFFF", SecondaryColor: "#F5F5F5", AccentColor: "#2563EB",
		FontTitle: "Plus Jakarta Sans", FontBody: "Inter",
	},
}

// ResolvePreset looks name up in the configured presets, then the built-in
// ones. Unknown names fall back to the default preset; ok reports whether
// name itself was found.
func (v VisualsConfig) ResolvePreset(name string) (Preset, bool) {
	if p, found := v.lookup(name); found {
		return p, true
	}
	if p, found := v.lookup(v.DefaultPreset); found {
		return p, false
	}
	return builtinPresets[DefaultPresetName], false
}

func (v VisualsConfig) lookup(name string) (Preset, bool) {
	if name == "" {
		return Preset{}, false
	}
	if p, ok := v.Presets[name]; ok {
		return p, true
	}
	p, ok := builtinPresets[name]
	return p, ok
}
