// Package theme defines the frozen colour palettes selectable via --theme.
package theme

import "github.com/keytrainer/keytrainer/internal/model"

var (
	cyberpunk = model.Theme{
		Name: "cyberpunk", Bg: "#0a0e27", BgAlt: "#151b3d",
		Primary: "#00ff9f", Secondary: "#00d4ff", Error: "#ff4466", Dim: "#3a3a5c",
		Text: "#e0e0f0", TextMuted: "#555577", Progress: "#00ff9f", GraphLine: "#00d4ff",
	}
	nord = model.Theme{
		Name: "nord", Bg: "#2e3440", BgAlt: "#3b4252",
		Primary: "#88c0d0", Secondary: "#81a1c1", Error: "#bf616a", Dim: "#4c566a",
		Text: "#eceff4", TextMuted: "#4c566a", Progress: "#88c0d0", GraphLine: "#81a1c1",
	}
	dracula = model.Theme{
		Name: "dracula", Bg: "#282a36", BgAlt: "#383a47",
		Primary: "#bd93f9", Secondary: "#ff79c6", Error: "#ff5555", Dim: "#44475a",
		Text: "#f8f8f2", TextMuted: "#6272a4", Progress: "#bd93f9", GraphLine: "#ff79c6",
	}
	monokai = model.Theme{
		Name: "monokai", Bg: "#272822", BgAlt: "#3e3d32",
		Primary: "#a6e22e", Secondary: "#66d9ef", Error: "#f92672", Dim: "#49483e",
		Text: "#f8f8f2", TextMuted: "#75715e", Progress: "#a6e22e", GraphLine: "#66d9ef",
	}
	minimal = model.Theme{
		Name: "minimal", Bg: "#000000", BgAlt: "#111111",
		Primary: "#ffffff", Secondary: "#aaaaaa", Error: "#ff4444", Dim: "#333333",
		Text: "#ffffff", TextMuted: "#444444", Progress: "#ffffff", GraphLine: "#888888",
	}
)

// All maps theme name to its palette.
var All = map[string]model.Theme{
	cyberpunk.Name: cyberpunk,
	nord.Name:      nord,
	dracula.Name:   dracula,
	monokai.Name:   monokai,
	minimal.Name:   minimal,
}

// Default is used when an unknown theme name is requested.
var Default = cyberpunk

// Get returns the named theme, or Default if name is unrecognised.
func Get(name string) model.Theme {
	if t, ok := All[name]; ok {
		return t
	}
	return Default
}
