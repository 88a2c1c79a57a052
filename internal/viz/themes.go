package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Body      lipgloss.Color
	Explosion lipgloss.Color
	Centroid  lipgloss.Color
	Title     lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:      "classic",
		Body:      lipgloss.Color("#3b82f6"), // Blue dots
		Explosion: lipgloss.Color("#ef4444"), // Red blasts
		Centroid:  lipgloss.Color("#22c55e"), // Green center of mass
		Title:     lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ff00ff"),
		Muted:     lipgloss.Color("#666688"),
	}

	ThemeEmber = Theme{
		Name:      "ember",
		Body:      lipgloss.Color("#feca57"),
		Explosion: lipgloss.Color("#ff6b6b"),
		Centroid:  lipgloss.Color("#ff9ff3"),
		Title:     lipgloss.Color("#ff6b6b"),
		Accent:    lipgloss.Color("#feca57"),
		Muted:     lipgloss.Color("#8b6b8c"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Body:      lipgloss.Color("#ffffff"),
		Explosion: lipgloss.Color("#888888"),
		Centroid:  lipgloss.Color("#cccccc"),
		Title:     lipgloss.Color("#ffffff"),
		Accent:    lipgloss.Color("#cccccc"),
		Muted:     lipgloss.Color("#888888"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Body:      lipgloss.Color("#00ff00"), // Green phosphor
		Explosion: lipgloss.Color("#ffff00"),
		Centroid:  lipgloss.Color("#88ff88"),
		Title:     lipgloss.Color("#00ff00"),
		Accent:    lipgloss.Color("#88ff88"),
		Muted:     lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Body:      lipgloss.Color("#00a8cc"),
		Explosion: lipgloss.Color("#ff4444"),
		Centroid:  lipgloss.Color("#ffd700"),
		Title:     lipgloss.Color("#0077be"),
		Accent:    lipgloss.Color("#ffd700"),
		Muted:     lipgloss.Color("#4488aa"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeEmber,
		ThemeMono,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) layerStyle(l Layer) lipgloss.Style {
	switch l {
	case LayerExplosion:
		return lipgloss.NewStyle().Foreground(t.Explosion)
	case LayerCentroid:
		return lipgloss.NewStyle().Foreground(t.Centroid).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(t.Body)
	}
}
