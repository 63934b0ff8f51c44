package style

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Cyan    = lipgloss.Color("#00E5FF") // Primary highlight
	Magenta = lipgloss.Color("#FF1B6B") // Accent
	Yellow  = lipgloss.Color("#FFB500") // Warnings
	Green   = lipgloss.Color("#2AFFAA") // Success
	Red     = lipgloss.Color("#FF5555") // Errors
	Blue    = lipgloss.Color("#3B82F6") // Info / addresses

	Base01 = lipgloss.Color("#6C7280") // Muted text
	Base2  = lipgloss.Color("#ECEFF4") // Primary text
)

// Palette provides a centralized color management
type Palette struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color

	Text      lipgloss.Color
	TextMuted lipgloss.Color

	// Lifecycle colors
	Unknown    lipgloss.Color
	Graduating lipgloss.Color
	Graduated  lipgloss.Color
}

// DefaultPalette returns the default color palette
func DefaultPalette() Palette {
	return Palette{
		Primary: Cyan,
		Success: Green,
		Error:   Red,
		Warning: Yellow,
		Info:    Blue,

		Text:      Base2,
		TextMuted: Base01,

		Unknown:    Base01,
		Graduating: Yellow,
		Graduated:  Magenta,
	}
}
