package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Score styles
	GradeA lipgloss.Style
	GradeB lipgloss.Style
	GradeC lipgloss.Style
	GradeD lipgloss.Style
	GradeF lipgloss.Style

	// Delta styles
	Gain lipgloss.Style
	Loss lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Label     lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconSuccess string
	IconWarning string
	IconBullet  string
}

// NewStyles creates a new Styles instance.
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.GradeA = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // Green
		s.GradeB = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // Cyan
		s.GradeC = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")) // Yellow
		s.GradeD = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))  // Olive
		s.GradeF = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // Red

		s.Gain = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		s.Loss = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))             // Blue
		s.Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))                // Gray
		s.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))            // Cyan
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))           // Green
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))           // Yellow

		s.IconSuccess = "✓" // check mark
		s.IconWarning = "⚠" // warning sign
		s.IconBullet = "•"  // bullet
	} else {
		s.GradeA = lipgloss.NewStyle()
		s.GradeB = lipgloss.NewStyle()
		s.GradeC = lipgloss.NewStyle()
		s.GradeD = lipgloss.NewStyle()
		s.GradeF = lipgloss.NewStyle()

		s.Gain = lipgloss.NewStyle()
		s.Loss = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle()
		s.Dim = lipgloss.NewStyle()
		s.Accent = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()

		s.IconSuccess = "OK:"
		s.IconWarning = "WARN:"
		s.IconBullet = "-"
	}

	return s
}

// Grade returns the style for a letter grade.
func (s *Styles) Grade(grade string) lipgloss.Style {
	switch grade {
	case "A":
		return s.GradeA
	case "B":
		return s.GradeB
	case "C":
		return s.GradeC
	case "D":
		return s.GradeD
	default:
		return s.GradeF
	}
}
