// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	TableHeaderStyle   lipgloss.Style
	TableCellStyle     lipgloss.Style
	TableBorderStyle   lipgloss.Style

	// TUI shared styles.
	TitleStyle     lipgloss.Style
	TabActiveStyle lipgloss.Style
	TabStyle       lipgloss.Style
	HelpStyle      lipgloss.Style
	SpinnerStyle   lipgloss.Style
	ErrorTextStyle lipgloss.Style
	MutedTextStyle lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style

	// Dialog sections (help, info).
	SectionTitleStyle lipgloss.Style
	KeyStyle          lipgloss.Style
	TextSuccessStyle  lipgloss.Style
	TextWarningStyle  lipgloss.Style

	// Grid.
	GridHeaderStyle       lipgloss.Style
	GridHeaderActiveStyle lipgloss.Style
	GridRowStyle          lipgloss.Style
	GridRowSelectedStyle  lipgloss.Style
	GridFilterStyle       lipgloss.Style
	GridFilterActiveStyle lipgloss.Style
	GridEmptyStyle        lipgloss.Style
	GridPagerStyle        lipgloss.Style

	// Timeline.
	DayColumnStyle        lipgloss.Style
	DayColumnFocusedStyle lipgloss.Style
	DayHeaderStyle        lipgloss.Style
	TimelineItemStyle     lipgloss.Style
	TimelineFocusedStyle  lipgloss.Style
	TimelineArrowStyle    lipgloss.Style
	TimelineArrowOffStyle lipgloss.Style

	// Status badges.
	StatusCompletedStyle  lipgloss.Style
	StatusInProgressStyle lipgloss.Style
	StatusNotStartedStyle lipgloss.Style

	// Form.
	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style
	SelectItemStyle       lipgloss.Style
	SelectItemActiveStyle lipgloss.Style

	// Toasts.
	ToastInfoStyle    lipgloss.Style
	ToastSuccessStyle lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TableHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	TableCellStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Padding(0, 1)
	TableBorderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	TabStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)
	ErrorTextStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
	MutedTextStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	ModalButtonStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 2)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 2)

	SectionTitleStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	KeyStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	GridHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	GridHeaderActiveStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorSecondary).
		Bold(true)
	GridRowStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	GridRowSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface).
		Bold(true)
	GridFilterStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	GridFilterActiveStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
	GridEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Padding(1, 2)
	GridPagerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	DayColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	DayColumnFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)
	DayHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
	TimelineItemStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	TimelineFocusedStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true)
	TimelineArrowStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TimelineArrowOffStyle = lipgloss.NewStyle().
		Foreground(ColorSurface)

	StatusCompletedStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	StatusInProgressStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	StatusNotStartedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SelectItemStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	SelectItemActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(40)
	ToastInfoStyle = toast.BorderForeground(ColorPrimary).Foreground(ColorForeground)
	ToastSuccessStyle = toast.BorderForeground(ColorSuccess).Foreground(ColorSuccess)
	ToastWarningStyle = toast.BorderForeground(ColorWarning).Foreground(ColorWarning)
	ToastErrorStyle = toast.BorderForeground(ColorError).Foreground(ColorError)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
