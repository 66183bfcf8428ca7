package tui

import "github.com/charmbracelet/lipgloss"

// palette holds the colors of one theme.
type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
	surface lipgloss.Color
}

var (
	lightPalette = palette{
		primary: lipgloss.Color("27"),  // Blue
		accent:  lipgloss.Color("129"), // Purple
		text:    lipgloss.Color("235"),
		muted:   lipgloss.Color("244"),
		success: lipgloss.Color("28"),
		warning: lipgloss.Color("172"),
		danger:  lipgloss.Color("160"),
		surface: lipgloss.Color("255"),
	}
	darkPalette = palette{
		primary: lipgloss.Color("75"),  // Light blue
		accent:  lipgloss.Color("177"), // Pink
		text:    lipgloss.Color("252"),
		muted:   lipgloss.Color("245"),
		success: lipgloss.Color("42"),
		warning: lipgloss.Color("226"),
		danger:  lipgloss.Color("196"),
		surface: lipgloss.Color("236"),
	}
)

// styles are the rendering styles for one theme.
type styles struct {
	brand     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	title     lipgloss.Style
	subtitle  lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	item      lipgloss.Style
	selected  lipgloss.Style
	badge     lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	bar       lipgloss.Style
	modal     lipgloss.Style
	card      lipgloss.Style
	errBanner lipgloss.Style
	toast     lipgloss.Style
	errToast  lipgloss.Style
	footer    lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return styles{
		brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			PaddingRight(2),
		tab: lipgloss.NewStyle().
			Foreground(p.muted).
			PaddingLeft(1).
			PaddingRight(1),
		activeTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			Underline(true).
			PaddingLeft(1).
			PaddingRight(1),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			MarginBottom(1),
		subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		text:  lipgloss.NewStyle().Foreground(p.text),
		muted: lipgloss.NewStyle().Foreground(p.muted),
		item: lipgloss.NewStyle().
			PaddingLeft(2),
		selected: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(p.accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.primary),
		badge: lipgloss.NewStyle().
			Foreground(p.surface).
			Background(p.primary).
			PaddingLeft(1).
			PaddingRight(1),
		success: lipgloss.NewStyle().Foreground(p.success).Bold(true),
		warning: lipgloss.NewStyle().Foreground(p.warning).Bold(true),
		bar:     lipgloss.NewStyle().Foreground(p.success),
		modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),
		card: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted).
			Padding(0, 1),
		errBanner: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.danger).
			Padding(0, 1),
		toast: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.success).
			Padding(0, 1),
		errToast: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.danger).
			Padding(0, 1),
		footer: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.muted),
	}
}
