package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		SelectionBg: tcell.ColorGray,
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: tcell.ColorDarkCyan,
		SymlinkFg:   tcell.ColorGreen,
		FileFg:      tcell.ColorDefault,
		FooterBg:    tcell.ColorLightYellow,
		FooterFg:    tcell.ColorBlack,
	}
}
