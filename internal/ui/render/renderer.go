package render

import (
	"fmt"
	"time"

	fsutil "github.com/dmee3/sfm/internal/fs"
	statepkg "github.com/dmee3/sfm/internal/state"
	textutil "github.com/dmee3/sfm/internal/textutil"
	"github.com/gdamore/tcell/v2"
)

const (
	selectedMarker = "> "
	plainMarker    = "  "
	symlinkArrow   = " -> "
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	now    func() time.Time
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
		now:    time.Now,
	}
}

// Render redraws the whole screen: path header, the visible slice of the
// listing and the status line for the selected entry.
func (r *Renderer) Render(state *statepkg.NavigationState) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawFileList(state, w, h)
	if h > 1 {
		r.drawStatusLine(state, w, h)
	}

	r.screen.Show()
}

// drawHeader renders the top bar with the current directory
func (r *Renderer) drawHeader(state *statepkg.NavigationState, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)

	currentPath := state.CurrentPath
	if currentPath == "" {
		currentPath = "/"
	}
	text := " " + textutil.TruncateLeft(textutil.SanitizeName(currentPath), w-1)

	endX := r.drawTextLine(0, 0, w, text, headerStyle)
	r.fillRow(endX, w, 0, headerStyle)
}

// drawFileList renders the window of entries chosen by the viewport.
func (r *Renderer) drawFileList(state *statepkg.NavigationState, w, h int) {
	const listStartY = 1
	bottomLimit := h - 1

	win := state.Window()
	displayY := listStartY
	for idx := win.Start; idx < win.End && displayY < bottomLimit; idx++ {
		entry := state.Entries[idx]
		isSelected := idx == state.Selection

		rowStyle := r.entryStyle(entry)
		marker := plainMarker
		if isSelected {
			rowStyle = rowStyle.Background(r.theme.SelectionBg).Bold(true)
			marker = selectedMarker
		}

		text := formatEntryRow(marker, entry, w)
		endX := r.drawTextLine(0, displayY, w, text, rowStyle)
		if isSelected {
			r.fillRow(endX, w, displayY, rowStyle)
		}
		displayY++
	}
}

func (r *Renderer) entryStyle(entry fsutil.Entry) tcell.Style {
	base := tcell.StyleDefault
	switch {
	case entry.IsSymlink():
		return base.Foreground(r.theme.SymlinkFg)
	case entry.IsDir():
		return base.Foreground(r.theme.DirectoryFg)
	default:
		return base.Foreground(r.theme.FileFg)
	}
}

// formatEntryRow builds the row text: marker, kind icon, name and, for
// symlinks, the link target. The result fits in width columns.
func formatEntryRow(marker string, entry fsutil.Entry, width int) string {
	// Icon: @ for symlinks, / for directories, space for files
	icon := " "
	if entry.IsSymlink() {
		icon = "@"
	} else if entry.IsDir() {
		icon = "/"
	}

	prefix := fmt.Sprintf("%s%s ", marker, icon)
	label := textutil.SanitizeName(entry.Name)
	if entry.IsSymlink() && entry.LinkTarget != "" {
		label += symlinkArrow + textutil.SanitizeName(entry.LinkTarget)
	}

	return prefix + textutil.Truncate(label, width-textutil.DisplayWidth(prefix))
}

// drawStatusLine renders the footer with the selected entry's metadata
func (r *Renderer) drawStatusLine(state *statepkg.NavigationState, w, h int) {
	footerStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	y := h - 1

	left, right := statusText(state.SelectedEntry(), state.Selection, len(state.Entries), r.now())

	rightWidth := textutil.DisplayWidth(right)
	if rightWidth >= w {
		right, rightWidth = "", 0
	}
	left = textutil.Truncate(textutil.SanitizeName(left), w-rightWidth)

	endX := r.drawTextLine(0, y, w, left, footerStyle)
	r.fillRow(endX, w-rightWidth, y, footerStyle)
	r.drawTextLine(w-rightWidth, y, rightWidth, right, footerStyle)
}
