package render

import (
	"fmt"
	"strings"
	"time"

	fsutil "github.com/dmee3/sfm/internal/fs"
)

const modifiedDateLayout = "Mon, Jan _2 2006, 3:04 pm"

// formatModified describes how long ago t was, switching to an absolute
// local date after an hour.
func formatModified(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}
	switch {
	case elapsed < time.Minute:
		return fmt.Sprintf("%d seconds ago", int(elapsed.Seconds()))
	case elapsed < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(elapsed.Minutes()))
	default:
		return t.Local().Format(modifiedDateLayout)
	}
}

func formatCompactSize(n int64) string {
	switch {
	case n >= 1<<30:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/(1<<30))) + "G"
	case n >= 1<<20:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/(1<<20))) + "M"
	case n >= 1<<10:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/(1<<10))) + "k"
	default:
		return fmt.Sprintf("%dB", n)
	}
}

func trimTrailingZero(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}

// statusText builds the footer halves for the selected entry.
func statusText(entry *fsutil.Entry, selection, total int, now time.Time) (string, string) {
	if entry == nil {
		return " Empty directory", ""
	}

	left := " Modified " + formatModified(entry.Modified, now)
	if entry.Modified.IsZero() {
		left = " " + entry.Name
	}

	right := fmt.Sprintf("%d/%d ", selection+1, total)
	if entry.Kind == fsutil.KindFile {
		right = formatCompactSize(entry.Size) + "  " + right
	}
	return left, right
}
