package textutil

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNameLeavesSafeInput(t *testing.T) {
	for _, name := range []string{"safe-file.txt", "zażółć gęślą", "日本語.md"} {
		assert.Equal(t, name, SanitizeName(name))
	}
}

func TestSanitizeNameReplacesControlSequences(t *testing.T) {
	got := SanitizeName("bad\x1b[31m\npath")
	assert.Equal(t, "bad?[31m path", got)
	for _, r := range got {
		assert.False(t, unicode.IsControl(r), "control rune %U left in %q", r, got)
	}
}

func TestSanitizeNameExpandsTabs(t *testing.T) {
	assert.Equal(t, "a   b", SanitizeName("a\tb"))
	assert.Equal(t, "abcd    e", SanitizeName("abcd\te"))
}

func TestSanitizeNameNeutralisesFormattingRunes(t *testing.T) {
	input := "a" + string(rune(0x202E)) + "b" + string(rune(0x200B)) + "c"
	assert.Equal(t, "a�b�c", SanitizeName(input))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 3, DisplayWidth("abc"))
	assert.Equal(t, 4, DisplayWidth("你好"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{name: "fits without truncation", text: "file.txt", width: 20, expect: "file.txt"},
		{name: "adds ellipsis when needed", text: "verylongname", width: 6, expect: "veryl…"},
		{name: "only ellipsis when width too small", text: "example", width: 1, expect: "…"},
		{name: "multi-byte characters respected", text: "你好世界", width: 5, expect: "你好…"},
		{name: "returns empty when width is zero", text: "anything", width: 0, expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Truncate(tt.text, tt.width))
		})
	}
}

func TestTruncateLeftKeepsPathTail(t *testing.T) {
	assert.Equal(t, "/home/user", TruncateLeft("/home/user", 10))
	assert.Equal(t, "…/projects", TruncateLeft("/home/user/projects", 10))
	assert.Equal(t, "…", TruncateLeft("/home/user/projects", 1))
	assert.Equal(t, "", TruncateLeft("/home", 0))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
}
