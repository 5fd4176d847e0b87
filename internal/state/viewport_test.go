package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name       string
		selection  int
		total      int
		height     int
		wantOffset int
		wantEnd    int
	}{
		{name: "whole list fits", selection: 7, total: 10, height: 20, wantOffset: 0, wantEnd: 10},
		{name: "exact fit", selection: 19, total: 20, height: 20, wantOffset: 0, wantEnd: 20},
		{name: "near top", selection: 5, total: 100, height: 20, wantOffset: 0, wantEnd: 20},
		{name: "last row before scrolling", selection: 9, total: 100, height: 20, wantOffset: 0, wantEnd: 20},
		{name: "first centred row", selection: 10, total: 100, height: 20, wantOffset: 0, wantEnd: 20},
		{name: "centred", selection: 50, total: 100, height: 20, wantOffset: 40, wantEnd: 60},
		{name: "last centred row", selection: 90, total: 100, height: 20, wantOffset: 80, wantEnd: 100},
		{name: "pinned to bottom", selection: 95, total: 100, height: 20, wantOffset: 80, wantEnd: 100},
		{name: "last entry", selection: 99, total: 100, height: 20, wantOffset: 80, wantEnd: 100},
		{name: "one past fitting", selection: 0, total: 21, height: 20, wantOffset: 0, wantEnd: 20},
		// Odd heights leave one blank row at the bottom boundary.
		{name: "odd height boundary", selection: 90, total: 100, height: 21, wantOffset: 80, wantEnd: 100},
		{name: "odd height pinned", selection: 91, total: 100, height: 21, wantOffset: 79, wantEnd: 100},
		{name: "height one", selection: 4, total: 10, height: 1, wantOffset: 4, wantEnd: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := ComputeWindow(tt.selection, tt.total, tt.height)
			assert.Equal(t, tt.wantOffset, win.Offset, "offset")
			assert.Equal(t, tt.wantOffset, win.Start, "start")
			assert.Equal(t, tt.wantEnd, win.End, "end")
			assert.Equal(t, tt.height, win.Height, "height")

			row, ok := win.Highlight(tt.selection)
			assert.True(t, ok, "selection should be visible")
			assert.Equal(t, tt.selection-tt.wantOffset, row)
		})
	}
}

func TestComputeWindowEmptyListing(t *testing.T) {
	win := ComputeWindow(NoSelection, 0, 20)
	assert.Equal(t, 0, win.Len())
	_, ok := win.Highlight(NoSelection)
	assert.False(t, ok)
	_, ok = win.Highlight(0)
	assert.False(t, ok)
}

func TestComputeWindowZeroHeight(t *testing.T) {
	win := ComputeWindow(3, 10, 0)
	assert.Equal(t, 0, win.Len())
	_, ok := win.Highlight(3)
	assert.False(t, ok)
}

func TestComputeWindowKeepsSelectionVisible(t *testing.T) {
	for _, height := range []int{1, 2, 3, 7, 20, 21} {
		for _, total := range []int{1, 5, 20, 21, 50} {
			for sel := 0; sel < total; sel++ {
				win := ComputeWindow(sel, total, height)
				label := fmt.Sprintf("sel=%d total=%d height=%d", sel, total, height)
				assert.GreaterOrEqual(t, win.Start, 0, label)
				assert.LessOrEqual(t, win.End, total, label)
				assert.LessOrEqual(t, win.Len(), height, label)
				_, ok := win.Highlight(sel)
				assert.True(t, ok, label)
			}
		}
	}
}

func TestUsableHeight(t *testing.T) {
	assert.Equal(t, 22, UsableHeight(24))
	assert.Equal(t, 1, UsableHeight(3))
	assert.Equal(t, 0, UsableHeight(2))
	assert.Equal(t, 0, UsableHeight(0))
}

func TestVisibleEntriesFollowSelection(t *testing.T) {
	entries := make([]FileEntry, 100)
	for i := range entries {
		entries[i] = file(fmt.Sprintf("f%03d", i), "")
	}
	state := &NavigationState{Entries: entries, Selection: 50, ScreenHeight: 22}

	visible := state.VisibleEntries()
	assert.Len(t, visible, 20)
	assert.Equal(t, "f040", visible[0].Name)
	assert.Equal(t, "f059", visible[19].Name)
}
