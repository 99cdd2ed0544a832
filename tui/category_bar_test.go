// ABOUTME: Tests for the category tab strip sub-model.
// ABOUTME: Covers active-tab bookkeeping, bounds checks, and label rendering.
package tui

import (
	"testing"

	"github.com/classkit/classdeck/panel"
)

func TestSetActiveBounds(t *testing.T) {
	m := NewCategoryBarModel()

	m.SetActive(3)
	if got := m.Active(); got != 3 {
		t.Errorf("Active = %d, want 3", got)
	}

	m.SetActive(-1)
	if got := m.Active(); got != 3 {
		t.Errorf("Active = %d after negative index, want 3", got)
	}

	m.SetActive(len(panel.ResourceTypes))
	if got := m.Active(); got != 3 {
		t.Errorf("Active = %d after out-of-range index, want 3", got)
	}
}

func TestCategoryBarViewShowsAllLabels(t *testing.T) {
	m := NewCategoryBarModel()
	m.SetWidth(120)

	view := m.View()
	for _, rt := range panel.ResourceTypes {
		if !containsStripped(view, rt.Label()) {
			t.Errorf("view missing label %q", rt.Label())
		}
	}
}

func TestCategoryBarViewBracketsActive(t *testing.T) {
	m := NewCategoryBarModel()
	m.SetActive(2)
	m.SetWidth(120)

	view := m.View()
	want := "[" + panel.SubjectsSource.Label() + "]"
	if !containsStripped(view, want) {
		t.Errorf("view missing active marker %q", want)
	}
}
