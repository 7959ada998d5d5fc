package mouse

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 10, true},  // Top-right edge (exclusive width)
		{10, 19, true},  // Bottom-left edge (exclusive height)
		{29, 19, true},  // Bottom-right corner
		{15, 15, true},  // Center
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 9, false},  // Just above
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapBasic(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("region1", 0, 0, 50, 50, "data1")
	hm.AddRect("region2", 60, 0, 50, 50, "data2")

	r := hm.Test(25, 25)
	if r == nil || r.ID != "region1" {
		t.Errorf("expected hit on region1, got %v", r)
	}

	r = hm.Test(85, 25)
	if r == nil || r.ID != "region2" {
		t.Errorf("expected hit on region2, got %v", r)
	}

	r = hm.Test(55, 25)
	if r != nil {
		t.Errorf("expected no hit, got %v", r)
	}
}

func TestHitMapPriority(t *testing.T) {
	hm := NewHitMap()

	// Overlapping regions - later ones have higher priority.
	hm.AddRect("backdrop", 0, 0, 100, 100, nil)
	hm.AddRect("dialog", 10, 10, 80, 80, nil)
	hm.AddRect("button", 40, 40, 20, 20, nil)

	r := hm.Test(50, 50)
	if r == nil || r.ID != "button" {
		t.Errorf("expected hit on button, got %v", r)
	}

	r = hm.Test(15, 15)
	if r == nil || r.ID != "dialog" {
		t.Errorf("expected hit on dialog, got %v", r)
	}

	r = hm.Test(5, 5)
	if r == nil || r.ID != "backdrop" {
		t.Errorf("expected hit on backdrop, got %v", r)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("region1", 0, 0, 50, 50, nil)
	hm.AddRect("region2", 60, 0, 50, 50, nil)

	if len(hm.Regions()) != 2 {
		t.Errorf("expected 2 regions, got %d", len(hm.Regions()))
	}

	hm.Clear()

	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
}

func TestHandlerClick(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	result := h.HandleClick(20, 15)
	if result.Region == nil || result.Region.ID != "button" {
		t.Errorf("expected click on button, got %v", result.Region)
	}
	if result.IsDoubleClick {
		t.Error("first click should not be double-click")
	}

	// Miss click
	result = h.HandleClick(5, 5)
	if result.Region != nil {
		t.Errorf("expected no region on miss, got %v", result.Region)
	}
}

func TestHandlerDoubleClick(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	now := time.Unix(0, 0)
	h.now = func() time.Time { return now }

	result := h.HandleClick(20, 15)
	if result.IsDoubleClick {
		t.Error("first click should not be double-click")
	}

	now = now.Add(100 * time.Millisecond)
	result = h.HandleClick(20, 15)
	if !result.IsDoubleClick {
		t.Error("second quick click should be double-click")
	}

	// Double-click resets the tracking, so a third click starts over.
	now = now.Add(100 * time.Millisecond)
	result = h.HandleClick(20, 15)
	if result.IsDoubleClick {
		t.Error("third click should not be double-click")
	}
}

func TestHandlerSlowSecondClick(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	now := time.Unix(0, 0)
	h.now = func() time.Time { return now }

	h.HandleClick(20, 15)
	now = now.Add(doubleClickWindow + time.Millisecond)
	result := h.HandleClick(20, 15)
	if result.IsDoubleClick {
		t.Error("slow second click should not be double-click")
	}
}

func TestHandleMouseActions(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	action := h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if action.Type != ActionClick {
		t.Errorf("expected ActionClick, got %v", action.Type)
	}
	if action.Region == nil || action.Region.ID != "button" {
		t.Errorf("expected region 'button', got %v", action.Region)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X:      25,
		Y:      15,
		Action: tea.MouseActionMotion,
	})
	if action.Type != ActionHover {
		t.Errorf("expected ActionHover, got %v", action.Type)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelDown,
	})
	if action.Type != ActionScrollDown {
		t.Errorf("expected ActionScrollDown, got %v", action.Type)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelUp,
	})
	if action.Type != ActionScrollUp {
		t.Errorf("expected ActionScrollUp, got %v", action.Type)
	}
}

func TestHandleMouseShiftScroll(t *testing.T) {
	h := NewHandler()

	// Shift+scroll up = scroll left
	action := h.HandleMouse(tea.MouseMsg{
		X:      10,
		Y:      10,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelUp,
		Shift:  true,
	})
	if action.Type != ActionScrollLeft {
		t.Errorf("expected ActionScrollLeft, got %v", action.Type)
	}

	// Shift+scroll down = scroll right
	action = h.HandleMouse(tea.MouseMsg{
		X:      10,
		Y:      10,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelDown,
		Shift:  true,
	})
	if action.Type != ActionScrollRight {
		t.Errorf("expected ActionScrollRight, got %v", action.Type)
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	h.Clear()

	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", len(h.HitMap.Regions()))
	}
}
