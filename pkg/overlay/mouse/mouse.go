// Package mouse provides cell-grid hit region tracking for overlay routing.
// Regions are registered during View with the exact rectangles that were
// rendered, so click routing can never drift from what is on screen.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a cell rectangle. X/Y are the top-left cell; W/H are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a registered hit target.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions registered for the current frame. Overlapping
// regions resolve to the most recently added, so callers register back to
// front.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region by its components.
func (h *HitMap) AddRect(id string, x, y, w, ht int, data any) {
	h.regions = append(h.regions, Region{
		ID:   id,
		Rect: Rect{X: x, Y: y, W: w, H: ht},
		Data: data,
	})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Clear drops all regions. Called at the top of every View pass.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Regions returns the registered regions in registration order.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// ActionType classifies a routed mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
)

// Action is the result of routing one tea.MouseMsg.
type Action struct {
	Type          ActionType
	Region        *Region
	IsDoubleClick bool
	X, Y          int
}

// doubleClickWindow is the maximum gap between two clicks on the same
// region that still counts as a double-click.
const doubleClickWindow = 400 * time.Millisecond

// Handler routes mouse messages through a HitMap and tracks double-click
// state across frames.
type Handler struct {
	HitMap *HitMap

	lastClickID   string
	lastClickTime time.Time
	now           func() time.Time
}

// NewHandler returns a Handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap(), now: time.Now}
}

// HandleClick resolves a press at (x, y) and detects double-clicks on the
// same region. A detected double-click resets the tracking state, so a
// third click starts over.
func (h *Handler) HandleClick(x, y int) Action {
	region := h.HitMap.Test(x, y)
	act := Action{Type: ActionClick, Region: region, X: x, Y: y}
	if region == nil {
		h.lastClickID = ""
		return act
	}

	now := h.now()
	if region.ID == h.lastClickID && now.Sub(h.lastClickTime) <= doubleClickWindow {
		act.IsDoubleClick = true
		h.lastClickID = ""
		return act
	}
	h.lastClickID = region.ID
	h.lastClickTime = now
	return act
}

// HandleMouse routes a tea.MouseMsg to an Action. Wheel events map to
// scroll actions (shifted wheel scrolls horizontally); motion maps to
// hover; left presses map to clicks.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			t := ActionScrollUp
			if msg.Shift {
				t = ActionScrollLeft
			}
			return Action{Type: t, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
		case tea.MouseButtonWheelDown:
			t := ActionScrollDown
			if msg.Shift {
				t = ActionScrollRight
			}
			return Action{Type: t, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
		case tea.MouseButtonLeft:
			return h.HandleClick(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		return Action{Type: ActionHover, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
	}
	return Action{Type: ActionNone, X: msg.X, Y: msg.Y}
}

// Clear drops all registered regions.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
