package memtree

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/bnema/switchscan/internal/domain/entity"
)

const (
	menuItemWidth   = 160
	menuItemHeight  = 24
	menuGap         = 4
	keyboardHeight  = 120
	keyWidth        = 48
	pointScanStep   = 10
	keyboardNodeID  = "virtual-keyboard"
	menuOverlayNode = "switch-access-menu"
)

var keyboardKeys = []string{"q", "w", "e", "r", "t", "y", "space", "backspace"}

// PointScanAxis is the axis a point scan is currently sweeping.
type PointScanAxis int

const (
	AxisX PointScanAxis = iota
	AxisY
)

type surfaceState struct {
	menuVisible  bool
	menuLocation entity.Rect
	menuActions  []entity.MenuAction
	rings        []entity.FocusRing

	pointScanning bool
	pointAxis     PointScanAxis
	pointSpeed    time.Duration
	cursor        entity.Point
	onPoint       func(entity.Point)

	keyboardVisible bool
	dictation       bool
}

// SurfaceSnapshot is what the simulated surface currently shows.
type SurfaceSnapshot struct {
	MenuVisible     bool
	MenuLocation    entity.Rect
	MenuActions     []entity.MenuAction
	Rings           []entity.FocusRing
	PointScanning   bool
	PointAxis       PointScanAxis
	PointSpeed      time.Duration
	Cursor          entity.Point
	KeyboardVisible bool
	Dictation       bool
}

// Snapshot returns a copy of the surface state.
func (h *Host) Snapshot() SurfaceSnapshot {
	s := h.surface
	return SurfaceSnapshot{
		MenuVisible:     s.menuVisible,
		MenuLocation:    s.menuLocation,
		MenuActions:     append([]entity.MenuAction(nil), s.menuActions...),
		Rings:           append([]entity.FocusRing(nil), s.rings...),
		PointScanning:   s.pointScanning,
		PointAxis:       s.pointAxis,
		PointSpeed:      s.pointSpeed,
		Cursor:          s.cursor,
		KeyboardVisible: s.keyboardVisible,
		Dictation:       s.dictation,
	}
}

// ShowMenu records the menu and lays out its presentation on the next loop
// turn, replacing the items of a menu that is already shown.
func (h *Host) ShowMenu(_ context.Context, location entity.Rect, actions []entity.MenuAction) error {
	h.surface.menuVisible = true
	h.surface.menuLocation = location
	h.surface.menuActions = append([]entity.MenuAction(nil), actions...)
	h.record("show_menu:%s", joinActions(actions))

	h.post(func() {
		if !h.surface.menuVisible {
			return
		}
		h.layoutMenu(location, h.surface.menuActions)
	})
	return nil
}

func (h *Host) layoutMenu(location entity.Rect, actions []entity.MenuAction) {
	left := location.Right() + menuGap
	if h.root.hasRect && left+menuItemWidth > h.root.rect.Right() {
		left = max(0, location.Left-menuGap-menuItemWidth)
	}
	top := max(0, location.Top)

	overlay := h.nodes[menuOverlayNode]
	if overlay == nil {
		overlay = h.build(&Spec{
			ID:   menuOverlayNode,
			Role: string(entity.RoleMenu),
			Name: entity.MenuOverlayName,
		}, h.root)
		h.root.children = append(h.root.children, overlay)
	} else {
		// Items are replaced in place so the overlay keeps its identity.
		for _, item := range append([]*Node(nil), overlay.children...) {
			h.unlink(item)
			h.emit(entity.EventNodeRemoved, item, false)
		}
	}
	overlay.rect = entity.Rect{Left: left, Top: top, Width: menuItemWidth, Height: menuItemHeight * len(actions)}
	overlay.hasRect = true

	for i, a := range actions {
		item := h.build(&Spec{
			ID:   string(h.syntheticID("menu-item")),
			Role: string(entity.RoleMenuItem),
			Name: string(a),
			Rect: []int{left, top + i*menuItemHeight, menuItemWidth, menuItemHeight},
		}, overlay)
		overlay.children = append(overlay.children, item)
	}
	h.emit(entity.EventChildrenChanged, overlay, false)
	h.emit(entity.EventSubtreeUpdateEnd, overlay, false)
}

func (h *Host) HideMenu(context.Context) error {
	h.surface.menuVisible = false
	h.surface.menuActions = nil
	h.record("hide_menu")
	if n := h.nodes[menuOverlayNode]; n != nil {
		h.detach(n)
	}
	return nil
}

func (h *Host) ShowFocusRings(_ context.Context, rings []entity.FocusRing) error {
	h.surface.rings = append(h.surface.rings[:0:0], rings...)
	return nil
}

func (h *Host) HideFocusRings(context.Context) error {
	h.surface.rings = nil
	return nil
}

func (h *Host) StartPointScan(_ context.Context, speed time.Duration, onPoint func(entity.Point)) error {
	h.surface.pointScanning = true
	h.surface.pointAxis = AxisX
	h.surface.pointSpeed = speed
	h.surface.onPoint = onPoint
	if h.root.hasRect {
		h.surface.cursor = entity.Point{X: h.root.rect.Left, Y: h.root.rect.Top}
	}
	h.record("point_scan:start")
	return nil
}

// AdvancePointScan fixes X on the first call and reports the point on the
// second.
func (h *Host) AdvancePointScan(context.Context) error {
	if !h.surface.pointScanning {
		return fmt.Errorf("point scan is not running")
	}
	if h.surface.pointAxis == AxisX {
		h.surface.pointAxis = AxisY
		return nil
	}
	pt, onPoint := h.surface.cursor, h.surface.onPoint
	h.surface.pointScanning = false
	h.surface.onPoint = nil
	h.record("point_scan:chose:%d,%d", pt.X, pt.Y)
	if onPoint != nil {
		h.post(func() { onPoint(pt) })
	}
	return nil
}

func (h *Host) StopPointScan(context.Context) error {
	if h.surface.pointScanning {
		h.record("point_scan:stop")
	}
	h.surface.pointScanning = false
	h.surface.onPoint = nil
	return nil
}

// StepPointScan moves the sweep line one step along the active axis,
// wrapping at the desktop edge.
func (h *Host) StepPointScan() {
	if !h.surface.pointScanning || !h.root.hasRect {
		return
	}
	r := h.root.rect
	c := &h.surface.cursor
	if h.surface.pointAxis == AxisX {
		c.X += pointScanStep
		if c.X >= r.Right() {
			c.X = r.Left
		}
		return
	}
	c.Y += pointScanStep
	if c.Y >= r.Bottom() {
		c.Y = r.Top
	}
}

// SetPointScanCursor places the sweep lines at pt.
func (h *Host) SetPointScanCursor(pt entity.Point) {
	h.surface.cursor = pt
}

func (h *Host) Click(_ context.Context, pt entity.Point, button entity.MouseButton) error {
	h.record("click:%s:%d,%d", button, pt.X, pt.Y)
	hit := hitTest(h.root, pt)
	if hit != nil && button == entity.MouseLeft && hit.state.Focusable {
		h.setFocus(hit, true)
	}
	return nil
}

// SendKey edits the focused text field for caret keys and clipboard chords.
func (h *Host) SendKey(_ context.Context, key entity.KeyPress) error {
	h.record("key:%s", describeKey(key))
	n := h.focused
	if n == nil || !n.state.Editable {
		return nil
	}
	caret := n.selEnd
	switch key.Key {
	case entity.KeyHome:
		caret = 0
	case entity.KeyEnd:
		caret = len(n.value)
	case entity.KeyLeft:
		if key.Ctrl {
			caret = wordStart(n.value, caret)
		} else {
			caret = max(0, caret-1)
		}
	case entity.KeyRight:
		if key.Ctrl {
			caret = wordEnd(n.value, caret)
		} else {
			caret = min(len(n.value), caret+1)
		}
	case entity.KeyUp, entity.KeyDown:
	case entity.KeyX:
		if key.Ctrl && n.selStart < n.selEnd {
			n.value = n.value[:n.selStart] + n.value[n.selEnd:]
			caret = n.selStart
		}
	default:
		return nil
	}
	if key.Shift {
		n.selEnd = caret
	} else {
		n.selStart, n.selEnd = caret, caret
	}
	h.emit(entity.EventTextSelectionChanged, n, true)
	return nil
}

func wordStart(s string, i int) int {
	for i > 0 && unicode.IsSpace(rune(s[i-1])) {
		i--
	}
	for i > 0 && !unicode.IsSpace(rune(s[i-1])) {
		i--
	}
	return i
}

func wordEnd(s string, i int) int {
	for i < len(s) && unicode.IsSpace(rune(s[i])) {
		i++
	}
	for i < len(s) && !unicode.IsSpace(rune(s[i])) {
		i++
	}
	return i
}

// SetVirtualKeyboardVisible shows the keyboard on the next loop turn.
func (h *Host) SetVirtualKeyboardVisible(_ context.Context, visible bool) error {
	h.surface.keyboardVisible = visible
	h.record("keyboard:%t", visible)
	if !visible {
		if n := h.nodes[keyboardNodeID]; n != nil {
			h.detach(n)
		}
		return nil
	}
	h.post(func() {
		if !h.surface.keyboardVisible || h.nodes[keyboardNodeID] != nil {
			return
		}
		h.layoutKeyboard()
	})
	return nil
}

func (h *Host) layoutKeyboard() {
	r := entity.Rect{Width: len(keyboardKeys) * keyWidth, Height: keyboardHeight}
	if h.root.hasRect {
		r.Left = h.root.rect.Left
		r.Top = max(0, h.root.rect.Bottom()-keyboardHeight)
		r.Width = h.root.rect.Width
	}
	spec := Spec{
		ID:   keyboardNodeID,
		Role: string(entity.RoleKeyboard),
		Rect: []int{r.Left, r.Top, r.Width, r.Height},
	}
	for i, k := range keyboardKeys {
		spec.Children = append(spec.Children, Spec{
			ID:   "key-" + k,
			Role: string(entity.RoleButton),
			Name: k,
			Rect: []int{r.Left + i*keyWidth, r.Top, keyWidth, r.Height},
		})
	}
	h.attach(h.root, h.build(&spec, h.root), -1)
}

func (h *Host) typeKey(key *Node) {
	n := h.focused
	if n == nil || !n.state.Editable {
		return
	}
	switch key.name {
	case "backspace":
		if n.selStart == n.selEnd && n.selStart > 0 {
			n.selStart--
		}
		n.value = n.value[:n.selStart] + n.value[n.selEnd:]
	default:
		text := key.name
		if text == "space" {
			text = " "
		}
		n.value = n.value[:n.selStart] + text + n.value[n.selEnd:]
		n.selStart += len(text)
	}
	n.selEnd = n.selStart
	h.emit(entity.EventTextSelectionChanged, n, true)
}

func (h *Host) ToggleDictation(context.Context) error {
	h.surface.dictation = !h.surface.dictation
	h.record("dictation:%t", h.surface.dictation)
	return nil
}

func (h *Host) OpenSettings(context.Context) error {
	h.record("settings")
	return nil
}

func joinActions(actions []entity.MenuAction) string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return strings.Join(names, ",")
}

func describeKey(k entity.KeyPress) string {
	var b strings.Builder
	if k.Ctrl {
		b.WriteString("ctrl+")
	}
	if k.Shift {
		b.WriteString("shift+")
	}
	b.WriteString(string(k.Key))
	return b.String()
}
