// Package textnav moves the caret inside text fields and builds selections
// from switch commands.
package textnav

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/classify"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
	"github.com/bnema/switchscan/internal/navigation"
)

// ErrNotTextNavigation is returned by Navigate for actions that do not move
// the caret.
var ErrNotTextNavigation = errors.New("not a text navigation action")

var navigationKeys = map[entity.MenuAction]entity.KeyPress{
	entity.ActionJumpToBeginningOfText:     {Key: entity.KeyHome, Ctrl: true},
	entity.ActionJumpToEndOfText:           {Key: entity.KeyEnd, Ctrl: true},
	entity.ActionMoveBackwardOneCharOfText: {Key: entity.KeyLeft},
	entity.ActionMoveBackwardOneWordOfText: {Key: entity.KeyLeft, Ctrl: true},
	entity.ActionMoveDownOneLineOfText:     {Key: entity.KeyDown},
	entity.ActionMoveForwardOneCharOfText:  {Key: entity.KeyRight},
	entity.ActionMoveForwardOneWordOfText:  {Key: entity.KeyRight, Ctrl: true},
	entity.ActionMoveUpOneLineOfText:       {Key: entity.KeyUp},
}

// Anchor is one end of a selection.
type Anchor struct {
	Node   port.Node
	Offset int
}

func (a Anchor) valid() bool {
	return a.Node != nil && a.Node.Exists() && a.Offset >= 0
}

// Controller tracks the selection being built. It runs on the main loop.
type Controller struct {
	ctx      context.Context
	tree     port.Tree
	editor   port.TextEditor
	surface  port.Surface
	reporter *navigation.Reporter

	start     Anchor
	end       Anchor
	selecting bool
	stopWait  func()
}

// New creates a text selection controller.
func New(ctx context.Context, tree port.Tree, editor port.TextEditor, surface port.Surface, reporter *navigation.Reporter) *Controller {
	ctx = logging.WithComponent(ctx, "textnav")
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating text selection controller")

	return &Controller{
		ctx:      ctx,
		tree:     tree,
		editor:   editor,
		surface:  surface,
		reporter: reporter,
	}
}

// Selecting reports whether a selection was started and not yet ended.
func (c *Controller) Selecting() bool {
	return c.selecting
}

// Anchors returns the current start and end anchors.
func (c *Controller) Anchors() (start, end Anchor) {
	return c.start, c.end
}

// ResetSelection forgets both anchors and stops selecting.
func (c *Controller) ResetSelection(context.Context) {
	c.stopWaiting()
	c.selecting = false
	c.start, c.end = Anchor{}, Anchor{}
}

// StartSelection anchors a selection at the caret of field. Later moves
// extend it until EndSelection.
func (c *Controller) StartSelection(ctx context.Context, field port.Node) {
	c.ResetSelection(ctx)
	if field == nil {
		return
	}
	_, caret := field.TextSelection()
	start := Anchor{Node: field, Offset: caret}
	if !start.valid() {
		c.reporter.Report(ctx, entity.ErrorInvalidSelectionBounds, "no caret in %s to anchor a selection", field.ID())
		return
	}
	c.start = start
	c.selecting = true
	logging.FromContext(ctx).Debug().Str("node", string(field.ID())).Int("offset", caret).Msg("selection started")
}

// EndSelection stops extending the selection. The committed selection stays
// on the host.
func (c *Controller) EndSelection(ctx context.Context, _ port.Node) {
	c.stopWaiting()
	c.selecting = false
	logging.FromContext(ctx).Debug().Msg("selection ended")
}

// Navigate sends the caret movement for action to field. While selecting,
// the movement extends the selection and the new end is committed when the
// host reports the selection change.
func (c *Controller) Navigate(ctx context.Context, field port.Node, action entity.MenuAction) error {
	key, ok := navigationKeys[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotTextNavigation, action)
	}
	if field == nil || !field.Exists() {
		return fmt.Errorf("navigate %s: text field is gone", action)
	}

	if focused := c.tree.Focused(ctx); !classify.SameNode(focused, field) && !classify.IsDescendantOf(focused, field) {
		if err := c.tree.Focus(ctx, field); err != nil {
			return fmt.Errorf("focus text field: %w", err)
		}
	}

	if c.selecting {
		key.Shift = true
		c.awaitSelectionChange(ctx)
	} else {
		c.start, c.end = Anchor{}, Anchor{}
	}

	if err := c.surface.SendKey(ctx, key); err != nil {
		c.stopWaiting()
		return fmt.Errorf("send %s: %w", key.Key, err)
	}
	return nil
}

// awaitSelectionChange commits the selection on the next selection change.
func (c *Controller) awaitSelectionChange(ctx context.Context) {
	c.stopWaiting()
	c.stopWait = c.tree.Subscribe(c.tree.Desktop(), []entity.EventType{entity.EventTextSelectionChanged}, func(evt port.Event) {
		c.stopWaiting()
		if !c.selecting || evt.Target == nil {
			return
		}
		_, focus := evt.Target.TextSelection()
		c.end = Anchor{Node: evt.Target, Offset: focus}
		c.commit(ctx)
	})
}

func (c *Controller) stopWaiting() {
	if c.stopWait != nil {
		c.stopWait()
		c.stopWait = nil
	}
}

func (c *Controller) commit(ctx context.Context) {
	log := logging.FromContext(ctx)
	s, e := c.start, c.end

	if !s.valid() || !e.valid() {
		c.reporter.Report(ctx, entity.ErrorInvalidSelectionBounds, "selection %d-%d has a missing end", s.Offset, e.Offset)
		return
	}

	var err error
	if classify.SameNode(s.Node, e.Node) {
		err = c.editor.SetSelection(ctx, s.Node, s.Offset, e.Offset)
	} else {
		err = c.editor.SetDocumentSelection(ctx, s.Node, s.Offset, e.Node, e.Offset)
	}
	if err != nil {
		c.reporter.Report(ctx, entity.ErrorInvalidSelectionBounds, "selection dropped: %v", err)
		return
	}
	log.Debug().
		Str("anchor", string(s.Node.ID())).
		Int("anchor_offset", s.Offset).
		Str("focus", string(e.Node.ID())).
		Int("focus_offset", e.Offset).
		Msg("selection committed")
}
