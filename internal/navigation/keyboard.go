package navigation

import (
	"context"

	"github.com/bnema/switchscan/internal/application/port"
	"github.com/bnema/switchscan/internal/domain/entity"
	"github.com/bnema/switchscan/internal/logging"
)

// EnterKeyboard focuses field, opens the virtual keyboard and moves into it
// once it appears.
func (n *ItemNavigator) EnterKeyboard(ctx context.Context, field port.Node) {
	log := logging.FromContext(ctx)

	n.suppressFocusEvents()
	if field != nil {
		if err := n.tree.Focus(ctx, field); err != nil {
			log.Warn().Err(err).Msg("failed to focus text field")
		}
	}
	if err := n.surface.SetVirtualKeyboardVisible(ctx, true); err != nil {
		log.Warn().Err(err).Msg("failed to show virtual keyboard")
		return
	}

	if n.cancelAwait != nil {
		n.cancelAwait()
	}
	n.cancelAwait = AwaitNode(n.tree, n.sched, n.tree.Desktop(), isKeyboardReady, KeyboardFocusSuppression,
		func(kb port.Node) {
			n.cancelAwait = nil
			if !n.JumpTo(ctx, kb) {
				n.reporter.Report(ctx, entity.ErrorMissingKeyboard, "keyboard %s has no keys", kb.ID())
			}
		},
		func() {
			n.cancelAwait = nil
			n.reporter.Report(ctx, entity.ErrorMissingKeyboard, "virtual keyboard did not appear")
		})
}

func isKeyboardReady(node port.Node) bool {
	return node.Role() == entity.RoleKeyboard && node.Exists() && len(node.Children()) > 0
}

func (n *ItemNavigator) suppressFocusEvents() {
	n.suppressFocus = true
	if n.suppressTimer != nil {
		n.suppressTimer.Stop()
	}
	n.suppressTimer = n.sched.AfterFunc(KeyboardFocusSuppression, func() {
		n.suppressFocus = false
		n.suppressTimer = nil
	})
}
