// Package ui provides the terminal user interfaces for showroom.
//
// # Architecture Overview
//
// The package implements two Bubble Tea programs that share a theme system,
// key map, and help overlay:
//
//   - StorefrontModel: read-only catalog browser with a card grid, category
//     bar, and sort cycling
//   - AdminModel: login-gated product editor with a form pane and a product
//     list pane
//
// # Package Structure
//
//   - storefront.go: storefront model, card grid rendering, prefs persistence
//   - admin.go: admin model, login gate, form, list, delete confirmation
//   - theme.go: named color themes and derived lipgloss styles
//   - keys.go: shared key bindings (bubbles/key)
//   - help.go: centered keyboard-shortcut overlay
//   - changes.go: bridge from store change notifications into tea messages
//   - strings.go: width helpers for fixed-column rendering
//
// # Live Updates
//
// Both models subscribe to the product store. A blocking tea.Cmd waits on the
// subscription channel and resolves to productsChangedMsg; the Update handler
// reloads the list and immediately re-issues the wait. Edits made on one
// surface appear on the other without any user action.
//
// # Input Routing
//
// The admin model routes keys by focus: control keys (tab, enter, esc) are
// handled first, and everything else flows into the focused textinput. List
// focus enables the vim-style bindings (j/k, e, d). Modal states (login,
// help, delete confirmation) capture all input until dismissed.
package ui
