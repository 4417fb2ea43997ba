package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// productsChangedMsg arrives when another surface saved the shared list.
type productsChangedMsg struct{}

// waitForChange blocks on the store's notification channel and converts the
// next delivery into a message. The surface re-issues the command after
// every receipt, so exactly one wait is outstanding at a time.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return productsChangedMsg{}
	}
}
