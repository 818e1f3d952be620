// Package events defines the messages TUI components emit to the root model.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// SearchSubmitMsg carries the raw search form fields.
type SearchSubmitMsg struct {
	Component ComponentID
	Form      map[string]string
}

// Describe renders the submission for logs.
func (m SearchSubmitMsg) Describe() string {
	return fmt.Sprintf(`title:%q author:%q genre:%q`, m.Form["title"], m.Form["author"], m.Form["genre"])
}

// SearchCancelMsg is emitted when the search form is dismissed.
type SearchCancelMsg struct {
	Component ComponentID
}

// SettingsSubmitMsg carries the raw settings form fields.
type SettingsSubmitMsg struct {
	Component ComponentID
	Form      map[string]string
}

// Describe renders the submission for logs.
func (m SettingsSubmitMsg) Describe() string {
	return fmt.Sprintf(`theme:%q`, m.Form["theme"])
}

// SettingsCancelMsg is emitted when the settings form is dismissed.
type SettingsCancelMsg struct {
	Component ComponentID
}

// DetailCloseMsg is emitted when the detail overlay is dismissed.
type DetailCloseMsg struct {
	Component ComponentID
}

// SearchSubmitCmd wraps SearchSubmitMsg in a tea.Cmd.
func SearchSubmitCmd(component ComponentID, form map[string]string) tea.Cmd {
	return func() tea.Msg {
		return SearchSubmitMsg{Component: component, Form: form}
	}
}

// SearchCancelCmd wraps SearchCancelMsg in a tea.Cmd.
func SearchCancelCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg { return SearchCancelMsg{Component: component} }
}

// SettingsSubmitCmd wraps SettingsSubmitMsg in a tea.Cmd.
func SettingsSubmitCmd(component ComponentID, form map[string]string) tea.Cmd {
	return func() tea.Msg {
		return SettingsSubmitMsg{Component: component, Form: form}
	}
}

// SettingsCancelCmd wraps SettingsCancelMsg in a tea.Cmd.
func SettingsCancelCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg { return SettingsCancelMsg{Component: component} }
}

// DetailCloseCmd wraps DetailCloseMsg in a tea.Cmd.
func DetailCloseCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg { return DetailCloseMsg{Component: component} }
}
