package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts. Every binding uses a non-printing
// key so typing in the form never triggers an action.
type KeyMap struct {
	// Form
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding

	// Results
	Clear         key.Binding
	ToggleTab     key.Binding
	ToggleMetrics key.Binding
	TogglePayload key.Binding
	ToggleRaw     key.Binding
	ToggleLayout  key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "classify"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous field"),
		),

		Clear: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("Ctrl+K", "clear results"),
		),
		ToggleTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("Ctrl+T", "structured/raw"),
		),
		ToggleMetrics: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "toggle metrics"),
		),
		TogglePayload: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "toggle payload"),
		),
		ToggleRaw: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "toggle raw"),
		),
		ToggleLayout: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "tabs/stacked"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),

		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("Esc/Ctrl+C", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.ToggleTab, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NextField, k.PrevField},
		{k.Clear, k.ToggleTab, k.ToggleLayout},
		{k.ToggleMetrics, k.TogglePayload, k.ToggleRaw},
		{k.ScrollUp, k.ScrollDown, k.Help, k.Quit},
	}
}
