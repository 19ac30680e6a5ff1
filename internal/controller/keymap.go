package controller

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings of both tabs. Dictionary and learn bindings may
// share keys; only the active tab's set is consulted.
type KeyMap struct {
	Quit key.Binding

	// Dictionary tab.
	Up         key.Binding
	Down       key.Binding
	FocusLeft  key.Binding
	FocusRight key.Binding
	LearnTab   key.Binding

	// Learn tab.
	DictionaryTab key.Binding
	Next          key.Binding
	Help          key.Binding
}

// DefaultKeyMap returns the standard single-key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "down"),
		),
		FocusLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "categories"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "words"),
		),
		LearnTab: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "learn"),
		),
		DictionaryTab: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dictionary"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "help"),
		),
	}
}

// DictionaryBindings lists the dictionary tab bindings in footer order.
func (k KeyMap) DictionaryBindings() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.FocusLeft, k.FocusRight, k.LearnTab, k.Quit}
}

// LearnBindings lists the learn tab bindings in footer order.
func (k KeyMap) LearnBindings() []key.Binding {
	return []key.Binding{k.Next, k.Help, k.DictionaryTab, k.Quit}
}
