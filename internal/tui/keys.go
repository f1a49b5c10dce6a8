package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter    key.Binding
	quit     key.Binding
	copySeed key.Binding
	hideSeed key.Binding
}

var keys = keyMap{
	enter:    key.NewBinding(key.WithKeys("enter")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc")),
	copySeed: key.NewBinding(key.WithKeys("ctrl+y")),
	hideSeed: key.NewBinding(key.WithKeys("ctrl+x")),
}
