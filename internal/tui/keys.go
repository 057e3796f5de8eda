package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter key.Binding
	quit  key.Binding
	clear key.Binding
	prev  key.Binding
	next  key.Binding
}

var keys = keyMap{
	enter: key.NewBinding(key.WithKeys("enter")),
	quit:  key.NewBinding(key.WithKeys("ctrl+c")),
	clear: key.NewBinding(key.WithKeys("ctrl+l")),
	prev:  key.NewBinding(key.WithKeys("up")),
	next:  key.NewBinding(key.WithKeys("down")),
}
