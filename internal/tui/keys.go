package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	space     key.Binding
	quit      key.Binding
	search    key.Binding
	refresh   key.Binding
	newPost   key.Binding
	myPosts   key.Binding
	dashboard key.Binding
	profile   key.Binding
	contact   key.Binding
	login     key.Binding
	logout    key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	submit    key.Binding
	addLine   key.Binding
	dropLine  key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	space:     key.NewBinding(key.WithKeys(" ")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	search:    key.NewBinding(key.WithKeys("/")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	newPost:   key.NewBinding(key.WithKeys("n")),
	myPosts:   key.NewBinding(key.WithKeys("m")),
	dashboard: key.NewBinding(key.WithKeys("b")),
	profile:   key.NewBinding(key.WithKeys("p")),
	contact:   key.NewBinding(key.WithKeys("t")),
	login:     key.NewBinding(key.WithKeys("L")),
	logout:    key.NewBinding(key.WithKeys("L")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	addLine:   key.NewBinding(key.WithKeys("ctrl+n")),
	dropLine:  key.NewBinding(key.WithKeys("ctrl+d")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
