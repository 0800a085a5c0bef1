package dashboard

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Refresh key.Binding
	Help    key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh now"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
}

// helpLine renders every binding as "key: description".
func helpLine() string {
	out := ""

	for i, b := range []key.Binding{keys.Quit, keys.Refresh, keys.Help} {
		if i > 0 {
			out += "  "
		}

		h := b.Help()
		out += h.Key + ": " + h.Desc
	}

	return out
}
