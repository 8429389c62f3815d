package keys

import "github.com/charmbracelet/bubbles/key"

// KeyName is a symbolic name for an input action; the menu renders from the
// same table the update loop matches against.
type KeyName int

const (
	KeyNudgeUp KeyName = iota
	KeyNudgeDown
	KeyNudgeLeft
	KeyNudgeRight
	KeyGrow
	KeyShrink
	KeyMinimize
	KeyCopyPlacement
	KeyInspect
	KeyQuit
)

// GlobalKeyBindings maps key names to their bindings and help text.
var GlobalKeyBindings = map[KeyName]key.Binding{
	KeyNudgeUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "move up"),
	),
	KeyNudgeDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "move down"),
	),
	KeyNudgeLeft: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "move left"),
	),
	KeyNudgeRight: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "move right"),
	),
	KeyGrow: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "grow panel"),
	),
	KeyShrink: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "shrink panel"),
	),
	KeyMinimize: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "minimize/restore"),
	),
	KeyCopyPlacement: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy placement"),
	),
	KeyInspect: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "dump geometry"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
