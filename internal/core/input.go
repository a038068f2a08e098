package core

// Action is a semantic input, abstracted from physical key presses and
// mouse buttons. The keymap produces them; models consume them.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // move the drop cursor left
	ActionRight          // move the drop cursor right
	ActionDrop           // drop a disk in the cursor column
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionConfirm        // select a menu item
	ActionBack           // return to the menu
	ActionQuit           // exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
