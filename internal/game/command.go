package game

// CommandKind identifies a game-change request from the menu.
type CommandKind int

const (
	CmdNew CommandKind = iota
	CmdSave
	CmdLoad
)

func (k CommandKind) String() string {
	switch k {
	case CmdNew:
		return "new"
	case CmdSave:
		return "save"
	case CmdLoad:
		return "load"
	default:
		return "unknown"
	}
}

// Command is a state-transition request applied to a session. The menu
// produces them; Session.Apply consumes them.
type Command struct {
	Kind CommandKind
	Rows int // CmdNew only
	Cols int // CmdNew only
}

// NewGameCommand requests a fresh board of the given shape.
func NewGameCommand(rows, cols int) Command {
	return Command{Kind: CmdNew, Rows: rows, Cols: cols}
}

// SaveCommand requests persisting the current state to the save file.
func SaveCommand() Command {
	return Command{Kind: CmdSave}
}

// LoadCommand requests replacing the current state from the save file.
func LoadCommand() Command {
	return Command{Kind: CmdLoad}
}
