package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoronin/connect4/internal/config"
	"github.com/nvoronin/connect4/internal/core"
	"github.com/nvoronin/connect4/internal/game"
	"github.com/nvoronin/connect4/internal/save"
)

// menuItem identifies one entry of the main menu.
type menuItem int

const (
	itemResume menuItem = iota
	itemNewGame
	itemRows
	itemCols
	itemSave
	itemLoad
	itemHistory
	itemExit
)

// MenuOutcome says what the player chose when the menu closed.
type MenuOutcome int

const (
	MenuOutcomeQuit MenuOutcome = iota
	MenuOutcomePlay
	MenuOutcomeHistory
)

// MenuModel is the Bubble Tea model for the main menu. It applies
// session commands itself so rule errors (failed load, nothing to
// save) surface on the status line without leaving the menu.
type MenuModel struct {
	session   *game.Session
	board     config.BoardConfig
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	rows    int
	cols    int
	cursor  int
	width   int
	height  int
	status  string
	outcome MenuOutcome
	done    bool
}

// NewMenuModel creates a menu for the given session. The board shape
// selectors start at the current board's shape, or the configured
// default when no game is loaded.
func NewMenuModel(session *game.Session, board config.BoardConfig, cfg core.RuntimeConfig) MenuModel {
	rows, cols := board.Rows, board.Cols
	if b := session.Board(); b != nil {
		rows, cols = b.Rows(), b.Cols()
	}

	return MenuModel{
		session:   session,
		board:     board,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		rows:      rows,
		cols:      cols,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
}

// items returns the visible menu entries. Resume and Save only appear
// while a game can still be played.
func (m MenuModel) items() []menuItem {
	items := make([]menuItem, 0, 8)
	if m.session.Resumable() {
		items = append(items, itemResume)
	}
	items = append(items, itemNewGame, itemRows, itemCols)
	if m.session.Resumable() {
		items = append(items, itemSave)
	}
	items = append(items, itemLoad, itemHistory, itemExit)
	return items
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.items()
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.outcome = MenuOutcomeQuit
		m.done = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(items[m.cursor], -1)

	case MenuActionRight:
		m.adjust(items[m.cursor], +1)

	case MenuActionSelect:
		return m.selectItem(items[m.cursor])
	}

	return m, nil
}

// adjust changes the rows or cols selector, enforcing the minimum
// shape and the maximum skew between the two dimensions.
func (m *MenuModel) adjust(item menuItem, delta int) {
	rows, cols := m.rows, m.cols
	switch item {
	case itemRows:
		rows += delta
	case itemCols:
		cols += delta
	default:
		return
	}

	switch {
	case rows < m.board.MinRows || cols < m.board.MinCols:
		m.status = fmt.Sprintf("Minimum board is %d rows by %d columns", m.board.MinRows, m.board.MinCols)
	case rows > game.MaxBoardSide || cols > game.MaxBoardSide:
		m.status = fmt.Sprintf("Maximum board side is %d", game.MaxBoardSide)
	case abs(rows-cols) > m.board.MaxSkew:
		m.status = fmt.Sprintf("Rows and columns may differ by at most %d", m.board.MaxSkew)
	default:
		m.rows, m.cols = rows, cols
		m.status = ""
	}
}

// selectItem runs the chosen menu entry.
func (m MenuModel) selectItem(item menuItem) (tea.Model, tea.Cmd) {
	switch item {
	case itemResume:
		m.outcome = MenuOutcomePlay
		m.done = true
		return m, tea.Quit

	case itemNewGame:
		if err := m.session.Apply(game.NewGameCommand(m.rows, m.cols)); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.outcome = MenuOutcomePlay
		m.done = true
		return m, tea.Quit

	case itemSave:
		if err := m.session.Apply(game.SaveCommand()); err != nil {
			m.status = "Save failed: " + err.Error()
		} else {
			m.status = "Game saved."
		}

	case itemLoad:
		if err := m.session.Apply(game.LoadCommand()); err != nil {
			m.status = loadErrorMessage(err)
			return m, nil
		}
		if b := m.session.Board(); b != nil {
			m.rows, m.cols = b.Rows(), b.Cols()
		}
		m.outcome = MenuOutcomePlay
		m.done = true
		return m, tea.Quit

	case itemHistory:
		m.outcome = MenuOutcomeHistory
		m.done = true
		return m, tea.Quit

	case itemExit:
		m.outcome = MenuOutcomeQuit
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// loadErrorMessage turns a failed load into a short human message.
func loadErrorMessage(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "No saved game found."
	case errors.Is(err, save.ErrCorrupt):
		return "The save file is corrupted."
	default:
		return "Load failed: " + err.Error()
	}
}

// label returns the display text for a menu entry.
func (m MenuModel) label(item menuItem) string {
	switch item {
	case itemResume:
		return "Resume"
	case itemNewGame:
		return "New Game"
	case itemRows:
		return fmt.Sprintf("Rows  < %d >", m.rows)
	case itemCols:
		return fmt.Sprintf("Cols  < %d >", m.cols)
	case itemSave:
		return "Save Game"
	case itemLoad:
		return "Load Game"
	case itemHistory:
		return "Match History"
	case itemExit:
		return "Exit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C O N N E C T   4", m.width))
	b.WriteString("\n\n")

	if win := m.session.Winner(); win != nil {
		banner := fmt.Sprintf("*** %s wins! ***", win.Turn)
		b.WriteString(centerText(banner, m.width))
		b.WriteString("\n\n")
	}

	items := m.items()
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	for i, item := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+m.label(item), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}

	controls := "Up/Down: Navigate  |  Left/Right: Adjust  |  Enter: Select  |  Q: Quit"
	b.WriteString("\n")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Outcome returns what the player chose.
func (m MenuModel) Outcome() MenuOutcome {
	return m.outcome
}

// Done reports whether the menu has closed.
func (m MenuModel) Done() bool {
	return m.done
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len([]rune(text)) >= width {
		return text
	}
	padding := (width - len([]rune(text))) / 2
	return strings.Repeat(" ", padding) + text
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// MenuResult holds the result of running the menu standalone.
type MenuResult struct {
	Outcome MenuOutcome
	Config  core.RuntimeConfig
}

// RunMenu runs the menu as its own program and returns the selection.
func RunMenu(session *game.Session, board config.BoardConfig, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(session, board, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Outcome: MenuOutcomeQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Outcome: MenuOutcomeQuit, Config: cfg}, nil
	}
	return MenuResult{Outcome: m.Outcome(), Config: m.Config()}, nil
}
