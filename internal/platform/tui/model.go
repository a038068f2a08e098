package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoronin/connect4/internal/core"
	"github.com/nvoronin/connect4/internal/game"
	"github.com/nvoronin/connect4/internal/storage"
)

// blinkInterval is how many ticks the win line stays in each blink state.
const blinkInterval = 15

// Model is the Bubble Tea model for the game screen. It owns no rules:
// every move goes through the session and the view is drawn from the
// session's read-only state.
type Model struct {
	session   *game.Session
	matches   *storage.Store // may be nil, match results are best-effort
	config    core.RuntimeConfig
	screen    *core.Screen
	layout    BoardLayout
	keyMapper *KeyMapper

	cursorCol   int
	frame       int
	blinkOn     bool
	status      string
	resultSaved bool
	backToMenu  bool
	quitting    bool
}

// NewModel creates a game screen model for the session's current board.
func NewModel(session *game.Session, matches *storage.Store, cfg core.RuntimeConfig) Model {
	m := Model{
		session:   session,
		matches:   matches,
		config:    cfg,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper: NewKeyMapper(),
		blinkOn:   true,
	}
	if b := session.Board(); b != nil {
		m.layout = NewBoardLayout(cfg.ScreenW, b.Rows(), b.Cols())
		m.cursorCol = b.Cols() / 2
	}
	// A game that ends before this screen opens (a loaded win) must not
	// be recorded again.
	m.resultSaved = session.Phase() == game.PhaseWon
	return m
}

// Init starts the animation ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages for the game screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if b := m.session.Board(); b != nil {
			m.layout = NewBoardLayout(msg.Width, b.Rows(), b.Cols())
		}
		return m, nil
	case TickMsg:
		m.frame++
		if m.frame%blinkInterval == 0 {
			m.blinkOn = !m.blinkOn
		}
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	}

	if m.session.Phase() != game.PhaseInProgress {
		// Any confirm-like key on a finished game returns to the menu.
		if action == core.ActionDrop {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch action {
	case core.ActionLeft:
		m.cursorCol = core.Clamp(m.cursorCol-1, 0, m.layout.Cols-1)
		m.status = ""
	case core.ActionRight:
		m.cursorCol = core.Clamp(m.cursorCol+1, 0, m.layout.Cols-1)
		m.status = ""
	case core.ActionDrop:
		m.drop(m.cursorCol)
	}
	return m, nil
}

// handleMouse lets the player aim with the pointer and drop by clicking
// a column.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session.Phase() != game.PhaseInProgress {
		return m, nil
	}

	col, ok := m.layout.ColumnAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.cursorCol = col
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.cursorCol = col
		m.drop(col)
	}
	return m, nil
}

// drop plays a move in the given column and translates rule errors
// into status messages.
func (m *Model) drop(col int) {
	res, err := m.session.Drop(col)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrColumnFull):
			m.status = fmt.Sprintf("Column %d is full", col+1)
		case errors.Is(err, game.ErrGameOver):
			m.status = "The game is over. Press Esc for the menu."
		default:
			m.status = err.Error()
		}
		return
	}

	m.status = ""
	if res.Win != nil {
		m.recordResult(res)
	} else if m.session.Board().Full() {
		m.status = "Board full, nobody connected four. Press Esc for the menu."
	}
}

// recordResult writes the finished match to the results store once.
func (m *Model) recordResult(res game.DropResult) {
	if m.resultSaved {
		return
	}
	m.resultSaved = true

	if m.matches == nil {
		return
	}
	b := m.session.Board()
	if _, err := m.matches.SaveMatch(res.Win.Turn, b.Rows(), b.Cols(), m.session.History().Len()); err != nil {
		m.status = "Could not record the match: " + err.Error()
	}
}

// View renders the game screen.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.renderFrame()
	return RenderScreen(m.screen)
}

// renderFrame draws the full game screen into the buffer.
func (m Model) renderFrame() {
	s := m.screen
	s.Clear()

	b := m.session.Board()
	if b == nil {
		s.DrawTextCentered(s.Height()/2, "No game in progress")
		return
	}

	if !m.layout.Fits(s.Width(), s.Height()) {
		s.DrawTextCentered(s.Height()/2, "Window too small")
		s.DrawTextCentered(s.Height()/2+1, fmt.Sprintf("Need at least %dx%d", m.layout.GridWidth()+4, hudRows+m.layout.GridHeight()+2+footerRows))
		return
	}

	m.renderHUD()
	m.renderBoard()
	m.renderFooter()
}

// renderHUD draws the title line, the separator, the column numbers
// and the drop cursor.
func (m Model) renderHUD() {
	s := m.screen
	s.DrawTextColored(1, 0, "CONNECT 4", core.ColorCyan)

	switch m.session.Phase() {
	case game.PhaseWon:
		win := m.session.Winner()
		banner := fmt.Sprintf("%s wins!", win.Turn)
		s.DrawTextColored(s.Width()-len(banner)-1, 0, banner, core.ColorBrightYellow)
	case game.PhaseInProgress:
		turn := m.session.Turn()
		label := fmt.Sprintf("%s to move", turn)
		s.DrawTextColored(s.Width()-len(label)-1, 0, label, diskColor(turn == game.TurnRed))
	}

	s.DrawHLine(0, 1, s.Width(), '─')

	for col := range m.layout.Cols {
		label := fmt.Sprintf("%d", col+1)
		s.DrawTextColored(m.layout.CellCenterX(col)-len(label)/2, 2, label, core.ColorGray)
	}

	// Ghost disk: the mover's disk hovers over the cursor column.
	if m.session.Phase() == game.PhaseInProgress {
		turn := m.session.Turn()
		s.SetColored(m.layout.CellCenterX(m.cursorCol), 3, '●', diskColor(turn == game.TurnRed))
	}
}

// renderBoard draws the box and every disk. The winning line blinks
// bright yellow.
func (m Model) renderBoard() {
	s := m.screen
	b := m.session.Board()

	s.DrawBox(m.layout.Box())

	winCells := map[game.Point]bool{}
	if win := m.session.Winner(); win != nil {
		for _, p := range win.Cells() {
			winCells[p] = true
		}
	}

	for row := range b.Rows() {
		for col := range b.Cols() {
			x := m.layout.CellCenterX(col)
			y := m.layout.CellY(row)

			disk := b.At(row, col)
			if disk == game.DiskNone {
				s.SetColored(x, y, '·', core.ColorGray)
				continue
			}

			color := diskColor(disk == game.DiskRed)
			if winCells[game.Point{Row: row, Col: col}] && m.blinkOn {
				color = core.ColorBrightYellow
			}
			s.SetColored(x, y, '●', color)
		}
	}
}

// renderFooter draws the move history strip, the status line and the
// control hints.
func (m Model) renderFooter() {
	s := m.screen
	y := m.layout.Box().Bottom()

	moves := m.session.History().Moves()
	// Show the most recent moves that fit on one line.
	maxMoves := (s.Width() - 10) / 3
	if maxMoves > 0 && len(moves) > maxMoves {
		moves = moves[len(moves)-maxMoves:]
	}
	x := 1
	s.DrawTextColored(x, y, "Moves:", core.ColorGray)
	x += 7
	for _, mv := range moves {
		label := fmt.Sprintf("%d", mv.Col+1)
		s.DrawTextColored(x, y, label, diskColor(mv.Turn == game.TurnRed))
		x += len(label) + 1
	}

	if m.status != "" {
		s.DrawTextColored(1, y+1, m.status, core.ColorYellow)
	}

	var controls string
	if m.session.Phase() == game.PhaseWon {
		controls = "[enter] menu  [q] quit"
	} else {
		controls = "[←/→] aim  [enter/click] drop  [esc] menu  [q] quit"
	}
	s.DrawTextColored(1, s.Height()-1, controls, core.ColorGray)
}

// IsQuitting reports whether the player asked to leave the program.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// Run runs the game screen as its own program and blocks until the
// player leaves. It reports whether the player asked to quit entirely
// rather than return to the menu.
func Run(session *game.Session, matches *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	model := NewModel(session, matches, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("game screen failed: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return true, nil
	}
	return m.IsQuitting(), nil
}
