// Package tui implements the terminal scale explorer
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aguzmant103/Koji/pkg/mode"
	"github.com/aguzmant103/Koji/pkg/theory"
)

// keyRow is one degree line of the current key
type keyRow struct {
	Degree int // 1-based position in the key
	Note   int // pitch class
	Keynum int // absolute key number walking up from the tonic
}

// Model is the main TUI model
type Model struct {
	Catalog *mode.Catalog

	// View state
	Width    int
	Height   int
	ShowHelp bool

	// Key under exploration
	Tonic   theory.PitchClass
	ModeIdx int // index into Catalog.Names()

	// Selection and transposition preview
	Cursor    int // selected key row
	Transpose int // pending degrees, negative = down
}

// NewModel creates a new TUI model over a mode catalog
func NewModel(catalog *mode.Catalog) Model {
	return Model{
		Catalog: catalog,
		Tonic:   theory.PitchClass{Note: 0, Octave: 4},
		Width:   120,
		Height:  30,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "f1", "?":
		m.ShowHelp = !m.ShowHelp

	// Navigation within the key
	case "up":
		if m.Cursor > 0 {
			m.Cursor--
		}

	case "down":
		if m.Cursor < len(m.keyRows())-1 {
			m.Cursor++
		}

	case "home":
		m.Cursor = 0

	case "end":
		m.Cursor = len(m.keyRows()) - 1

	// Tonic
	case "left":
		m.Tonic = theory.NewPitchClass(m.Tonic.Note-1, m.Tonic.Octave)
		m.resetPreview()

	case "right":
		m.Tonic = theory.NewPitchClass(m.Tonic.Note+1, m.Tonic.Octave)
		m.resetPreview()

	// Octave
	case "*":
		if m.Tonic.Octave < 8 {
			m.Tonic.Octave++
			m.resetPreview()
		}

	case "/":
		if m.Tonic.Octave > 0 {
			m.Tonic.Octave--
			m.resetPreview()
		}

	// Mode cycling
	case "tab":
		if n := m.Catalog.Len(); n > 0 {
			m.ModeIdx = (m.ModeIdx + 1) % n
			m.resetPreview()
		}

	case "shift+tab":
		if n := m.Catalog.Len(); n > 0 {
			m.ModeIdx = (m.ModeIdx + n - 1) % n
			m.resetPreview()
		}

	// Transposition preview
	case "]":
		m.Transpose++

	case "[":
		m.Transpose--

	case "delete", "backspace":
		m.Transpose = 0
	}

	return m, nil
}

// resetPreview drops the pending transposition and pulls the selection
// back inside the key after the key itself changed
func (m *Model) resetPreview() {
	m.Transpose = 0
	if last := len(m.keyRows()) - 1; m.Cursor > last {
		m.Cursor = last
	}
}

func (m Model) currentMode() mode.Mode {
	names := m.Catalog.Names()
	if len(names) == 0 {
		return mode.Mode{}
	}
	idx := m.ModeIdx % len(names)
	cur, err := m.Catalog.Get(names[idx])
	if err != nil {
		return mode.Mode{}
	}
	return cur
}

// keyRows materializes the current key: tonic row first, one row per
// step, each with its absolute key number walking up from the tonic
func (m Model) keyRows() []keyRow {
	cur := m.currentMode()
	notes := theory.NotesOfKey(m.Tonic, cur.Steps)

	rows := make([]keyRow, len(notes))
	keynum := m.Tonic.Keynum()
	for i, note := range notes {
		if i > 0 {
			keynum += cur.Steps[i-1]
		}
		rows[i] = keyRow{Degree: i + 1, Note: note, Keynum: keynum}
	}
	return rows
}

func (m Model) selectedRow() keyRow {
	rows := m.keyRows()
	if m.Cursor < len(rows) {
		return rows[m.Cursor]
	}
	return rows[0]
}

// View implements tea.Model
func (m Model) View() string {
	if m.ShowHelp {
		return m.helpView()
	}

	var b strings.Builder

	// Header
	b.WriteString(m.headerView())
	b.WriteString("\n")

	// Column headers
	b.WriteString(m.columnHeaderView())
	b.WriteString("\n")

	// Degree grid
	b.WriteString(m.keyView())
	b.WriteString("\n")

	// Footer
	b.WriteString(m.footerView())

	return b.String()
}

func (m Model) headerView() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("14")).
		Render("KOJI")

	cur := m.currentMode()
	modeName := cur.Name
	if modeName == "" {
		modeName = "none"
	}

	info := fmt.Sprintf(" │ Tonic:%s │ Mode:%s (%d/%d) │ Steps:%s",
		theory.NoteName(m.Tonic), modeName, m.ModeIdx+1, m.Catalog.Len(),
		stepsString(cur.Steps))

	return title + info
}

func stepsString(steps []int) string {
	if len(steps) == 0 {
		return "-"
	}
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return strings.Join(parts, "-")
}

func (m Model) columnHeaderView() string {
	header := " DEG │ NOTE │ PC │ KEY │ FREQ"
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(header)
}

func (m Model) keyView() string {
	rows := m.keyRows()

	// Keep the selection on screen when the terminal is shorter than
	// the key.
	visible := m.Height - 6
	if visible < 4 {
		visible = 4
	}
	first := 0
	if m.Cursor >= visible {
		first = m.Cursor - visible + 1
	}

	var lines []string
	for i := first; i < len(rows) && i < first+visible; i++ {
		lines = append(lines, m.renderRow(rows[i], i))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderRow(row keyRow, idx int) string {
	pc := theory.FromKeynum(row.Keynum)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	if row.Note == m.Tonic.Note {
		style = style.Foreground(lipgloss.Color("14"))
	}
	if idx == m.Cursor {
		style = style.Background(lipgloss.Color("6")).Bold(true)
	}

	cursor := " "
	if idx == m.Cursor {
		cursor = ">"
	}

	cell := fmt.Sprintf("%s%3d │ %-4s │ %2d │ %3d │ %5d",
		cursor, row.Degree, theory.NoteName(pc), row.Note, row.Keynum, pc.Frequency())
	return style.Render(cell)
}

func (m Model) footerView() string {
	var b strings.Builder
	b.WriteString(m.previewView())
	b.WriteString("\n")

	keys := " [←→]Tonic [*/]Oct [Tab]Mode [↑↓]Select ]/[ Transpose [Del]Reset [?]Help [Q]Quit"
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(keys))

	return b.String()
}

// previewView shows where the selected degree lands after the pending
// stepwise transposition
func (m Model) previewView() string {
	sel := theory.FromKeynum(m.selectedRow().Keynum)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	numsteps, dir := m.Transpose, theory.Up
	switch {
	case m.Transpose == 0:
		dir = theory.Oblique
	case m.Transpose < 0:
		numsteps, dir = -m.Transpose, theory.Down
	}

	cur := m.currentMode()
	keynum, err := theory.ModalTransposition(sel, m.Tonic, cur.Steps, numsteps, dir)
	if err != nil {
		return label.Render(fmt.Sprintf(" Sel:%s │ transpose: %v", theory.NoteName(sel), err))
	}

	target := theory.FromKeynum(keynum)
	return label.Render(fmt.Sprintf(" Sel:%s (%d, %dHz) │ %s %d → %s (%d, %dHz)",
		theory.NoteName(sel), sel.Keynum(), sel.Frequency(),
		dir, numsteps,
		theory.NoteName(target), keynum, target.Frequency()))
}

func (m Model) helpView() string {
	help := `
╔══════════════════════════════════════════════════════════════════╗
║                           KOJI HELP                              ║
╠══════════════════════════════════════════════════════════════════╣
║ KEY SELECTION                                                    ║
║   ← →       Tonic down/up a semitone                             ║
║   * /       Octave up/down                                       ║
║   Tab       Next mode (Shift+Tab previous)                       ║
║                                                                  ║
║ DEGREES                                                          ║
║   ↑ ↓       Select a degree row                                  ║
║   Home/End  First/last degree                                    ║
║   ]         Transpose selection up one degree                    ║
║   [         Transpose selection down one degree                  ║
║   Del       Reset pending transposition                          ║
║                                                                  ║
║ The grid lists every degree of the current key with its pitch    ║
║ class, key number and integer frequency. The footer previews     ║
║ where the selected degree lands after the pending stepwise       ║
║ transposition.                                                   ║
║                                                                  ║
║                              [?] Close help                      ║
╚══════════════════════════════════════════════════════════════════╝
`
	return lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(help)
}
