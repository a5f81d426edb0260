package teaui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/spina95/time-blocking/pkg/dialog"
	"github.com/spina95/time-blocking/pkg/planner"
	"github.com/spina95/time-blocking/pkg/regroup"
	"github.com/spina95/time-blocking/pkg/task"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeCommand
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAdd
	actionEdit
	actionRegroup
)

// category item for left list
type categoryItem struct {
	name  string
	count int
}

func (c categoryItem) Title() string       { return fmt.Sprintf("%s (%d)", c.name, c.count) }
func (c categoryItem) Description() string { return "" }
func (c categoryItem) FilterValue() string { return c.name }

// todo item for right list
type todoItem struct{ t task.Todo }

func (it todoItem) Title() string {
	check := "[ ]"
	if it.t.Completed {
		check = "[x]"
	}
	line := fmt.Sprintf("%s %s", check, it.t.Title)
	if it.t.Recurring() {
		line += fmt.Sprintf(" (%s)", it.t.Recurrence)
	}
	return line
}
func (it todoItem) Description() string { return "" }
func (it todoItem) FilterValue() string { return it.t.Title }

// Model contains UI state
type Model struct {
	planner *planner.Planner
	mode    mode
	action  action

	focus int // 0: categories, 1: tasks

	catList  list.Model
	taskList list.Model

	input textinput.Model

	status     string
	showAgenda bool

	awaitingDD bool
	lastDTime  time.Time

	termWidth  int
	termHeight int

	focusDel list.DefaultDelegate
	blurDel  list.DefaultDelegate
}

// New creates a new UI model backed by the planner.
func New(p *planner.Planner) Model {
	dFocus := list.NewDefaultDelegate()
	dBlur := list.NewDefaultDelegate()
	// Unfocused list should not visually highlight the selected item
	dBlur.Styles.SelectedTitle = dBlur.Styles.NormalTitle
	dBlur.Styles.SelectedDesc = dBlur.Styles.NormalDesc
	dFocus.ShowDescription = false
	dBlur.ShowDescription = false
	dFocus.SetSpacing(0)
	dBlur.SetSpacing(0)

	l1 := list.New([]list.Item{}, dBlur, 24, 20)
	l1.Title = "Categories"
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)

	l2 := list.New([]list.Item{}, dFocus, 80, 20)
	l2.Title = "Tasks"
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		planner:  p,
		mode:     modeNormal,
		action:   actionNone,
		focus:    1,
		catList:  l1,
		taskList: l2,
		input:    ti,
		status:   "NORMAL: h/l move panes, j/k move, J/K reorder, o add, i edit, x toggle, dd delete, > regroup, v agenda, : commands, ? help",
		focusDel: dFocus,
		blurDel:  dBlur,
	}
	m.updateFocusHeaders()
	m.refresh()
	return m
}

// Init is a no-op; the stores are in-process and already loaded.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) groups() []regroup.Group {
	return regroup.ByCategory(m.planner.Todos().ForSelectedProject())
}

func (m *Model) selectedCategory() string {
	sel := m.catList.SelectedItem()
	if sel == nil {
		return ""
	}
	return sel.(categoryItem).name
}

func (m *Model) currentTodo() *task.Todo {
	sel := m.taskList.SelectedItem()
	if sel == nil {
		return nil
	}
	it, _ := sel.(todoItem)
	return &it.t
}

// refresh reloads both lists from the stores, keeping the selections stable
// where possible.
func (m *Model) refresh() {
	groups := m.groups()

	prevCat := m.selectedCategory()
	catItems := make([]list.Item, 0, len(groups))
	catIndex := 0
	for i, g := range groups {
		catItems = append(catItems, categoryItem{name: g.Category, count: len(g.Todos)})
		if g.Category == prevCat {
			catIndex = i
		}
	}
	m.catList.SetItems(catItems)
	if len(catItems) > 0 {
		m.catList.Select(catIndex)
	}

	taskIndex := m.taskList.Index()
	taskItems := make([]list.Item, 0)
	for _, g := range groups {
		if g.Category == m.selectedCategory() {
			for _, t := range g.Todos {
				taskItems = append(taskItems, todoItem{t: t})
			}
		}
	}
	m.taskList.SetItems(taskItems)
	if taskIndex >= len(taskItems) {
		taskIndex = len(taskItems) - 1
	}
	if taskIndex >= 0 {
		m.taskList.Select(taskIndex)
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
				skipListRouting = true
			}
		case modeInsert:
			switch msg.String() {
			case "enter":
				m.submitInsert()
				m.refresh()
				skipListRouting = true
			case "esc":
				m.planner.CancelDialog()
				m.mode = modeNormal
				m.action = actionNone
				m.input.Reset()
				m.input.Blur()
				m.status = "Cancelled"
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeCommand:
			switch msg.String() {
			case "enter":
				input := strings.TrimSpace(m.input.Value())
				switch input {
				case "q", "quit", "exit":
					cmds = append(cmds, tea.Quit)
				case "":
					// nothing
				default:
					m.status = fmt.Sprintf("Unknown command: %s", input)
				}
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				skipListRouting = true
			case "esc":
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				m.status = "Command cancelled"
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case ":":
				m.enterCommandMode(&cmds)
				skipListRouting = true

			// pane focus
			case "h", "left":
				m.focus = 0
				m.updateFocusHeaders()
				skipListRouting = true
			case "l", "right":
				m.focus = 1
				m.updateFocusHeaders()
				skipListRouting = true

			// movement
			case "j":
				if m.focus == 0 {
					m.catList.CursorDown()
					m.refresh()
				} else {
					m.taskList.CursorDown()
				}
			case "k":
				if m.focus == 0 {
					m.catList.CursorUp()
					m.refresh()
				} else {
					m.taskList.CursorUp()
				}
			case "g":
				if m.focus == 0 {
					m.catList.Select(0)
					m.refresh()
				} else {
					m.taskList.Select(0)
				}
			case "G":
				if m.focus == 0 {
					m.catList.Select(len(m.catList.Items()) - 1)
					m.refresh()
				} else {
					m.taskList.Select(len(m.taskList.Items()) - 1)
				}

			// reorder within the category
			case "J":
				m.shiftTodo(+1)
			case "K":
				m.shiftTodo(-1)

			// add
			case "o", "O":
				m.planner.RequestCreateTask()
				m.enterInsert(actionAdd, "New task title", "")
				cmds = append(cmds, m.focusInput()...)

			// edit
			case "i":
				if t := m.currentTodo(); t != nil {
					if err := m.planner.RequestEditTask(t.ID); err != nil {
						m.status = "ERR: " + err.Error()
						break
					}
					m.enterInsert(actionEdit, "Edit task title", t.Title)
					cmds = append(cmds, m.focusInput()...)
				}

			// toggle completion
			case "x":
				if t := m.currentTodo(); t != nil {
					if err := m.planner.Todos().UpdateCompletion(t.ID, !t.Completed); err != nil {
						m.status = "ERR: " + err.Error()
					} else {
						m.status = "Toggled"
						m.refresh()
					}
				}

			// delete with dd
			case "d":
				if t := m.currentTodo(); t != nil {
					if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
						m.deleteCurrent(t.ID)
						m.awaitingDD = false
					} else {
						m.awaitingDD = true
						m.lastDTime = time.Now()
					}
				}

			// regroup into another category
			case ">":
				if m.currentTodo() != nil {
					m.enterInsert(actionRegroup, "Move to category", "")
					cmds = append(cmds, m.focusInput()...)
				}

			// agenda pane
			case "v":
				m.showAgenda = !m.showAgenda

			case "?":
				m.mode = modeHelp

			case "r":
				m.refresh()
			case "q":
				m.status = "Use :q or :exit to quit"
				skipListRouting = true
			}
		}
	}

	// route lists updates depending on focus
	if m.mode == modeNormal && !skipListRouting {
		if m.focus == 0 {
			prev := m.selectedCategory()
			var cmd tea.Cmd
			m.catList, cmd = m.catList.Update(msg)
			cmds = append(cmds, cmd)
			if m.selectedCategory() != prev {
				m.refresh()
			}
		} else {
			var cmd tea.Cmd
			m.taskList, cmd = m.taskList.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) enterInsert(a action, placeholder, value string) {
	m.mode = modeInsert
	m.action = a
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
}

func (m *Model) focusInput() []tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := m.input.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m *Model) submitInsert() {
	input := strings.TrimSpace(m.input.Value())

	switch m.action {
	case actionAdd, actionEdit:
		state := m.planner.Dialogs().State()
		if state.Kind != dialog.KindTask || state.Task == nil {
			m.status = "No task dialog open"
			break
		}
		payload := *state.Task
		payload.Title = input
		if _, err := m.planner.SubmitTask(payload); err != nil {
			m.status = "ERR: " + err.Error()
			// validation failures keep the dialog open
			return
		}
		if m.action == actionAdd {
			m.status = "Added"
		} else {
			m.status = "Edited"
		}
	case actionRegroup:
		if t := m.currentTodo(); t != nil && input != "" {
			src := m.currentPosition()
			dst := regroup.Position{Category: input, Index: m.categoryLen(input)}
			if src.Category == dst.Category {
				m.status = "Already there"
			} else if err := m.planner.MoveTodo(src, dst); err != nil {
				m.status = "ERR: " + err.Error()
			} else {
				m.status = "Moved to " + input
			}
		}
	}

	m.mode = modeNormal
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) currentPosition() regroup.Position {
	return regroup.Position{Category: m.selectedCategory(), Index: m.taskList.Index()}
}

func (m *Model) categoryLen(name string) int {
	for _, g := range m.groups() {
		if g.Category == name {
			return len(g.Todos)
		}
	}
	return 0
}

func (m *Model) shiftTodo(delta int) {
	if m.focus != 1 || m.currentTodo() == nil {
		return
	}
	src := m.currentPosition()
	dst := regroup.Position{Category: src.Category, Index: src.Index + delta}
	if err := m.planner.MoveTodo(src, dst); err != nil {
		return
	}
	m.refresh()
	m.taskList.Select(dst.Index)
	m.status = "Reordered"
}

func (m *Model) deleteCurrent(id int64) {
	if err := m.planner.RequestDeleteTodo(id); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	if err := m.planner.ConfirmDelete(); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.status = "Deleted"
	m.refresh()
}

// View renders two lists and optional input/agenda/help overlays
func (m Model) View() string {
	left := m.catList.View()
	right := m.taskList.View()
	gap := lipgloss.NewStyle().Padding(0, 1).Render

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, gap(" "), right)

	if m.showAgenda {
		body += "\n\n" + m.agendaView()
	}

	if m.mode == modeInsert {
		prompt := ""
		switch m.action {
		case actionAdd:
			prompt = "Add: "
		case actionEdit:
			prompt = "Edit: "
		case actionRegroup:
			prompt = "Move: "
		}
		body += "\n\n" + prompt + m.input.View()
	}
	if m.mode == modeCommand {
		body += "\n\n:" + m.input.View()
	}
	if m.mode == modeHelp {
		help := "Keys: h/l switch panes, j/k move, J/K reorder, o add, i edit, x toggle, dd delete, > move to category, v agenda, :q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	modeStr := map[mode]string{modeNormal: "NORMAL", modeInsert: "INSERT", modeCommand: "CMD", modeHelp: "HELP"}[m.mode]
	status := fmt.Sprintf("[%s] %s", modeStr, m.status)
	if m.termWidth > 0 {
		status = wordwrap.String(status, m.termWidth)
	}
	status = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(status)

	return body + "\n\n" + status
}

func (m Model) agendaView() string {
	events := m.planner.Events().Events()
	if len(events) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("nothing scheduled")
	}

	lines := make([]string, 0, len(events))
	for _, e := range events {
		check := "[ ]"
		if e.Props.Completed {
			check = "[x]"
		}
		when := e.Start.Format("Mon Jan 2 15:04")
		if e.AllDay {
			when = e.Start.Format("Mon Jan 2") + " all day"
		}
		lines = append(lines, fmt.Sprintf("%s  %s %s", when, check, e.Title))
	}

	panel := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	return panel.Render(strings.Join(lines, "\n"))
}

// applySizes recalculates list sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	left := m.termWidth / 3
	if left < 24 {
		left = 24
	}
	if left > 40 {
		left = 40
	}
	right := m.termWidth - left - 4
	if right < 20 {
		right = 20
	}
	height := m.termHeight - 4
	if height < 5 {
		height = 5
	}
	m.catList.SetSize(left, height)
	m.taskList.SetSize(right, height)
}

// updateFocusHeaders updates pane titles to reflect which pane is focused.
func (m *Model) updateFocusHeaders() {
	const on = "» "
	const off = "  "
	if m.focus == 0 {
		m.catList.Title = on + "Categories"
		m.taskList.Title = off + "Tasks"
		m.catList.SetDelegate(m.focusDel)
		m.taskList.SetDelegate(m.blurDel)
	} else {
		m.catList.Title = off + "Categories"
		m.taskList.Title = on + "Tasks"
		m.catList.SetDelegate(m.blurDel)
		m.taskList.SetDelegate(m.focusDel)
	}
}

func (m *Model) enterCommandMode(cmds *[]tea.Cmd) {
	m.mode = modeCommand
	m.input.Reset()
	m.input.Placeholder = "command"
	m.input.CursorEnd()
	*cmds = append(*cmds, m.focusInput()...)
	m.status = "COMMAND: type :q or :exit to quit"
}
