package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rkarlsen/opboard/internal/cli/formatter"
	"github.com/rkarlsen/opboard/internal/domain"
	"github.com/rkarlsen/opboard/internal/service"
)

type boardFocus int

const (
	focusAreas boardFocus = iota
	focusCategories
	focusAspects
	focusForm
)

var (
	styleSelected = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	styleCrumb    = lipgloss.NewStyle().Foreground(formatter.ColorBlue)
)

// boardModel is the interactive board: areas → categories → aspects, with
// space toggling completion and 'e' opening the category edit form. Every
// toggle and edit writes through the service before the next frame renders.
type boardModel struct {
	svc   service.BoardService
	board *domain.Board

	focus   boardFocus
	areaIdx int
	catIdx  int
	aspIdx  int

	prog progress.Model
	form *huh.Form
	formValues

	err   error
	width int
}

type formValues struct {
	title       string
	description string
	status      string
	hours       string
}

func newBoardModel(svc service.BoardService, board *domain.Board) *boardModel {
	prog := progress.New(progress.WithDefaultGradient())
	prog.ShowPercentage = false
	return &boardModel{svc: svc, board: board, prog: prog, width: 80}
}

func (m *boardModel) Init() tea.Cmd {
	return nil
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.prog.Width = max(10, min(40, msg.Width-20))
		return m, nil

	case tea.KeyMsg:
		if m.focus == focusForm {
			return m.updateForm(msg)
		}
		return m.updateNav(msg)
	}

	if m.focus == focusForm && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m *boardModel) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.move(-1)

	case "down", "j":
		m.move(1)

	case "enter", "l", "right":
		m.descend()

	case "esc", "h", "left":
		m.ascend()

	case " ":
		if m.focus == focusAspects {
			m.toggleAspect()
		}

	case "e":
		if m.focus == focusCategories || m.focus == focusAspects {
			return m.openEditForm()
		}
	}
	return m, nil
}

func (m *boardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.focus = focusAspects
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyEditForm()
		m.form = nil
		m.focus = focusCategories
	case huh.StateAborted:
		m.form = nil
		m.focus = focusCategories
	}
	return m, cmd
}

func (m *boardModel) move(delta int) {
	switch m.focus {
	case focusAreas:
		m.areaIdx = clamp(m.areaIdx+delta, len(m.board.Areas))
	case focusCategories:
		m.catIdx = clamp(m.catIdx+delta, len(m.area().Categories))
	case focusAspects:
		m.aspIdx = clamp(m.aspIdx+delta, len(m.category().Aspects))
	}
}

func (m *boardModel) descend() {
	switch m.focus {
	case focusAreas:
		if len(m.board.Areas) > 0 {
			m.focus = focusCategories
			m.catIdx = 0
		}
	case focusCategories:
		if len(m.area().Categories) > 0 {
			m.focus = focusAspects
			m.aspIdx = 0
		}
	}
}

func (m *boardModel) ascend() {
	switch m.focus {
	case focusAspects:
		m.focus = focusCategories
	case focusCategories:
		m.focus = focusAreas
	}
}

func (m *boardModel) toggleAspect() {
	cat := m.category()
	if cat == nil || m.aspIdx >= len(cat.Aspects) {
		return
	}
	asp := &cat.Aspects[m.aspIdx]
	if !asp.Applicable {
		return
	}
	m.err = m.svc.SetAspectComplete(context.Background(),
		m.area().Name, cat.Name, asp.Name, !asp.Complete)
}

func (m *boardModel) openEditForm() (tea.Model, tea.Cmd) {
	cat := m.category()
	if cat == nil {
		return m, nil
	}

	m.formValues = formValues{
		title:       cat.Title,
		description: cat.Description,
		status:      string(cat.Status),
	}
	if cat.ActualHours != nil {
		m.formValues.hours = strconv.Itoa(*cat.ActualHours)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&m.formValues.title),
			huh.NewInput().Title("Description").Value(&m.formValues.description),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Not Started", string(domain.StatusNotStarted)),
					huh.NewOption("In Progress", string(domain.StatusInProgress)),
					huh.NewOption("Complete", string(domain.StatusComplete)),
				).
				Value(&m.formValues.status),
			huh.NewInput().Title("Actual Hours").Value(&m.formValues.hours).Validate(validateOptionalInt),
		),
	).WithShowHelp(false)

	m.focus = focusForm
	return m, m.form.Init()
}

func (m *boardModel) applyEditForm() {
	cat := m.category()
	if cat == nil {
		return
	}

	status := domain.CategoryStatus(m.formValues.status)
	edit := service.CategoryEdit{
		Title:       &m.formValues.title,
		Description: &m.formValues.description,
		Status:      &status,
	}
	if h := strings.TrimSpace(m.formValues.hours); h != "" {
		if n, err := strconv.Atoi(h); err == nil {
			edit.ActualHours = &n
		}
	}
	m.err = m.svc.EditCategory(context.Background(), m.area().Name, cat.Name, edit)
}

func (m *boardModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Bold(m.board.Name))
	b.WriteString(fmt.Sprintf("  %s %3.0f%%\n\n", m.prog.ViewAs(m.board.Percent/100), m.board.Percent))

	if m.focus == focusForm && m.form != nil {
		b.WriteString(m.crumb() + "\n\n")
		b.WriteString(m.form.View())
		return b.String()
	}

	switch m.focus {
	case focusAreas:
		m.viewAreas(&b)
	case focusCategories:
		m.viewCategories(&b)
	case focusAspects:
		m.viewAspects(&b)
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n" + formatter.Dim(m.helpLine()))
	return b.String()
}

func (m *boardModel) viewAreas(b *strings.Builder) {
	for i, area := range m.board.Areas {
		line := fmt.Sprintf("%s  %s", area.Name, formatter.RenderProgress(area.Percent, 12))
		b.WriteString(m.cursorLine(line, i == m.areaIdx))
	}
}

func (m *boardModel) viewCategories(b *strings.Builder) {
	b.WriteString(m.crumb() + "\n\n")
	for i := range m.area().Categories {
		cat := &m.area().Categories[i]
		line := fmt.Sprintf("%s  %s  %s",
			cat.DisplayTitle(), formatter.StatusPill(cat.Status), formatter.RenderProgress(cat.Percent, 12))
		b.WriteString(m.cursorLine(line, i == m.catIdx))
	}
}

func (m *boardModel) viewAspects(b *strings.Builder) {
	b.WriteString(m.crumb() + "\n\n")
	cat := m.category()
	for i, asp := range cat.Aspects {
		line := fmt.Sprintf("%s %s", formatter.AspectMark(asp), asp.Name)
		if asp.Note != "" {
			line += "  " + formatter.Dim(asp.Note)
		}
		b.WriteString(m.cursorLine(line, i == m.aspIdx))
	}
}

func (m *boardModel) crumb() string {
	parts := []string{m.area().Name}
	if m.focus == focusAspects || m.focus == focusForm {
		parts = append(parts, m.category().DisplayTitle())
	}
	return styleCrumb.Render(strings.Join(parts, " / "))
}

func (m *boardModel) cursorLine(line string, selected bool) string {
	if selected {
		return styleSelected.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (m *boardModel) helpLine() string {
	switch m.focus {
	case focusAspects:
		return "space toggle · e edit · esc back · q quit"
	case focusCategories:
		return "enter open · e edit · esc back · q quit"
	default:
		return "enter open · q quit"
	}
}

func (m *boardModel) area() *domain.Area {
	if m.areaIdx >= len(m.board.Areas) {
		return nil
	}
	return &m.board.Areas[m.areaIdx]
}

func (m *boardModel) category() *domain.Category {
	area := m.area()
	if area == nil || m.catIdx >= len(area.Categories) {
		return nil
	}
	return &area.Categories[m.catIdx]
}

func clamp(v, n int) int {
	if n == 0 || v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
