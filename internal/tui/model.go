package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkotrlik/ordertui/internal/editor"
	"github.com/vkotrlik/ordertui/internal/gorder"
	"github.com/vkotrlik/ordertui/internal/history"
	"github.com/vkotrlik/ordertui/internal/runner"
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	badHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	focusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D13D"))
)

const pollInterval = 300 * time.Millisecond

type pollMsg time.Time

// Options configures the editor model.
type Options struct {
	Config   *editor.Config
	DocPath  string
	Engine   *gorder.Engine
	History  *history.Store
	HideHelp bool
}

// Model implements the Bubble Tea configuration editor.
type Model struct {
	cfg      *editor.Config
	docPath  string
	engine   *gorder.Engine
	store    *history.Store
	run      *runner.Runner
	hideHelp bool

	sections []section
	focus    int

	input   textinput.Model
	editing bool
	loading bool

	width  int
	height int

	status    string
	statusErr bool
}

// NewModel constructs the configuration editor.
func NewModel(opts Options) *Model {
	input := textinput.New()
	input.Prompt = ""
	m := &Model{
		cfg:      opts.Config,
		docPath:  opts.DocPath,
		engine:   opts.Engine,
		store:    opts.History,
		run:      &runner.Runner{},
		input:    input,
		hideHelp: opts.HideHelp,
	}
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case pollMsg:
		return m.handlePoll()
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditingKey(msg)
		}
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEscape:
		m.editing = false
		m.loading = false
		m.setStatus("", false)
		return m, nil
	case tea.KeyEnter:
		if m.loading {
			return m.finishImport()
		}
		f := m.focusedField()
		if f != nil && f.commit != nil {
			if err := f.commit(m.input.Value()); err != nil {
				m.setStatus(err.Error(), true)
				return m, nil
			}
		}
		m.editing = false
		m.rebuild()
		m.setStatus("", false)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC, msg.String() == "q":
		return m, tea.Quit
	case msg.Type == tea.KeyUp, msg.String() == "k":
		m.moveFocus(-1)
	case msg.Type == tea.KeyDown, msg.String() == "j", msg.Type == tea.KeyTab:
		m.moveFocus(1)
	case msg.Type == tea.KeyLeft, msg.String() == "h":
		m.cycleFocused(-1)
	case msg.Type == tea.KeyRight, msg.String() == "l":
		m.cycleFocused(1)
	case msg.Type == tea.KeyEnter:
		f := m.focusedField()
		if f == nil {
			return m, nil
		}
		if f.kind == fieldText {
			m.input.SetValue(f.value())
			m.input.CursorEnd()
			m.input.Focus()
			m.editing = true
			return m, textinput.Blink
		}
		m.cycleFocused(1)
	case msg.String() == "s":
		m.saveDocument()
	case msg.String() == "i":
		m.input.SetValue(m.docPath)
		m.input.CursorEnd()
		m.input.Focus()
		m.editing = true
		m.loading = true
		return m, textinput.Blink
	case msg.String() == "r":
		return m.startRun()
	}
	return m, nil
}

func (m *Model) handlePoll() (tea.Model, tea.Cmd) {
	if result, ok := m.run.Take(); ok {
		if result.Err != nil {
			m.setStatus(fmt.Sprintf("analysis failed after %s: %v", result.Duration.Round(time.Millisecond), result.Err), true)
		} else {
			m.setStatus(fmt.Sprintf("analysis finished in %s, results written to %s", result.Duration.Round(time.Millisecond), m.cfg.Output.YAML), false)
		}
		return m, nil
	}
	if m.run.Running() {
		return m, poll()
	}
	return m, nil
}

func poll() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m *Model) startRun() (tea.Model, tea.Cmd) {
	analysis, err := editor.ToAnalysis(m.cfg)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	record := m.buildRecord(analysis)
	job := func() error {
		started := time.Now()
		runErr := m.engine.Run(context.Background(), analysis)
		m.recordRun(record, started, runErr)
		return runErr
	}
	if err := m.run.Start(job); err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	m.setStatus("analysis running...", false)
	return m, poll()
}

type runRecord struct {
	structure  string
	trajectory []string
	kind       string
	outputYAML string
	document   string
}

func (m *Model) buildRecord(a *gorder.Analysis) runRecord {
	record := runRecord{
		structure:  a.Structure,
		trajectory: append([]string(nil), a.Trajectory...),
		kind:       m.cfg.Kind.String(),
		outputYAML: a.OutputYAML,
	}
	if data, err := a.Bytes(); err == nil {
		record.document = string(data)
	}
	return record
}

// recordRun runs on the worker goroutine after the engine exits.
func (m *Model) recordRun(record runRecord, started time.Time, runErr error) {
	if m.store == nil {
		return
	}
	finished := time.Now()
	run := history.Run{
		StartedAt:  started,
		FinishedAt: finished,
		Structure:  record.structure,
		Trajectory: record.trajectory,
		Kind:       record.kind,
		OutputYAML: record.outputYAML,
		Document:   record.document,
		Success:    runErr == nil,
		DurationMs: finished.Sub(started).Milliseconds(),
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}
	if _, err := m.store.InsertRun(context.Background(), run); err != nil {
		logErrf("failed to record run: %v\n", err)
	}
}

// finishImport replaces the editor state with an imported document.
// The current state is kept untouched unless the whole import succeeds.
func (m *Model) finishImport() (tea.Model, tea.Cmd) {
	m.editing = false
	m.loading = false
	path := strings.TrimSpace(m.input.Value())
	if path == "" {
		m.setStatus("", false)
		return m, nil
	}
	analysis, err := gorder.Load(path)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	cfg, err := editor.FromAnalysis(analysis)
	if err != nil {
		m.setStatus(fmt.Sprintf("failed to import %s: %v", path, err), true)
		return m, nil
	}
	m.cfg = cfg
	m.docPath = path
	m.focus = 0
	m.rebuild()
	m.setStatus(fmt.Sprintf("imported %s", path), false)
	return m, nil
}

func (m *Model) saveDocument() {
	analysis, err := editor.ToAnalysis(m.cfg)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	path := m.docPath
	if path == "" {
		path = "analysis.yaml"
	}
	if err := analysis.Save(path); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("saved %s", path), false)
}

func (m *Model) rebuild() {
	m.sections = buildSections(m.cfg, &m.docPath)
	if m.focus >= m.fieldCount() {
		m.focus = m.fieldCount() - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

func (m *Model) fieldCount() int {
	count := 0
	for _, s := range m.sections {
		count += len(s.fields)
	}
	return count
}

func (m *Model) focusedField() *field {
	index := 0
	for si := range m.sections {
		for fi := range m.sections[si].fields {
			if index == m.focus {
				return &m.sections[si].fields[fi]
			}
			index++
		}
	}
	return nil
}

func (m *Model) moveFocus(delta int) {
	count := m.fieldCount()
	if count == 0 {
		return
	}
	m.focus = ((m.focus+delta)%count + count) % count
	m.setStatus("", false)
}

func (m *Model) cycleFocused(delta int) {
	f := m.focusedField()
	if f == nil || f.cycle == nil {
		return
	}
	f.cycle(delta)
	m.rebuild()
	m.setStatus("", false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// View implements tea.Model.
func (m *Model) View() string {
	lines, focusedLine := m.buildLines()
	body := m.visibleWindow(lines, focusedLine)
	return strings.Join(append(body, m.renderFooter()...), "\n")
}

func (m *Model) buildLines() ([]string, int) {
	title := "gorder analysis"
	if m.cfg.Valid() {
		title += " " + okStyle.Render("[complete]")
	} else {
		title += " " + errorStyle.Render("[incomplete]")
	}
	lines := []string{titleStyle.Render(title), ""}
	focusedLine := 0

	index := 0
	for _, s := range m.sections {
		header := headerStyle
		if !s.ok() {
			header = badHeaderStyle
		}
		lines = append(lines, header.Render(s.name))
		for fi := range s.fields {
			f := &s.fields[fi]
			focused := index == m.focus
			lines = append(lines, m.renderField(f, focused))
			if focused {
				focusedLine = len(lines) - 1
			}
			index++
		}
		lines = append(lines, "")
	}
	return lines, focusedLine
}

func (m *Model) renderField(f *field, focused bool) string {
	marker := "  "
	label := labelStyle.Render(f.label + ":")
	if focused {
		marker = focusStyle.Render("> ")
		label = focusStyle.Render(f.label + ":")
	}
	if focused && m.editing && !m.loading {
		return marker + label + " " + m.input.View()
	}
	value := f.value()
	switch f.kind {
	case fieldChoice, fieldToggle:
		value = "‹" + value + "›"
	}
	return marker + label + " " + valueStyle.Render(value)
}

func (m *Model) visibleWindow(lines []string, focusedLine int) []string {
	footerHeight := len(m.renderFooter())
	if m.height == 0 || len(lines)+footerHeight <= m.height {
		return lines
	}
	visible := m.height - footerHeight
	if visible < 1 {
		visible = 1
	}
	top := focusedLine - visible/2
	if top < 0 {
		top = 0
	}
	if top+visible > len(lines) {
		top = len(lines) - visible
	}
	return lines[top : top+visible]
}

func (m *Model) renderFooter() []string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	if m.loading {
		return []string{labelStyle.Render("import config:") + " " + m.input.View()}
	}
	var footer []string
	if !m.hideHelp {
		help := "enter edit/cycle · arrows move · i import · s save · r run · q quit"
		footer = append(footer, footerStyle.Render(help))
	}
	status := m.status
	if m.run.Running() {
		status = "analysis running..."
	}
	if status == "" {
		return footer
	}
	style := footerStyle
	if m.statusErr {
		style = errorStyle
	}
	for _, line := range strings.Split(wrapText(status, width), "\n") {
		footer = append(footer, style.Render(line))
	}
	return footer
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
