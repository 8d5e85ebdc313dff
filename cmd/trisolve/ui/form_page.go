package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"trisolve/internal/form"
	"trisolve/internal/logging"
	"trisolve/internal/triangle"
)

// schemaRow is the focus index of the schema selector; inputs follow it in
// field order.
const schemaRow = 0

// FormPageModel is the interactive triangle form.
type FormPageModel struct {
	schema int // index into triangle.Schemas
	inputs [6]textinput.Model
	focus  int
	last   triangle.Field

	state  form.State
	result *triangle.Result

	renderer Renderer
	styles   Styles
	width    int
}

// NewFormPageModel creates the form, pre-filled with a WSW example.
func NewFormPageModel(styles Styles, precision int) FormPageModel {
	m := FormPageModel{
		last:     form.NoField,
		styles:   styles,
		renderer: Renderer{Format: FormatText, Precision: precision, Styles: styles},
	}
	for f := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 16
		ti.Width = 12
		ti.Prompt = ""
		m.inputs[f] = ti
	}

	m.setSchema(triangle.WSW)
	m.inputs[triangle.FieldAlpha].SetValue("40")
	m.inputs[triangle.FieldBeta].SetValue("70")
	m.inputs[triangle.FieldC].SetValue("4.8")
	m.refresh()
	return m
}

// Init initializes the model.
func (m FormPageModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m FormPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case "enter":
			m.solve()
			return m, nil
		case "ctrl+r":
			m.setSchema(m.Schema())
			m.refresh()
			return m, nil
		}

		if m.focus == schemaRow {
			switch msg.String() {
			case "left", "h":
				m.cycleSchema(-1)
			case "right", "l", " ":
				m.cycleSchema(1)
			}
			return m, nil
		}
	}

	if m.focus == schemaRow {
		return m, nil
	}

	f := triangle.Field(m.focus - 1)
	before := m.inputs[f].Value()
	var cmd tea.Cmd
	m.inputs[f], cmd = m.inputs[f].Update(msg)
	if m.inputs[f].Value() != before {
		m.last = f
		m.refresh()
	}
	return m, cmd
}

// Schema returns the selected schema.
func (m FormPageModel) Schema() triangle.Schema {
	return triangle.Schemas[m.schema]
}

// State returns the derived field state.
func (m FormPageModel) State() form.State {
	return m.state
}

// Result returns the last solve, if any.
func (m FormPageModel) Result() *triangle.Result {
	return m.result
}

// Spec returns the parsed form values.
func (m FormPageModel) Spec() triangle.Spec {
	spec := triangle.Spec{Schema: m.Schema()}
	for f := triangle.FieldA; f <= triangle.FieldGamma; f++ {
		spec = spec.With(f, parseValue(m.inputs[f].Value()))
	}
	return spec
}

// Input returns the raw text of a field.
func (m FormPageModel) Input(f triangle.Field) string {
	return m.inputs[f].Value()
}

// parseValue reads a measurement; anything unreadable counts as empty.
// A decimal comma is accepted.
func parseValue(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func (m *FormPageModel) setSchema(s triangle.Schema) {
	for i, sc := range triangle.Schemas {
		if sc == s {
			m.schema = i
		}
	}
	for f := range m.inputs {
		m.inputs[f].SetValue("")
	}
	m.last = form.NoField
	m.result = nil
}

func (m *FormPageModel) cycleSchema(step int) {
	n := len(triangle.Schemas)
	next := triangle.Schemas[(m.schema+step+n)%n]
	logging.Get(logging.CategoryForm).Debug("Schema changed", zap.String("schema", string(next)))
	m.setSchema(next)
	m.refresh()
}

// refresh re-derives the field state and clears locked inputs.
func (m *FormPageModel) refresh() {
	m.result = nil
	m.state = form.Derive(m.Spec(), m.last)
	for _, f := range m.state.Disabled() {
		m.inputs[f].SetValue("")
	}
	if m.focus != schemaRow && !m.state.IsEnabled(triangle.Field(m.focus-1)) {
		m.focusOn(schemaRow)
	}
}

func (m *FormPageModel) moveFocus(step int) tea.Cmd {
	rows := len(m.inputs) + 1
	next := m.focus
	for range rows {
		next = (next + step + rows) % rows
		if next == schemaRow || m.state.IsEnabled(triangle.Field(next-1)) {
			break
		}
	}
	return m.focusOn(next)
}

func (m *FormPageModel) focusOn(row int) tea.Cmd {
	m.focus = row
	var cmd tea.Cmd
	for f := range m.inputs {
		if f == row-1 {
			cmd = m.inputs[f].Focus()
		} else {
			m.inputs[f].Blur()
		}
	}
	return cmd
}

func (m *FormPageModel) solve() {
	log := logging.Get(logging.CategoryForm)
	if !m.state.Ready {
		log.Debug("Solve requested on incomplete form", zap.String("schema", string(m.Schema())))
		return
	}
	res := triangle.Calculate(m.Spec())
	m.result = &res
	if res.OK() {
		log.Debug("Form solved", zap.String("schema", string(m.Schema())))
	} else {
		log.Debug("Form rejected", zap.Error(res.Err))
	}
}

// View renders the form.
func (m FormPageModel) View() string {
	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Title.Render("Triangle calculator") + "\n\n")

	var tabs []string
	for i, sc := range triangle.Schemas {
		switch {
		case i == m.schema && m.focus == schemaRow:
			tabs = append(tabs, s.Badge.Render(string(sc)))
		case i == m.schema:
			tabs = append(tabs, s.Focused.Render("["+string(sc)+"]"))
		default:
			tabs = append(tabs, s.Muted.Render(" "+string(sc)+" "))
		}
	}
	sb.WriteString(s.Label.Render("schema") + strings.Join(tabs, " ") + "\n\n")

	for f := triangle.FieldA; f <= triangle.FieldGamma; f++ {
		label := s.Label.Render(Symbol(f))
		input := m.inputs[f].View()
		switch {
		case !m.state.IsEnabled(f):
			input = s.Disabled.Render("—")
		case m.focus == int(f)+1:
			label = s.Focused.Width(8).Render(Symbol(f))
		}
		sb.WriteString(label + input + "\n")
	}
	sb.WriteString("\n")

	if m.state.Hint != "" {
		sb.WriteString(s.Hint.Render(m.state.Hint) + "\n")
	}
	if m.state.Problem != "" {
		sb.WriteString(s.Warning.Render(m.state.Problem) + "\n")
	}

	if m.result != nil {
		sb.WriteString("\n" + m.renderer.resultText(Item{Title: string(m.Schema()), Result: *m.result}))
		if alt, ok := triangle.AlternateSSW(m.Spec()); ok {
			var parts []string
			for f := triangle.FieldA; f <= triangle.FieldGamma; f++ {
				v := FormatSide(alt.Value(f), m.renderer.Precision)
				if !f.IsSide() {
					v = FormatAngle(alt.Value(f))
				}
				parts = append(parts, Symbol(f)+" "+v)
			}
			sb.WriteString(s.Subtitle.Render("second solution: "+strings.Join(parts, ", ")) + "\n")
		}
	}

	sb.WriteString("\n" + s.Muted.Render("tab/↓ next · ←/→ schema · enter solve · ctrl+r clear · esc quit") + "\n")
	return sb.String()
}
