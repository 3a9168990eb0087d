// Package addusermodal renders the add-user form as a terminal modal.
package addusermodal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/employeeform"
	employeeformerrors "github.com/Ziyadh-ali/workwave-client-sub001/internal/employeeform/errors"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/apperror"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focus positions after the form fields
const (
	focusSubmit = iota + 1000
	focusCancel
)

var labels = map[employeeform.Field]string{
	employeeform.FieldFullName:        "Full name",
	employeeform.FieldEmail:           "Email",
	employeeform.FieldRole:            "Role",
	employeeform.FieldDepartment:      "Department",
	employeeform.FieldSalary:          "Salary",
	employeeform.FieldPassword:        "Password",
	employeeform.FieldConfirmPassword: "Confirm password",
}

type selectField struct {
	options  []employeeform.Option
	selected int // -1 until the user picks one
}

func (s selectField) value() string {
	if s.selected < 0 {
		return ""
	}
	return s.options[s.selected].Value
}

// Model is the Bubble Tea model for the add-user modal.
type Model struct {
	ctx  context.Context
	form *employeeform.Controller

	inputs  map[employeeform.Field]textinput.Model
	selects map[employeeform.Field]*selectField

	// focus is an index into employeeform.Fields, or focusSubmit/focusCancel
	focus        int
	showPassword bool

	status    string
	submitted bool
	cancelled bool
}

func NewModel(ctx context.Context, onAddUser employeeform.UserAdder) Model {
	opts := employeeform.Options()
	m := Model{
		ctx:    ctx,
		form:   employeeform.NewController(onAddUser),
		inputs: make(map[employeeform.Field]textinput.Model),
		selects: map[employeeform.Field]*selectField{
			employeeform.FieldRole:       {options: opts.Roles, selected: -1},
			employeeform.FieldDepartment: {options: opts.Departments, selected: -1},
		},
	}

	placeholders := map[employeeform.Field]string{
		employeeform.FieldFullName:        "Jane Doe",
		employeeform.FieldEmail:           "jane@company.com",
		employeeform.FieldSalary:          "50000",
		employeeform.FieldPassword:        "At least 8 characters",
		employeeform.FieldConfirmPassword: "Repeat password",
	}
	for f, ph := range placeholders {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.CharLimit = 128
		ti.Width = 32
		ti.Prompt = ""
		if isPassword(f) {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		m.inputs[f] = ti
	}

	m.setFocus(0)
	return m
}

func (m Model) Submitted() bool { return m.submitted }

func (m Model) Cancelled() bool { return m.cancelled }

// Form exposes the underlying controller, mainly for inspection in tests.
func (m Model) Form() *employeeform.Controller { return m.form }

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		m.form.Reset()
		return m, tea.Quit

	case "tab", "down":
		m.blurCurrent()
		m.setFocus(m.nextFocus(1))
		return m, nil

	case "shift+tab", "up":
		m.blurCurrent()
		m.setFocus(m.nextFocus(-1))
		return m, nil

	case "ctrl+r":
		m.togglePasswordVisibility()
		return m, nil

	case "left", "right":
		if f, ok := m.focusedField(); ok {
			if sel, isSelect := m.selects[f]; isSelect {
				m.cycleSelect(f, sel, key.String() == "right")
				return m, nil
			}
		}

	case "enter":
		if m.focus == focusCancel {
			m.cancelled = true
			m.form.Reset()
			return m, tea.Quit
		}
		return m.submit()
	}

	f, ok := m.focusedField()
	if !ok {
		return m, nil
	}
	ti, isInput := m.inputs[f]
	if !isInput {
		return m, nil
	}

	var cmd tea.Cmd
	ti, cmd = ti.Update(msg)
	_ = m.form.SetField(f, ti.Value())

	// Reflect input-time normalization (negative salary becomes 0).
	if normalized, _ := m.form.Values().Get(f); normalized != ti.Value() {
		ti.SetValue(normalized)
	}
	m.inputs[f] = ti
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.blurCurrent()
	_, err := m.form.Submit(m.ctx)
	switch {
	case err == nil:
		m.submitted = true
		m.status = "User added"
		return m, tea.Quit
	case errors.Is(err, employeeformerrors.ErrFormInvalid):
		m.status = "Please fix the highlighted fields"
		m.focusFirstInvalid()
	default:
		m.status = apperror.ToHTTP(err).Message
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Add New User"))
	b.WriteString("\n")

	for i, f := range employeeform.Fields {
		label := LabelStyle
		if m.focus == i {
			label = FocusedLabelStyle
		}
		b.WriteString(label.Render(labels[f]))
		b.WriteString(m.renderControl(f))
		b.WriteString("\n")
		if msg := m.form.VisibleError(f); msg != "" {
			b.WriteString(ErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	submit, cancel := ButtonStyle, ButtonStyle
	if m.focus == focusSubmit {
		submit = FocusedButtonStyle
	}
	if m.focus == focusCancel {
		cancel = FocusedButtonStyle
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, submit.Render("Add User"), cancel.Render("Cancel")))

	if m.status != "" {
		b.WriteString("\n\n")
		style := StatusErrorStyle
		if m.submitted {
			style = StatusSuccessStyle
		}
		b.WriteString(style.Render(m.status))
	}

	eye := "show"
	if m.showPassword {
		eye = "hide"
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(fmt.Sprintf("tab/↓ next • shift+tab/↑ prev • ←/→ choose • ctrl+r %s passwords • enter submit • esc cancel", eye)))

	return ModalStyle.Render(b.String())
}

func (m Model) renderControl(f employeeform.Field) string {
	if sel, ok := m.selects[f]; ok {
		text := "Select " + strings.ToLower(labels[f])
		if sel.selected >= 0 {
			text = sel.options[sel.selected].Label
		}
		return "‹ " + text + " ›"
	}
	return m.inputs[f].View()
}

func (m Model) focusedField() (employeeform.Field, bool) {
	if m.focus < 0 || m.focus >= len(employeeform.Fields) {
		return "", false
	}
	return employeeform.Fields[m.focus], true
}

// nextFocus walks fields, then Submit, then Cancel, wrapping around.
func (m Model) nextFocus(step int) int {
	order := make([]int, 0, len(employeeform.Fields)+2)
	for i := range employeeform.Fields {
		order = append(order, i)
	}
	order = append(order, focusSubmit, focusCancel)

	for i, pos := range order {
		if pos == m.focus {
			return order[(i+step+len(order))%len(order)]
		}
	}
	return 0
}

func (m *Model) setFocus(pos int) {
	m.focus = pos
	for f, ti := range m.inputs {
		if fieldIndex(f) == pos {
			ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[f] = ti
	}
}

// blurCurrent marks the focused field touched, which surfaces its error.
func (m *Model) blurCurrent() {
	if f, ok := m.focusedField(); ok {
		_ = m.form.MarkTouched(f)
	}
}

func (m *Model) cycleSelect(f employeeform.Field, sel *selectField, forward bool) {
	n := len(sel.options)
	switch {
	case sel.selected < 0 && forward:
		sel.selected = 0
	case sel.selected < 0:
		sel.selected = n - 1
	case forward:
		sel.selected = (sel.selected + 1) % n
	default:
		sel.selected = (sel.selected - 1 + n) % n
	}
	_ = m.form.SetField(f, sel.value())
}

func (m *Model) togglePasswordVisibility() {
	m.showPassword = !m.showPassword
	mode := textinput.EchoPassword
	if m.showPassword {
		mode = textinput.EchoNormal
	}
	for f, ti := range m.inputs {
		if isPassword(f) {
			ti.EchoMode = mode
			m.inputs[f] = ti
		}
	}
}

func (m *Model) focusFirstInvalid() {
	for i, f := range employeeform.Fields {
		if m.form.Error(f) != "" {
			m.setFocus(i)
			return
		}
	}
}

func fieldIndex(f employeeform.Field) int {
	for i, known := range employeeform.Fields {
		if known == f {
			return i
		}
	}
	return -1
}

func isPassword(f employeeform.Field) bool {
	return f == employeeform.FieldPassword || f == employeeform.FieldConfirmPassword
}
