package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field is one labelled input of a form
type Field struct {
	Label string
	Input textinput.Model
}

// Form is a vertical list of fields with one focused at a time
type Form struct {
	Title       string
	SubmitLabel string
	Fields      []Field
	focus       int
}

func newField(label string, secret bool) Field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = label
	ti.CharLimit = 64
	ti.Width = 32
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return Field{Label: label, Input: ti}
}

// NewLoginForm builds the login form: username, password
func NewLoginForm() *Form {
	f := &Form{
		Title:       "Login",
		SubmitLabel: "LOGIN TO QKART",
		Fields: []Field{
			newField("Username", false),
			newField("Password", true),
		},
	}
	f.Fields[0].Input.Focus()
	return f
}

// NewRegisterForm builds the registration form: username, password, confirm
func NewRegisterForm() *Form {
	f := &Form{
		Title:       "Register",
		SubmitLabel: "REGISTER NOW",
		Fields: []Field{
			newField("Username", false),
			newField("Password", true),
			newField("Confirm Password", true),
		},
	}
	f.Fields[0].Input.Focus()
	return f
}

// Focused returns the index of the focused field
func (f *Form) Focused() int {
	return f.focus
}

// OnLastField reports whether the last field has focus
func (f *Form) OnLastField() bool {
	return f.focus == len(f.Fields)-1
}

// Focus focuses the current field and starts its cursor blink
func (f *Form) Focus() tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	return f.Fields[f.focus].Input.Focus()
}

// Move shifts focus by delta, wrapping around
func (f *Form) Move(delta int) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	f.Fields[f.focus].Input.Blur()
	n := len(f.Fields)
	f.focus = ((f.focus+delta)%n + n) % n
	return f.Fields[f.focus].Input.Focus()
}

// Update forwards msg to the focused field
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.Fields[f.focus].Input, cmd = f.Fields[f.focus].Input.Update(msg)
	return cmd
}

// Value returns the text of field i
func (f *Form) Value(i int) string {
	if i < 0 || i >= len(f.Fields) {
		return ""
	}
	return f.Fields[i].Input.Value()
}

// SetValue sets the text of field i
func (f *Form) SetValue(i int, v string) {
	if i < 0 || i >= len(f.Fields) {
		return
	}
	f.Fields[i].Input.SetValue(v)
}

// Reset clears every field and focuses the first
func (f *Form) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.Reset()
		f.Fields[i].Input.Blur()
	}
	f.focus = 0
	if len(f.Fields) > 0 {
		f.Fields[0].Input.Focus()
	}
}
