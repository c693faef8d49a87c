package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FieldView is one rendered form field
type FieldView struct {
	Label   string
	Input   string
	Focused bool
}

// FormView is everything needed to draw the login or register form
type FormView struct {
	Title       string
	SubmitLabel string
	Fields      []FieldView
	Submitting  bool
	Footnote    string
}

// FormRenderer renders the auth forms
type FormRenderer struct {
	styles *Styles
}

// NewFormRenderer creates a new form renderer
func NewFormRenderer(styles *Styles) *FormRenderer {
	return &FormRenderer{
		styles: styles,
	}
}

// RenderForm renders the form centered in width
func (f *FormRenderer) RenderForm(form FormView, spinner string, width int) string {
	var b strings.Builder
	b.WriteString(f.styles.FormTitle.Render(form.Title))
	b.WriteString("\n")

	for _, field := range form.Fields {
		label := f.styles.FormLabel.Render(field.Label)
		marker := "  "
		if field.Focused {
			label = f.styles.FormFocused.Render(field.Label)
			marker = f.styles.FormFocused.Render("> ")
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(marker)
		b.WriteString(field.Input)
		b.WriteString("\n\n")
	}

	if form.Submitting {
		b.WriteString(spinner + " ")
		b.WriteString(f.styles.Dim.Render(form.SubmitLabel))
	} else {
		b.WriteString(f.styles.ButtonPrimary.Render(form.SubmitLabel))
	}
	if form.Footnote != "" {
		b.WriteString("\n\n")
		b.WriteString(f.styles.Dim.Render(form.Footnote))
	}

	box := f.styles.FormBox.Render(b.String())
	if width <= 0 {
		return box
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
