package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"qkart/internal/domain"
	"qkart/internal/ui/views"
)

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// RenderProductDetails renders the details page of a product for the pager
func RenderProductDetails(p domain.Product) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("36")).
		MarginBottom(1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Width(10)

	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(label), value))
	}
	row("Price", views.FormatCost(p.Cost))
	row("Rating", starStyle.Render(strings.Repeat("★", p.Stars())+strings.Repeat("☆", domain.MaxRating-p.Stars())))
	row("Category", p.Category)
	row("ID", p.ID)
	if p.Image != "" {
		row("Image", p.Image)
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press q to return to the products"))
	return b.String()
}
