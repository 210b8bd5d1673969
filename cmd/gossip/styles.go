package main

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#E07A5F")
	colorTopic  = lipgloss.Color("#3D85C6")
	colorMuted  = lipgloss.Color("#8A8A8A")
	colorOK     = lipgloss.Color("#5FB97A")
	colorWarn   = lipgloss.Color("#F4D03F")
	colorError  = lipgloss.Color("#E74C3C")
)

// styles are the terminal styles used by every command.
var styles = struct {
	Title   lipgloss.Style
	Topic   lipgloss.Style
	Author  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Mine    lipgloss.Style
	Card    lipgloss.Style
	Comment lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Topic:   lipgloss.NewStyle().Foreground(colorTopic),
	Author:  lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Success: lipgloss.NewStyle().Foreground(colorOK),
	Warning: lipgloss.NewStyle().Foreground(colorWarn),
	Error:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
	Mine:    lipgloss.NewStyle().Foreground(colorOK).Italic(true),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1),
	Comment: lipgloss.NewStyle().PaddingLeft(2),
}
