package main

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	badgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	// Bar segments paint both foreground and background so stacked bars
	// read as solid blocks.
	infoBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Background(lipgloss.Color("39"))
	warnBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Background(lipgloss.Color("208"))
	errorBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(lipgloss.Color("196"))

	infoTextStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	warnTextStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	errorTextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	legendTotalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)
