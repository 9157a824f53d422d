package components

import (
	"strings"

	"adminctl/internal/tui/design"
	"adminctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		Width:       width,
		ShowMessage: false,
	}
}

// WithMessage sets a status message
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = message != ""
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar. A message replaces the left and
// right texts while it is shown.
func (s *StatusBar) Render() string {
	style := s.getStyle()
	inner := s.Width - design.SpaceSM*2

	var content string
	if s.ShowMessage {
		content = s.Message
	} else {
		switch {
		case s.LeftText != "" && s.RightText != "":
			padding := inner - lipgloss.Width(s.LeftText) - lipgloss.Width(s.RightText)
			if padding > 0 {
				content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
			} else {
				content = s.LeftText
			}
		case s.LeftText != "":
			content = s.LeftText
		default:
			content = s.RightText
		}
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) getStyle() lipgloss.Style {
	if !s.ShowMessage {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}
