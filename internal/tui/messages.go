package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-score-board/models"
)

// NavigateTo switches the root router to another page. An optional Payload is
// re-dispatched to the new page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes the login/register flow. On success the root router
// quits and hands the session back to the caller.
type AuthResult struct {
	Err     error
	Session models.Session
}
