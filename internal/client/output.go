package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/eapd/pkg/apd"
	"github.com/dmitrymomot/eapd/pkg/session"
)

// transitionLine renders a snapshot as "EVENT -> state". The initial
// snapshot renders as "".
func transitionLine(s session.Snapshot) string {
	if s.Event == "" {
		return ""
	}
	line := fmt.Sprintf("%-22s -> %s", s.Event, s.Session.Name())
	if f, ok := s.Session.(session.Failed); ok && f.Reason != "" {
		line += ": " + f.Reason
	}
	if s.Event == session.ActionProfileEditError && s.Profile.Error {
		line += " (profile update failed)"
	}
	return line
}

func displayName(p session.Profile) string {
	switch {
	case p.Name != "":
		return p.Name
	case p.Email != "":
		return p.Email
	default:
		return p.ID
	}
}

func printProfile(w io.Writer, p session.Profile) {
	rows := [][2]string{
		{"id", p.ID},
		{"name", p.Name},
		{"email", p.Email},
		{"position", p.Position},
		{"phone", p.Phone},
		{"state", strings.ToUpper(p.State)},
	}
	for _, row := range rows {
		if row[1] != "" {
			fmt.Fprintf(w, "  %-9s %s\n", row[0]+":", row[1])
		}
	}
}

func printTrack(w io.Writer, t apd.Track) {
	for i, step := range t.Steps {
		mark := "[ ]"
		switch {
		case step.Done:
			mark = "[x]"
		case step.Started:
			mark = "[~]"
		}
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, mark, step.Title)
	}
	fmt.Fprintf(w, "  action: %s\n", t.Action)
}
