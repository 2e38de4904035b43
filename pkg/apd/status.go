package apd

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is where an APD is in the review workflow.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusInReview Status = "in review"
	StatusReviewed Status = "reviewed"
	StatusApproved Status = "approved"
)

// Statuses lists the known statuses in workflow order.
var Statuses = []Status{StatusDraft, StatusInReview, StatusReviewed, StatusApproved}

// ParseStatus normalizes s ("In Review", " APPROVED ") to a Status.
// Unknown values are returned normalized but fail Known.
func ParseStatus(s string) Status {
	return Status(cases.Lower(language.English).String(strings.Join(strings.Fields(s), " ")))
}

// Known reports whether s is one of Statuses.
func (s Status) Known() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the display form, e.g. "In Review".
func (s Status) Label() string {
	return cases.Title(language.English).String(string(s))
}
