package apd

// Step is one milestone on a document's progress track.
type Step struct {
	Title   string `json:"title"`
	Started bool   `json:"started"`
	Done    bool   `json:"done"`
}

// Track is the three-step progress of a document and the action offered for it.
type Track struct {
	Steps  [3]Step `json:"steps"`
	Action string  `json:"action"`
}

// Action labels.
const (
	ActionOpen           = "Open"
	ActionView           = "View"
	ActionApprovalLetter = "Approval letter"
)

// Progress returns the track for status. Unknown statuses get the default
// track: submission started, nothing done.
func Progress(status Status) Track {
	t := Track{
		Steps: [3]Step{
			{Title: "Submitted", Started: true},
			{Title: "Reviewed"},
			{Title: "Approved"},
		},
		Action: ActionView,
	}

	switch status {
	case StatusDraft:
		t.Steps[0].Title = "Drafting"
		t.Action = ActionOpen
	case StatusInReview:
		t.Steps[0].Done = true
		t.Steps[1].Started = true
		t.Steps[1].Title = "Reviewing"
	case StatusReviewed:
		t.Steps[0].Done = true
		t.Steps[1].Done = true
	case StatusApproved:
		t.Steps[0].Done = true
		t.Steps[1].Done = true
		t.Steps[2].Done = true
		t.Action = ActionApprovalLetter
	}

	return t
}

// Completed returns how many steps are done.
func (t Track) Completed() int {
	n := 0
	for _, s := range t.Steps {
		if s.Done {
			n++
		}
	}
	return n
}
