package apd

import (
	"strconv"
	"strings"
)

// Document is an Advance Planning Document as listed on a state dashboard.
type Document struct {
	ID     string `json:"id"`
	Years  []int  `json:"years"`
	Status Status `json:"status"`
}

// Title returns the display name, e.g. "APD for 2024, 2025".
func (d Document) Title() string {
	years := make([]string, len(d.Years))
	for i, y := range d.Years {
		years[i] = strconv.Itoa(y)
	}
	return "APD for " + strings.Join(years, ", ")
}

// Progress returns the document's progress track.
func (d Document) Progress() Track {
	return Progress(d.Status)
}

// Summary is a document as shown on the dashboard.
type Summary struct {
	Document
	Title    string `json:"title"`
	Label    string `json:"label"`
	Progress Track  `json:"progress"`
}

// Summarize builds the dashboard view of d.
func (d Document) Summarize() Summary {
	return Summary{
		Document: d,
		Title:    d.Title(),
		Label:    d.Status.Label(),
		Progress: d.Progress(),
	}
}
