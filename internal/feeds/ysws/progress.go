package ysws

// Progress is the user-assigned label on a program card. It is
// session-scoped; only pins are persisted.
type Progress string

const (
	ProgressNone         Progress = ""
	ProgressInProgress   Progress = "in_progress"
	ProgressInterested   Progress = "interested"
	ProgressApplied      Progress = "applied"
	ProgressUninterested Progress = "uninterested"
	ProgressCompleted    Progress = "completed"
)

// ProgressOption pairs a progress value with its display label and color.
type ProgressOption struct {
	Value Progress
	Label string
	Color string
}

// ProgressOptions is the fixed option set, in menu order.
var ProgressOptions = []ProgressOption{
	{ProgressInProgress, "In Progress", "#ec3750"},
	{ProgressInterested, "Interested", "#5bc0de"},
	{ProgressApplied, "Applied", "#f1c40f"},
	{ProgressUninterested, "Uninterested", "#8492a6"},
	{ProgressCompleted, "Completed", "#33d6a6"},
}

// Label returns the display label for a progress value, or "Set Status"
// when unset or unknown.
func (p Progress) Label() string {
	for _, opt := range ProgressOptions {
		if opt.Value == p {
			return opt.Label
		}
	}
	return "Set Status"
}

// Next cycles to the following option in menu order, wrapping from the
// last option back to unset.
func (p Progress) Next() Progress {
	for i, opt := range ProgressOptions {
		if opt.Value == p {
			if i == len(ProgressOptions)-1 {
				return ProgressNone
			}
			return ProgressOptions[i+1].Value
		}
	}
	return ProgressOptions[0].Value
}

// Color returns the display color for a progress value, defaulting to a
// neutral gray.
func (p Progress) Color() string {
	for _, opt := range ProgressOptions {
		if opt.Value == p {
			return opt.Color
		}
	}
	return "#666666"
}
