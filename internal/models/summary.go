package models

// Summary is the per-event attendance rollup, recomputed from the live
// responses on every request. Status counts always cover every response;
// the adults/children sums honor the event's include-maybe toggle and
// never include not_going responses.
type Summary struct {
	All         int  `json:"all"`
	Going       int  `json:"going"`
	Maybe       int  `json:"maybe"`
	NotGoing    int  `json:"not_going"`
	Adults      int  `json:"adults"`
	Children    int  `json:"children"`
	CountsMaybe bool `json:"include_maybe_in_counts"`
}

// Summarize rolls up responses for an event whose include-maybe toggle
// is countMaybe.
func Summarize(responses []*Response, countMaybe bool) Summary {
	s := Summary{CountsMaybe: countMaybe}
	for _, r := range responses {
		s.All++
		switch r.Status {
		case StatusGoing:
			s.Going++
		case StatusMaybe:
			s.Maybe++
		case StatusNotGoing:
			s.NotGoing++
		}

		counted := r.Status == StatusGoing || (countMaybe && r.Status == StatusMaybe)
		if counted {
			s.Adults += r.Adults()
			s.Children += r.Children
		}
	}
	return s
}
