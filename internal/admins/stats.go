package admins

import (
	"math"

	"adminctl/internal/api"
)

// Stats are the activity figures shown above the table.
type Stats struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Total    int `json:"total"`
	// ActivityRate is the rounded percentage of active accounts.
	ActivityRate int `json:"activityRate"`
}

// ComputeStats derives Stats from a list.
func ComputeStats(admins []api.Admin) Stats {
	s := Stats{Total: len(admins)}
	for _, a := range admins {
		if a.Active() {
			s.Active++
		}
	}
	s.Inactive = s.Total - s.Active
	if s.Total > 0 {
		s.ActivityRate = int(math.Round(float64(s.Active) / float64(s.Total) * 100))
	}
	return s
}

// Stats is computed from the current list on every call.
func (l *List) Stats() Stats {
	return ComputeStats(l.Admins())
}
