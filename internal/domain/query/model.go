package query

import "time"

// Status is a proposal's workflow status.
type Status string

const (
	StatusActive    Status = "active"
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusOverdue   Status = "overdue"
)

// Health is the traffic-light health indicator for a proposal.
type Health string

const (
	HealthGreen  Health = "green"
	HealthYellow Health = "yellow"
	HealthRed    Health = "red"
)

// healthSeverity fixes the comparison order: green < yellow < red.
var healthSeverity = map[Health]int{
	HealthGreen:  0,
	HealthYellow: 1,
	HealthRed:    2,
}

// User identifies a proposal owner.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// ProjectRecord is one proposal in the collection the engine queries.
// Records are refreshed wholesale from the upstream source; the engine
// borrows read-only snapshots and never mutates them.
type ProjectRecord struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Status             Status    `json:"status"`
	PriorityLevel      int       `json:"priority_level"`
	DocumentType       string    `json:"document_type"`
	Agency             string    `json:"agency,omitempty"`
	DueDate            time.Time `json:"due_date"`
	CreatedAt          time.Time `json:"created_at"`
	Owner              User      `json:"owner"`
	ProgressPercentage int       `json:"progress_percentage"`
	HealthStatus       Health    `json:"health_status"`
	TeamSize           int       `json:"team_size"`
}
