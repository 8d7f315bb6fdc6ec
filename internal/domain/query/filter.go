package query

import (
	"slices"
	"strings"
	"time"
)

// DateRange names a due-date window resolved against the query instant.
type DateRange string

const (
	DateRangeNone       DateRange = "none"
	DateRangeOverdue    DateRange = "overdue"
	DateRangeNext7Days  DateRange = "next7days"
	DateRangeNext20Days DateRange = "next20days"
	DateRangeCustom     DateRange = "custom"
)

// FilterState is the set of active filter criteria. An empty set or empty
// string means the dimension imposes no constraint. Dimensions combine
// with AND; values within a set combine with OR.
type FilterState struct {
	Statuses      []Status   `json:"statuses,omitempty"`
	Priorities    []int      `json:"priorities,omitempty"`
	DocumentTypes []string   `json:"document_types,omitempty"`
	Agency        string     `json:"agency,omitempty"`
	DueDate       DateRange  `json:"due_date,omitempty"`
	CustomStart   *time.Time `json:"custom_start,omitempty"`
	CustomEnd     *time.Time `json:"custom_end,omitempty"`
}

// IsEmpty reports whether no dimension constrains the collection.
func (f FilterState) IsEmpty() bool {
	return len(f.Statuses) == 0 &&
		len(f.Priorities) == 0 &&
		len(f.DocumentTypes) == 0 &&
		strings.TrimSpace(f.Agency) == "" &&
		(f.DueDate == "" || f.DueDate == DateRangeNone)
}

// Matches reports whether rec passes every active criterion. The due-date
// windows resolve against now, truncated to the start of that day.
func (f FilterState) Matches(rec ProjectRecord, now time.Time) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, rec.Status) {
		return false
	}
	if len(f.Priorities) > 0 && !slices.Contains(f.Priorities, rec.PriorityLevel) {
		return false
	}
	if len(f.DocumentTypes) > 0 && !slices.Contains(f.DocumentTypes, rec.DocumentType) {
		return false
	}
	if agency := strings.TrimSpace(f.Agency); agency != "" {
		if !strings.Contains(strings.ToLower(rec.Agency), strings.ToLower(agency)) {
			return false
		}
	}
	return f.matchesDueDate(rec.DueDate, now)
}

func (f FilterState) matchesDueDate(due, now time.Time) bool {
	today := startOfDay(now)
	switch f.DueDate {
	case "", DateRangeNone:
		return true
	case DateRangeOverdue:
		return due.Before(today)
	case DateRangeNext7Days:
		return !due.Before(today) && !due.After(today.AddDate(0, 0, 7))
	case DateRangeNext20Days:
		return !due.Before(today) && !due.After(today.AddDate(0, 0, 20))
	case DateRangeCustom:
		// Bounds are inclusive; an absent bound is unconstrained.
		if f.CustomStart != nil && due.Before(*f.CustomStart) {
			return false
		}
		if f.CustomEnd != nil && due.After(*f.CustomEnd) {
			return false
		}
		return true
	default:
		return true
	}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Filter returns the records passing every active criterion, in input
// order. The input slice is never modified; the result is a fresh slice.
func Filter(records []ProjectRecord, state FilterState, now time.Time) []ProjectRecord {
	if state.IsEmpty() {
		return slices.Clone(records)
	}
	out := make([]ProjectRecord, 0, len(records))
	for _, rec := range records {
		if state.Matches(rec, now) {
			out = append(out, rec)
		}
	}
	return out
}
