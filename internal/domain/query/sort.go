package query

import (
	"cmp"
	"slices"
	"strings"
)

// SortKey names a sortable field.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByStatus   SortKey = "status"
	SortByType     SortKey = "type"
	SortByOwner    SortKey = "owner"
	SortByAgency   SortKey = "agency"
	SortByCreated  SortKey = "created"
	SortByDue      SortKey = "due"
	SortByProgress SortKey = "progress"
	SortByPriority SortKey = "priority"
	SortByTeam     SortKey = "team"
	SortByHealth   SortKey = "health"
)

// Order is a sort direction.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// SortSpec selects how results are ordered.
type SortSpec struct {
	Key   SortKey `json:"key"`
	Order Order   `json:"order"`
}

// comparators holds the ascending comparison for each sort key. String
// fields compare case-insensitively, dates chronologically, numerics
// numerically, and health by severity (green < yellow < red).
var comparators = map[SortKey]func(a, b ProjectRecord) int{
	SortByName:     func(a, b ProjectRecord) int { return compareFold(a.Title, b.Title) },
	SortByStatus:   func(a, b ProjectRecord) int { return compareFold(string(a.Status), string(b.Status)) },
	SortByType:     func(a, b ProjectRecord) int { return compareFold(a.DocumentType, b.DocumentType) },
	SortByOwner:    func(a, b ProjectRecord) int { return compareFold(a.Owner.Name, b.Owner.Name) },
	SortByAgency:   func(a, b ProjectRecord) int { return compareFold(a.Agency, b.Agency) },
	SortByCreated:  func(a, b ProjectRecord) int { return a.CreatedAt.Compare(b.CreatedAt) },
	SortByDue:      func(a, b ProjectRecord) int { return a.DueDate.Compare(b.DueDate) },
	SortByProgress: func(a, b ProjectRecord) int { return cmp.Compare(a.ProgressPercentage, b.ProgressPercentage) },
	SortByPriority: func(a, b ProjectRecord) int { return cmp.Compare(a.PriorityLevel, b.PriorityLevel) },
	SortByTeam:     func(a, b ProjectRecord) int { return cmp.Compare(a.TeamSize, b.TeamSize) },
	SortByHealth:   func(a, b ProjectRecord) int { return cmp.Compare(healthSeverity[a.HealthStatus], healthSeverity[b.HealthStatus]) },
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// ValidSortKey reports whether key is in the registry.
func ValidSortKey(key SortKey) bool {
	_, ok := comparators[key]
	return ok
}

// DefaultOrder returns the natural direction for a key: ascending for
// nominal fields, descending where "more/later/higher" reads first.
func DefaultOrder(key SortKey) Order {
	switch key {
	case SortByCreated, SortByDue, SortByProgress, SortByPriority, SortByTeam, SortByHealth:
		return Descending
	default:
		return Ascending
	}
}

// Toggle returns the SortSpec after the user selects key: the same key flips
// the direction, a new key resets to that key's default direction.
func (s SortSpec) Toggle(key SortKey) SortSpec {
	if s.Key == key {
		if s.Order == Ascending {
			return SortSpec{Key: key, Order: Descending}
		}
		return SortSpec{Key: key, Order: Ascending}
	}
	return SortSpec{Key: key, Order: DefaultOrder(key)}
}

// Sort returns the records ordered by spec. The sort is stable, so equal
// keys keep their relative order from the input; the input itself is
// never modified.
func Sort(records []ProjectRecord, spec SortSpec) []ProjectRecord {
	compare, ok := comparators[spec.Key]
	if !ok {
		return slices.Clone(records)
	}
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b ProjectRecord) int {
		result := compare(a, b)
		if spec.Order == Descending {
			return -result
		}
		return result
	})
	return out
}
