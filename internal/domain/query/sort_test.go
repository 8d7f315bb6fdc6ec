package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSort_NameCaseInsensitive(t *testing.T) {
	records := []ProjectRecord{
		{ID: "p1", Title: "zeta"},
		{ID: "p2", Title: "Alpha"},
		{ID: "p3", Title: "beta"},
	}
	sorted := Sort(records, SortSpec{Key: SortByName, Order: Ascending})
	require.Equal(t, []string{"p2", "p3", "p1"}, ids(sorted))

	sorted = Sort(records, SortSpec{Key: SortByName, Order: Descending})
	require.Equal(t, []string{"p1", "p3", "p2"}, ids(sorted))
}

func TestSort_Stable(t *testing.T) {
	records := []ProjectRecord{
		{ID: "first", PriorityLevel: 2},
		{ID: "second", PriorityLevel: 1},
		{ID: "third", PriorityLevel: 2},
		{ID: "fourth", PriorityLevel: 2},
	}
	sorted := Sort(records, SortSpec{Key: SortByPriority, Order: Ascending})
	// Equal priorities keep their input order.
	require.Equal(t, []string{"second", "first", "third", "fourth"}, ids(sorted))

	sorted = Sort(records, SortSpec{Key: SortByPriority, Order: Descending})
	require.Equal(t, []string{"first", "third", "fourth", "second"}, ids(sorted))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	original := sampleRecords()

	Sort(records, SortSpec{Key: SortByName, Order: Ascending})
	require.Empty(t, cmp.Diff(original, records))
}

func TestSort_Dates(t *testing.T) {
	sorted := Sort(sampleRecords(), SortSpec{Key: SortByDue, Order: Ascending})
	require.Equal(t, []string{"p3", "p1", "p2", "p4"}, ids(sorted))

	sorted = Sort(sampleRecords(), SortSpec{Key: SortByCreated, Order: Descending})
	require.Equal(t, []string{"p4", "p2", "p1", "p3"}, ids(sorted))
}

func TestSort_HealthSeverity(t *testing.T) {
	sorted := Sort(sampleRecords(), SortSpec{Key: SortByHealth, Order: Ascending})
	// green < yellow < red; equal severities keep input order.
	require.Equal(t, []string{"p1", "p4", "p2", "p3"}, ids(sorted))
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	records := sampleRecords()
	sorted := Sort(records, SortSpec{})
	require.Equal(t, ids(records), ids(sorted))
}

func TestDefaultOrder(t *testing.T) {
	ascending := []SortKey{SortByName, SortByStatus, SortByType, SortByOwner, SortByAgency}
	for _, key := range ascending {
		require.Equal(t, Ascending, DefaultOrder(key), "key %s", key)
	}

	descending := []SortKey{SortByCreated, SortByDue, SortByProgress, SortByPriority, SortByTeam, SortByHealth}
	for _, key := range descending {
		require.Equal(t, Descending, DefaultOrder(key), "key %s", key)
	}
}

func TestSortSpec_Toggle(t *testing.T) {
	spec := SortSpec{Key: SortByName, Order: Ascending}

	// Same key flips the direction.
	spec = spec.Toggle(SortByName)
	require.Equal(t, SortSpec{Key: SortByName, Order: Descending}, spec)
	spec = spec.Toggle(SortByName)
	require.Equal(t, SortSpec{Key: SortByName, Order: Ascending}, spec)

	// A new key resets to that key's default direction.
	spec = spec.Toggle(SortByDue)
	require.Equal(t, SortSpec{Key: SortByDue, Order: Descending}, spec)
	spec = spec.Toggle(SortByOwner)
	require.Equal(t, SortSpec{Key: SortByOwner, Order: Ascending}, spec)
}

func TestValidSortKey(t *testing.T) {
	for _, key := range []SortKey{SortByName, SortByStatus, SortByType, SortByOwner, SortByAgency, SortByCreated, SortByDue, SortByProgress, SortByPriority, SortByTeam, SortByHealth} {
		require.True(t, ValidSortKey(key), "key %s", key)
	}
	require.False(t, ValidSortKey("tick"))
	require.False(t, ValidSortKey(""))
}
