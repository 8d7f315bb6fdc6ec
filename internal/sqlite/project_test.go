package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/bidboard/bidboard/internal/domain/query"
	"github.com/stretchr/testify/require"
)

func testRecord(id, title string) query.ProjectRecord {
	return query.ProjectRecord{
		ID:                 id,
		Title:              title,
		Status:             query.StatusActive,
		PriorityLevel:      2,
		DocumentType:       "RFP",
		Agency:             "Department of Energy",
		DueDate:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:          time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
		Owner:              query.User{ID: "u1", Name: "Jordan Reyes", Email: "jordan@example.gov"},
		ProgressPercentage: 40,
		HealthStatus:       query.HealthYellow,
		TeamSize:           3,
	}
}

func TestProjectRepository_ReplaceAllAndList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	first := []query.ProjectRecord{testRecord("p1", "Broadband Grant"), testRecord("p2", "Airfield Upgrade")}
	require.NoError(t, repo.ReplaceAll(ctx, first))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, "p1", listed[0].ID)
	require.Equal(t, "p2", listed[1].ID)
	require.Equal(t, first[0].Title, listed[0].Title)
	require.Equal(t, first[0].Owner, listed[0].Owner)
	require.Equal(t, first[0].HealthStatus, listed[0].HealthStatus)
	require.True(t, first[0].DueDate.Equal(listed[0].DueDate))

	// A second import replaces the snapshot wholesale.
	second := []query.ProjectRecord{testRecord("p3", "Water Treatment Study")}
	require.NoError(t, repo.ReplaceAll(ctx, second))

	listed, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "p3", listed[0].ID)
}

func TestProjectRepository_ListPreservesImportOrder(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	// Deliberately not alphabetical; List must return import order,
	// not id order.
	records := []query.ProjectRecord{
		testRecord("z9", "Zulu"),
		testRecord("a1", "Alpha"),
		testRecord("m5", "Mike"),
	}
	require.NoError(t, repo.ReplaceAll(ctx, records))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, "z9", listed[0].ID)
	require.Equal(t, "a1", listed[1].ID)
	require.Equal(t, "m5", listed[2].ID)
}

func TestProjectRepository_EmptySnapshot(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, nil))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, listed)
}
