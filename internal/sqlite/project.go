package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bidboard/bidboard/internal/domain/query"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ReplaceAll swaps the snapshot in a single transaction so readers never
// observe a partially imported collection.
func (r *ProjectRepository) ReplaceAll(ctx context.Context, records []query.ProjectRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	insert := `
		INSERT INTO projects (
			id, position, title, status, priority_level, document_type, agency,
			due_date, created_at, owner_id, owner_name, owner_email,
			progress_percentage, health_status, team_size
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for position, rec := range records {
		_, err := tx.ExecContext(ctx, insert,
			rec.ID,
			position,
			rec.Title,
			string(rec.Status),
			rec.PriorityLevel,
			rec.DocumentType,
			rec.Agency,
			rec.DueDate,
			rec.CreatedAt,
			rec.Owner.ID,
			rec.Owner.Name,
			rec.Owner.Email,
			rec.ProgressPercentage,
			string(rec.HealthStatus),
			rec.TeamSize,
		)
		if err != nil {
			return fmt.Errorf("failed to insert project %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}

// List returns the full snapshot in import order.
func (r *ProjectRepository) List(ctx context.Context) ([]query.ProjectRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, status, priority_level, document_type, agency,
		       due_date, created_at, owner_id, owner_name, owner_email,
		       progress_percentage, health_status, team_size
		FROM projects
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var records []query.ProjectRecord
	for rows.Next() {
		var rec query.ProjectRecord
		var status, health string
		var agency, ownerID, ownerName, ownerEmail sql.NullString
		var dueDate, createdAt sql.NullTime
		err := rows.Scan(
			&rec.ID,
			&rec.Title,
			&status,
			&rec.PriorityLevel,
			&rec.DocumentType,
			&agency,
			&dueDate,
			&createdAt,
			&ownerID,
			&ownerName,
			&ownerEmail,
			&rec.ProgressPercentage,
			&health,
			&rec.TeamSize,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		rec.Status = query.Status(status)
		rec.HealthStatus = query.Health(health)
		rec.Agency = agency.String
		rec.Owner = query.User{ID: ownerID.String, Name: ownerName.String, Email: ownerEmail.String}
		rec.DueDate = nullTime(dueDate)
		rec.CreatedAt = nullTime(createdAt)
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return records, nil
}

func nullTime(t sql.NullTime) time.Time {
	if t.Valid {
		return t.Time
	}
	return time.Time{}
}
