package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WireRecord is a project record as it arrives from the upstream source,
// before coercion. Upstream payloads are loosely typed: ids arrive as
// strings or numbers, owners as objects or bare names, and legacy rows
// carry "name" instead of "title".
type WireRecord struct {
	ID                 any             `json:"id"`
	Title              string          `json:"title"`
	Name               string          `json:"name"`
	Status             string          `json:"status"`
	PriorityLevel      any             `json:"priority_level"`
	DocumentType       string          `json:"document_type"`
	Agency             string          `json:"agency"`
	DueDate            string          `json:"due_date"`
	CreatedAt          string          `json:"created_at"`
	Owner              json.RawMessage `json:"owner"`
	ProgressPercentage any             `json:"progress_percentage"`
	HealthStatus       string          `json:"health_status"`
	TeamSize           any             `json:"team_size"`
}

// CoerceRecord validates and converts one wire record into a well-typed
// ProjectRecord. This is the single boundary where duck-typed upstream
// shapes are resolved, so the engine never branches on legacy fallbacks.
func CoerceRecord(w WireRecord) (ProjectRecord, error) {
	rec := ProjectRecord{
		ID:           coerceID(w.ID),
		Title:        strings.TrimSpace(w.Title),
		DocumentType: strings.TrimSpace(w.DocumentType),
		Agency:       strings.TrimSpace(w.Agency),
	}
	if rec.Title == "" {
		rec.Title = strings.TrimSpace(w.Name)
	}
	if rec.Title == "" {
		return ProjectRecord{}, fmt.Errorf("%w: record title required", ErrInvalidInput)
	}

	status, err := coerceStatus(w.Status)
	if err != nil {
		return ProjectRecord{}, err
	}
	rec.Status = status

	health, err := coerceHealth(w.HealthStatus)
	if err != nil {
		return ProjectRecord{}, err
	}
	rec.HealthStatus = health

	rec.PriorityLevel = clampInt(coerceInt(w.PriorityLevel, 3), 1, 5)
	rec.ProgressPercentage = clampInt(coerceInt(w.ProgressPercentage, 0), 0, 100)
	rec.TeamSize = coerceInt(w.TeamSize, 1)
	if rec.TeamSize < 1 {
		rec.TeamSize = 1
	}

	if rec.DueDate, err = coerceDate(w.DueDate); err != nil {
		return ProjectRecord{}, fmt.Errorf("due_date: %w", err)
	}
	if rec.CreatedAt, err = coerceDate(w.CreatedAt); err != nil {
		return ProjectRecord{}, fmt.Errorf("created_at: %w", err)
	}

	rec.Owner = coerceOwner(w.Owner)
	return rec, nil
}

func coerceID(v any) string {
	switch id := v.(type) {
	case string:
		if strings.TrimSpace(id) != "" {
			return id
		}
	case float64:
		return strconv.FormatInt(int64(id), 10)
	case int:
		return strconv.Itoa(id)
	}
	return uuid.NewString()
}

func coerceStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, nil
	case StatusDraft, "":
		return StatusDraft, nil
	case StatusSubmitted:
		return StatusSubmitted, nil
	case StatusOverdue:
		return StatusOverdue, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
	}
}

func coerceHealth(s string) (Health, error) {
	switch Health(strings.ToLower(strings.TrimSpace(s))) {
	case HealthGreen, "":
		return HealthGreen, nil
	case HealthYellow:
		return HealthYellow, nil
	case HealthRed:
		return HealthRed, nil
	default:
		return "", fmt.Errorf("%w: unknown health %q", ErrInvalidInput, s)
	}
}

func coerceInt(v any, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return parsed
		}
	}
	return def
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func coerceDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparsable date %q", ErrInvalidInput, s)
}

func coerceOwner(raw json.RawMessage) User {
	if len(raw) == 0 {
		return User{}
	}
	var owner User
	if err := json.Unmarshal(raw, &owner); err == nil && (owner.ID != "" || owner.Name != "") {
		return owner
	}
	// Legacy rows carry the owner as a bare display name.
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return User{Name: name}
	}
	return User{}
}
