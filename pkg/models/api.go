package models

import "time"

// ErrorResponse is the generic API error shape
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserInfo is the public view of a user account
type UserInfo struct {
	ID               int    `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	EmploymentStatus string `json:"employment_status"`
}

// AuthResponse is returned on successful authentication
type AuthResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user,omitempty"`
}

// SyncWindowRequest carries an optional sync window; both bounds default at
// the handler (since: two hours ago, until: now).
type SyncWindowRequest struct {
	Since string `query:"since" validate:"omitempty"`
	Until string `query:"until" validate:"omitempty"`
}

// SyncRunResponse summarizes one sync run for the status endpoint.
type SyncRunResponse struct {
	Trigger     string         `json:"trigger"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Inserted    int            `json:"inserted"`
	Updated     int            `json:"updated"`
	Skipped     int            `json:"skipped"`
	SkipReasons map[string]int `json:"skip_reasons,omitempty"`
	Status      string         `json:"status"`
	Error       string         `json:"error,omitempty"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  time.Time      `json:"finished_at"`
}

// CheckResponse reports the ledger row count for an owner and date.
type CheckResponse struct {
	Owner string `json:"owner"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ExportRequest asks for a ledger export over a date window.
type ExportRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Format    string `json:"format" validate:"omitempty,oneof=xlsx csv"`
}

// ExportResponse describes a finished export file.
type ExportResponse struct {
	FileName  string    `json:"file_name"`
	Format    string    `json:"format"`
	RowCount  int       `json:"row_count"`
	S3Key     string    `json:"s3_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
