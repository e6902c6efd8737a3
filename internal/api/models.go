package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rfelton/taskboard-api/internal/domain"
)

// dueDateLayout is the wire format for task due dates.
const dueDateLayout = "2006-01-02"

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// RegisterResponse is the public-safe projection of a newly created account.
// It deliberately carries nothing but id, username and email; the password
// hash never leaves the store layer.
type RegisterResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    string    `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh
// endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// CreateTaskRequest defines the payload for creating a task. There is no
// owner field: ownership always comes from the authenticated caller, and any
// owner value a client smuggles into the JSON is dropped at decode time.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required,max=255"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"    validate:"omitempty,datetime=2006-01-02"`
}

// UpdateTaskRequest defines the payload for a full task update (PUT).
// All mutable fields are replaced; absent optional fields are cleared.
type UpdateTaskRequest struct {
	Title       string  `json:"title"       validate:"required,max=255"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"    validate:"omitempty,datetime=2006-01-02"`
	Completed   bool    `json:"completed"`
}

// PatchTaskRequest defines the payload for a partial task update (PATCH).
// Only supplied fields change. DueDate is raw JSON so that an explicit null
// (clear the date) can be told apart from an absent key (leave it alone).
type PatchTaskRequest struct {
	Title       *string         `json:"title"       validate:"omitempty,min=1,max=255"`
	Description *string         `json:"description"`
	DueDate     json.RawMessage `json:"due_date"`
	Completed   *bool           `json:"completed"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     *string   `json:"due_date"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	var dueDate *string
	if task.DueDate != nil {
		d := task.DueDate.Format(dueDateLayout)
		dueDate = &d
	}

	return TaskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     dueDate,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// tasksToResponse converts a slice of tasks, always yielding a non-nil slice
// so an empty listing serializes as [] rather than null.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

// parseDueDate parses an optional YYYY-MM-DD string into a UTC time.
func parseDueDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dueDateLayout, *s)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}
