package dto

import (
	"time"

	"github.com/Mrithul03/vendroo-server/internal/domains/todo/model"
)

type CreateTodoRequest struct {
	Title       string     `json:"title"       validate:"required,max=255"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	DueDate     *time.Time `json:"due_date"    validate:"omitempty"`
}

func (c *CreateTodoRequest) ToModel() model.Todo {
	return model.Todo{
		Title:       c.Title,
		Description: c.Description,
		Completed:   false,
		DueDate:     c.DueDate,
	}
}

// UpdateTodoRequest carries a partial update. A zero-valued field is left
// unchanged, which also makes an explicitly empty title or description a
// no-op; callers cannot clear a text field through this operation.
type UpdateTodoRequest struct {
	Title       string     `db:"title"       json:"title"       validate:"omitempty,max=255"`
	Description string     `db:"description" json:"description" validate:"omitempty,max=1000"`
	Completed   *bool      `db:"completed"   json:"completed"   validate:"omitempty"`
	DueDate     *time.Time `db:"due_date"    json:"due_date"    validate:"omitempty"`
}

type TodoResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Completed = model.Completed
	r.DueDate = model.DueDate
	r.CreatedAt = model.CreatedAt
}

func FromModels(models []model.Todo) []TodoResponse {
	responses := make([]TodoResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
