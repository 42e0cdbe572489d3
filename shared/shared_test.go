package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mrithul03/vendroo-server/shared"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *bool
	}{
		{name: "true", value: "true", want: boolPtr(true)},
		{name: "false", value: "false", want: boolPtr(false)},
		{name: "empty", value: "", want: nil},
		{name: "garbage", value: "yes please", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.value)

			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestStatusToCompleted(t *testing.T) {
	completed := shared.StatusToCompleted("completed")
	assert.NotNil(t, completed)
	assert.True(t, *completed)

	pending := shared.StatusToCompleted("pending")
	assert.NotNil(t, pending)
	assert.False(t, *pending)

	assert.Nil(t, shared.StatusToCompleted(""))
	assert.Nil(t, shared.StatusToCompleted("done"))
}

func TestUpdateFields(t *testing.T) {
	type updateTodo struct {
		Title       string     `db:"title"`
		Description string     `db:"description"`
		Completed   *bool      `db:"completed"`
		DueDate     *time.Time `db:"due_date"`
		Ignored     string
	}

	due := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		req  updateTodo
		want map[string]any
	}{
		{
			name: "only supplied fields are collected",
			req:  updateTodo{Title: "new title", Completed: boolPtr(true)},
			want: map[string]any{"title": "new title", "completed": boolPtr(true)},
		},
		{
			name: "empty strings are treated as absent",
			req:  updateTodo{Title: "", Description: ""},
			want: map[string]any{},
		},
		{
			name: "explicit false completed is still an update",
			req:  updateTodo{Completed: boolPtr(false)},
			want: map[string]any{"completed": boolPtr(false)},
		},
		{
			name: "due date pointer",
			req:  updateTodo{DueDate: &due},
			want: map[string]any{"due_date": &due},
		},
		{
			name: "fields without db tag are skipped",
			req:  updateTodo{Ignored: "nope"},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.UpdateFields(tt.req))
		})
	}
}

func boolPtr(v bool) *bool {
	return &v
}
