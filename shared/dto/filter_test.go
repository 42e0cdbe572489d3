package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mrithul03/vendroo-server/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq",
			filter:    dto.Filter{Field: "completed", Value: true, Operator: dto.FilterOperatorEq},
			wantWhere: "completed = :completed",
			wantArgs:  map[string]any{"completed": true},
		},
		{
			name:      "like wraps value in wildcards",
			filter:    dto.Filter{Field: "title", Value: "milk", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(title) LIKE LOWER(:title)",
			wantArgs:  map[string]any{"title": "%milk%"},
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "t", Field: "title", Value: "x", Operator: dto.FilterOperatorEq},
			wantWhere: "title = :t",
			wantArgs:  map[string]any{"t": "x"},
		},
		{
			name:      "unknown operator yields nothing",
			filter:    dto.Filter{Field: "title", Value: "x", Operator: "gt"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []dto.Filter{
			{Field: "title", Value: "milk", Operator: dto.FilterOperatorLike},
			{Field: "completed", Value: false, Operator: dto.FilterOperatorEq},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(LOWER(title) LIKE LOWER(:title) AND completed = :completed)", where)
	assert.Equal(t, map[string]any{"title": "%milk%", "completed": false}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
