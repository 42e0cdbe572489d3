package todo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Mrithul03/vendroo-server/infras/otel/mocks"
	"github.com/Mrithul03/vendroo-server/internal/domains/todo/model"
	"github.com/Mrithul03/vendroo-server/internal/domains/todo/model/dto"
	serviceMocks "github.com/Mrithul03/vendroo-server/internal/domains/todo/service/mocks"
	gDto "github.com/Mrithul03/vendroo-server/shared/dto"
	"github.com/Mrithul03/vendroo-server/shared/failure"
	"github.com/Mrithul03/vendroo-server/transport/http/response"

	todoHandler "github.com/Mrithul03/vendroo-server/internal/handlers/todo"
)

func newRouter(t *testing.T) (chi.Router, *serviceMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockTodo(ctrl)

	handler := todoHandler.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func TestTodoHandler_CreateTodo(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(mockService *serviceMocks.MockTodo)
		wantStatus int
	}{
		{
			name: "successful creation",
			body: `{"title":"Buy milk","description":"2 liters"}`,
			setupMock: func(mockService *serviceMocks.MockTodo) {
				mockService.EXPECT().
					Create(gomock.Any(), dto.CreateTodoRequest{Title: "Buy milk", Description: "2 liters"}).
					Return(dto.TodoResponse{ID: 1, Title: "Buy milk", Description: "2 liters"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing title",
			body:       `{"description":"no title"}`,
			setupMock:  func(mockService *serviceMocks.MockTodo) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"title":`,
			setupMock:  func(mockService *serviceMocks.MockTodo) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"title":"Buy milk"}`,
			setupMock: func(mockService *serviceMocks.MockTodo) {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.TodoResponse{}, failure.InternalError(assert.AnError))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/todos/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var envelope response.Envelope
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
				assert.True(t, envelope.Success)
				assert.NotNil(t, envelope.Data)
			}
		})
	}
}

func TestTodoHandler_GetTodos(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantFilter gDto.FilterGroup
	}{
		{
			name:       "no query parameters",
			target:     "/todos/",
			wantFilter: gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd},
		},
		{
			name:   "search on title",
			target: "/todos/?search=milk",
			wantFilter: gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorAnd,
				Filters: []gDto.Filter{
					{Field: model.FieldTitle, Operator: gDto.FilterOperatorLike, Value: "milk"},
				},
			},
		},
		{
			name:   "status completed",
			target: "/todos/?status=completed",
			wantFilter: gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorAnd,
				Filters: []gDto.Filter{
					{Field: model.FieldCompleted, Operator: gDto.FilterOperatorEq, Value: true},
				},
			},
		},
		{
			name:   "status pending with search",
			target: "/todos/?search=milk&status=pending",
			wantFilter: gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorAnd,
				Filters: []gDto.Filter{
					{Field: model.FieldTitle, Operator: gDto.FilterOperatorLike, Value: "milk"},
					{Field: model.FieldCompleted, Operator: gDto.FilterOperatorEq, Value: false},
				},
			},
		},
		{
			name:       "unknown status is ignored",
			target:     "/todos/?status=archived",
			wantFilter: gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			mockService.EXPECT().
				GetAll(gomock.Any(), tt.wantFilter).
				Return([]dto.TodoResponse{}, nil)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			// Lists are bare arrays, not envelopes.
			assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestTodoHandler_UpdateTodo(t *testing.T) {
	completed := true

	tests := []struct {
		name       string
		target     string
		body       string
		setupMock  func(mockService *serviceMocks.MockTodo)
		wantStatus int
	}{
		{
			name:   "successful update",
			target: "/todos/7",
			body:   `{"completed":true}`,
			setupMock: func(mockService *serviceMocks.MockTodo) {
				mockService.EXPECT().
					Update(gomock.Any(), dto.UpdateTodoRequest{Completed: &completed}, int64(7)).
					Return(dto.TodoResponse{ID: 7, Completed: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-numeric id",
			target:     "/todos/abc",
			body:       `{"completed":true}`,
			setupMock:  func(mockService *serviceMocks.MockTodo) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "not found",
			target: "/todos/404",
			body:   `{"completed":true}`,
			setupMock: func(mockService *serviceMocks.MockTodo) {
				mockService.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(404)).
					Return(dto.TodoResponse{}, failure.NotFound("todo not found"))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPut, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestTodoHandler_DeleteTodo(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Delete(gomock.Any(), int64(3)).
			Return(dto.TodoResponse{ID: 3, Title: "Buy milk"}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/todos/3", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope response.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		require.NotNil(t, envelope.Message)
		assert.Equal(t, "Todo deleted successfully", *envelope.Message)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodDelete, "/todos/abc", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Delete(gomock.Any(), int64(9)).
			Return(dto.TodoResponse{}, failure.NotFound("todo not found"))

		req := httptest.NewRequest(http.MethodDelete, "/todos/9", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
