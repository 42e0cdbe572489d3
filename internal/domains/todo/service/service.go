package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Mrithul03/vendroo-server/infras/otel"
	"github.com/Mrithul03/vendroo-server/internal/domains/todo/model/dto"
	"github.com/Mrithul03/vendroo-server/internal/domains/todo/repository"
	"github.com/Mrithul03/vendroo-server/shared"
	"github.com/Mrithul03/vendroo-server/shared/constant"
	gDto "github.com/Mrithul03/vendroo-server/shared/dto"
	"github.com/Mrithul03/vendroo-server/shared/failure"
)

const messageNotFound = "todo not found"

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (dto.TodoResponse, error)
	Delete(ctx context.Context, id int64) (dto.TodoResponse, error)
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	inserted, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	res.FromModel(inserted)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, filter gDto.FilterGroup) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	todos, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	return dto.FromModels(todos), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTodoRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return res, fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		log.Error().Int64("id", id).Msg(messageNotFound)

		return res, failure.NotFound(messageNotFound) // nolint:wrapcheck
	}

	updatedFields := shared.UpdateFields(req)
	if len(updatedFields) > 0 {
		if err := s.repo.Update(ctx, updatedFields, id); err != nil {
			log.Error().Err(err).Msg("failed to update todo")

			return res, fmt.Errorf("failed to update todo: %w", err)
		}
	}

	updated, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated todo")

		return res, fmt.Errorf("failed to get updated todo: %w", err)
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == 0 {
		log.Error().Int64("id", id).Msg(messageNotFound)

		return res, failure.NotFound(messageNotFound) // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return res, fmt.Errorf("failed to delete todo: %w", err)
	}

	res.FromModel(todo)

	return res, nil
}
