package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Mrithul03/vendroo-server/infras/otel"
	"github.com/Mrithul03/vendroo-server/infras/postgres"
	"github.com/Mrithul03/vendroo-server/internal/domains/todo/model"
	"github.com/Mrithul03/vendroo-server/shared/constant"
	gDto "github.com/Mrithul03/vendroo-server/shared/dto"
	"github.com/Mrithul03/vendroo-server/shared/logger"
)

const (
	selectColumns = "id, title, description, completed, due_date, created_at"

	queryInsert = `INSERT INTO todos (title, description, completed, due_date)
		VALUES (:title, :description, :completed, :due_date)
		RETURNING ` + selectColumns

	queryGet    = `SELECT ` + selectColumns + ` FROM todos WHERE id = $1`
	queryExist  = `SELECT EXISTS(SELECT 1 FROM todos WHERE id = $1)`
	queryDelete = `DELETE FROM todos WHERE id = $1`
)

var errEmptyUpdate = errors.New("no fields to update")

type Todo interface {
	Insert(ctx context.Context, todo model.Todo) (model.Todo, error)
	Get(ctx context.Context, id int64) (model.Todo, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Todo, error)
	Exist(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, fields map[string]any, id int64) error
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, todo model.Todo) (model.Todo, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Insert")
	defer scope.End()
	scope.SetAttribute(constant.OtelQueryAttributeKey, queryInsert)

	var inserted model.Todo

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, queryInsert)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return inserted, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.GetContext(ctx, &inserted, todo); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return inserted, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return inserted, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id int64) (model.Todo, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Get")
	defer scope.End()
	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGet)

	var todo model.Todo

	err := repo.db.DB.GetContext(ctx, &todo, queryGet, id)
	if errors.Is(err, sql.ErrNoRows) {
		return todo, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return todo, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return todo, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Todo, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.GetAll")
	defer scope.End()

	where, args := filter.GetWhereClause()
	if where != "" {
		where = " WHERE " + where
	}

	query := "SELECT " + selectColumns + " FROM todos" + where + " ORDER BY id DESC"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var todos []model.Todo

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return todos, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &todos, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return todos, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return todos, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int64) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Exist")
	defer scope.End()
	scope.SetAttribute(constant.OtelQueryAttributeKey, queryExist)

	exist := false

	if err := repo.db.DB.GetContext(ctx, &exist, queryExist, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return exist, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, fields map[string]any, id int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Update")
	defer scope.End()

	if len(fields) == 0 {
		return errEmptyUpdate
	}

	updateField := []string{}

	for col := range fields {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE todos SET %s WHERE id = :id", strings.Join(updateField, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{"id": id}
	for col, value := range fields {
		args[col] = value
	}

	if _, err := repo.db.DB.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.Delete")
	defer scope.End()
	scope.SetAttribute(constant.OtelQueryAttributeKey, queryDelete)

	if _, err := repo.db.DB.ExecContext(ctx, queryDelete, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return nil
}
