package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Mrithul03/vendroo-server/infras/otel"
	"github.com/Mrithul03/vendroo-server/infras/postgres"
	"github.com/Mrithul03/vendroo-server/internal/domains/form/model"
	"github.com/Mrithul03/vendroo-server/shared/constant"
	"github.com/Mrithul03/vendroo-server/shared/logger"
)

const (
	queryInsert = `INSERT INTO form_entries (owner, shopname, businesstype, phone, location, building, photo_url)
		VALUES (:owner, :shopname, :businesstype, :phone, :location, :building, :photo_url)
		RETURNING id, owner, shopname, businesstype, phone, location, building, photo_url, created_at`

	queryGetAll = `SELECT id, owner, shopname, businesstype, phone, location, building, photo_url, created_at
		FROM form_entries ORDER BY id DESC`
)

type Form interface {
	Insert(ctx context.Context, entry model.FormEntry) (model.FormEntry, error)
	GetAll(ctx context.Context) ([]model.FormEntry, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Form {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, entry model.FormEntry) (model.FormEntry, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".form.Insert")
	defer scope.End()
	scope.SetAttribute(constant.OtelQueryAttributeKey, queryInsert)

	var inserted model.FormEntry

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, queryInsert)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return inserted, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.GetContext(ctx, &inserted, entry); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return inserted, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return inserted, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.FormEntry, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".form.GetAll")
	defer scope.End()
	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetAll)

	var entries []model.FormEntry

	if err := repo.db.DB.SelectContext(ctx, &entries, queryGetAll); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return entries, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return entries, nil
}
