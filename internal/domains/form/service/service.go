package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Mrithul03/vendroo-server/config"
	"github.com/Mrithul03/vendroo-server/infras/otel"
	"github.com/Mrithul03/vendroo-server/infras/storage"
	"github.com/Mrithul03/vendroo-server/internal/domains/form/model/dto"
	"github.com/Mrithul03/vendroo-server/internal/domains/form/repository"
	"github.com/Mrithul03/vendroo-server/shared/constant"
)

type Form interface {
	Create(ctx context.Context, req dto.CreateFormRequest) (dto.FormResponse, error)
	GetAll(ctx context.Context) ([]dto.FormResponse, error)
}

type serviceImpl struct {
	repo    repository.Form
	storage storage.Storage
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Form, storage storage.Storage, cfg *config.Config, otel otel.Otel) Form {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFormRequest) (res dto.FormResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".form.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry := req.ToModel()

	// Fields are validated before the file touches disk.
	if req.Photo != nil {
		fileName, err := s.storage.Save(ctx, req.PhotoFile, req.Photo)
		if err != nil {
			log.Error().Err(err).Msg("failed to store photo")

			return res, fmt.Errorf("failed to store photo: %w", err)
		}

		photoURL := s.photoURL(fileName)
		entry.PhotoURL = &photoURL
	}

	inserted, err := s.repo.Insert(ctx, entry)
	if err != nil {
		log.Error().Err(err).Msg("failed to create form entry")

		return res, fmt.Errorf("failed to create form entry: %w", err)
	}

	res.FromModel(inserted)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.FormResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".form.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get form entries")

		return res, fmt.Errorf("failed to get form entries: %w", err)
	}

	return dto.FromModels(entries), nil
}

func (s *serviceImpl) photoURL(fileName string) string {
	base := strings.TrimSuffix(s.cfg.PublicBaseURL(), "/")

	return base + path.Join(s.cfg.Upload.URLPath, fileName)
}
