package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=./mocks/storage_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Mrithul03/vendroo-server/config"
	"github.com/Mrithul03/vendroo-server/infras/otel"
	"github.com/Mrithul03/vendroo-server/shared/constant"
)

const (
	otelAttrFileName = "file_name"

	randomMax = 1_000_000_000
)

// Storage persists uploaded files on the local filesystem and hands back the
// generated file name. The uploads directory is created at construction time.
type Storage interface {
	Save(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (fileName string, err error)
	Dir() string
}

type localDisk struct {
	dir  string
	otel otel.Otel
}

func New(config *config.Config, otel otel.Otel) Storage {
	dir := config.Upload.Dir

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("Failed to create uploads directory")
	}

	return &localDisk{
		dir:  dir,
		otel: otel,
	}
}

func (s *localDisk) Dir() string {
	return s.dir
}

func (s *localDisk) Save(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (fileName string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Timestamp plus random suffix keeps concurrent uploads apart without
	// coordination. Collisions are accepted as negligible, not impossible.
	fileName = fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.IntN(randomMax), filepath.Ext(fileHeader.Filename))
	scope.SetAttribute(otelAttrFileName, fileName)

	dst, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return constant.Empty, fmt.Errorf("failed to write upload file: %w", err)
	}

	return fileName, nil
}
