package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Mrithul03/vendroo-server/config"
	"github.com/Mrithul03/vendroo-server/infras/otel/mocks"
	storageMocks "github.com/Mrithul03/vendroo-server/infras/storage/mocks"
	formMocks "github.com/Mrithul03/vendroo-server/internal/domains/form/mocks"
	"github.com/Mrithul03/vendroo-server/internal/domains/form/model"
	"github.com/Mrithul03/vendroo-server/internal/domains/form/model/dto"
	"github.com/Mrithul03/vendroo-server/internal/domains/form/service"
	"github.com/Mrithul03/vendroo-server/shared/failure"
)

func newService(t *testing.T) (service.Form, *formMocks.MockForm, *storageMocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := formMocks.NewMockForm(ctrl)
	mockStorage := storageMocks.NewMockStorage(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Server.Port = "8080"
	cfg.Upload.URLPath = "/uploads"

	return service.New(mockRepo, mockStorage, cfg, mockOtel), mockRepo, mockStorage
}

func TestFormService_Create(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	req := dto.CreateFormRequest{
		Owner:        "Anita",
		ShopName:     "Anita Stores",
		BusinessType: "grocery",
		Phone:        "9876543210",
		Location:     "Kochi",
	}

	stored := req.ToModel()
	stored.ID = 12
	stored.CreatedAt = time.Now()

	mockRepo.EXPECT().
		Insert(gomock.Any(), req.ToModel()).
		Return(stored, nil)

	res, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), res.ID)
	assert.Equal(t, req.Owner, res.Owner)
	assert.Nil(t, res.PhotoURL, "no photo submitted means photo_url stays null")
}

func TestFormService_Create_WithPhoto(t *testing.T) {
	svc, mockRepo, mockStorage := newService(t)

	req := dto.CreateFormRequest{
		Owner:        "Anita",
		ShopName:     "Anita Stores",
		BusinessType: "grocery",
		Phone:        "9876543210",
		Location:     "Kochi",
		Photo:        &multipart.FileHeader{Filename: "shopfront.png"},
	}

	mockStorage.EXPECT().
		Save(gomock.Any(), gomock.Any(), req.Photo).
		Return("1756251000000-42.png", nil)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry model.FormEntry) (model.FormEntry, error) {
			entry.ID = 1

			return entry, nil
		})

	res, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, res.PhotoURL)
	assert.Equal(t, "http://localhost:8080/uploads/1756251000000-42.png", *res.PhotoURL)
}

func TestFormService_Create_UploadError(t *testing.T) {
	svc, _, mockStorage := newService(t)

	req := dto.CreateFormRequest{
		Owner: "Anita",
		Photo: &multipart.FileHeader{Filename: "shopfront.png"},
	}

	mockStorage.EXPECT().
		Save(gomock.Any(), gomock.Any(), req.Photo).
		Return("", errors.New("disk full"))

	_, err := svc.Create(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, 500, failure.GetCode(err))
}

func TestFormService_Create_RepositoryError(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(model.FormEntry{}, errors.New("pq: connection refused"))

	_, err := svc.Create(context.Background(), dto.CreateFormRequest{Owner: "A"})

	assert.Error(t, err)
	assert.Equal(t, 500, failure.GetCode(err))
	assert.Equal(t, failure.MessageInternalError, failure.GetMessage(err), "driver detail must not reach the caller")
}

func TestFormService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	entries := []model.FormEntry{
		{ID: 3, Owner: "C"},
		{ID: 2, Owner: "B"},
		{ID: 1, Owner: "A"},
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any()).
		Return(entries, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 3)
	assert.Equal(t, int64(3), res[0].ID, "ordering from the store is preserved")
}

func TestFormService_GetAll_RepositoryError(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().
		GetAll(gomock.Any()).
		Return(nil, errors.New("pq: relation does not exist"))

	_, err := svc.GetAll(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 500, failure.GetCode(err))
}
