package form_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Mrithul03/vendroo-server/infras/otel/mocks"
	"github.com/Mrithul03/vendroo-server/internal/domains/form/model/dto"
	serviceMocks "github.com/Mrithul03/vendroo-server/internal/domains/form/service/mocks"
	"github.com/Mrithul03/vendroo-server/shared/failure"
	"github.com/Mrithul03/vendroo-server/transport/http/response"

	formHandler "github.com/Mrithul03/vendroo-server/internal/handlers/form"
)

func newRouter(t *testing.T) (chi.Router, *serviceMocks.MockForm) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockForm(ctrl)

	handler := formHandler.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func multipartBody(t *testing.T, fields map[string]string, photoName string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if photoName != "" {
		part, err := writer.CreateFormFile("photo", photoName)
		require.NoError(t, err)

		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func completeFields() map[string]string {
	return map[string]string{
		"owner":        "Asha",
		"shopname":     "Asha Stores",
		"businesstype": "grocery",
		"phone":        "9876543210",
		"location":     "Kochi",
		"building":     "Marine Plaza",
	}
}

func TestFormHandler_CreateForm(t *testing.T) {
	t.Run("successful creation without photo", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateFormRequest) (dto.FormResponse, error) {
				assert.Equal(t, "Asha", req.Owner)
				assert.Equal(t, "Asha Stores", req.ShopName)
				assert.Nil(t, req.Photo)

				res := dto.FormResponse{}
				res.ID = 1
				res.Owner = req.Owner
				res.ShopName = req.ShopName

				return res, nil
			})

		body, contentType := multipartBody(t, completeFields(), "")

		req := httptest.NewRequest(http.MethodPost, "/form/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope response.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.NotNil(t, envelope.Data)
	})

	t.Run("successful creation with photo", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateFormRequest) (dto.FormResponse, error) {
				require.NotNil(t, req.Photo)
				assert.Equal(t, "shop.png", req.Photo.Filename)
				require.NotNil(t, req.PhotoFile)

				return dto.FormResponse{ID: 2}, nil
			})

		body, contentType := multipartBody(t, completeFields(), "shop.png")

		req := httptest.NewRequest(http.MethodPost, "/form/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing required field yields static message", func(t *testing.T) {
		router, _ := newRouter(t)

		fields := completeFields()
		delete(fields, "phone")

		body, contentType := multipartBody(t, fields, "")

		req := httptest.NewRequest(http.MethodPost, "/form/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var envelope response.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.False(t, envelope.Success)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, dto.MessageRequiredFields, *envelope.Error)
	})

	t.Run("whitespace-only field is treated as missing", func(t *testing.T) {
		router, _ := newRouter(t)

		fields := completeFields()
		fields["owner"] = "   "

		body, contentType := multipartBody(t, fields, "")

		req := httptest.NewRequest(http.MethodPost, "/form/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-multipart body", func(t *testing.T) {
		router, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/form/", strings.NewReader(`{"owner":"Asha"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service error surfaces generic 500", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.FormResponse{}, assert.AnError)

		body, contentType := multipartBody(t, completeFields(), "")

		req := httptest.NewRequest(http.MethodPost, "/form/", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var envelope response.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.NotNil(t, envelope.Error)
		assert.Equal(t, failure.MessageInternalError, *envelope.Error)
	})
}

func TestFormHandler_GetForms(t *testing.T) {
	t.Run("returns bare array", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			GetAll(gomock.Any()).
			Return([]dto.FormResponse{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/form/", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("service error", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			GetAll(gomock.Any()).
			Return(nil, failure.InternalError(assert.AnError))

		req := httptest.NewRequest(http.MethodGet, "/form/", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
