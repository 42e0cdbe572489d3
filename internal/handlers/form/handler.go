package form

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Mrithul03/vendroo-server/infras/otel"
	"github.com/Mrithul03/vendroo-server/internal/domains/form/model"
	"github.com/Mrithul03/vendroo-server/internal/domains/form/model/dto"
	"github.com/Mrithul03/vendroo-server/internal/domains/form/service"
	"github.com/Mrithul03/vendroo-server/shared/constant"
	"github.com/Mrithul03/vendroo-server/shared/failure"
	"github.com/Mrithul03/vendroo-server/shared/validator"
	"github.com/Mrithul03/vendroo-server/transport/http/response"
)

type Handler struct {
	service service.Form
	otel    otel.Otel
}

func New(service service.Form, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/form", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateForm)
		routerGroup.Get("/", handler.GetForms)
	})
}

// CreateForm accepts a multipart shop-registration submission, with an
// optional photo part stored to disk before the row is inserted.
func (handler *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateForm")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.CreateFormRequest{
		Owner:        strings.TrimSpace(r.FormValue(model.FieldOwner)),
		ShopName:     strings.TrimSpace(r.FormValue(model.FieldShopName)),
		BusinessType: strings.TrimSpace(r.FormValue(model.FieldBusinessType)),
		Phone:        strings.TrimSpace(r.FormValue(model.FieldPhone)),
		Location:     strings.TrimSpace(r.FormValue(model.FieldLocation)),
		Building:     strings.TrimSpace(r.FormValue(model.FieldBuilding)),
	}

	file, fileHeader, err := r.FormFile(constant.FormFilePhoto)
	switch {
	case err == nil:
		defer file.Close()

		req.Photo = fileHeader
		req.PhotoFile = file
	case errors.Is(err, http.ErrMissingFile):
		// The photo part is optional.
	default:
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read photo part")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate form submission")

		if req.Owner == "" || req.ShopName == "" || req.BusinessType == "" || req.Phone == "" || req.Location == "" {
			response.WithError(w, failure.BadRequestFromString(dto.MessageRequiredFields))

			return
		}

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create form entry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Form entry created successfully")

	response.WithSuccess(w, http.StatusOK, res)
}

// GetForms returns every submission, newest first, as a bare JSON array.
func (handler *Handler) GetForms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForms")
	defer scope.End()

	entries, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get form entries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Form entries retrieved successfully")

	response.WithJSON(w, http.StatusOK, entries)
}
