// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package personal

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/persona/internal/platform/request"
	"github.com/taibuivan/persona/internal/platform/respond"
	"github.com/taibuivan/persona/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /personal router. Every endpoint expects the access
// guard to have run, so it must be mounted behind it.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPersonal)
	router.Post("/", handler.createPersonal)
	router.Get("/user", handler.listOwnPersonal)
	router.Get("/{id}", handler.getPersonal)
	router.Put("/{id}", handler.updatePersonal)
	router.Delete("/{id}", handler.deletePersonal)

	return router
}

type personalRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) listPersonal(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	personals, total, err := handler.service.List(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, MessageFound, personals, pagination.NewMeta(paginationParams, total))
}

func (handler *Handler) listOwnPersonal(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	personals, err := handler.service.ListByUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageFound, personals)
}

func (handler *Handler) getPersonal(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	personal, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageFound, personal)
}

func (handler *Handler) createPersonal(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input personalRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	personal := &Personal{Name: input.Name}
	if err := handler.service.Create(request.Context(), userID, personal); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MessageCreated, personal)
}

func (handler *Handler) updatePersonal(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input personalRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	personal := &Personal{Name: input.Name}
	if err := handler.service.Update(request.Context(), id, userID, personal); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageUpdated, personal)
}

func (handler *Handler) deletePersonal(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	personal, err := handler.service.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageDeleted, personal)
}
