// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package address

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

// Routes returns the /address router. Mount it behind the access guard.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAddress)
	router.Post("/", handler.createAddress)
	router.Get("/personal/{id}", handler.listPersonalAddress)
	router.Get("/{id}", handler.getAddress)
	router.Put("/{id}", handler.updateAddress)
	router.Delete("/{id}", handler.deleteAddress)

	return router
}

type addressRequest struct {
	PersonalID  int64   `json:"personalId"`
	AddressName string  `json:"addressName"`
	Address     string  `json:"address"`
	City        *string `json:"city"`
	Province    *string `json:"province"`
	Country     *string `json:"country"`
}

func (payload addressRequest) input() Input {
	return Input{
		PersonalID:  payload.PersonalID,
		AddressName: payload.AddressName,
		Address:     payload.Address,
		City:        payload.City,
		Province:    payload.Province,
		Country:     payload.Country,
	}
}

func (handler *Handler) listAddress(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	addresses, total, err := handler.service.List(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, MessageFound, addresses, pagination.NewMeta(paginationParams, total))
}

func (handler *Handler) listPersonalAddress(writer http.ResponseWriter, request *http.Request) {
	personalID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	addresses, err := handler.service.ListByPersonal(request.Context(), personalID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageFound, addresses)
}

func (handler *Handler) getAddress(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	address, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageFound, address)
}

func (handler *Handler) createAddress(writer http.ResponseWriter, request *http.Request) {
	var payload addressRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	address, err := handler.service.Create(request.Context(), payload.input())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MessageCreated, address)
}

func (handler *Handler) updateAddress(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload addressRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	address, err := handler.service.Update(request.Context(), id, payload.input())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageUpdated, address)
}

func (handler *Handler) deleteAddress(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	address, err := handler.service.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageDeleted, address)
}
