// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/persona/internal/platform/request"
	"github.com/taibuivan/persona/internal/platform/respond"
	"github.com/taibuivan/persona/internal/platform/validate"
	"github.com/taibuivan/persona/internal/users/auth"
	"github.com/taibuivan/persona/pkg/pagination"
)

// Handler implements the HTTP layer for user management.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] for /users. Registration is public, every
// other endpoint sits behind guard.
func (handler *Handler) Routes(guard func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.create)

	router.Group(func(protected chi.Router) {
		protected.Use(guard)
		protected.Get("/", handler.list)
		protected.Get("/{id}", handler.get)
		protected.Put("/{id}", handler.update)
		protected.Delete("/{id}", handler.delete)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type updateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
POST /api/users.

Response:
  - 201: User: Created account
  - 400: Validation failure or "Email already exists"
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(auth.FieldName, input.Name).
		Email(auth.FieldEmail, input.Email).
		MinLen(auth.FieldPassword, input.Password, MinPasswordLength).
		Custom(auth.FieldConfirmPassword,
			input.ConfirmPassword != "" && input.ConfirmPassword != input.Password,
			"Passwords do not match")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Create(request.Context(), CreateInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MessageCreated, user)
}

/*
GET /api/users?page=&limit=.

Response:
  - 200: []User with a pagination meta block
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, total, err := handler.accountService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, MessageListed, users, pagination.NewMeta(params, total))
}

/*
GET /api/users/{id}.

Response:
  - 200: User
  - 404: "User not found"
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageFound, user)
}

/*
PUT /api/users/{id}.

Response:
  - 200: User: Updated account
  - 400: Validation failure or "Email already exists"
  - 404: "User not found"
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(auth.FieldName, input.Name).
		Email(auth.FieldEmail, input.Email)
	if input.Password != "" {
		validator.MinLen(auth.FieldPassword, input.Password, MinPasswordLength)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Update(request.Context(), id, UpdateInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageUpdated, user)
}

/*
DELETE /api/users/{id}.

Response:
  - 200: User: The deleted account
  - 404: "User not found"
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageDeleted, user)
}
