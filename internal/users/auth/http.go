// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/persona/internal/platform/middleware"
	requestutil "github.com/taibuivan/persona/internal/platform/request"
	"github.com/taibuivan/persona/internal/platform/respond"
	"github.com/taibuivan/persona/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the token endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with the token routes.
//
// # Endpoints
//   - POST /login   : Verifies credentials, returns user + token pair.
//   - GET  /refresh : Exchanges a bearer refresh token for a new pair.
//   - POST /logout  : Revokes the bearer refresh token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Get("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	return router
}

// # Request Payloads

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Login authenticates a user and returns a token pair.

POST /api/login

Response:
  - 200: {...user, token, refreshToken}
  - 400: Validation failure or "Invalid email or password"
  - 404: "User not found"
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageLoggedIn, session)
}

/*
Refresh issues a new token pair for the subject of a refresh token.

GET /api/refresh

Request:
  - Header: Authorization: Bearer <refresh token>

Response:
  - 200: {...user, token, refreshToken}
  - 401: {"message":"Unauthorized","data":null} for any token failure
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	token, err := middleware.BearerToken(request)
	if err != nil {
		middleware.Reject(writer, request, err)
		return
	}

	session, err := handler.authService.Refresh(request.Context(), token)
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	respond.OK(writer, MessageRefreshed, session)
}

/*
Logout revokes the presented refresh token.

POST /api/logout

Response:
  - 200: {"message":"User logged out successfully","data":null}
  - 401: Token failure
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	token, err := middleware.BearerToken(request)
	if err != nil {
		middleware.Reject(writer, request, err)
		return
	}

	if err := handler.authService.Logout(request.Context(), token); err != nil {
		handler.fail(writer, request, err)
		return
	}

	respond.OK(writer, MessageLoggedOut, nil)
}

// fail collapses token failures into the uniform 401 and lets everything
// else (storage outages) through as a server error.
func (handler *Handler) fail(writer http.ResponseWriter, request *http.Request, err error) {
	if IsTokenFailure(err) {
		middleware.Reject(writer, request, err)
		return
	}
	respond.Error(writer, request, err)
}
