// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/persona/internal/platform/apperr"
	"github.com/taibuivan/persona/internal/platform/ctxutil"
	"github.com/taibuivan/persona/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Int64Param parses a named URL parameter as a positive numeric identifier.

Returns:
  - int64: The parsed identifier
  - error: apperr.BadRequest when the value is not a positive integer
*/
func Int64Param(request *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(request, name), 10, 64)
	if err != nil || value <= 0 {
		return 0, apperr.BadRequest("Invalid " + name)
	}
	return value, nil
}

/*
RequiredPrincipal ensures the request passed the access guard.

Returns:
  - ctxutil.Principal: The authenticated principal
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredPrincipal(request *http.Request) (ctxutil.Principal, error) {
	principal, ok := ctxutil.GetPrincipal(request.Context())

	// Routes mounted without the guard never carry a principal
	if !ok {
		return ctxutil.Principal{}, apperr.Unauthorized("Unauthorized")
	}

	return principal, nil
}

/*
RequiredUserID returns the user id of the currently authenticated principal.
*/
func RequiredUserID(request *http.Request) (int64, error) {
	principal, err := RequiredPrincipal(request)
	if err != nil {
		return 0, err
	}
	return principal.UserID, nil
}
