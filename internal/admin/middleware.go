// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package admin

import (
	"net/http"

	"github.com/dramacollection/storefront/internal/platform/apperr"
	"github.com/dramacollection/storefront/internal/platform/middleware"
	"github.com/dramacollection/storefront/internal/platform/respond"
)

// RequireAccess blocks requests whose identity does not clear the gate.
//
// # Usage
//
// Must be registered in the router AFTER [middleware.Authenticate].
//
// # Flow
//  1. Resolve the authenticated identity; anonymous gets 401.
//  2. Check privilege and elevation via [Gate.HasAccess]; either missing
//     gets 403 with no distinction between the two.
func RequireAccess(gate *Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := middleware.GetUser(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if !gate.HasAccess(request.Context(), claims.Email) {
				respond.Error(writer, request, apperr.Forbidden("Admin access denied"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
