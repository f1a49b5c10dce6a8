package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-light-wallet/internal/app"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication on
// the control API.
//
// It extracts the token from the "Authorization" header, validates it with
// [utils.ValidateAndParseJWTToken] against the configured sign key and
// issuer, and stores the operator (the token subject) in the request
// context under [utils.OperatorCtxKey].
//
// Requests without a header, with a malformed header or with an invalid or
// expired token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Err(err).Msg("token expired")
			} else {
				log.Err(err).Msg("error occurred during parsing token")
			}
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.OperatorCtxKey, token.Operator)
		publishContext(w, ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
