package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
	"github.com/fintrix/fintrix-backend/internal/utils"
)

const sessionCookieName = "fintrix.session-token"

func writeUnauthorized(w http.ResponseWriter, message string, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(&presentationProtocols.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// VerifyAccessToken authenticates the request from the session cookie or an
// Authorization bearer header, and installs the verified account id in the
// UserId header. Downstream code reads identity from that header only; ids in
// request bodies are never trusted.
func VerifyAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var authorization string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			authorization = cookie.Value
		} else if header := r.Header.Get("Authorization"); header != "" {
			authorization = header
		}

		if authorization == "" {
			writeUnauthorized(w, "missing access token", presentationProtocols.CodeUnauthorized)
			return
		}

		authorization = strings.TrimPrefix(authorization, "Bearer ")

		claims, err := utils.NewAccessTokenUtil().DecodeToken(authorization)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				writeUnauthorized(w, "access token expired", presentationProtocols.CodeTokenExpired)
				return
			}
			writeUnauthorized(w, "invalid access token", presentationProtocols.CodeUnauthorized)
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			writeUnauthorized(w, "invalid access token", presentationProtocols.CodeUnauthorized)
			return
		}

		r.Header.Set("UserId", sub)

		next.ServeHTTP(w, r)
	})
}
