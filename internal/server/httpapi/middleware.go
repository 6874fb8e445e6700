package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/storserv/storserv/internal/common"
)

type ctxKey string

const namespaceKey ctxKey = "namespace"

// requireToken is the per-request gate in front of every data route. It
// demands a bearer token, validates it, and binds the token's namespace
// claim to the request context. Downstream handlers read the namespace only
// from the context; nothing on the data path re-derives it from request
// input.
func (h *Handler) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		if header == "" {
			respondError(w, http.StatusUnauthorized, "unauthorized", codeUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], common.BearerSchema) {
			respondError(w, http.StatusUnauthorized, "unauthorized", codeUnauthorized)
			return
		}

		ns, err := h.tokens.Validate(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, common.ErrTokenExpired):
				respondError(w, http.StatusUnauthorized, "token is expired", codeTokenExpired)
			case errors.Is(err, common.ErrorSecretUnavailable):
				h.logger.Error(r.Context(), "token validation failed", "error", err)
				respondError(w, http.StatusInternalServerError, "internal error", codeUnknown)
			default:
				respondError(w, http.StatusUnauthorized, fmt.Sprintf("unable to decode token: %v", err), codeUnknown)
			}
			return
		}

		ctx := context.WithValue(r.Context(), namespaceKey, ns)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// namespaceFromContext returns the namespace bound by requireToken, or the
// empty string outside a gated request.
func namespaceFromContext(ctx context.Context) string {
	ns, _ := ctx.Value(namespaceKey).(string)
	return ns
}
