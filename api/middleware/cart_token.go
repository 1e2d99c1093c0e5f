package middleware

import (
	"net/http"
	"strings"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/api/responses"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/cart"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/logger"
)

const cartTokenHeader = "X-Cart-Token"

// CartToken resolves the shopper's cart identity. A valid token binds the
// request to its cart id; a missing or stale token gets a fresh cart minted
// transparently, with the replacement token echoed in the response header so
// the client can persist it.
func CartToken(tokens *cart.TokenManager, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := strings.TrimSpace(r.Header.Get(cartTokenHeader))
			if raw != "" {
				cartID, err := tokens.Verify(raw)
				if err == nil {
					ctx = WithCartID(ctx, cartID)
					if logg != nil {
						ctx = logg.WithCartID(ctx, cartID)
					}
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				if logg != nil {
					logg.Warn(logg.WithField(ctx, "error", err.Error()), "cart_token.rejected")
				}
			}

			token, cartID, err := tokens.Mint()
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}

			w.Header().Set(cartTokenHeader, token)
			ctx = WithCartID(ctx, cartID)
			if logg != nil {
				ctx = logg.WithCartID(ctx, cartID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
