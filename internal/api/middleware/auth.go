package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ysiverio/reservasBarberia/internal/api/handlers"
)

const (
	msgMissingAuthorization = "falta la cabecera de autorización"
	msgInvalidAuthFormat    = "formato de autorización inválido, se espera Bearer <token>"
	msgInvalidToken         = "token inválido o expirado"
)

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth protege las rutas de administración con un JWT HS256
// firmado con el secreto compartido.
func AdminAuth(jwtSecret string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				logger.Warn("AdminAuth: missing authorization header: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingAuthorization)
				return
			}

			parts := strings.Fields(auth)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("AdminAuth: invalid authorization format: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidAuthFormat)
				return
			}

			_, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			}, jwt.WithLeeway(5*time.Second))
			if err != nil {
				logger.Warn("AdminAuth: token rejected: %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
