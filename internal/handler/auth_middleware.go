package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/krotrn/MERN-Project/internal/models"
	"github.com/krotrn/MERN-Project/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey string

const ctxUser ctxKey = "user"

// SessionCookie es el nombre de la cookie de sesión.
const SessionCookie = "jwt"

// UserLoader es lo único que el middleware necesita del repo de
// usuarios; de paso permite testearlo sin Mongo.
type UserLoader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error)
}

// Authenticate lee el token de la cookie, lo verifica y carga el
// usuario al contexto (sin password, el struct no lo serializa).
// Cada request se evalúa de cero, no hay sesión más allá del token.
func Authenticate(secret string, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				respondFail(w, http.StatusUnauthorized, "Not authorized, no token found. Please log in.")
				return
			}

			userHex, err := service.VerifyToken(secret, cookie.Value)
			if err != nil {
				respondFail(w, http.StatusUnauthorized, "Not authorized, token verification failed.")
				return
			}

			userID, err := primitive.ObjectIDFromHex(userHex)
			if err != nil {
				respondFail(w, http.StatusUnauthorized, "Not authorized, token verification failed.")
				return
			}

			u, err := users.FindByID(r.Context(), userID)
			if err != nil {
				respondError(w, err)
				return
			}
			if u == nil {
				respondFail(w, http.StatusUnauthorized, "Not authorized, token verification failed.")
				return
			}

			ctx := context.WithValue(r.Context(), ctxUser, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly asume que Authenticate ya corrió; no consulta el store.
func AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := UserFromContext(r.Context())
			if u == nil || !u.IsAdmin {
				respondFail(w, http.StatusForbidden, "Not authorized, you must be an admin.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext devuelve el usuario autenticado o nil.
func UserFromContext(ctx context.Context) *models.UserDoc {
	u, _ := ctx.Value(ctxUser).(*models.UserDoc)
	return u
}

// ================== cookie de sesión ==================

// setSessionCookie deja el JWT en una cookie httpOnly de 30 días.
// SameSite=None porque el front corre en otro origen; Secure solo en prod.
func setSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(service.TokenTTL / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearSessionCookie expira la cookie (logout).
func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
	})
}
