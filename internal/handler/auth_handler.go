package handler

import (
	"encoding/json"
	"net/http"

	"github.com/krotrn/MERN-Project/internal/config"
	"github.com/krotrn/MERN-Project/internal/models"
	"github.com/krotrn/MERN-Project/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
	cfg *config.Config
}

func NewAuthHandler(s *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: s, cfg: cfg}
}

type userResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

func toUserResponse(u *models.UserDoc) userResponse {
	return userResponse{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// @Summary Registrar usuario
// @Description Crea un usuario nuevo y deja la cookie de sesión
// @Tags users
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} userResponse
// @Failure 422 {object} envelope
// @Failure 409 {object} envelope
// @Router /users/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := checkStruct(req); err != nil {
		respondFail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	u, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	// igual que el login: registrarse ya te deja la sesión armada
	token, err := service.GenerateToken(h.cfg.JWTSecret, u.ID.Hex())
	if err != nil {
		respondError(w, err)
		return
	}
	setSessionCookie(w, token, h.cfg.IsProduction())

	respondData(w, http.StatusCreated, toUserResponse(u), "")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// @Summary Login
// @Description Valida credenciales y setea la cookie `jwt` (30 días)
// @Tags users
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} userResponse
// @Failure 401 {object} envelope
// @Failure 404 {object} envelope
// @Router /users/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := checkStruct(req); err != nil {
		respondFail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := service.GenerateToken(h.cfg.JWTSecret, u.ID.Hex())
	if err != nil {
		respondError(w, err)
		return
	}
	setSessionCookie(w, token, h.cfg.IsProduction())

	respondData(w, http.StatusOK, toUserResponse(u), "")
}

// @Summary Logout
// @Description Expira la cookie de sesión
// @Tags users
// @Produce json
// @Success 200 {object} envelope
// @Router /users/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.cfg.IsProduction())
	respondData(w, http.StatusOK, nil, "Logged out successfully.")
}

// @Summary Listar usuarios (ADMIN)
// @Tags users
// @Produce json
// @Success 200 {array} userResponse
// @Router /users/register [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	respondData(w, http.StatusOK, resp, "")
}

// @Summary Perfil propio
// @Tags users
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} envelope
// @Router /users/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u := UserFromContext(r.Context())
	profile, err := h.svc.GetProfile(r.Context(), u.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, toUserResponse(profile), "")
}

type updateProfileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
}

// @Summary Actualizar perfil propio
// @Tags users
// @Accept json
// @Produce json
// @Param body body updateProfileRequest true "campos opcionales"
// @Success 200 {object} userResponse
// @Failure 409 {object} envelope
// @Failure 422 {object} envelope
// @Router /users/profile [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	u := UserFromContext(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := checkStruct(req); err != nil {
		respondFail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	updated, err := h.svc.UpdateProfile(r.Context(), u.ID, service.UpdateProfileData{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, toUserResponse(updated), "")
}
