package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/krotrn/MERN-Project/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

type UpdateProfileData struct {
	Username *string
	Email    *string
	Password *string
}

// ================== REGISTER & LOGIN ==================

// Register crea un usuario nuevo. Valida todo antes de tocar Mongo:
// si algo falla no queda ningún efecto a medias.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDoc, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: missing required fields: username, email, or password", ErrValidation)
	}
	if !ValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if !StrongPassword(password) {
		return nil, fmt.Errorf("%w: password must be at least 8 characters long and contain numbers and special characters", ErrValidation)
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user already exists with this email", ErrDuplicate)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &models.UserDoc{
		Username:  username,
		Email:     email,
		Password:  string(hash),
		IsAdmin:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login valida credenciales. Email inexistente y password incorrecta
// se reportan distinto (404 vs 401), igual que siempre lo hizo el API.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.UserDoc, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: missing required fields: email or password", ErrValidation)
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}
	return u, nil
}

// ================== PROFILE ==================

func (s *AuthService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.UserDoc, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return u, nil
}

// UpdateProfile actualiza campos opcionales del propio usuario.
func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, data UpdateProfileData) (*models.UserDoc, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	update := bson.M{}

	if data.Username != nil && strings.TrimSpace(*data.Username) != "" {
		update["username"] = strings.TrimSpace(*data.Username)
	}

	if data.Email != nil && *data.Email != "" {
		newEmail := strings.ToLower(strings.TrimSpace(*data.Email))
		if !ValidEmail(newEmail) {
			return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
		}
		taken, err := s.users.FindByEmail(ctx, newEmail)
		if err != nil {
			return nil, err
		}
		if taken != nil && taken.ID != userID {
			return nil, fmt.Errorf("%w: email is already associated with another account", ErrDuplicate)
		}
		update["email"] = newEmail
	}

	if data.Password != nil && *data.Password != "" {
		if !StrongPassword(*data.Password) {
			return nil, fmt.Errorf("%w: password must be at least 8 characters long and contain numbers and special characters", ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*data.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		update["password"] = string(hash)
	}

	if len(update) == 0 {
		return u, nil
	}
	update["updatedAt"] = time.Now().UTC()

	if err := s.users.UpdateByID(ctx, userID, update); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

// ListUsers es solo para admins; el hash de password ya viene
// excluido desde el repositorio.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.UserDoc, error) {
	return s.users.FindAll(ctx)
}
