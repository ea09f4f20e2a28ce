package service

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawtracks/training-system/internal/core/domain"
	"github.com/pawtracks/training-system/internal/core/ports"
)

// AuthService implements registration, login, and token issuance.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
}

func NewAuthService(users ports.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// Register hashes the password and stores the new user. bcrypt regenerates the
// salt on every call, so equal plaintexts never share a stored hash.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PasswordHash:   string(hash),
		ProfilePicture: input.ProfilePicture,
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

// Login checks credentials. Unknown email and wrong password both map to
// ErrInvalidCredentials so callers cannot tell which part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	_, err := s.authenticate(ctx, email, password)
	return err
}

// Verify checks credentials and returns a signed bearer token.
func (s *AuthService) Verify(ctx context.Context, email, password string) (string, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	return s.generateToken(user)
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// generateToken signs the full user record under a "user" claim. Tokens carry
// no expiry; jwt/v5 still rejects an exp claim in the past if one ever appears.
func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user": map[string]any{
			"_id":            user.ID,
			"firstName":      user.FirstName,
			"lastName":       user.LastName,
			"email":          user.Email,
			"profilePicture": user.ProfilePicture,
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
