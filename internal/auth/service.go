package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/spendwise/spendwise/internal/user"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	users      user.Service
	jwtManager *JWTManager
}

func NewAuthService(users user.Service, jwtManager *JWTManager) *Service {
	return &Service{users: users, jwtManager: jwtManager}
}

// Login verifies the user's credentials and issues a signed access token.
func (s *Service) Login(email, password string) (string, error) {
	existing, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwtManager.GenerateAccessJWT(existing.ID)
}
