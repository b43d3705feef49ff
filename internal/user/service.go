package user

import (
	"errors"
	"time"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"

	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

var (
	ErrEmailAlreadyTaken    = errors.New("email is already taken")
	ErrUsernameAlreadyTaken = errors.New("username is already taken")
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Service interface {
	Register(email, username, password string) (*User, error)
	GetUserByID(id string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	UserExists(id string) (bool, error)
}

type userService struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &userService{repo: repo}
}

func (s *userService) Register(email, username, password string) (*User, error) {
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, financeErrors.NewValidationError("invalid email format")
	}
	if len(username) < 3 {
		return nil, financeErrors.NewValidationError("username must be at least 3 characters long")
	}
	if len(password) < 8 {
		return nil, financeErrors.NewValidationError("password must be at least 8 characters long")
	}

	existing, err := s.repo.userExistsByEmailOrUsername(email, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Email == email {
			return nil, ErrEmailAlreadyTaken
		}
		return nil, ErrUsernameAlreadyTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}

	newUser := &User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.repo.createUser(newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

func (s *userService) GetUserByID(id string) (*User, error) {
	return s.repo.getUserByID(id)
}

func (s *userService) GetUserByEmail(email string) (*User, error) {
	return s.repo.getUserByEmail(email)
}

func (s *userService) UserExists(id string) (bool, error) {
	return s.repo.userExists(id)
}
