package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spendwise/spendwise/internal/user"
)

type stubUserService struct {
	users map[string]*user.User
}

func (s *stubUserService) Register(email, username, password string) (*user.User, error) {
	return nil, nil
}

func (s *stubUserService) GetUserByID(id string) (*user.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (s *stubUserService) GetUserByEmail(email string) (*user.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (s *stubUserService) UserExists(id string) (bool, error) {
	_, ok := s.users[id]
	return ok, nil
}

func TestJWTAccessTokenMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	manager, err := NewJWTManager()
	require.NoError(t, err)

	users := &stubUserService{users: map[string]*user.User{
		"user-1": {ID: "user-1", Email: "jo@example.com"},
	}}
	middleware := JWTAccessTokenMiddleware(manager, users)

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = r.Context().Value("userID").(string)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token reaches the handler with the user id", func(t *testing.T) {
		token, err := manager.GenerateAccessJWT("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/protected/transactions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		middleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", seenUserID)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/protected/transactions", nil)
		w := httptest.NewRecorder()

		middleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for a user that no longer exists is rejected", func(t *testing.T) {
		token, err := manager.GenerateAccessJWT("ghost")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/protected/transactions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		middleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	manager, err := NewJWTManager()
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("longenough"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &stubUserService{users: map[string]*user.User{
		"user-1": {ID: "user-1", Email: "jo@example.com", PasswordHash: string(hash)},
	}}
	service := NewAuthService(users, manager)

	token, err := service.Login("jo@example.com", "longenough")
	assert.NoError(t, err)
	userID, err := manager.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = service.Login("jo@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login("nobody@example.com", "longenough")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
