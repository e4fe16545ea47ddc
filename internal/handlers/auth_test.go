package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/graceyoon00/MiniWall/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-token-secret"

func setupAuth(t *testing.T) (*echo.Echo, *fakeUserRepo) {
	t.Helper()
	e := setupEcho()
	userRepo := &fakeUserRepo{}
	h := NewAuthHandler(userRepo, testSecret)
	h.RegisterAuthRoutes(e.Group("/api/user"))
	return e, userRepo
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
		expectedError  string
	}{
		{
			name: "valid registration",
			body: map[string]string{
				"username": "walluser",
				"email":    "wall@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "username too short",
			body: map[string]string{
				"username": "ab",
				"email":    "wall@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "username must be at least 3 characters",
		},
		{
			name: "malformed email",
			body: map[string]string{
				"username": "walluser",
				"email":    "not-an-email",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "email must be a valid email",
		},
		{
			name: "password too short",
			body: map[string]string{
				"username": "walluser",
				"email":    "wall@example.com",
				"password": "short",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, repo := setupAuth(t)
			rec := doRequest(e, http.MethodPost, "/api/user/register", "", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorMessage(rec))
				assert.Empty(t, repo.users)
				return
			}

			require.Len(t, repo.users, 1)
			assert.NotEqual(t, "password123", repo.users[0].Password, "password must be stored hashed")

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "walluser", body["username"])
			assert.NotContains(t, body, "password")
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e, _ := setupAuth(t)
	payload := map[string]string{
		"username": "walluser",
		"email":    "wall@example.com",
		"password": "password123",
	}

	rec := doRequest(e, http.MethodPost, "/api/user/register", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/user/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", errorMessage(rec))
}

func TestLogin(t *testing.T) {
	e, repo := setupAuth(t)
	register := map[string]string{
		"username": "walluser",
		"email":    "wall@example.com",
		"password": "password123",
	}
	rec := doRequest(e, http.MethodPost, "/api/user/register", "", register)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("successful login returns a signed token", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/user/login", "", map[string]string{
			"email":    "wall@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		tokenString, _ := body["auth-token"].(string)
		require.NotEmpty(t, tokenString)
		assert.Equal(t, tokenString, rec.Header().Get("auth-token"))

		claims := &models.JwtCustomClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, repo.users[0].ID.Hex(), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/user/login", "", map[string]string{
			"email":    "wall@example.com",
			"password": "wrongpassword",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid password", errorMessage(rec))
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/user/login", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "password123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "User does not exist", errorMessage(rec))
	})
}
