package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
)

func TestAuthHandler_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("2512"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret"}
	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "login", "senha_hash", "tipo", "funcionario_id", "created_at", "updated_at"}).
			AddRow(7, "rafa", string(hash), "funcionario", 3, time.Now(), time.Now())
	}

	t.Run("valid credentials", func(t *testing.T) {
		db, mock := newMockDB(t)
		h := NewAuthHandler(db, cfg, nil)
		r := newRouter()
		r.POST("/auth/login", h.Login)

		mock.ExpectQuery(`SELECT \* FROM "usuarios" WHERE login = \$1`).WillReturnRows(userRows())

		w := doJSON(r, http.MethodPost, "/auth/login", map[string]any{"login": " rafa ", "senha": "2512"})

		require.Equal(t, http.StatusOK, w.Code)
		out := decode[LoginResponse](t, w)
		assert.Equal(t, uint(7), out.ID)
		assert.Equal(t, "funcionario", out.Role)
		require.NotNil(t, out.EmployeeID)
		assert.Equal(t, uint(3), *out.EmployeeID)

		var claims middleware.Claims
		_, err := jwt.ParseWithClaims(out.Token, &claims, func(*jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "7", claims.Subject)
		assert.Equal(t, "rafa", claims.Login)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong password", func(t *testing.T) {
		db, mock := newMockDB(t)
		h := NewAuthHandler(db, cfg, nil)
		r := newRouter()
		r.POST("/auth/login", h.Login)

		mock.ExpectQuery(`FROM "usuarios"`).WillReturnRows(userRows())

		w := doJSON(r, http.MethodPost, "/auth/login", map[string]any{"login": "rafa", "senha": "x"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid_credentials", errorCode(t, w))
	})

	t.Run("unknown login", func(t *testing.T) {
		db, mock := newMockDB(t)
		h := NewAuthHandler(db, cfg, nil)
		r := newRouter()
		r.POST("/auth/login", h.Login)

		mock.ExpectQuery(`FROM "usuarios"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := doJSON(r, http.MethodPost, "/auth/login", map[string]any{"login": "ghost", "senha": "x"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("database down", func(t *testing.T) {
		db, mock := newMockDB(t)
		h := NewAuthHandler(db, cfg, nil)
		r := newRouter()
		r.POST("/auth/login", h.Login)

		mock.ExpectQuery(`FROM "usuarios"`).WillReturnError(errors.New("connection refused"))

		w := doJSON(r, http.MethodPost, "/auth/login", map[string]any{"login": "rafa", "senha": "x"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		db, _ := newMockDB(t)
		h := NewAuthHandler(db, cfg, nil)
		r := newRouter()
		r.POST("/auth/login", h.Login)

		w := doJSON(r, http.MethodPost, "/auth/login", map[string]any{"login": "rafa"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
