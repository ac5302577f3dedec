package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type memoryConfigCache struct {
	cfg         *models.StudioConfig
	invalidated bool
}

func (m *memoryConfigCache) Get(context.Context) (*models.StudioConfig, bool) {
	return m.cfg, m.cfg != nil
}

func (m *memoryConfigCache) Set(_ context.Context, cfg *models.StudioConfig) {
	cp := *cfg
	m.cfg = &cp
}

func (m *memoryConfigCache) Invalidate(context.Context) {
	m.cfg = nil
	m.invalidated = true
}

func TestStudioConfigHandler_Get(t *testing.T) {
	t.Run("database error falls back to defaults", func(t *testing.T) {
		db, mock := newMockDB(t)
		h := NewStudioConfigHandler(db, nil, nil)
		r := newRouter()
		r.GET("/auth/studio/config", h.Get)

		mock.ExpectQuery(`FROM "config"`).WillReturnError(errors.New("relation does not exist"))

		w := doJSON(r, http.MethodGet, "/auth/studio/config", nil)

		require.Equal(t, http.StatusOK, w.Code)
		out := decode[models.StudioConfig](t, w)
		assert.Equal(t, models.DefaultStudioConfig().StudioName, out.StudioName)
		assert.Equal(t, "#ff4500", out.PrimaryColor)
	})

	t.Run("row fills blanks with defaults and is cached", func(t *testing.T) {
		db, mock := newMockDB(t)
		cache := &memoryConfigCache{}
		h := NewStudioConfigHandler(db, cache, nil)
		r := newRouter()
		r.GET("/auth/studio/config", h.Get)

		mock.ExpectQuery(`FROM "config"`).WillReturnRows(
			sqlmock.NewRows([]string{"id", "nome_estudio", "logo_path", "cor_primaria", "fonte"}).
				AddRow(1, "Tinta Fina", "/logo.png", "", ""),
		)

		w := doJSON(r, http.MethodGet, "/auth/studio/config", nil)
		require.Equal(t, http.StatusOK, w.Code)
		out := decode[models.StudioConfig](t, w)
		assert.Equal(t, "Tinta Fina", out.StudioName)
		assert.Equal(t, "#ff4500", out.PrimaryColor)

		// segunda leitura vem do cache, sem nova query
		w = doJSON(r, http.MethodGet, "/auth/studio/config", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStudioConfigHandler_UpdateInvalidatesCache(t *testing.T) {
	db, mock := newMockDB(t)
	cache := &memoryConfigCache{cfg: &models.StudioConfig{StudioName: "old"}}
	h := NewStudioConfigHandler(db, cache, nil)
	r := newRouter()
	r.PUT("/auth/studio/config", h.Update)

	mock.ExpectQuery(`INSERT INTO "config" .* ON CONFLICT`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	w := doJSON(r, http.MethodPut, "/auth/studio/config", map[string]any{
		"studio_name":   "Tinta Fina",
		"primary_color": "#000000",
	})

	require.Equal(t, http.StatusOK, w.Code)
	out := decode[models.StudioConfig](t, w)
	assert.Equal(t, "Tinta Fina", out.StudioName)
	assert.Equal(t, "Roboto, Arial, sans-serif", out.FontFamily)
	assert.True(t, cache.invalidated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
