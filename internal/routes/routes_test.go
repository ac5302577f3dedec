package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

func newEngine(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		Timezone:        "America/Sao_Paulo",
		CORSOrigins:     []string{"http://localhost:5173"},
		LoginRatePerMin: 20,
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NotPanics(t, func() {
		RegisterRoutes(r, Deps{DB: db, Config: cfg})
	})
	return r, cfg
}

func TestRegisterRoutes_PublicAndSecured(t *testing.T) {
	r, cfg := newEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	secured := []struct{ method, path string }{
		{http.MethodGet, "/agenda/2026-03-10"},
		{http.MethodGet, "/agenda/dashboard/proximos"},
		{http.MethodPut, "/agenda/1/pagamento-com-historico"},
		{http.MethodGet, "/funcionarios/"},
		{http.MethodGet, "/clientes/1/historico"},
		{http.MethodGet, "/solicitacoes/"},
		{http.MethodPost, "/financeiro/totais-mes"},
		{http.MethodGet, "/bloqueios/ativos"},
		{http.MethodGet, "/bloqueios/verificar"},
		{http.MethodPost, "/ocr/ficha"},
		{http.MethodPut, "/auth/studio/config"},
		{http.MethodGet, "/auth/me"},
		{http.MethodGet, "/auditoria/"},
	}
	for _, rt := range secured {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(rt.method, rt.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, rt.method+" "+rt.path)
	}

	// funcionário autenticado não vê a auditoria
	tok := employeeToken(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/auditoria/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func employeeToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	emp := uint(3)
	tok, err := middleware.SignToken(cfg.JWTSecret, 7, "rafa", models.UserRoleEmployee, &emp, time.Now())
	require.NoError(t, err)
	return tok
}

func TestRegisterRoutes_ManagerRoutesRejectEmployees(t *testing.T) {
	r, cfg := newEngine(t)
	tok := employeeToken(t, cfg)

	managerRoutes := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/solicitacoes/", ""},
		{http.MethodPost, "/solicitacoes/1/aprovar", ""},
		{http.MethodPost, "/solicitacoes/1/rejeitar", ""},
		{http.MethodPost, "/bloqueios/gestor/bloquear", `{"funcionario_id":3,"data":"2026-03-10","tipo_bloqueio":"dia_completo"}`},
		{http.MethodDelete, "/bloqueios/gestor/1", ""},
		{http.MethodPost, "/funcionarios/", `{"nome":"Bia"}`},
		{http.MethodPut, "/funcionarios/", `{"id":5,"nome":"Bia"}`},
		{http.MethodDelete, "/funcionarios/5", ""},
		{http.MethodPost, "/financeiro/resumo-periodo", `{"data_ini":"2026-03-01","data_fim":"2026-03-31"}`},
		{http.MethodPost, "/financeiro/totais-mes", `{"ano":2026,"mes":3}`},
		{http.MethodGet, "/auditoria/", ""},
	}

	for _, rt := range managerRoutes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, strings.NewReader(rt.body))
			req.Header.Set("Authorization", "Bearer "+tok)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Contains(t, w.Body.String(), `"error_code":"forbidden"`)
		})
	}
}

func TestRegisterRoutes_EmployeeKeepsOwnRoutes(t *testing.T) {
	r, cfg := newEngine(t)
	tok := employeeToken(t, cfg)

	// passa pelo RequireRole e chega na validação do handler, sem tocar no banco
	req := httptest.NewRequest(http.MethodGet, "/bloqueios/verificar?data=2026-03-10", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_funcionario_id")
}
