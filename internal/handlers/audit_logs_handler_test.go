package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogsHandler_List(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewAuditLogsHandler(db, time.UTC, nil)
	r := newRouter()
	r.GET("/auditoria/", h.List)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "auditoria" WHERE action = \$1 AND created_at >= \$2 AND created_at < \$3`).
		WithArgs("appointment_created", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "auditoria" WHERE .* ORDER BY created_at DESC LIMIT \$4 OFFSET \$5`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "entity", "created_at"}).
			AddRow(1, "appointment_created", "appointment", time.Now()))

	w := doJSON(r, http.MethodGet, "/auditoria/?action=appointment_created&from=2026-03-01&to=2026-03-31&page=2&limit=500", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode[AuditLogsResponse](t, w)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, auditDefaultLimit, out.Limit)
	assert.Equal(t, int64(1), out.Total)
	require.Len(t, out.Logs, 1)
	assert.Equal(t, "appointment_created", out.Logs[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}
