package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

func TestBlockGormRepository_DeleteMissingSkipsHistory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlockGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "bloqueios"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 7, &models.BlockHistory{ManagerID: 1, Action: "desbloquear"})

	assert.True(t, httperr.IsBusiness(err, "block_not_found"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlockGormRepository_ListHistoryJoinsNames(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlockGormRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "gestor_id", "funcionario_id", "data", "tipo_bloqueio", "horarios_bloqueados",
		"acao", "motivo", "criado_em", "gestor_login", "funcionario_nome",
	}).AddRow(1, 1, 4, "2026-03-10", "dia_completo", "[]", "bloquear", "folga", time.Now(), "gestor", nil)

	mock.ExpectQuery(`FROM bloqueios_historico h LEFT JOIN usuarios u ON u.id = h.gestor_id LEFT JOIN funcionarios f`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	out, err := repo.ListHistory(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "gestor", out[0].ManagerLogin)
	assert.Equal(t, "", out[0].EmployeeName)
	assert.Equal(t, "bloquear", out[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlockGormRepository_EmployeeExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlockGormRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "funcionarios"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.EmployeeExists(context.Background(), 4)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
