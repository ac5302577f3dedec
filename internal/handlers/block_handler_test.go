package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/block"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	ucBlock "github.com/BruksfildServices01/studio-scheduler/internal/usecase/block"
)

// blockStore guarda só o necessário para as rotas testadas aqui.
type blockStore struct {
	blocks  map[uint]*models.ScheduleBlock
	history []models.BlockHistory
	nextID  uint
}

func newBlockStore() *blockStore {
	return &blockStore{blocks: map[uint]*models.ScheduleBlock{}, nextID: 1}
}

func (s *blockStore) EmployeeExists(_ context.Context, id uint) (bool, error) {
	return id == 4, nil
}

func (s *blockStore) ListForEmployeeDay(_ context.Context, employeeID uint, date string) ([]models.ScheduleBlock, error) {
	var out []models.ScheduleBlock
	for _, b := range s.blocks {
		if b.EmployeeID == employeeID && b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *blockStore) ListForEmployee(context.Context, uint) ([]models.ScheduleBlock, error) {
	return nil, nil
}

func (s *blockStore) ListActive(context.Context, string) ([]domain.ActiveBlock, error) {
	return nil, nil
}

func (s *blockStore) ListHistory(context.Context, uint) ([]domain.HistoryRow, error) {
	return nil, nil
}

func (s *blockStore) Get(_ context.Context, id uint) (*models.ScheduleBlock, error) {
	b, ok := s.blocks[id]
	if !ok {
		return nil, httperr.ErrBusiness("block_not_found")
	}
	cp := *b
	return &cp, nil
}

func (s *blockStore) Create(_ context.Context, b *models.ScheduleBlock, h *models.BlockHistory) error {
	b.ID = s.nextID
	s.nextID++
	cp := *b
	s.blocks[b.ID] = &cp
	if h != nil {
		s.history = append(s.history, *h)
	}
	return nil
}

func (s *blockStore) Update(_ context.Context, b *models.ScheduleBlock) error {
	cp := *b
	s.blocks[b.ID] = &cp
	return nil
}

func (s *blockStore) Delete(_ context.Context, id uint, h *models.BlockHistory) error {
	if _, ok := s.blocks[id]; !ok {
		return httperr.ErrBusiness("block_not_found")
	}
	delete(s.blocks, id)
	if h != nil {
		s.history = append(s.history, *h)
	}
	return nil
}

func newBlockRouter(store *blockStore) *gin.Engine {
	h := NewBlockHandler(
		ucBlock.NewCreateBlock(store, nil, nil),
		ucBlock.NewUpdateBlock(store, nil, nil),
		ucBlock.NewDeleteBlock(store, nil, nil),
		ucBlock.NewCheckBlock(store, nil),
		ucBlock.NewListBlocks(store, nil),
		nil,
	)

	r := newRouter()
	r.POST("/bloqueios/", h.Create)
	r.POST("/bloqueios/gestor/bloquear", h.ManagerBlock)
	r.DELETE("/bloqueios/gestor/:id", h.ManagerUnblock)
	r.GET("/bloqueios/verificar", h.Check)
	r.GET("/bloqueios/:id", h.Get)
	r.PUT("/bloqueios/:id", h.Update)
	return r
}

func TestBlockTimes_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{name: "array", in: `["10:00","11:00"]`, want: []string{"10:00", "11:00"}},
		{name: "serialized string", in: `"[\"10:00\",\"11:00\"]"`, want: []string{"10:00", "11:00"}},
		{name: "empty string", in: `""`, want: nil},
		{name: "null", in: `null`, want: nil},
		{name: "garbage string", in: `"10:00"`, wantErr: true},
		{name: "number", in: `10`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got BlockTimes
			err := json.Unmarshal([]byte(tc.in), &got)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, []string(got))
		})
	}
}

func TestBlockHandler_ManagerFlow(t *testing.T) {
	store := newBlockStore()
	r := newBlockRouter(store)

	w := doJSON(r, http.MethodPost, "/bloqueios/gestor/bloquear", map[string]any{
		"funcionario_id":      4,
		"data":                "2026-03-10",
		"tipo_bloqueio":       "horarios_especificos",
		"horarios_bloqueados": `["14:00","15:00"]`,
		"motivo":              "curso",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"ok":true,"id":1}`, w.Body.String())

	require.Len(t, store.history, 1)
	assert.Equal(t, uint(1), store.history[0].ManagerID)
	assert.Equal(t, models.BlockActionBlock, store.history[0].Action)

	w = doJSON(r, http.MethodGet, "/bloqueios/verificar?funcionario_id=4&data=2026-03-10&horario=15:00", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bloqueado":true,"tipo_bloqueio":"horarios_especificos","motivo":"curso"}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/bloqueios/verificar?funcionario_id=4&data=2026-03-10&horario=16:00", nil)
	assert.JSONEq(t, `{"bloqueado":false}`, w.Body.String())

	// sem corpo: motivo vazio
	w = doJSON(r, http.MethodDelete, "/bloqueios/gestor/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.history, 2)
	assert.Equal(t, models.BlockActionUnblock, store.history[1].Action)
	assert.Empty(t, store.history[1].Reason)

	w = doJSON(r, http.MethodGet, "/bloqueios/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlockHandler_CreateByEmployeeHasNoHistory(t *testing.T) {
	store := newBlockStore()
	r := newBlockRouter(store)

	w := doJSON(r, http.MethodPost, "/bloqueios/", map[string]any{
		"funcionario_id": 4,
		"data":           "2026-03-11",
		"tipo_bloqueio":  "dia_completo",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, store.history)

	w = doJSON(r, http.MethodPost, "/bloqueios/", map[string]any{
		"funcionario_id": 9,
		"data":           "2026-03-11",
		"tipo_bloqueio":  "dia_completo",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "employee_not_found", errorCode(t, w))
}

func TestBlockHandler_CheckValidation(t *testing.T) {
	r := newBlockRouter(newBlockStore())

	w := doJSON(r, http.MethodGet, "/bloqueios/verificar?data=2026-03-10&horario=10:00", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_funcionario_id", errorCode(t, w))

	w = doJSON(r, http.MethodGet, "/bloqueios/verificar?funcionario_id=4&data=10/03/2026&horario=10:00", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", errorCode(t, w))
}

func TestBlockHandler_UpdateNothing(t *testing.T) {
	r := newBlockRouter(newBlockStore())

	w := doJSON(r, http.MethodPut, "/bloqueios/1", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "nothing_to_update", errorCode(t, w))
}
