package handlers

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/block"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	ucBlock "github.com/BruksfildServices01/studio-scheduler/internal/usecase/block"
)

// ======================================================
// HANDLER
// ======================================================

type BlockHandler struct {
	createUC *ucBlock.CreateBlock
	updateUC *ucBlock.UpdateBlock
	deleteUC *ucBlock.DeleteBlock
	checkUC  *ucBlock.CheckBlock
	listUC   *ucBlock.ListBlocks
	log      *zap.Logger
}

func NewBlockHandler(
	createUC *ucBlock.CreateBlock,
	updateUC *ucBlock.UpdateBlock,
	deleteUC *ucBlock.DeleteBlock,
	checkUC *ucBlock.CheckBlock,
	listUC *ucBlock.ListBlocks,
	log *zap.Logger,
) *BlockHandler {
	return &BlockHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		checkUC:  checkUC,
		listUC:   listUC,
		log:      logger.OrNop(log).Named("block"),
	}
}

// ======================================================
// REQUESTS
// ======================================================

// BlockTimes aceita a lista como array JSON ou como string com o array
// serializado (formato antigo do front).
type BlockTimes []string

func (t *BlockTimes) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = nil
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			*t = nil
			return nil
		}
		list, err := domain.DecodeTimes(raw)
		if err != nil {
			return err
		}
		*t = list
		return nil
	}

	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*t = list
	return nil
}

type CreateBlockRequest struct {
	EmployeeID uint       `json:"funcionario_id" binding:"required"`
	Date       string     `json:"data" binding:"required"`
	Kind       string     `json:"tipo_bloqueio" binding:"required"`
	Times      BlockTimes `json:"horarios_bloqueados"`
	Reason     string     `json:"motivo"`
}

type UpdateBlockRequest struct {
	Date   *string    `json:"data"`
	Kind   *string    `json:"tipo_bloqueio"`
	Times  BlockTimes `json:"horarios_bloqueados"`
	Reason *string    `json:"motivo"`
}

type ManagerUnblockRequest struct {
	Reason string `json:"motivo"`
}

// ======================================================
// WRITE
// ======================================================

// Create: bloqueio feito pelo próprio funcionário, sem histórico.
func (h *BlockHandler) Create(c *gin.Context) {
	h.create(c, false)
}

// ManagerBlock grava também o histórico "bloquear" com o gestor do token.
func (h *BlockHandler) ManagerBlock(c *gin.Context) {
	h.create(c, true)
}

func (h *BlockHandler) create(c *gin.Context, byManager bool) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados do bloqueio inválidos.")
		return
	}

	in := ucBlock.CreateBlockInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Kind:       req.Kind,
		Times:      req.Times,
		Reason:     req.Reason,
	}
	if byManager {
		in.ManagerID = middleware.CurrentUserID(c)
	}

	b, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_block", "Erro ao criar bloqueio.")
		return
	}

	httpresp.Created(c, gin.H{"ok": true, "id": b.ID})
}

func (h *BlockHandler) ManagerUnblock(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	// corpo opcional: só o motivo
	var req ManagerUnblockRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badBody(c)
			return
		}
	}

	err := h.deleteUC.Execute(c.Request.Context(), ucBlock.DeleteBlockInput{
		BlockID:   id,
		ManagerID: middleware.CurrentUserID(c),
		Reason:    req.Reason,
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_delete_block", "Erro ao remover bloqueio.")
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

func (h *BlockHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), id, domain.Changes{
		Date:   req.Date,
		Kind:   req.Kind,
		Times:  req.Times,
		Reason: req.Reason,
	}, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.log, err, "failed_to_update_block", "Erro ao atualizar bloqueio.")
		return
	}

	httpresp.OK(c, gin.H{"ok": true, "id": b.ID})
}

func (h *BlockHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ucBlock.DeleteBlockInput{BlockID: id}); err != nil {
		respondError(c, h.log, err, "failed_to_delete_block", "Erro ao remover bloqueio.")
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

// ======================================================
// READ
// ======================================================

func (h *BlockHandler) ListForEmployee(c *gin.Context) {
	employeeID, ok := idParam(c, "fid")
	if !ok {
		return
	}

	out, err := h.listUC.ForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_blocks", "Erro ao listar bloqueios.")
		return
	}
	httpresp.Slice(c, out)
}

func (h *BlockHandler) ListActive(c *gin.Context) {
	out, err := h.listUC.Active(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_blocks", "Erro ao listar bloqueios.")
		return
	}
	httpresp.Slice(c, out)
}

func (h *BlockHandler) History(c *gin.Context) {
	employeeID, ok := idParam(c, "fid")
	if !ok {
		return
	}

	out, err := h.listUC.History(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_block_history", "Erro ao listar histórico de bloqueios.")
		return
	}
	httpresp.Slice(c, out)
}

func (h *BlockHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	out, err := h.listUC.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "failed_to_get_block", "Erro ao buscar bloqueio.")
		return
	}
	httpresp.OK(c, out)
}

// Check: GET /bloqueios/verificar?funcionario_id=&data=&horario=
func (h *BlockHandler) Check(c *gin.Context) {
	employeeID, ok := optionalUintQuery(c, "funcionario_id")
	if !ok {
		return
	}
	if employeeID == nil {
		httperr.BadRequest(c, "missing_funcionario_id", "Informe funcionario_id.")
		return
	}

	res, err := h.checkUC.Execute(c.Request.Context(), *employeeID, c.Query("data"), c.Query("horario"))
	if err != nil {
		respondError(c, h.log, err, "failed_to_check_block", "Erro ao verificar bloqueio.")
		return
	}
	httpresp.OK(c, res)
}
