package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	dbpkg "github.com/BruksfildServices01/studio-scheduler/internal/db"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/infra/imaging"
	"github.com/BruksfildServices01/studio-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// MaxFormUploadBytes limita a foto da ficha antes da conversão.
const MaxFormUploadBytes = 15 << 20

type ClientHandler struct {
	db    *gorm.DB
	store storage.Store
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewClientHandler(
	db *gorm.DB,
	store storage.Store,
	dispatcher *audit.Dispatcher,
	log *zap.Logger,
) *ClientHandler {
	return &ClientHandler{
		db:    db,
		store: store,
		audit: dispatcher,
		log:   logger.OrNop(log).Named("client"),
		now:   time.Now,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name    string   `json:"nome" binding:"required"`
	Phone   string   `json:"telefone"`
	Mobile  string   `json:"celular"`
	Email   string   `json:"email"`
	CPF     string   `json:"cpf"`
	Address string   `json:"endereco"`
	Notes   string   `json:"informacao"`
	Amount  *float64 `json:"valor"`
	Status  string   `json:"status"`

	Procedure           string `json:"procedimento"`
	Allergies           string `json:"alergias"`
	UsesAnestheticCream string `json:"usa_pomada_anestesica"`
	Smokes              string `json:"fuma"`
	Drinks              string `json:"bebe"`

	EmployeeID   *uint  `json:"funcionario_id"`
	RegisteredAt string `json:"data_cadastro"`
}

// apply copia os campos editáveis; defaultStatus vale quando status vem vazio.
func (r ClientRequest) apply(cl *models.Client, defaultStatus string) error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return httperr.ErrBusiness("missing_name")
	}

	status := strings.TrimSpace(r.Status)
	if status == "" {
		status = defaultStatus
	}
	if status != models.ClientStatusPreRegistered && status != models.ClientStatusConfirmed {
		return httperr.ErrBusiness("invalid_status")
	}

	cl.Name = name
	cl.Phone = strings.TrimSpace(r.Phone)
	cl.Mobile = strings.TrimSpace(r.Mobile)
	cl.Email = strings.TrimSpace(r.Email)
	cl.CPF = strings.TrimSpace(r.CPF)
	cl.Address = strings.TrimSpace(r.Address)
	cl.Notes = r.Notes
	cl.Amount = r.Amount
	cl.Status = status
	cl.Procedure = r.Procedure
	cl.Allergies = r.Allergies
	cl.UsesAnestheticCream = r.UsesAnestheticCream
	cl.Smokes = r.Smokes
	cl.Drinks = r.Drinks
	cl.EmployeeID = r.EmployeeID
	cl.RegisteredAt = strings.TrimSpace(r.RegisteredAt)
	return nil
}

type HistoryRequest struct {
	Kind        string   `json:"tipo" binding:"required"`
	Description string   `json:"descricao"`
	Amount      *float64 `json:"valor"`
	EmployeeID  *uint    `json:"funcionario_id"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.Client{})

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(nome) LIKE ? OR telefone LIKE ? OR celular LIKE ?", like, like, like)
	}

	var clients []models.Client
	if err := q.Order("nome ASC").Find(&clients).Error; err != nil {
		respondError(c, h.log, err, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.Slice(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	cl, err := h.find(c, id)
	if err != nil {
		respondError(c, h.log, err, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}

	httpresp.OK(c, cl)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	var cl models.Client
	if err := req.apply(&cl, models.ClientStatusPreRegistered); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&cl).Error; err != nil {
		respondError(c, h.log, err, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	h.dispatch(c, "client_created", cl.ID, nil)
	httpresp.Created(c, gin.H{"id": cl.ID, "message": "Cliente criado"})
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	cl, err := h.find(c, id)
	if err != nil {
		respondError(c, h.log, err, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}

	if err := req.apply(cl, models.ClientStatusConfirmed); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(cl).Error; err != nil {
		respondError(c, h.log, err, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	h.dispatch(c, "client_updated", cl.ID, nil)
	httpresp.Message(c, "Cliente atualizado")
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Client{}, id)
	if res.Error != nil {
		respondError(c, h.log, res.Error, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.FromError(c, httperr.ErrBusiness("client_not_found"))
		return
	}

	h.dispatch(c, "client_deleted", id, nil)
	httpresp.Message(c, "Cliente deletado")
}

// ======================================================
// FICHA
// ======================================================

// UploadForm recebe a foto da ficha (campo "file"), converte para WebP
// e grava no storage configurado.
func (h *ClientHandler) UploadForm(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.find(c, id); err != nil {
		respondError(c, h.log, err, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie a imagem da ficha no campo file.")
		return
	}
	if fh.Size > MaxFormUploadBytes {
		httperr.BadRequest(c, "invalid_file", "Arquivo muito grande.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Não foi possível ler o arquivo.")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, MaxFormUploadBytes+1))
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Não foi possível ler o arquivo.")
		return
	}

	converted, err := imaging.ToWebP(raw, imaging.DefaultMaxDimension)
	if err != nil {
		h.log.Info("form upload rejected", zap.Uint("client_id", id), zap.Error(err))
		httperr.BadRequest(c, "invalid_file", "Arquivo de imagem inválido.")
		return
	}

	ctx := c.Request.Context()
	name := storage.FormObjectName(id, h.now(), fh.Filename, ".webp")

	path, err := h.store.Save(ctx, name, imaging.ContentTypeWebP, converted)
	if err != nil {
		respondError(c, h.log, err, "failed_to_store_form", "Erro ao salvar a ficha.")
		return
	}

	if err := h.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Updates(map[string]any{"tem_ficha": true, "ficha_path": path}).Error; err != nil {

		respondError(c, h.log, err, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	h.dispatch(c, "client_form_uploaded", id, map[string]any{"ficha_path": path})

	httpresp.OK(c, gin.H{
		"success":  true,
		"message":  "Ficha anexada com sucesso",
		"filename": name,
		"filepath": path,
	})
}

// ======================================================
// HISTÓRICO
// ======================================================

// ListHistory devolve [] quando a tabela de histórico ainda não existe.
func (h *ClientHandler) ListHistory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var entries []models.ClientHistoryEntry
	err := h.db.WithContext(c.Request.Context()).
		Where("cliente_id = ?", id).
		Order("data_registro DESC").
		Find(&entries).Error
	if err != nil {
		if dbpkg.IsUndefinedTable(err) {
			h.log.Warn("client history table missing")
			httpresp.Slice(c, []models.ClientHistoryEntry{})
			return
		}
		respondError(c, h.log, err, "failed_to_list_history", "Erro ao listar histórico.")
		return
	}

	httpresp.Slice(c, entries)
}

func (h *ClientHandler) AddHistory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req HistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	if _, err := h.find(c, id); err != nil {
		respondError(c, h.log, err, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}

	entry := models.ClientHistoryEntry{
		ClientID:    id,
		Kind:        strings.TrimSpace(req.Kind),
		Description: req.Description,
		Amount:      req.Amount,
		EmployeeID:  req.EmployeeID,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&entry).Error; err != nil {
		respondError(c, h.log, err, "failed_to_add_history", "Erro ao adicionar histórico.")
		return
	}

	h.dispatch(c, "client_history_added", id, map[string]any{
		"historico_id": entry.ID,
		"tipo":         entry.Kind,
	})

	c.JSON(http.StatusCreated, gin.H{"id": entry.ID, "message": "Histórico adicionado"})
}

// ======================================================
// HELPERS
// ======================================================

func (h *ClientHandler) find(c *gin.Context, id uint) (*models.Client, error) {
	var cl models.Client
	if err := h.db.WithContext(c.Request.Context()).First(&cl, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}
	return &cl, nil
}

func (h *ClientHandler) dispatch(c *gin.Context, action string, id uint, meta any) {
	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   action,
		Entity:   "client",
		EntityID: &id,
		Metadata: meta,
	})
}
