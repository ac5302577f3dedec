package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

type EmployeeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewEmployeeHandler(db *gorm.DB, dispatcher *audit.Dispatcher, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{db: db, audit: dispatcher, log: logger.OrNop(log).Named("employee")}
}

// ======================================================
// REQUESTS
// ======================================================

type EmployeeRequest struct {
	Name             string   `json:"nome" binding:"required"`
	Role             string   `json:"cargo"`
	PercEmployee     *float64 `json:"perc_funcionario"`
	RequiresApproval *bool    `json:"requer_aprovacao"`

	// senha do login vinculado; vazia mantém a atual
	Password string `json:"senha"`
}

type UpdateEmployeeRequest struct {
	ID uint `json:"id" binding:"required"`
	EmployeeRequest
}

// apply valida e copia os campos. Padrões: 70% e requer aprovação.
func (r EmployeeRequest) apply(emp *models.Employee) error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return httperr.ErrBusiness("missing_name")
	}

	perc := models.DefaultPercEmployee
	if r.PercEmployee != nil {
		perc = *r.PercEmployee
	}
	if !validators.IsPercent(perc) {
		return httperr.ErrBusiness("invalid_percent")
	}

	requires := true
	if r.RequiresApproval != nil {
		requires = *r.RequiresApproval
	}

	emp.Name = name
	emp.Role = strings.TrimSpace(r.Role)
	emp.SetPercEmployee(perc)
	emp.RequiresApproval = requires
	return nil
}

// ======================================================
// READ
// ======================================================

func (h *EmployeeHandler) List(c *gin.Context) {
	var list []models.Employee
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&list).Error; err != nil {

		respondError(c, h.log, err, "failed_to_list_employees", "Erro ao listar funcionários.")
		return
	}

	httpresp.Slice(c, list)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	emp, err := h.find(c, id)
	if err != nil {
		respondError(c, h.log, err, "failed_to_get_employee", "Erro ao buscar funcionário.")
		return
	}

	httpresp.OK(c, emp)
}

// ======================================================
// WRITE
// ======================================================

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	var emp models.Employee
	if err := req.apply(&emp); err != nil {
		httperr.FromError(c, err)
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&emp).Error; err != nil {
			return err
		}
		if req.Password == "" {
			return nil
		}
		return createLinkedUser(tx, &emp, req.Password)
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_employee", "Erro ao criar funcionário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "employee_created",
		Entity:   "employee",
		EntityID: &emp.ID,
	})

	c.JSON(http.StatusCreated, emp)
}

// Update segue o contrato do front: PUT /funcionarios/ com id no corpo.
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	emp, err := h.find(c, req.ID)
	if err != nil {
		respondError(c, h.log, err, "failed_to_get_employee", "Erro ao buscar funcionário.")
		return
	}

	if err := req.apply(emp); err != nil {
		httperr.FromError(c, err)
		return
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(emp).Error; err != nil {
			return err
		}
		if req.Password == "" {
			return nil
		}
		return setLinkedUserPassword(tx, emp, req.Password)
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_update_employee", "Erro ao atualizar funcionário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "employee_updated",
		Entity:   "employee",
		EntityID: &emp.ID,
	})

	httpresp.OK(c, emp)
}

// Delete remove bloqueios e logins do funcionário junto com ele.
// Agendamentos ficam sem funcionário (FK SET NULL).
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("funcionario_id = ?", id).Delete(&models.ScheduleBlock{}).Error; err != nil {
			return err
		}
		if err := tx.Where("funcionario_id = ?", id).Delete(&models.User{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Employee{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("employee_not_found")
		}
		return nil
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_delete_employee", "Erro ao remover funcionário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.CurrentUserID(c),
		Action:   "employee_deleted",
		Entity:   "employee",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"ok": true})
}

// ======================================================
// HELPERS
// ======================================================

func (h *EmployeeHandler) find(c *gin.Context, id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := h.db.WithContext(c.Request.Context()).First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("employee_not_found")
		}
		return nil, err
	}
	return &emp, nil
}

// createLinkedUser cria o login (login = nome). Login já existente é ignorado.
func createLinkedUser(tx *gorm.DB, emp *models.Employee, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Login:        emp.Name,
		PasswordHash: string(hash),
		Role:         models.RoleForEmployeeRole(emp.Role),
		EmployeeID:   &emp.ID,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "login"}},
		DoNothing: true,
	}).Create(&user).Error
}

// setLinkedUserPassword troca a senha do login vinculado, criando-o se faltar.
func setLinkedUserPassword(tx *gorm.DB, emp *models.Employee, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	res := tx.Model(&models.User{}).
		Where("funcionario_id = ?", emp.ID).
		Update("senha_hash", string(hash))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return createLinkedUser(tx, emp, password)
}
