package db

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// Models na ordem de criação (referenciados antes de quem referencia).
func Models() []any {
	return []any{
		&models.StudioConfig{},
		&models.Employee{},
		&models.User{},
		&models.Client{},
		&models.ClientHistoryEntry{},
		&models.Appointment{},
		&models.ApprovalRequest{},
		&models.ScheduleBlock{},
		&models.BlockHistory{},
		&models.AuditLog{},
	}
}

// Inspector é a parte do gorm.Migrator usada aqui.
type Inspector interface {
	HasTable(dst any) bool
	CreateTable(dst ...any) error
	HasColumn(dst any, field string) bool
	AddColumn(dst any, field string) error
	HasIndex(dst any, name string) bool
	CreateIndex(dst any, name string) error
}

// Change descreve o que o migrador fez (log e testes).
type Change struct {
	Table  string
	Action string
	Target string
}

// Migrator cria tabelas que faltam e adiciona colunas/índices que faltam.
// Nunca remove nem altera tipo de coluna, e não há tabela de versão.
type Migrator struct {
	inspector Inspector
	log       *zap.Logger
	cache     *sync.Map
}

func NewMigrator(inspector Inspector, log *zap.Logger) *Migrator {
	return &Migrator{inspector: inspector, log: logger.OrNop(log).Named("migrate"), cache: &sync.Map{}}
}

func (m *Migrator) Run(dst ...any) ([]Change, error) {
	var changes []Change

	for _, model := range dst {
		s, err := schema.Parse(model, m.cache, schema.NamingStrategy{})
		if err != nil {
			return changes, fmt.Errorf("parse %T: %w", model, err)
		}

		if !m.inspector.HasTable(model) {
			if err := m.inspector.CreateTable(model); err != nil {
				return changes, fmt.Errorf("create table %s: %w", s.Table, err)
			}
			changes = append(changes, Change{Table: s.Table, Action: "create_table"})
			m.log.Info("table created", zap.String("table", s.Table))
			continue
		}

		for _, f := range s.Fields {
			if f.DBName == "" || f.IgnoreMigration {
				continue
			}
			if m.inspector.HasColumn(model, f.DBName) {
				continue
			}
			if err := m.inspector.AddColumn(model, f.Name); err != nil {
				return changes, fmt.Errorf("add column %s.%s: %w", s.Table, f.DBName, err)
			}
			changes = append(changes, Change{Table: s.Table, Action: "add_column", Target: f.DBName})
			m.log.Info("column added", zap.String("table", s.Table), zap.String("column", f.DBName))
		}

		for _, idx := range s.ParseIndexes() {
			if m.inspector.HasIndex(model, idx.Name) {
				continue
			}
			if err := m.inspector.CreateIndex(model, idx.Name); err != nil {
				return changes, fmt.Errorf("create index %s: %w", idx.Name, err)
			}
			changes = append(changes, Change{Table: s.Table, Action: "create_index", Target: idx.Name})
			m.log.Info("index created", zap.String("table", s.Table), zap.String("index", idx.Name))
		}
	}

	return changes, nil
}

// Migrate roda o migrador sobre todos os models.
func Migrate(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	return migrate(db.WithContext(ctx).Migrator(), log)
}

func migrate(inspector Inspector, log *zap.Logger) error {
	log = logger.OrNop(log)

	changes, err := NewMigrator(inspector, log).Run(Models()...)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		log.Debug("schema up to date")
	}
	return nil
}
