package block

import (
	"fmt"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type Result struct {
	Blocked bool                  `json:"bloqueado"`
	Kind    string                `json:"tipo_bloqueio,omitempty"`
	Reason  string                `json:"motivo,omitempty"`
	Block   *models.ScheduleBlock `json:"-"`
}

// Check avalia todos os bloqueios do funcionário na data.
// Lista de horários malformada não bloqueia; os ids vão em malformed.
func Check(rows []models.ScheduleBlock, hhmm string) (res Result, malformed []uint) {
	for i := range rows {
		b := &rows[i]

		switch b.Kind {
		case models.BlockKindFullDay:
			return Result{Blocked: true, Kind: b.Kind, Reason: b.Reason, Block: b}, malformed

		case models.BlockKindSpecificTimes:
			times, err := DecodeTimes(b.Times)
			if err != nil {
				malformed = append(malformed, b.ID)
				continue
			}
			for _, t := range times {
				if t == hhmm {
					return Result{Blocked: true, Kind: b.Kind, Reason: b.Reason, Block: b}, malformed
				}
			}
		}
	}

	return Result{}, malformed
}

// ConflictError converte um resultado bloqueado no erro de negócio.
func ConflictError(res Result, date, hhmm string) error {
	if !res.Blocked {
		return nil
	}
	if res.Kind == models.BlockKindFullDay {
		return httperr.NewBusiness(
			"date_blocked",
			fmt.Sprintf("Funcionário bloqueado na data %s.", date),
		)
	}
	return httperr.NewBusiness(
		"time_blocked",
		fmt.Sprintf("Horário %s bloqueado para este funcionário.", hhmm),
	)
}
