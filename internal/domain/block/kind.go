package block

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

func IsValidKind(kind string) bool {
	return kind == models.BlockKindFullDay || kind == models.BlockKindSpecificTimes
}

// Normalize valida o par tipo/horários e devolve a lista já codificada.
// Dia completo ignora qualquer lista enviada.
func Normalize(kind string, times []string) (string, error) {
	if !IsValidKind(kind) {
		return "", httperr.ErrBusiness("invalid_block_kind")
	}

	if kind == models.BlockKindFullDay {
		return EncodeTimes(nil), nil
	}

	if len(times) == 0 {
		return "", httperr.ErrBusiness("missing_block_times")
	}

	seen := make(map[string]bool, len(times))
	clean := make([]string, 0, len(times))
	for _, t := range times {
		t = strings.TrimSpace(t)
		if !validators.IsTime(t) {
			return "", httperr.NewBusiness("invalid_block_times", "Horário inválido na lista: "+t)
		}
		if !seen[t] {
			seen[t] = true
			clean = append(clean, t)
		}
	}
	sort.Strings(clean)

	return EncodeTimes(clean), nil
}

func EncodeTimes(times []string) string {
	if times == nil {
		times = []string{}
	}
	b, _ := json.Marshal(times)
	return string(b)
}

// DecodeTimes lê a coluna horarios_bloqueados. Vazio vira lista vazia.
func DecodeTimes(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
