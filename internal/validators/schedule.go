package validators

import (
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

// IsDate aceita apenas YYYY-MM-DD válido (sem 2026-02-30).
func IsDate(s string) bool {
	if len(s) != len(timezone.DateLayout) {
		return false
	}
	_, err := time.Parse(timezone.DateLayout, s)
	return err == nil
}

// IsTime aceita apenas HH:MM com dois dígitos.
func IsTime(s string) bool {
	if len(s) != len(timezone.TimeLayout) {
		return false
	}
	_, err := time.Parse(timezone.TimeLayout, s)
	return err == nil
}

func IsPercent(p float64) bool {
	return p >= 0 && p <= 100
}

func IsMonth(m int) bool {
	return m >= 1 && m <= 12
}
