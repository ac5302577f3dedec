package finance

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// Entry é um agendamento já filtrado, com os percentuais do funcionário.
// EmployeeID nil = agendamento sem funcionário.
type Entry struct {
	EmployeeID   *uint
	EmployeeName string
	PercStudio   float64
	PercEmployee float64
	Price        float64
	Type         string
}

type EmployeeSplit struct {
	ID            uint    `json:"id"`
	Name          string  `json:"nome"`
	PercStudio    float64 `json:"perc_estudio"`
	PercEmployee  float64 `json:"perc_funcionario"`
	Revenue       float64 `json:"faturamento"`
	StudioShare   float64 `json:"parte_estudio"`
	EmployeeShare float64 `json:"parte_funcionario"`
}

type PeriodSummary struct {
	Total        float64         `json:"faturamento_total"`
	StudioProfit float64         `json:"lucro_estudio"`
	ByEmployee   []EmployeeSplit `json:"por_funcionario"`
}

type MonthTotals struct {
	Total              float64 `json:"total_mes"`
	Tattoo             float64 `json:"total_tatuagem"`
	Piercing           float64 `json:"total_piercing"`
	Studio             float64 `json:"total_estudio"`
	PiercerCommission  float64 `json:"comissao_piercer"`
	TattooerCommission float64 `json:"comissao_tatuador"`
}

type group struct {
	name       string
	percStudio decimal.Decimal
	percEmp    decimal.Decimal
	revenue    decimal.Decimal
}

// Summarize agrega o período: o total considera todas as entradas,
// a quebra por funcionário só as que têm funcionário.
func Summarize(entries []Entry) PeriodSummary {
	total := decimal.Zero
	groups := map[uint]*group{}

	for _, e := range entries {
		price := decimal.NewFromFloat(e.Price)
		total = total.Add(price)

		if e.EmployeeID == nil {
			continue
		}

		g, ok := groups[*e.EmployeeID]
		if !ok {
			g = &group{
				name:       e.EmployeeName,
				percStudio: decimal.NewFromFloat(e.PercStudio),
				percEmp:    decimal.NewFromFloat(e.PercEmployee),
				revenue:    decimal.Zero,
			}
			groups[*e.EmployeeID] = g
		}
		g.revenue = g.revenue.Add(price)
	}

	ids := make([]uint, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	profit := decimal.Zero
	splits := make([]EmployeeSplit, 0, len(ids))
	for _, id := range ids {
		g := groups[id]
		studio := Share(g.revenue, g.percStudio)
		emp := Share(g.revenue, g.percEmp)
		profit = profit.Add(studio)

		splits = append(splits, EmployeeSplit{
			ID:            id,
			Name:          g.name,
			PercStudio:    g.percStudio.InexactFloat64(),
			PercEmployee:  g.percEmp.InexactFloat64(),
			Revenue:       g.revenue.InexactFloat64(),
			StudioShare:   studio.InexactFloat64(),
			EmployeeShare: emp.InexactFloat64(),
		})
	}

	return PeriodSummary{
		Total:        total.InexactFloat64(),
		StudioProfit: profit.InexactFloat64(),
		ByEmployee:   splits,
	}
}

// Totals calcula os seis totais do mês sobre entradas pagas.
// Partes de estúdio e comissões só existem para entradas com funcionário.
func Totals(entries []Entry) MonthTotals {
	var (
		total    = decimal.Zero
		tattoo   = decimal.Zero
		piercing = decimal.Zero
		studio   = decimal.Zero
		piercer  = decimal.Zero
		tattooer = decimal.Zero
	)

	for _, e := range entries {
		price := decimal.NewFromFloat(e.Price)
		kind := strings.ToLower(e.Type)

		total = total.Add(price)
		switch kind {
		case models.AppointmentTypeTattoo:
			tattoo = tattoo.Add(price)
		case models.AppointmentTypePiercing:
			piercing = piercing.Add(price)
		}

		if e.EmployeeID == nil {
			continue
		}

		studio = studio.Add(Share(price, decimal.NewFromFloat(e.PercStudio)))
		commission := Share(price, decimal.NewFromFloat(e.PercEmployee))
		switch kind {
		case models.AppointmentTypeTattoo:
			tattooer = tattooer.Add(commission)
		case models.AppointmentTypePiercing:
			piercer = piercer.Add(commission)
		}
	}

	return MonthTotals{
		Total:              total.InexactFloat64(),
		Tattoo:             tattoo.InexactFloat64(),
		Piercing:           piercing.InexactFloat64(),
		Studio:             studio.InexactFloat64(),
		PiercerCommission:  piercer.InexactFloat64(),
		TattooerCommission: tattooer.InexactFloat64(),
	}
}
