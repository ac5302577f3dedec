package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Share = receita × percentual / 100
func Share(revenue, percent decimal.Decimal) decimal.Decimal {
	return revenue.Mul(percent).Div(hundred)
}

// MonthRange devolve os limites textuais do mês. O limite superior é
// sempre o dia 31: com comparação lexical ele cobre qualquer mês.
func MonthRange(year, month int) (string, string) {
	return fmt.Sprintf("%04d-%02d-01", year, month),
		fmt.Sprintf("%04d-%02d-31", year, month)
}
