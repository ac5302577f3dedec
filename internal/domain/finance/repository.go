package finance

import "context"

type Query struct {
	From string
	To   string

	// ApprovedOnly: o resumo do período exige aprovado + pago,
	// os totais do mês só pago.
	ApprovedOnly bool
	EmployeeID   *uint
	Type         string
}

type Repository interface {
	ListPaidEntries(ctx context.Context, q Query) ([]Entry, error)
}
