package finance

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/finance"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

type TotalsForMonth struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewTotalsForMonth(repo domain.Repository, log *zap.Logger) *TotalsForMonth {
	return &TotalsForMonth{repo: repo, log: logger.OrNop(log).Named("finance")}
}

// Execute soma os agendamentos pagos do mês, aprovados ou não.
func (uc *TotalsForMonth) Execute(
	ctx context.Context,
	year, month int,
) (domain.MonthTotals, error) {

	if !validators.IsMonth(month) || year < 1 || year > 9999 {
		return domain.MonthTotals{}, httperr.ErrBusiness("invalid_month")
	}

	from, to := domain.MonthRange(year, month)

	entries, err := uc.repo.ListPaidEntries(ctx, domain.Query{From: from, To: to})
	if err != nil {
		uc.log.Error("month totals query failed", zap.Int("year", year), zap.Int("month", month), zap.Error(err))
		return domain.MonthTotals{}, err
	}

	return domain.Totals(entries), nil
}
