package finance

import (
	"context"
	"strings"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/finance"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

type SummarizePeriodInput struct {
	From       string
	To         string
	EmployeeID *uint
	Type       string
}

type SummarizePeriod struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewSummarizePeriod(repo domain.Repository, log *zap.Logger) *SummarizePeriod {
	return &SummarizePeriod{repo: repo, log: logger.OrNop(log).Named("finance")}
}

// Execute considera só agendamentos aprovados e pagos no intervalo fechado.
func (uc *SummarizePeriod) Execute(
	ctx context.Context,
	in SummarizePeriodInput,
) (domain.PeriodSummary, error) {

	if !validators.IsDate(in.From) || !validators.IsDate(in.To) {
		return domain.PeriodSummary{}, httperr.ErrBusiness("invalid_date")
	}
	if in.From > in.To {
		return domain.PeriodSummary{}, httperr.ErrBusiness("invalid_period")
	}

	entries, err := uc.repo.ListPaidEntries(ctx, domain.Query{
		From:         in.From,
		To:           in.To,
		ApprovedOnly: true,
		EmployeeID:   in.EmployeeID,
		Type:         strings.TrimSpace(in.Type),
	})
	if err != nil {
		uc.log.Error("period summary query failed", zap.Error(err))
		return domain.PeriodSummary{}, err
	}

	return domain.Summarize(entries), nil
}
