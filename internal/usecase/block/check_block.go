package block

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/block"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

type CheckBlock struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewCheckBlock(repo domain.Repository, log *zap.Logger) *CheckBlock {
	return &CheckBlock{repo: repo, log: logger.OrNop(log).Named("block")}
}

func (uc *CheckBlock) Execute(
	ctx context.Context,
	employeeID uint,
	date string,
	hhmm string,
) (domain.Result, error) {

	if !validators.IsDate(date) {
		return domain.Result{}, httperr.ErrBusiness("invalid_date")
	}
	if !validators.IsTime(hhmm) {
		return domain.Result{}, httperr.ErrBusiness("invalid_time")
	}

	rows, err := uc.repo.ListForEmployeeDay(ctx, employeeID, date)
	if err != nil {
		return domain.Result{}, err
	}

	res, malformed := domain.Check(rows, hhmm)
	for _, id := range malformed {
		uc.log.Warn("malformed blocked times ignored",
			zap.Uint("block_id", id),
			zap.Uint("employee_id", employeeID),
			zap.String("date", date),
		)
	}

	return res, nil
}
