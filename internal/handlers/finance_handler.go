package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	ucFinance "github.com/BruksfildServices01/studio-scheduler/internal/usecase/finance"
)

type FinanceHandler struct {
	periodUC *ucFinance.SummarizePeriod
	monthUC  *ucFinance.TotalsForMonth
	log      *zap.Logger
}

func NewFinanceHandler(
	periodUC *ucFinance.SummarizePeriod,
	monthUC *ucFinance.TotalsForMonth,
	log *zap.Logger,
) *FinanceHandler {
	return &FinanceHandler{
		periodUC: periodUC,
		monthUC:  monthUC,
		log:      logger.OrNop(log).Named("finance"),
	}
}

type PeriodSummaryRequest struct {
	From       string `json:"data_ini" binding:"required"`
	To         string `json:"data_fim" binding:"required"`
	EmployeeID *uint  `json:"funcionario_id"`
	Type       string `json:"tipo"`
}

type MonthTotalsRequest struct {
	Year  int `json:"ano" binding:"required"`
	Month int `json:"mes" binding:"required"`
}

func (h *FinanceHandler) PeriodSummary(c *gin.Context) {
	var req PeriodSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	out, err := h.periodUC.Execute(c.Request.Context(), ucFinance.SummarizePeriodInput{
		From:       req.From,
		To:         req.To,
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
	})
	if err != nil {
		respondError(c, h.log, err, "failed_to_summarize_period", "Erro ao calcular resumo do período.")
		return
	}

	httpresp.OK(c, out)
}

func (h *FinanceHandler) MonthTotals(c *gin.Context) {
	var req MonthTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	out, err := h.monthUC.Execute(c.Request.Context(), req.Year, req.Month)
	if err != nil {
		respondError(c, h.log, err, "failed_to_compute_month_totals", "Erro ao calcular totais do mês.")
		return
	}

	httpresp.OK(c, out)
}
