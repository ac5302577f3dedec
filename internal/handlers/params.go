package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
)

// idParam lê um id de rota; responde 400 quando inválido.
func idParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(n), true
}

// optionalUintQuery: ausente vira nil; presente e inválido responde 400.
func optionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido: "+name+".")
		return nil, false
	}
	v := uint(n)
	return &v, true
}

// respondError escreve o erro de negócio ou, para o resto, loga e devolve 500.
func respondError(c *gin.Context, log *zap.Logger, err error, code, message string) {
	if httperr.FromError(c, err) {
		return
	}
	log.Error(code,
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httperr.Internal(c, code, message)
}

func badBody(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
}
