package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// ======================================================
// BUSINESS -> HTTP
// ======================================================

var conflictCodes = map[string]bool{
	"date_blocked":             true,
	"time_blocked":             true,
	"request_already_resolved": true,
	"login_already_exists":     true,
}

var defaultMessages = map[string]string{
	"appointment_not_found":    "Agendamento não encontrado.",
	"employee_not_found":       "Funcionário não encontrado.",
	"client_not_found":         "Cliente não encontrado.",
	"request_not_found":        "Solicitação não encontrada.",
	"block_not_found":          "Bloqueio não encontrado.",
	"request_already_resolved": "Solicitação já foi resolvida.",
	"invalid_period":           "data_ini não pode ser maior que data_fim.",
	"invalid_date":             "Data inválida.",
	"invalid_time":             "Horário inválido.",
	"invalid_block_kind":       "Tipo de bloqueio inválido.",
	"missing_block_times":      "Informe os horários a bloquear.",
	"invalid_block_times":      "Horários bloqueados inválidos.",
	"nothing_to_update":        "Nenhuma alteração fornecida.",
	"missing_client":           "Informe o nome do cliente.",
	"invalid_month":            "Mês inválido.",
	"invalid_credentials":      "Login ou senha inválidos.",
	"invalid_percent":          "Percentual deve estar entre 0 e 100.",
	"missing_name":             "Informe o nome.",
	"invalid_file":             "Arquivo de imagem inválido.",
	"invalid_status":           "Status deve ser pre_cadastro ou confirmado.",
}

// StatusFor traduz o código de negócio em status HTTP.
func StatusFor(code string) int {
	switch {
	case conflictCodes[code]:
		return http.StatusConflict
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	case strings.HasPrefix(code, "invalid_"),
		strings.HasPrefix(code, "missing_"),
		code == "nothing_to_update":
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

// FromError escreve a resposta para um erro vindo de use case.
// Retorna false quando o erro não é de negócio (o handler decide o 500).
func FromError(c *gin.Context, err error) bool {
	be, ok := AsBusiness(err)
	if !ok {
		return false
	}

	msg := be.Message
	if msg == "" {
		msg = defaultMessages[be.Code]
	}
	if msg == "" {
		msg = "Operação não permitida."
	}

	Write(c, StatusFor(be.Code), be.Code, msg)
	return true
}
