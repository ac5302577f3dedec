package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
)

// ocrFields na ordem em que o front monta o formulário.
var ocrFields = []string{
	"nome",
	"telefone",
	"endereco",
	"celular",
	"procedimento",
	"alergias",
	"usa_pomada_anestesica",
	"fuma",
	"bebe",
}

type OCRResponse struct {
	Fields      map[string]string `json:"campos"`
	Uncertainty []string          `json:"incertezas"`
}

type OCRHandler struct{}

func NewOCRHandler() *OCRHandler {
	return &OCRHandler{}
}

// ExtractForm ainda não lê a imagem: devolve o formulário vazio com todos
// os campos marcados como incertos.
func (h *OCRHandler) ExtractForm(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie a imagem da ficha no campo file.")
		return
	}

	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		httperr.BadRequest(c, "invalid_file", "Envie uma imagem de ficha (jpeg, png, etc.)")
		return
	}

	fields := make(map[string]string, len(ocrFields))
	for _, f := range ocrFields {
		fields[f] = ""
	}

	uncertain := make([]string, len(ocrFields))
	copy(uncertain, ocrFields)

	httpresp.OK(c, OCRResponse{Fields: fields, Uncertainty: uncertain})
}
