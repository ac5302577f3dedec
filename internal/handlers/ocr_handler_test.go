package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, path, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)

	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newOCRRouter() *gin.Engine {
	r := newRouter()
	r.POST("/ocr/ficha", NewOCRHandler().ExtractForm)
	return r
}

func TestOCRHandler_ExtractForm(t *testing.T) {
	r := newOCRRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/ocr/ficha", "file", "ficha.jpg", "image/jpeg", []byte{0xff, 0xd8}))

	require.Equal(t, http.StatusOK, w.Code)
	out := decode[OCRResponse](t, w)
	assert.Len(t, out.Fields, len(ocrFields))
	assert.Equal(t, "", out.Fields["nome"])
	assert.Equal(t, ocrFields, out.Uncertainty)
}

func TestOCRHandler_RejectsNonImage(t *testing.T) {
	r := newOCRRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/ocr/ficha", "file", "ficha.pdf", "application/pdf", []byte("%PDF")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_file", errorCode(t, w))

	w = doJSON(r, http.MethodPost, "/ocr/ficha", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_file", errorCode(t, w))
}
