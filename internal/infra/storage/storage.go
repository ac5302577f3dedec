package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Store guarda as fichas digitalizadas dos clientes.
type Store interface {
	// Save grava o conteúdo e devolve o caminho/chave salvo em ficha_path.
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FormObjectName monta cliente_{id}_{timestamp}_{arquivo}.
// ext substitui a extensão original quando informado (ex.: ".webp").
func FormObjectName(clientID uint, now time.Time, original, ext string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" {
		base = "ficha"
	}
	if ext != "" {
		base = strings.TrimSuffix(base, filepath.Ext(base)) + ext
	}
	base = unsafeChars.ReplaceAllString(base, "_")
	return fmt.Sprintf("cliente_%d_%d_%s", clientID, now.Unix(), base)
}
