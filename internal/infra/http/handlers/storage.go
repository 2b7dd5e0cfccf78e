package handlers

import "context"

// Uploader abstrai o storage de arquivos: bytes entram, URL pública sai
type Uploader interface {
	Upload(ctx context.Context, prefix, filename, contentType string, data []byte) (string, error)
}
