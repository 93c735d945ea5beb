package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Store writes one uploaded file into dir under a generated name that
// preserves the original extension, and returns the public URL path
// (publicPath + "/" + name). dir is created if missing.
type Store struct {
	Dir        string
	PublicPath string
}

func NewStore(dir, publicPath string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir failed: %w", err)
	}
	return &Store{Dir: dir, PublicPath: publicPath}, nil
}

func (s *Store) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + filepath.Ext(filepath.Base(file.Filename))
	dst := filepath.Join(s.Dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("save uploaded file failed: %w", err)
	}
	return s.PublicPath + "/" + name, nil
}
