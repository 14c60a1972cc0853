package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fieldsales/visits/internal/auth"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
)

const mimeBytesNumber = 512

// UploadService stores uploaded artifacts on disk and their metadata in the database
type UploadService interface {
	Store(ctx context.Context, ident auth.Identity, src io.Reader, originalName string, size int64) (*model.FileUpload, error)
	Delete(ctx context.Context, ident auth.Identity, id string) error
}

type uploadService struct {
	uploadRps repository.UploadRepository
	dir       string
}

// NewUploadService builds UploadService storing blobs under dir
func NewUploadService(uploadRps repository.UploadRepository, dir string) UploadService {
	return &uploadService{uploadRps: uploadRps, dir: dir}
}

// Store writes the blob under a generated unique filename and records its
// metadata. MIME type is sniffed from content, not taken from the request.
// A crash between the two steps can leave blob and record inconsistent,
// there is no compensation.
func (s *uploadService) Store(ctx context.Context, ident auth.Identity, src io.Reader, originalName string, size int64) (*model.FileUpload, error) {
	mimeBuff := make([]byte, mimeBytesNumber)
	n, err := io.ReadFull(src, mimeBuff)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	mimeBuff = mimeBuff[:n]
	mimeType := http.DetectContentType(mimeBuff)

	filename := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(originalName))
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	written, err := io.Copy(dst, io.MultiReader(bytes.NewReader(mimeBuff), src))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, err
	}

	if size <= 0 {
		size = written
	}

	f := &model.FileUpload{
		ID:           uuid.NewString(),
		Filename:     filename,
		OriginalName: originalName,
		MimeType:     mimeType,
		FileSize:     size,
		FilePath:     path,
		UploadedBy:   ident.ID,
	}

	if err := s.uploadRps.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes upload owned by the caller. The blob removal is best effort,
// the metadata record is the source of truth.
func (s *uploadService) Delete(ctx context.Context, ident auth.Identity, id string) error {
	f, err := s.uploadRps.FindByIDAndOwner(ctx, id, ident.ID)
	if err != nil {
		return err
	}
	if f == nil {
		return echo.ErrNotFound
	}

	if err := os.Remove(f.FilePath); err != nil && !os.IsNotExist(err) {
		logrus.Errorf("failed to remove uploaded file %s - %v", f.FilePath, err)
	}

	if _, err := s.uploadRps.DeleteByID(ctx, id); err != nil {
		return err
	}
	return nil
}
