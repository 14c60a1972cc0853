package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/fieldsales/visits/internal/model"
)

const uploadColumns = `id, filename, original_name, mime_type, file_size, file_path, uploaded_by, created_at`

// UploadRepository provides access to file upload metadata
type UploadRepository interface {
	Create(context.Context, *model.FileUpload) error
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*model.FileUpload, error)
	DeleteByID(context.Context, string) (bool, error)
}

type postgresUploadRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUploadRepository builds postgres UploadRepository
func NewPostgresUploadRepository(p *pgxpool.Pool) UploadRepository {
	return &postgresUploadRepository{pool: p}
}

func (r *postgresUploadRepository) Create(ctx context.Context, f *model.FileUpload) error {
	q := `INSERT INTO file_uploads(id, filename, original_name, mime_type, file_size, file_path, uploaded_by)
		  VALUES($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, q, f.ID, f.Filename, f.OriginalName, f.MimeType, f.FileSize, f.FilePath, f.UploadedBy)
	return err
}

func (r *postgresUploadRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*model.FileUpload, error) {
	q := fmt.Sprintf("SELECT %s FROM file_uploads WHERE id = $1 AND uploaded_by = $2", uploadColumns)

	var f model.FileUpload
	err := r.pool.QueryRow(ctx, q, id, ownerID).Scan(
		&f.ID, &f.Filename, &f.OriginalName, &f.MimeType, &f.FileSize, &f.FilePath, &f.UploadedBy, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *postgresUploadRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	q := "DELETE FROM file_uploads WHERE id = $1"
	comm, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}
