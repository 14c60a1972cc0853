package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/fieldsales/visits/internal/model"
)

const configurationColumns = `id, config_type, config_name, config_value, display_order, is_active,
	created_at, updated_at`

// ConfigurationUpdate is the allow-listed set of configuration fields open for update
type ConfigurationUpdate struct {
	ConfigType   *string `json:"config_type" validate:"omitempty,min=1"`
	ConfigName   *string `json:"config_name" validate:"omitempty,min=1"`
	ConfigValue  *string `json:"config_value" validate:"omitempty,min=1"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// ConfigurationRepository provides access to typed lookup entries
type ConfigurationRepository interface {
	FindActive(ctx context.Context, configType string) ([]*model.Configuration, error)
	FindByID(context.Context, string) (*model.Configuration, error)
	Create(context.Context, *model.Configuration) error
	Update(context.Context, string, *ConfigurationUpdate) (*model.Configuration, error)
	DeleteByID(context.Context, string) (bool, error)
}

type postgresConfigurationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresConfigurationRepository builds postgres ConfigurationRepository
func NewPostgresConfigurationRepository(p *pgxpool.Pool) ConfigurationRepository {
	return &postgresConfigurationRepository{pool: p}
}

func (r *postgresConfigurationRepository) FindActive(ctx context.Context, configType string) ([]*model.Configuration, error) {
	q := fmt.Sprintf("SELECT %s FROM configurations WHERE is_active = true", configurationColumns)

	args := make([]any, 0, 1)
	if configType != "" {
		args = append(args, configType)
		q += " AND config_type = $1"
	}
	q += " ORDER BY display_order ASC, config_name ASC"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := make([]*model.Configuration, 0)
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *postgresConfigurationRepository) FindByID(ctx context.Context, id string) (*model.Configuration, error) {
	q := fmt.Sprintf("SELECT %s FROM configurations WHERE id = $1", configurationColumns)
	return r.scanRow(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresConfigurationRepository) Create(ctx context.Context, c *model.Configuration) error {
	q := `INSERT INTO configurations(id, config_type, config_name, config_value, display_order, is_active)
		  VALUES($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, q, c.ID, c.ConfigType, c.ConfigName, c.ConfigValue, c.DisplayOrder, c.IsActive)
	return err
}

func (r *postgresConfigurationRepository) Update(ctx context.Context, id string, upd *ConfigurationUpdate) (*model.Configuration, error) {
	set, args := newSetClause()
	set.add("config_type", upd.ConfigType)
	set.add("config_name", upd.ConfigName)
	set.add("config_value", upd.ConfigValue)
	set.add("display_order", upd.DisplayOrder)
	set.add("is_active", upd.IsActive)
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	q := fmt.Sprintf(
		"UPDATE configurations SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		set.clause(), set.next(), configurationColumns,
	)
	return r.scanRow(r.pool.QueryRow(ctx, q, append(*args, id)...))
}

func (r *postgresConfigurationRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	q := "DELETE FROM configurations WHERE id = $1"
	comm, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresConfigurationRepository) scanRow(row pgx.Row) (*model.Configuration, error) {
	var c model.Configuration
	err := row.Scan(
		&c.ID, &c.ConfigType, &c.ConfigName, &c.ConfigValue, &c.DisplayOrder, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
