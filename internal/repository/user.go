package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/pkg/db/transactor"
)

const userColumns = `id, email, password_hash, full_name, role, department, territory, phone,
	avatar_url, permissions, is_active, last_login, created_at`

// UserUpdate is the allow-listed set of user fields an admin may change.
// Nil fields are left untouched.
type UserUpdate struct {
	FullName   *string     `json:"full_name" validate:"omitempty,min=2"`
	Role       *model.Role `json:"role" validate:"omitempty,oneof=admin manager user"`
	Department *string     `json:"department" validate:"omitempty,min=1"`
	Territory  *string     `json:"territory" validate:"omitempty,min=1"`
	Phone      *string     `json:"phone" validate:"omitempty,min=1"`
	IsActive   *bool       `json:"is_active"`
}

// UserRepository provides access to user records
type UserRepository interface {
	Create(context.Context, *model.User) error
	FindByEmail(context.Context, string) (*model.User, error)
	FindByID(context.Context, string) (*model.User, error)
	FindAll(context.Context) ([]*model.User, error)
	Update(context.Context, string, *UserUpdate) (*model.User, error)
	UpdatePermissions(context.Context, string, map[string]bool) (*model.User, error)
	UpdateProfile(context.Context, string, *ProfileUpdate) (*model.User, error)
	Deactivate(context.Context, string) (bool, error)
	RecordLogin(context.Context, string, time.Time) error
}

// ProfileUpdate is the allow-listed set of fields a user may change on themselves
type ProfileUpdate struct {
	FullName   *string `json:"full_name" validate:"omitempty,min=2"`
	Department *string `json:"department" validate:"omitempty,min=1"`
	Territory  *string `json:"territory" validate:"omitempty,min=1"`
	Phone      *string `json:"phone" validate:"omitempty,min=1"`
}

type postgresUserRepository struct {
	trx transactor.PgxTransactor
}

// NewPostgresUserRepository builds postgres UserRepository
func NewPostgresUserRepository(trx transactor.PgxTransactor) UserRepository {
	return &postgresUserRepository{trx: trx}
}

func (r *postgresUserRepository) Create(ctx context.Context, u *model.User) error {
	q := `INSERT INTO users(id, email, password_hash, full_name, role, department, territory)
		  VALUES($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.trx.Executor(ctx).Exec(ctx, q, u.ID, u.Email, u.PasswordHash, u.FullName, u.Role, u.Department, u.Territory)
	return err
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	q := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)
	row := r.trx.Executor(ctx).QueryRow(ctx, q, email)
	return r.scanRow(row)
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	q := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)
	return r.scanRow(row)
}

func (r *postgresUserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	q := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at DESC", userColumns)

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		u, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *postgresUserRepository) Update(ctx context.Context, id string, upd *UserUpdate) (*model.User, error) {
	set, args := newSetClause()
	set.add("full_name", upd.FullName)
	set.add("role", upd.Role)
	set.add("department", upd.Department)
	set.add("territory", upd.Territory)
	set.add("phone", upd.Phone)
	set.add("is_active", upd.IsActive)
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	q := fmt.Sprintf(
		"UPDATE users SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		set.clause(), set.next(), userColumns,
	)
	row := r.trx.Executor(ctx).QueryRow(ctx, q, append(*args, id)...)
	return r.scanRow(row)
}

func (r *postgresUserRepository) UpdatePermissions(ctx context.Context, id string, perms map[string]bool) (*model.User, error) {
	var permsJSON pgtype.JSONB
	if err := permsJSON.Set(perms); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(
		"UPDATE users SET permissions = $1, updated_at = NOW() WHERE id = $2 RETURNING %s",
		userColumns,
	)
	row := r.trx.Executor(ctx).QueryRow(ctx, q, &permsJSON, id)
	return r.scanRow(row)
}

func (r *postgresUserRepository) UpdateProfile(ctx context.Context, id string, upd *ProfileUpdate) (*model.User, error) {
	set, args := newSetClause()
	set.add("full_name", upd.FullName)
	set.add("department", upd.Department)
	set.add("territory", upd.Territory)
	set.add("phone", upd.Phone)
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	q := fmt.Sprintf(
		"UPDATE users SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		set.clause(), set.next(), userColumns,
	)
	row := r.trx.Executor(ctx).QueryRow(ctx, q, append(*args, id)...)
	return r.scanRow(row)
}

func (r *postgresUserRepository) Deactivate(ctx context.Context, id string) (bool, error) {
	q := "UPDATE users SET is_active = false, updated_at = NOW() WHERE id = $1"
	comm, err := r.trx.Executor(ctx).Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresUserRepository) RecordLogin(ctx context.Context, id string, at time.Time) error {
	q := "UPDATE users SET last_login = $1 WHERE id = $2"
	_, err := r.trx.Executor(ctx).Exec(ctx, q, at, id)
	return err
}

func (r *postgresUserRepository) scanRow(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.Department, &u.Territory,
		&u.Phone, &u.AvatarURL, &u.Permissions, &u.IsActive, &u.LastLogin, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
