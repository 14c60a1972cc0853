package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/fieldsales/visits/internal/model"
)

const customerColumns = `id, shop_name, shop_type, shop_address, zipcode, city, county, region,
	contact_person, contact_phone, contact_email, job_title, status, created_at, updated_at`

// CustomerUpdate is the allow-listed set of customer fields open for update
type CustomerUpdate struct {
	ShopName      *string         `json:"shop_name" validate:"omitempty,min=1"`
	ShopType      *model.ShopType `json:"shop_type" validate:"omitempty,oneof=growshop garden_center nursery hydroponics_store other"`
	ShopAddress   *string         `json:"shop_address"`
	Zipcode       *string         `json:"zipcode"`
	City          *string         `json:"city"`
	County        *string         `json:"county"`
	Region        *string         `json:"region"`
	ContactPerson *string         `json:"contact_person"`
	ContactPhone  *string         `json:"contact_phone"`
	ContactEmail  *string         `json:"contact_email" validate:"omitempty,email"`
	JobTitle      *string         `json:"job_title"`
	Status        *string         `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CustomerRepository provides access to customer shop records
type CustomerRepository interface {
	FindAllActive(context.Context) ([]*model.Customer, error)
	FindByID(context.Context, string) (*model.Customer, error)
	Create(context.Context, *model.Customer) error
	Update(context.Context, string, *CustomerUpdate) (*model.Customer, error)
	DeleteByID(context.Context, string) (bool, error)
}

type postgresCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCustomerRepository builds postgres CustomerRepository
func NewPostgresCustomerRepository(p *pgxpool.Pool) CustomerRepository {
	return &postgresCustomerRepository{pool: p}
}

func (r *postgresCustomerRepository) FindAllActive(ctx context.Context) ([]*model.Customer, error) {
	q := fmt.Sprintf("SELECT %s FROM customers WHERE status = 'active' ORDER BY shop_name ASC", customerColumns)

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	q := fmt.Sprintf("SELECT %s FROM customers WHERE id = $1", customerColumns)
	return r.scanRow(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	q := `INSERT INTO customers(
			id, shop_name, shop_type, shop_address, zipcode, city, county, region,
			contact_person, contact_phone, contact_email, job_title
		  )
		  VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, q,
		c.ID, c.ShopName, c.ShopType, c.ShopAddress, c.Zipcode, c.City, c.County, c.Region,
		c.ContactPerson, c.ContactPhone, c.ContactEmail, c.JobTitle,
	)
	return err
}

func (r *postgresCustomerRepository) Update(ctx context.Context, id string, upd *CustomerUpdate) (*model.Customer, error) {
	set, args := newSetClause()
	set.add("shop_name", upd.ShopName)
	set.add("shop_type", upd.ShopType)
	set.add("shop_address", upd.ShopAddress)
	set.add("zipcode", upd.Zipcode)
	set.add("city", upd.City)
	set.add("county", upd.County)
	set.add("region", upd.Region)
	set.add("contact_person", upd.ContactPerson)
	set.add("contact_phone", upd.ContactPhone)
	set.add("contact_email", upd.ContactEmail)
	set.add("job_title", upd.JobTitle)
	set.add("status", upd.Status)
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	q := fmt.Sprintf(
		"UPDATE customers SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		set.clause(), set.next(), customerColumns,
	)
	return r.scanRow(r.pool.QueryRow(ctx, q, append(*args, id)...))
}

func (r *postgresCustomerRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	q := "DELETE FROM customers WHERE id = $1"
	comm, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresCustomerRepository) scanRow(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(
		&c.ID, &c.ShopName, &c.ShopType, &c.ShopAddress, &c.Zipcode, &c.City, &c.County, &c.Region,
		&c.ContactPerson, &c.ContactPhone, &c.ContactEmail, &c.JobTitle, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
