package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/fieldsales/visits/internal/model"
)

const visitColumns = `v.id, v.customer_id, v.user_id, v.shop_name, v.visit_date, v.visit_purpose,
	v.product_visibility_score, v.products_discussed, v.training_provided, v.commercial_outcome,
	v.competitor_presence, v.overall_satisfaction, v.notes, v.photos,
	v.calculated_score, v.priority_level, v.created_at, v.updated_at`

// visitSortColumns is the allow-list for the order query parameter
var visitSortColumns = map[string]string{
	"visit_date":       "v.visit_date",
	"created_at":       "v.created_at",
	"updated_at":       "v.updated_at",
	"shop_name":        "v.shop_name",
	"calculated_score": "v.calculated_score",
	"priority_level":   "v.priority_level",
}

// VisitFilter narrows and orders visit listing
type VisitFilter struct {
	OrderBy    string
	Descending bool
	Limit      int
	Offset     int
}

// VisitUpdate is the allow-listed set of visit fields open for update.
// CalculatedScore and PriorityLevel are always rewritten - the scoring
// engine recomputes them on every update.
type VisitUpdate struct {
	CustomerID             *string    `json:"customer_id" validate:"omitempty,uuid"`
	ShopName               *string    `json:"shop_name" validate:"omitempty,min=1"`
	VisitDate              *time.Time `json:"visit_date"`
	VisitPurpose           *string    `json:"visit_purpose" validate:"omitempty,min=1"`
	ProductVisibilityScore *float64   `json:"product_visibility_score"`
	ProductsDiscussed      *[]string  `json:"products_discussed"`
	TrainingProvided       *bool      `json:"training_provided"`
	CommercialOutcome      *string    `json:"commercial_outcome"`
	CompetitorPresence     *string    `json:"competitor_presence"`
	OverallSatisfaction    *float64   `json:"overall_satisfaction"`
	Notes                  *string    `json:"notes"`
	Photos                 *[]string  `json:"photos"`

	CalculatedScore float64 `json:"-"`
	PriorityLevel   string  `json:"-"`
}

// VisitRepository provides access to shop visit records. An empty ownerID
// widens queries to all rows; a non-empty one scopes them to that user.
type VisitRepository interface {
	Create(context.Context, *model.Visit) error
	FindByID(ctx context.Context, id, ownerID string) (*model.Visit, error)
	FindAll(ctx context.Context, ownerID string, f VisitFilter) ([]*model.Visit, error)
	Update(ctx context.Context, id, ownerID string, upd *VisitUpdate) (*model.Visit, error)
	DeleteByID(ctx context.Context, id, ownerID string) (bool, error)
}

type postgresVisitRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVisitRepository builds postgres VisitRepository
func NewPostgresVisitRepository(p *pgxpool.Pool) VisitRepository {
	return &postgresVisitRepository{pool: p}
}

func (r *postgresVisitRepository) Create(ctx context.Context, v *model.Visit) error {
	q := `INSERT INTO shop_visits(
			id, customer_id, user_id, shop_name, visit_date, visit_purpose,
			product_visibility_score, products_discussed, training_provided, commercial_outcome,
			competitor_presence, overall_satisfaction, notes, photos, calculated_score, priority_level
		  )
		  VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.pool.Exec(ctx, q,
		v.ID, v.CustomerID, v.UserID, v.ShopName, v.VisitDate, v.VisitPurpose,
		v.ProductVisibilityScore, v.ProductsDiscussed, v.TrainingProvided, v.CommercialOutcome,
		v.CompetitorPresence, v.OverallSatisfaction, v.Notes, v.Photos, v.CalculatedScore, v.PriorityLevel,
	)
	return err
}

func (r *postgresVisitRepository) FindByID(ctx context.Context, id, ownerID string) (*model.Visit, error) {
	q := fmt.Sprintf("SELECT %s FROM shop_visits v WHERE v.id = $1", visitColumns)
	args := []any{id}
	if ownerID != "" {
		q += " AND v.user_id = $2"
		args = append(args, ownerID)
	}
	return r.scanRow(r.pool.QueryRow(ctx, q, args...))
}

func (r *postgresVisitRepository) FindAll(ctx context.Context, ownerID string, f VisitFilter) ([]*model.Visit, error) {
	orderCol, ok := visitSortColumns[f.OrderBy]
	if !ok {
		orderCol = "v.created_at"
	}
	direction := "ASC"
	if f.Descending {
		direction = "DESC"
	}

	q := fmt.Sprintf(`SELECT %s, c.shop_name AS customer_shop_name
		FROM shop_visits v
		LEFT JOIN customers c ON v.customer_id = c.id`, visitColumns)

	args := make([]any, 0, 3)
	if ownerID != "" {
		args = append(args, ownerID)
		q += " WHERE v.user_id = $1"
	}

	q += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", orderCol, direction, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	visits := make([]*model.Visit, 0)
	for rows.Next() {
		var v model.Visit
		err := rows.Scan(
			&v.ID, &v.CustomerID, &v.UserID, &v.ShopName, &v.VisitDate, &v.VisitPurpose,
			&v.ProductVisibilityScore, &v.ProductsDiscussed, &v.TrainingProvided, &v.CommercialOutcome,
			&v.CompetitorPresence, &v.OverallSatisfaction, &v.Notes, &v.Photos,
			&v.CalculatedScore, &v.PriorityLevel, &v.CreatedAt, &v.UpdatedAt, &v.CustomerShopName,
		)
		if err != nil {
			return nil, err
		}
		visits = append(visits, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *postgresVisitRepository) Update(ctx context.Context, id, ownerID string, upd *VisitUpdate) (*model.Visit, error) {
	set, args := newSetClause()
	set.add("customer_id", upd.CustomerID)
	set.add("shop_name", upd.ShopName)
	set.add("visit_date", upd.VisitDate)
	set.add("visit_purpose", upd.VisitPurpose)
	set.add("product_visibility_score", upd.ProductVisibilityScore)
	set.add("products_discussed", upd.ProductsDiscussed)
	set.add("training_provided", upd.TrainingProvided)
	set.add("commercial_outcome", upd.CommercialOutcome)
	set.add("competitor_presence", upd.CompetitorPresence)
	set.add("overall_satisfaction", upd.OverallSatisfaction)
	set.add("notes", upd.Notes)
	set.add("photos", upd.Photos)
	set.addValue("calculated_score", upd.CalculatedScore)
	set.addValue("priority_level", upd.PriorityLevel)

	q := fmt.Sprintf("UPDATE shop_visits v SET %s, updated_at = NOW() WHERE v.id = $%d", set.clause(), set.next())
	*args = append(*args, id)

	if ownerID != "" {
		q += fmt.Sprintf(" AND v.user_id = $%d", len(*args)+1)
		*args = append(*args, ownerID)
	}
	q += fmt.Sprintf(" RETURNING %s", visitColumns)

	return r.scanRow(r.pool.QueryRow(ctx, q, *args...))
}

func (r *postgresVisitRepository) DeleteByID(ctx context.Context, id, ownerID string) (bool, error) {
	q := "DELETE FROM shop_visits WHERE id = $1"
	args := []any{id}
	if ownerID != "" {
		q += " AND user_id = $2"
		args = append(args, ownerID)
	}

	comm, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresVisitRepository) scanRow(row pgx.Row) (*model.Visit, error) {
	var v model.Visit
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.UserID, &v.ShopName, &v.VisitDate, &v.VisitPurpose,
		&v.ProductVisibilityScore, &v.ProductsDiscussed, &v.TrainingProvided, &v.CommercialOutcome,
		&v.CompetitorPresence, &v.OverallSatisfaction, &v.Notes, &v.Photos,
		&v.CalculatedScore, &v.PriorityLevel, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}
