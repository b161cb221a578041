package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

// PaymentRepository handles persistence for rent payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]domain.Payment, error)
	Delete(ctx context.Context, id string) error
}

// PaymentFilter defines query params for payment listing. The field set is
// closed; callers cannot query arbitrary columns.
type PaymentFilter struct {
	ShopID *string
	Method *string
	Limit  int
	Offset int
}

type paymentRepository struct {
	pool DBPool
}

// NewPaymentRepository instantiates the repository.
func NewPaymentRepository(pool DBPool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (shop_id, amount, method, paid_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		payment.ShopID,
		payment.Amount,
		payment.Method,
		payment.PaidAt,
	).Scan(&payment.ID, &payment.CreatedAt)
	return translateStoreError(err, "payment", nil, nil)
}

func (r *paymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	const query = `
        UPDATE payments SET amount=$1, method=$2, paid_at=$3 WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		payment.Amount,
		payment.Method,
		payment.PaidAt,
		payment.ID,
	)
	if err != nil {
		return translateStoreError(err, "payment", nil, nil)
	}
	if cmd.RowsAffected() == 0 {
		return util.NewNotFound("payment")
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	const query = `
        SELECT id, shop_id, amount, method, paid_at, created_at
        FROM payments WHERE id=$1`

	var payment domain.Payment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.ShopID,
		&payment.Amount,
		&payment.Method,
		&payment.PaidAt,
		&payment.CreatedAt,
	); err != nil {
		return nil, translateStoreError(err, "payment", nil, nil)
	}
	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context, filter PaymentFilter) ([]domain.Payment, error) {
	query := `
        SELECT id, shop_id, amount, method, paid_at, created_at
        FROM payments`
	args := []any{}
	clauses := []string{}

	if filter.ShopID != nil {
		args = append(args, *filter.ShopID)
		clauses = append(clauses, fmt.Sprintf("shop_id=$%d", len(args)))
	}
	if filter.Method != nil {
		args = append(args, *filter.Method)
		clauses = append(clauses, fmt.Sprintf("method=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY paid_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateStoreError(err, "payment", nil, nil)
	}
	defer rows.Close()

	var result []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.ShopID,
			&payment.Amount,
			&payment.Method,
			&payment.PaidAt,
			&payment.CreatedAt,
		); err != nil {
			return nil, util.MapError(err)
		}
		result = append(result, payment)
	}
	return result, util.MapError(rows.Err())
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	if err != nil {
		return translateStoreError(err, "payment", nil, nil)
	}
	if cmd.RowsAffected() == 0 {
		return util.NewNotFound("payment")
	}
	return nil
}
