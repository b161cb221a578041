package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

// ShopRepository handles persistence for shop units.
type ShopRepository interface {
	Create(ctx context.Context, shop *domain.Shop) error
	Update(ctx context.Context, shop *domain.Shop) error
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	List(ctx context.Context, filter ShopFilter) ([]domain.Shop, error)
	Delete(ctx context.Context, id string) error

	FindIDByShopNo(ctx context.Context, shopNo string) (string, error)
	FindIDByRegistrationNo(ctx context.Context, registrationNo string) (string, error)
}

// ShopFilter defines query params for shop listing. The field set is closed;
// callers cannot query arbitrary columns.
type ShopFilter struct {
	OwnerName *string
	ShopNo    *string
	Limit     int
	Offset    int
}

var shopUniqueFields = map[string]string{
	"shops_shop_no_key":         "shopNo",
	"shops_registration_no_key": "registrationNo",
}

const shopColumns = `id, owner_name, shop_no, registration_no, owner_contact, owner_address,
        owner_adhaar, rent_start, rent_end, tenure_months, monthly_rent, owner_photo,
        owner_adhaar_photo, created_at, updated_at`

type shopRepository struct {
	pool DBPool
}

// NewShopRepository instantiates the repository.
func NewShopRepository(pool DBPool) ShopRepository {
	return &shopRepository{pool: pool}
}

func shopKeyValues(shop *domain.Shop) map[string]string {
	return map[string]string{
		"shopNo":         shop.ShopNo,
		"registrationNo": shop.RegistrationNo,
	}
}

func (r *shopRepository) Create(ctx context.Context, shop *domain.Shop) error {
	const query = `
        INSERT INTO shops (owner_name, shop_no, registration_no, owner_contact, owner_address,
            owner_adhaar, rent_start, rent_end, tenure_months, monthly_rent, owner_photo, owner_adhaar_photo)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		shop.OwnerName,
		shop.ShopNo,
		shop.RegistrationNo,
		shop.OwnerContact,
		shop.OwnerAddress,
		shop.OwnerAdhaar,
		shop.RentStart,
		shop.RentEnd,
		shop.TenureMonths,
		shop.MonthlyRent,
		shop.OwnerPhoto,
		shop.OwnerAdhaarPhoto,
	).Scan(&shop.ID, &shop.CreatedAt, &shop.UpdatedAt)
	return translateStoreError(err, "shop", shopUniqueFields, shopKeyValues(shop))
}

func (r *shopRepository) Update(ctx context.Context, shop *domain.Shop) error {
	const query = `
        UPDATE shops
        SET owner_name=$1, shop_no=$2, registration_no=$3, owner_contact=$4, owner_address=$5,
            owner_adhaar=$6, rent_start=$7, rent_end=$8, tenure_months=$9, monthly_rent=$10,
            owner_photo=$11, owner_adhaar_photo=$12, updated_at=NOW()
        WHERE id=$13`

	cmd, err := r.pool.Exec(ctx, query,
		shop.OwnerName,
		shop.ShopNo,
		shop.RegistrationNo,
		shop.OwnerContact,
		shop.OwnerAddress,
		shop.OwnerAdhaar,
		shop.RentStart,
		shop.RentEnd,
		shop.TenureMonths,
		shop.MonthlyRent,
		shop.OwnerPhoto,
		shop.OwnerAdhaarPhoto,
		shop.ID,
	)
	if err != nil {
		return translateStoreError(err, "shop", shopUniqueFields, shopKeyValues(shop))
	}
	if cmd.RowsAffected() == 0 {
		return util.NewNotFound("shop")
	}
	return nil
}

func (r *shopRepository) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id=$1`

	var shop domain.Shop
	if err := r.pool.QueryRow(ctx, query, id).Scan(shopScanTargets(&shop)...); err != nil {
		return nil, translateStoreError(err, "shop", nil, nil)
	}
	return &shop, nil
}

func (r *shopRepository) List(ctx context.Context, filter ShopFilter) ([]domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops`
	args := []any{}
	clauses := []string{}

	if filter.OwnerName != nil {
		args = append(args, *filter.OwnerName)
		clauses = append(clauses, fmt.Sprintf("owner_name=$%d", len(args)))
	}
	if filter.ShopNo != nil {
		args = append(args, *filter.ShopNo)
		clauses = append(clauses, fmt.Sprintf("shop_no=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateStoreError(err, "shop", nil, nil)
	}
	defer rows.Close()

	var result []domain.Shop
	for rows.Next() {
		var shop domain.Shop
		if err := rows.Scan(shopScanTargets(&shop)...); err != nil {
			return nil, util.MapError(err)
		}
		result = append(result, shop)
	}
	return result, util.MapError(rows.Err())
}

func (r *shopRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shops WHERE id=$1`, id)
	if err != nil {
		return translateStoreError(err, "shop", nil, nil)
	}
	if cmd.RowsAffected() == 0 {
		return util.NewNotFound("shop")
	}
	return nil
}

func (r *shopRepository) FindIDByShopNo(ctx context.Context, shopNo string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `SELECT id FROM shops WHERE shop_no=$1`, shopNo).Scan(&id)
	if err != nil {
		return "", translateStoreError(err, "shop", nil, nil)
	}
	return id, nil
}

func (r *shopRepository) FindIDByRegistrationNo(ctx context.Context, registrationNo string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `SELECT id FROM shops WHERE registration_no=$1`, registrationNo).Scan(&id)
	if err != nil {
		return "", translateStoreError(err, "shop", nil, nil)
	}
	return id, nil
}

func shopScanTargets(shop *domain.Shop) []any {
	return []any{
		&shop.ID,
		&shop.OwnerName,
		&shop.ShopNo,
		&shop.RegistrationNo,
		&shop.OwnerContact,
		&shop.OwnerAddress,
		&shop.OwnerAdhaar,
		&shop.RentStart,
		&shop.RentEnd,
		&shop.TenureMonths,
		&shop.MonthlyRent,
		&shop.OwnerPhoto,
		&shop.OwnerAdhaarPhoto,
		&shop.CreatedAt,
		&shop.UpdatedAt,
	}
}
