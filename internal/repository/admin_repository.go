package repository

import (
	"context"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

// AdminRepository defines persistence access for admin credentials.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	Update(ctx context.Context, admin *domain.Admin) error
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	GetByContact(ctx context.Context, contact string) (*domain.Admin, error)
	List(ctx context.Context) ([]domain.Admin, error)
	Delete(ctx context.Context, id string) error

	// FindIDByContact and FindIDByEmail resolve a candidate-key value to the
	// id of the live record holding it, or NOT_FOUND when the value is free.
	FindIDByContact(ctx context.Context, contact string) (string, error)
	FindIDByEmail(ctx context.Context, email string) (string, error)
}

// adminUniqueFields maps the schema's unique constraints onto candidate-key
// names surfaced to callers.
var adminUniqueFields = map[string]string{
	"admins_contact_key": "contact",
	"admins_email_key":   "email",
}

type adminRepository struct {
	pool DBPool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool DBPool) AdminRepository {
	return &adminRepository{pool: pool}
}

func adminKeyValues(admin *domain.Admin) map[string]string {
	values := map[string]string{"contact": admin.Contact}
	if admin.Email != nil {
		values["email"] = *admin.Email
	}
	return values
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	const query = `
        INSERT INTO admins (name, contact, email, password_hash, is_super_admin)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		admin.Name,
		admin.Contact,
		admin.Email,
		admin.PasswordHash,
		admin.IsSuperAdmin,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	return translateStoreError(err, "admin", adminUniqueFields, adminKeyValues(admin))
}

func (r *adminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	const query = `
        UPDATE admins
        SET name=$1, contact=$2, email=$3, password_hash=$4, is_super_admin=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		admin.Name,
		admin.Contact,
		admin.Email,
		admin.PasswordHash,
		admin.IsSuperAdmin,
		admin.ID,
	)
	if err != nil {
		return translateStoreError(err, "admin", adminUniqueFields, adminKeyValues(admin))
	}
	if cmd.RowsAffected() == 0 {
		return util.NewNotFound("admin")
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	const query = `
        SELECT id, name, contact, email, password_hash, is_super_admin, created_at, updated_at
        FROM admins WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *adminRepository) GetByContact(ctx context.Context, contact string) (*domain.Admin, error) {
	const query = `
        SELECT id, name, contact, email, password_hash, is_super_admin, created_at, updated_at
        FROM admins WHERE contact=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, contact))
}

func (r *adminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	const query = `
        SELECT id, name, contact, email, password_hash, is_super_admin, created_at, updated_at
        FROM admins ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translateStoreError(err, "admin", nil, nil)
	}
	defer rows.Close()

	var result []domain.Admin
	for rows.Next() {
		var admin domain.Admin
		if err := rows.Scan(
			&admin.ID,
			&admin.Name,
			&admin.Contact,
			&admin.Email,
			&admin.PasswordHash,
			&admin.IsSuperAdmin,
			&admin.CreatedAt,
			&admin.UpdatedAt,
		); err != nil {
			return nil, util.MapError(err)
		}
		result = append(result, admin)
	}
	return result, util.MapError(rows.Err())
}

func (r *adminRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM admins WHERE id=$1`, id)
	if err != nil {
		return translateStoreError(err, "admin", nil, nil)
	}
	if cmd.RowsAffected() == 0 {
		return util.NewNotFound("admin")
	}
	return nil
}

func (r *adminRepository) FindIDByContact(ctx context.Context, contact string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `SELECT id FROM admins WHERE contact=$1`, contact).Scan(&id)
	if err != nil {
		return "", translateStoreError(err, "admin", nil, nil)
	}
	return id, nil
}

func (r *adminRepository) FindIDByEmail(ctx context.Context, email string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `SELECT id FROM admins WHERE email=$1`, email).Scan(&id)
	if err != nil {
		return "", translateStoreError(err, "admin", nil, nil)
	}
	return id, nil
}

func (r *adminRepository) scanOne(row interface{ Scan(dest ...any) error }) (*domain.Admin, error) {
	var admin domain.Admin
	if err := row.Scan(
		&admin.ID,
		&admin.Name,
		&admin.Contact,
		&admin.Email,
		&admin.PasswordHash,
		&admin.IsSuperAdmin,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, translateStoreError(err, "admin", nil, nil)
	}
	return &admin, nil
}
