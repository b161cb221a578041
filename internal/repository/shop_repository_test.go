package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

var shopRowColumns = []string{
	"id", "owner_name", "shop_no", "registration_no", "owner_contact", "owner_address",
	"owner_adhaar", "rent_start", "rent_end", "tenure_months", "monthly_rent", "owner_photo",
	"owner_adhaar_photo", "created_at", "updated_at",
}

func sampleShop() *domain.Shop {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Shop{
		OwnerName:      "Ramesh",
		ShopNo:         "A-12",
		RegistrationNo: "REG-9001",
		OwnerContact:   "9876543210",
		OwnerAddress:   "Main Road",
		OwnerAdhaar:    "123412341234",
		RentStart:      start,
		RentEnd:        start.AddDate(1, 0, 0),
		TenureMonths:   12,
		MonthlyRent:    "5000",
	}
}

func shopRow(shop *domain.Shop, id string, now time.Time) []any {
	return []any{
		id, shop.OwnerName, shop.ShopNo, shop.RegistrationNo, shop.OwnerContact,
		shop.OwnerAddress, shop.OwnerAdhaar, shop.RentStart, shop.RentEnd,
		shop.TenureMonths, shop.MonthlyRent, shop.OwnerPhoto, shop.OwnerAdhaarPhoto,
		now, now,
	}
}

func TestShopRepositoryCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewShopRepository(mock)

	now := time.Now()
	shop := sampleShop()

	mock.ExpectQuery("INSERT INTO shops").
		WithArgs(anyArgs(12)...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("shop-1", now, now))

	if err := repo.Create(context.Background(), shop); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shop.ID != "shop-1" {
		t.Fatalf("expected generated id, got %q", shop.ID)
	}
}

func TestShopRepositoryCreateDuplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewShopRepository(mock)
	shop := sampleShop()

	mock.ExpectQuery("INSERT INTO shops").
		WithArgs(anyArgs(12)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "shops_shop_no_key"})
	if field := util.DuplicateField(repo.Create(context.Background(), shop)); field != "shopNo" {
		t.Fatalf("expected shopNo, got %q", field)
	}

	mock.ExpectQuery("INSERT INTO shops").
		WithArgs(anyArgs(12)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "shops_registration_no_key"})
	if field := util.DuplicateField(repo.Create(context.Background(), shop)); field != "registrationNo" {
		t.Fatalf("expected registrationNo, got %q", field)
	}
}

func TestShopRepositoryGetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewShopRepository(mock)

	shop := sampleShop()
	mock.ExpectQuery("SELECT (.+) FROM shops WHERE id=").
		WithArgs("shop-1").
		WillReturnRows(pgxmock.NewRows(shopRowColumns).AddRow(shopRow(shop, "shop-1", time.Now())...))

	got, err := repo.GetByID(context.Background(), "shop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ShopNo != "A-12" || got.TenureMonths != 12 {
		t.Fatalf("unexpected shop: %+v", got)
	}

	mock.ExpectQuery("SELECT (.+) FROM shops WHERE id=").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), "missing"); !util.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestShopRepositoryListFiltered(t *testing.T) {
	mock := newMockPool(t)
	repo := NewShopRepository(mock)

	shop := sampleShop()
	owner := "Ramesh"

	mock.ExpectQuery("SELECT (.+) FROM shops WHERE owner_name=").
		WithArgs(owner).
		WillReturnRows(pgxmock.NewRows(shopRowColumns).AddRow(shopRow(shop, "shop-1", time.Now())...))

	shops, err := repo.List(context.Background(), ShopFilter{OwnerName: &owner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shops) != 1 || shops[0].OwnerName != "Ramesh" {
		t.Fatalf("unexpected list: %+v", shops)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestShopRepositoryListEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewShopRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM shops").
		WillReturnRows(pgxmock.NewRows(shopRowColumns))

	shops, err := repo.List(context.Background(), ShopFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shops) != 0 {
		t.Fatalf("expected empty list, got %+v", shops)
	}
}

func TestShopRepositoryUpdate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewShopRepository(mock)
	shop := sampleShop()
	shop.ID = "shop-1"

	mock.ExpectExec("UPDATE shops").WithArgs(anyArgs(13)...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	if err := repo.Update(context.Background(), shop); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE shops").WithArgs(anyArgs(13)...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	if err := repo.Update(context.Background(), shop); !util.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE shops").
		WithArgs(anyArgs(13)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "shops_registration_no_key"})
	if field := util.DuplicateField(repo.Update(context.Background(), shop)); field != "registrationNo" {
		t.Fatalf("expected registrationNo, got %q", field)
	}
}

func TestShopRepositoryDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewShopRepository(mock)

	mock.ExpectExec("DELETE FROM shops").WithArgs("shop-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	if err := repo.Delete(context.Background(), "shop-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("DELETE FROM shops").WithArgs("gone").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	if err := repo.Delete(context.Background(), "gone"); !util.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestShopRepositoryFindIDByShopNo(t *testing.T) {
	mock := newMockPool(t)
	repo := NewShopRepository(mock)

	mock.ExpectQuery("SELECT id FROM shops WHERE shop_no=").
		WithArgs("A-12").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("shop-1"))

	id, err := repo.FindIDByShopNo(context.Background(), "A-12")
	if err != nil || id != "shop-1" {
		t.Fatalf("unexpected result: id=%q err=%v", id, err)
	}

	mock.ExpectQuery("SELECT id FROM shops WHERE registration_no=").
		WithArgs("REG-0000").
		WillReturnError(pgx.ErrNoRows)

	if _, err := repo.FindIDByRegistrationNo(context.Background(), "REG-0000"); !util.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
