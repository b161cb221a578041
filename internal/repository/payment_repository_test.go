package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

var paymentRowColumns = []string{"id", "shop_id", "amount", "method", "paid_at", "created_at"}

func TestPaymentRepositoryCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepository(mock)

	now := time.Now()
	payment := &domain.Payment{ShopID: "shop-1", Amount: 5000, Method: "UPI", PaidAt: now}

	mock.ExpectQuery("INSERT INTO payments").
		WithArgs("shop-1", int64(5000), "UPI", now).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("pay-1", now))

	if err := repo.Create(context.Background(), payment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.ID != "pay-1" {
		t.Fatalf("expected generated id, got %q", payment.ID)
	}
}

func TestPaymentRepositoryCreateStoreDown(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepository(mock)

	mock.ExpectQuery("INSERT INTO payments").WithArgs(anyArgs(4)...).WillReturnError(context.DeadlineExceeded)

	err := repo.Create(context.Background(), &domain.Payment{ShopID: "shop-1", Amount: 5000, Method: "UPI"})
	if !util.HasCode(err, util.CodeStoreUnavailable) {
		t.Fatalf("expected store unavailable, got %v", err)
	}
}

func TestPaymentRepositoryGetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepository(mock)

	now := time.Now()
	mock.ExpectQuery("SELECT id, shop_id, amount, method, paid_at, created_at").
		WithArgs("pay-1").
		WillReturnRows(pgxmock.NewRows(paymentRowColumns).AddRow("pay-1", "shop-1", int64(5000), "CASH", now, now))

	payment, err := repo.GetByID(context.Background(), "pay-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Amount != 5000 || payment.Method != "CASH" {
		t.Fatalf("unexpected payment: %+v", payment)
	}

	mock.ExpectQuery("SELECT id, shop_id, amount, method, paid_at, created_at").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), "missing"); !util.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPaymentRepositoryListByShop(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepository(mock)

	now := time.Now()
	shopID := "shop-1"
	mock.ExpectQuery("SELECT id, shop_id, amount, method, paid_at, created_at").
		WithArgs(shopID).
		WillReturnRows(pgxmock.NewRows(paymentRowColumns).
			AddRow("pay-1", shopID, int64(5000), "UPI", now, now).
			AddRow("pay-2", shopID, int64(5000), "CASH", now.Add(-time.Hour), now))

	payments, err := repo.List(context.Background(), PaymentFilter{ShopID: &shopID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 2 || payments[0].ID != "pay-1" {
		t.Fatalf("unexpected list: %+v", payments)
	}
}

func TestPaymentRepositoryListByMethodEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepository(mock)

	method := "CHEQUE"
	mock.ExpectQuery("SELECT id, shop_id, amount, method, paid_at, created_at").
		WithArgs(method).
		WillReturnRows(pgxmock.NewRows(paymentRowColumns))

	payments, err := repo.List(context.Background(), PaymentFilter{Method: &method})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 0 {
		t.Fatalf("expected empty list, got %+v", payments)
	}
}

func TestPaymentRepositoryUpdate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepository(mock)

	payment := &domain.Payment{ID: "pay-1", Amount: 6000, Method: "UPI", PaidAt: time.Now()}

	mock.ExpectExec("UPDATE payments").WithArgs(anyArgs(4)...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	if err := repo.Update(context.Background(), payment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE payments").WithArgs(anyArgs(4)...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	if err := repo.Update(context.Background(), payment); !util.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPaymentRepositoryDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepository(mock)

	mock.ExpectExec("DELETE FROM payments").WithArgs("pay-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	if err := repo.Delete(context.Background(), "pay-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("DELETE FROM payments").WithArgs("gone").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	if err := repo.Delete(context.Background(), "gone"); !util.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
