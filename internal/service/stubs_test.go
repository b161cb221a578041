package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
	"github.com/abhay8696/rajmudra-backend/internal/repository"
	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

// fakeAdminStore is an in-memory AdminRepository. It enforces contact/email
// uniqueness under a mutex, mirroring the database's unique constraints, so
// concurrent-writer tests exercise the same last line of defense.
type fakeAdminStore struct {
	mu     sync.Mutex
	seq    int
	admins map[string]*domain.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]*domain.Admin)}
}

func (s *fakeAdminStore) conflict(admin *domain.Admin, excludeID string) error {
	for _, existing := range s.admins {
		if existing.ID == excludeID {
			continue
		}
		if existing.Contact == admin.Contact {
			return util.NewDuplicate("contact", admin.Contact)
		}
		if existing.Email != nil && admin.Email != nil && *existing.Email == *admin.Email {
			return util.NewDuplicate("email", *admin.Email)
		}
	}
	return nil
}

func (s *fakeAdminStore) Create(_ context.Context, admin *domain.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conflict(admin, ""); err != nil {
		return err
	}
	s.seq++
	admin.ID = fmt.Sprintf("admin-%d", s.seq)
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	copied := *admin
	s.admins[admin.ID] = &copied
	return nil
}

func (s *fakeAdminStore) Update(_ context.Context, admin *domain.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[admin.ID]; !ok {
		return util.NewNotFound("admin")
	}
	if err := s.conflict(admin, admin.ID); err != nil {
		return err
	}
	admin.UpdatedAt = time.Now()
	copied := *admin
	s.admins[admin.ID] = &copied
	return nil
}

func (s *fakeAdminStore) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.admins[id]
	if !ok {
		return nil, util.NewNotFound("admin")
	}
	copied := *admin
	return &copied, nil
}

func (s *fakeAdminStore) GetByContact(_ context.Context, contact string) (*domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, admin := range s.admins {
		if admin.Contact == contact {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, util.NewNotFound("admin")
}

func (s *fakeAdminStore) List(_ context.Context) ([]domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Admin
	for _, admin := range s.admins {
		result = append(result, *admin)
	}
	return result, nil
}

func (s *fakeAdminStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[id]; !ok {
		return util.NewNotFound("admin")
	}
	delete(s.admins, id)
	return nil
}

func (s *fakeAdminStore) FindIDByContact(_ context.Context, contact string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, admin := range s.admins {
		if admin.Contact == contact {
			return admin.ID, nil
		}
	}
	return "", util.NewNotFound("admin")
}

func (s *fakeAdminStore) FindIDByEmail(_ context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, admin := range s.admins {
		if admin.Email != nil && *admin.Email == email {
			return admin.ID, nil
		}
	}
	return "", util.NewNotFound("admin")
}

// fakeShopStore is an in-memory ShopRepository with the same uniqueness
// behavior as the shops table. updateCalls counts writes that reached the
// store.
type fakeShopStore struct {
	mu          sync.Mutex
	seq         int
	shops       map[string]*domain.Shop
	updateCalls int
}

func newFakeShopStore() *fakeShopStore {
	return &fakeShopStore{shops: make(map[string]*domain.Shop)}
}

func (s *fakeShopStore) conflict(shop *domain.Shop, excludeID string) error {
	for _, existing := range s.shops {
		if existing.ID == excludeID {
			continue
		}
		if existing.ShopNo == shop.ShopNo {
			return util.NewDuplicate("shopNo", shop.ShopNo)
		}
		if existing.RegistrationNo == shop.RegistrationNo {
			return util.NewDuplicate("registrationNo", shop.RegistrationNo)
		}
	}
	return nil
}

func (s *fakeShopStore) Create(_ context.Context, shop *domain.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conflict(shop, ""); err != nil {
		return err
	}
	s.seq++
	shop.ID = fmt.Sprintf("shop-%d", s.seq)
	shop.CreatedAt = time.Now()
	shop.UpdatedAt = shop.CreatedAt
	copied := *shop
	s.shops[shop.ID] = &copied
	return nil
}

func (s *fakeShopStore) Update(_ context.Context, shop *domain.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls++
	if _, ok := s.shops[shop.ID]; !ok {
		return util.NewNotFound("shop")
	}
	if err := s.conflict(shop, shop.ID); err != nil {
		return err
	}
	shop.UpdatedAt = time.Now()
	copied := *shop
	s.shops[shop.ID] = &copied
	return nil
}

func (s *fakeShopStore) GetByID(_ context.Context, id string) (*domain.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shop, ok := s.shops[id]
	if !ok {
		return nil, util.NewNotFound("shop")
	}
	copied := *shop
	return &copied, nil
}

func (s *fakeShopStore) List(_ context.Context, filter repository.ShopFilter) ([]domain.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Shop
	for _, shop := range s.shops {
		if filter.OwnerName != nil && shop.OwnerName != *filter.OwnerName {
			continue
		}
		if filter.ShopNo != nil && shop.ShopNo != *filter.ShopNo {
			continue
		}
		result = append(result, *shop)
	}
	return result, nil
}

func (s *fakeShopStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shops[id]; !ok {
		return util.NewNotFound("shop")
	}
	delete(s.shops, id)
	return nil
}

func (s *fakeShopStore) FindIDByShopNo(_ context.Context, shopNo string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, shop := range s.shops {
		if shop.ShopNo == shopNo {
			return shop.ID, nil
		}
	}
	return "", util.NewNotFound("shop")
}

func (s *fakeShopStore) FindIDByRegistrationNo(_ context.Context, registrationNo string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, shop := range s.shops {
		if shop.RegistrationNo == registrationNo {
			return shop.ID, nil
		}
	}
	return "", util.NewNotFound("shop")
}

// fakePaymentStore is an in-memory PaymentRepository.
type fakePaymentStore struct {
	mu       sync.Mutex
	seq      int
	payments map[string]*domain.Payment
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: make(map[string]*domain.Payment)}
}

func (s *fakePaymentStore) Create(_ context.Context, payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	payment.ID = fmt.Sprintf("pay-%d", s.seq)
	payment.CreatedAt = time.Now()
	copied := *payment
	s.payments[payment.ID] = &copied
	return nil
}

func (s *fakePaymentStore) Update(_ context.Context, payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[payment.ID]; !ok {
		return util.NewNotFound("payment")
	}
	copied := *payment
	s.payments[payment.ID] = &copied
	return nil
}

func (s *fakePaymentStore) GetByID(_ context.Context, id string) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[id]
	if !ok {
		return nil, util.NewNotFound("payment")
	}
	copied := *payment
	return &copied, nil
}

func (s *fakePaymentStore) List(_ context.Context, filter repository.PaymentFilter) ([]domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Payment
	for _, payment := range s.payments {
		if filter.ShopID != nil && payment.ShopID != *filter.ShopID {
			continue
		}
		if filter.Method != nil && payment.Method != *filter.Method {
			continue
		}
		result = append(result, *payment)
	}
	return result, nil
}

func (s *fakePaymentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[id]; !ok {
		return util.NewNotFound("payment")
	}
	delete(s.payments, id)
	return nil
}
