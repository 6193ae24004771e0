package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

// fakeHasher produces "hash$<plain>" and counts Hash calls so tests can
// assert a password was hashed exactly once.
type fakeHasher struct {
	calls int
}

func (h *fakeHasher) Hash(plain string) (string, error) {
	h.calls++
	return "hash$" + plain, nil
}

func (h *fakeHasher) Verify(plain, encoded string) (bool, error) {
	if !strings.HasPrefix(encoded, "hash$") {
		return false, errors.New("malformed")
	}
	return encoded == "hash$"+plain, nil
}

// stubCredentials is an in-memory CredentialProvider for one category.
type stubCredentials struct {
	role  domain.Role
	creds []*domain.Credential
	err   error
}

func (s *stubCredentials) Role() domain.Role { return s.role }

func (s *stubCredentials) add(id int64, email, hash string, active bool) *stubCredentials {
	s.creds = append(s.creds, &domain.Credential{ID: id, Email: email, PasswordHash: hash, Role: s.role, Active: active})
	return s
}

func (s *stubCredentials) FindCredentialByEmail(_ context.Context, email string) (*domain.Credential, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.creds {
		if c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubCredentials) FindCredentialByID(_ context.Context, id int64) (*domain.Credential, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.creds {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

// stubCustomerRepo is a map-backed CustomerRepository with per-table email
// uniqueness.
type stubCustomerRepo struct {
	stubCredentials
	customers map[int64]*domain.Customer
	hashes    map[int64]string
	nextID    int64
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{
		stubCredentials: stubCredentials{role: domain.RoleCustomer},
		customers:       make(map[int64]*domain.Customer),
		hashes:          make(map[int64]string),
	}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer, hash string) error {
	for _, existing := range r.customers {
		if existing.Email == c.Email {
			return domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.customers[c.ID] = &clone
	r.hashes[c.ID] = hash
	r.add(c.ID, c.Email, hash, c.Active)
	return nil
}

func (r *stubCustomerRepo) List(context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer, hash string) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *c
	r.customers[c.ID] = &clone
	if hash != "" {
		r.hashes[c.ID] = hash
	}
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id int64) error {
	delete(r.customers, id)
	delete(r.hashes, id)
	return nil
}

// stubAdminRepo is a map-backed AdminRepository.
type stubAdminRepo struct {
	stubCredentials
	admins map[int64]*domain.Admin
	hashes map[int64]string
	nextID int64
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{
		stubCredentials: stubCredentials{role: domain.RoleAdmin},
		admins:          make(map[int64]*domain.Admin),
		hashes:          make(map[int64]string),
	}
}

func (r *stubAdminRepo) Create(_ context.Context, a *domain.Admin, hash string) error {
	for _, existing := range r.admins {
		if existing.Email == a.Email {
			return domain.ErrDuplicateEmail
		}
		if existing.Username == a.Username {
			return domain.ErrDuplicateUsername
		}
	}
	r.nextID++
	a.ID = r.nextID
	clone := *a
	r.admins[a.ID] = &clone
	r.hashes[a.ID] = hash
	return nil
}

func (r *stubAdminRepo) List(context.Context) ([]domain.Admin, error) {
	out := make([]domain.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAdminRepo) FindByID(_ context.Context, id int64) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAdminRepo) Update(_ context.Context, a *domain.Admin, hash string) error {
	clone := *a
	r.admins[a.ID] = &clone
	if hash != "" {
		r.hashes[a.ID] = hash
	}
	return nil
}

func (r *stubAdminRepo) Delete(_ context.Context, id int64) error {
	delete(r.admins, id)
	return nil
}

// stubEmployeeRepo is a map-backed EmployeeRepository.
type stubEmployeeRepo struct {
	stubCredentials
	employees map[int64]*domain.Employee
	hashes    map[int64]string
	nextID    int64
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{
		stubCredentials: stubCredentials{role: domain.RoleEmployee},
		employees:       make(map[int64]*domain.Employee),
		hashes:          make(map[int64]string),
	}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee, hash string) error {
	r.nextID++
	e.ID = r.nextID
	clone := *e
	r.employees[e.ID] = &clone
	r.hashes[e.ID] = hash
	return nil
}

func (r *stubEmployeeRepo) List(_ context.Context, f ports.EmployeeFilter) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, e := range r.employees {
		if f.StoreID != nil && (e.StoreID == nil || *e.StoreID != *f.StoreID) {
			continue
		}
		if f.Active != nil && e.Active != *f.Active {
			continue
		}
		if f.Position != "" && e.Position != f.Position {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id int64) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee, hash string) error {
	clone := *e
	r.employees[e.ID] = &clone
	if hash != "" {
		r.hashes[e.ID] = hash
	}
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id int64) error {
	delete(r.employees, id)
	return nil
}

// stubStoreRepo is a map-backed StoreRepository.
type stubStoreRepo struct {
	stores map[int64]*domain.Store
	nextID int64
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{stores: make(map[int64]*domain.Store)}
}

func (r *stubStoreRepo) Create(_ context.Context, s *domain.Store) error {
	r.nextID++
	s.ID = r.nextID
	clone := *s
	r.stores[s.ID] = &clone
	return nil
}

func (r *stubStoreRepo) List(_ context.Context, active *bool) ([]domain.Store, error) {
	var out []domain.Store
	for _, s := range r.stores {
		if active == nil || s.Active == *active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubStoreRepo) FindByID(_ context.Context, id int64) (*domain.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubStoreRepo) Update(_ context.Context, s *domain.Store) error {
	clone := *s
	r.stores[s.ID] = &clone
	return nil
}

func (r *stubStoreRepo) Delete(_ context.Context, id int64) error {
	delete(r.stores, id)
	return nil
}

// recordingAudit captures entries passed to Record.
type recordingAudit struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (a *recordingAudit) Record(_ context.Context, e domain.AuditEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, e)
}
