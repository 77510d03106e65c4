package application

import (
	"context"
	"sync"
	"time"

	"github.com/homelyhq/homely-backend/internal/domain/entity"
	"github.com/homelyhq/homely-backend/internal/infrastructure/postgres"
)

type pairKey struct {
	propertyID int64
	userID     int64
}

// fakeLikeRepository mirrors the database contract: one row per pair,
// atomic flip-or-insert under a single lock.
type fakeLikeRepository struct {
	mu      sync.Mutex
	rows    map[pairKey]bool
	toggles int
}

func newFakeLikeRepository() *fakeLikeRepository {
	return &fakeLikeRepository{rows: map[pairKey]bool{}}
}

func (f *fakeLikeRepository) Toggle(_ context.Context, propertyID, userID int64) (*entity.PropertyLike, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toggles++
	key := pairKey{propertyID, userID}
	if liked, ok := f.rows[key]; ok {
		f.rows[key] = !liked
	} else {
		f.rows[key] = true
	}
	return &entity.PropertyLike{PropertyID: propertyID, UserID: userID, Liked: f.rows[key]}, nil
}

func (f *fakeLikeRepository) rowCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func (f *fakeLikeRepository) state(propertyID, userID int64) (bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	liked, ok := f.rows[pairKey{propertyID, userID}]
	return liked, ok
}

type fakePropertyRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   []entity.Property
}

func (f *fakePropertyRepository) Create(_ context.Context, p *entity.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt = time.Now()
	f.rows = append(f.rows, *p)
	return nil
}

func (f *fakePropertyRepository) GetByID(_ context.Context, id int64) (*entity.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			p := f.rows[i]
			return &p, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (f *fakePropertyRepository) List(_ context.Context) ([]entity.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Property, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

type fakeUserRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   []entity.User
}

func (f *fakeUserRepository) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Username == u.Username || (u.Email != "" && row.Email == u.Email) {
			return postgres.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.rows = append(f.rows, *u)
	return nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			u := f.rows[i]
			return &u, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (f *fakeUserRepository) GetByLogin(_ context.Context, login string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].Username == login || (f.rows[i].Email != "" && f.rows[i].Email == login) {
			u := f.rows[i]
			return &u, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (f *fakeUserRepository) Exists(_ context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Username == username || (email != "" && (row.Email == email || row.Username == email)) ||
			(username != "" && row.Email == username) {
			return true, nil
		}
	}
	return false, nil
}

type fakeContactRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   []entity.ContactMessage
}

func (f *fakeContactRepository) Create(_ context.Context, m *entity.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	m.ID = f.nextID
	m.CreatedAt = time.Now()
	f.rows = append(f.rows, *m)
	return nil
}
