package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/util"
)

// testClock hands out strictly increasing timestamps so ordering by
// created_at is deterministic.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type memoryUserRepo struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*domain.User
	clock     *testClock
	findErr   error
	createErr error
}

func newMemoryUserRepo(clock *testClock) *memoryUserRepo {
	return &memoryUserRepo{byID: map[uuid.UUID]*domain.User{}, clock: clock}
}

func (r *memoryUserRepo) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.byID {
		if u.Username == username {
			return nil, fmt.Errorf("user: %w", domain.ErrAlreadyExists)
		}
	}
	u := &domain.User{ID: uuid.New(), Username: username, Password: passwordHash, CreatedAt: r.clock.Now()}
	r.byID[u.ID] = u
	cp := *u
	return &cp, nil
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *memoryUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
}

func (r *memoryUserRepo) delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

type memorySessionRepo struct {
	mu            sync.Mutex
	byToken       map[string]*domain.Session
	seq           int64
	clock         func() time.Time
	deactivateErr error
}

func newMemorySessionRepo(clock func() time.Time) *memorySessionRepo {
	return &memorySessionRepo{byToken: map[string]*domain.Session{}, clock: clock}
}

func (r *memorySessionRepo) CreateSession(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	s := &domain.Session{ID: r.seq, UserID: userID, Token: token, CreatedAt: r.clock(), ExpiresAt: expiresAt, IsActive: true}
	r.byToken[token] = s
	cp := *s
	return &cp, nil
}

func (r *memorySessionRepo) DeactivateSession(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deactivateErr != nil {
		return r.deactivateErr
	}
	if s, ok := r.byToken[token]; ok {
		s.IsActive = false
	}
	return nil
}

func (r *memorySessionRepo) FindActiveSession(ctx context.Context, token string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byToken[token]
	if !ok || s.Expired(r.clock()) {
		return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
	}
	cp := *s
	return &cp, nil
}

type memoryPlaceRepo struct {
	mu      sync.Mutex
	items   []domain.Place
	listErr error
	findErr error
}

func (r *memoryPlaceRepo) add(name, category string) domain.Place {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := domain.Place{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " description",
		Importance:  name + " importance",
		ImageURL:    "https://images.example.com/" + name + ".jpg",
		Location:    "India",
		Category:    category,
	}
	r.items = append(r.items, p)
	return p
}

func (r *memoryPlaceRepo) Create(ctx context.Context, place domain.Place) (*domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	place.ID = uuid.New()
	r.items = append(r.items, place)
	return &place, nil
}

func (r *memoryPlaceRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, p := range r.items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("place: %w", domain.ErrNotFound)
}

func (r *memoryPlaceRepo) List(ctx context.Context, filter domain.PlaceListFilter) ([]domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Place, 0, len(r.items))
	for _, p := range r.items {
		if len(filter.Categories) > 0 && !contains(filter.Categories, p.Category) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryPlaceRepo) ExistingNames(ctx context.Context, names []string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, p := range r.items {
		if contains(names, p.Name) {
			out = append(out, p.Name)
		}
	}
	return out, nil
}

func (r *memoryPlaceRepo) lookup(id uuid.UUID) (domain.Place, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Place{}, false
}

type memoryReviewRepo struct {
	mu     sync.Mutex
	items  []domain.Review
	places *memoryPlaceRepo
	clock  *testClock
}

func (r *memoryReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if _, ok := r.places.lookup(review.PlaceID); !ok {
		return nil, fmt.Errorf("review: %w", domain.ErrNotFound)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *review
	stored.ID = uuid.New()
	stored.CreatedAt = r.clock.Now()
	r.items = append(r.items, stored)
	return &stored, nil
}

func (r *memoryReviewRepo) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Review, 0)
	for _, rv := range r.items {
		if rv.PlaceID == placeID {
			out = append(out, rv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryReviewRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReviewWithPlace, error) {
	r.mu.Lock()
	items := append([]domain.Review(nil), r.items...)
	r.mu.Unlock()

	out := make([]domain.ReviewWithPlace, 0)
	for _, rv := range items {
		if rv.UserID != userID {
			continue
		}
		place, ok := r.places.lookup(rv.PlaceID)
		if !ok {
			continue
		}
		out = append(out, domain.ReviewWithPlace{Review: rv, Place: place})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type memoryUserPlaceRepo struct {
	mu     sync.Mutex
	items  []domain.UserPlace
	places *memoryPlaceRepo
	clock  *testClock
}

func (r *memoryUserPlaceRepo) Create(ctx context.Context, userPlace *domain.UserPlace) (*domain.UserPlace, error) {
	if _, ok := r.places.lookup(userPlace.PlaceID); !ok {
		return nil, fmt.Errorf("user place: %w", domain.ErrNotFound)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *userPlace
	stored.ID = uuid.New()
	stored.CreatedAt = r.clock.Now()
	r.items = append(r.items, stored)
	return &stored, nil
}

func (r *memoryUserPlaceRepo) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.UserPlaceListFilter) ([]domain.UserPlaceWithPlace, error) {
	r.mu.Lock()
	items := append([]domain.UserPlace(nil), r.items...)
	r.mu.Unlock()

	out := make([]domain.UserPlaceWithPlace, 0)
	for _, up := range items {
		if up.UserID != userID {
			continue
		}
		if filter.Status != nil && up.Status != *filter.Status {
			continue
		}
		place, ok := r.places.lookup(up.PlaceID)
		if !ok {
			continue
		}
		out = append(out, domain.UserPlaceWithPlace{UserPlace: up, Place: place})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryUserPlaceRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type memoryContactRepo struct {
	mu    sync.Mutex
	items []domain.ContactMessage
	err   error
}

func (r *memoryContactRepo) Create(ctx context.Context, message *domain.ContactMessage) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	stored := *message
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	r.items = append(r.items, stored)
	return &stored, nil
}

type recordingNotifier struct {
	calls int
	err   error
}

func (n *recordingNotifier) NotifyContactMessage(ctx context.Context, message *domain.ContactMessage) error {
	n.calls++
	return n.err
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

var errStorageDown = errors.New("connection refused")

type fixture struct {
	clock      *testClock
	users      *memoryUserRepo
	sessions   *memorySessionRepo
	places     *memoryPlaceRepo
	reviews    *memoryReviewRepo
	userPlaces *memoryUserPlaceRepo
	contacts   *memoryContactRepo
	auth       *AuthService
}

func newFixture() *fixture {
	clock := newTestClock()
	places := &memoryPlaceRepo{}
	f := &fixture{
		clock:      clock,
		users:      newMemoryUserRepo(clock),
		sessions:   newMemorySessionRepo(time.Now),
		places:     places,
		reviews:    &memoryReviewRepo{places: places, clock: clock},
		userPlaces: &memoryUserPlaceRepo{places: places, clock: clock},
		contacts:   &memoryContactRepo{},
	}
	f.auth = NewAuthService(f.users, f.sessions, util.NewJWTManager("test-secret", "explore-india"), AuthServiceConfig{})
	return f
}
