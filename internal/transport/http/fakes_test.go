package http

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

// store is a single in-memory backing for every repository port.
type store struct {
	mu         sync.Mutex
	tick       time.Time
	users      map[uuid.UUID]domain.User
	sessions   map[string]domain.Session
	places     []domain.Place
	reviews    []domain.Review
	userPlaces []domain.UserPlace
	contacts   []domain.ContactMessage

	failLists    bool
	failTeardown bool
}

func newStore() *store {
	return &store{
		tick:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:    map[uuid.UUID]domain.User{},
		sessions: map[string]domain.Session{},
	}
}

func (s *store) next() time.Time {
	s.tick = s.tick.Add(time.Second)
	return s.tick
}

func (s *store) seedPlace(name, category string) domain.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.Place{ID: uuid.New(), Name: name, Description: "About " + name, Importance: "Why " + name, ImageURL: "https://img.example.com/x.jpg", Location: "India", Category: category}
	s.places = append(s.places, p)
	return p
}

func (s *store) placeByID(id uuid.UUID) (domain.Place, bool) {
	for _, p := range s.places {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Place{}, false
}

var errBackend = fmt.Errorf("backend unavailable")

type userRepo struct{ *store }

func (r userRepo) Create(ctx context.Context, username, hash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return nil, fmt.Errorf("user: %w", domain.ErrAlreadyExists)
		}
	}
	u := domain.User{ID: uuid.New(), Username: username, Password: hash, CreatedAt: r.next()}
	r.users[u.ID] = u
	return &u, nil
}

func (r userRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
	}
	return &u, nil
}

func (r userRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
}

type sessionRepo struct{ *store }

func (r sessionRepo) CreateSession(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := domain.Session{ID: int64(len(r.sessions) + 1), UserID: userID, Token: token, CreatedAt: time.Now(), ExpiresAt: expiresAt, IsActive: true}
	r.sessions[token] = s
	return &s, nil
}

func (r sessionRepo) DeactivateSession(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failTeardown {
		return errBackend
	}
	if s, ok := r.sessions[token]; ok {
		s.IsActive = false
		r.sessions[token] = s
	}
	return nil
}

func (r sessionRepo) FindActiveSession(ctx context.Context, token string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok || s.Expired(time.Now()) {
		return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
	}
	return &s, nil
}

type placeRepo struct{ *store }

func (r placeRepo) Create(ctx context.Context, place domain.Place) (*domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	place.ID = uuid.New()
	r.places = append(r.places, place)
	return &place, nil
}

func (r placeRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.placeByID(id)
	if !ok {
		return nil, fmt.Errorf("place: %w", domain.ErrNotFound)
	}
	return &p, nil
}

func (r placeRepo) List(ctx context.Context, filter domain.PlaceListFilter) ([]domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLists {
		return nil, errBackend
	}
	out := []domain.Place{}
	for _, p := range r.places {
		if len(filter.Categories) > 0 {
			match := false
			for _, c := range filter.Categories {
				match = match || c == p.Category
			}
			if !match {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (r placeRepo) ExistingNames(ctx context.Context, names []string) ([]string, error) {
	return nil, nil
}

type reviewRepo struct{ *store }

func (r reviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *review
	stored.ID = uuid.New()
	stored.CreatedAt = r.next()
	r.reviews = append(r.reviews, stored)
	return &stored, nil
}

func (r reviewRepo) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLists {
		return nil, errBackend
	}
	out := []domain.Review{}
	for _, rv := range r.reviews {
		if rv.PlaceID == placeID {
			out = append(out, rv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r reviewRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReviewWithPlace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLists {
		return nil, errBackend
	}
	out := []domain.ReviewWithPlace{}
	for _, rv := range r.reviews {
		if rv.UserID != userID {
			continue
		}
		p, _ := r.placeByID(rv.PlaceID)
		out = append(out, domain.ReviewWithPlace{Review: rv, Place: p})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type userPlaceRepo struct{ *store }

func (r userPlaceRepo) Create(ctx context.Context, up *domain.UserPlace) (*domain.UserPlace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *up
	stored.ID = uuid.New()
	stored.CreatedAt = r.next()
	r.userPlaces = append(r.userPlaces, stored)
	return &stored, nil
}

func (r userPlaceRepo) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.UserPlaceListFilter) ([]domain.UserPlaceWithPlace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLists {
		return nil, errBackend
	}
	out := []domain.UserPlaceWithPlace{}
	for _, up := range r.userPlaces {
		if up.UserID != userID || (filter.Status != nil && up.Status != *filter.Status) {
			continue
		}
		p, _ := r.placeByID(up.PlaceID)
		out = append(out, domain.UserPlaceWithPlace{UserPlace: up, Place: p})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type contactRepo struct{ *store }

func (r contactRepo) Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *m
	stored.ID = uuid.New()
	stored.CreatedAt = r.next()
	r.contacts = append(r.contacts, stored)
	return &stored, nil
}
