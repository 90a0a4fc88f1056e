package adaptertest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// UserRepository is an in-memory adapter.UserRepository.
type UserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

// NewUserRepository creates an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return domainerror.ErrEmailAlreadyExists
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

// CareProfileRepository is an in-memory adapter.CareProfileRepository.
type CareProfileRepository struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*entity.CareProfile
	creates  int
}

// NewCareProfileRepository creates an empty CareProfileRepository.
func NewCareProfileRepository() *CareProfileRepository {
	return &CareProfileRepository{profiles: make(map[uuid.UUID]*entity.CareProfile)}
}

// Creates reports how many profiles were inserted.
func (r *CareProfileRepository) Creates() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.creates
}

func (r *CareProfileRepository) Create(_ context.Context, profile *entity.CareProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.ExternalID == profile.ExternalID {
			return domainerror.ErrCareProfileExists
		}
	}
	copied := *profile
	r.profiles[profile.ID] = &copied
	r.creates++
	return nil
}

func (r *CareProfileRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.CareProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, domainerror.ErrCareProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *CareProfileRepository) FindByExternalID(_ context.Context, externalID int64) (*entity.CareProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.ExternalID == externalID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domainerror.ErrCareProfileNotFound
}

func (r *CareProfileRepository) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.CareProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[uuid.UUID]*entity.CareProfile, len(ids))
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			copied := *p
			result[id] = &copied
		}
	}
	return result, nil
}

func (r *CareProfileRepository) Update(_ context.Context, profile *entity.CareProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.ID]; !ok {
		return domainerror.ErrCareProfileNotFound
	}
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

// GardenStore is an in-memory adapter.GardenStore shared by every owner.
type GardenStore struct {
	mu        sync.Mutex
	seq       int
	locations map[uuid.UUID]*entity.Location
	plants    map[uuid.UUID]*entity.TrackedPlant
	wishlist  map[uuid.UUID]*entity.WishlistEntry
	order     map[uuid.UUID]int
}

// NewGardenStore creates an empty GardenStore.
func NewGardenStore() *GardenStore {
	return &GardenStore{
		locations: make(map[uuid.UUID]*entity.Location),
		plants:    make(map[uuid.UUID]*entity.TrackedPlant),
		wishlist:  make(map[uuid.UUID]*entity.WishlistEntry),
		order:     make(map[uuid.UUID]int),
	}
}

// ForOwner implements adapter.GardenStore.
func (s *GardenStore) ForOwner(ownerID uuid.UUID) adapter.OwnerScope {
	return &ownerScope{store: s, ownerID: ownerID}
}

func (s *GardenStore) remember(id uuid.UUID) {
	s.seq++
	s.order[id] = s.seq
}

type ownerScope struct {
	store   *GardenStore
	ownerID uuid.UUID
}

func (o *ownerScope) Locations() adapter.LocationRepository  { return &locationRepo{o} }
func (o *ownerScope) Plants() adapter.TrackedPlantRepository { return &plantRepo{o} }
func (o *ownerScope) Wishlist() adapter.WishlistRepository   { return &wishlistRepo{o} }

type locationRepo struct{ *ownerScope }

func (r *locationRepo) Create(_ context.Context, location *entity.Location) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	location.OwnerID = r.ownerID
	copied := *location
	r.store.locations[location.ID] = &copied
	r.store.remember(location.ID)
	return nil
}

func (r *locationRepo) find(id uuid.UUID) (*entity.Location, error) {
	l, ok := r.store.locations[id]
	if !ok {
		return nil, domainerror.ErrLocationNotFound
	}
	if l.OwnerID != r.ownerID {
		return nil, domainerror.ErrOwnershipViolation
	}
	return l, nil
}

func (r *locationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Location, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	l, err := r.find(id)
	if err != nil {
		return nil, err
	}
	copied := *l
	return &copied, nil
}

func (r *locationRepo) List(_ context.Context) ([]*entity.Location, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.Location
	for _, l := range r.store.locations {
		if l.OwnerID == r.ownerID {
			copied := *l
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *locationRepo) Update(_ context.Context, location *entity.Location) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, err := r.find(location.ID); err != nil {
		return err
	}
	copied := *location
	copied.OwnerID = r.ownerID
	r.store.locations[location.ID] = &copied
	return nil
}

func (r *locationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, err := r.find(id); err != nil {
		return err
	}
	delete(r.store.locations, id)
	return nil
}

type plantRepo struct{ *ownerScope }

func (r *plantRepo) Create(_ context.Context, plant *entity.TrackedPlant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	plant.OwnerID = r.ownerID
	copied := *plant
	r.store.plants[plant.ID] = &copied
	r.store.remember(plant.ID)
	return nil
}

func (r *plantRepo) find(id uuid.UUID) (*entity.TrackedPlant, error) {
	p, ok := r.store.plants[id]
	if !ok {
		return nil, domainerror.ErrPlantNotFound
	}
	if p.OwnerID != r.ownerID {
		return nil, domainerror.ErrOwnershipViolation
	}
	return p, nil
}

func (r *plantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TrackedPlant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, err := r.find(id)
	if err != nil {
		return nil, err
	}
	copied := *p
	return &copied, nil
}

func (r *plantRepo) list(match func(*entity.TrackedPlant) bool) []*entity.TrackedPlant {
	var result []*entity.TrackedPlant
	for _, p := range r.store.plants {
		if p.OwnerID == r.ownerID && match(p) {
			copied := *p
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return r.store.order[result[i].ID] < r.store.order[result[j].ID]
	})
	return result
}

func (r *plantRepo) List(_ context.Context) ([]*entity.TrackedPlant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.list(func(*entity.TrackedPlant) bool { return true }), nil
}

func (r *plantRepo) ListByLocation(_ context.Context, locationID uuid.UUID) ([]*entity.TrackedPlant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.list(func(p *entity.TrackedPlant) bool { return p.LocationID == locationID }), nil
}

func (r *plantRepo) CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	plants, err := r.ListByLocation(ctx, locationID)
	return int64(len(plants)), err
}

func (r *plantRepo) Update(_ context.Context, plant *entity.TrackedPlant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, err := r.find(plant.ID); err != nil {
		return err
	}
	copied := *plant
	copied.OwnerID = r.ownerID
	r.store.plants[plant.ID] = &copied
	return nil
}

func (r *plantRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, err := r.find(id); err != nil {
		return err
	}
	delete(r.store.plants, id)
	return nil
}

type wishlistRepo struct{ *ownerScope }

func (r *wishlistRepo) Create(_ context.Context, entry *entity.WishlistEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.wishlist {
		if e.OwnerID == r.ownerID && e.ExternalID == entry.ExternalID {
			return domainerror.ErrAlreadyOnWishlist
		}
	}
	entry.OwnerID = r.ownerID
	copied := *entry
	r.store.wishlist[entry.ID] = &copied
	r.store.remember(entry.ID)
	return nil
}

func (r *wishlistRepo) find(id uuid.UUID) (*entity.WishlistEntry, error) {
	e, ok := r.store.wishlist[id]
	if !ok {
		return nil, domainerror.ErrWishlistEntryNotFound
	}
	if e.OwnerID != r.ownerID {
		return nil, domainerror.ErrOwnershipViolation
	}
	return e, nil
}

func (r *wishlistRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.WishlistEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, err := r.find(id)
	if err != nil {
		return nil, err
	}
	copied := *e
	return &copied, nil
}

func (r *wishlistRepo) ExistsByExternalID(_ context.Context, externalID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.wishlist {
		if e.OwnerID == r.ownerID && e.ExternalID == externalID {
			return true, nil
		}
	}
	return false, nil
}

func (r *wishlistRepo) List(_ context.Context) ([]*entity.WishlistEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.WishlistEntry
	for _, e := range r.store.wishlist {
		if e.OwnerID == r.ownerID {
			copied := *e
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return r.store.order[result[i].ID] < r.store.order[result[j].ID]
	})
	return result, nil
}

func (r *wishlistRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, err := r.find(id); err != nil {
		return err
	}
	delete(r.store.wishlist, id)
	return nil
}
