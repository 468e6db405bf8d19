package memory

import (
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
)

// UserRepository implementa repository.UserRepository sobre el Store.
type UserRepository struct {
	store *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create inserta un usuario. Retorna ErrDuplicate si el ID ya existe y
// ErrEmailAlreadyExists si el email ya está registrado.
func (r *UserRepository) Create(user *entity.User) error {
	if user == nil || user.ID == "" {
		return domain.ErrInvalidInput
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.store.users[user.ID] = cloneUser(*user)
	return nil
}

// GetByID retorna el usuario o ErrUserNotFound.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := cloneUser(u)
	return &out, nil
}

// GetByEmail retorna el usuario o ErrUserNotFound.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.Email == email {
			out := cloneUser(u)
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Update reemplaza el registro completo. Retorna ErrUserNotFound si no existe.
func (r *UserRepository) Update(user *entity.User) error {
	if user == nil || user.ID == "" {
		return domain.ErrInvalidInput
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.store.users[user.ID] = cloneUser(*user)
	return nil
}

// List retorna todos los usuarios ordenados por fecha de creación.
func (r *UserRepository) List() ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		c := cloneUser(u)
		out = append(out, &c)
	}
	sortByCreatedAt(out, func(u *entity.User) int64 { return u.CreatedAt.UnixNano() })
	return out, nil
}

// ListByRole retorna los usuarios con el rol dado.
func (r *UserRepository) ListByRole(role string) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.User, 0)
	for _, u := range r.store.users {
		if u.Role == role {
			c := cloneUser(u)
			out = append(out, &c)
		}
	}
	sortByCreatedAt(out, func(u *entity.User) int64 { return u.CreatedAt.UnixNano() })
	return out, nil
}

// Delete elimina el usuario. Retorna ErrUserNotFound si no existe.
func (r *UserRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.store.users, id)
	return nil
}
