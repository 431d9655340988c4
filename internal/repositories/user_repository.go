package repositories

import (
	"context"
	"strings"
	"sync"

	"hrnexus_backend/internal/apperrors"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/recordstore"
)

// UserRepository handles account records.
type UserRepository interface {
	Save(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepository struct {
	mu    sync.Mutex
	store recordstore.Store
}

// NewUserRepository creates a UserRepository backed by the record store.
func NewUserRepository(store recordstore.Store) UserRepository {
	return &userRepository{store: store}
}

// Save inserts the user, or updates it when the id already exists.
// A different user holding the same email (case-insensitive) is rejected.
func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var users []models.User
	if err := r.store.Read(ctx, recordstore.KeyUsers, &users); err != nil {
		return err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, user.Email) && users[i].ID != user.ID {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	updated := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			updated = true
			break
		}
	}
	if !updated {
		users = append(users, *user)
	}

	return r.store.Write(ctx, recordstore.KeyUsers, users)
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.store.Read(ctx, recordstore.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns nil, nil when no user holds the id.
func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var users []models.User
	if err := r.store.Read(ctx, recordstore.KeyUsers, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// GetByEmail matches case-insensitively and returns nil, nil on no match.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	if err := r.store.Read(ctx, recordstore.KeyUsers, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}
