package repositories

import (
	"context"
	"sync"

	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/recordstore"
)

// ActivityRepository records audit events. Append-only.
type ActivityRepository interface {
	Save(ctx context.Context, entry *models.ActivityLog) error
	GetAll(ctx context.Context) ([]models.ActivityLog, error)
	GetByUserID(ctx context.Context, userID string) ([]models.ActivityLog, error)
}

type activityRepository struct {
	mu    sync.Mutex
	store recordstore.Store
}

// NewActivityRepository creates an ActivityRepository backed by the
// record store.
func NewActivityRepository(store recordstore.Store) ActivityRepository {
	return &activityRepository{store: store}
}

func (r *activityRepository) Save(ctx context.Context, entry *models.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entries []models.ActivityLog
	if err := r.store.Read(ctx, recordstore.KeyActivity, &entries); err != nil {
		return err
	}

	entries = append(entries, *entry)
	return r.store.Write(ctx, recordstore.KeyActivity, entries)
}

func (r *activityRepository) GetAll(ctx context.Context) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	if err := r.store.Read(ctx, recordstore.KeyActivity, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *activityRepository) GetByUserID(ctx context.Context, userID string) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	if err := r.store.Read(ctx, recordstore.KeyActivity, &entries); err != nil {
		return nil, err
	}

	var result []models.ActivityLog
	for i := range entries {
		if entries[i].UserID == userID {
			result = append(result, entries[i])
		}
	}
	return result, nil
}
