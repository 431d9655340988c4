package repositories

import (
	"context"
	"sync"

	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/recordstore"
)

// CVRepository handles uploaded resume documents. The collection is
// append-only: re-uploads add new records, earlier ones are kept.
type CVRepository interface {
	Save(ctx context.Context, cv *models.CVMetadata) error
	GetAll(ctx context.Context) ([]models.CVMetadata, error)
	GetByID(ctx context.Context, id string) (*models.CVMetadata, error)
	GetByCandidateID(ctx context.Context, candidateID string) ([]models.CVMetadata, error)
}

type cvRepository struct {
	mu    sync.Mutex
	store recordstore.Store
}

// NewCVRepository creates a CVRepository backed by the record store.
func NewCVRepository(store recordstore.Store) CVRepository {
	return &cvRepository{store: store}
}

func (r *cvRepository) Save(ctx context.Context, cv *models.CVMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cvs []models.CVMetadata
	if err := r.store.Read(ctx, recordstore.KeyCVs, &cvs); err != nil {
		return err
	}

	cvs = append(cvs, *cv)
	return r.store.Write(ctx, recordstore.KeyCVs, cvs)
}

func (r *cvRepository) GetAll(ctx context.Context) ([]models.CVMetadata, error) {
	var cvs []models.CVMetadata
	if err := r.store.Read(ctx, recordstore.KeyCVs, &cvs); err != nil {
		return nil, err
	}
	return cvs, nil
}

// GetByID returns nil, nil when no document holds the id.
func (r *cvRepository) GetByID(ctx context.Context, id string) (*models.CVMetadata, error) {
	var cvs []models.CVMetadata
	if err := r.store.Read(ctx, recordstore.KeyCVs, &cvs); err != nil {
		return nil, err
	}
	for i := range cvs {
		if cvs[i].ID == id {
			cv := cvs[i]
			return &cv, nil
		}
	}
	return nil, nil
}

// GetByCandidateID returns the candidate's documents in upload order.
func (r *cvRepository) GetByCandidateID(ctx context.Context, candidateID string) ([]models.CVMetadata, error) {
	var cvs []models.CVMetadata
	if err := r.store.Read(ctx, recordstore.KeyCVs, &cvs); err != nil {
		return nil, err
	}

	var result []models.CVMetadata
	for i := range cvs {
		if cvs[i].CandidateID == candidateID {
			result = append(result, cvs[i])
		}
	}
	return result, nil
}
