package repositories

import (
	"context"
	"strings"
	"sync"

	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/recordstore"
)

// CandidateRepository handles candidate pipeline records.
type CandidateRepository interface {
	Save(ctx context.Context, candidate *models.CandidateProfile) error
	GetAll(ctx context.Context) ([]models.CandidateProfile, error)
	GetByID(ctx context.Context, id string) (*models.CandidateProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.CandidateProfile, error)
	UpdateStatus(ctx context.Context, id string, status models.CandidateStatus) (*models.CandidateProfile, error)
}

type candidateRepository struct {
	mu    sync.Mutex
	store recordstore.Store
}

// NewCandidateRepository creates a CandidateRepository backed by the
// record store.
func NewCandidateRepository(store recordstore.Store) CandidateRepository {
	return &candidateRepository{store: store}
}

// Save upserts the candidate by id.
func (r *candidateRepository) Save(ctx context.Context, candidate *models.CandidateProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var candidates []models.CandidateProfile
	if err := r.store.Read(ctx, recordstore.KeyCandidates, &candidates); err != nil {
		return err
	}

	updated := false
	for i := range candidates {
		if candidates[i].ID == candidate.ID {
			candidates[i] = *candidate
			updated = true
			break
		}
	}
	if !updated {
		candidates = append(candidates, *candidate)
	}

	return r.store.Write(ctx, recordstore.KeyCandidates, candidates)
}

func (r *candidateRepository) GetAll(ctx context.Context) ([]models.CandidateProfile, error) {
	var candidates []models.CandidateProfile
	if err := r.store.Read(ctx, recordstore.KeyCandidates, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// GetByID returns nil, nil when no candidate holds the id.
func (r *candidateRepository) GetByID(ctx context.Context, id string) (*models.CandidateProfile, error) {
	var candidates []models.CandidateProfile
	if err := r.store.Read(ctx, recordstore.KeyCandidates, &candidates); err != nil {
		return nil, err
	}
	for i := range candidates {
		if candidates[i].ID == id {
			c := candidates[i]
			return &c, nil
		}
	}
	return nil, nil
}

// GetByEmail matches case-insensitively and returns nil, nil on no match.
func (r *candidateRepository) GetByEmail(ctx context.Context, email string) (*models.CandidateProfile, error) {
	var candidates []models.CandidateProfile
	if err := r.store.Read(ctx, recordstore.KeyCandidates, &candidates); err != nil {
		return nil, err
	}
	for i := range candidates {
		if strings.EqualFold(candidates[i].Email, email) {
			c := candidates[i]
			return &c, nil
		}
	}
	return nil, nil
}

// UpdateStatus sets the candidate's pipeline status and bumps its
// lastUpdated marker. An unknown id is a silent no-op returning nil, nil:
// the record set is left byte-identical.
func (r *candidateRepository) UpdateStatus(ctx context.Context, id string, status models.CandidateStatus) (*models.CandidateProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var candidates []models.CandidateProfile
	if err := r.store.Read(ctx, recordstore.KeyCandidates, &candidates); err != nil {
		return nil, err
	}

	for i := range candidates {
		if candidates[i].ID == id {
			candidates[i].Status = status
			candidates[i].Touch()
			if err := r.store.Write(ctx, recordstore.KeyCandidates, candidates); err != nil {
				return nil, err
			}
			c := candidates[i]
			return &c, nil
		}
	}

	return nil, nil
}
