package service

import (
	"fmt"
	"time"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/google/uuid"
)

// maxCachedPredictions bounds the number of patients held in the prediction cache.
const maxCachedPredictions = 10_000

// PredictionCache keeps recent predictions per patient.
type PredictionCache interface {
	Get(patientID uuid.UUID) (*domain.PredictionResponse, bool)
	Set(patientID uuid.UUID, resp *domain.PredictionResponse)
	Invalidate(patientID uuid.UUID)
	Close()
}

type ristrettoCache struct {
	cache *ristretto.Cache[string, *domain.PredictionResponse]
	ttl   time.Duration
}

// NewPredictionCache returns a TTL cache of predictions. A non-positive ttl disables
// caching and returns a cache that never hits.
func NewPredictionCache(ttl time.Duration) (PredictionCache, error) {
	if ttl <= 0 {
		return noopCache{}, nil
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, *domain.PredictionResponse]{
		NumCounters:        maxCachedPredictions * 10,
		MaxCost:            maxCachedPredictions,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create prediction cache: %w", err)
	}

	return &ristrettoCache{cache: cache, ttl: ttl}, nil
}

func (c *ristrettoCache) Get(patientID uuid.UUID) (*domain.PredictionResponse, bool) {
	return c.cache.Get(patientID.String())
}

// Set stores resp and waits for the write to become visible.
func (c *ristrettoCache) Set(patientID uuid.UUID, resp *domain.PredictionResponse) {
	c.cache.SetWithTTL(patientID.String(), resp, 1, c.ttl)
	c.cache.Wait()
}

func (c *ristrettoCache) Invalidate(patientID uuid.UUID) {
	c.cache.Del(patientID.String())
}

func (c *ristrettoCache) Close() {
	c.cache.Close()
}

type noopCache struct{}

func (noopCache) Get(uuid.UUID) (*domain.PredictionResponse, bool) { return nil, false }
func (noopCache) Set(uuid.UUID, *domain.PredictionResponse)        {}
func (noopCache) Invalidate(uuid.UUID)                             {}
func (noopCache) Close()                                           {}
