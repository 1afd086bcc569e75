package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"listing-mapper-service/internal/models"
)

// ErrMissingSKU indicates a caller-contract violation: identifier
// claims require a product SKU.
var ErrMissingSKU = errors.New("product SKU is required to claim an identifier")

// UPCPoolStore is the persisted identifier pool. Atomicity of the
// claim is the store's responsibility; the service holds no in-process
// lock across the storage call.
type UPCPoolStore interface {
	// FindAssigned returns the code already claimed by (sku, scope),
	// or nil when none exists.
	FindAssigned(ctx context.Context, sku, scope string) (*models.PoolCode, error)
	// ClaimNext atomically assigns the next available code in the scope
	// to the SKU. Returns nil when the pool is exhausted.
	ClaimNext(ctx context.Context, sku, scope string) (*models.PoolCode, error)
}

// UPCService allocates unique product identifier codes from the shared
// pool, one per SKU. The service is stateless and safe to use from
// concurrent resolutions.
type UPCService struct {
	store  UPCPoolStore
	logger *logrus.Entry
}

// NewUPCService creates a new identifier pool service
func NewUPCService(store UPCPoolStore, logger *logrus.Logger) *UPCService {
	return &UPCService{
		store:  store,
		logger: logger.WithField("component", "upc-pool"),
	}
}

// Claim returns the identifier for (sku, scope), reusing a previous
// assignment when one exists so repeated claims are idempotent.
// Returns (nil, nil) when the pool is exhausted.
func (s *UPCService) Claim(ctx context.Context, sku, scope string) (*models.ProductIdentifier, error) {
	if sku == "" {
		return nil, ErrMissingSKU
	}

	existing, err := s.store.FindAssigned(ctx, sku, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to look up assigned code for %s: %w", sku, err)
	}
	if existing != nil {
		return existing.Identifier(), nil
	}

	claimed, err := s.store.ClaimNext(ctx, sku, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to claim code for %s: %w", sku, err)
	}
	if claimed == nil {
		s.logger.WithFields(logrus.Fields{"sku": sku, "scope": scope}).Warn("Identifier pool exhausted")
		return nil, nil
	}
	return claimed.Identifier(), nil
}
