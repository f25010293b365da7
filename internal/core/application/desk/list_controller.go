package desk

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"

	"go.uber.org/zap"
)

// DefaultListPageSize is the number of shipments requested for the list.
const DefaultListPageSize = 100

// ListOptions tunes a ShipmentListController.
type ListOptions struct {
	PageSize       int
	FallbackPolicy FallbackPolicy
}

func (o ListOptions) withDefaults() ListOptions {
	if o.PageSize <= 0 {
		o.PageSize = DefaultListPageSize
	}
	if o.FallbackPolicy == "" {
		o.FallbackPolicy = FallbackOnAnyError
	}
	return o
}

// ShipmentListController owns the shipment list of one desk.
//
// The list is always replaced as a whole. Concurrent fetches are allowed;
// the last one to finish wins.
type ShipmentListController struct {
	packages ports.PackageService
	options  ListOptions
	logger   *zap.Logger

	mu         sync.RWMutex
	user       principal.User
	strategies []fetchStrategy
	succeeded  int
	shipments  []shipment.Shipment
	inFlight   int
	loadErr    error
}

func NewShipmentListController(packages ports.PackageService, options ListOptions, logger *zap.Logger) *ShipmentListController {
	return &ShipmentListController{
		packages:  packages,
		options:   options.withDefaults(),
		logger:    logger.With(zap.String("component", "shipment_list")),
		succeeded: -1,
	}
}

// Load fetches the list for user by walking the role's strategy chain.
// When every strategy fails the list is emptied and the error wraps ErrFetchFailed.
func (c *ShipmentListController) Load(ctx context.Context, user principal.User) ([]shipment.Shipment, error) {
	strategies := strategiesFor(user, c.packages, c.options.PageSize)

	c.mu.Lock()
	c.user = user
	c.strategies = strategies
	c.succeeded = -1
	c.mu.Unlock()

	list, idx, err := c.run(ctx, strategies, 0)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.shipments = nil
		c.loadErr = err
		return nil, err
	}
	c.shipments = list
	c.succeeded = idx
	c.loadErr = nil
	return slices.Clone(list), nil
}

// Refresh re-runs the strategy that last succeeded, starting a full Load when
// none has. On failure the previous list is kept and the error is recorded.
func (c *ShipmentListController) Refresh(ctx context.Context) error {
	c.mu.RLock()
	user, strategies, start := c.user, c.strategies, c.succeeded
	c.mu.RUnlock()

	if start < 0 {
		_, err := c.Load(ctx, user)
		return err
	}

	list, idx, err := c.run(ctx, strategies, start)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.loadErr = err
		return err
	}
	c.shipments = list
	c.succeeded = idx
	c.loadErr = nil
	return nil
}

func (c *ShipmentListController) run(ctx context.Context, strategies []fetchStrategy, start int) ([]shipment.Shipment, int, error) {
	c.mu.Lock()
	c.inFlight++
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.inFlight--
		c.mu.Unlock()
	}()

	var lastErr error
	for i := start; i < len(strategies); i++ {
		s := strategies[i]
		list, err := s.fetch(ctx)
		if err == nil {
			if list == nil {
				list = []shipment.Shipment{}
			}
			return list, i, nil
		}
		lastErr = err

		last := i == len(strategies)-1
		if last || !c.options.FallbackPolicy.allows(err) {
			break
		}
		c.logger.Warn("shipment fetch failed, falling back",
			zap.String("strategy", s.name),
			zap.String("next", strategies[i+1].name),
			zap.Int("status", statusOf(err)),
			zap.Error(err))
	}

	c.logger.Error("shipment fetch failed", zap.Error(lastErr))
	return nil, -1, fmt.Errorf("%w: %w", ErrFetchFailed, lastErr)
}

// Shipments returns a copy of the current list.
func (c *ShipmentListController) Shipments() []shipment.Shipment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.shipments)
}

// Find looks a shipment up by id in the current list.
func (c *ShipmentListController) Find(id string) (shipment.Shipment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.shipments {
		if s.ID == id {
			return s, true
		}
	}
	return shipment.Shipment{}, false
}

// ListSnapshot is a consistent read of the list state.
type ListSnapshot struct {
	Shipments []shipment.Shipment
	Filtered  []shipment.Shipment
	Loading   bool
	Error     string
}

// Snapshot reads the list, its term-filtered view and the fetch state under one lock.
func (c *ShipmentListController) Snapshot(term string) ListSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap := ListSnapshot{
		Shipments: slices.Clone(c.shipments),
		Filtered:  shipment.Filter(c.shipments, term),
		Loading:   c.inFlight > 0,
	}
	if c.loadErr != nil {
		snap.Error = msgFetchFailed
	}
	return snap
}

func statusOf(err error) int {
	var remote *errs.RemoteError
	if errors.As(err, &remote) {
		return remote.StatusCode
	}
	return 0
}
