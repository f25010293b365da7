package desk

import (
	"context"
	"sync"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/pkg/errs"

	"go.uber.org/zap"
)

// Registry keeps the open desks.
type Registry struct {
	deps   Dependencies
	logger *zap.Logger

	mu    sync.RWMutex
	desks map[kernel.UUID]*Desk
}

func NewRegistry(deps Dependencies) *Registry {
	return &Registry{
		deps:   deps,
		logger: deps.Logger.With(zap.String("component", "desk_registry")),
		desks:  make(map[kernel.UUID]*Desk),
	}
}

// Open creates and activates a desk for user. The desk is registered even
// when activation fails: the failure is part of its view.
func (r *Registry) Open(ctx context.Context, user principal.User) (*Desk, error) {
	if _, err := principal.NewUser(user.ID, user.Name, user.Email, user.Role); err != nil {
		return nil, err
	}

	d := New(user, r.deps)
	if err := d.Activate(ctx); err != nil {
		r.logger.Warn("desk activated without shipments", zap.String("desk_id", d.ID().String()), zap.Error(err))
	}

	r.mu.Lock()
	r.desks[d.ID()] = d
	r.mu.Unlock()

	return d, nil
}

// Get returns the desk with id when it belongs to user.
// Desks of other users are reported as missing.
func (r *Registry) Get(id kernel.UUID, user principal.User) (*Desk, error) {
	r.mu.RLock()
	d, ok := r.desks[id]
	r.mu.RUnlock()

	if !ok || d.User().ID != user.ID {
		return nil, errs.NewObjectNotFoundError("desk", id.String())
	}
	return d, nil
}

// Close drops the desk with id when it belongs to user.
func (r *Registry) Close(id kernel.UUID, user principal.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.desks[id]
	if !ok || d.User().ID != user.ID {
		return errs.NewObjectNotFoundError("desk", id.String())
	}
	delete(r.desks, id)
	return nil
}

// Sweep drops desks idle since before now-idle and reports how many went.
// A non-positive idle window closes nothing.
func (r *Registry) Sweep(now time.Time, idle time.Duration) int {
	if idle <= 0 {
		return 0
	}
	cutoff := now.Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, d := range r.desks {
		if d.LastSeen().Before(cutoff) {
			delete(r.desks, id)
			removed++
		}
	}
	return removed
}

// Len reports how many desks are open.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.desks)
}
