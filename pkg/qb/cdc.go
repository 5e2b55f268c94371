package qb

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// ChangeSet is the decoded CDC envelope: one query response per entity
// type mutated since the requested timestamp. Deleted records appear as
// tombstone stubs with status "Deleted".
type ChangeSet struct {
	Responses []QueryResponse
	Time      string
}

// UnmarshalJSON implements json.Unmarshaler. The wire envelope nests
// QueryResponse arrays inside each CDCResponse item; they are flattened
// into a single list.
func (s *ChangeSet) UnmarshalJSON(data []byte) error {
	var envelope struct {
		CDCResponse []struct {
			QueryResponse []QueryResponse `json:"QueryResponse"`
		} `json:"CDCResponse"`
		Time string `json:"time"`
	}

	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("parsing change data capture response: %w", err)
	}

	s.Time = envelope.Time
	s.Responses = nil

	for _, item := range envelope.CDCResponse {
		s.Responses = append(s.Responses, item.QueryResponse...)
	}

	return nil
}

// Empty reports whether the change set carries no entities at all.
func (s *ChangeSet) Empty() bool {
	for i := range s.Responses {
		if len(s.Responses[i].Entities) > 0 {
			return false
		}
	}

	return true
}

// EntityNames lists the entity types present across all responses.
func (s *ChangeSet) EntityNames() []string {
	var names []string

	seen := make(map[string]struct{})

	for i := range s.Responses {
		for name := range s.Responses[i].Entities {
			if _, ok := seen[name]; ok {
				continue
			}

			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names
}

// Unmarshal decodes the changed records for one entity type into out,
// which should be a pointer to a slice of the matching entity struct.
func (s *ChangeSet) Unmarshal(entity string, out interface{}) error {
	for i := range s.Responses {
		if s.Responses[i].Has(entity) {
			return s.Responses[i].Unmarshal(entity, out)
		}
	}

	return fmt.Errorf("%w: %s", ErrEntityNotInResponse, entity)
}

// Raw returns the still-encoded array for one entity type, or nil.
func (s *ChangeSet) Raw(entity string) json.RawMessage {
	for i := range s.Responses {
		if raw, ok := s.Responses[i].Entities[entity]; ok {
			return raw
		}
	}

	return nil
}

// ChangeHandler receives each non-empty change set the poller fetches.
type ChangeHandler func(changes *ChangeSet)

// ChangePollerConfig configures a ChangePoller.
type ChangePollerConfig struct {
	// Entities are the entity type names to watch.
	Entities []string
	// Interval between polls. Defaults to one minute.
	Interval time.Duration
	// Since is the initial low-water mark. Defaults to poller start time.
	Since time.Time
	// MaxRetries bounds the backoff retries per poll. Defaults to 3.
	MaxRetries uint
	// Logger: optional; poll failures are logged and the loop keeps going.
	Logger Logger
}

// ChangePoller repeatedly reads the CDC endpoint and hands non-empty
// change sets to a handler. Transient failures are retried with
// exponential backoff before the poller falls back to the next tick.
type ChangePoller struct {
	source     CDCClient
	entities   []string
	interval   time.Duration
	since      time.Time
	maxRetries uint
	logger     Logger
	running    atomic.Bool
}

// NewChangePoller creates a poller over the given CDC client.
func NewChangePoller(source CDCClient, config ChangePollerConfig) *ChangePoller {
	interval := config.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	maxRetries := config.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}

	return &ChangePoller{
		source:     source,
		entities:   config.Entities,
		interval:   interval,
		since:      config.Since,
		maxRetries: maxRetries,
		logger:     config.Logger,
	}
}

// Run polls until the context is canceled. It returns the context error
// on cancellation; poll failures never stop the loop. A poller runs at
// most one loop at a time.
func (p *ChangePoller) Run(ctx context.Context, handler ChangeHandler) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrPollerAlreadyRunning
	}
	defer p.running.Store(false)

	if p.since.IsZero() {
		p.since = time.Now()
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.poll(ctx, handler)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *ChangePoller) poll(ctx context.Context, handler ChangeHandler) {
	start := time.Now()

	operation := func() (*ChangeSet, error) {
		changes, err := p.source.Changes(ctx, p.entities, p.since)
		if err != nil {
			if IsValidation(err) || IsAuthError(err) {
				return nil, backoff.Permanent(err)
			}

			return nil, err
		}

		return changes, nil
	}

	expBackoff := backoff.NewExponentialBackOff()

	changes, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(p.maxRetries))
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("change poll failed", map[string]interface{}{
				"entities": p.entities,
				"since":    p.since,
				"error":    err.Error(),
			})
		}

		return
	}

	// Advance the low-water mark to the poll start so records mutated
	// mid-poll are picked up next round.
	p.since = start

	if !changes.Empty() {
		handler(changes)
	}
}
