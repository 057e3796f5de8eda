// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-group-sync/internal/adapter"
	"github.com/MKhiriev/go-group-sync/internal/engine"
	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/internal/metrics"
	"github.com/MKhiriev/go-group-sync/internal/store"
	"github.com/MKhiriev/go-group-sync/internal/utils"
	"github.com/MKhiriev/go-group-sync/models"
)

const errorsBufferSize = 16

type syncClient struct {
	engine      engine.GroupSecurityEngine
	adapter     adapter.ServerAdapter
	credentials store.CredentialsRepository
	metrics     *metrics.SyncMetrics
	logger      *logger.Logger

	job          PollJob
	pollInterval time.Duration
	errs         chan error

	newID func() string
	now   func() time.Time

	// op serializes foreground operations and poll ticks
	op sync.Mutex

	mu       sync.Mutex
	states   map[string]models.GroupSyncState
	lastSent map[string]int64
	// unannounced holds groups the server does not know about; background
	// polls skip them
	unannounced map[string]bool
}

// NewSyncClient wires a SyncClient for the member behind eng. m may be nil.
func NewSyncClient(
	eng engine.GroupSecurityEngine,
	serverAdapter adapter.ServerAdapter,
	credentials store.CredentialsRepository,
	pollInterval time.Duration,
	m *metrics.SyncMetrics,
	logger *logger.Logger,
) SyncClient {
	c := &syncClient{
		engine:       eng,
		adapter:      serverAdapter,
		credentials:  credentials,
		metrics:      m,
		logger:       logger,
		pollInterval: pollInterval,
		errs:         make(chan error, errorsBufferSize),
		newID:        utils.NewEntryID,
		now:          time.Now,
		states:       make(map[string]models.GroupSyncState),
		lastSent:     make(map[string]int64),
		unannounced:  make(map[string]bool),
	}
	c.job = NewPollJob(c)

	return c
}

func (c *syncClient) self() models.MemberID {
	return c.engine.Identity()
}

func (c *syncClient) Restore(ctx context.Context) error {
	c.op.Lock()
	defer c.op.Unlock()

	creds, found, err := c.credentials.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore state: %w", err)
	}

	if !found {
		c.logger.Info().Str("func", "syncClient.Restore").
			Str("member", string(c.self())).
			Msg("no saved state, starting with a fresh engine")
		return c.persistLocked(ctx)
	}

	if err = c.engine.LoadState(creds); err != nil {
		return fmt.Errorf("restore state: %w", err)
	}

	groups := c.engine.Groups()
	c.mu.Lock()
	for _, g := range groups {
		c.states[g.ID.String()] = models.GroupSynced
	}
	c.mu.Unlock()

	c.logger.Info().Str("func", "syncClient.Restore").
		Int("groups", len(groups)).
		Int("pending_invites", len(c.engine.GetPendingInvites())).
		Msg("engine state restored")
	return nil
}

func (c *syncClient) Connect(ctx context.Context) error {
	kp, err := c.engine.GetKeyPackage()
	if err != nil {
		return fmt.Errorf("get key package: %w", err)
	}

	if err = c.adapter.Connect(ctx, models.ConnectRequest{UserID: c.self(), SerializedKeyPackage: kp}); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	c.job.Start(ctx, c.pollInterval)

	c.logger.Info().Str("func", "syncClient.Connect").
		Str("member", string(c.self())).
		Dur("poll_interval", c.pollInterval).
		Msg("connected")
	return nil
}

func (c *syncClient) Disconnect() {
	c.job.Stop()
}

func (c *syncClient) Errors() <-chan error {
	return c.errs
}

// persistLocked snapshots the engine and saves it. Callers hold c.op.
func (c *syncClient) persistLocked(ctx context.Context) error {
	creds, err := c.engine.SaveState()
	if err == nil {
		err = c.credentials.Save(ctx, creds)
	}
	if err != nil {
		c.metrics.PersistFailed()
		c.logger.Err(err).Str("func", "syncClient.persistLocked").Msg("engine state not persisted")
		return fmt.Errorf("%w: %w", ErrStateNotPersisted, err)
	}
	return nil
}

// publish hands a background failure to Errors without blocking.
func (c *syncClient) publish(err error) {
	select {
	case c.errs <- err:
	default:
		c.logger.Warn().Str("func", "syncClient.publish").Msg("errors channel full, dropping poll error")
	}
}

func (c *syncClient) setState(groupID models.GroupID, state models.GroupSyncState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[groupID.String()] = state
}

func (c *syncClient) GroupState(groupID models.GroupID) models.GroupSyncState {
	c.mu.Lock()
	state, ok := c.states[groupID.String()]
	c.mu.Unlock()
	if ok {
		return state
	}

	if _, err := c.engine.GroupInfo(groupID); err == nil {
		return models.GroupSynced
	}
	return models.GroupUnjoined
}

func (c *syncClient) newEntry(groupID models.GroupID, sender models.MemberID, text string, index int64, kind models.EntryKind) models.TranscriptEntry {
	return models.TranscriptEntry{
		ID:          c.newID(),
		GroupID:     groupID,
		SenderID:    sender,
		Text:        text,
		GlobalIndex: index,
		Kind:        kind,
		CreatedAt:   c.now().UTC(),
	}
}

func (c *syncClient) ClearManagerState(ctx context.Context) error {
	c.job.Stop()

	c.op.Lock()
	defer c.op.Unlock()

	if err := c.credentials.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted state: %w", err)
	}
	if err := c.engine.Reset(); err != nil {
		return fmt.Errorf("reset engine: %w", err)
	}

	c.mu.Lock()
	c.states = make(map[string]models.GroupSyncState)
	c.lastSent = make(map[string]int64)
	c.unannounced = make(map[string]bool)
	c.mu.Unlock()

	c.logger.Info().Str("func", "syncClient.ClearManagerState").Msg("state cleared")
	return nil
}
