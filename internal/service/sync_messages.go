// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-group-sync/internal/adapter"
	"github.com/MKhiriev/go-group-sync/internal/metrics"
	"github.com/MKhiriev/go-group-sync/models"
)

// groupSync is the outcome of applying one batch of server records.
type groupSync struct {
	received int
	// rejected describes records the engine refused. They are skipped and
	// never hold the index back.
	rejected error
}

func (c *syncClient) SendMessage(ctx context.Context, groupID models.GroupID, text string) (models.TranscriptEntry, error) {
	c.op.Lock()
	defer c.op.Unlock()

	log := c.logger.With().Str("func", "syncClient.SendMessage").Str("group_id", groupID.String()).Logger()
	self := c.self()

	// encrypting under a stale epoch would produce a message nobody can read
	res, err := c.syncGroupLocked(ctx, groupID)
	if err != nil {
		c.metrics.MessageSent(metrics.OutcomeFailed)
		return models.TranscriptEntry{}, fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}
	if res.rejected != nil {
		c.publish(res.rejected)
	}

	index, err := c.engine.GroupGetIndex(groupID)
	if err != nil {
		return models.TranscriptEntry{}, mapEngineError(err)
	}

	ciphertext, err := c.engine.CreateMessage(groupID, text)
	if err != nil {
		return models.TranscriptEntry{}, fmt.Errorf("encrypt message: %w", mapEngineError(err))
	}

	next := index + 1
	sendErr := c.adapter.SendMessage(ctx, models.SendMessageRequest{
		GroupID:     groupID,
		SenderID:    self,
		Message:     ciphertext,
		GlobalIndex: next,
	})
	if sendErr != nil {
		sendErr = mapAdapterError(sendErr)
		if errors.Is(sendErr, ErrIndexConflict) {
			c.metrics.MessageSent(metrics.OutcomeConflict)
		} else {
			c.metrics.MessageSent(metrics.OutcomeFailed)
		}
		log.Warn().Err(sendErr).Int64("index", next).Msg("message not sent")

		failed := c.newEntry(groupID, self, text, 0, models.EntryFailed)
		if err = c.engine.GroupPushMessage(groupID, failed); err != nil {
			return models.TranscriptEntry{}, errors.Join(sendErr, mapEngineError(err))
		}
		if err = c.persistLocked(ctx); err != nil {
			return failed, errors.Join(sendErr, err)
		}
		return failed, fmt.Errorf("send message: %w", sendErr)
	}

	if err = c.engine.GroupSetIndex(groupID, next); err != nil {
		return models.TranscriptEntry{}, mapEngineError(err)
	}
	entry := c.newEntry(groupID, self, text, next, models.EntryMessage)
	if err = c.engine.GroupPushMessage(groupID, entry); err != nil {
		return models.TranscriptEntry{}, mapEngineError(err)
	}

	c.mu.Lock()
	c.states[groupID.String()] = models.GroupAheadOfRemote
	c.lastSent[groupID.String()] = next
	c.mu.Unlock()

	c.metrics.MessageSent(metrics.OutcomeOK)
	if err = c.persistLocked(ctx); err != nil {
		return entry, err
	}

	log.Debug().Int64("index", next).Msg("message sent")
	return entry, nil
}

func (c *syncClient) CheckIncomingMessages(ctx context.Context, groupID models.GroupID) (int, error) {
	c.op.Lock()
	defer c.op.Unlock()

	return c.checkLocked(ctx, groupID)
}

func (c *syncClient) Poll(ctx context.Context) PollReport {
	if !c.op.TryLock() {
		c.metrics.Poll(metrics.OutcomeSkipped)
		return PollReport{Skipped: true}
	}
	defer c.op.Unlock()

	received, err := c.checkLocked(ctx, nil)
	if err != nil {
		c.metrics.Poll(metrics.OutcomeFailed)
		c.logger.Err(err).Str("func", "syncClient.Poll").Msg("poll failed")
		c.publish(err)
		return PollReport{Received: received, Err: err}
	}

	c.metrics.Poll(metrics.OutcomeOK)
	return PollReport{Received: received}
}

// checkLocked syncs one group, or the inbox and every group when groupID is
// nil. Failures of one group do not stop the others.
func (c *syncClient) checkLocked(ctx context.Context, groupID models.GroupID) (int, error) {
	if !groupID.IsZero() {
		res, err := c.syncGroupLocked(ctx, groupID)
		if err != nil {
			return res.received, err
		}
		return res.received, res.rejected
	}

	var (
		total int
		errs  []error
	)

	n, err := c.syncInboxLocked(ctx)
	total += n
	if err != nil {
		errs = append(errs, fmt.Errorf("inbox: %w", err))
	}

	for _, g := range c.engine.Groups() {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		if c.isUnannounced(g.ID) {
			continue
		}

		res, err := c.syncGroupLocked(ctx, g.ID)
		total += res.received
		if errors.Is(err, adapter.ErrNotFound) {
			// reported once, then left out of background polls
			c.markUnannounced(g.ID)
			c.logger.Warn().Err(err).Str("func", "syncClient.checkLocked").
				Str("group_id", g.ID.String()).Msg("server does not know group, no longer polling it")
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("group %s: %w", g.ID, err))
		}
		if res.rejected != nil {
			errs = append(errs, fmt.Errorf("group %s: %w", g.ID, res.rejected))
		}
	}

	return total, errors.Join(errs...)
}

// syncInboxLocked opens invites delivered since the last inbox index.
func (c *syncClient) syncInboxLocked(ctx context.Context) (int, error) {
	local := c.engine.InboxIndex()
	msgs, err := c.adapter.GetNewMessages(ctx, models.GetNewMessagesRequest{SenderID: c.self(), Index: local + 1})
	if err != nil {
		return 0, fmt.Errorf("get invites: %w", err)
	}
	sortByIndex(msgs)

	var (
		received int
		highest  = local
		errs     []error
	)
	for _, msg := range msgs {
		if msg.GlobalIndex <= highest {
			continue
		}
		highest = msg.GlobalIndex

		if !msg.IsInvite() {
			c.logger.Warn().Str("func", "syncClient.syncInboxLocked").
				Int64("index", msg.GlobalIndex).
				Msg("non-invite record in inbox, skipping")
			continue
		}

		processed, err := c.engine.ProcessMessage(msg)
		if err != nil {
			c.metrics.Undecryptable(1)
			errs = append(errs, err)
			continue
		}
		if processed.Invite != nil {
			received++
			c.logger.Info().Str("func", "syncClient.syncInboxLocked").
				Str("group_id", processed.Invite.GroupID.String()).
				Str("from", string(processed.Invite.SenderID)).
				Msg("invite received")
		}
	}

	if highest == local {
		return 0, errors.Join(errs...)
	}
	if err = c.engine.SetInboxIndex(highest); err != nil {
		return received, errors.Join(append(errs, err)...)
	}
	if err = c.persistLocked(ctx); err != nil {
		return received, errors.Join(append(errs, err)...)
	}
	return received, errors.Join(errs...)
}

// syncGroupLocked applies the group's records after the local index in
// index order. Records at or below the local index and repeated indices are
// redeliveries and are dropped.
func (c *syncClient) syncGroupLocked(ctx context.Context, groupID models.GroupID) (groupSync, error) {
	local, err := c.engine.GroupGetIndex(groupID)
	if err != nil {
		return groupSync{}, mapEngineError(err)
	}

	key := groupID.String()
	self := c.self()

	c.mu.Lock()
	ahead := c.states[key] == models.GroupAheadOfRemote
	lastSent := c.lastSent[key]
	c.mu.Unlock()

	// while ahead, ask again for our own last message to see its echo
	from := local + 1
	if ahead && lastSent > 0 && lastSent < from {
		from = lastSent
	}

	msgs, err := c.adapter.GetNewMessages(ctx, models.GetNewMessagesRequest{GroupID: groupID, SenderID: self, Index: from})
	if err != nil {
		return groupSync{}, fmt.Errorf("get new messages: %w", err)
	}
	c.mu.Lock()
	delete(c.unannounced, key)
	c.mu.Unlock()
	sortByIndex(msgs)

	var (
		batch     = make([]models.Message, 0, len(msgs))
		highest   = local
		confirmed bool
		prev      int64 = -1
	)
	for _, msg := range msgs {
		if msg.GlobalIndex == prev {
			continue
		}
		prev = msg.GlobalIndex

		if msg.SenderID == self {
			if ahead && msg.GlobalIndex >= lastSent {
				confirmed = true
			}
			highest = max(highest, msg.GlobalIndex)
			continue
		}
		if msg.GlobalIndex <= local {
			continue
		}
		if msg.GroupID.IsZero() {
			msg.GroupID = groupID
		}
		batch = append(batch, msg)
		highest = max(highest, msg.GlobalIndex)
	}

	var res groupSync
	if len(batch) > 0 {
		processed, rejected := c.engine.ProcessConvoMessages(batch, groupID)
		res.rejected = rejected
		c.metrics.Undecryptable(len(batch) - len(processed))

		for _, p := range processed {
			if p.Message == nil {
				continue
			}
			m := p.Message
			entry := c.newEntry(groupID, m.SenderID, m.Text, m.GlobalIndex, models.EntryMessage)
			if err = c.engine.GroupPushMessage(groupID, entry); err != nil {
				return res, mapEngineError(err)
			}
			res.received++
		}
		c.metrics.MessagesReceived(res.received)
	}

	if confirmed {
		c.mu.Lock()
		c.states[key] = models.GroupSynced
		delete(c.lastSent, key)
		c.mu.Unlock()
	}

	if len(batch) == 0 && highest == local {
		return res, nil
	}
	if highest > local {
		if err = c.engine.GroupSetIndex(groupID, highest); err != nil {
			return res, mapEngineError(err)
		}
	}
	if err = c.persistLocked(ctx); err != nil {
		return res, err
	}
	return res, nil
}

func sortByIndex(msgs []models.Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].GlobalIndex < msgs[j].GlobalIndex
	})
}
