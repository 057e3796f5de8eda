// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-group-sync/internal/metrics"
	"github.com/MKhiriev/go-group-sync/models"
)

// normalizeMembers drops the local member, empty ids and duplicates while
// keeping the caller's order.
func (c *syncClient) normalizeMembers(ids []models.MemberID) []models.MemberID {
	self := c.self()
	out := make([]models.MemberID, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == self || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// fetchKeyPackages returns exactly one valid key package per member or a
// *MissingKeyPackagesError. A package that does not verify or was issued for
// a different member counts as missing.
func (c *syncClient) fetchKeyPackages(ctx context.Context, members []models.MemberID) (map[models.MemberID][]byte, error) {
	keys, err := c.adapter.GetUserKeyPackages(ctx, models.GetUserKeysRequest{UserIDs: members})
	if err != nil {
		return nil, fmt.Errorf("get key packages: %w", err)
	}

	var missing []models.MemberID
	for _, id := range members {
		if len(keys[id]) == 0 {
			missing = append(missing, id)
			continue
		}
		owner, err := c.engine.KeyPackageIdentity(keys[id])
		if err != nil || owner != id {
			c.logger.Warn().Err(err).Str("func", "syncClient.fetchKeyPackages").
				Str("member", string(id)).Str("owner", string(owner)).Msg("key package rejected")
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingKeyPackagesError{Missing: missing}
	}
	return keys, nil
}

func (c *syncClient) CreateGroup(ctx context.Context, name string, memberIDs []models.MemberID) (models.GroupID, error) {
	if name == "" {
		return nil, ErrEmptyGroupName
	}

	c.op.Lock()
	defer c.op.Unlock()

	log := c.logger.With().Str("func", "syncClient.CreateGroup").Str("group_name", name).Logger()
	self := c.self()
	members := c.normalizeMembers(memberIDs)

	// every invite must be sealed to a real key, so nothing is created
	// unless all of them are available
	var keys map[models.MemberID][]byte
	if len(members) > 0 {
		var err error
		if keys, err = c.fetchKeyPackages(ctx, members); err != nil {
			log.Warn().Err(err).Msg("group not created")
			return nil, err
		}
	}

	groupID, err := c.engine.CreateNewGroup(name)
	if err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	c.setState(groupID, models.GroupSynced)
	if err = c.persistLocked(ctx); err != nil {
		return groupID, err
	}

	if err = c.adapter.CreateGroup(ctx, models.CreateGroupRequest{GroupID: groupID, GroupName: name, SenderID: self}); err != nil {
		c.markUnannounced(groupID)
		log.Warn().Err(err).Str("group_id", groupID.String()).Msg("group kept locally, server does not know it")
		return groupID, fmt.Errorf("announce group %s: %w", groupID, err)
	}

	var (
		invited = make([]models.MemberID, 0, len(members))
		failed  = make(map[models.MemberID]error)
	)
	for _, member := range members {
		if err = c.inviteLocked(ctx, groupID, member, keys[member]); err != nil {
			c.metrics.InviteSent(metrics.OutcomeFailed)
			log.Warn().Err(err).Str("member", string(member)).Msg("invite not delivered")
			failed[member] = err
			continue
		}
		c.metrics.InviteSent(metrics.OutcomeOK)
		invited = append(invited, member)
	}

	if len(failed) == 0 {
		entry := c.newEntry(groupID, self, fmt.Sprintf("created group %q", name), 0, models.EntrySystem)
		if err = c.engine.GroupPushMessage(groupID, entry); err != nil {
			return groupID, mapEngineError(err)
		}
	}

	// the roster changed with every sealed invite, delivered or not
	if err = c.persistLocked(ctx); err != nil {
		return groupID, err
	}

	if len(failed) > 0 {
		return groupID, &InviteError{GroupID: groupID, Invited: invited, Failed: failed}
	}

	log.Info().Str("group_id", groupID.String()).Int("members", len(invited)).Msg("group created")
	return groupID, nil
}

func (c *syncClient) inviteLocked(ctx context.Context, groupID models.GroupID, member models.MemberID, keyPackage []byte) error {
	inv, err := c.engine.CreateInvite(groupID, keyPackage)
	if err != nil {
		return fmt.Errorf("seal invite: %w", err)
	}

	err = c.adapter.InviteUser(ctx, models.InviteUserRequest{
		GroupID:        groupID,
		SenderID:       c.self(),
		ReceiverID:     member,
		WelcomeMessage: inv.WelcomeMessage,
		RatchetTree:    inv.RatchetTree,
		Fanned:         inv.Fanned,
	})
	if err != nil {
		return fmt.Errorf("deliver invite: %w", err)
	}
	return nil
}

func (c *syncClient) GetChats() ([]models.Chat, error) {
	groups := c.engine.Groups()
	chats := make([]models.Chat, 0, len(groups))
	for _, g := range groups {
		entries, err := c.engine.GroupMessages(g.ID)
		if err != nil {
			return nil, mapEngineError(err)
		}

		chat := models.Chat{
			GroupID: g.ID,
			Name:    g.Name,
			Members: g.Members,
			Index:   g.Index,
			State:   c.GroupState(g.ID),
		}
		if len(entries) > 0 {
			last := entries[len(entries)-1]
			chat.LastEntry = &last
		}
		chats = append(chats, chat)
	}
	return chats, nil
}

func (c *syncClient) GetGroupChat(groupID models.GroupID) ([]models.TranscriptEntry, error) {
	entries, err := c.engine.GroupMessages(groupID)
	if err != nil {
		return nil, mapEngineError(err)
	}
	return entries, nil
}

func (c *syncClient) GetInvites() []models.Invite {
	return c.engine.GetPendingInvites()
}

func (c *syncClient) AcceptPendingInvite(ctx context.Context, groupID models.GroupID) (models.GroupID, error) {
	c.op.Lock()
	defer c.op.Unlock()

	joined, err := c.engine.AcceptPendingInvite(groupID)
	if err != nil {
		return nil, fmt.Errorf("accept invite: %w", err)
	}
	c.setState(joined, models.GroupSynced)

	if err = c.persistLocked(ctx); err != nil {
		return joined, err
	}

	c.logger.Info().Str("func", "syncClient.AcceptPendingInvite").Str("group_id", joined.String()).Msg("invite accepted")
	return joined, nil
}

func (c *syncClient) RejectPendingInvite(ctx context.Context, groupID models.GroupID) error {
	c.op.Lock()
	defer c.op.Unlock()

	if err := c.engine.RejectPendingInvite(groupID); err != nil {
		return fmt.Errorf("reject invite: %w", err)
	}
	return c.persistLocked(ctx)
}

func (c *syncClient) GetGroupIDWithUsers(members []models.MemberID) (models.GroupID, error) {
	want := append(c.normalizeMembers(members), c.self())
	slices.Sort(want)

	for _, g := range c.engine.Groups() {
		have := slices.Clone(g.Members)
		slices.Sort(have)
		if slices.Equal(have, want) {
			return g.ID, nil
		}
	}
	return nil, fmt.Errorf("%w: no group with exactly %s", ErrGroupNotFound, joinMembers(want))
}

func (c *syncClient) LeaveGroup(ctx context.Context, groupID models.GroupID) error {
	c.op.Lock()
	defer c.op.Unlock()

	if err := c.engine.DeleteGroup(groupID); err != nil {
		return mapEngineError(err)
	}

	c.mu.Lock()
	c.states[groupID.String()] = models.GroupLeft
	delete(c.lastSent, groupID.String())
	delete(c.unannounced, groupID.String())
	c.mu.Unlock()

	return c.persistLocked(ctx)
}

func (c *syncClient) markUnannounced(groupID models.GroupID) {
	c.mu.Lock()
	c.unannounced[groupID.String()] = true
	c.mu.Unlock()
}

func (c *syncClient) isUnannounced(groupID models.GroupID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unannounced[groupID.String()]
}
