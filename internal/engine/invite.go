// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/MKhiriev/go-group-sync/models"
	"golang.org/x/crypto/nacl/box"
)

// welcomeBody is the sealed content of a welcome message: enough group state
// for the recipient to join at the inviter's current index.
type welcomeBody struct {
	GroupID models.GroupID    `json:"group_id"`
	Name    string            `json:"name"`
	Epoch   uint64            `json:"epoch"`
	Secret  []byte            `json:"secret"`
	Members []models.MemberID `json:"members"`
	Index   int64             `json:"index"`
	Inviter models.MemberID   `json:"inviter"`
}

type pendingInvite struct {
	Invite  models.Invite `json:"invite"`
	Welcome welcomeBody   `json:"welcome"`
}

// CreateInvite implements [GroupSecurityEngine]. The roster travels inside
// the welcome, so RatchetTree and Fanned are left empty.
func (e *nativeEngine) CreateInvite(groupID models.GroupID, rawKeyPackage []byte) (models.Invite, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.groupLocked(groupID)
	if err != nil {
		return models.Invite{}, err
	}

	kp, err := parseKeyPackage(rawKeyPackage)
	if err != nil {
		return models.Invite{}, err
	}

	g.addMember(kp.identity)

	body, err := json.Marshal(welcomeBody{
		GroupID: g.ID,
		Name:    g.Name,
		Epoch:   g.Epoch,
		Secret:  g.Secret,
		Members: g.Members,
		Index:   g.Index,
		Inviter: e.identity,
	})
	if err != nil {
		return models.Invite{}, fmt.Errorf("marshal welcome: %w", err)
	}

	sealed, err := box.SealAnonymous(nil, body, &kp.encryptionKey, e.random)
	if err != nil {
		return models.Invite{}, fmt.Errorf("seal welcome for %s: %w", kp.identity, err)
	}

	return models.Invite{
		GroupID:        slices.Clone(g.ID),
		SenderID:       e.identity,
		GroupName:      g.Name,
		WelcomeMessage: sealed,
	}, nil
}

func (e *nativeEngine) openInviteLocked(msg models.Message) (models.ProcessedMessage, error) {
	plain, ok := box.OpenAnonymous(nil, msg.WelcomeMessage, e.kpPublic, e.kpPrivate)
	if !ok {
		return models.ProcessedMessage{}, fmt.Errorf("%w: welcome from %s", ErrUndecryptable, msg.SenderID)
	}

	var body welcomeBody
	if err := json.Unmarshal(plain, &body); err != nil {
		return models.ProcessedMessage{}, fmt.Errorf("%w: welcome body: %w", ErrUndecryptable, err)
	}
	if len(body.GroupID) == 0 || len(body.Secret) != groupSecretSize {
		return models.ProcessedMessage{}, fmt.Errorf("%w: incomplete welcome", ErrUndecryptable)
	}

	key := body.GroupID.String()
	if _, joined := e.groups[key]; joined {
		return models.ProcessedMessage{}, nil
	}
	if _, seen := e.pending[key]; seen {
		return models.ProcessedMessage{}, nil
	}

	inv := models.Invite{
		GroupID:        body.GroupID,
		SenderID:       body.Inviter,
		GroupName:      body.Name,
		WelcomeMessage: msg.WelcomeMessage,
		RatchetTree:    msg.RatchetTree,
		Fanned:         msg.Fanned,
		GlobalIndex:    msg.GlobalIndex,
	}
	e.pending[key] = &pendingInvite{Invite: inv, Welcome: body}

	return models.ProcessedMessage{Invite: &inv}, nil
}

// GetPendingInvites implements [GroupSecurityEngine]. Invites are ordered by
// the inbox index they arrived at.
func (e *nativeEngine) GetPendingInvites() []models.Invite {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Invite, 0, len(e.pending))
	for _, p := range e.pending {
		out = append(out, p.Invite)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GlobalIndex < out[j].GlobalIndex
	})
	return out
}

// AcceptPendingInvite implements [GroupSecurityEngine]. The joined group
// starts at the index the inviter had when sealing the welcome.
func (e *nativeEngine) AcceptPendingInvite(groupID models.GroupID) (models.GroupID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := groupID.String()
	p, ok := e.pending[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInviteNotFound, groupID)
	}

	g := &groupRecord{
		ID:      p.Welcome.GroupID,
		Name:    p.Welcome.Name,
		Epoch:   p.Welcome.Epoch,
		Secret:  p.Welcome.Secret,
		Members: slices.Clone(p.Welcome.Members),
		Index:   p.Welcome.Index,
	}
	g.addMember(e.identity)

	e.groups[key] = g
	delete(e.pending, key)

	return slices.Clone(g.ID), nil
}

// RejectPendingInvite implements [GroupSecurityEngine].
func (e *nativeEngine) RejectPendingInvite(groupID models.GroupID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := groupID.String()
	if _, ok := e.pending[key]; !ok {
		return fmt.Errorf("%w: %s", ErrInviteNotFound, groupID)
	}
	delete(e.pending, key)
	return nil
}
