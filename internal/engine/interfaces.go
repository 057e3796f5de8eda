// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package engine defines the capability interface of the local group security
// engine and ships a native Go implementation of it.
//
// The sync layer treats the engine as opaque: it asks it to create groups,
// seal invites, encrypt and decrypt messages, and to snapshot or restore its
// complete state as [models.SerializedCredentials]. Everything binding- or
// algorithm-specific stays behind [GroupSecurityEngine].
package engine

import (
	"github.com/MKhiriev/go-group-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// GroupSecurityEngine is the narrow capability set the sync layer needs from
// the cryptographic group-state engine. Implementations must be safe for
// concurrent use.
type GroupSecurityEngine interface {
	// Identity returns the member this engine acts for.
	Identity() models.MemberID

	// GetKeyPackage returns the member's current public key package, the
	// bundle other members seal invites to.
	GetKeyPackage() ([]byte, error)

	// KeyPackageIdentity verifies keyPackage and returns the member it was
	// issued for.
	KeyPackageIdentity(keyPackage []byte) (models.MemberID, error)

	// CreateNewGroup creates an empty group owned by the local member and
	// returns its identifier.
	CreateNewGroup(name string) (models.GroupID, error)

	// CreateInvite seals a welcome for the owner of keyPackage and adds that
	// member to the local roster of the group.
	CreateInvite(groupID models.GroupID, keyPackage []byte) (models.Invite, error)

	// CreateMessage encrypts text under the group's current epoch.
	CreateMessage(groupID models.GroupID, text string) ([]byte, error)

	// ProcessMessage consumes one incoming record. Group messages are
	// decrypted; invite deliveries are opened and kept as pending invites.
	// Redelivered invites produce an empty result.
	ProcessMessage(msg models.Message) (models.ProcessedMessage, error)

	// ProcessConvoMessages processes a batch of records of a single group in
	// the given order. It returns the results of the records it could process
	// and a joined error describing the ones it could not.
	ProcessConvoMessages(batch []models.Message, groupID models.GroupID) ([]models.ProcessedMessage, error)

	// GroupGetIndex returns the highest global index applied to the group.
	GroupGetIndex(groupID models.GroupID) (int64, error)

	// GroupSetIndex advances the group's index. The index never decreases.
	GroupSetIndex(groupID models.GroupID, index int64) error

	// GroupPushMessage appends an entry to the group's transcript.
	GroupPushMessage(groupID models.GroupID, entry models.TranscriptEntry) error

	// GroupMessages returns a copy of the group's transcript.
	GroupMessages(groupID models.GroupID) ([]models.TranscriptEntry, error)

	// GroupInfo describes one joined group.
	GroupInfo(groupID models.GroupID) (models.GroupInfo, error)

	// Groups lists all joined groups ordered by name.
	Groups() []models.GroupInfo

	// DeleteGroup forgets a joined group.
	DeleteGroup(groupID models.GroupID) error

	// GetPendingInvites lists opened but not yet accepted invites.
	GetPendingInvites() []models.Invite

	// AcceptPendingInvite joins the group of a pending invite.
	AcceptPendingInvite(groupID models.GroupID) (models.GroupID, error)

	// RejectPendingInvite discards a pending invite.
	RejectPendingInvite(groupID models.GroupID) error

	// InboxIndex returns the highest inbox index (invite delivery sequence)
	// applied so far.
	InboxIndex() int64

	// SetInboxIndex advances the inbox index. The index never decreases.
	SetInboxIndex(index int64) error

	// SaveState snapshots the complete engine state.
	SaveState() (models.SerializedCredentials, error)

	// LoadState replaces the engine state with a snapshot produced by SaveState.
	LoadState(creds models.SerializedCredentials) error

	// Reset discards all state and generates a fresh identity key set.
	Reset() error
}
