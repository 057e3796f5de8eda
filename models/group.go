// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// GroupID is the opaque identifier of an encrypted group. It is created by the
// group security engine and is never interpreted by the sync layer.
// On the wire it is encoded as a standard base64 string.
type GroupID []byte

// String returns the lowercase hex form of the identifier. The hex form is
// used as a map key and as the user-facing group handle.
func (g GroupID) String() string {
	return hex.EncodeToString(g)
}

// Equal reports whether g and other identify the same group.
func (g GroupID) Equal(other GroupID) bool {
	return bytes.Equal(g, other)
}

// IsZero reports whether the identifier is empty.
func (g GroupID) IsZero() bool {
	return len(g) == 0
}

// ParseGroupID decodes the hex form produced by [GroupID.String].
func ParseGroupID(s string) (GroupID, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse group id %q: %w", s, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("parse group id: empty")
	}
	return GroupID(raw), nil
}

// MemberID is an account identifier on the federated identity network.
type MemberID string

// GroupSyncState describes where a joined group stands relative to the
// rendezvous server.
type GroupSyncState int

const (
	// GroupUnjoined means the group is unknown locally or only pending as an invite.
	GroupUnjoined GroupSyncState = iota
	// GroupSynced means every locally sent message has been observed on the server.
	GroupSynced
	// GroupAheadOfRemote means a message was sent and its echo has not been polled yet.
	GroupAheadOfRemote
	// GroupLeft means the group was left or deleted locally.
	GroupLeft
)

func (s GroupSyncState) String() string {
	switch s {
	case GroupUnjoined:
		return "unjoined"
	case GroupSynced:
		return "synced"
	case GroupAheadOfRemote:
		return "ahead_of_remote"
	case GroupLeft:
		return "left"
	default:
		return fmt.Sprintf("group_sync_state(%d)", int(s))
	}
}

// GroupInfo is the engine's public view of a joined group.
type GroupInfo struct {
	ID      GroupID
	Name    string
	Members []MemberID
	Index   int64
}

// Chat is a joined group as shown in a chat list.
type Chat struct {
	GroupID   GroupID
	Name      string
	Members   []MemberID
	Index     int64
	LastEntry *TranscriptEntry
	State     GroupSyncState
}
