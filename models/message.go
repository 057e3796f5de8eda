// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is a single record returned by the rendezvous server's
// /get_new_messages endpoint. A record carrying a welcome payload is an invite
// delivery addressed to the polling member; any other record is an encrypted
// group message.
type Message struct {
	GroupID        GroupID  `json:"group_id,omitempty"`
	SenderID       MemberID `json:"sender_id"`
	Ciphertext     []byte   `json:"message,omitempty"`
	GlobalIndex    int64    `json:"global_index"`
	WelcomeMessage []byte   `json:"welcome_message,omitempty"`
	RatchetTree    []byte   `json:"ratchet_tree,omitempty"`
	Fanned         []byte   `json:"fanned,omitempty"`
}

// IsInvite reports whether the record is an invite delivery.
func (m Message) IsInvite() bool {
	return len(m.WelcomeMessage) > 0
}

// DecryptedMessage is a group message after the engine opened it.
type DecryptedMessage struct {
	GroupID     GroupID
	SenderID    MemberID
	Text        string
	GlobalIndex int64
}

// ProcessedMessage is the engine's result for one incoming record: either a
// decrypted message or a newly pending invite.
type ProcessedMessage struct {
	Message *DecryptedMessage
	Invite  *Invite
}

// EntryKind classifies transcript entries.
type EntryKind string

const (
	// EntryMessage is a delivered chat message (sent or received).
	EntryMessage EntryKind = "message"
	// EntrySystem is a locally generated notice such as "group created".
	EntrySystem EntryKind = "system"
	// EntryFailed is a local-only sentinel for a message that could not be sent.
	EntryFailed EntryKind = "failed"
)

// TranscriptEntry is one line of a group's local transcript.
type TranscriptEntry struct {
	ID          string    `json:"id"`
	GroupID     GroupID   `json:"group_id"`
	SenderID    MemberID  `json:"sender_id"`
	Text        string    `json:"text"`
	GlobalIndex int64     `json:"global_index"`
	Kind        EntryKind `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`
}
