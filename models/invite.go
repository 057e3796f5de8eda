// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Invite is a sealed invitation to a single recipient. Invites are never
// broadcast: each recipient gets its own welcome message sealed to its key
// package.
type Invite struct {
	// GroupID identifies the group the invite admits to.
	GroupID GroupID `json:"group_id"`

	// SenderID is the member who created the invite.
	SenderID MemberID `json:"sender_id"`

	// GroupName is known only after the engine opened the welcome message.
	GroupName string `json:"group_name,omitempty"`

	// WelcomeMessage is the sealed payload the recipient opens to join.
	WelcomeMessage []byte `json:"welcome_message"`

	// RatchetTree is set only when the recipient cannot reconstruct the
	// group tree from the welcome message alone.
	RatchetTree []byte `json:"ratchet_tree,omitempty"`

	// Fanned is the optional fanned-out tree companion of RatchetTree.
	Fanned []byte `json:"fanned,omitempty"`

	// GlobalIndex is the recipient's inbox index the invite was delivered at.
	GlobalIndex int64 `json:"global_index,omitempty"`
}
