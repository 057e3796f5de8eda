// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SerializedCredentials is the complete snapshot of the local group security
// engine. It is the only durable source of truth: it is written after every
// state-changing engine call and reloaded at process start to resume group
// membership without re-joining.
type SerializedCredentials struct {
	// SignerKey is the member's long-term signing key.
	SignerKey []byte

	// Storage is the engine's internal key→bytes store (key packages, group
	// secrets, indices, transcripts, pending invites).
	Storage map[string][]byte

	// GroupNames lists the names of all joined groups.
	GroupNames []string

	// GroupNameToID maps every joined group name to its identifier.
	GroupNameToID map[string]GroupID

	// CredentialWithKey is the member's public credential bound to its
	// signature key.
	CredentialWithKey []byte
}
