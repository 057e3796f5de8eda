// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-group-sync/models"
)

// storage keys of a credentials snapshot
const (
	storageKeyPackagePublic  = "key_package/public"
	storageKeyPackagePrivate = "key_package/private"
	storageInboxIndex        = "inbox/index"
	storageGroupPrefix       = "group/"
	storageInvitePrefix      = "invite/"
)

type credentialWithKey struct {
	Identity     models.MemberID   `json:"identity"`
	SignatureKey ed25519.PublicKey `json:"signature_key"`
}

// SaveState implements [GroupSecurityEngine].
func (e *nativeEngine) SaveState() (models.SerializedCredentials, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cred, err := json.Marshal(credentialWithKey{
		Identity:     e.identity,
		SignatureKey: e.signer.Public().(ed25519.PublicKey),
	})
	if err != nil {
		return models.SerializedCredentials{}, fmt.Errorf("marshal credential: %w", err)
	}

	storage := map[string][]byte{
		storageKeyPackagePublic:  bytes.Clone(e.kpPublic[:]),
		storageKeyPackagePrivate: bytes.Clone(e.kpPrivate[:]),
		storageInboxIndex:        binary.BigEndian.AppendUint64(nil, uint64(e.inboxIndex)),
	}

	names := make([]string, 0, len(e.groups))
	nameToID := make(map[string]models.GroupID, len(e.groups))
	for key, g := range e.groups {
		raw, err := json.Marshal(g)
		if err != nil {
			return models.SerializedCredentials{}, fmt.Errorf("marshal group %s: %w", key, err)
		}
		storage[storageGroupPrefix+key] = raw
		names = append(names, g.Name)
		nameToID[g.Name] = bytes.Clone(g.ID)
	}
	sort.Strings(names)

	for key, p := range e.pending {
		raw, err := json.Marshal(p)
		if err != nil {
			return models.SerializedCredentials{}, fmt.Errorf("marshal invite %s: %w", key, err)
		}
		storage[storageInvitePrefix+key] = raw
	}

	return models.SerializedCredentials{
		SignerKey:         bytes.Clone(e.signer.Seed()),
		Storage:           storage,
		GroupNames:        names,
		GroupNameToID:     nameToID,
		CredentialWithKey: cred,
	}, nil
}

// LoadState implements [GroupSecurityEngine]. The snapshot is validated in
// full before any local state is replaced.
func (e *nativeEngine) LoadState(creds models.SerializedCredentials) error {
	if len(creds.SignerKey) != ed25519.SeedSize {
		return fmt.Errorf("%w: signer key is %d bytes", ErrInvalidState, len(creds.SignerKey))
	}
	signer := ed25519.NewKeyFromSeed(creds.SignerKey)

	var cred credentialWithKey
	if err := json.Unmarshal(creds.CredentialWithKey, &cred); err != nil {
		return fmt.Errorf("%w: credential: %w", ErrInvalidState, err)
	}
	if cred.Identity != e.identity {
		return fmt.Errorf("%w: snapshot belongs to %q", ErrInvalidState, cred.Identity)
	}
	if !bytes.Equal(cred.SignatureKey, signer.Public().(ed25519.PublicKey)) {
		return fmt.Errorf("%w: credential does not match signer key", ErrInvalidState)
	}

	kpPublic, err := fixedKey(creds.Storage, storageKeyPackagePublic)
	if err != nil {
		return err
	}
	kpPrivate, err := fixedKey(creds.Storage, storageKeyPackagePrivate)
	if err != nil {
		return err
	}

	var inbox int64
	if raw, ok := creds.Storage[storageInboxIndex]; ok {
		if len(raw) != 8 {
			return fmt.Errorf("%w: inbox index is %d bytes", ErrInvalidState, len(raw))
		}
		inbox = int64(binary.BigEndian.Uint64(raw))
	}

	groups := make(map[string]*groupRecord)
	pending := make(map[string]*pendingInvite)
	for k, raw := range creds.Storage {
		switch {
		case strings.HasPrefix(k, storageGroupPrefix):
			var g groupRecord
			if err = json.Unmarshal(raw, &g); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidState, k, err)
			}
			if len(g.Secret) != groupSecretSize || g.ID.String() != strings.TrimPrefix(k, storageGroupPrefix) {
				return fmt.Errorf("%w: %s: inconsistent group record", ErrInvalidState, k)
			}
			groups[g.ID.String()] = &g
		case strings.HasPrefix(k, storageInvitePrefix):
			var p pendingInvite
			if err = json.Unmarshal(raw, &p); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidState, k, err)
			}
			pending[strings.TrimPrefix(k, storageInvitePrefix)] = &p
		}
	}

	for name, id := range creds.GroupNameToID {
		g, ok := groups[id.String()]
		if !ok || g.Name != name {
			return fmt.Errorf("%w: group %q is not in storage", ErrInvalidState, name)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.signer = signer
	e.kpPublic = kpPublic
	e.kpPrivate = kpPrivate
	e.groups = groups
	e.pending = pending
	e.inboxIndex = inbox
	return nil
}

func fixedKey(storage map[string][]byte, key string) (*[32]byte, error) {
	raw, ok := storage[key]
	if !ok || len(raw) != 32 {
		return nil, fmt.Errorf("%w: %s missing or malformed", ErrInvalidState, key)
	}
	var k [32]byte
	copy(k[:], raw)
	return &k, nil
}
