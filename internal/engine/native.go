// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-group-sync/models"
	"golang.org/x/crypto/nacl/box"
)

const (
	groupIDSize     = 16
	groupSecretSize = 32

	// key package layout: x25519 public key ‖ ed25519 public key ‖ signature ‖ identity
	keyPackageHeaderSize = 32 + ed25519.PublicKeySize + ed25519.SignatureSize
)

// nativeEngine is an in-process [GroupSecurityEngine] built on NaCl
// primitives. Every group has a single symmetric epoch secret; welcomes are
// anonymously sealed to the recipient's X25519 key package and carry the
// group secret together with the roster known to the inviter.
type nativeEngine struct {
	mu sync.Mutex

	identity models.MemberID
	signer   ed25519.PrivateKey

	kpPublic  *[32]byte
	kpPrivate *[32]byte

	groups     map[string]*groupRecord
	pending    map[string]*pendingInvite
	inboxIndex int64

	random io.Reader
}

// NewNativeEngine creates an engine for identity with a freshly generated
// signing key and key package.
func NewNativeEngine(identity models.MemberID) (GroupSecurityEngine, error) {
	if identity == "" {
		return nil, fmt.Errorf("create engine: empty identity")
	}

	e := &nativeEngine{identity: identity, random: rand.Reader}
	if err := e.resetLocked(); err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return e, nil
}

// Identity implements [GroupSecurityEngine].
func (e *nativeEngine) Identity() models.MemberID {
	return e.identity
}

// GetKeyPackage implements [GroupSecurityEngine]. The package is the X25519
// public key, the Ed25519 verification key, a signature over the X25519 key
// and identity, and the identity itself.
func (e *nativeEngine) GetKeyPackage() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.keyPackageLocked(), nil
}

// KeyPackageIdentity implements [GroupSecurityEngine].
func (e *nativeEngine) KeyPackageIdentity(rawKeyPackage []byte) (models.MemberID, error) {
	kp, err := parseKeyPackage(rawKeyPackage)
	if err != nil {
		return "", err
	}
	return kp.identity, nil
}

func (e *nativeEngine) keyPackageLocked() []byte {
	identity := []byte(e.identity)
	signed := make([]byte, 0, 32+len(identity))
	signed = append(signed, e.kpPublic[:]...)
	signed = append(signed, identity...)

	kp := make([]byte, 0, keyPackageHeaderSize+len(identity))
	kp = append(kp, e.kpPublic[:]...)
	kp = append(kp, e.signer.Public().(ed25519.PublicKey)...)
	kp = append(kp, ed25519.Sign(e.signer, signed)...)
	kp = append(kp, identity...)
	return kp
}

type keyPackage struct {
	encryptionKey [32]byte
	identity      models.MemberID
}

func parseKeyPackage(raw []byte) (keyPackage, error) {
	if len(raw) <= keyPackageHeaderSize {
		return keyPackage{}, fmt.Errorf("%w: %d bytes", ErrInvalidKeyPackage, len(raw))
	}

	encKey := raw[:32]
	verifyKey := ed25519.PublicKey(raw[32 : 32+ed25519.PublicKeySize])
	sig := raw[32+ed25519.PublicKeySize : keyPackageHeaderSize]
	identity := raw[keyPackageHeaderSize:]

	signed := make([]byte, 0, 32+len(identity))
	signed = append(signed, encKey...)
	signed = append(signed, identity...)
	if !ed25519.Verify(verifyKey, signed, sig) {
		return keyPackage{}, fmt.Errorf("%w: bad signature", ErrInvalidKeyPackage)
	}

	var kp keyPackage
	copy(kp.encryptionKey[:], encKey)
	kp.identity = models.MemberID(identity)
	return kp, nil
}

// Reset implements [GroupSecurityEngine].
func (e *nativeEngine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.resetLocked()
}

func (e *nativeEngine) resetLocked() error {
	_, signer, err := ed25519.GenerateKey(e.random)
	if err != nil {
		return fmt.Errorf("generate signer key: %w", err)
	}
	kpPublic, kpPrivate, err := box.GenerateKey(e.random)
	if err != nil {
		return fmt.Errorf("generate key package: %w", err)
	}

	e.signer = signer
	e.kpPublic = kpPublic
	e.kpPrivate = kpPrivate
	e.groups = make(map[string]*groupRecord)
	e.pending = make(map[string]*pendingInvite)
	e.inboxIndex = 0
	return nil
}

// InboxIndex implements [GroupSecurityEngine].
func (e *nativeEngine) InboxIndex() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.inboxIndex
}

// SetInboxIndex implements [GroupSecurityEngine].
func (e *nativeEngine) SetInboxIndex(index int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < e.inboxIndex {
		return fmt.Errorf("%w: inbox %d < %d", ErrIndexRegression, index, e.inboxIndex)
	}
	e.inboxIndex = index
	return nil
}

func (e *nativeEngine) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(e.random, b); err != nil {
		return nil, err
	}
	return b, nil
}
