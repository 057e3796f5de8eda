// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/MKhiriev/go-group-sync/models"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	ciphertextVersion    byte = 1
	ciphertextHeaderSize      = 1 + 8 + 24
)

type groupRecord struct {
	ID         models.GroupID           `json:"id"`
	Name       string                   `json:"name"`
	Epoch      uint64                   `json:"epoch"`
	Secret     []byte                   `json:"secret"`
	Members    []models.MemberID        `json:"members"`
	Index      int64                    `json:"index"`
	Transcript []models.TranscriptEntry `json:"transcript"`
}

func (g *groupRecord) info() models.GroupInfo {
	return models.GroupInfo{
		ID:      slices.Clone(g.ID),
		Name:    g.Name,
		Members: slices.Clone(g.Members),
		Index:   g.Index,
	}
}

func (g *groupRecord) addMember(id models.MemberID) {
	if !slices.Contains(g.Members, id) {
		g.Members = append(g.Members, id)
	}
}

// messagePlaintext is what actually gets sealed; the author travels inside
// the ciphertext so the transport-supplied sender can be checked.
type messagePlaintext struct {
	Sender models.MemberID `json:"sender"`
	Text   string          `json:"text"`
}

// CreateNewGroup implements [GroupSecurityEngine].
func (e *nativeEngine) CreateNewGroup(name string) (models.GroupID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if name == "" {
		return nil, fmt.Errorf("create group: empty name")
	}
	for _, g := range e.groups {
		if g.Name == name {
			return nil, fmt.Errorf("%w: %q", ErrGroupExists, name)
		}
	}

	id, err := e.randomBytes(groupIDSize)
	if err != nil {
		return nil, fmt.Errorf("create group id: %w", err)
	}
	secret, err := e.randomBytes(groupSecretSize)
	if err != nil {
		return nil, fmt.Errorf("create group secret: %w", err)
	}

	g := &groupRecord{
		ID:      models.GroupID(id),
		Name:    name,
		Epoch:   1,
		Secret:  secret,
		Members: []models.MemberID{e.identity},
	}
	e.groups[g.ID.String()] = g

	return slices.Clone(g.ID), nil
}

// CreateMessage implements [GroupSecurityEngine]. The ciphertext layout is
// version ‖ epoch ‖ nonce ‖ secretbox.
func (e *nativeEngine) CreateMessage(groupID models.GroupID, text string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.groupLocked(groupID)
	if err != nil {
		return nil, err
	}

	plain, err := json.Marshal(messagePlaintext{Sender: e.identity, Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal message: %w", err)
	}

	var nonce [24]byte
	if _, err = io.ReadFull(e.random, nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, ciphertextHeaderSize+len(plain)+secretbox.Overhead)
	out = append(out, ciphertextVersion)
	out = binary.BigEndian.AppendUint64(out, g.Epoch)
	out = append(out, nonce[:]...)
	return secretbox.Seal(out, plain, &nonce, g.key()), nil
}

func (g *groupRecord) key() *[32]byte {
	var k [32]byte
	copy(k[:], g.Secret)
	return &k
}

func (e *nativeEngine) openMessageLocked(msg models.Message) (models.ProcessedMessage, error) {
	g, err := e.groupLocked(msg.GroupID)
	if err != nil {
		return models.ProcessedMessage{}, err
	}

	ct := msg.Ciphertext
	if len(ct) < ciphertextHeaderSize+secretbox.Overhead || ct[0] != ciphertextVersion {
		return models.ProcessedMessage{}, fmt.Errorf("%w: malformed ciphertext at index %d", ErrUndecryptable, msg.GlobalIndex)
	}
	if epoch := binary.BigEndian.Uint64(ct[1:9]); epoch != g.Epoch {
		return models.ProcessedMessage{}, fmt.Errorf("%w: epoch %d, local epoch %d", ErrUndecryptable, epoch, g.Epoch)
	}

	var nonce [24]byte
	copy(nonce[:], ct[9:ciphertextHeaderSize])
	plain, ok := secretbox.Open(nil, ct[ciphertextHeaderSize:], &nonce, g.key())
	if !ok {
		return models.ProcessedMessage{}, fmt.Errorf("%w: authentication failed at index %d", ErrUndecryptable, msg.GlobalIndex)
	}

	var body messagePlaintext
	if err = json.Unmarshal(plain, &body); err != nil {
		return models.ProcessedMessage{}, fmt.Errorf("%w: %w", ErrUndecryptable, err)
	}
	if msg.SenderID != "" && body.Sender != msg.SenderID {
		return models.ProcessedMessage{}, fmt.Errorf("%w: transport says %q, author is %q", ErrSenderMismatch, msg.SenderID, body.Sender)
	}

	// members added by someone else become known with their first message
	g.addMember(body.Sender)

	return models.ProcessedMessage{Message: &models.DecryptedMessage{
		GroupID:     slices.Clone(g.ID),
		SenderID:    body.Sender,
		Text:        body.Text,
		GlobalIndex: msg.GlobalIndex,
	}}, nil
}

// ProcessMessage implements [GroupSecurityEngine].
func (e *nativeEngine) ProcessMessage(msg models.Message) (models.ProcessedMessage, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if msg.IsInvite() {
		return e.openInviteLocked(msg)
	}
	return e.openMessageLocked(msg)
}

// ProcessConvoMessages implements [GroupSecurityEngine].
func (e *nativeEngine) ProcessConvoMessages(batch []models.Message, groupID models.GroupID) ([]models.ProcessedMessage, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.groupLocked(groupID); err != nil {
		return nil, err
	}

	var (
		out  = make([]models.ProcessedMessage, 0, len(batch))
		errs []error
	)
	for _, msg := range batch {
		if !msg.GroupID.Equal(groupID) {
			errs = append(errs, fmt.Errorf("%w: index %d", ErrForeignMessage, msg.GlobalIndex))
			continue
		}
		p, err := e.openMessageLocked(msg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, p)
	}

	return out, errors.Join(errs...)
}

// GroupGetIndex implements [GroupSecurityEngine].
func (e *nativeEngine) GroupGetIndex(groupID models.GroupID) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.groupLocked(groupID)
	if err != nil {
		return 0, err
	}
	return g.Index, nil
}

// GroupSetIndex implements [GroupSecurityEngine].
func (e *nativeEngine) GroupSetIndex(groupID models.GroupID, index int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.groupLocked(groupID)
	if err != nil {
		return err
	}
	if index < g.Index {
		return fmt.Errorf("%w: group %s %d < %d", ErrIndexRegression, g.ID, index, g.Index)
	}
	g.Index = index
	return nil
}

// GroupPushMessage implements [GroupSecurityEngine].
func (e *nativeEngine) GroupPushMessage(groupID models.GroupID, entry models.TranscriptEntry) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.groupLocked(groupID)
	if err != nil {
		return err
	}
	g.Transcript = append(g.Transcript, entry)
	return nil
}

// GroupMessages implements [GroupSecurityEngine].
func (e *nativeEngine) GroupMessages(groupID models.GroupID) ([]models.TranscriptEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.groupLocked(groupID)
	if err != nil {
		return nil, err
	}
	return slices.Clone(g.Transcript), nil
}

// GroupInfo implements [GroupSecurityEngine].
func (e *nativeEngine) GroupInfo(groupID models.GroupID) (models.GroupInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.groupLocked(groupID)
	if err != nil {
		return models.GroupInfo{}, err
	}
	return g.info(), nil
}

// Groups implements [GroupSecurityEngine].
func (e *nativeEngine) Groups() []models.GroupInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.GroupInfo, 0, len(e.groups))
	for _, g := range e.groups {
		out = append(out, g.info())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// DeleteGroup implements [GroupSecurityEngine].
func (e *nativeEngine) DeleteGroup(groupID models.GroupID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.groupLocked(groupID); err != nil {
		return err
	}
	delete(e.groups, groupID.String())
	return nil
}

func (e *nativeEngine) groupLocked(groupID models.GroupID) (*groupRecord, error) {
	g, ok := e.groups[groupID.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	return g, nil
}
