// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-group-sync/models"
)

const credentialsFormatVersion = 1

// credentialsEnvelope is the stored form of [models.SerializedCredentials].
// Byte fields are standard base64; a nil buffer is encoded as null so that
// nil and zero-length buffers survive the round trip unchanged.
type credentialsEnvelope struct {
	Version           int                `json:"version"`
	SignerKey         *string            `json:"signer_key"`
	Storage           map[string]*string `json:"storage"`
	GroupNames        []string           `json:"group_names"`
	GroupNameToID     map[string]*string `json:"group_name_to_id"`
	CredentialWithKey *string            `json:"credential_with_key"`
}

// SerializeCredentials encodes creds as a versioned JSON document. Map keys
// are emitted in sorted order, so equal snapshots always produce identical
// output.
func SerializeCredentials(creds models.SerializedCredentials) (string, error) {
	env := credentialsEnvelope{
		Version:           credentialsFormatVersion,
		SignerKey:         encodeBytes(creds.SignerKey),
		GroupNames:        creds.GroupNames,
		CredentialWithKey: encodeBytes(creds.CredentialWithKey),
	}

	if creds.Storage != nil {
		env.Storage = make(map[string]*string, len(creds.Storage))
		for k, v := range creds.Storage {
			env.Storage[k] = encodeBytes(v)
		}
	}
	if creds.GroupNameToID != nil {
		env.GroupNameToID = make(map[string]*string, len(creds.GroupNameToID))
		for k, v := range creds.GroupNameToID {
			env.GroupNameToID[k] = encodeBytes(v)
		}
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encode credentials: %w", err)
	}
	return string(raw), nil
}

// DeserializeCredentials is the inverse of [SerializeCredentials]. Any
// malformed input is reported as [ErrCorruptedCredentials].
func DeserializeCredentials(data string) (models.SerializedCredentials, error) {
	var env credentialsEnvelope
	if err := json.Unmarshal([]byte(data), &env); err != nil {
		return models.SerializedCredentials{}, fmt.Errorf("%w: %w", ErrCorruptedCredentials, err)
	}
	if env.Version != credentialsFormatVersion {
		return models.SerializedCredentials{}, fmt.Errorf("%w: unsupported format version %d", ErrCorruptedCredentials, env.Version)
	}

	var (
		creds = models.SerializedCredentials{GroupNames: env.GroupNames}
		err   error
	)

	if creds.SignerKey, err = decodeBytes(env.SignerKey); err != nil {
		return models.SerializedCredentials{}, fmt.Errorf("%w: signer_key: %w", ErrCorruptedCredentials, err)
	}
	if creds.CredentialWithKey, err = decodeBytes(env.CredentialWithKey); err != nil {
		return models.SerializedCredentials{}, fmt.Errorf("%w: credential_with_key: %w", ErrCorruptedCredentials, err)
	}

	if env.Storage != nil {
		creds.Storage = make(map[string][]byte, len(env.Storage))
		for k, v := range env.Storage {
			if creds.Storage[k], err = decodeBytes(v); err != nil {
				return models.SerializedCredentials{}, fmt.Errorf("%w: storage[%q]: %w", ErrCorruptedCredentials, k, err)
			}
		}
	}
	if env.GroupNameToID != nil {
		creds.GroupNameToID = make(map[string]models.GroupID, len(env.GroupNameToID))
		for k, v := range env.GroupNameToID {
			id, err := decodeBytes(v)
			if err != nil {
				return models.SerializedCredentials{}, fmt.Errorf("%w: group_name_to_id[%q]: %w", ErrCorruptedCredentials, k, err)
			}
			creds.GroupNameToID[k] = id
		}
	}

	return creds, nil
}

func encodeBytes(b []byte) *string {
	if b == nil {
		return nil
	}
	s := base64.StdEncoding.EncodeToString(b)
	return &s
}

func decodeBytes(s *string) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(*s)
}
