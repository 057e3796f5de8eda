package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-group-sync/models"
)

var (
	ErrPartialKeyPackages = errors.New("key packages missing for some members")
	ErrPartialInvite      = errors.New("some invites were not delivered")
	ErrIndexConflict      = errors.New("group index already taken on server")
	ErrStateNotPersisted  = errors.New("engine state not persisted")
	ErrGroupNotFound      = errors.New("group not found")
	ErrSyncFailed         = errors.New("group sync failed")
	ErrEmptyGroupName     = errors.New("empty group name")
)

// MissingKeyPackagesError names the members without a usable key package.
type MissingKeyPackagesError struct {
	Missing []models.MemberID
}

func (e *MissingKeyPackagesError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPartialKeyPackages, joinMembers(e.Missing))
}

func (e *MissingKeyPackagesError) Unwrap() error {
	return ErrPartialKeyPackages
}

// InviteError reports a group creation where only some invites were
// delivered. The group itself exists both locally and on the server.
type InviteError struct {
	GroupID models.GroupID
	Invited []models.MemberID
	Failed  map[models.MemberID]error
}

func (e *InviteError) Error() string {
	failed := make([]string, 0, len(e.Failed))
	for id, err := range e.Failed {
		failed = append(failed, fmt.Sprintf("%s (%v)", id, err))
	}
	// map order is random
	slices.Sort(failed)
	return fmt.Sprintf("%s: %s", ErrPartialInvite, strings.Join(failed, ", "))
}

func (e *InviteError) Unwrap() error {
	return ErrPartialInvite
}

func joinMembers(ids []models.MemberID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
