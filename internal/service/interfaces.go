package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-group-sync/models"
)

// SyncClient coordinates the local group security engine with the rendezvous
// server for one account. Foreground operations are serialized; background
// polls are skipped while one of them is running.
type SyncClient interface {
	// Restore loads the persisted engine snapshot. On first run the freshly
	// constructed engine state is persisted instead. A snapshot that cannot be
	// decoded is reported with store.ErrCorruptedCredentials.
	Restore(ctx context.Context) error

	// Connect registers the member's key package with the server and
	// (re)starts background polling.
	Connect(ctx context.Context) error

	// Disconnect stops background polling and waits for it to exit.
	Disconnect()

	// CreateGroup creates a group, announces it and invites every member.
	// A member without a key package aborts the call before anything is
	// created. Failed deliveries are reported with *InviteError.
	CreateGroup(ctx context.Context, name string, memberIDs []models.MemberID) (models.GroupID, error)

	// SendMessage syncs the group, encrypts text and posts it at the next
	// index. A failed send leaves a local-only failed entry and is never
	// retried.
	SendMessage(ctx context.Context, groupID models.GroupID, text string) (models.TranscriptEntry, error)

	// CheckIncomingMessages applies new records of one group, or of the
	// invite inbox and every joined group when groupID is nil. It returns the
	// number of new transcript entries and invites.
	CheckIncomingMessages(ctx context.Context, groupID models.GroupID) (int, error)

	// Poll is the body of one background tick.
	Poll(ctx context.Context) PollReport

	// Errors publishes background poll failures.
	Errors() <-chan error

	GetChats() ([]models.Chat, error)
	GetGroupChat(groupID models.GroupID) ([]models.TranscriptEntry, error)
	GetInvites() []models.Invite
	AcceptPendingInvite(ctx context.Context, groupID models.GroupID) (models.GroupID, error)
	RejectPendingInvite(ctx context.Context, groupID models.GroupID) error

	// GetGroupIDWithUsers finds the joined group whose roster is exactly
	// members plus the local member.
	GetGroupIDWithUsers(members []models.MemberID) (models.GroupID, error)

	// LeaveGroup forgets a group locally.
	LeaveGroup(ctx context.Context, groupID models.GroupID) error

	// GroupState reports where a group stands relative to the server.
	GroupState(groupID models.GroupID) models.GroupSyncState

	// ClearManagerState stops polling, wipes persisted state and resets the
	// engine to a fresh identity.
	ClearManagerState(ctx context.Context) error
}

// Poller is anything a PollJob can drive.
type Poller interface {
	Poll(ctx context.Context) PollReport
}

// PollJob runs a Poller on a fixed interval in the background.
type PollJob interface {
	// Start stops a running job, polls once immediately and then every
	// interval until ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and blocks until its goroutine has exited. Safe to
	// call when the job is not running.
	Stop()
}

// PollReport is the typed result of one poll tick.
type PollReport struct {
	// Received is the number of new transcript entries and invites.
	Received int
	// Skipped is set when a foreground operation held the client.
	Skipped bool
	// Err joins every failure of the tick.
	Err error
}
