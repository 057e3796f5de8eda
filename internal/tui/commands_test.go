package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-group-sync/internal/adapter"
	"github.com/MKhiriev/go-group-sync/internal/service"
	"github.com/MKhiriev/go-group-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	teamID  = models.GroupID{0xab, 0xcd, 0x01, 0x02, 0x03}
	otherID = models.GroupID{0xab, 0xce, 0x09}
)

func newTestCommander(t *testing.T) (*commander, *MockSyncClient, *[]string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sc := NewMockSyncClient(ctrl)
	var copied []string
	c := newCommander(sc, func(s string) error {
		copied = append(copied, s)
		return nil
	})
	return c, sc, &copied
}

func testChats() []models.Chat {
	return []models.Chat{
		{GroupID: teamID, Name: "team", State: models.GroupSynced,
			LastEntry: &models.TranscriptEntry{Text: "hello"}},
		{GroupID: otherID, Name: "other", State: models.GroupAheadOfRemote},
	}
}

// ── splitCommand ───────────────────────────────────────────────────────────

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		line, name, rest string
	}{
		{"", "", ""},
		{"chats", "chats", ""},
		{"  SEND team   hi  there ", "send", "team   hi  there"},
		{"create team bob carol", "create", "team bob carol"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, rest := splitCommand(tt.line)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

// ── execute ────────────────────────────────────────────────────────────────

func TestExecute_UnknownAndEmpty(t *testing.T) {
	c, _, _ := newTestCommander(t)

	res, err := c.execute(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, res.output)

	_, err = c.execute(context.Background(), "dance")
	assert.ErrorIs(t, err, errUnknownCommand)
}

func TestExecute_Help(t *testing.T) {
	c, _, _ := newTestCommander(t)

	res, err := c.execute(context.Background(), "help")
	require.NoError(t, err)
	assert.Contains(t, res.output, "send <group> <text>")
	assert.Contains(t, res.output, "accept <invite>")
	assert.NotContains(t, res.output, "exit")
}

func TestExecute_Quit(t *testing.T) {
	c, _, _ := newTestCommander(t)
	for _, line := range []string{"quit", "exit"} {
		res, err := c.execute(context.Background(), line)
		require.NoError(t, err)
		assert.True(t, res.quit, line)
	}
}

func TestExecute_Chats(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	sc.EXPECT().GetChats().Return(testChats(), nil)

	res, err := c.execute(context.Background(), "chats")
	require.NoError(t, err)
	assert.Contains(t, res.output, "team")
	assert.Contains(t, res.output, "abcd0102")
	assert.Contains(t, res.output, "ahead_of_remote")
	assert.Contains(t, res.output, "hello")
}

func TestExecute_ChatsEmpty(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	sc.EXPECT().GetChats().Return(nil, nil)

	res, err := c.execute(context.Background(), "chats")
	require.NoError(t, err)
	assert.Equal(t, "no groups yet", res.output)
}

func TestExecute_Create(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	sc.EXPECT().
		CreateGroup(gomock.Any(), "team", []models.MemberID{"bob", "carol"}).
		Return(teamID, nil)

	res, err := c.execute(context.Background(), "create team bob carol")
	require.NoError(t, err)
	assert.Equal(t, "created team (abcd0102)", res.output)
}

func TestExecute_CreatePartialInvite(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	inviteErr := &service.InviteError{
		GroupID: teamID,
		Invited: []models.MemberID{"bob"},
		Failed:  map[models.MemberID]error{"carol": adapter.ErrNotFound},
	}
	sc.EXPECT().CreateGroup(gomock.Any(), "team", gomock.Any()).Return(teamID, inviteErr)

	res, err := c.execute(context.Background(), "create team bob carol")
	assert.ErrorIs(t, err, service.ErrPartialInvite)
	assert.Contains(t, res.output, "invited 1, failed 1")
}

func TestExecute_CreateUsage(t *testing.T) {
	c, _, _ := newTestCommander(t)
	_, err := c.execute(context.Background(), "create")
	var ue usageError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "usage: create <name> [member...]", ue.Error())
}

func TestExecute_Send(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	sc.EXPECT().GetChats().Return(testChats(), nil)
	sc.EXPECT().
		SendMessage(gomock.Any(), teamID, "hi  there").
		Return(models.TranscriptEntry{GlobalIndex: 7}, nil)

	res, err := c.execute(context.Background(), "send team hi  there")
	require.NoError(t, err)
	assert.Equal(t, "sent #7", res.output)
}

func TestExecute_SendConflict(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	sc.EXPECT().GetChats().Return(testChats(), nil)
	sc.EXPECT().
		SendMessage(gomock.Any(), teamID, "hi").
		Return(models.TranscriptEntry{Kind: models.EntryFailed}, service.ErrIndexConflict)

	_, err := c.execute(context.Background(), "send team hi")
	assert.ErrorIs(t, err, service.ErrIndexConflict)
}

func TestExecute_SendUsage(t *testing.T) {
	c, _, _ := newTestCommander(t)
	for _, line := range []string{"send", "send team", "send team   "} {
		_, err := c.execute(context.Background(), line)
		var ue usageError
		assert.ErrorAs(t, err, &ue, line)
	}
}

func TestExecute_Read(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	at := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	sc.EXPECT().GetChats().Return(testChats(), nil)
	sc.EXPECT().GetGroupChat(teamID).Return([]models.TranscriptEntry{
		{Kind: models.EntrySystem, Text: "group created", CreatedAt: at},
		{Kind: models.EntryMessage, SenderID: "bob", Text: "hello", GlobalIndex: 1, CreatedAt: at},
		{Kind: models.EntryFailed, SenderID: "alice", Text: "lost", CreatedAt: at},
	}, nil)

	res, err := c.execute(context.Background(), "read team")
	require.NoError(t, err)
	assert.Contains(t, res.output, "group created")
	assert.Contains(t, res.output, "#1    bob: hello")
	assert.Contains(t, res.output, "lost (not sent)")
}

func TestExecute_ReadByIDPrefix(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	sc.EXPECT().GetChats().Return(testChats(), nil)
	sc.EXPECT().GetGroupChat(otherID).Return(nil, nil)

	res, err := c.execute(context.Background(), "read ABCE")
	require.NoError(t, err)
	assert.Equal(t, "no messages", res.output)
}

func TestExecute_ResolveErrors(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	sc.EXPECT().GetChats().Return(testChats(), nil).Times(2)

	_, err := c.execute(context.Background(), "read abc")
	assert.ErrorIs(t, err, errAmbiguousGroup)

	_, err = c.execute(context.Background(), "read nope")
	assert.ErrorIs(t, err, errUnknownGroup)
}

func TestExecute_Invites(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	invites := []models.Invite{
		{GroupID: teamID, GroupName: "team", SenderID: "bob"},
		{GroupID: otherID, SenderID: "carol"},
	}

	sc.EXPECT().GetInvites().Return(invites)
	res, err := c.execute(context.Background(), "invites")
	require.NoError(t, err)
	assert.Contains(t, res.output, "from bob")
	assert.Contains(t, res.output, "abce09")

	sc.EXPECT().GetInvites().Return(invites)
	sc.EXPECT().AcceptPendingInvite(gomock.Any(), teamID).Return(teamID, nil)
	res, err = c.execute(context.Background(), "accept team")
	require.NoError(t, err)
	assert.Equal(t, "joined team (abcd0102)", res.output)

	sc.EXPECT().GetInvites().Return(invites)
	sc.EXPECT().RejectPendingInvite(gomock.Any(), otherID).Return(nil)
	res, err = c.execute(context.Background(), "reject abce")
	require.NoError(t, err)
	assert.Equal(t, "invite rejected", res.output)

	sc.EXPECT().GetInvites().Return(invites)
	_, err = c.execute(context.Background(), "accept zz")
	assert.ErrorIs(t, err, errUnknownInvite)
}

func TestExecute_InvitesEmpty(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	sc.EXPECT().GetInvites().Return(nil)

	res, err := c.execute(context.Background(), "invites")
	require.NoError(t, err)
	assert.Equal(t, "no pending invites", res.output)
}

func TestExecute_Find(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	sc.EXPECT().GetGroupIDWithUsers([]models.MemberID{"bob", "carol"}).Return(teamID, nil)

	res, err := c.execute(context.Background(), "find bob carol")
	require.NoError(t, err)
	assert.Equal(t, teamID.String(), res.output)

	sc.EXPECT().GetGroupIDWithUsers(gomock.Any()).Return(nil, service.ErrGroupNotFound)
	_, err = c.execute(context.Background(), "find dave")
	assert.ErrorIs(t, err, service.ErrGroupNotFound)
}

func TestExecute_Leave(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	sc.EXPECT().GetChats().Return(testChats(), nil)
	sc.EXPECT().LeaveGroup(gomock.Any(), otherID).Return(nil)

	res, err := c.execute(context.Background(), "leave other")
	require.NoError(t, err)
	assert.Equal(t, "left abce09", res.output)
}

func TestExecute_Sync(t *testing.T) {
	c, sc, _ := newTestCommander(t)

	sc.EXPECT().CheckIncomingMessages(gomock.Any(), models.GroupID(nil)).Return(3, nil)
	res, err := c.execute(context.Background(), "sync")
	require.NoError(t, err)
	assert.Equal(t, "3 new", res.output)

	sc.EXPECT().GetChats().Return(testChats(), nil)
	sc.EXPECT().CheckIncomingMessages(gomock.Any(), teamID).Return(0, service.ErrSyncFailed)
	res, err = c.execute(context.Background(), "sync team")
	assert.ErrorIs(t, err, service.ErrSyncFailed)
	assert.Equal(t, "0 new", res.output)
}

func TestExecute_Copy(t *testing.T) {
	c, sc, copied := newTestCommander(t)
	sc.EXPECT().GetChats().Return(testChats(), nil)

	res, err := c.execute(context.Background(), "copy team")
	require.NoError(t, err)
	assert.Equal(t, []string{teamID.String()}, *copied)
	assert.Contains(t, res.output, teamID.String())
}

func TestExecute_CopyFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := NewMockSyncClient(ctrl)
	c := newCommander(sc, func(string) error { return errors.New("no clipboard") })
	sc.EXPECT().GetChats().Return(testChats(), nil)

	_, err := c.execute(context.Background(), "copy team")
	assert.ErrorContains(t, err, "no clipboard")
}

func TestExecute_Reset(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	gomock.InOrder(
		sc.EXPECT().ClearManagerState(gomock.Any()).Return(nil),
		sc.EXPECT().Restore(gomock.Any()).Return(nil),
		sc.EXPECT().Connect(gomock.Any()).Return(nil),
	)

	res, err := c.execute(context.Background(), "reset")
	require.NoError(t, err)
	assert.Contains(t, res.output, "new key package")
}

func TestExecute_ResetOffline(t *testing.T) {
	c, sc, _ := newTestCommander(t)
	sc.EXPECT().ClearManagerState(gomock.Any()).Return(nil)
	sc.EXPECT().Restore(gomock.Any()).Return(nil)
	sc.EXPECT().Connect(gomock.Any()).Return(adapter.ErrTransport)

	res, err := c.execute(context.Background(), "reset")
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, "local state wiped", res.output)
}

// ── helpers ────────────────────────────────────────────────────────────────

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "пр", fitText("привет", 2))
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))
	assert.Equal(t, serverUnavailable, humanizeServerUnavailableError(errors.Join(service.ErrSyncFailed, adapter.ErrTransport)))
	assert.Equal(t, serverUnavailable, humanizeServerUnavailableError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, "boom", humanizeServerUnavailableError(errors.New("boom")))
}
