// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-group-sync/internal/service"
	"github.com/MKhiriev/go-group-sync/models"
)

var (
	errUnknownCommand = errors.New("unknown command, type help")
	errUnknownGroup   = errors.New("no such group")
	errAmbiguousGroup = errors.New("group handle matches more than one group")
	errUnknownInvite  = errors.New("no such invite")
)

type usageError struct {
	usage string
}

func (e usageError) Error() string {
	return "usage: " + e.usage
}

// commandResult is what one console line produced.
type commandResult struct {
	output string
	quit   bool
}

type command struct {
	usage string
	help  string
	run   func(ctx context.Context, c *commander, rest string) (commandResult, error)
}

// commander executes console lines against a SyncClient.
type commander struct {
	sync service.SyncClient
	copy func(string) error

	commands map[string]command
}

func newCommander(sync service.SyncClient, copyFn func(string) error) *commander {
	c := &commander{sync: sync, copy: copyFn}
	c.commands = map[string]command{
		"help":    {usage: "help", help: "list commands", run: runHelp},
		"chats":   {usage: "chats", help: "list joined groups", run: runChats},
		"create":  {usage: "create <name> [member...]", help: "create a group and invite members", run: runCreate},
		"send":    {usage: "send <group> <text>", help: "send a message", run: runSend},
		"read":    {usage: "read <group>", help: "show a group transcript", run: runRead},
		"invites": {usage: "invites", help: "list pending invites", run: runInvites},
		"accept":  {usage: "accept <invite>", help: "join a group from an invite", run: runAccept},
		"reject":  {usage: "reject <invite>", help: "drop an invite", run: runReject},
		"find":    {usage: "find <member...>", help: "find the group with exactly these members", run: runFind},
		"leave":   {usage: "leave <group>", help: "forget a group locally", run: runLeave},
		"sync":    {usage: "sync [group]", help: "fetch new messages now", run: runSync},
		"copy":    {usage: "copy <group>", help: "copy a group id to the clipboard", run: runCopy},
		"reset":   {usage: "reset", help: "wipe local state and start with a new identity", run: runReset},
		"quit":    {usage: "quit", help: "exit", run: runQuit},
	}
	c.commands["exit"] = c.commands["quit"]
	return c
}

// splitCommand returns the command word and the untouched rest of the line.
func splitCommand(line string) (name, rest string) {
	line = strings.TrimSpace(line)
	name, rest, _ = strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(rest)
}

func (c *commander) execute(ctx context.Context, line string) (commandResult, error) {
	name, rest := splitCommand(line)
	if name == "" {
		return commandResult{}, nil
	}
	cmd, ok := c.commands[name]
	if !ok {
		return commandResult{}, fmt.Errorf("%w: %q", errUnknownCommand, name)
	}
	return cmd.run(ctx, c, rest)
}

func runHelp(_ context.Context, c *commander, _ string) (commandResult, error) {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		if name == "exit" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		cmd := c.commands[name]
		fmt.Fprintf(&b, "%-28s %s\n", cmd.usage, helpStyle.Render(cmd.help))
	}
	return commandResult{output: strings.TrimRight(b.String(), "\n")}, nil
}

func runChats(_ context.Context, c *commander, _ string) (commandResult, error) {
	chats, err := c.sync.GetChats()
	if err != nil {
		return commandResult{}, err
	}
	if len(chats) == 0 {
		return commandResult{output: "no groups yet"}, nil
	}

	var b strings.Builder
	b.WriteString("Name             │ ID       │ State           │ Last\n")
	b.WriteString("─────────────────┼──────────┼─────────────────┼────────────────────\n")
	for _, chat := range chats {
		last := "-"
		if chat.LastEntry != nil {
			last = fitText(chat.LastEntry.Text, 40)
		}
		fmt.Fprintf(&b, "%-16s │ %-8s │ %-15s │ %s\n",
			fitText(chat.Name, 16),
			shortID(chat.GroupID),
			chat.State,
			last,
		)
	}
	return commandResult{output: strings.TrimRight(b.String(), "\n")}, nil
}

func runCreate(ctx context.Context, c *commander, rest string) (commandResult, error) {
	args := strings.Fields(rest)
	if len(args) == 0 {
		return commandResult{}, usageError{c.commands["create"].usage}
	}

	id, err := c.sync.CreateGroup(ctx, args[0], memberIDs(args[1:]))
	var inviteErr *service.InviteError
	switch {
	case errors.As(err, &inviteErr):
		return commandResult{output: fmt.Sprintf("created %s (%s), invited %d, failed %d",
			args[0], shortID(id), len(inviteErr.Invited), len(inviteErr.Failed))}, err
	case err != nil:
		return commandResult{}, err
	}
	return commandResult{output: fmt.Sprintf("created %s (%s)", args[0], shortID(id))}, nil
}

func runSend(ctx context.Context, c *commander, rest string) (commandResult, error) {
	handle, text, _ := strings.Cut(rest, " ")
	text = strings.TrimSpace(text)
	if handle == "" || text == "" {
		return commandResult{}, usageError{c.commands["send"].usage}
	}

	id, err := c.resolveGroup(handle)
	if err != nil {
		return commandResult{}, err
	}
	entry, err := c.sync.SendMessage(ctx, id, text)
	if err != nil {
		return commandResult{}, err
	}
	return commandResult{output: fmt.Sprintf("sent #%d", entry.GlobalIndex)}, nil
}

func runRead(_ context.Context, c *commander, rest string) (commandResult, error) {
	if rest == "" {
		return commandResult{}, usageError{c.commands["read"].usage}
	}
	id, err := c.resolveGroup(rest)
	if err != nil {
		return commandResult{}, err
	}
	entries, err := c.sync.GetGroupChat(id)
	if err != nil {
		return commandResult{}, err
	}
	if len(entries) == 0 {
		return commandResult{output: "no messages"}, nil
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, renderEntry(e))
	}
	return commandResult{output: strings.Join(lines, "\n")}, nil
}

func runInvites(_ context.Context, c *commander, _ string) (commandResult, error) {
	invites := c.sync.GetInvites()
	if len(invites) == 0 {
		return commandResult{output: "no pending invites"}, nil
	}

	var b strings.Builder
	for _, inv := range invites {
		fmt.Fprintf(&b, "%-16s from %-16s %s\n", fitText(valueOrDash(inv.GroupName), 16), inv.SenderID, shortID(inv.GroupID))
	}
	return commandResult{output: strings.TrimRight(b.String(), "\n")}, nil
}

func runAccept(ctx context.Context, c *commander, rest string) (commandResult, error) {
	if rest == "" {
		return commandResult{}, usageError{c.commands["accept"].usage}
	}
	inv, err := c.resolveInvite(rest)
	if err != nil {
		return commandResult{}, err
	}
	id, err := c.sync.AcceptPendingInvite(ctx, inv.GroupID)
	if err != nil {
		return commandResult{}, err
	}
	return commandResult{output: fmt.Sprintf("joined %s (%s)", valueOrDash(inv.GroupName), shortID(id))}, nil
}

func runReject(ctx context.Context, c *commander, rest string) (commandResult, error) {
	if rest == "" {
		return commandResult{}, usageError{c.commands["reject"].usage}
	}
	inv, err := c.resolveInvite(rest)
	if err != nil {
		return commandResult{}, err
	}
	if err = c.sync.RejectPendingInvite(ctx, inv.GroupID); err != nil {
		return commandResult{}, err
	}
	return commandResult{output: "invite rejected"}, nil
}

func runFind(_ context.Context, c *commander, rest string) (commandResult, error) {
	args := strings.Fields(rest)
	if len(args) == 0 {
		return commandResult{}, usageError{c.commands["find"].usage}
	}
	id, err := c.sync.GetGroupIDWithUsers(memberIDs(args))
	if err != nil {
		return commandResult{}, err
	}
	return commandResult{output: id.String()}, nil
}

func runLeave(ctx context.Context, c *commander, rest string) (commandResult, error) {
	if rest == "" {
		return commandResult{}, usageError{c.commands["leave"].usage}
	}
	id, err := c.resolveGroup(rest)
	if err != nil {
		return commandResult{}, err
	}
	if err = c.sync.LeaveGroup(ctx, id); err != nil {
		return commandResult{}, err
	}
	return commandResult{output: "left " + shortID(id)}, nil
}

func runSync(ctx context.Context, c *commander, rest string) (commandResult, error) {
	var id models.GroupID
	if rest != "" {
		var err error
		if id, err = c.resolveGroup(rest); err != nil {
			return commandResult{}, err
		}
	}
	n, err := c.sync.CheckIncomingMessages(ctx, id)
	return commandResult{output: fmt.Sprintf("%d new", n)}, err
}

func runCopy(_ context.Context, c *commander, rest string) (commandResult, error) {
	if rest == "" {
		return commandResult{}, usageError{c.commands["copy"].usage}
	}
	id, err := c.resolveGroup(rest)
	if err != nil {
		return commandResult{}, err
	}
	if err = c.copy(id.String()); err != nil {
		return commandResult{}, fmt.Errorf("copy to clipboard: %w", err)
	}
	return commandResult{output: "copied " + id.String()}, nil
}

func runReset(ctx context.Context, c *commander, _ string) (commandResult, error) {
	if err := c.sync.ClearManagerState(ctx); err != nil {
		return commandResult{}, err
	}
	if err := c.sync.Restore(ctx); err != nil {
		return commandResult{}, err
	}
	if err := c.sync.Connect(ctx); err != nil {
		return commandResult{output: "local state wiped"}, err
	}
	return commandResult{output: "local state wiped, registered a new key package"}, nil
}

func runQuit(context.Context, *commander, string) (commandResult, error) {
	return commandResult{quit: true}, nil
}

// resolveGroup accepts a group name or a unique prefix of its hex id.
func (c *commander) resolveGroup(handle string) (models.GroupID, error) {
	chats, err := c.sync.GetChats()
	if err != nil {
		return nil, err
	}

	for _, chat := range chats {
		if chat.Name == handle {
			return chat.GroupID, nil
		}
	}

	var found models.GroupID
	for _, chat := range chats {
		if !strings.HasPrefix(chat.GroupID.String(), strings.ToLower(handle)) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %q", errAmbiguousGroup, handle)
		}
		found = chat.GroupID
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", errUnknownGroup, handle)
	}
	return found, nil
}

func (c *commander) resolveInvite(handle string) (models.Invite, error) {
	invites := c.sync.GetInvites()
	for _, inv := range invites {
		if inv.GroupName == handle {
			return inv, nil
		}
	}

	var (
		found models.Invite
		n     int
	)
	for _, inv := range invites {
		if strings.HasPrefix(inv.GroupID.String(), strings.ToLower(handle)) {
			found = inv
			n++
		}
	}
	switch n {
	case 0:
		return models.Invite{}, fmt.Errorf("%w: %q", errUnknownInvite, handle)
	case 1:
		return found, nil
	default:
		return models.Invite{}, fmt.Errorf("%w: %q", errAmbiguousGroup, handle)
	}
}

func memberIDs(args []string) []models.MemberID {
	out := make([]models.MemberID, len(args))
	for i, a := range args {
		out[i] = models.MemberID(a)
	}
	return out
}
