// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectRequest registers a member and its current key package with the
// rendezvous server (POST /connect).
type ConnectRequest struct {
	UserID               MemberID `json:"user_id"`
	SerializedKeyPackage []byte   `json:"serialized_key_package"`
}

// CreateGroupRequest announces a new group (POST /create_group).
type CreateGroupRequest struct {
	GroupID   GroupID  `json:"group_id"`
	GroupName string   `json:"group_name"`
	SenderID  MemberID `json:"sender_id"`
}

// GetUserKeysRequest asks for the key packages of several members in one
// round trip (POST /get_user_keys). The response is a JSON object mapping
// member IDs to base64 key packages.
type GetUserKeysRequest struct {
	UserIDs []MemberID `json:"user_ids"`
}

// InviteUserRequest delivers one sealed invite (POST /invite_user).
type InviteUserRequest struct {
	GroupID        GroupID  `json:"group_id"`
	SenderID       MemberID `json:"sender_id"`
	ReceiverID     MemberID `json:"receiver_id"`
	WelcomeMessage []byte   `json:"welcome_message"`
	RatchetTree    []byte   `json:"ratchet_tree"`
	Fanned         []byte   `json:"fanned"`
}

// GetNewMessagesRequest polls for records at or after Index
// (POST /get_new_messages). Without GroupID the server returns the invites
// addressed to SenderID, indexed by the member's inbox sequence.
type GetNewMessagesRequest struct {
	GroupID  GroupID  `json:"group_id,omitempty"`
	SenderID MemberID `json:"sender_id"`
	Index    int64    `json:"index"`
}

// SendMessageRequest posts one encrypted message tagged with the index it is
// expected to occupy (POST /send_message).
type SendMessageRequest struct {
	GroupID     GroupID  `json:"group_id"`
	SenderID    MemberID `json:"sender_id"`
	Message     []byte   `json:"message"`
	GlobalIndex int64    `json:"global_index"`
}
