// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeserver

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/internal/utils"
	"github.com/MKhiriev/go-group-sync/models"
)

func (s *Server) connect(w http.ResponseWriter, r *http.Request) {
	var req models.ConnectRequest
	if !decode(w, r, &req) {
		return
	}
	if req.UserID == "" || len(req.SerializedKeyPackage) == 0 {
		http.Error(w, "user_id and serialized_key_package are required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.keyPackages[req.UserID] = req.SerializedKeyPackage
	s.mu.Unlock()

	logger.FromRequest(r).Debug().Str("func", "Server.connect").Str("user_id", string(req.UserID)).Msg("member connected")
	w.WriteHeader(http.StatusOK)
}

func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGroupRequest
	if !decode(w, r, &req) {
		return
	}
	if req.GroupID.IsZero() {
		http.Error(w, "group_id is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[req.GroupID.String()]; ok {
		http.Error(w, "group already exists", http.StatusConflict)
		return
	}
	s.groups[req.GroupID.String()] = &group{name: req.GroupName, creator: req.SenderID}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) getUserKeys(w http.ResponseWriter, r *http.Request) {
	var req models.GetUserKeysRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	keys := make(map[models.MemberID][]byte, len(req.UserIDs))
	for _, id := range req.UserIDs {
		if kp, ok := s.keyPackages[id]; ok {
			keys[id] = kp
		}
	}
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, keys, http.StatusOK)
}

func (s *Server) inviteUser(w http.ResponseWriter, r *http.Request) {
	var req models.InviteUserRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[req.GroupID.String()]; !ok {
		http.Error(w, "unknown group", http.StatusNotFound)
		return
	}
	if _, ok := s.keyPackages[req.ReceiverID]; !ok {
		http.Error(w, "unknown receiver", http.StatusNotFound)
		return
	}

	inbox := s.inboxes[req.ReceiverID]
	s.inboxes[req.ReceiverID] = append(inbox, models.Message{
		SenderID:       req.SenderID,
		WelcomeMessage: req.WelcomeMessage,
		RatchetTree:    req.RatchetTree,
		Fanned:         req.Fanned,
		GlobalIndex:    int64(len(inbox) + 1),
	})
	w.WriteHeader(http.StatusOK)
}

func (s *Server) getNewMessages(w http.ResponseWriter, r *http.Request) {
	var req models.GetNewMessagesRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	var source []models.Message
	if req.GroupID.IsZero() {
		source = s.inboxes[req.SenderID]
	} else {
		g, ok := s.groups[req.GroupID.String()]
		if !ok {
			s.mu.Unlock()
			http.Error(w, "unknown group", http.StatusNotFound)
			return
		}
		source = g.messages
	}

	out := make([]models.Message, 0)
	for _, msg := range source {
		if msg.GlobalIndex >= req.Index {
			out = append(out, msg)
		}
	}
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[req.GroupID.String()]
	if !ok {
		http.Error(w, "unknown group", http.StatusNotFound)
		return
	}

	// the index is the only sequencer: it must be exactly the next free one
	if want := int64(len(g.messages) + 1); req.GlobalIndex != want {
		logger.FromRequest(r).Debug().Str("func", "Server.sendMessage").
			Int64("index", req.GlobalIndex).
			Int64("next_free", want).
			Msg("index collision")
		http.Error(w, "index already taken", http.StatusConflict)
		return
	}

	g.messages = append(g.messages, models.Message{
		GroupID:     req.GroupID,
		SenderID:    req.SenderID,
		Ciphertext:  req.Message,
		GlobalIndex: req.GlobalIndex,
	})
	w.WriteHeader(http.StatusOK)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
