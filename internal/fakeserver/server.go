// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeserver

import (
	"sync"

	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type group struct {
	name     string
	creator  models.MemberID
	messages []models.Message
}

// Server keeps registered members, groups and invite inboxes in memory.
type Server struct {
	hashKey string
	logger  *logger.Logger

	mu          sync.Mutex
	keyPackages map[models.MemberID][]byte
	groups      map[string]*group
	inboxes     map[models.MemberID][]models.Message

	// failures makes the next requests to a path fail with the given status
	failures map[string][]int
}

// New returns an empty server. With a non-empty hashKey every request must
// carry a valid HashSHA256 header.
func New(hashKey string, logger *logger.Logger) *Server {
	return &Server{
		hashKey:     hashKey,
		logger:      logger,
		keyPackages: make(map[models.MemberID][]byte),
		groups:      make(map[string]*group),
		inboxes:     make(map[models.MemberID][]models.Message),
		failures:    make(map[string][]int),
	}
}

// Init builds the router.
func (s *Server) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(s.withTraceID)
	router.Use(s.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(s.injectFailures)
	router.Use(s.checkHash)

	router.Post("/connect", s.connect)
	router.Post("/create_group", s.createGroup)
	router.Post("/get_user_keys", s.getUserKeys)
	router.Post("/invite_user", s.inviteUser)
	router.Post("/get_new_messages", s.getNewMessages)
	router.Post("/send_message", s.sendMessage)

	return router
}

// FailNext makes the next len(statuses) requests to path fail, one status
// per request.
func (s *Server) FailNext(path string, statuses ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = append(s.failures[path], statuses...)
}

// Forget drops a member's key package as if it never connected.
func (s *Server) Forget(id models.MemberID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keyPackages, id)
}

// Messages returns a copy of a group's stored messages.
func (s *Server) Messages(groupID models.GroupID) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID.String()]
	if !ok {
		return nil
	}
	return append([]models.Message(nil), g.messages...)
}

// Inbox returns a copy of the invites delivered to a member.
func (s *Server) Inbox(id models.MemberID) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.inboxes[id]...)
}

// Deliver appends a raw record to a group as if a member had sent it. The
// record is stored at its own GlobalIndex.
func (s *Server) Deliver(msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[msg.GroupID.String()]
	if !ok {
		g = &group{}
		s.groups[msg.GroupID.String()] = g
	}
	g.messages = append(g.messages, msg)
}
