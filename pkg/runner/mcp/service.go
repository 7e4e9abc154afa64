// Package mcp exposes configurator sessions over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"modernride.dev/ride/pkg/app"
	"modernride.dev/ride/pkg/catalog"
	"modernride.dev/ride/pkg/configurator"
	"modernride.dev/ride/pkg/preview"
)

// ErrSessionNotFound is returned when a session id is unknown.
var ErrSessionNotFound = errors.New("session not found")

// Service owns the configurator sessions opened by MCP clients. Each session
// is one independent configurator; nothing is shared between sessions.
type Service struct {
	App *app.Service

	mu       sync.Mutex
	sessions map[string]*session
}

// session.mu serializes a selection with the drain of its update.
type session struct {
	mu  sync.Mutex
	cfg *configurator.Configurator
	rec *preview.Recorder
}

// GroupDTO describes a group and its options.
type GroupDTO struct {
	Name    string                `json:"name"`
	Options []configurator.Choice `json:"options"`
}

// SessionDTO is a transport-friendly projection of a session.
type SessionDTO struct {
	ID         string                       `json:"id"`
	Selections map[string]string            `json:"selections"`
	Updates    []configurator.PreviewUpdate `json:"updates,omitempty"`
	Groups     []GroupDTO                   `json:"groups,omitempty"`
	Quote      *app.Quote                   `json:"quote,omitempty"`
}

// NewService builds a service wrapper using the provided app service.
func NewService(a *app.Service) *Service {
	return &Service{App: a, sessions: make(map[string]*session)}
}

// Catalog returns the catalog new sessions are mounted from.
func (s *Service) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	if s.App == nil {
		return nil, errors.New("app service is not configured")
	}
	return s.App.Catalog(ctx)
}

// StartSession mounts a new configurator; the returned updates are the mount
// updates, one per group.
func (s *Service) StartSession(ctx context.Context, defaults map[string]string) (SessionDTO, error) {
	if s.App == nil {
		return SessionDTO{}, errors.New("app service is not configured")
	}
	rec := &preview.Recorder{}
	cfg, err := s.App.Mount(ctx, rec, defaults)
	if err != nil {
		return SessionDTO{}, err
	}
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &session{cfg: cfg, rec: rec}
	s.mu.Unlock()

	return s.snapshot(id, cfg, rec)
}

// Select applies one selection; the returned updates hold exactly the update
// that selection emitted.
func (s *Service) Select(_ context.Context, id, group, option string) (SessionDTO, error) {
	sess, err := s.session(id)
	if err != nil {
		return SessionDTO{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.cfg.Select(strings.TrimSpace(group), strings.TrimSpace(option)); err != nil {
		return SessionDTO{}, err
	}
	return s.snapshot(id, sess.cfg, sess.rec)
}

// Current returns the active option id of a group.
func (s *Service) Current(_ context.Context, id, group string) (string, error) {
	sess, err := s.session(id)
	if err != nil {
		return "", err
	}
	return sess.cfg.CurrentSelection(strings.TrimSpace(group))
}

// Describe lists every group with its options and the priced quote.
func (s *Service) Describe(_ context.Context, id string) (SessionDTO, error) {
	sess, err := s.session(id)
	if err != nil {
		return SessionDTO{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	dto, err := s.snapshot(id, sess.cfg, sess.rec)
	if err != nil {
		return SessionDTO{}, err
	}
	names, err := sess.cfg.Groups()
	if err != nil {
		return SessionDTO{}, err
	}
	for _, name := range names {
		choices, err := sess.cfg.Choices(name)
		if err != nil {
			return SessionDTO{}, err
		}
		dto.Groups = append(dto.Groups, GroupDTO{Name: name, Options: choices})
	}
	q, err := s.App.Quote(sess.cfg)
	if err != nil {
		return SessionDTO{}, err
	}
	dto.Quote = &q
	return dto, nil
}

// End discards a session.
func (s *Service) End(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	return nil
}

// Sessions returns the open session ids in sorted order.
func (s *Service) Sessions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Service) session(id string) (*session, error) {
	id = strings.TrimSpace(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

func (s *Service) snapshot(id string, cfg *configurator.Configurator, rec *preview.Recorder) (SessionDTO, error) {
	selections, err := cfg.Snapshot()
	if err != nil {
		return SessionDTO{}, err
	}
	return SessionDTO{
		ID:         id,
		Selections: selections,
		Updates:    rec.Drain(),
	}, nil
}
