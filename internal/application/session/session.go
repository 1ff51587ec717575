// Package session mantiene el usuario autenticado sobre el repositorio elegido al arrancar.
// Se pasa explícitamente a cada consumidor; no hay instancia global.
package session

import (
	"context"
	"sync"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

// tokenHolder backends que guardan el token en memoria (remoto).
type tokenHolder interface {
	Logout()
}

// Session sesión de usuario. Segura para uso concurrente.
type Session struct {
	repo repository.Repository
	log  *logger.Logger

	mu    sync.RWMutex
	user  *entity.UserProfile
	token string
}

// New crea la sesión sobre repo (no se cambia de backend durante la vida del proceso).
func New(repo repository.Repository, log *logger.Logger) *Session {
	return &Session{repo: repo, log: log.Component("session")}
}

// Repository devuelve el backend de la sesión.
func (s *Session) Repository() repository.Repository {
	return s.repo
}

// Login autentica y, si tiene éxito, fija el usuario actual. Un login fallido
// no cierra una sesión previa.
func (s *Session) Login(ctx context.Context, username, password string) entity.AuthResult {
	res := s.repo.Login(ctx, username, password)
	if !res.Success || res.User == nil {
		s.log.Warn().Str("username", username).Str("message", res.Message).Msg("login rechazado")
		return res
	}
	s.mu.Lock()
	u := *res.User
	s.user = &u
	s.token = res.Token
	s.mu.Unlock()
	s.log.Info().Str("username", u.Username).Str("role", u.Role).Str("backend", s.repo.Info()).Msg("sesión iniciada")
	return res
}

// Logout descarta usuario y token.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	if th, ok := s.repo.(tokenHolder); ok {
		th.Logout()
	}
}

// CurrentUser devuelve una copia del usuario autenticado o nil.
func (s *Session) CurrentUser() *entity.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// UserID ID del usuario autenticado (0 sin sesión).
func (s *Session) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return 0
	}
	return s.user.ID
}

// Token token de la sesión actual.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// HasRole indica si el usuario actual tiene alguno de los roles dados.
func (s *Session) HasRole(roles ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	for _, r := range roles {
		if s.user.Role == r {
			return true
		}
	}
	return false
}

// Close cierra el backend.
func (s *Session) Close() error {
	s.Logout()
	return s.repo.Close()
}
