package session_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/blackwoods-compta/internal/application/session"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/infrastructure/sqlite"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	store, err := sqlite.Open(context.Background(), sqlite.Options{
		Path:              filepath.Join(t.TempDir(), "session.db"),
		SeedAdminPassword: "admin123",
		JWTSecret:         "session-test",
	}, logger.Nop())
	require.NoError(t, err)
	s := session.New(store, logger.Nop())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSession_LoginFijaUsuario(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())

	res := s.Login(context.Background(), "admin", "admin123")
	require.True(t, res.Success)

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "admin", s.CurrentUser().Username)
	assert.Equal(t, res.Token, s.Token())
	assert.NotZero(t, s.UserID())
	assert.True(t, s.HasRole(entity.RoleAdmin, entity.RoleManager))
	assert.False(t, s.HasRole(entity.RoleEmployee))
}

func TestSession_LoginFallidoConservaSesionPrevia(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	require.True(t, s.Login(ctx, "admin", "admin123").Success)

	res := s.Login(ctx, "admin", "mala")
	assert.False(t, res.Success)
	assert.True(t, s.IsAuthenticated())
}

func TestSession_Logout(t *testing.T) {
	s := newSession(t)
	require.True(t, s.Login(context.Background(), "admin", "admin123").Success)

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	assert.Zero(t, s.UserID())
	assert.False(t, s.HasRole(entity.RoleAdmin))
}

func TestSession_CurrentUserEsCopia(t *testing.T) {
	s := newSession(t)
	require.True(t, s.Login(context.Background(), "admin", "admin123").Success)

	u := s.CurrentUser()
	u.Role = entity.RoleEmployee
	assert.True(t, s.HasRole(entity.RoleAdmin))
}

func TestSession_AccesoConcurrente(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	require.True(t, s.Login(ctx, "admin", "admin123").Success)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.HasRole(entity.RoleAdmin)
			_ = s.CurrentUser()
			_, _ = s.Repository().DashboardSummary(ctx)
		}()
	}
	wg.Wait()
	assert.True(t, s.IsAuthenticated())
}
