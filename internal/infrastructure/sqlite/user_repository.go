package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
)

// UserRepo cuentas de usuario (usable con conexión o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario con su hash de contraseña.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	ts := now()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, role, full_name, email, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.PasswordHash, u.Role, u.FullName, nullString(u.Email), u.IsActive,
		formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", translateConstraint(err))
	}
	if u.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	u.CreatedAt, u.UpdatedAt = ts, ts
	return nil
}

// GetActiveByUsername devuelve el usuario activo con ese nombre o nil si no existe.
func (r *UserRepo) GetActiveByUsername(ctx context.Context, username string) (*entity.User, error) {
	var (
		u         entity.User
		email     sql.NullString
		createdAt string
		updatedAt string
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role, full_name, email, is_active, created_at, updated_at
		FROM users WHERE username = ? AND is_active = 1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.FullName, &email, &u.IsActive, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Email = email.String
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Count devuelve el número de usuarios (activos o no).
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
