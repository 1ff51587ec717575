package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/blackwoods-compta/internal/domain"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
	pkgjwt "github.com/jhoicas/blackwoods-compta/pkg/jwt"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

var _ repository.Repository = (*Store)(nil)

// Options parámetros del backend local.
type Options struct {
	Path              string
	SeedAdminPassword string
	JWTSecret         string // vacío = secreto aleatorio por proceso
	JWTIssuer         string
	JWTExpMinutes     int
}

// Store es el backend local: implementa repository.Repository sobre el archivo SQLite.
// Los errores de los repos se registran y se traducen a errores de dominio.
type Store struct {
	db     *sql.DB
	path   string
	repos  *Repos
	tx     *TxRunner
	log    *logger.Logger
	secret string
	issuer string
	expMin int
}

// errRowMissing aborta una transacción cuando la fila raíz no existe (resultado false, sin error).
var errRowMissing = errors.New("fila inexistente")

// Open abre o crea la base de datos, aplica migraciones y parches y siembra los datos iniciales.
// Es idempotente: abrir dos veces el mismo archivo no duplica nada.
func Open(ctx context.Context, opts Options, log *logger.Logger) (*Store, error) {
	log = log.Component("sqlite")
	db, err := openDB(ctx, opts.Path)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := applySchemaPatches(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{
		db:     db,
		path:   opts.Path,
		repos:  newRepos(db),
		tx:     NewTxRunner(db),
		log:    log,
		secret: opts.JWTSecret,
		issuer: opts.JWTIssuer,
		expMin: opts.JWTExpMinutes,
	}
	if s.expMin <= 0 {
		s.expMin = 480
	}
	if s.secret == "" {
		if s.secret, err = randomSecret(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	var seeded bool
	err = s.tx.Run(ctx, func(r *Repos) error {
		var err error
		seeded, err = seedDefaults(ctx, r, opts.SeedAdminPassword)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("datos iniciales: %w", err)
	}
	if seeded {
		log.Warn().Str("username", seedAdminUsername).Msg("datos iniciales creados; cambie la contraseña del administrador")
	}
	log.Info().Str("path", opts.Path).Msg("base de datos local lista")
	return s, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generar secreto: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Info describe la conexión.
func (s *Store) Info() string {
	return "SQLite: " + s.path
}

// Close cierra la base de datos.
func (s *Store) Close() error {
	return s.db.Close()
}

// knownErrors errores de dominio que se devuelven tal cual (ya no llevan la causa cruda).
var knownErrors = []error{
	domain.ErrValidation,
	domain.ErrNotFound,
	domain.ErrDuplicate,
	domain.ErrConflict,
	domain.ErrInsufficientStock,
	domain.ErrInvalidTransition,
}

// fail registra err y lo traduce a un error de dominio. Los errores técnicos
// (driver, disco, formato de fila) se devuelven como ErrUnavailable.
func (s *Store) fail(op string, err error) error {
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			s.log.Warn().Err(err).Str("op", op).Msg("operación rechazada")
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	s.log.Error().Err(err).Str("op", op).Msg("error de base de datos")
	return fmt.Errorf("%s: %w", op, domain.ErrUnavailable)
}

// Login valida usuario activo y contraseña (bcrypt) y emite un JWT con expiración.
func (s *Store) Login(ctx context.Context, username, password string) entity.AuthResult {
	u, err := s.repos.Users.GetActiveByUsername(ctx, username)
	if err != nil {
		s.log.Error().Err(err).Str("op", "Login").Msg("error de base de datos")
		return entity.FailedAuth("no se pudo iniciar sesión")
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		s.log.Info().Str("username", username).Msg("credenciales inválidas")
		return entity.FailedAuth("usuario o contraseña incorrectos")
	}
	token, err := pkgjwt.Generate(s.secret, u.ID, u.Username, u.Role, s.issuer, s.expMin)
	if err != nil {
		s.log.Error().Err(err).Str("op", "Login").Msg("generar token")
		return entity.FailedAuth("no se pudo iniciar sesión")
	}
	return entity.AuthResult{Success: true, Token: token, Message: "sesión iniciada", User: u.Profile()}
}

// TokenSecret devuelve el secreto con el que se firman los tokens de sesión
// (el servidor HTTP lo necesita para validar los que emite Login).
func (s *Store) TokenSecret() string {
	return s.secret
}

// DashboardSummary calcula los agregados del panel.
func (s *Store) DashboardSummary(ctx context.Context) (*entity.DashboardSummary, error) {
	txs, err := s.repos.Transactions.List(ctx, repository.TransactionFilter{})
	if err != nil {
		return nil, s.fail("DashboardSummary", err)
	}
	summary := entity.SummarizeTransactions(txs)
	if summary.EmployeeCount, err = s.repos.Employees.CountActive(ctx); err != nil {
		return nil, s.fail("DashboardSummary", err)
	}
	if summary.LowStockItemsCount, err = s.repos.Inventory.CountLowStock(ctx); err != nil {
		return nil, s.fail("DashboardSummary", err)
	}
	if summary.PendingInvoicesCount, err = s.repos.Invoices.CountByStatus(ctx, entity.InvoiceStatusPending); err != nil {
		return nil, s.fail("DashboardSummary", err)
	}
	return summary, nil
}

// createRow prepara una copia de v y la persiste; v no se modifica.
func createRow[T any](ctx context.Context, s *Store, op string, v *T, create func(context.Context, *T) error) (*T, error) {
	c := entity.Copy(v)
	if err := entity.Prepare(c); err != nil {
		return nil, s.fail(op, err)
	}
	if err := create(ctx, c); err != nil {
		return nil, s.fail(op, err)
	}
	return c, nil
}

// updateRow prepara y actualiza una copia de v; v se reemplaza solo si la fila existía.
func updateRow[T any](ctx context.Context, s *Store, op string, v *T, update func(context.Context, *T) (bool, error)) (bool, error) {
	c := entity.Copy(v)
	if err := entity.Prepare(c); err != nil {
		return false, s.fail(op, err)
	}
	ok, err := update(ctx, c)
	if err != nil {
		return false, s.fail(op, err)
	}
	if ok {
		*v = *c
	}
	return ok, nil
}
