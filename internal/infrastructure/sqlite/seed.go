package sqlite

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
)

// Credenciales del administrador inicial. La contraseña debe cambiarse tras el primer acceso.
const (
	seedAdminUsername = "admin"
	seedAdminFullName = "Administrateur Local"
	seedAdminEmail    = "admin@blackwoods.local"
)

var defaultSuppliers = []entity.Supplier{
	{Name: "Boucherie Jackland", ContactPerson: "Jack Landry", Phone: "555-0101", Email: "contact@jackland.com", Address: "123 rue de la Viande"},
	{Name: "Molienda Hermandad", ContactPerson: "Maria Hernandez", Phone: "555-0102", Email: "info@molienda.com", Address: "456 avenue du Café"},
	{Name: "Woods Farm", ContactPerson: "Tom Woods", Phone: "555-0103", Email: "farm@woods.com", Address: "789 chemin Rural"},
	{Name: "Theronis Harvest", ContactPerson: "Elena Theronis", Phone: "555-0104", Email: "contact@theronis.com", Address: "321 boulevard des Légumes"},
	{Name: "Black Woods", ContactPerson: "John Black", Phone: "555-0105", Email: "info@blackwoods.com", Address: "654 rue du Commerce"},
}

// seedDefaults crea el administrador y los proveedores por defecto solo si sus tablas están vacías.
func seedDefaults(ctx context.Context, repos *Repos, adminPassword string) (seeded bool, err error) {
	users, err := repos.Users.Count(ctx)
	if err != nil {
		return false, err
	}
	if users == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return false, fmt.Errorf("hash de contraseña: %w", err)
		}
		admin := &entity.User{
			Username:     seedAdminUsername,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			FullName:     seedAdminFullName,
			Email:        seedAdminEmail,
			IsActive:     true,
		}
		if err := repos.Users.Create(ctx, admin); err != nil {
			return false, fmt.Errorf("crear administrador: %w", err)
		}
		seeded = true
	}

	suppliers, err := repos.Suppliers.Count(ctx)
	if err != nil {
		return seeded, err
	}
	if suppliers == 0 {
		for _, s := range defaultSuppliers {
			s := s
			s.IsActive = true
			if err := repos.Suppliers.Create(ctx, &s); err != nil {
				return seeded, fmt.Errorf("crear proveedor %s: %w", s.Name, err)
			}
		}
		seeded = true
	}
	return seeded, nil
}
