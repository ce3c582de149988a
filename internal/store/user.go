// Package store provides database access methods for all Inkwell entities.
// Each store struct wraps a lazily-connected database handle and exposes
// typed query methods. Stores surface connection failures as errors wrapping
// database.ErrUnavailable; the service layer decides whether reads degrade.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"inkwell/internal/database"
	"inkwell/internal/models"
)

// UserStore handles all user-related database operations. Accounts come
// from an external identity provider, so there is no password to store:
// users are created and refreshed through Upsert on each sign-in.
type UserStore struct {
	db *database.Handle

	// ownerOpenID is the configured site-owner identity. A user signing in
	// with this open id is promoted to admin unless the upsert carries an
	// explicit role.
	ownerOpenID string
}

// NewUserStore creates a new UserStore. ownerOpenID may be empty, in which
// case no automatic promotion happens.
func NewUserStore(db *database.Handle, ownerOpenID string) *UserStore {
	return &UserStore{db: db, ownerOpenID: ownerOpenID}
}

const userColumns = `id, open_id, name, email, login_method, role, last_signed_in, created_at, updated_at`

// scanUser scans a row into a User struct.
func scanUser(scanner interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := scanner.Scan(
		&u.ID, &u.OpenID, &u.Name, &u.Email, &u.LoginMethod,
		&u.Role, &u.LastSignedIn, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertUser carries the fields refreshed on each sign-in. Nil fields leave
// the stored value untouched on an existing row.
type UpsertUser struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *models.Role
	LastSignedIn *time.Time
}

// Upsert inserts or refreshes a user keyed by open id and returns the stored
// row. Last sign-in defaults to the current time when not supplied. The
// operation is idempotent: repeating it with the same input leaves the row
// unchanged apart from timestamps.
func (s *UserStore) Upsert(u UpsertUser) (*models.User, error) {
	if u.OpenID == "" {
		return nil, fmt.Errorf("upsert user: open id is required")
	}

	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	role := u.Role
	if role == nil && s.ownerOpenID != "" && u.OpenID == s.ownerOpenID {
		admin := models.RoleAdmin
		role = &admin
	}

	signedIn := u.LastSignedIn
	if signedIn == nil {
		now := time.Now()
		signedIn = &now
	}

	user, err := scanUser(db.QueryRow(`
		INSERT INTO users (open_id, name, email, login_method, role, last_signed_in)
		VALUES ($1, $2, $3, $4, COALESCE($5, 'member'), $6)
		ON CONFLICT (open_id) DO UPDATE SET
			name           = COALESCE($2, users.name),
			email          = COALESCE($3, users.email),
			login_method   = COALESCE($4, users.login_method),
			role           = COALESCE($5, users.role),
			last_signed_in = COALESCE($6, users.last_signed_in),
			updated_at     = NOW()
		RETURNING `+userColumns,
		u.OpenID, u.Name, u.Email, u.LoginMethod, role, signedIn,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return user, nil
}

// FindByOpenID retrieves a user by their external identity token.
// Returns nil if not found.
func (s *UserStore) FindByOpenID(openID string) (*models.User, error) {
	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	u, err := scanUser(db.QueryRow(`SELECT `+userColumns+` FROM users WHERE open_id = $1`, openID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by open id: %w", err)
	}
	return u, nil
}

// FindByID retrieves a user by id. Returns nil if not found.
func (s *UserStore) FindByID(id int64) (*models.User, error) {
	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	u, err := scanUser(db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}
