package users

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// UserStore is the storage collaborator the pipelines consume. Lookups
// return (nil, nil) when no row matches; a non-nil error is a backend fault
// and the pipelines translate it into a generic internal response.
type UserStore interface {
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Insert(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, user *User) error
	TrackSuccessfulLogin(ctx context.Context, user *User) error
}

// BunUserStore implements UserStore over a bun database handle.
type BunUserStore struct {
	db *bun.DB
}

var _ UserStore = (*BunUserStore)(nil)

// NewUserStore creates a UserStore backed by db.
func NewUserStore(db *bun.DB) *BunUserStore {
	return &BunUserStore{db: db}
}

func (s *BunUserStore) FindByUsernameOrEmail(ctx context.Context, username, email string) (*User, error) {
	user := new(User)
	err := s.db.NewSelect().
		Model(user).
		Where("username = ?", username).
		WhereOr("email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *BunUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	user := new(User)
	err := s.db.NewSelect().
		Model(user).
		Where("email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *BunUserStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	user := new(User)
	err := s.db.NewSelect().
		Model(user).
		Where("username = ?", username).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *BunUserStore) Insert(ctx context.Context, user *User) error {
	now := time.Now()
	if user.CreatedAt == nil {
		user.CreatedAt = &now
	}
	if user.UpdatedAt == nil {
		user.UpdatedAt = &now
	}
	if user.LastSignInAt == nil {
		user.LastSignInAt = &now
	}

	_, err := s.db.NewInsert().Model(user).Exec(ctx)
	return err
}

func (s *BunUserStore) Update(ctx context.Context, user *User) error {
	now := time.Now()
	user.UpdatedAt = &now

	_, err := s.db.NewUpdate().
		Model(user).
		WherePK().
		Exec(ctx)
	return err
}

func (s *BunUserStore) Delete(ctx context.Context, user *User) error {
	_, err := s.db.NewDelete().
		Model(user).
		WherePK().
		Exec(ctx)
	return err
}

func (s *BunUserStore) TrackSuccessfulLogin(ctx context.Context, user *User) error {
	now := time.Now()
	user.LastSignInAt = &now

	_, err := s.db.NewUpdate().
		Model(user).
		Column("last_sign_in_at").
		WherePK().
		Exec(ctx)
	return err
}
