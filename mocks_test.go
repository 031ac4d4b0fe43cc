package users_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	users "github.com/dcgiraldo/users-api"
)

// MockUserStore implements users.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByUsernameOrEmail(ctx context.Context, username, email string) (*users.User, error) {
	args := m.Called(ctx, username, email)
	var user *users.User
	if v := args.Get(0); v != nil {
		user = v.(*users.User)
	}
	return user, args.Error(1)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	var user *users.User
	if v := args.Get(0); v != nil {
		user = v.(*users.User)
	}
	return user, args.Error(1)
}

func (m *MockUserStore) FindByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	var user *users.User
	if v := args.Get(0); v != nil {
		user = v.(*users.User)
	}
	return user, args.Error(1)
}

func (m *MockUserStore) Insert(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Update(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) TrackSuccessfulLogin(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// failingHasher simulates a crypto collaborator fault.
type failingHasher struct {
	err error
}

func (f failingHasher) Hash(string) (string, error) {
	return "", f.err
}

func (f failingHasher) Verify(string, string) (bool, error) {
	return false, f.err
}

type testConfig struct {
	key    string
	issuer string
	hours  int
	cost   int
}

func (c testConfig) GetSigningKey() string { return c.key }
func (c testConfig) GetIssuer() string { return c.issuer }
func (c testConfig) GetTokenExpiration() int { return c.hours }
func (c testConfig) GetBcryptCost() int { return c.cost }

func newTestConfig() testConfig {
	return testConfig{key: "test-signing-key", issuer: "users-api-test"}
}
