package mocks

import (
	"errors"

	"github.com/parkerross/totodo-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher and auth.PasswordVerifier
// for testing.
type MockPasswordHasher struct {
	// ShouldSucceed determines whether Compare succeeds
	ShouldSucceed bool

	// HashFn allows custom hashing logic in tests
	HashFn func(password string) (string, error)

	// HashErr is returned by Hash when HashFn is unset
	HashErr error

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

// Hash implements the auth.PasswordHasher interface. The default fake hash
// is recognizable in assertions without involving bcrypt.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
