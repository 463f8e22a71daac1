package app

import (
	"errors"
	"testing"

	"mural-api/internal/model"
)

// failingUserStore fails creation for one specific email.
type failingUserStore struct {
	*memUserStore
	failEmail string
}

func (s *failingUserStore) Create(user *model.User) error {
	if user.Email == s.failEmail {
		return errors.New("store write failed")
	}
	return s.memUserStore.Create(user)
}

func TestSeederProvisionsAllAccounts(t *testing.T) {
	t.Parallel()

	store := newMemUserStore()
	seeder := NewSeeder(newTestAuthService(store), DefaultSeedAccounts)
	seeder.Provision()

	if len(store.users) != len(DefaultSeedAccounts) {
		t.Fatalf("%d accounts provisioned, want %d", len(store.users), len(DefaultSeedAccounts))
	}
}

func TestSeederIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newMemUserStore()
	auth := newTestAuthService(store)

	NewSeeder(auth, DefaultSeedAccounts).Provision()
	// A fresh Seeder simulates a second process start against the same
	// store; existing rows must be left untouched.
	NewSeeder(auth, DefaultSeedAccounts).Provision()

	if len(store.users) != len(DefaultSeedAccounts) {
		t.Fatalf("%d accounts after reseeding, want %d", len(store.users), len(DefaultSeedAccounts))
	}
}

func TestSeederProvisionRunsOncePerProcess(t *testing.T) {
	t.Parallel()

	store := newMemUserStore()
	seeder := NewSeeder(newTestAuthService(store), DefaultSeedAccounts)
	seeder.Provision()
	seeder.Provision()

	if len(store.users) != len(DefaultSeedAccounts) {
		t.Fatalf("%d accounts after double Provision, want %d", len(store.users), len(DefaultSeedAccounts))
	}
}

func TestSeederFailureIsIsolated(t *testing.T) {
	t.Parallel()

	store := &failingUserStore{
		memUserStore: newMemUserStore(),
		failEmail:    normalizeEmail(DefaultSeedAccounts[0].Email),
	}
	seeder := NewSeeder(newTestAuthService(store), DefaultSeedAccounts)
	seeder.Provision()

	if len(store.users) != len(DefaultSeedAccounts)-1 {
		t.Fatalf("%d accounts provisioned, want %d despite one failure",
			len(store.users), len(DefaultSeedAccounts)-1)
	}
}
