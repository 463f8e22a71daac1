package app

import (
	"errors"
	"log"
	"sync"
)

// SeedAccount is an account provisioned automatically at startup.
type SeedAccount struct {
	Name     string
	Email    string
	Password string
}

// DefaultSeedAccounts is the fixed account set expected to exist in
// every deployment. Passwords here are only used when the account is
// first created; existing rows are never touched.
var DefaultSeedAccounts = []SeedAccount{
	{
		Name:     "Victor Sobral de Moraes",
		Email:    "v.moraes@ba.estudante.senai.br",
		Password: "q1w2e3r4t5*",
	},
	{
		Name:     "Sara Melo",
		Email:    "sara.m.jesus@ba.estudante.senai.br",
		Password: "saracapricorniana",
	},
	{
		Name:     "Fernanda Dantas Moreira Cruz",
		Email:    "fernanda.d.cruz@ba.estudante.senai.br",
		Password: "fernadagloss",
	},
}

// Seeder provisions the fixed accounts exactly once per process. The
// sync.Once guard plus create-if-absent semantics make it safe to call
// from concurrently cold-started request handlers.
type Seeder struct {
	auth     *AuthService
	accounts []SeedAccount
	once     sync.Once
}

func NewSeeder(auth *AuthService, accounts []SeedAccount) *Seeder {
	return &Seeder{auth: auth, accounts: accounts}
}

// Provision attempts each seed account independently; one failure never
// aborts the others.
func (s *Seeder) Provision() {
	s.once.Do(func() {
		for _, acc := range s.accounts {
			s.provisionOne(acc)
		}
	})
}

func (s *Seeder) provisionOne(acc SeedAccount) {
	existing, err := s.auth.users.GetByEmail(normalizeEmail(acc.Email))
	if err != nil {
		log.Printf("seed: lookup %s failed: %v", acc.Email, err)
		return
	}
	if existing != nil {
		log.Printf("seed: account already exists: %s", acc.Name)
		return
	}

	if _, err := s.auth.Register(RegisterInput{
		Name:     acc.Name,
		Email:    acc.Email,
		Password: acc.Password,
	}); err != nil {
		// A racing instance may have won the insert; that still counts
		// as provisioned.
		if errors.Is(err, ErrEmailExists) {
			log.Printf("seed: account already exists: %s", acc.Name)
			return
		}
		log.Printf("seed: create %s failed: %v", acc.Email, err)
		return
	}
	log.Printf("seed: account created: %s", acc.Name)
}
