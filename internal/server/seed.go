package server

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/eapd/modules/apds"
	"github.com/dmitrymomot/eapd/modules/auth"
	"github.com/dmitrymomot/eapd/pkg/apd"
	"github.com/dmitrymomot/eapd/pkg/apiclient"
)

// Seed is the startup data of a development server:
//
//	users:
//	  - username: jane@example.com
//	    password: secret
//	    name: Jane
//	    state: ak
//	apds:
//	  ak:
//	    - id: "1"
//	      years: [2024, 2025]
//	      status: in review
type Seed struct {
	Users []SeedUser                 `yaml:"users"`
	APDs  map[string][]apd.Document `yaml:"apds"`
}

type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Phone    string `yaml:"phone"`
	State    string `yaml:"state"`
}

// ReadSeed decodes a seed document.
func ReadSeed(r io.Reader) (Seed, error) {
	var s Seed
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return s, nil
}

// Apply registers the seed users and documents. Users that already exist
// are skipped, so a persistent store can be seeded on every start.
func (s Seed) Apply(ctx context.Context, svc *auth.Service, repo *apds.MemoryRepository) error {
	for _, u := range s.Users {
		_, err := svc.Register(ctx, u.Username, u.Password, apiclient.Profile{
			Email:    u.Email,
			Name:     u.Name,
			Position: u.Position,
			Phone:    u.Phone,
			State:    u.State,
		})
		if err != nil && !errors.Is(err, auth.ErrUserExists) {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
	}
	for state, docs := range s.APDs {
		for i := range docs {
			docs[i].Status = apd.ParseStatus(string(docs[i].Status))
		}
		repo.Add(state, docs...)
	}
	return nil
}
