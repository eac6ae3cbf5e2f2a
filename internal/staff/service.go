package staff

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/elitebarber/barbershop-backend/internal/auth"
)

type Service interface {
	// Login verifies credentials and returns the staff member.
	// All credential failures collapse into ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*Staff, error)

	GetByID(ctx context.Context, id string) (*Staff, error)
	Register(ctx context.Context, username, password, displayName string) (*Staff, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (*Staff, error) {
	member, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(member.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Last-login bookkeeping must not fail the login.
	if err := s.repo.UpdateLastLogin(ctx, member.ID, time.Now().UTC()); err != nil {
		log.Printf("failed to update last login for %s: %v", member.ID, err)
	}

	return member, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Staff, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Register(ctx context.Context, username, password, displayName string) (*Staff, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < 8 {
		return nil, ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	member := &Staff{
		Username:     username,
		PasswordHash: hash,
		DisplayName:  displayName,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}
