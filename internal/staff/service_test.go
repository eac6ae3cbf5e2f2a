package staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitebarber/barbershop-backend/internal/auth"
)

type fakeRepo struct {
	members    map[string]*Staff
	lastLogins map[string]time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		members:    map[string]*Staff{},
		lastLogins: map[string]time.Time{},
	}
}

func (r *fakeRepo) GetByUsername(_ context.Context, username string) (*Staff, error) {
	if m, ok := r.members[username]; ok {
		return m, nil
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Staff, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, s *Staff) error {
	if _, ok := r.members[s.Username]; ok {
		return ErrUsernameTaken
	}
	s.ID = "staff-" + s.Username
	r.members[s.Username] = s
	return nil
}

func (r *fakeRepo) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	r.lastLogins[id] = t
	return nil
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewBcryptPasswordHasherWithCost(4)

	repo := newFakeRepo()
	svc := NewService(repo, hasher)

	_, err := svc.Register(ctx, "admin", "admin12345", "Administrador")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		member, err := svc.Login(ctx, "admin", "admin12345")
		require.NoError(t, err)
		assert.Equal(t, "admin", member.Username)
		assert.NotEmpty(t, repo.lastLogins[member.ID])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username looks identical to wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo(), auth.NewBcryptPasswordHasherWithCost(4))

	t.Run("stores a hash, not the password", func(t *testing.T) {
		member, err := svc.Register(ctx, "maria", "long-enough-pass", "Maria")
		require.NoError(t, err)
		assert.NotEqual(t, "long-enough-pass", member.PasswordHash)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := svc.Register(ctx, "bob", "short", "Bob")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects blank usernames", func(t *testing.T) {
		_, err := svc.Register(ctx, "   ", "long-enough-pass", "Blank")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, "maria", "another-password", "Maria 2")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}
