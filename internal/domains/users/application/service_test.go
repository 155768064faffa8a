package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockroom/stockroom-api/internal/domains/users/domain"
	"github.com/stockroom/stockroom-api/internal/domains/users/ports"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	copy := *user
	f.users[user.Username] = &copy
	return &copy, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := f.users[username]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeUserRepo) Delete(_ context.Context, username string) error {
	if _, ok := f.users[username]; !ok {
		return ports.ErrNotFound
	}
	delete(f.users, username)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	var list []*domain.User
	for _, u := range f.users {
		copy := *u
		list = append(list, &copy)
	}
	return list, nil
}

type fakeSessionStore struct {
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]string{}}
}

func (f *fakeSessionStore) Save(_ context.Context, username, token string) error {
	f.sessions[username] = token
	return nil
}

func (f *fakeSessionStore) Delete(_ context.Context, username string) error {
	delete(f.sessions, username)
	return nil
}

func TestCreateAndLoginUser(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	svc := NewService(repo, sessions)

	user, err := domain.NewUser(1, "alice", "correct horse battery")
	require.NoError(t, err)
	created, err := svc.CreateUser(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, "alice", created.Username)
	require.NotEqual(t, "correct horse battery", created.PasswordHash)

	token, err := svc.Login(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, token, sessions.sessions["alice"])
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, newFakeSessionStore())

	user, err := domain.NewUser(1, "alice", "correct horse battery")
	require.NoError(t, err)
	_, err = svc.CreateUser(context.Background(), user)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice", "wrong password!")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewService(newFakeUserRepo(), newFakeSessionStore())

	_, err := svc.Login(context.Background(), "missing", "whatever pass")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, newFakeSessionStore())

	user, err := domain.NewUser(1, "bob", "correct horse battery")
	require.NoError(t, err)
	user.Deactivate()
	_, err = svc.CreateUser(context.Background(), user)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "bob", "correct horse battery")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestUpdate_KeepsExistingHashWhenPasswordOmitted(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, newFakeSessionStore())

	user, err := domain.NewUser(7, "carol", "correct horse battery")
	require.NoError(t, err)
	created, err := svc.CreateUser(context.Background(), user)
	require.NoError(t, err)

	updated := &domain.User{Active: true}
	require.NoError(t, updated.UpdateProfile("Carol", "Smith", "carol@example.com", ""))
	saved, err := svc.Update(context.Background(), "carol", updated)
	require.NoError(t, err)
	require.Equal(t, created.PasswordHash, saved.PasswordHash)
	require.Equal(t, created.ID, saved.ID)
	require.True(t, saved.CheckPassword("correct horse battery"))
}

func TestLogout_RemovesSession(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	svc := NewService(repo, sessions)

	user, err := domain.NewUser(1, "alice", "correct horse battery")
	require.NoError(t, err)
	_, err = svc.CreateUser(context.Background(), user)
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)

	svc.Logout(context.Background(), "alice")
	require.Empty(t, sessions.sessions["alice"])
}
