package session

import (
	"context"
	"path/filepath"
	"testing"

	"social_network/internal/auth"
	"social_network/internal/domain"
	"social_network/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectory(t *testing.T) *store.UserDirectory {
	t.Helper()
	dir := store.NewUserDirectory()
	hash, err := auth.HashPassword("correct")
	require.NoError(t, err)
	dir.Create("alice", hash, "pic")
	return dir
}

func TestStore_Login(t *testing.T) {
	ctx := context.Background()
	dir := newDirectory(t)
	s := NewStore(auth.NewDirectoryAuthenticator(dir), &MemoryPersister{})

	_, err := s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, ok := s.Current()
	assert.False(t, ok, "failed login must leave the session unset")

	u, err := s.Login(ctx, "alice", "correct")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", cur.Username)

	_, err = s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	cur, ok = s.Current()
	require.True(t, ok, "failed login must not clear an existing session")
	assert.Equal(t, "alice", cur.Username)
}

func TestStore_LoginRejectsAdminPrincipal(t *testing.T) {
	admin, err := auth.NewStaticAuthenticator("admin", "admin")
	require.NoError(t, err)
	s := NewStore(admin, &MemoryPersister{})

	_, err = s.Login(context.Background(), "admin", "admin")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestStore_Logoff(t *testing.T) {
	ctx := context.Background()
	p := &MemoryPersister{}
	s := NewStore(auth.NewDirectoryAuthenticator(newDirectory(t)), p)
	_, err := s.Login(ctx, "alice", "correct")
	require.NoError(t, err)

	require.NoError(t, s.Logoff(ctx))
	_, ok := s.Current()
	assert.False(t, ok)
	_, err = p.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, s.Logoff(ctx), "logoff without a session is fine")
}

func TestStore_DeletedUserStaysLoggedIn(t *testing.T) {
	ctx := context.Background()
	dir := newDirectory(t)
	s := NewStore(auth.NewDirectoryAuthenticator(dir), &MemoryPersister{})
	_, err := s.Login(ctx, "alice", "correct")
	require.NoError(t, err)

	require.True(t, dir.Delete(1))
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", cur.Username)
}

func TestStore_RestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	dir := newDirectory(t)

	first := NewStore(auth.NewDirectoryAuthenticator(dir), NewFilePersister(path))
	_, err := first.Login(ctx, "alice", "correct")
	require.NoError(t, err)

	// Simulated restart with an empty directory: no re-validation happens
	restarted := NewStore(auth.NewDirectoryAuthenticator(store.NewUserDirectory()), NewFilePersister(path))
	require.NoError(t, restarted.Restore(ctx))
	cur, ok := restarted.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", cur.Username)
	assert.Equal(t, 1, cur.ID)
}

func TestStore_RestoreWithoutSnapshot(t *testing.T) {
	s := NewStore(auth.NewDirectoryAuthenticator(store.NewUserDirectory()), NewFilePersister(filepath.Join(t.TempDir(), "none.json")))
	require.NoError(t, s.Restore(context.Background()))
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestRedisPersister(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	p := NewRedisPersister(rdb, "currentUser")

	_, err := p.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, p.Save(ctx, domain.User{ID: 7, Username: "alice", ProfilePicID: "pic"}))
	assert.True(t, mr.Exists("currentUser"))

	u, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, u.ID)
	assert.Equal(t, "alice", u.Username)

	require.NoError(t, p.Clear(ctx))
	assert.False(t, mr.Exists("currentUser"))
}

func TestRedisPersister_RestoreAcrossStores(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	first := NewStore(auth.NewDirectoryAuthenticator(newDirectory(t)), NewRedisPersister(rdb, "currentUser"))
	_, err := first.Login(ctx, "alice", "correct")
	require.NoError(t, err)

	second := NewStore(auth.NewDirectoryAuthenticator(store.NewUserDirectory()), NewRedisPersister(rdb, "currentUser"))
	require.NoError(t, second.Restore(ctx))
	cur, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", cur.Username)
}
