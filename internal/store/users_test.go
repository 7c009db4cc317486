package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDirectory_CreateAssignsIDs(t *testing.T) {
	d := NewUserDirectory()
	a := d.Create("alice", "h1", "pic1")
	b := d.Create("bob", "h2", "pic1")

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, "pic1", b.ProfilePicID)
	assert.Equal(t, 2, d.Len())
}

func TestUserDirectory_IDsNotReusedAfterDelete(t *testing.T) {
	d := NewUserDirectory()
	d.Create("alice", "h", "")
	b := d.Create("bob", "h", "")
	require.True(t, d.Delete(1))

	c := d.Create("carol", "h", "")
	assert.NotEqual(t, b.ID, c.ID)
	assert.Equal(t, 3, c.ID)
}

func TestUserDirectory_Delete(t *testing.T) {
	d := NewUserDirectory()
	d.Create("alice", "h", "")
	d.Create("bob", "h", "")

	assert.False(t, d.Delete(42))
	assert.True(t, d.Delete(1))
	assert.False(t, d.Delete(1))

	users := d.List()
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].Username)

	_, ok := d.Get(1)
	assert.False(t, ok)
	u, ok := d.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "bob", u.Username)
}

func TestUserDirectory_DuplicateUsernamesKeepOrder(t *testing.T) {
	d := NewUserDirectory()
	d.Create("alice", "first", "")
	d.Create("alice", "second", "")

	users := d.List()
	require.Len(t, users, 2)
	assert.Equal(t, "first", users[0].Password)
	assert.Equal(t, "second", users[1].Password)
}
