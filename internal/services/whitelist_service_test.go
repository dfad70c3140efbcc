package services

import (
	"testing"

	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWhitelistFixture() (WhitelistService, *fakeWhitelistStore) {
	store := newFakeWhitelistStore()
	return NewWhitelistService(store), store
}

func TestWhitelistAdd(t *testing.T) {
	t.Run("stores the email lower-cased and active", func(t *testing.T) {
		svc, _ := newWhitelistFixture()

		entry, err := svc.Add(adminActor, &dto.WhitelistAddRequest{
			Email: "Alice@Example.COM",
			Name:  "Alice",
			Unit:  "B-12",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", entry.Email)
		assert.True(t, entry.IsActive)
	})

	t.Run("duplicate email conflicts regardless of case", func(t *testing.T) {
		svc, _ := newWhitelistFixture()

		_, err := svc.Add(adminActor, &dto.WhitelistAddRequest{Email: "alice@example.com"})
		require.NoError(t, err)

		_, err = svc.Add(adminActor, &dto.WhitelistAddRequest{Email: "ALICE@example.com"})
		assertCode(t, err, apperrors.CodeConflict)
	})

	t.Run("admin only", func(t *testing.T) {
		svc, _ := newWhitelistFixture()

		_, err := svc.Add(residentActor, &dto.WhitelistAddRequest{Email: "alice@example.com"})
		assertCode(t, err, apperrors.CodeForbidden)

		_, err = svc.Add(nil, &dto.WhitelistAddRequest{Email: "alice@example.com"})
		assertCode(t, err, apperrors.CodeUnauthorized)
	})
}

func TestWhitelistRemove(t *testing.T) {
	svc, _ := newWhitelistFixture()
	_, err := svc.Add(adminActor, &dto.WhitelistAddRequest{Email: "alice@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(adminActor, "Alice@Example.com"))

	err = svc.Remove(adminActor, "alice@example.com")
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestWhitelistSetActive(t *testing.T) {
	svc, _ := newWhitelistFixture()
	_, err := svc.Add(adminActor, &dto.WhitelistAddRequest{Email: "alice@example.com"})
	require.NoError(t, err)

	entry, err := svc.SetActive(adminActor, "alice@example.com", false)
	require.NoError(t, err)
	assert.False(t, entry.IsActive)

	entry, err = svc.SetActive(adminActor, "alice@example.com", true)
	require.NoError(t, err)
	assert.True(t, entry.IsActive)

	_, err = svc.SetActive(adminActor, "nobody@example.com", true)
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestWhitelistList(t *testing.T) {
	svc, _ := newWhitelistFixture()
	for _, email := range []string{"carol@example.com", "alice@example.com", "bob@example.com"} {
		_, err := svc.Add(adminActor, &dto.WhitelistAddRequest{Email: email})
		require.NoError(t, err)
	}

	entries, err := svc.List(adminActor)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "alice@example.com", entries[0].Email)

	_, err = svc.List(residentActor)
	assertCode(t, err, apperrors.CodeForbidden)
}
