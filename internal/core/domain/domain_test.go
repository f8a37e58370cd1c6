package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseRole("Admin")
	require.ErrorIs(t, err, ErrInvalidRole)
	_, err = ParseRole("")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestRole_CanLogTime(t *testing.T) {
	assert.True(t, RoleAdmin.CanLogTime())
	assert.True(t, RoleFreelancer.CanLogTime())
	assert.False(t, RoleClient.CanLogTime())
	assert.False(t, Role("guest").CanLogTime())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 15, d.Day())

	for _, bad := range []string{"2024-02-30", "2024-13-01", "15/03/2024", "", "2024-3-5"} {
		_, err := ParseDate(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, ErrValidation), bad)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "date", ve.Field)
	}
}

func TestUser_Validate(t *testing.T) {
	id := int64(1)

	require.NoError(t, User{Username: "a", Role: RoleAdmin}.Validate())
	require.NoError(t, User{Username: "c", Role: RoleClient, ClientID: &id}.Validate())

	require.ErrorIs(t, User{Username: "c", Role: RoleClient}.Validate(), ErrValidation)
	require.ErrorIs(t, User{Username: "f", Role: RoleFreelancer, ClientID: &id}.Validate(), ErrValidation)
	require.ErrorIs(t, User{Username: "x", Role: "root"}.Validate(), ErrInvalidRole)
	require.ErrorIs(t, User{Role: RoleAdmin}.Validate(), ErrValidation)
}

func TestSessionErrorsAreUnauthenticated(t *testing.T) {
	for _, err := range []error{ErrSessionMissing, ErrSessionExpired, ErrSessionTampered, ErrSessionRevoked} {
		assert.ErrorIs(t, err, ErrUnauthenticated)
	}
	assert.NotErrorIs(t, ErrSessionExpired, ErrSessionTampered)
}

func TestParseStatuses(t *testing.T) {
	s, err := ParseProjectStatus("on-hold")
	require.NoError(t, err)
	assert.Equal(t, ProjectOnHold, s)
	_, err = ParseProjectStatus("paused")
	require.ErrorIs(t, err, ErrValidation)

	i, err := ParseInvoiceStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, InvoicePaid, i)
	_, err = ParseInvoiceStatus("void")
	require.ErrorIs(t, err, ErrValidation)
}
