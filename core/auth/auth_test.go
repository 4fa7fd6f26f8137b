package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motembo/campus/core/auth"
	"github.com/motembo/campus/core/user"
	filerepos "github.com/motembo/campus/storage/records"
	testutil "github.com/motembo/campus/tests"
)

func TestAuthenticate(t *testing.T) {
	store := testutil.NewStore(t)
	repo := filerepos.NewUserRepository(store)
	svc := auth.NewService(user.NewService(repo))

	testutil.CreateUser(t, repo, "alice", "secret", user.RoleFaculty)

	sess, err := svc.Authenticate("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, auth.Session{Username: "alice", Role: user.RoleFaculty}, sess)

	// username lookup is case-insensitive, credentials are exact
	sess, err = svc.Authenticate("  ALICE ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Username)
}

func TestAuthenticateFailureIsUniform(t *testing.T) {
	store := testutil.NewStore(t)
	repo := filerepos.NewUserRepository(store)
	svc := auth.NewService(user.NewService(repo))

	testutil.CreateUser(t, repo, "alice", "secret", user.RoleStudent)

	// a wrong password and an unknown username yield the same error kind,
	// so a failed login never reveals which usernames exist
	_, wrongPwd := svc.Authenticate("alice", "nope")
	_, unknown := svc.Authenticate("ghost", "secret")
	assert.ErrorIs(t, wrongPwd, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, auth.ErrInvalidCredentials)
}

func TestCanMessage(t *testing.T) {
	tests := []struct {
		sender    string
		recipient string
		want      bool
	}{
		{user.RoleStudent, user.RoleFaculty, true},
		{user.RoleStudent, user.RoleAdmin, true},
		{user.RoleStudent, user.RoleStudent, false},
		{user.RoleFaculty, user.RoleStudent, true},
		{user.RoleFaculty, user.RoleAdmin, true},
		{user.RoleFaculty, user.RoleFaculty, false},
		{user.RoleAdmin, user.RoleStudent, true},
		{user.RoleAdmin, user.RoleFaculty, true},
		{user.RoleAdmin, user.RoleAdmin, true},
		{"", user.RoleAdmin, false},
	}
	for _, tt := range tests {
		t.Run(tt.sender+"->"+tt.recipient, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.CanMessage(tt.sender, tt.recipient))
		})
	}
}

func TestManagementGates(t *testing.T) {
	assert.True(t, auth.CanManageUsers(user.RoleAdmin))
	assert.False(t, auth.CanManageUsers(user.RoleFaculty))
	assert.False(t, auth.CanManageUsers(user.RoleStudent))

	assert.True(t, auth.CanManageGrades(user.RoleAdmin))
	assert.True(t, auth.CanManageGrades(user.RoleFaculty))
	assert.False(t, auth.CanManageGrades(user.RoleStudent))

	assert.True(t, auth.CanManageAttendance(user.RoleFaculty))
	assert.False(t, auth.CanManageAttendance(user.RoleAdmin))
	assert.False(t, auth.CanManageAttendance(user.RoleStudent))
}
