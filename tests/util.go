package testutil

import (
	"testing"

	"github.com/motembo/campus/core/user"
	"github.com/motembo/campus/storage/table"
)

// NewStore returns a table store over a fresh temp dir, using the default
// table layout (.csv files, comma-delimited).
func NewStore(t *testing.T) *table.Store {
	t.Helper()
	return table.NewStore(t.TempDir(), ".csv", ",")
}

func CreateUser(t *testing.T, repo user.Repository, uname, pwd, role string) user.User {
	t.Helper()
	usr, err := repo.CreateUser(user.User{Username: uname, Password: pwd, Role: role})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

// AppendRow seeds one raw row, bypassing repository validation.
func AppendRow(t *testing.T, store *table.Store, name string, row ...string) {
	t.Helper()
	if err := store.Append(name, row); err != nil {
		t.Fatalf("Append(%s) failed: %v", name, err)
	}
}
