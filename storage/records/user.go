// Package filerepos implements the core repository interfaces on top of the
// delimited-text table store. Every operation re-reads its full table; a
// mutation rewrites the whole table. Rows with fewer fields than the schema
// requires are malformed and silently skipped on reads.
package filerepos

import (
	"github.com/motembo/campus/core/user"
	"github.com/motembo/campus/storage/table"
)

// users table: username, password, role
const userTable = "users"

type userRepository struct {
	store *table.Store
}

func NewUserRepository(store *table.Store) user.Repository {
	return &userRepository{store: store}
}

func (repo *userRepository) query() ([]user.User, error) {
	rows, err := repo.store.Read(userTable)
	if err != nil {
		return nil, err
	}
	users := make([]user.User, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		users = append(users, user.User{
			Username: row[0],
			Password: row[1],
			Role:     row[2],
		})
	}
	return users, nil
}

func (repo *userRepository) CheckUsernameUniqueness(username string) error {
	users, err := repo.query()
	if err != nil {
		return err
	}
	for _, usr := range users {
		if usr.Username == username {
			return user.ErrUsernameExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	if err := repo.store.Append(userTable, []string{usr.Username, usr.Password, usr.Role}); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	return repo.query()
}

func (repo *userRepository) GetUserByUsername(username string) (user.User, error) {
	users, err := repo.query()
	if err != nil {
		return user.User{}, err
	}
	for _, usr := range users {
		if usr.Username == username {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) DeleteUser(username string) error {
	rows, err := repo.store.Read(userTable)
	if err != nil {
		return err
	}
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) >= 1 && row[0] == username {
			continue
		}
		kept = append(kept, row)
	}
	return repo.store.Write(userTable, kept)
}
