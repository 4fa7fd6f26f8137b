package user

import (
	"errors"

	"github.com/motembo/campus/core"
)

var (
	// errors
	ErrNotFound       = errors.New("user not found")
	ErrUsernameExists = errors.New("a user with this username already exists")
	ErrInvalidRole    = errors.New("invalid role")
)

type (
	Repository interface {
		CheckUsernameUniqueness(username string) error
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByUsername(username string) (User, error)
		// DeleteUser removes the matching account row; it is a no-op when
		// the username is unknown. Grade, attendance and message rows kept
		// under the username are left untouched.
		DeleteUser(username string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckUniqueness(uname string) error {
	if err := svc.repo.CheckUsernameUniqueness(uname); err != nil {
		if errors.Is(err, ErrUsernameExists) {
			return core.NewValidationError(err, core.FieldError{Field: "username", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Create validates nu and persists the account. The username is unique
// across all accounts; a duplicate fails with ErrUsernameExists.
func (svc *Service) Create(nu NewUser) (User, error) {
	if err := nu.Validate(svc); err != nil {
		return User{}, err
	}
	usr := User{
		Username: nu.Username,
		Password: nu.Password,
		Role:     nu.Role,
	}
	return svc.repo.CreateUser(usr)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByUsername(uname string) (User, error) {
	return svc.repo.GetUserByUsername(core.CleanString(uname, true /* lower */))
}

// QueryByRole returns all accounts holding the given role, in table order.
func (svc *Service) QueryByRole(role string) ([]User, error) {
	all, err := svc.repo.QueryAllUsers()
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(all))
	for _, usr := range all {
		if usr.Role == role {
			users = append(users, usr)
		}
	}
	return users, nil
}

func (svc *Service) Exists(uname string) (bool, error) {
	if _, err := svc.GetByUsername(uname); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (svc *Service) Delete(uname string) error {
	return svc.repo.DeleteUser(core.CleanString(uname, true /* lower */))
}
