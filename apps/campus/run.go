package main

import (
	"errors"

	"github.com/motembo/campus/core/auth"
	"github.com/motembo/campus/core/user"
)

// run drives the top-level menu until the user exits or input runs out.
func (app *application) run() error {
	for {
		app.con.clear()
		app.con.println("UNIVERSITY MANAGEMENT SYSTEM")
		app.con.println()
		app.con.println("1. Login")
		app.con.println("2. Register")
		app.con.println("3. Chatbot")
		app.con.println("4. Exit")
		choice, ok := app.con.prompt("Choice: ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			app.login()
		case "2":
			app.register()
		case "3":
			app.chatbot()
		case "4":
			app.con.println("Goodbye!")
			return nil
		default:
			app.con.println("Invalid choice!")
			app.con.pause()
		}
	}
}

func (app *application) login() {
	app.con.clear()
	uname, ok := app.con.prompt("Username: ")
	if !ok {
		return
	}
	pwd, ok := app.con.promptPassword("Password: ")
	if !ok {
		return
	}

	sess, err := app.auth.Authenticate(uname, pwd)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			app.con.println("Invalid credentials!")
		} else {
			app.renderError(err)
		}
		app.con.pause()
		return
	}

	switch sess.Role {
	case user.RoleStudent:
		app.studentDashboard(sess)
	case user.RoleFaculty:
		app.facultyDashboard(sess)
	case user.RoleAdmin:
		app.adminDashboard(sess)
	}
}

func (app *application) register() {
	app.con.clear()
	uname, ok := app.con.prompt("Username: ")
	if !ok {
		return
	}
	pwd, ok := app.con.promptPassword("Password: ")
	if !ok {
		return
	}
	role, ok := app.con.prompt("Role (student/faculty/admin): ")
	if !ok {
		return
	}

	if _, err := app.users.Create(user.NewUser{Username: uname, Password: pwd, Role: role}); err != nil {
		app.renderError(err)
		app.con.pause()
		return
	}
	app.con.println("Registration successful!")
	app.con.pause()
}
