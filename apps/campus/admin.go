package main

import (
	"errors"
	"strconv"

	"github.com/motembo/campus/core/auth"
	"github.com/motembo/campus/core/grade"
)

func (app *application) adminDashboard(sess auth.Session) {
	for {
		app.con.clear()
		app.con.printf("ADMIN DASHBOARD - %s\n\n", sess.Username)
		app.con.println("1. Manage Users")
		app.con.println("2. Modify Student Grades")
		app.con.println("3. Send Announcement")
		app.con.println("4. Message Anyone")
		app.con.println("5. View Messages")
		app.con.println("6. Logout")
		choice, ok := app.con.prompt("Choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			app.manageUsers(sess)
		case "2":
			app.modifyGrade(sess)
		case "3":
			app.sendAnnouncement(sess)
		case "4":
			app.sendMessage(sess)
		case "5":
			app.viewMessages(sess)
		case "6":
			return
		default:
			app.con.println("Invalid choice!")
			app.con.pause()
		}
	}
}

func (app *application) manageUsers(sess auth.Session) {
	if !auth.CanManageUsers(sess.Role) {
		app.renderError(auth.ErrPermissionDenied, sess)
		app.con.pause()
		return
	}
	for {
		app.con.clear()
		app.con.printf("USER MANAGEMENT\n\n")
		app.con.println("1. Add User")
		app.con.println("2. Delete User")
		app.con.println("3. View All Users")
		app.con.println("4. Return")
		choice, ok := app.con.prompt("Choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			app.register()
		case "2":
			uname, ok := app.con.prompt("Username to delete: ")
			if !ok {
				return
			}
			if err := app.users.Delete(uname); err != nil {
				app.renderError(err, sess)
			} else {
				app.con.println("User deleted!")
			}
			app.con.pause()
		case "3":
			users, err := app.users.QueryAll()
			if err != nil {
				app.renderError(err, sess)
			}
			for _, usr := range users {
				app.con.printf("%s - %s\n", usr.Username, usr.Role)
			}
			app.con.pause()
		case "4":
			return
		default:
			app.con.println("Invalid choice!")
			app.con.pause()
		}
	}
}

func (app *application) modifyGrade(sess auth.Session) {
	if !auth.CanManageGrades(sess.Role) {
		app.renderError(auth.ErrPermissionDenied, sess)
		app.con.pause()
		return
	}
	app.con.clear()
	student, ok := app.con.prompt("Student Username: ")
	if !ok {
		return
	}
	grades, err := app.grades.QueryByStudent(student)
	if err != nil {
		app.renderError(err, sess)
		app.con.pause()
		return
	}
	if len(grades) == 0 {
		app.con.println("No grades found!")
		app.con.pause()
		return
	}

	app.con.printf("\nCurrent Grades:\n")
	for i, g := range grades {
		app.con.printf("%d. %s - %s (%s credits)\n", i+1, g.Course, g.Letter, g.Credits)
	}

	sel, ok := app.con.prompt("\nSelect grade to modify (0 to cancel): ")
	if !ok {
		return
	}
	idx, err := strconv.Atoi(sel)
	if err != nil || idx < 1 || idx > len(grades) {
		app.con.println("Modification cancelled.")
		app.con.pause()
		return
	}

	letter, ok := app.con.prompt("New Grade (A+/A/B+/B/C+/C/D/F): ")
	if !ok {
		return
	}
	credits, ok := app.con.prompt("New Credits: ")
	if !ok {
		return
	}
	if _, err := app.grades.Modify(student, idx, letter, credits); err != nil {
		if errors.Is(err, grade.ErrNotFound) {
			app.con.println("Modification cancelled.")
		} else {
			app.renderError(err, sess)
		}
		app.con.pause()
		return
	}
	app.con.println("Grade updated successfully!")
	app.con.pause()
}

// sendAnnouncement fans one message out to every account existing right now,
// announcer included.
func (app *application) sendAnnouncement(sess auth.Session) {
	if !auth.CanManageUsers(sess.Role) {
		app.renderError(auth.ErrPermissionDenied, sess)
		app.con.pause()
		return
	}
	app.con.clear()
	content, ok := app.con.prompt("Announcement: ")
	if !ok {
		return
	}

	users, err := app.users.QueryAll()
	if err != nil {
		app.renderError(err, sess)
		app.con.pause()
		return
	}
	recipients := make([]string, 0, len(users))
	for _, usr := range users {
		recipients = append(recipients, usr.Username)
	}

	if _, err := app.messages.Broadcast(sess.Username, content, recipients); err != nil {
		app.renderError(err, sess)
		app.con.pause()
		return
	}
	app.con.println("Announcement sent to all users!")
	app.con.pause()
}
