package main

import (
	"errors"

	"github.com/motembo/campus/core/attendance"
	"github.com/motembo/campus/core/auth"
	"github.com/motembo/campus/core/grade"
	"github.com/motembo/campus/core/user"
)

func (app *application) facultyDashboard(sess auth.Session) {
	for {
		app.con.clear()
		app.con.printf("FACULTY DASHBOARD - %s\n\n", sess.Username)
		app.con.println("1. Update Attendance")
		app.con.println("2. Manage Grades")
		app.con.println("3. Message Students/Admin")
		app.con.println("4. View Messages")
		app.con.println("5. Logout")
		choice, ok := app.con.prompt("Choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			app.attendanceSession(sess)
		case "2":
			app.recordGrade(sess)
		case "3":
			app.sendMessage(sess)
		case "4":
			app.viewMessages(sess)
		case "5":
			return
		default:
			app.con.println("Invalid choice!")
			app.con.pause()
		}
	}
}

// attendanceSession scopes a marking session to one (course, date).
func (app *application) attendanceSession(sess auth.Session) {
	if !auth.CanManageAttendance(sess.Role) {
		app.renderError(auth.ErrPermissionDenied, sess)
		app.con.pause()
		return
	}
	app.con.clear()
	course, ok := app.con.prompt("Enter Course Name: ")
	if !ok {
		return
	}
	date, ok := app.con.prompt("Enter Date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	for {
		app.con.clear()
		app.con.printf("ATTENDANCE MANAGEMENT - %s (%s)\n\n", course, date)
		app.con.println("1. Add/Edit Student Attendance")
		app.con.println("2. View Current Attendance")
		app.con.println("3. Save and Finish")
		choice, ok := app.con.prompt("Choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			app.markAttendance(course, date)
		case "2":
			app.viewSheet(course, date)
		case "3":
			app.con.println("Attendance saved!")
			app.con.pause()
			return
		default:
			app.con.println("Invalid choice!")
			app.con.pause()
		}
	}
}

func (app *application) markAttendance(course, date string) {
	student, ok := app.con.prompt("Enter Student Username: ")
	if !ok {
		return
	}
	usr, err := app.users.GetByUsername(student)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		app.renderError(err)
		app.con.pause()
		return
	}
	if err != nil || !usr.IsStudent() {
		app.con.println("Invalid student username!")
		app.con.pause()
		return
	}

	status, ok := app.con.prompt("Mark attendance for " + usr.Username +
		" (" + attendance.FlagPresent + "=Present/" + attendance.FlagAbsent + "=Absent): ")
	if !ok {
		return
	}
	rec, err := app.attendance.Mark(attendance.NewRecord{
		Student: usr.Username,
		Course:  course,
		Date:    date,
		Present: status,
	})
	if err != nil {
		app.renderError(err)
		app.con.pause()
		return
	}
	app.con.printf("Attendance updated for %s!\n", rec.Student)
	app.con.pause()
}

func (app *application) viewSheet(course, date string) {
	app.con.clear()
	entries, err := app.attendance.Sheet(course, date)
	if err != nil {
		app.renderError(err)
		app.con.pause()
		return
	}

	app.con.printf("ATTENDANCE FOR %s ON %s\n\n", course, date)
	app.con.println("Student ID\t\tStatus")
	app.con.println("----------------------------------------")
	for _, entry := range entries {
		app.con.printf("%s\t\t%s\n", entry.Student, entry.Status)
	}
	app.con.pause()
}

func (app *application) recordGrade(sess auth.Session) {
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
	course, ok := app.con.prompt("Course: ")
	if !ok {
		return
	}
	letter, ok := app.con.prompt("Grade (A+/A/B+/B/C+/C/D/F): ")
	if !ok {
		return
	}
	credits, ok := app.con.prompt("Credits: ")
	if !ok {
		return
	}

	_, err := app.grades.Upsert(grade.NewGrade{
		Student: student,
		Course:  course,
		Letter:  letter,
		Credits: credits,
	})
	if err != nil {
		app.renderError(err, sess)
		app.con.pause()
		return
	}
	app.con.println("Grade updated!")
	app.con.pause()
}
