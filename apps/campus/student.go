package main

import (
	"github.com/motembo/campus/core/auth"
)

func (app *application) studentDashboard(sess auth.Session) {
	for {
		app.con.clear()
		app.con.printf("STUDENT DASHBOARD - %s\n\n", sess.Username)
		app.con.println("1. View Report Card")
		app.con.println("2. Check Attendance")
		app.con.println("3. Message Faculty/Admin")
		app.con.println("4. View Messages")
		app.con.println("5. Logout")
		choice, ok := app.con.prompt("Choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			app.viewReportCard(sess)
		case "2":
			app.viewAttendance(sess)
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

func (app *application) viewReportCard(sess auth.Session) {
	app.con.clear()
	cgpa, err := app.grades.CGPA(sess.Username)
	if err != nil {
		app.renderError(err, sess)
		app.con.pause()
		return
	}
	grades, err := app.grades.QueryByStudent(sess.Username)
	if err != nil {
		app.renderError(err, sess)
		app.con.pause()
		return
	}

	app.con.println("ACADEMIC REPORT")
	app.con.printf("CGPA: %.2f\n\n", cgpa)
	for _, g := range grades {
		app.con.printf("%s: %s (%s credits)\n", g.Course, g.Letter, g.Credits)
	}
	app.con.pause()
}

func (app *application) viewAttendance(sess auth.Session) {
	app.con.clear()
	logs, err := app.attendance.LogByStudent(sess.Username)
	if err != nil {
		app.renderError(err, sess)
		app.con.pause()
		return
	}

	app.con.println("ATTENDANCE RECORD")
	for _, courseLog := range logs {
		app.con.printf("\nCourse: %s\n", courseLog.Course)
		for _, day := range courseLog.Days {
			status := "Absent"
			if day.Present {
				status = "Present"
			}
			app.con.printf("%s: %s\n", day.Date, status)
		}
	}
	if len(logs) == 0 {
		app.con.println("No attendance records found!")
	}
	app.con.pause()
}
