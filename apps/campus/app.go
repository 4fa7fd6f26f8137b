package main

import (
	"errors"

	"github.com/motembo/campus/core"
	"github.com/motembo/campus/core/attendance"
	"github.com/motembo/campus/core/auth"
	"github.com/motembo/campus/core/grade"
	"github.com/motembo/campus/core/message"
	"github.com/motembo/campus/core/user"
	"github.com/motembo/campus/storage/records"
	"github.com/motembo/campus/storage/table"
)

type application struct {
	con    *console
	logger core.Logger

	users      *user.Service
	grades     *grade.Service
	attendance *attendance.Service
	messages   *message.Service
	auth       *auth.Service
}

func newApplication(store *table.Store, con *console, logger core.Logger) *application {
	users := user.NewService(filerepos.NewUserRepository(store))
	return &application{
		con:        con,
		logger:     logger,
		users:      users,
		grades:     grade.NewService(filerepos.NewGradeRepository(store)),
		attendance: attendance.NewService(filerepos.NewAttendanceRepository(store), users),
		messages:   message.NewService(filerepos.NewMessageRepository(store), store.Delimiter()),
		auth:       auth.NewService(users),
	}
}

// renderError turns a repository/service failure into a user-facing line.
// Validation problems are listed per field; anything unexpected is logged
// and replaced with a generic message. Nothing here is fatal. Extra args
// (the session, when one exists) are forwarded to the logger.
func (app *application) renderError(err error, logArgs ...interface{}) {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		if len(verr.Fields) == 0 {
			app.con.println(verr.Error())
			return
		}
		for _, fld := range verr.Fields {
			app.con.printf("%s: %s\n", fld.Field, fld.Error)
		}
		return
	}
	if errors.Is(err, auth.ErrPermissionDenied) {
		app.con.println("You are not allowed to do that!")
		return
	}
	app.logger.Error("operation failed", append([]interface{}{err}, logArgs...)...)
	app.con.println("Something went wrong, try again later.")
}
