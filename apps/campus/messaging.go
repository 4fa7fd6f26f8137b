package main

import (
	"errors"

	"github.com/motembo/campus/core/auth"
	"github.com/motembo/campus/core/message"
	"github.com/motembo/campus/core/user"
)

func (app *application) sendMessage(sess auth.Session) {
	app.con.clear()
	rcptName, ok := app.con.prompt("Recipient: ")
	if !ok {
		return
	}

	rcpt, err := app.users.GetByUsername(rcptName)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		app.renderError(err, sess)
		app.con.pause()
		return
	}
	// an unknown recipient gets the same rejection as a forbidden one
	if err != nil || !auth.CanMessage(sess.Role, rcpt.Role) {
		app.con.println("Invalid recipient for your role!")
		app.con.pause()
		return
	}

	body, ok := app.con.prompt("Message: ")
	if !ok {
		return
	}
	if _, err := app.messages.Send(message.NewMessage{
		Sender:    sess.Username,
		Recipient: rcpt.Username,
		Body:      body,
	}); err != nil {
		app.renderError(err, sess)
		app.con.pause()
		return
	}
	app.con.println("Message sent!")
	app.con.pause()
}

func (app *application) viewMessages(sess auth.Session) {
	app.con.clear()
	inbox, err := app.messages.Inbox(sess.Username)
	if err != nil {
		app.renderError(err, sess)
		app.con.pause()
		return
	}
	sent, err := app.messages.Sent(sess.Username)
	if err != nil {
		app.renderError(err, sess)
		app.con.pause()
		return
	}

	app.con.println("=== INBOX ===")
	for _, msg := range inbox {
		app.con.printf("From: %s\nTime: %s\nMessage: %s\n\n", msg.Sender, msg.SentAt, msg.Body)
	}
	if len(inbox) == 0 {
		app.con.println("No received messages")
	}

	app.con.printf("\n=== SENT MESSAGES ===\n")
	for _, msg := range sent {
		app.con.printf("To: %s\nTime: %s\nMessage: %s\n\n", msg.Recipient, msg.SentAt, msg.Body)
	}
	if len(sent) == 0 {
		app.con.println("No sent messages")
	}
	app.con.pause()
}
