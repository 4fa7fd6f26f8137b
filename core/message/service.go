package message

import (
	"errors"
	"strings"
	"time"

	"github.com/motembo/campus/core"
)

var (
	// errors
	ErrBodyHasDelimiter = errors.New("message body must not contain the field delimiter")

	nowFunc = time.Now // mockable
)

func containsDelim(s, delim string) bool {
	return strings.Contains(s, delim)
}

type (
	Repository interface {
		AppendMessage(msg Message) (Message, error)
		QueryInbox(username string) ([]Message, error)
		QuerySent(username string) ([]Message, error)
	}

	Service struct {
		repo  Repository
		delim string
	}
)

func NewService(repo Repository, delim string) *Service {
	return &Service{repo: repo, delim: delim}
}

func (svc *Service) Send(nm NewMessage) (Message, error) {
	if err := nm.Validate(svc.delim); err != nil {
		return Message{}, err
	}
	return svc.repo.AppendMessage(Message{
		Sender:    nm.Sender,
		Recipient: nm.Recipient,
		Body:      nm.Body,
		SentAt:    core.Timestamp(nowFunc()),
	})
}

// Broadcast appends one row per recipient with the same body and timestamp.
// Returns how many messages were sent.
func (svc *Service) Broadcast(sender, body string, recipients []string) (int, error) {
	nm := NewMessage{Sender: sender, Recipient: sender, Body: body}
	if err := nm.Validate(svc.delim); err != nil {
		return 0, err
	}
	sentAt := core.Timestamp(nowFunc())
	for i, rcpt := range recipients {
		msg := Message{
			Sender:    nm.Sender,
			Recipient: core.CleanString(rcpt, true /* lower */),
			Body:      nm.Body,
			SentAt:    sentAt,
		}
		if _, err := svc.repo.AppendMessage(msg); err != nil {
			return i, err
		}
	}
	return len(recipients), nil
}

func (svc *Service) Inbox(uname string) ([]Message, error) {
	return svc.repo.QueryInbox(core.CleanString(uname, true /* lower */))
}

func (svc *Service) Sent(uname string) ([]Message, error) {
	return svc.repo.QuerySent(core.CleanString(uname, true /* lower */))
}
