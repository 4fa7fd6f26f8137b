package message

import (
	"github.com/motembo/campus/core"
)

// Message is one persisted message row. Rows are append-only; they are
// never edited or deleted. SentAt uses core.TimestampLayout.
type Message struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
	SentAt    string `json:"sent_at"`
}

// NewMessage contains information needed to send a Message.
// The timestamp is generated at send time.
type NewMessage struct {
	Sender    string `json:"sender" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
	Body      string `json:"body" validate:"required"`
}

func (nm *NewMessage) Validate(delim string) error {
	nm.Sender = core.CleanString(nm.Sender, true /* lower */)
	nm.Recipient = core.CleanString(nm.Recipient, true /* lower */)
	nm.Body = core.CleanString(nm.Body)

	if err := core.Validate.Struct(nm); err != nil {
		return core.TranslateError(err)
	}
	// no escaping in the record store; the body must not break the row
	if delim != "" && containsDelim(nm.Body, delim) {
		return core.NewValidationError(ErrBodyHasDelimiter,
			core.FieldError{Field: "body", Error: ErrBodyHasDelimiter.Error()})
	}
	return nil
}
