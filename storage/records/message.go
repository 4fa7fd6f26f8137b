package filerepos

import (
	"github.com/motembo/campus/core/message"
	"github.com/motembo/campus/storage/table"
)

// messages table: sender, recipient, body, timestamp
const messageTable = "messages"

type messageRepository struct {
	store *table.Store
}

func NewMessageRepository(store *table.Store) message.Repository {
	return &messageRepository{store: store}
}

func (repo *messageRepository) AppendMessage(msg message.Message) (message.Message, error) {
	row := []string{msg.Sender, msg.Recipient, msg.Body, msg.SentAt}
	if err := repo.store.Append(messageTable, row); err != nil {
		return message.Message{}, err
	}
	return msg, nil
}

func (repo *messageRepository) query(match func(message.Message) bool) ([]message.Message, error) {
	rows, err := repo.store.Read(messageTable)
	if err != nil {
		return nil, err
	}
	var msgs []message.Message
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		msg := message.Message{
			Sender:    row[0],
			Recipient: row[1],
			Body:      row[2],
			SentAt:    row[3],
		}
		if match(msg) {
			msgs = append(msgs, msg)
		}
	}
	return msgs, nil
}

func (repo *messageRepository) QueryInbox(username string) ([]message.Message, error) {
	return repo.query(func(msg message.Message) bool { return msg.Recipient == username })
}

func (repo *messageRepository) QuerySent(username string) ([]message.Message, error) {
	return repo.query(func(msg message.Message) bool { return msg.Sender == username })
}
