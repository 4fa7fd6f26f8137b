package filerepos_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motembo/campus/core"
	"github.com/motembo/campus/core/message"
	filerepos "github.com/motembo/campus/storage/records"
	testutil "github.com/motembo/campus/tests"
)

func TestMessageSendAndQuery(t *testing.T) {
	store := testutil.NewStore(t)
	svc := message.NewService(filerepos.NewMessageRepository(store), store.Delimiter())

	msg, err := svc.Send(message.NewMessage{Sender: "s1", Recipient: "prof", Body: "hello"})
	require.NoError(t, err)
	_, err = time.Parse(core.TimestampLayout, msg.SentAt)
	assert.NoError(t, err, "timestamp is generated at send time")

	inbox, err := svc.Inbox("prof")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "hello", inbox[0].Body)

	sent, err := svc.Sent("s1")
	require.NoError(t, err)
	require.Len(t, sent, 1)

	assert.Empty(t, mustInbox(t, svc, "s1"), "sender's inbox stays empty")
}

func mustInbox(t *testing.T, svc *message.Service, uname string) []message.Message {
	t.Helper()
	msgs, err := svc.Inbox(uname)
	require.NoError(t, err)
	return msgs
}

func TestMessageBodyMustNotContainDelimiter(t *testing.T) {
	store := testutil.NewStore(t)
	svc := message.NewService(filerepos.NewMessageRepository(store), store.Delimiter())

	_, err := svc.Send(message.NewMessage{Sender: "s1", Recipient: "prof", Body: "a,b"})
	assert.ErrorIs(t, err, message.ErrBodyHasDelimiter)

	rows, err := store.Read("messages")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMessageBroadcast(t *testing.T) {
	store := testutil.NewStore(t)
	svc := message.NewService(filerepos.NewMessageRepository(store), store.Delimiter())

	n, err := svc.Broadcast("root", "exam friday", []string{"s1", "s2", "root"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, uname := range []string{"s1", "s2", "root"} {
		inbox := mustInbox(t, svc, uname)
		require.Len(t, inbox, 1, "every recipient gets one copy")
		assert.Equal(t, "exam friday", inbox[0].Body)
		assert.Equal(t, "root", inbox[0].Sender)
	}

	// one shared timestamp for the whole announcement
	rows, err := store.Read("messages")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, rows[0][3], rows[1][3])
	assert.Equal(t, rows[0][3], rows[2][3])
}

func TestMessageMalformedRowsSkipped(t *testing.T) {
	store := testutil.NewStore(t)
	svc := message.NewService(filerepos.NewMessageRepository(store), store.Delimiter())

	testutil.AppendRow(t, store, "messages", "a", "b", "no timestamp")
	_, err := svc.Send(message.NewMessage{Sender: "a", Recipient: "b", Body: "hi"})
	require.NoError(t, err)

	inbox := mustInbox(t, svc, "b")
	require.Len(t, inbox, 1)
	assert.Equal(t, "hi", inbox[0].Body)
}

func TestMessageRowsAreAppendOnly(t *testing.T) {
	store := testutil.NewStore(t)
	svc := message.NewService(filerepos.NewMessageRepository(store), store.Delimiter())

	_, err := svc.Send(message.NewMessage{Sender: "a", Recipient: "b", Body: "first"})
	require.NoError(t, err)
	_, err = svc.Send(message.NewMessage{Sender: "a", Recipient: "b", Body: "second"})
	require.NoError(t, err)

	inbox := mustInbox(t, svc, "b")
	require.Len(t, inbox, 2)
	assert.Equal(t, "first", inbox[0].Body)
	assert.Equal(t, "second", inbox[1].Body)
}
