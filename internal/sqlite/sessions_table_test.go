package sqlite

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

func TestSessionRoundTrip(t *testing.T) {
	s := setupStore(t)

	sess := &types.TherapySession{
		Date:      "2024-04-12",
		Exercises: []string{"breathing", "grounding"},
		Summary:   "worked through the week",
		Mood:      4,
		Tags:      []string{"weekly"},
	}
	require.NoError(t, s.InsertSession(sess))

	got, err := s.GetSession(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Exercises, got.Exercises)
	assert.Equal(t, sess.Summary, got.Summary)
	assert.Equal(t, sess.Tags, got.Tags)
}

func TestSessionDefaultsEmptySequences(t *testing.T) {
	s := setupStore(t)

	sess := &types.TherapySession{Summary: "short check-in"}
	require.NoError(t, s.InsertSession(sess))

	got, err := s.GetSession(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Exercises)
	assert.Equal(t, []string{}, got.Tags)
}

func TestMessagesBySessionOrdered(t *testing.T) {
	s := setupStore(t)

	sess := &types.TherapySession{Summary: "chat"}
	require.NoError(t, s.InsertSession(sess))

	for i := 0; i < 3; i++ {
		require.NoError(t, s.InsertMessage(&types.TherapyMessage{
			SessionID: sess.ID,
			Content:   fmt.Sprintf("message %d", i),
			Sender:    types.SenderUser,
		}))
	}

	messages, err := s.MessagesBySession(sess.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "message 0", messages[0].Content)
	assert.Equal(t, "message 2", messages[2].Content)
}

func TestInsertMessageValidatesSender(t *testing.T) {
	s := setupStore(t)

	sess := &types.TherapySession{Summary: "chat"}
	require.NoError(t, s.InsertSession(sess))

	err := s.InsertMessage(&types.TherapyMessage{
		SessionID: sess.ID, Content: "hi", Sender: "moderator",
	})
	assert.ErrorIs(t, err, types.ErrInvalidSender)
}

func TestDeleteSessionCascadesMessages(t *testing.T) {
	s := setupStore(t)

	sess := &types.TherapySession{Summary: "to delete"}
	require.NoError(t, s.InsertSession(sess))
	other := &types.TherapySession{Summary: "to keep"}
	require.NoError(t, s.InsertSession(other))

	for i := 0; i < 4; i++ {
		require.NoError(t, s.InsertMessage(&types.TherapyMessage{
			SessionID: sess.ID, Content: "doomed", Sender: types.SenderUser,
		}))
	}
	require.NoError(t, s.InsertMessage(&types.TherapyMessage{
		SessionID: other.ID, Content: "survivor", Sender: types.SenderTherapist,
	}))

	require.NoError(t, s.DeleteSession(sess.ID))

	_, err := s.GetSession(sess.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	orphans, err := s.MessagesBySession(sess.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans, "cascade delete must leave zero messages for the session")

	kept, err := s.MessagesBySession(other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "messages of other sessions are untouched")
}

func TestDeleteSessionNotFound(t *testing.T) {
	s := setupStore(t)
	assert.ErrorIs(t, s.DeleteSession("ghost"), types.ErrNotFound)
}

func TestListSessionsNewestFirst(t *testing.T) {
	s := setupStore(t)

	first := &types.TherapySession{Summary: "first"}
	require.NoError(t, s.InsertSession(first))
	second := &types.TherapySession{Summary: "second"}
	require.NoError(t, s.InsertSession(second))

	sessions, err := s.ListSessions(0, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "second", sessions[0].Summary)
}
