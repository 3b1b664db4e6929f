package tgram

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClassifySuite struct {
	suite.Suite
}

func TestClassifySuite(t *testing.T) {
	suite.Run(t, new(ClassifySuite))
}

func (s *ClassifySuite) TestEachKindClassified() {
	msg := &Message{MessageID: 1, Chat: &Chat{ID: 10}}
	cases := []struct {
		update Update
		want   UpdateType
	}{
		{Update{Message: msg}, UpdateMessage},
		{Update{EditedMessage: msg}, UpdateEditedMessage},
		{Update{ChannelPost: msg}, UpdateChannelPost},
		{Update{EditedChannelPost: msg}, UpdateEditedChannelPost},
		{Update{InlineQuery: &InlineQuery{ID: "q"}}, UpdateInlineQuery},
		{Update{ChosenInlineResult: &ChosenInlineResult{ResultID: "r"}}, UpdateChosenInlineResult},
		{Update{CallbackQuery: &CallbackQuery{ID: "cb"}}, UpdateCallbackQuery},
		{Update{ShippingQuery: &ShippingQuery{ID: "sq"}}, UpdateShippingQuery},
		{Update{PreCheckoutQuery: &PreCheckoutQuery{ID: "pq"}}, UpdatePreCheckoutQuery},
		{Update{Poll: &Poll{ID: "p"}}, UpdatePoll},
		{Update{PollAnswer: &PollAnswer{PollID: "p"}}, UpdatePollAnswer},
		{Update{MyChatMember: &ChatMemberUpdated{}}, UpdateMyChatMember},
		{Update{ChatMember: &ChatMemberUpdated{}}, UpdateChatMember},
		{Update{ChatJoinRequest: &ChatJoinRequest{}}, UpdateChatJoinRequest},
	}

	for _, tc := range cases {
		got, err := Classify(&tc.update)
		s.Require().NoError(err)
		s.Assert().Equal(tc.want, got)
	}
}

func (s *ClassifySuite) TestEmptyUpdateFails() {
	_, err := Classify(&Update{UpdateID: 42})
	s.Assert().ErrorIs(err, ErrEmptyUpdate)
}

func (s *ClassifySuite) TestNilUpdateFails() {
	_, err := Classify(nil)
	s.Assert().ErrorIs(err, ErrEmptyUpdate)
}

func (s *ClassifySuite) TestDoublePopulatedFirstWins() {
	// A protocol violation; declaration order decides, no error.
	u := Update{
		EditedMessage: &Message{MessageID: 2},
		CallbackQuery: &CallbackQuery{ID: "cb"},
	}
	got, err := Classify(&u)
	s.Require().NoError(err)
	s.Assert().Equal(UpdateEditedMessage, got)
}

func (s *ClassifySuite) TestStringNames() {
	s.Assert().Equal("callback_query", UpdateCallbackQuery.String())
	s.Assert().Equal("my_chat_member", UpdateMyChatMember.String())
	s.Assert().Equal("unknown", UpdateUnknown.String())
	s.Assert().Equal("unknown", UpdateType(99).String())
}

func (s *ClassifySuite) TestClassifyRaw() {
	got, err := ClassifyRaw([]byte(`{"update_id":1,"chat_join_request":{"date":0}}`))
	s.Require().NoError(err)
	s.Assert().Equal(UpdateChatJoinRequest, got)
}

func (s *ClassifySuite) TestClassifyRawEmpty() {
	_, err := ClassifyRaw([]byte(`{"update_id":1}`))
	s.Assert().ErrorIs(err, ErrEmptyUpdate)
}

func (s *ClassifySuite) TestClassifyRawInvalidJSON() {
	_, err := ClassifyRaw([]byte(`{not json}`))
	s.Assert().ErrorIs(err, ErrInvalidJSON)
}

func (s *ClassifySuite) TestClassifyRawIgnoresNonObjectKeys() {
	// "poll" as a string is not a populated payload branch.
	_, err := ClassifyRaw([]byte(`{"update_id":1,"poll":"nope"}`))
	s.Assert().ErrorIs(err, ErrEmptyUpdate)
}
