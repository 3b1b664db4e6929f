package tgram

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrEmptyUpdate is returned when an update carries none of the known
// payload fields. This is the only way classification can fail.
var ErrEmptyUpdate = errors.New("update has no populated field")

// UpdateType identifies which payload field of an Update is populated.
// The zero value is UpdateUnknown.
type UpdateType int

const (
	UpdateUnknown UpdateType = iota
	UpdateMessage
	UpdateEditedMessage
	UpdateChannelPost
	UpdateEditedChannelPost
	UpdateInlineQuery
	UpdateChosenInlineResult
	UpdateCallbackQuery
	UpdateShippingQuery
	UpdatePreCheckoutQuery
	UpdatePoll
	UpdatePollAnswer
	UpdateMyChatMember
	UpdateChatMember
	UpdateChatJoinRequest
)

var updateTypeNames = [...]string{
	UpdateUnknown:            "unknown",
	UpdateMessage:            "message",
	UpdateEditedMessage:      "edited_message",
	UpdateChannelPost:        "channel_post",
	UpdateEditedChannelPost:  "edited_channel_post",
	UpdateInlineQuery:        "inline_query",
	UpdateChosenInlineResult: "chosen_inline_result",
	UpdateCallbackQuery:      "callback_query",
	UpdateShippingQuery:      "shipping_query",
	UpdatePreCheckoutQuery:   "pre_checkout_query",
	UpdatePoll:               "poll",
	UpdatePollAnswer:         "poll_answer",
	UpdateMyChatMember:       "my_chat_member",
	UpdateChatMember:         "chat_member",
	UpdateChatJoinRequest:    "chat_join_request",
}

// String returns the wire key name of the update type, e.g. "callback_query".
func (t UpdateType) String() string {
	if t < 0 || int(t) >= len(updateTypeNames) {
		return "unknown"
	}
	return updateTypeNames[t]
}

// updateProbes enumerates the payload fields of Update in declaration order.
// Classification scans this table and the first populated field wins; a
// double-populated update (a protocol violation) is resolved by order, not
// reported as an error.
var updateProbes = []struct {
	kind UpdateType
	set  func(*Update) bool
}{
	{UpdateMessage, func(u *Update) bool { return u.Message != nil }},
	{UpdateEditedMessage, func(u *Update) bool { return u.EditedMessage != nil }},
	{UpdateChannelPost, func(u *Update) bool { return u.ChannelPost != nil }},
	{UpdateEditedChannelPost, func(u *Update) bool { return u.EditedChannelPost != nil }},
	{UpdateInlineQuery, func(u *Update) bool { return u.InlineQuery != nil }},
	{UpdateChosenInlineResult, func(u *Update) bool { return u.ChosenInlineResult != nil }},
	{UpdateCallbackQuery, func(u *Update) bool { return u.CallbackQuery != nil }},
	{UpdateShippingQuery, func(u *Update) bool { return u.ShippingQuery != nil }},
	{UpdatePreCheckoutQuery, func(u *Update) bool { return u.PreCheckoutQuery != nil }},
	{UpdatePoll, func(u *Update) bool { return u.Poll != nil }},
	{UpdatePollAnswer, func(u *Update) bool { return u.PollAnswer != nil }},
	{UpdateMyChatMember, func(u *Update) bool { return u.MyChatMember != nil }},
	{UpdateChatMember, func(u *Update) bool { return u.ChatMember != nil }},
	{UpdateChatJoinRequest, func(u *Update) bool { return u.ChatJoinRequest != nil }},
}

// Classify returns the type of the single populated payload field of u.
// It returns ErrEmptyUpdate when no field is populated.
func Classify(u *Update) (UpdateType, error) {
	if u != nil {
		for _, p := range updateProbes {
			if p.set(u) {
				return p.kind, nil
			}
		}
	}
	return UpdateUnknown, ErrEmptyUpdate
}

// ClassifyRaw classifies an update from its raw JSON encoding without a
// full unmarshal. Useful for logging the inbound kind before deciding
// whether to decode. Returns ErrInvalidJSON for non-JSON input and
// ErrEmptyUpdate when no known payload key is present.
func ClassifyRaw(raw []byte) (UpdateType, error) {
	if !gjson.ValidBytes(raw) {
		return UpdateUnknown, ErrInvalidJSON
	}
	for kind := UpdateMessage; kind <= UpdateChatJoinRequest; kind++ {
		if gjson.GetBytes(raw, kind.String()).IsObject() {
			return kind, nil
		}
	}
	return UpdateUnknown, ErrEmptyUpdate
}
