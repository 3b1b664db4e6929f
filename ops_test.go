package tgram

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// recordingCaller records every transport invocation for guard tests.
type recordingCaller struct {
	calls  []recordedCall
	result json.RawMessage
	err    error
}

type recordedCall struct {
	method string
	params Params
}

func (r *recordingCaller) Call(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	r.calls = append(r.calls, recordedCall{method: method, params: params})
	if r.result == nil && r.err == nil {
		return json.RawMessage(`true`), nil
	}
	return r.result, r.err
}

func messageContext(caller Caller) *Context {
	return NewContext(Update{
		Message: &Message{
			MessageID: 11,
			From:      &User{ID: 5},
			Chat:      &Chat{ID: 100},
			Text:      "hi",
		},
	}, caller, nil)
}

func TestGuardedOperationsFailWithoutTarget(t *testing.T) {
	tests := []struct {
		name string
		call func(ctx context.Context, c *Context) error
	}{
		{"SendChatAction", func(ctx context.Context, c *Context) error {
			_, err := c.SendChatAction(ctx, "typing")
			return err
		}},
		{"Reply", func(ctx context.Context, c *Context) error {
			_, err := c.Reply(ctx, "hello")
			return err
		}},
		{"DeleteMessage", func(ctx context.Context, c *Context) error {
			_, err := c.DeleteMessage(ctx)
			return err
		}},
		{"BanChatMember", func(ctx context.Context, c *Context) error {
			_, err := c.BanChatMember(ctx, 5)
			return err
		}},
		{"EditMessageText", func(ctx context.Context, c *Context) error {
			_, err := c.EditMessageText(ctx, "new")
			return err
		}},
		{"AnswerCallbackQuery", func(ctx context.Context, c *Context) error {
			_, err := c.AnswerCallbackQuery(ctx)
			return err
		}},
		{"ApproveChatJoinRequest", func(ctx context.Context, c *Context) error {
			_, err := c.ApproveChatJoinRequest(ctx)
			return err
		}},
		{"GetUserProfilePhotos", func(ctx context.Context, c *Context) error {
			_, err := c.GetUserProfilePhotos(ctx)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := &recordingCaller{}
			// An inline-query update resolves no chat and no message, and
			// carries no callback query or join request.
			c := NewContext(Update{
				InlineQuery: &InlineQuery{ID: "q"},
			}, caller, nil)

			err := tt.call(context.Background(), c)

			var ue *UsageError
			if !errors.As(err, &ue) {
				t.Fatalf("err = %v, want *UsageError", err)
			}
			if ue.Op != tt.name {
				t.Errorf("UsageError.Op = %q, want %q", ue.Op, tt.name)
			}
			if ue.Kind != UpdateInlineQuery {
				t.Errorf("UsageError.Kind = %v, want inline_query", ue.Kind)
			}
			if len(caller.calls) != 0 {
				t.Errorf("transport invoked %d times, want 0", len(caller.calls))
			}
		})
	}
}

func TestReplyDefaults(t *testing.T) {
	t.Run("reply target from effective message", func(t *testing.T) {
		caller := &recordingCaller{}
		c := messageContext(caller)

		if _, err := c.Reply(context.Background(), "hello"); err != nil {
			t.Fatalf("Reply: %v", err)
		}

		if len(caller.calls) != 1 {
			t.Fatalf("calls = %d, want 1", len(caller.calls))
		}
		call := caller.calls[0]
		if call.method != "sendMessage" {
			t.Errorf("method = %q", call.method)
		}
		if call.params["chat_id"] != int64(100) {
			t.Errorf("chat_id = %v", call.params["chat_id"])
		}
		if call.params["reply_to_message_id"] != int64(11) {
			t.Errorf("reply_to_message_id = %v", call.params["reply_to_message_id"])
		}
		if call.params["text"] != "hello" {
			t.Errorf("text = %v", call.params["text"])
		}
		if _, ok := call.params["message_thread_id"]; ok {
			t.Error("message_thread_id set for a non-topic message")
		}
	})

	t.Run("caller extras win over defaults", func(t *testing.T) {
		caller := &recordingCaller{}
		c := messageContext(caller)

		_, err := c.Reply(context.Background(), "hello", Params{
			"reply_to_message_id":  nil,
			"disable_notification": true,
		})
		if err != nil {
			t.Fatalf("Reply: %v", err)
		}

		call := caller.calls[0]
		if v, ok := call.params["reply_to_message_id"]; !ok || v != nil {
			t.Errorf("reply_to_message_id = %v, want caller-supplied nil", v)
		}
		if call.params["disable_notification"] != true {
			t.Error("extra parameter dropped")
		}
	})

	t.Run("forum topic message defaults thread id", func(t *testing.T) {
		caller := &recordingCaller{}
		c := NewContext(Update{
			Message: &Message{
				MessageID:       11,
				MessageThreadID: 7,
				IsTopicMessage:  true,
				Chat:            &Chat{ID: 100, IsForum: true},
			},
		}, caller, nil)

		if _, err := c.ReplyWithPhoto(context.Background(), "file-id"); err != nil {
			t.Fatalf("ReplyWithPhoto: %v", err)
		}

		call := caller.calls[0]
		if call.method != "sendPhoto" {
			t.Errorf("method = %q", call.method)
		}
		if call.params["message_thread_id"] != int64(7) {
			t.Errorf("message_thread_id = %v, want 7", call.params["message_thread_id"])
		}
	})

	t.Run("reply resolves callback query embedded message", func(t *testing.T) {
		caller := &recordingCaller{}
		c := NewContext(Update{
			CallbackQuery: &CallbackQuery{
				ID:      "cb",
				From:    &User{ID: 5},
				Message: &Message{MessageID: 40, Chat: &Chat{ID: 400}},
			},
		}, caller, nil)

		if _, err := c.Reply(context.Background(), "pressed"); err != nil {
			t.Fatalf("Reply: %v", err)
		}
		call := caller.calls[0]
		if call.params["chat_id"] != int64(400) || call.params["reply_to_message_id"] != int64(40) {
			t.Errorf("reply target = %v/%v, want 400/40", call.params["chat_id"], call.params["reply_to_message_id"])
		}
	})
}

func TestParseModeVariants(t *testing.T) {
	caller := &recordingCaller{}
	c := messageContext(caller)

	if _, err := c.ReplyWithHTML(context.Background(), "<b>hi</b>"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ReplyWithMarkdownV2(context.Background(), "*hi*"); err != nil {
		t.Fatal(err)
	}

	if caller.calls[0].params["parse_mode"] != "HTML" {
		t.Errorf("parse_mode = %v", caller.calls[0].params["parse_mode"])
	}
	if caller.calls[1].params["parse_mode"] != "MarkdownV2" {
		t.Errorf("parse_mode = %v", caller.calls[1].params["parse_mode"])
	}
}

func TestEditOperations(t *testing.T) {
	t.Run("callback query addressing", func(t *testing.T) {
		caller := &recordingCaller{}
		c := NewContext(Update{
			CallbackQuery: &CallbackQuery{
				ID:      "cb",
				Message: &Message{MessageID: 40, Chat: &Chat{ID: 400}},
			},
		}, caller, nil)

		if _, err := c.EditMessageText(context.Background(), "edited"); err != nil {
			t.Fatalf("EditMessageText: %v", err)
		}
		call := caller.calls[0]
		if call.method != "editMessageText" {
			t.Errorf("method = %q", call.method)
		}
		if call.params["chat_id"] != int64(400) || call.params["message_id"] != int64(40) {
			t.Errorf("addressing = %v/%v", call.params["chat_id"], call.params["message_id"])
		}
		if _, ok := call.params["inline_message_id"]; ok {
			t.Error("inline_message_id set alongside chat addressing")
		}
	})

	t.Run("inline message addressing", func(t *testing.T) {
		caller := &recordingCaller{}
		c := NewContext(Update{
			CallbackQuery: &CallbackQuery{ID: "cb", InlineMessageID: "inline-9"},
		}, caller, nil)

		if _, err := c.EditMessageReplyMarkup(context.Background(), Params{"inline_keyboard": []any{}}); err != nil {
			t.Fatalf("EditMessageReplyMarkup: %v", err)
		}
		call := caller.calls[0]
		if call.params["inline_message_id"] != "inline-9" {
			t.Errorf("inline_message_id = %v", call.params["inline_message_id"])
		}
		if _, ok := call.params["chat_id"]; ok {
			t.Error("chat_id set alongside inline addressing")
		}
	})

	t.Run("chosen inline result addressing", func(t *testing.T) {
		caller := &recordingCaller{}
		c := NewContext(Update{
			ChosenInlineResult: &ChosenInlineResult{ResultID: "r", InlineMessageID: "inline-3"},
		}, caller, nil)

		if _, err := c.StopMessageLiveLocation(context.Background()); err != nil {
			t.Fatalf("StopMessageLiveLocation: %v", err)
		}
		if caller.calls[0].params["inline_message_id"] != "inline-3" {
			t.Errorf("inline_message_id = %v", caller.calls[0].params["inline_message_id"])
		}
	})

	t.Run("invalid without either addressing mode", func(t *testing.T) {
		caller := &recordingCaller{}
		c := messageContext(caller)

		_, err := c.EditMessageCaption(context.Background(), "cap")
		var ue *UsageError
		if !errors.As(err, &ue) {
			t.Fatalf("err = %v, want *UsageError", err)
		}
		if len(caller.calls) != 0 {
			t.Errorf("transport invoked %d times, want 0", len(caller.calls))
		}
	})
}

func TestForumOperations(t *testing.T) {
	t.Run("requires thread id", func(t *testing.T) {
		caller := &recordingCaller{}
		c := messageContext(caller) // plain message, no thread

		_, err := c.CloseForumTopic(context.Background())
		var ue *UsageError
		if !errors.As(err, &ue) {
			t.Fatalf("err = %v, want *UsageError", err)
		}
		if len(caller.calls) != 0 {
			t.Error("transport invoked despite missing thread id")
		}
	})

	t.Run("reaches transport with thread id", func(t *testing.T) {
		caller := &recordingCaller{}
		c := NewContext(Update{
			Message: &Message{
				MessageID:       1,
				MessageThreadID: 7,
				IsTopicMessage:  true,
				Chat:            &Chat{ID: 100, IsForum: true},
			},
		}, caller, nil)

		if _, err := c.CloseForumTopic(context.Background()); err != nil {
			t.Fatalf("CloseForumTopic: %v", err)
		}
		call := caller.calls[0]
		if call.method != "closeForumTopic" {
			t.Errorf("method = %q", call.method)
		}
		if call.params["message_thread_id"] != int64(7) {
			t.Errorf("message_thread_id = %v", call.params["message_thread_id"])
		}
	})

	t.Run("create needs only a chat", func(t *testing.T) {
		caller := &recordingCaller{}
		c := messageContext(caller)

		if _, err := c.CreateForumTopic(context.Background(), "news"); err != nil {
			t.Fatalf("CreateForumTopic: %v", err)
		}
		if caller.calls[0].params["name"] != "news" {
			t.Errorf("name = %v", caller.calls[0].params["name"])
		}
	})
}

func TestQueryAnswers(t *testing.T) {
	caller := &recordingCaller{}
	c := NewContext(Update{
		CallbackQuery: &CallbackQuery{ID: "cb-1"},
	}, caller, nil)

	if _, err := c.AnswerCallbackQuery(context.Background(), Params{"text": "done"}); err != nil {
		t.Fatalf("AnswerCallbackQuery: %v", err)
	}
	call := caller.calls[0]
	if call.method != "answerCallbackQuery" || call.params["callback_query_id"] != "cb-1" {
		t.Errorf("call = %+v", call)
	}
	if call.params["text"] != "done" {
		t.Errorf("text = %v", call.params["text"])
	}
}

func TestJoinRequestOperations(t *testing.T) {
	caller := &recordingCaller{}
	c := NewContext(Update{
		ChatJoinRequest: &ChatJoinRequest{Chat: &Chat{ID: 100}, From: &User{ID: 5}},
	}, caller, nil)

	if _, err := c.ApproveChatJoinRequest(context.Background()); err != nil {
		t.Fatalf("ApproveChatJoinRequest: %v", err)
	}
	call := caller.calls[0]
	if call.method != "approveChatJoinRequest" {
		t.Errorf("method = %q", call.method)
	}
	if call.params["chat_id"] != int64(100) || call.params["user_id"] != int64(5) {
		t.Errorf("params = %+v", call.params)
	}
}

func TestForwardAndCopy(t *testing.T) {
	caller := &recordingCaller{}
	c := messageContext(caller)

	if _, err := c.ForwardMessage(context.Background(), 555); err != nil {
		t.Fatal(err)
	}
	if _, err := c.CopyMessage(context.Background(), 555); err != nil {
		t.Fatal(err)
	}

	for _, call := range caller.calls {
		if call.params["chat_id"] != int64(555) {
			t.Errorf("%s chat_id = %v", call.method, call.params["chat_id"])
		}
		if call.params["from_chat_id"] != int64(100) || call.params["message_id"] != int64(11) {
			t.Errorf("%s source = %v/%v", call.method, call.params["from_chat_id"], call.params["message_id"])
		}
	}
}

func TestTransportErrorsPassThrough(t *testing.T) {
	want := &Error{ErrorCode: 429, Description: "Too Many Requests: retry after 5",
		Parameters: &ResponseParameters{RetryAfter: 5}}
	caller := &recordingCaller{err: want}
	c := messageContext(caller)

	_, err := c.Reply(context.Background(), "hello")
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr != want {
		t.Fatalf("err = %v, want the transport's *Error unchanged", err)
	}
	if after, ok := apiErr.RetryAfter(); !ok || after != 5 {
		t.Errorf("RetryAfter() = %d, %v", after, ok)
	}
}

func TestTransportResultPassesThrough(t *testing.T) {
	caller := &recordingCaller{result: json.RawMessage(`{"message_id":12}`)}
	c := messageContext(caller)

	raw, err := c.Reply(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"message_id":12}` {
		t.Errorf("result = %s", raw)
	}
}
