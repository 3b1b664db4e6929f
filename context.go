package tgram

// Context wraps a single dispatched Update and resolves the chat, user and
// message it is about. A Context is created fresh for every update, is not
// shared across dispatches, and requires no teardown. The only mutable part
// is the state bag (Set/Get), intended for passing data between handlers
// within one dispatch.
//
// The Caller and bot identity are shared references whose lifetimes outlive
// any single Context.
type Context struct {
	update Update
	kind   UpdateType
	caller Caller
	me     *User
	state  map[string]any
}

// NewContext creates a Context for one update. The update's kind is
// classified once here; an update with no populated payload field yields
// UpdateUnknown, and every guarded operation on such a context fails with
// a *UsageError.
func NewContext(update Update, caller Caller, me *User) *Context {
	kind, _ := Classify(&update)
	return &Context{
		update: update,
		kind:   kind,
		caller: caller,
		me:     me,
	}
}

// Update returns the wrapped update.
func (c *Context) Update() *Update { return &c.update }

// UpdateType returns the kind of the wrapped update, classified at
// construction.
func (c *Context) UpdateType() UpdateType { return c.kind }

// Me returns the bot's own identity, as supplied at construction.
func (c *Context) Me() *User { return c.me }

// Set stores a value in the per-dispatch state bag.
func (c *Context) Set(key string, value any) {
	if c.state == nil {
		c.state = make(map[string]any)
	}
	c.state[key] = value
}

// Get reads a value from the per-dispatch state bag.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.state[key]
	return v, ok
}

// MustGet reads a value from the state bag and panics when absent. Use for
// values an upstream handler is contractually required to have set.
func (c *Context) MustGet(key string) any {
	v, ok := c.state[key]
	if !ok {
		panic("tgram: state key not set: " + key)
	}
	return v
}

// Raw projections of the update's payload branches.

func (c *Context) Message() *Message           { return c.update.Message }
func (c *Context) EditedMessage() *Message     { return c.update.EditedMessage }
func (c *Context) ChannelPost() *Message       { return c.update.ChannelPost }
func (c *Context) EditedChannelPost() *Message { return c.update.EditedChannelPost }
func (c *Context) InlineQuery() *InlineQuery   { return c.update.InlineQuery }

func (c *Context) ChosenInlineResult() *ChosenInlineResult { return c.update.ChosenInlineResult }

func (c *Context) CallbackQuery() *CallbackQuery       { return c.update.CallbackQuery }
func (c *Context) ShippingQuery() *ShippingQuery       { return c.update.ShippingQuery }
func (c *Context) PreCheckoutQuery() *PreCheckoutQuery { return c.update.PreCheckoutQuery }
func (c *Context) Poll() *Poll                         { return c.update.Poll }
func (c *Context) PollAnswer() *PollAnswer             { return c.update.PollAnswer }

func (c *Context) MyChatMember() *ChatMemberUpdated     { return c.update.MyChatMember }
func (c *Context) ChatMemberUpdate() *ChatMemberUpdated { return c.update.ChatMember }
func (c *Context) ChatJoinRequest() *ChatJoinRequest    { return c.update.ChatJoinRequest }

// EffectiveMessage resolves "the message this update is about": the first
// non-nil of message, edited message, the message embedded in a callback
// query, channel post, edited channel post. Reply and delete operations,
// and the Chat/From/SenderChat fallbacks, all address this message.
func (c *Context) EffectiveMessage() *Message {
	for _, get := range messageCandidates {
		if m := get(&c.update); m != nil {
			return m
		}
	}
	return nil
}

// messageCandidates is the "any message-bearing update" priority order.
var messageCandidates = []func(*Update) *Message{
	func(u *Update) *Message { return u.Message },
	func(u *Update) *Message { return u.EditedMessage },
	func(u *Update) *Message {
		if u.CallbackQuery != nil {
			return u.CallbackQuery.Message
		}
		return nil
	},
	func(u *Update) *Message { return u.ChannelPost },
	func(u *Update) *Message { return u.EditedChannelPost },
}

// chatCandidates resolves Chat. Note the asymmetry with fromCandidates:
// query-type updates never carry a chat directly, so they are absent here,
// and the member/join-request kinds come first.
var chatCandidates = []func(*Update) *Chat{
	func(u *Update) *Chat {
		if u.ChatMember != nil {
			return u.ChatMember.Chat
		}
		return nil
	},
	func(u *Update) *Chat {
		if u.MyChatMember != nil {
			return u.MyChatMember.Chat
		}
		return nil
	},
	func(u *Update) *Chat {
		if u.ChatJoinRequest != nil {
			return u.ChatJoinRequest.Chat
		}
		return nil
	},
	func(u *Update) *Chat {
		for _, get := range messageCandidates {
			if m := get(u); m != nil {
				return m.Chat
			}
		}
		return nil
	},
}

// fromCandidates resolves From. Query-type updates always originate from a
// user, so they take priority over the member/join-request kinds and the
// generic message shape.
var fromCandidates = []func(*Update) *User{
	func(u *Update) *User {
		if u.CallbackQuery != nil {
			return u.CallbackQuery.From
		}
		return nil
	},
	func(u *Update) *User {
		if u.InlineQuery != nil {
			return u.InlineQuery.From
		}
		return nil
	},
	func(u *Update) *User {
		if u.ShippingQuery != nil {
			return u.ShippingQuery.From
		}
		return nil
	},
	func(u *Update) *User {
		if u.PreCheckoutQuery != nil {
			return u.PreCheckoutQuery.From
		}
		return nil
	},
	func(u *Update) *User {
		if u.ChosenInlineResult != nil {
			return u.ChosenInlineResult.From
		}
		return nil
	},
	func(u *Update) *User {
		if u.ChatMember != nil {
			return u.ChatMember.From
		}
		return nil
	},
	func(u *Update) *User {
		if u.MyChatMember != nil {
			return u.MyChatMember.From
		}
		return nil
	},
	func(u *Update) *User {
		if u.ChatJoinRequest != nil {
			return u.ChatJoinRequest.From
		}
		return nil
	},
	func(u *Update) *User {
		for _, get := range messageCandidates {
			if m := get(u); m != nil {
				return m.From
			}
		}
		return nil
	},
}

// Chat resolves the chat this update is about, or nil when the update kind
// carries none (e.g. inline queries).
func (c *Context) Chat() *Chat {
	for _, get := range chatCandidates {
		if ch := get(&c.update); ch != nil {
			return ch
		}
	}
	return nil
}

// From resolves the user who triggered this update, or nil for updates
// with no originating user (e.g. channel posts, poll state updates).
func (c *Context) From() *User {
	for _, get := range fromCandidates {
		if f := get(&c.update); f != nil {
			return f
		}
	}
	return nil
}

// SenderChat resolves the sender chat of the effective message, for
// messages sent on behalf of a chat rather than a user.
func (c *Context) SenderChat() *Chat {
	if m := c.EffectiveMessage(); m != nil {
		return m.SenderChat
	}
	return nil
}

// Text returns the text (or caption) of the effective message.
func (c *Context) Text() string {
	m := c.EffectiveMessage()
	if m == nil {
		return ""
	}
	if m.Text != "" {
		return m.Text
	}
	return m.Caption
}

// CallbackData returns the data of the callback query, if any.
func (c *Context) CallbackData() string {
	if c.update.CallbackQuery == nil {
		return ""
	}
	return c.update.CallbackQuery.Data
}

// InlineMessageID returns the inline message id carried by a callback
// query or chosen inline result, if any.
func (c *Context) InlineMessageID() string {
	if q := c.update.CallbackQuery; q != nil && q.InlineMessageID != "" {
		return q.InlineMessageID
	}
	if r := c.update.ChosenInlineResult; r != nil && r.InlineMessageID != "" {
		return r.InlineMessageID
	}
	return ""
}

// ThreadID returns the forum topic thread id of the effective message.
// The second return is false when the originating message carries none.
func (c *Context) ThreadID() (int64, bool) {
	m := c.EffectiveMessage()
	if m == nil || m.MessageThreadID == 0 {
		return 0, false
	}
	return m.MessageThreadID, true
}
