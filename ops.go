package tgram

import (
	"context"
	"encoding/json"
)

// The convenience operations below all follow one contract: resolve the
// derived field the operation needs (chat, effective message, query,
// inline-message addressing, forum thread), fail synchronously with a
// *UsageError when it is absent, otherwise merge update-derived defaults
// under caller-supplied extras and delegate to the Caller. Transport
// results and failures are returned unchanged.

// flatten folds the optional trailing Params of an operation into one map.
func flatten(extra []Params) Params {
	switch len(extra) {
	case 0:
		return nil
	case 1:
		return extra[0]
	}
	out := Params{}
	for _, e := range extra {
		out = out.merged(e)
	}
	return out
}

// chatScoped guards operations that address the resolved chat.
func (c *Context) chatScoped(ctx context.Context, op, method string, defaults Params, extra []Params) (json.RawMessage, error) {
	chat := c.Chat()
	if chat == nil {
		return nil, usageErr(op, c.kind, "chat")
	}
	p := Params{"chat_id": chat.ID}.merged(defaults).merged(flatten(extra))
	return c.caller.Call(ctx, method, p)
}

// replyScoped guards send operations that answer the effective message.
// The reply target and, for forum topic messages, the thread id are merged
// as defaults; caller extras win.
func (c *Context) replyScoped(ctx context.Context, op, method string, defaults Params, extra []Params) (json.RawMessage, error) {
	m := c.EffectiveMessage()
	if m == nil || m.Chat == nil {
		return nil, usageErr(op, c.kind, "message")
	}
	p := Params{
		"chat_id":             m.Chat.ID,
		"reply_to_message_id": m.MessageID,
	}
	if m.IsTopicMessage && m.MessageThreadID != 0 {
		p["message_thread_id"] = m.MessageThreadID
	}
	p = p.merged(defaults).merged(flatten(extra))
	return c.caller.Call(ctx, method, p)
}

// messageScoped guards operations that address the effective message itself.
func (c *Context) messageScoped(ctx context.Context, op, method string, defaults Params, extra []Params) (json.RawMessage, error) {
	m := c.EffectiveMessage()
	if m == nil || m.Chat == nil {
		return nil, usageErr(op, c.kind, "message")
	}
	p := Params{
		"chat_id":    m.Chat.ID,
		"message_id": m.MessageID,
	}.merged(defaults).merged(flatten(extra))
	return c.caller.Call(ctx, method, p)
}

// editScoped guards the editMessage* family. Edits are valid when the
// update carries a callback query or an inline message id; the transport
// accepts either addressing mode, so whichever identifiers are available
// are passed.
func (c *Context) editScoped(ctx context.Context, op, method string, defaults Params, extra []Params) (json.RawMessage, error) {
	q := c.update.CallbackQuery
	inline := c.InlineMessageID()
	if q == nil && inline == "" {
		return nil, usageErr(op, c.kind, "callback query or inline message id")
	}
	p := Params{}
	if inline != "" {
		p["inline_message_id"] = inline
	} else if q.Message != nil && q.Message.Chat != nil {
		p["chat_id"] = q.Message.Chat.ID
		p["message_id"] = q.Message.MessageID
	}
	p = p.merged(defaults).merged(flatten(extra))
	return c.caller.Call(ctx, method, p)
}

// forumScoped guards forum topic operations, which additionally require the
// originating message to carry a thread id.
func (c *Context) forumScoped(ctx context.Context, op, method string, defaults Params, extra []Params) (json.RawMessage, error) {
	chat := c.Chat()
	if chat == nil {
		return nil, usageErr(op, c.kind, "chat")
	}
	thread, ok := c.ThreadID()
	if !ok {
		return nil, usageErr(op, c.kind, "message thread id")
	}
	p := Params{
		"chat_id":           chat.ID,
		"message_thread_id": thread,
	}.merged(defaults).merged(flatten(extra))
	return c.caller.Call(ctx, method, p)
}

// Reply sends a text message to the chat of the effective message, quoting it.
func (c *Context) Reply(ctx context.Context, text string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "Reply", "sendMessage", Params{"text": text}, extra)
}

// ReplyWithHTML is Reply with HTML parse mode.
func (c *Context) ReplyWithHTML(ctx context.Context, html string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithHTML", "sendMessage", Params{"text": html, "parse_mode": "HTML"}, extra)
}

// ReplyWithMarkdownV2 is Reply with MarkdownV2 parse mode.
func (c *Context) ReplyWithMarkdownV2(ctx context.Context, md string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithMarkdownV2", "sendMessage", Params{"text": md, "parse_mode": "MarkdownV2"}, extra)
}

// ReplyWithPhoto sends a photo by file id or URL.
func (c *Context) ReplyWithPhoto(ctx context.Context, photo string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithPhoto", "sendPhoto", Params{"photo": photo}, extra)
}

// ReplyWithAudio sends an audio file by file id or URL.
func (c *Context) ReplyWithAudio(ctx context.Context, audio string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithAudio", "sendAudio", Params{"audio": audio}, extra)
}

// ReplyWithDocument sends a general file by file id or URL.
func (c *Context) ReplyWithDocument(ctx context.Context, document string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithDocument", "sendDocument", Params{"document": document}, extra)
}

// ReplyWithVideo sends a video by file id or URL.
func (c *Context) ReplyWithVideo(ctx context.Context, video string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithVideo", "sendVideo", Params{"video": video}, extra)
}

// ReplyWithAnimation sends an animation by file id or URL.
func (c *Context) ReplyWithAnimation(ctx context.Context, animation string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithAnimation", "sendAnimation", Params{"animation": animation}, extra)
}

// ReplyWithVoice sends a voice note by file id or URL.
func (c *Context) ReplyWithVoice(ctx context.Context, voice string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithVoice", "sendVoice", Params{"voice": voice}, extra)
}

// ReplyWithVideoNote sends a video note by file id.
func (c *Context) ReplyWithVideoNote(ctx context.Context, videoNote string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithVideoNote", "sendVideoNote", Params{"video_note": videoNote}, extra)
}

// ReplyWithSticker sends a sticker by file id.
func (c *Context) ReplyWithSticker(ctx context.Context, sticker string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithSticker", "sendSticker", Params{"sticker": sticker}, extra)
}

// ReplyWithLocation sends a point on the map.
func (c *Context) ReplyWithLocation(ctx context.Context, latitude, longitude float64, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithLocation", "sendLocation", Params{"latitude": latitude, "longitude": longitude}, extra)
}

// ReplyWithVenue sends information about a venue.
func (c *Context) ReplyWithVenue(ctx context.Context, latitude, longitude float64, title, address string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithVenue", "sendVenue", Params{
		"latitude": latitude, "longitude": longitude, "title": title, "address": address,
	}, extra)
}

// ReplyWithContact sends a phone contact.
func (c *Context) ReplyWithContact(ctx context.Context, phoneNumber, firstName string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithContact", "sendContact", Params{
		"phone_number": phoneNumber, "first_name": firstName,
	}, extra)
}

// ReplyWithDice sends an animated emoji with a random value.
func (c *Context) ReplyWithDice(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithDice", "sendDice", nil, extra)
}

// ReplyWithPoll sends a native poll.
func (c *Context) ReplyWithPoll(ctx context.Context, question string, options []string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithPoll", "sendPoll", Params{"question": question, "options": options}, extra)
}

// ReplyWithQuiz sends a quiz-mode poll with the given correct option.
func (c *Context) ReplyWithQuiz(ctx context.Context, question string, options []string, correctOption int, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithQuiz", "sendPoll", Params{
		"question": question, "options": options, "type": "quiz", "correct_option_id": correctOption,
	}, extra)
}

// ReplyWithMediaGroup sends a group of photos, videos, documents or audios
// as an album. Each element of media is a Bot API InputMedia object.
func (c *Context) ReplyWithMediaGroup(ctx context.Context, media []Params, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithMediaGroup", "sendMediaGroup", Params{"media": media}, extra)
}

// ReplyWithInvoice sends an invoice.
func (c *Context) ReplyWithInvoice(ctx context.Context, invoice Params, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithInvoice", "sendInvoice", invoice, extra)
}

// ReplyWithGame sends a game by its short name.
func (c *Context) ReplyWithGame(ctx context.Context, gameShortName string, extra ...Params) (json.RawMessage, error) {
	return c.replyScoped(ctx, "ReplyWithGame", "sendGame", Params{"game_short_name": gameShortName}, extra)
}

// SendChatAction broadcasts a chat action such as "typing".
func (c *Context) SendChatAction(ctx context.Context, action string, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "SendChatAction", "sendChatAction", Params{"action": action}, extra)
}

// DeleteMessage deletes the effective message.
func (c *Context) DeleteMessage(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.messageScoped(ctx, "DeleteMessage", "deleteMessage", nil, extra)
}

// ForwardMessage forwards the effective message to another chat.
func (c *Context) ForwardMessage(ctx context.Context, toChatID int64, extra ...Params) (json.RawMessage, error) {
	m := c.EffectiveMessage()
	if m == nil || m.Chat == nil {
		return nil, usageErr("ForwardMessage", c.kind, "message")
	}
	p := Params{
		"chat_id":      toChatID,
		"from_chat_id": m.Chat.ID,
		"message_id":   m.MessageID,
	}.merged(flatten(extra))
	return c.caller.Call(ctx, "forwardMessage", p)
}

// CopyMessage copies the effective message to another chat without a link
// to the original.
func (c *Context) CopyMessage(ctx context.Context, toChatID int64, extra ...Params) (json.RawMessage, error) {
	m := c.EffectiveMessage()
	if m == nil || m.Chat == nil {
		return nil, usageErr("CopyMessage", c.kind, "message")
	}
	p := Params{
		"chat_id":      toChatID,
		"from_chat_id": m.Chat.ID,
		"message_id":   m.MessageID,
	}.merged(flatten(extra))
	return c.caller.Call(ctx, "copyMessage", p)
}

// StopPoll stops the poll carried by the effective message.
func (c *Context) StopPoll(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.messageScoped(ctx, "StopPoll", "stopPoll", nil, extra)
}

// PinChatMessage pins a message in the resolved chat.
func (c *Context) PinChatMessage(ctx context.Context, messageID int64, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "PinChatMessage", "pinChatMessage", Params{"message_id": messageID}, extra)
}

// UnpinChatMessage unpins a message in the resolved chat. Without a
// message_id extra the most recent pinned message is unpinned.
func (c *Context) UnpinChatMessage(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "UnpinChatMessage", "unpinChatMessage", nil, extra)
}

// UnpinAllChatMessages clears the pinned-message list of the resolved chat.
func (c *Context) UnpinAllChatMessages(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "UnpinAllChatMessages", "unpinAllChatMessages", nil, extra)
}

// BanChatMember bans a user from the resolved chat.
func (c *Context) BanChatMember(ctx context.Context, userID int64, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "BanChatMember", "banChatMember", Params{"user_id": userID}, extra)
}

// UnbanChatMember lifts a ban in the resolved chat.
func (c *Context) UnbanChatMember(ctx context.Context, userID int64, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "UnbanChatMember", "unbanChatMember", Params{"user_id": userID}, extra)
}

// RestrictChatMember restricts a user in the resolved chat. permissions is
// a Bot API ChatPermissions object.
func (c *Context) RestrictChatMember(ctx context.Context, userID int64, permissions Params, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "RestrictChatMember", "restrictChatMember", Params{
		"user_id": userID, "permissions": permissions,
	}, extra)
}

// PromoteChatMember promotes or demotes a user in the resolved chat.
func (c *Context) PromoteChatMember(ctx context.Context, userID int64, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "PromoteChatMember", "promoteChatMember", Params{"user_id": userID}, extra)
}

// SetChatAdministratorCustomTitle sets a custom title for an administrator.
func (c *Context) SetChatAdministratorCustomTitle(ctx context.Context, userID int64, title string, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "SetChatAdministratorCustomTitle", "setChatAdministratorCustomTitle", Params{
		"user_id": userID, "custom_title": title,
	}, extra)
}

// BanChatSenderChat bans a channel chat in the resolved supergroup or channel.
func (c *Context) BanChatSenderChat(ctx context.Context, senderChatID int64, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "BanChatSenderChat", "banChatSenderChat", Params{"sender_chat_id": senderChatID}, extra)
}

// UnbanChatSenderChat lifts a channel chat ban in the resolved chat.
func (c *Context) UnbanChatSenderChat(ctx context.Context, senderChatID int64, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "UnbanChatSenderChat", "unbanChatSenderChat", Params{"sender_chat_id": senderChatID}, extra)
}

// SetChatPermissions sets default member permissions for the resolved chat.
func (c *Context) SetChatPermissions(ctx context.Context, permissions Params, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "SetChatPermissions", "setChatPermissions", Params{"permissions": permissions}, extra)
}

// ExportChatInviteLink regenerates the primary invite link of the resolved chat.
func (c *Context) ExportChatInviteLink(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "ExportChatInviteLink", "exportChatInviteLink", nil, extra)
}

// CreateChatInviteLink creates an additional invite link for the resolved chat.
func (c *Context) CreateChatInviteLink(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "CreateChatInviteLink", "createChatInviteLink", nil, extra)
}

// EditChatInviteLink edits a non-primary invite link of the resolved chat.
func (c *Context) EditChatInviteLink(ctx context.Context, inviteLink string, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "EditChatInviteLink", "editChatInviteLink", Params{"invite_link": inviteLink}, extra)
}

// RevokeChatInviteLink revokes an invite link of the resolved chat.
func (c *Context) RevokeChatInviteLink(ctx context.Context, inviteLink string, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "RevokeChatInviteLink", "revokeChatInviteLink", Params{"invite_link": inviteLink}, extra)
}

// SetChatPhoto sets a new chat photo by file id.
func (c *Context) SetChatPhoto(ctx context.Context, photo string, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "SetChatPhoto", "setChatPhoto", Params{"photo": photo}, extra)
}

// DeleteChatPhoto removes the chat photo.
func (c *Context) DeleteChatPhoto(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "DeleteChatPhoto", "deleteChatPhoto", nil, extra)
}

// SetChatTitle changes the title of the resolved chat.
func (c *Context) SetChatTitle(ctx context.Context, title string, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "SetChatTitle", "setChatTitle", Params{"title": title}, extra)
}

// SetChatDescription changes the description of the resolved chat.
func (c *Context) SetChatDescription(ctx context.Context, description string, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "SetChatDescription", "setChatDescription", Params{"description": description}, extra)
}

// SetChatStickerSet sets the group sticker set of the resolved supergroup.
func (c *Context) SetChatStickerSet(ctx context.Context, name string, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "SetChatStickerSet", "setChatStickerSet", Params{"sticker_set_name": name}, extra)
}

// DeleteChatStickerSet removes the group sticker set of the resolved supergroup.
func (c *Context) DeleteChatStickerSet(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "DeleteChatStickerSet", "deleteChatStickerSet", nil, extra)
}

// LeaveChat makes the bot leave the resolved chat.
func (c *Context) LeaveChat(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "LeaveChat", "leaveChat", nil, extra)
}

// GetChat fetches up-to-date information about the resolved chat.
func (c *Context) GetChat(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "GetChat", "getChat", nil, extra)
}

// GetChatAdministrators lists the administrators of the resolved chat.
func (c *Context) GetChatAdministrators(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "GetChatAdministrators", "getChatAdministrators", nil, extra)
}

// GetChatMember fetches a member of the resolved chat.
func (c *Context) GetChatMember(ctx context.Context, userID int64, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "GetChatMember", "getChatMember", Params{"user_id": userID}, extra)
}

// GetChatMemberCount returns the member count of the resolved chat.
func (c *Context) GetChatMemberCount(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "GetChatMemberCount", "getChatMemberCount", nil, extra)
}

// SetChatMenuButton changes the bot's menu button in the resolved chat.
func (c *Context) SetChatMenuButton(ctx context.Context, menuButton Params, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "SetChatMenuButton", "setChatMenuButton", Params{"menu_button": menuButton}, extra)
}

// ApproveChatJoinRequest approves the join request carried by this update.
func (c *Context) ApproveChatJoinRequest(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	req := c.update.ChatJoinRequest
	if req == nil || req.Chat == nil || req.From == nil {
		return nil, usageErr("ApproveChatJoinRequest", c.kind, "chat join request")
	}
	p := Params{"chat_id": req.Chat.ID, "user_id": req.From.ID}.merged(flatten(extra))
	return c.caller.Call(ctx, "approveChatJoinRequest", p)
}

// DeclineChatJoinRequest declines the join request carried by this update.
func (c *Context) DeclineChatJoinRequest(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	req := c.update.ChatJoinRequest
	if req == nil || req.Chat == nil || req.From == nil {
		return nil, usageErr("DeclineChatJoinRequest", c.kind, "chat join request")
	}
	p := Params{"chat_id": req.Chat.ID, "user_id": req.From.ID}.merged(flatten(extra))
	return c.caller.Call(ctx, "declineChatJoinRequest", p)
}

// GetUserProfilePhotos fetches the profile photos of the resolved user.
func (c *Context) GetUserProfilePhotos(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	from := c.From()
	if from == nil {
		return nil, usageErr("GetUserProfilePhotos", c.kind, "from")
	}
	p := Params{"user_id": from.ID}.merged(flatten(extra))
	return c.caller.Call(ctx, "getUserProfilePhotos", p)
}

// AnswerCallbackQuery answers the callback query carried by this update.
func (c *Context) AnswerCallbackQuery(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	q := c.update.CallbackQuery
	if q == nil {
		return nil, usageErr("AnswerCallbackQuery", c.kind, "callback query")
	}
	p := Params{"callback_query_id": q.ID}.merged(flatten(extra))
	return c.caller.Call(ctx, "answerCallbackQuery", p)
}

// AnswerInlineQuery answers the inline query carried by this update.
// Each result is a Bot API InlineQueryResult object.
func (c *Context) AnswerInlineQuery(ctx context.Context, results []Params, extra ...Params) (json.RawMessage, error) {
	q := c.update.InlineQuery
	if q == nil {
		return nil, usageErr("AnswerInlineQuery", c.kind, "inline query")
	}
	p := Params{"inline_query_id": q.ID, "results": results}.merged(flatten(extra))
	return c.caller.Call(ctx, "answerInlineQuery", p)
}

// AnswerShippingQuery answers the shipping query carried by this update.
func (c *Context) AnswerShippingQuery(ctx context.Context, ok bool, extra ...Params) (json.RawMessage, error) {
	q := c.update.ShippingQuery
	if q == nil {
		return nil, usageErr("AnswerShippingQuery", c.kind, "shipping query")
	}
	p := Params{"shipping_query_id": q.ID, "ok": ok}.merged(flatten(extra))
	return c.caller.Call(ctx, "answerShippingQuery", p)
}

// AnswerPreCheckoutQuery answers the pre-checkout query carried by this update.
func (c *Context) AnswerPreCheckoutQuery(ctx context.Context, ok bool, extra ...Params) (json.RawMessage, error) {
	q := c.update.PreCheckoutQuery
	if q == nil {
		return nil, usageErr("AnswerPreCheckoutQuery", c.kind, "pre-checkout query")
	}
	p := Params{"pre_checkout_query_id": q.ID, "ok": ok}.merged(flatten(extra))
	return c.caller.Call(ctx, "answerPreCheckoutQuery", p)
}

// EditMessageText edits the text of the addressed message.
func (c *Context) EditMessageText(ctx context.Context, text string, extra ...Params) (json.RawMessage, error) {
	return c.editScoped(ctx, "EditMessageText", "editMessageText", Params{"text": text}, extra)
}

// EditMessageCaption edits the caption of the addressed message.
func (c *Context) EditMessageCaption(ctx context.Context, caption string, extra ...Params) (json.RawMessage, error) {
	return c.editScoped(ctx, "EditMessageCaption", "editMessageCaption", Params{"caption": caption}, extra)
}

// EditMessageMedia replaces the media of the addressed message. media is a
// Bot API InputMedia object.
func (c *Context) EditMessageMedia(ctx context.Context, media Params, extra ...Params) (json.RawMessage, error) {
	return c.editScoped(ctx, "EditMessageMedia", "editMessageMedia", Params{"media": media}, extra)
}

// EditMessageReplyMarkup edits only the reply markup of the addressed message.
func (c *Context) EditMessageReplyMarkup(ctx context.Context, markup Params, extra ...Params) (json.RawMessage, error) {
	return c.editScoped(ctx, "EditMessageReplyMarkup", "editMessageReplyMarkup", Params{"reply_markup": markup}, extra)
}

// EditMessageLiveLocation moves the live location of the addressed message.
func (c *Context) EditMessageLiveLocation(ctx context.Context, latitude, longitude float64, extra ...Params) (json.RawMessage, error) {
	return c.editScoped(ctx, "EditMessageLiveLocation", "editMessageLiveLocation", Params{
		"latitude": latitude, "longitude": longitude,
	}, extra)
}

// StopMessageLiveLocation stops updating the live location of the addressed
// message.
func (c *Context) StopMessageLiveLocation(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.editScoped(ctx, "StopMessageLiveLocation", "stopMessageLiveLocation", nil, extra)
}

// CreateForumTopic creates a topic in the resolved forum supergroup. Unlike
// the other forum operations it does not need an originating thread.
func (c *Context) CreateForumTopic(ctx context.Context, name string, extra ...Params) (json.RawMessage, error) {
	return c.chatScoped(ctx, "CreateForumTopic", "createForumTopic", Params{"name": name}, extra)
}

// EditForumTopic edits the topic the effective message belongs to.
func (c *Context) EditForumTopic(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.forumScoped(ctx, "EditForumTopic", "editForumTopic", nil, extra)
}

// CloseForumTopic closes the topic the effective message belongs to.
func (c *Context) CloseForumTopic(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.forumScoped(ctx, "CloseForumTopic", "closeForumTopic", nil, extra)
}

// ReopenForumTopic reopens the topic the effective message belongs to.
func (c *Context) ReopenForumTopic(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.forumScoped(ctx, "ReopenForumTopic", "reopenForumTopic", nil, extra)
}

// DeleteForumTopic deletes the topic the effective message belongs to.
func (c *Context) DeleteForumTopic(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.forumScoped(ctx, "DeleteForumTopic", "deleteForumTopic", nil, extra)
}

// UnpinAllForumTopicMessages clears pinned messages in the topic the
// effective message belongs to.
func (c *Context) UnpinAllForumTopicMessages(ctx context.Context, extra ...Params) (json.RawMessage, error) {
	return c.forumScoped(ctx, "UnpinAllForumTopicMessages", "unpinAllForumTopicMessages", nil, extra)
}
