// Package tgram provides the update-ingestion and context-resolution core
// of a Telegram bot: webhook ingestion, update classification, and a
// per-update Context with guarded convenience operations.
//
// A Telegram Update is a closed tagged union: exactly one of its ~15
// payload fields is populated, and which one decides what the update means.
// This package classifies updates, resolves the chat, user and message each
// one is about, and delegates outbound calls to a pluggable transport.
//
// # Quick Start
//
// Wire a handler through the webhook adapter and answer updates through a
// Context:
//
//	client := tgram.NewClient(token)
//	me, _ := client.GetMe(context.Background())
//
//	wh := tgram.NewWebhook(func(ctx context.Context, u *tgram.Update) error {
//	    c := tgram.NewContext(*u, client, me)
//	    if c.Text() == "/start" {
//	        _, err := c.Reply(ctx, "hello")
//	        return err
//	    }
//	    return nil
//	})
//
//	http.Handle("/telegram", wh)
//
// # Classification
//
// Classify scans the update's payload fields in declaration order and
// returns the first populated one. The only failure mode is an update with
// no populated field at all (ErrEmptyUpdate). ClassifyRaw performs the same
// scan over raw JSON without a full unmarshal.
//
// # Resolution Order
//
// Context.Chat and Context.From probe the update kinds that can carry a
// chat or user in a fixed priority order, returning the first match. The
// two orders differ on purpose: query-type updates (callback, inline,
// shipping, pre-checkout, chosen inline result) always originate from a
// user but never carry a chat directly, so they lead the From order and
// are absent from the Chat order. Both fall back to "the message this
// update is about": message, edited message, the message embedded in a
// callback query, channel post, edited channel post, in that order.
//
// # Guarded Operations
//
// Every convenience operation resolves the derived field it needs and
// fails synchronously with a *UsageError, naming the operation and the
// update kind, when that field is absent, before any network activity:
//
//	_, err := c.BanChatMember(ctx, userID)
//	var ue *tgram.UsageError
//	if errors.As(err, &ue) {
//	    // operation not valid for this update kind
//	}
//
// Transport results and failures pass through unchanged: API rejections
// surface as *Error (with retry hints), transport failures as *HTTPError.
//
// # Webhook Ingestion
//
// The Webhook adapter accepts three request shapes, tried in order: an update attached
// via RequestWithUpdate, raw bytes attached via RequestWithBody, or the
// request body stream. Unparsable bodies get a 415,
// filtered requests a 403, and the response is finalized exactly once per
// request regardless of what the handler does.
package tgram
