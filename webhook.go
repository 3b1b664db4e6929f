package tgram

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// UpdateHandler processes one canonical update. Returned errors are
// reported through the webhook's error hook after the response has been
// finalized; they are never written to the HTTP response.
type UpdateHandler func(ctx context.Context, u *Update) error

// Filter decides whether a request is accepted for processing. Returning
// false rejects the request without reading its body.
type Filter func(r *http.Request) bool

type ctxKey int

const (
	updateKey ctxKey = iota
	rawBodyKey
	dispatchIDKey
	responseKey
)

// RequestWithUpdate attaches an already-parsed update to the request. The
// webhook dispatches it as-is, skipping body parsing entirely.
func RequestWithUpdate(r *http.Request, u *Update) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), updateKey, u))
}

// RequestWithBody attaches a pre-read raw body to the request. The webhook
// parses these bytes instead of reading the body stream.
func RequestWithBody(r *http.Request, body []byte) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), rawBodyKey, body))
}

// DispatchID returns the correlation id the webhook assigned to this
// dispatch, or "" outside a webhook dispatch.
func DispatchID(ctx context.Context) string {
	id, _ := ctx.Value(dispatchIDKey).(string)
	return id
}

// WebhookResponse returns the response writer of the webhook request being
// dispatched, for handlers that answer the webhook call directly (e.g. by
// writing a method call as the response body). The adapter still finalizes
// the response exactly once if the handler writes nothing.
func WebhookResponse(ctx context.Context) (http.ResponseWriter, bool) {
	rw, ok := ctx.Value(responseKey).(http.ResponseWriter)
	return rw, ok
}

// OnDispatchFunc is called just before the update handler runs.
type OnDispatchFunc func(ctx context.Context, kind UpdateType)

// OnErrorFunc is called when the update handler returns an error, after
// the response has been finalized.
type OnErrorFunc func(ctx context.Context, u *Update, err error)

// Webhook is the HTTP ingestion adapter: it filters requests, normalizes
// their bodies into canonical updates, dispatches the handler, and
// guarantees exactly one HTTP response per request.
//
// Statuses: 403 when the filter rejects, 415 when the body cannot be
// parsed, otherwise whatever the handler wrote (200 with empty body when
// it wrote nothing).
type Webhook struct {
	handler    UpdateHandler
	filter     Filter
	reject     http.HandlerFunc
	onDispatch []OnDispatchFunc
	onError    []OnErrorFunc
	logger     *slog.Logger
}

var _ http.Handler = (*Webhook)(nil)

// WebhookOption configures a Webhook.
type WebhookOption func(*Webhook)

// WithFilter sets a request filter. Rejected requests get the reject
// response (default 403, no body) and never reach the handler.
func WithFilter(f Filter) WebhookOption {
	return func(w *Webhook) {
		w.filter = f
	}
}

// WithOnReject replaces the default 403 response for filtered requests.
func WithOnReject(h http.HandlerFunc) WebhookOption {
	return func(w *Webhook) {
		w.reject = h
	}
}

// WithOnDispatch adds a hook called just before the handler runs.
// Multiple hooks are called in order.
func WithOnDispatch(fn OnDispatchFunc) WebhookOption {
	return func(w *Webhook) {
		w.onDispatch = append(w.onDispatch, fn)
	}
}

// WithOnError adds a hook called when the handler returns an error.
// Multiple hooks are called in order. Without any, handler errors are
// logged.
func WithOnError(fn OnErrorFunc) WebhookOption {
	return func(w *Webhook) {
		w.onError = append(w.onError, fn)
	}
}

// WithWebhookLogger sets the logger for parse failures and handler errors.
func WithWebhookLogger(l *slog.Logger) WebhookOption {
	return func(w *Webhook) {
		w.logger = l
	}
}

// NewWebhook creates a webhook adapter around an update handler.
//
// Example:
//
//	wh := tgram.NewWebhook(handleUpdate,
//	    tgram.WithFilter(func(r *http.Request) bool {
//	        return r.Header.Get("X-Telegram-Bot-Api-Secret-Token") == secret
//	    }),
//	)
//	http.Handle("/telegram", wh)
func NewWebhook(handler UpdateHandler, opts ...WebhookOption) *Webhook {
	w := &Webhook{
		handler: handler,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ServeHTTP implements http.Handler. The response is finalized exactly
// once even when the handler writes its own response, returns an error,
// or panics; a panic is re-raised after finalizing.
func (w *Webhook) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if w.filter != nil && !w.filter(r) {
		if w.reject != nil {
			w.reject(rw, r)
			return
		}
		rw.WriteHeader(http.StatusForbidden)
		return
	}

	u, ok := w.normalize(rw, r)
	if !ok {
		return
	}

	id := uuid.NewString()
	tracked := &trackingWriter{ResponseWriter: rw}

	ctx := context.WithValue(r.Context(), dispatchIDKey, id)
	ctx = context.WithValue(ctx, responseKey, http.ResponseWriter(tracked))

	kind, _ := Classify(u)
	for _, fn := range w.onDispatch {
		fn(ctx, kind)
	}

	// Finalize on every exit, including a handler panic; the panic then
	// continues to the server as usual.
	defer tracked.finalize()

	if err := w.handler(ctx, u); err != nil {
		tracked.finalize()
		if len(w.onError) == 0 {
			w.logger.Error("update handler failed",
				slog.String("dispatch_id", id),
				slog.String("update_type", kind.String()),
				slog.Any("error", err))
			return
		}
		for _, fn := range w.onError {
			fn(ctx, u, err)
		}
	}
}

// normalize produces the canonical update from one of the three request
// shapes: attached update, attached raw body, or the body stream. On parse
// failure it responds 415 and reports false.
func (w *Webhook) normalize(rw http.ResponseWriter, r *http.Request) (*Update, bool) {
	if u, ok := r.Context().Value(updateKey).(*Update); ok && u != nil {
		return u, true
	}

	raw, ok := r.Context().Value(rawBodyKey).([]byte)
	if !ok {
		var err error
		raw, err = io.ReadAll(r.Body)
		if err != nil {
			w.unsupported(rw, r, err)
			return nil, false
		}
	}

	if !gjson.ValidBytes(raw) {
		w.unsupported(rw, r, ErrInvalidJSON)
		return nil, false
	}
	var u Update
	if err := json.Unmarshal(raw, &u); err != nil {
		w.unsupported(rw, r, err)
		return nil, false
	}
	return &u, true
}

func (w *Webhook) unsupported(rw http.ResponseWriter, r *http.Request, err error) {
	w.logger.Warn("cannot parse webhook body",
		slog.String("remote", r.RemoteAddr),
		slog.Any("error", err))
	rw.WriteHeader(http.StatusUnsupportedMediaType)
}

// trackingWriter remembers whether anything was written so the adapter can
// finalize the response without ever double-ending it.
type trackingWriter struct {
	http.ResponseWriter
	wrote bool
}

func (t *trackingWriter) WriteHeader(status int) {
	t.wrote = true
	t.ResponseWriter.WriteHeader(status)
}

func (t *trackingWriter) Write(b []byte) (int, error) {
	t.wrote = true
	return t.ResponseWriter.Write(b)
}

func (t *trackingWriter) finalize() {
	if t.wrote {
		return
	}
	t.wrote = true
	t.ResponseWriter.WriteHeader(http.StatusOK)
}
