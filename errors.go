package tgram

import (
	"errors"
	"fmt"
)

// ErrInvalidJSON is returned when input bytes are not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// ResponseParameters carries the retry hints the Bot API attaches to some
// failed requests.
// See https://core.telegram.org/bots/api#responseparameters
type ResponseParameters struct {
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      int   `json:"retry_after,omitempty"`
}

// Error is a failure reported by the Bot API itself: the request reached
// Telegram and was rejected with an error code and description. It is
// propagated to callers unchanged; this package never retries or
// reinterprets it.
type Error struct {
	ErrorCode   int                 `json:"error_code"`
	Description string              `json:"description"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("telegram: %d %s", e.ErrorCode, e.Description)
}

// RetryAfter returns the number of seconds to wait before retrying, or
// false when the API attached no such hint.
func (e *Error) RetryAfter() (int, bool) {
	if e.Parameters == nil || e.Parameters.RetryAfter == 0 {
		return 0, false
	}
	return e.Parameters.RetryAfter, true
}

// MigratedTo returns the supergroup id the chat was migrated to, or false
// when the API attached no such hint.
func (e *Error) MigratedTo() (int64, bool) {
	if e.Parameters == nil || e.Parameters.MigrateToChatID == 0 {
		return 0, false
	}
	return e.Parameters.MigrateToChatID, true
}

// HTTPError is a transport-level failure: the HTTP exchange with the given
// URL did not yield a decodable Bot API response.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("telegram: HTTP %d from %s", e.StatusCode, e.URL)
}

// UsageError reports programmer misuse of a Context: an operation was
// invoked on an update kind it is not valid for, or a required sub-field
// (such as a forum thread id) is missing. It is raised synchronously,
// before any transport activity.
type UsageError struct {
	Op   string
	Kind UpdateType
	Want string // the derived field the operation requires
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("tgram: %s requires %s, not available for %q update", e.Op, e.Want, e.Kind)
}

func usageErr(op string, kind UpdateType, want string) error {
	return &UsageError{Op: op, Kind: kind, Want: want}
}
