package gateway

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
)

// Handle addresses one posted message.
type Handle struct {
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
}

func (h Handle) IsZero() bool {
	return h.MessageID == ""
}

func (h Handle) String() string {
	return fmt.Sprintf("%s/%s", h.ChannelID, h.MessageID)
}

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Content is a message body independent of how the gateway renders it.
type Content struct {
	Text        string
	Title       string
	Description string
	Fields      []Field
	Footer      string
	Color       int
	// Reference makes the message a reply to an existing one.
	Reference Handle
}

type Gateway interface {
	CreateMessage(ctx context.Context, location string, content Content) (Handle, error)
	PinMessage(ctx context.Context, handle Handle) error
	UnpinMessage(ctx context.Context, handle Handle) error
	EditMessage(ctx context.Context, handle Handle, content Content) error
	DeleteMessage(ctx context.Context, handle Handle) error
	AddReaction(ctx context.Context, handle Handle, symbol string) error
	FetchMessage(ctx context.Context, handle Handle) (Content, error)
}

type Result int

const (
	Ok Result = iota
	PermissionDenied
	NotFound
	TransientFailure
)

func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case PermissionDenied:
		return "permission_denied"
	case NotFound:
		return "not_found"
	default:
		return "transient_failure"
	}
}

// Classify maps a gateway error onto the failure taxonomy.
func Classify(err error) Result {
	switch {
	case err == nil:
		return Ok
	case errors.Is(err, ErrPermissionDenied):
		return PermissionDenied
	case errors.Is(err, ErrNotFound):
		return NotFound
	default:
		return TransientFailure
	}
}
