package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrRejected          = errors.New("request rejected")
	ErrMalformedResponse = errors.New("malformed response")
)

// RejectedError is a request the server understood and refused, either with
// a 4xx status or with a {"success": false} payload. Message is the server's
// text when it sent one.
type RejectedError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Op, ErrRejected)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

// Message returns the text to show a user for err: the server's own
// message for rejections, a fixed hint when the server is unreachable,
// and err.Error() otherwise.
func Message(err error) string {
	var rej *RejectedError
	switch {
	case errors.As(err, &rej) && rej.Message != "":
		return rej.Message
	case errors.Is(err, ErrUnavailable):
		return "server unavailable, please try again"
	case errors.Is(err, ErrUnauthorized):
		return "not authorized"
	default:
		return err.Error()
	}
}
