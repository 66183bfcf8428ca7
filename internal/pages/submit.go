package pages

import (
	"context"
	"errors"

	"github.com/khadija-altaf/folio/internal/logger"
)

// ErrSubmissionFailed is returned by Simulated when configured to fail.
var ErrSubmissionFailed = errors.New("message could not be delivered")

// Message is a contact form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submitter delivers a contact message. It is called once the submission
// delay has elapsed.
type Submitter interface {
	Submit(ctx context.Context, m Message) error
}

// Simulated accepts every message without sending it anywhere, unless Fail
// is set.
type Simulated struct {
	Fail bool
	Log  *logger.Logger
}

func (s Simulated) Submit(_ context.Context, m Message) error {
	if s.Fail {
		return ErrSubmissionFailed
	}
	s.Log.WithFields(map[string]any{
		"name":    m.Name,
		"email":   m.Email,
		"subject": m.Subject,
	}).Info("contact form submitted")
	return nil
}
