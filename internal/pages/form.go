package pages

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/khadija-altaf/folio/internal/clock"
	"github.com/khadija-altaf/folio/internal/notifications"
)

var (
	// ErrInvalidForm is returned by Submit when a required field is empty.
	ErrInvalidForm = errors.New("all fields are required")
	// ErrNotIdle is returned when the form is busy with a submission.
	ErrNotIdle = errors.New("form is not idle")
	// ErrUnknownField is returned by SetField for names outside the form.
	ErrUnknownField = errors.New("unknown form field")
)

// Phase is the submission state of the contact form.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
)

// Field names accepted by SetField.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Toast copy for the two outcomes of a submission.
var (
	SuccessToast = notifications.Toast{
		Title:       "Message Sent Successfully!",
		Description: "Thank you for reaching out. I'll get back to you within 24 hours.",
		Variant:     notifications.VariantDefault,
	}
	FailureToast = notifications.Toast{
		Title:       "Error Sending Message",
		Description: "Please try again later or contact me directly via email.",
		Variant:     notifications.VariantDestructive,
	}
)

// Fields are the four text inputs of the form.
type Fields struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

var (
	formValidatorOnce sync.Once
	formValidator     *validator.Validate
)

func fieldsValidator() *validator.Validate {
	formValidatorOnce.Do(func() {
		formValidator = validator.New()
	})
	return formValidator
}

// FormState is the payload of a contact event and the form part of the
// Contact view.
type FormState struct {
	Phase  Phase  `json:"phase"`
	Fields Fields `json:"fields"`
}

// Form is the contact form state machine:
//
//	idle --Submit--> submitting --delay--> submitted --reset--> idle
//	                 submitting --failure--> idle
//
// The submission delay is scheduled on the host's background scope and
// always completes, so the outcome toast is shown even if the page was left.
// Form state is only written while the page is still mounted.
type Form struct {
	host    Host
	mounted func() bool

	phase  Phase
	fields Fields
	reset  clock.Handle
}

func newForm(h Host, mounted func() bool) *Form {
	return &Form{host: h, mounted: mounted, phase: PhaseIdle}
}

// Phase returns the current phase.
func (f *Form) Phase() Phase { return f.phase }

// Fields returns the current field values.
func (f *Form) Fields() Fields { return f.fields }

// State returns the phase and fields together.
func (f *Form) State() FormState { return FormState{Phase: f.phase, Fields: f.fields} }

// SetField updates one field. Edits are accepted only while idle.
func (f *Form) SetField(name, value string) error {
	if f.phase != PhaseIdle {
		return ErrNotIdle
	}
	switch name {
	case FieldName:
		f.fields.Name = value
	case FieldEmail:
		f.fields.Email = value
	case FieldSubject:
		f.fields.Subject = value
	case FieldMessage:
		f.fields.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Submit starts a submission. The form must be idle and every field
// non-empty.
func (f *Form) Submit() error {
	if f.phase != PhaseIdle {
		return ErrNotIdle
	}
	if err := fieldsValidator().Struct(f.fields); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	f.phase = PhaseSubmitting
	f.changed()

	msg := Message(f.fields)
	delay := f.host.Timing.SubmitDelay
	if delay <= 0 {
		delay = DefaultTiming().SubmitDelay
	}
	bg := f.host.Background
	if bg == nil {
		bg = f.host.Scope
	}
	bg.After(delay, func() { f.complete(msg) })
	return nil
}

func (f *Form) complete(msg Message) {
	err := f.submitter().Submit(context.Background(), msg)
	if err != nil {
		f.host.Log.Error(err, "contact form submission failed")
		f.host.Toasts.Enqueue(FailureToast)
		if f.mounted() {
			f.phase = PhaseIdle
			f.changed()
		}
		return
	}

	if f.mounted() {
		f.fields = Fields{}
		f.phase = PhaseSubmitted
		f.changed()
	}
	f.host.Toasts.Enqueue(SuccessToast)
	if !f.mounted() {
		return
	}

	reset := f.host.Timing.SubmittedReset
	if reset <= 0 {
		reset = DefaultTiming().SubmittedReset
	}
	f.reset = f.host.Scope.After(reset, func() {
		f.phase = PhaseIdle
		f.changed()
	})
}

func (f *Form) submitter() Submitter {
	if f.host.Submitter == nil {
		return Simulated{Log: f.host.Log}
	}
	return f.host.Submitter
}

func (f *Form) changed() {
	f.host.emit(EventContact, f.State())
}
