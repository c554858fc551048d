// Package submission drives an inquiry form through its lifecycle: local
// validation, a single submission call, and the success or failure display.
package submission

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"carlygage/internal/domain"
)

// DefaultSuccessDisplay is how long the confirmation stays up before the
// form resets.
const DefaultSuccessDisplay = 3 * time.Second

// ConfirmationMessage is shown after a successful submission
const ConfirmationMessage = "Thank You! Your inquiry has been sent. I'll be in touch within 24 hours."

var (
	// ErrSubmitInProgress is returned while a submission is outstanding
	ErrSubmitInProgress = errors.New("submission: inquiry is already being submitted")
	// ErrAlreadySubmitted is returned while the confirmation is displayed
	ErrAlreadySubmitted = errors.New("submission: inquiry was already submitted")
	// ErrClosed is returned once the form has been closed
	ErrClosed = errors.New("submission: form is closed")
)

// State is a step of the submission lifecycle
type State int

const (
	Idle State = iota
	Submitting
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Submitter hands a form to the inquiry endpoint
type Submitter interface {
	SubmitInquiry(ctx context.Context, form domain.InquiryForm) (domain.InquiryResult, error)
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(ctx context.Context, form domain.InquiryForm) (domain.InquiryResult, error)

// SubmitInquiry calls f
func (f SubmitterFunc) SubmitInquiry(ctx context.Context, form domain.InquiryForm) (domain.InquiryResult, error) {
	return f(ctx, form)
}

// TransitionFunc observes state changes
type TransitionFunc func(from, to State)

type stopper interface {
	Stop() bool
}

// Option configures a Form
type Option func(*Form)

// WithSuccessDisplay sets how long the confirmation is shown
func WithSuccessDisplay(d time.Duration) Option {
	return func(f *Form) {
		if d > 0 {
			f.display = d
		}
	}
}

// WithFallbackContact sets the address offered when delivery fails
func WithFallbackContact(email string) Option {
	return func(f *Form) { f.fallback = email }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

func withAfterFunc(fn func(time.Duration, func()) stopper) Option {
	return func(f *Form) { f.afterFunc = fn }
}

// Form is one inquiry panel. It is safe for concurrent use.
type Form struct {
	submitter Submitter
	display   time.Duration
	fallback  string
	logger    *zap.Logger
	afterFunc func(time.Duration, func()) stopper

	mu        sync.Mutex
	state     State
	values    domain.InquiryForm
	errs      map[string]string
	message   string
	reference string
	closed    bool
	timer     stopper
	listeners []TransitionFunc
}

// NewForm creates an idle form that submits through s
func NewForm(s Submitter, opts ...Option) *Form {
	f := &Form{
		submitter: s,
		display:   DefaultSuccessDisplay,
		logger:    zap.NewNop(),
		afterFunc: func(d time.Duration, fn func()) stopper { return time.AfterFunc(d, fn) },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// OnTransition registers fn for every subsequent state change
func (f *Form) OnTransition(fn TransitionFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

// Set replaces the entered values and clears any field errors
func (f *Form) Set(values domain.InquiryForm) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = values
	f.errs = nil
}

// Values returns the currently entered values
func (f *Form) Values() domain.InquiryForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// State returns the current state
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// FieldErrors returns the messages from the last local validation
func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// Message returns the confirmation or error message on display
func (f *Form) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Reference returns the reference of the last accepted submission
func (f *Form) Reference() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reference
}

// Submit validates the entered values and, when they pass, submits them
// once. Invalid values leave the form idle with FieldErrors populated and
// return the domain.ValidationErrors. A result arriving after Close is
// discarded and ErrClosed is returned.
func (f *Form) Submit(ctx context.Context) (domain.InquiryResult, error) {
	f.mu.Lock()
	switch {
	case f.closed:
		f.mu.Unlock()
		return domain.InquiryResult{}, ErrClosed
	case f.state == Submitting:
		f.mu.Unlock()
		return domain.InquiryResult{}, ErrSubmitInProgress
	case f.state == Success:
		f.mu.Unlock()
		return domain.InquiryResult{}, ErrAlreadySubmitted
	}

	if _, err := domain.ValidateInquiry(f.values); err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			f.errs = verrs.Fields()
		}
		f.message = ""
		f.mu.Unlock()
		return domain.InquiryResult{}, err
	}

	f.errs = nil
	f.message = ""
	values := f.values
	fired := f.transition(Submitting)
	f.mu.Unlock()
	f.notify(fired)

	result, err := f.submitter.SubmitInquiry(ctx, values)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		f.logger.Debug("discarding inquiry result after close", zap.Bool("success", result.Success))
		return result, ErrClosed
	}

	if err != nil || !result.Success {
		f.message = f.failureMessage(result, err)
		fired = f.transition(Failed)
		fired = append(fired, f.transition(Idle)...)
		f.mu.Unlock()
		f.notify(fired)
		f.logger.Info("inquiry submission failed", zap.Error(err), zap.String("message", result.Error))
		if err != nil {
			return result, fmt.Errorf("submit inquiry: %w", err)
		}
		return result, nil
	}

	f.values = domain.InquiryForm{}
	f.message = ConfirmationMessage
	f.reference = result.Reference
	fired = f.transition(Success)
	f.timer = f.afterFunc(f.display, f.reset)
	f.mu.Unlock()
	f.notify(fired)
	return result, nil
}

// Close discards the panel. An in-flight submission is not cancelled; its
// result is ignored.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// Closed reports whether Close was called
func (f *Form) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// reset runs when the confirmation display elapses
func (f *Form) reset() {
	f.mu.Lock()
	if f.closed || f.state != Success {
		f.mu.Unlock()
		return
	}
	f.timer = nil
	f.message = ""
	fired := f.transition(Idle)
	f.mu.Unlock()
	f.notify(fired)
}

func (f *Form) failureMessage(result domain.InquiryResult, err error) string {
	if err == nil && result.Error != "" {
		return result.Error
	}
	if f.fallback == "" {
		return "Something went wrong sending your inquiry. Please try again."
	}
	return fmt.Sprintf("Something went wrong sending your inquiry. Please contact %s directly.", f.fallback)
}

type firedTransition struct {
	from, to  State
	listeners []TransitionFunc
}

// transition must be called with mu held; listeners run after unlock
func (f *Form) transition(to State) []firedTransition {
	from := f.state
	f.state = to
	if len(f.listeners) == 0 {
		return nil
	}
	ls := make([]TransitionFunc, len(f.listeners))
	copy(ls, f.listeners)
	return []firedTransition{{from: from, to: to, listeners: ls}}
}

func (f *Form) notify(fired []firedTransition) {
	for _, t := range fired {
		for _, fn := range t.listeners {
			fn(t.from, t.to)
		}
	}
}
