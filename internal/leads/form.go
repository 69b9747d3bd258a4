package leads

import (
	"context"
	"sync"
	"time"
)

// Status is the state of a lead form submission.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Form tracks one visitor's submission: idle → loading → success | error.
// A form never re-enters loading while it is already loading.
type Form struct {
	creator Creator

	mu      sync.Mutex
	status  Status
	lead    *Lead
	touched time.Time
}

// NewForm returns an idle form submitting through creator.
func NewForm(creator Creator) *Form {
	return &Form{creator: creator, status: StatusIdle, touched: time.Now()}
}

// Status returns the current state.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Lead returns the lead created by the last successful submission.
func (f *Form) Lead() *Lead {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lead
}

// SubmitDisabled reports whether the submit control must be disabled. It is
// true only while a submission is loading.
func (f *Form) SubmitDisabled() bool {
	return f.Status() == StatusLoading
}

// Submit sends req once. Any failure, transport or status, ends in
// StatusError; there is no retry. Submitting while loading returns
// ErrSubmissionInFlight and leaves the state untouched.
func (f *Form) Submit(ctx context.Context, req CreateLeadRequest) (Status, error) {
	f.mu.Lock()
	if f.status == StatusLoading {
		f.mu.Unlock()
		return StatusLoading, ErrSubmissionInFlight
	}
	f.status = StatusLoading
	f.touched = time.Now()
	f.mu.Unlock()

	lead, err := f.creator.CreateLead(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = time.Now()
	if err != nil {
		f.status = StatusError
		return f.status, err
	}
	f.status = StatusSuccess
	f.lead = lead
	return f.status, nil
}

func (f *Form) touch(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if now.After(f.touched) {
		f.touched = now
	}
}

func (f *Form) idleSince(now time.Time) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusLoading {
		return 0
	}
	return now.Sub(f.touched)
}

// Forms holds one Form per visitor, keyed by session id.
type Forms struct {
	creator Creator
	ttl     time.Duration

	mu    sync.Mutex
	forms map[string]*Form
}

// NewForms returns a registry whose idle forms expire after ttl.
func NewForms(creator Creator, ttl time.Duration) *Forms {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Forms{creator: creator, ttl: ttl, forms: make(map[string]*Form)}
}

// For returns the form of visitor id, creating it on first use. Handing out
// a form counts as activity, so Prune keeps it for another ttl.
func (r *Forms) For(id string) *Form {
	return r.forAt(id, time.Now())
}

func (r *Forms) forAt(id string, now time.Time) *Form {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.forms[id]
	if !ok {
		f = NewForm(r.creator)
		r.forms[id] = f
	}
	f.touch(now)
	return f
}

// Len returns the number of tracked visitors.
func (r *Forms) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// Prune drops forms that have been idle for longer than the ttl and
// returns how many were removed. Loading forms are never dropped.
func (r *Forms) Prune(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, f := range r.forms {
		if f.idleSince(now) > r.ttl {
			delete(r.forms, id)
			removed++
		}
	}
	return removed
}

// Janitor prunes expired forms every interval until ctx is done.
func (r *Forms) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.Prune(now)
		}
	}
}
