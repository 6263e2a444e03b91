// Package actions tracks lifecycle requests that are in flight against the
// daemon, enforcing one pending request per container.
package actions

import (
	"time"
)

type Kind int

const (
	Start Kind = iota
	Stop
	Kill
	Remove
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Stop:
		return "stop"
	case Kill:
		return "kill"
	case Remove:
		return "remove"
	}
	return "unknown"
}

type Status int

const (
	Pending Status = iota
	Succeeded
	Failed
)

// Request is one lifecycle command issued against a container.
type Request struct {
	ID       string
	Kind     Kind
	Status   Status
	Err      error
	IssuedAt time.Time
}

// Set holds at most one request per container id. Only the render loop
// touches it, so there is no locking.
type Set struct {
	requests map[string]Request
	now      func() time.Time
}

func NewSet() *Set {
	return &Set{requests: make(map[string]Request), now: time.Now}
}

// Dispatch registers a pending request for the container. It reports false,
// registering nothing, when a pending request for the same id already
// exists.
func (s *Set) Dispatch(id string, kind Kind) bool {
	if existing, ok := s.requests[id]; ok && existing.Status == Pending {
		return false
	}
	s.requests[id] = Request{ID: id, Kind: kind, Status: Pending, IssuedAt: s.now()}
	return true
}

// Complete moves the pending request for id to its terminal status. Unknown
// or already-terminal ids report false; a late completion after a timeout
// has already failed the request must not resurrect it.
func (s *Set) Complete(id string, err error) bool {
	request, ok := s.requests[id]
	if !ok || request.Status != Pending {
		return false
	}
	if err != nil {
		request.Status = Failed
		request.Err = err
	} else {
		request.Status = Succeeded
	}
	s.requests[id] = request
	return true
}

// Retire removes a request once its terminal result has been folded into
// the list state. Pending requests cannot be retired.
func (s *Set) Retire(id string) {
	if request, ok := s.requests[id]; ok && request.Status != Pending {
		delete(s.requests, id)
	}
}

// Get returns the tracked request for id, if any.
func (s *Set) Get(id string) (Request, bool) {
	request, ok := s.requests[id]
	return request, ok
}

// IsPending reports whether a request for id is still awaiting its result.
func (s *Set) IsPending(id string) bool {
	request, ok := s.requests[id]
	return ok && request.Status == Pending
}

// AnyPending reports whether any request is awaiting its result.
func (s *Set) AnyPending() bool {
	for _, request := range s.requests {
		if request.Status == Pending {
			return true
		}
	}
	return false
}
