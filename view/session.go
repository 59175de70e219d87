package view

import (
	"context"
	"sort"
	"sync"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseSuccess
	PhaseError
)

// Session drives the view state machine: loading -> {success, error},
// with a manual retry re-entering loading. Within success, every filter
// edit recomputes the visible projection synchronously.
type Session struct {
	client *Client

	mu      sync.Mutex
	phase   Phase
	errMsg  string
	records []Record
	filter  Filter
}

func NewSession(c *Client) *Session {
	return &Session{client: c, phase: PhaseLoading}
}

// Load fetches the endpoint and transitions to success or error. The
// previous record set is discarded and rebuilt wholesale.
func (s *Session) Load(ctx context.Context) {
	s.mu.Lock()
	s.phase = PhaseLoading
	s.errMsg = ""
	s.mu.Unlock()

	records, err := s.client.FetchListings(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.phase = PhaseError
		s.errMsg = err.Error()
		s.records = nil
		return
	}
	s.phase = PhaseSuccess
	s.records = records
}

// Retry re-enters loading from the error state.
func (s *Session) Retry(ctx context.Context) {
	s.Load(ctx)
}

// StartLoading flips the phase to loading without fetching, for callers
// that dispatch Load asynchronously and render in between.
func (s *Session) StartLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseLoading
	s.errMsg = ""
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Session) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

func (s *Session) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Visible returns the filtered projection of the current record set.
func (s *Session) Visible() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.Apply(s.records)
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Categories lists the distinct categories present in the record set,
// sorted, for populating the category selector.
func (s *Session) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return distinct(s.records, func(r Record) string { return r.Category })
}

// Statuses lists the distinct statuses present in the record set.
func (s *Session) Statuses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return distinct(s.records, func(r Record) string { return r.Status })
}

// Tags lists the distinct tags across the record set.
func (s *Session) Tags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range s.records {
		for _, t := range r.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

func distinct(records []Record, key func(Record) string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
