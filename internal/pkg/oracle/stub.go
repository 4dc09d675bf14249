package oracle

import (
	"context"
	"sync"
)

// Stub is a scripted Oracle for tests and the memory-backed dev mode.
// Responses are consumed per role in order; when a role's queue is empty the
// Default narrative is returned. A nil Err on a response means success.
type Stub struct {
	mu        sync.Mutex
	Default   string
	responses map[string][]StubResponse
	Calls     []StubCall
}

// StubResponse is one scripted oracle answer.
type StubResponse struct {
	Narrative string
	Err       error
}

// StubCall records one Evaluate invocation for assertions.
type StubCall struct {
	Role  string
	Input map[string]interface{}
}

// NewStub creates a Stub returning defaultNarrative when nothing is scripted.
func NewStub(defaultNarrative string) *Stub {
	return &Stub{
		Default:   defaultNarrative,
		responses: make(map[string][]StubResponse),
	}
}

// Script queues a response for a role.
func (s *Stub) Script(role string, resp StubResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[role] = append(s.responses[role], resp)
}

// Evaluate pops the next scripted response for the role.
func (s *Stub) Evaluate(ctx context.Context, role string, input map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, StubCall{Role: role, Input: input})

	queue := s.responses[role]
	if len(queue) == 0 {
		return s.Default, nil
	}

	next := queue[0]
	s.responses[role] = queue[1:]
	if next.Err != nil {
		return "", next.Err
	}
	return next.Narrative, nil
}
