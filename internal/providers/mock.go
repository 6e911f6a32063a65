package providers

import "context"

// MockGenerator replays a scripted fragment sequence. Useful in tests and
// for exercising the pipeline without network access.
type MockGenerator struct {
	name      string
	fragments []Fragment

	// StreamErr, when set, is returned after the scripted fragments in place
	// of a normal end-of-stream.
	StreamErr error

	// OpenErr, when set, fails GenerateStream itself.
	OpenErr error

	// LastRequest records the most recent request for assertions.
	LastRequest *GenerateRequest
}

// NewMockGenerator creates a mock generator that yields the given fragments.
func NewMockGenerator(name string, fragments []Fragment) *MockGenerator {
	if name == "" {
		name = "mock"
	}
	return &MockGenerator{name: name, fragments: fragments}
}

// Name returns the mock's identifier.
func (m *MockGenerator) Name() string { return m.name }

// GenerateStream returns a stream over the scripted fragments.
func (m *MockGenerator) GenerateStream(ctx context.Context, req *GenerateRequest) (Stream, error) {
	m.LastRequest = req
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return NewSliceStream(m.fragments, m.StreamErr), nil
}
