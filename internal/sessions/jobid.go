package sessions

import "sync"

// JobStore holds the identifier of the game server instance buyers should join.
type JobStore struct {
	mu    sync.RWMutex
	jobID string
}

func NewJobStore() *JobStore {
	return &JobStore{}
}

func (s *JobStore) Set(jobID string) {
	s.mu.Lock()
	s.jobID = jobID
	s.mu.Unlock()
}

// Get returns the current job id and whether one has been set.
func (s *JobStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobID, s.jobID != ""
}
