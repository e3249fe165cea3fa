package notification

import "sync"

// Service hands out one Queue per signed-in seller, mirroring the
// per-screen alert stack each client renders.
type Service struct {
	mu     sync.Mutex
	queues map[string]*Queue
}

func NewService() *Service {
	return &Service{queues: make(map[string]*Queue)}
}

// ForUser returns the seller's queue, creating it on first use.
func (s *Service) ForUser(uid string) *Queue {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queues[uid]
	if !ok {
		q = NewQueue()
		s.queues[uid] = q
	}
	return q
}
