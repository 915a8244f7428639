package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ikkim/localdir-backend/pkg/logger"
	"github.com/ikkim/localdir-backend/pkg/util"
)

// Challenge is a one-time human-verification question gating review
// submission. Challenges live only in memory and are scoped to a submission
// session (one open review form); a restart clears them all.
type Challenge struct {
	SessionID string    `json:"session_id"`
	Question  string    `json:"question"`
	IssuedAt  time.Time `json:"issued_at"`
}

// ChallengeService issues and checks challenges. The generation strategy sits
// behind this interface so it can change without touching the review flow.
type ChallengeService interface {
	// Issue creates a fresh challenge for the session, superseding any
	// previously issued one. An empty sessionID starts a new session.
	Issue(sessionID string) Challenge
	// Verify compares the supplied answer against the session's active
	// challenge. It never mutates state; re-issuing is the caller's call.
	Verify(sessionID, answer string) bool
	// VerifyAndConsume checks the answer and, on success, invalidates the
	// session's challenge in the same critical section. Two concurrent
	// submissions with the correct answer cannot both pass; a wrong answer
	// leaves the challenge in place.
	VerifyAndConsume(sessionID, answer string) bool
}

type issuedChallenge struct {
	question string
	answer   string
	issuedAt time.Time
}

type challengeService struct {
	mu     sync.RWMutex
	active map[string]issuedChallenge
}

func NewChallengeService() ChallengeService {
	return &challengeService{
		active: make(map[string]issuedChallenge),
	}
}

func (s *challengeService) Issue(sessionID string) Challenge {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	question, answer := generateArithmeticChallenge()
	issued := issuedChallenge{
		question: question,
		answer:   answer,
		issuedAt: time.Now(),
	}

	s.mu.Lock()
	// Overwriting invalidates the previous challenge for this session.
	s.active[sessionID] = issued
	s.mu.Unlock()

	logger.Debug("Issued challenge", map[string]interface{}{
		"session_id": sessionID,
	})

	return Challenge{
		SessionID: sessionID,
		Question:  question,
		IssuedAt:  issued.issuedAt,
	}
}

func (s *challengeService) Verify(sessionID, answer string) bool {
	s.mu.RLock()
	issued, ok := s.active[sessionID]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	return normalizeAnswer(answer) == normalizeAnswer(issued.answer)
}

func (s *challengeService) VerifyAndConsume(sessionID, answer string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	issued, ok := s.active[sessionID]
	if !ok || normalizeAnswer(answer) != normalizeAnswer(issued.answer) {
		return false
	}
	delete(s.active, sessionID)
	return true
}

// normalizeAnswer trims whitespace and lowercases. Arithmetic answers are
// digits so the lowercasing only matters for future question generators, but
// the comparison contract stays uniform.
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// generateArithmeticChallenge builds a single-digit addition or subtraction
// question. Subtraction uses the absolute difference so the answer is never
// negative.
func generateArithmeticChallenge() (question, answer string) {
	a := util.GenerateRandomNumber(1, 9)
	b := util.GenerateRandomNumber(1, 9)

	if util.GenerateRandomNumber(0, 1) == 0 {
		return fmt.Sprintf("%d + %d = ?", a, b), fmt.Sprintf("%d", a+b)
	}

	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return fmt.Sprintf("%d - %d = ?", a, b), fmt.Sprintf("%d", diff)
}
