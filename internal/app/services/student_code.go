package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/yigit/studentreg/internal/pkg/apperrors"
)

const (
	studentCodePrefix      = "STU"
	studentCodeMinSuffix   = 1000
	studentCodeMaxSuffix   = 9999
	maxStudentCodeAttempts = 10
)

// StudentCodeGenerator produces codes of the form STU<year><1000-9999> that no
// existing student uses.
type StudentCodeGenerator struct {
	students    StudentStore
	now         func() time.Time
	maxAttempts int

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewStudentCodeGenerator creates a generator seeded from the clock
func NewStudentCodeGenerator(students StudentStore) *StudentCodeGenerator {
	return &StudentCodeGenerator{
		students:    students,
		now:         time.Now,
		maxAttempts: maxStudentCodeAttempts,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithClock replaces the time source
func (g *StudentCodeGenerator) WithClock(now func() time.Time) *StudentCodeGenerator {
	g.now = now
	return g
}

// WithRand replaces the random source
func (g *StudentCodeGenerator) WithRand(rnd *rand.Rand) *StudentCodeGenerator {
	g.rnd = rnd
	return g
}

func (g *StudentCodeGenerator) candidate() string {
	g.mu.Lock()
	n := studentCodeMinSuffix + g.rnd.Intn(studentCodeMaxSuffix-studentCodeMinSuffix+1)
	g.mu.Unlock()
	return fmt.Sprintf("%s%d%04d", studentCodePrefix, g.now().Year(), n)
}

// Generate draws candidates until one is unused, giving up after a bounded number of attempts
func (g *StudentCodeGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		code := g.candidate()
		taken, err := g.students.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check student code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", apperrors.ErrStudentCodeExhausted
}
