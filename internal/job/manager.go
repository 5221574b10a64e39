package job

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/windshadowstudio/engine/pkg/config"
)

// Lookup failures, distinct from job success or failure state.
var (
	ErrJobNotFound    = errors.New("job not found")
	ErrOutputNotFound = errors.New("file kind not available")
)

// Manager owns the job registry and spawns one worker goroutine per
// submitted run. Jobs live until process teardown; there is no expiry
// and no cancellation.
type Manager struct {
	mu   sync.RWMutex
	jobs map[string]*Job

	logger *zap.SugaredLogger
	runs   config.RunStore // optional run-history sink, may be nil
}

// NewManager creates a job manager. runs may be nil to disable run
// history.
func NewManager(logger *zap.SugaredLogger, runs config.RunStore) *Manager {
	return &Manager{
		jobs:   make(map[string]*Job),
		logger: logger,
		runs:   runs,
	}
}

// Submit registers a new running job and hands the work to a background
// goroutine. It returns the job id without blocking on the run.
func (m *Manager) Submit(p *config.Project) string {
	id := uuid.NewString()
	j := newJob(id)

	m.mu.Lock()
	m.jobs[id] = j
	m.mu.Unlock()

	m.logger.Infow("job submitted", "job", id, "turbines", len(p.Turbines))
	go m.runJob(j, p)
	return id
}

// Query returns a snapshot of the job, or ErrJobNotFound.
func (m *Manager) Query(id string) (View, error) {
	j, ok := m.get(id)
	if !ok {
		return View{}, ErrJobNotFound
	}
	return j.View(), nil
}

// OutputPath returns the artifact path for a produced output kind, or a
// not-found error when the job or the kind is unknown.
func (m *Manager) OutputPath(id, kind string) (string, error) {
	j, ok := m.get(id)
	if !ok {
		return "", ErrJobNotFound
	}
	path, ok := j.outputPath(kind)
	if !ok {
		return "", ErrOutputNotFound
	}
	return path, nil
}

func (m *Manager) get(id string) (*Job, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	return j, ok
}
