// Package job tracks asynchronous simulation runs: each submitted run
// executes on its own goroutine and mutates a registry-held JobState that
// pollers read concurrently.
package job

import (
	"fmt"
	"sync"
	"time"

	"github.com/windshadowstudio/engine/internal/sim"
)

// Status is the lifecycle state of a job. Done and error are terminal.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// maxLogLines caps how many log lines a poll returns.
const maxLogLines = 400

// Job is the mutable state of one simulation run. All fields are guarded
// by mu: the owning worker writes, pollers read via View.
type Job struct {
	mu sync.Mutex

	id              string
	status          Status
	progressPct     int
	progressMessage string
	errText         string
	logs            []string
	outputs         map[string]string
	overlayBounds   [][]float64
	stats           *sim.Stats
}

// View is a consistent point-in-time snapshot of a job for pollers.
type View struct {
	ID              string            `json:"id"`
	Status          Status            `json:"status"`
	ProgressPct     int               `json:"progress_pct"`
	ProgressMessage string            `json:"progress_message"`
	Error           string            `json:"error,omitempty"`
	Logs            []string          `json:"logs"`
	Outputs         map[string]string `json:"outputs"`
	OverlayBounds   [][]float64       `json:"overlay_bounds,omitempty"`
	Stats           *sim.Stats        `json:"stats,omitempty"`
}

func newJob(id string) *Job {
	return &Job{
		id:              id,
		status:          StatusRunning,
		progressMessage: "Starting",
		outputs:         make(map[string]string),
	}
}

// terminal reports whether the job reached done or error. Callers hold mu.
func (j *Job) terminal() bool {
	return j.status == StatusDone || j.status == StatusError
}

// Logf appends a timestamped line to the job log and updates the
// progress message. It satisfies sim.Reporter.
func (j *Job) Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.terminal() {
		return
	}
	j.logs = append(j.logs, fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), msg))
	j.progressMessage = msg
}

// Progress updates the progress percentage. Progress never decreases
// while the job is running.
func (j *Job) Progress(pct int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.terminal() || pct < j.progressPct {
		return
	}
	j.progressPct = pct
}

func (j *Job) setOutput(kind, path string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.terminal() {
		return
	}
	j.outputs[kind] = path
}

func (j *Job) setStats(s sim.Stats) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.terminal() {
		return
	}
	j.stats = &s
}

func (j *Job) setOverlayBounds(b [][]float64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.terminal() {
		return
	}
	j.overlayBounds = b
}

// complete marks the job done. No mutation is possible afterwards.
func (j *Job) complete() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.terminal() {
		return
	}
	j.progressPct = 100
	j.status = StatusDone
}

// fail marks the job errored, recording the error text verbatim.
func (j *Job) fail(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.terminal() {
		return
	}
	j.errText = err.Error()
	j.status = StatusError
}

// View returns a snapshot with at most the last maxLogLines log lines.
func (j *Job) View() View {
	j.mu.Lock()
	defer j.mu.Unlock()

	logs := j.logs
	if len(logs) > maxLogLines {
		logs = logs[len(logs)-maxLogLines:]
	}

	v := View{
		ID:              j.id,
		Status:          j.status,
		ProgressPct:     j.progressPct,
		ProgressMessage: j.progressMessage,
		Error:           j.errText,
		Logs:            append([]string(nil), logs...),
		Outputs:         make(map[string]string, len(j.outputs)),
	}
	for k, p := range j.outputs {
		v.Outputs[k] = p
	}
	if j.overlayBounds != nil {
		v.OverlayBounds = append([][]float64(nil), j.overlayBounds...)
	}
	if j.stats != nil {
		stats := *j.stats
		v.Stats = &stats
	}
	return v
}

// outputPath returns a produced artifact path by kind.
func (j *Job) outputPath(kind string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	path, ok := j.outputs[kind]
	return path, ok
}
