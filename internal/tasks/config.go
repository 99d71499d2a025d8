package tasks

import "time"

// Config controls the background queue. Per-queue retry and retention
// policy lives on each task type's QueueConfig, not here.
type Config struct {
	// Workers is how many tasks may run concurrently.
	Workers int

	// ReleaseAfter returns a claimed but unfinished task to the queue,
	// covering worker crashes mid-task.
	ReleaseAfter time.Duration

	// CleanupInterval is how often finished tasks past their retention
	// are purged.
	CleanupInterval time.Duration
}

// DefaultConfig returns the queue settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Workers:         2,
		ReleaseAfter:    15 * time.Minute,
		CleanupInterval: time.Hour,
	}
}
