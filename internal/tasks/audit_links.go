package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// OrphanLinksCleaner provides the ability to delete orphaned link rows.
type OrphanLinksCleaner interface {
	DeleteOrphanLinks() (int64, error)
}

// AuditLinksTask removes association rows whose property, marketer, or buyer
// no longer exists.
type AuditLinksTask struct{}

// Config returns the queue configuration for link audit tasks.
func (t AuditLinksTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "audit_links",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// AuditLinksProcessor creates a processor function for AuditLinksTask.
func AuditLinksProcessor(cleaner OrphanLinksCleaner) backlite.QueueProcessor[AuditLinksTask] {
	return func(ctx context.Context, task AuditLinksTask) error {
		if cleaner == nil {
			return fmt.Errorf("orphan links cleaner not configured")
		}

		deleted, err := cleaner.DeleteOrphanLinks()
		if err != nil {
			return fmt.Errorf("audit links: %w", err)
		}

		if deleted > 0 {
			log.Printf("[TASK] Removed %d orphaned link rows", deleted)
		}
		return nil
	}
}

// NewAuditLinksQueue creates a backlite queue for link audit tasks.
func NewAuditLinksQueue(cleaner OrphanLinksCleaner) backlite.Queue {
	return backlite.NewQueue(AuditLinksProcessor(cleaner))
}
