// Package scheduler runs the periodic link audit that enqueues orphan-link
// cleanup onto the task queue.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aqardash/aqardash/internal/tasks"
)

// LinkAuditScheduler enqueues an AuditLinksTask on a cron schedule.
type LinkAuditScheduler struct {
	client   *tasks.Client
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewLinkAuditScheduler creates a new scheduler instance. The schedule uses
// the standard five-field cron format.
func NewLinkAuditScheduler(client *tasks.Client, schedule string) *LinkAuditScheduler {
	return &LinkAuditScheduler{
		client:   client,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *LinkAuditScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runAudit()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule link audit: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Link audit scheduler: started with schedule %q", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *LinkAuditScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Link audit scheduler: stopped")
}

// RunNow triggers an immediate audit.
func (s *LinkAuditScheduler) RunNow() error {
	_, err := s.client.Add(tasks.AuditLinksTask{}).Save()
	return err
}

// IsRunning returns whether the scheduler is active.
func (s *LinkAuditScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next audit is due, or nil when stopped.
func (s *LinkAuditScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *LinkAuditScheduler) runAudit() {
	if _, err := s.client.Add(tasks.AuditLinksTask{}).Save(); err != nil {
		log.Printf("Link audit: failed to enqueue task: %v", err)
	}
}
