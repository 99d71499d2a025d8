package tasks

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(filepath.Join(t.TempDir(), "aqardash.db"), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestQueueDBPath(t *testing.T) {
	assert.Equal(t, "./aqardash-tasks.db", queueDBPath("./aqardash.db"))
	assert.Equal(t, "/var/lib/aqardash/main-tasks.sqlite", queueDBPath("/var/lib/aqardash/main.sqlite"))
}

func TestNewClientCreatesQueueDatabase(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(filepath.Join(tmpDir, "aqardash.db"), cfg)
	require.NoError(t, err)
	defer client.Close()

	_, err = os.Stat(filepath.Join(tmpDir, "aqardash-tasks.db"))
	assert.NoError(t, err, "queue database should sit next to the main database")
}

func TestClientStartStop(t *testing.T) {
	client := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	assert.True(t, client.Stop(stopCtx))
}

// echoTask carries a value back out of the queue so tests can observe
// that a worker ran it.
type echoTask struct {
	Value string `json:"value"`
}

func (t echoTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "echo",
		MaxAttempts: 1,
		Backoff:     time.Second,
		Timeout:     5 * time.Second,
	}
}

func TestEnqueuedTaskRuns(t *testing.T) {
	client := newTestClient(t)

	ran := make(chan string, 1)
	client.Register(backlite.NewQueue(func(ctx context.Context, task echoTask) error {
		ran <- task.Value
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	ids, err := client.Add(echoTask{Value: "ping"}).Save()
	require.NoError(t, err)
	require.Len(t, ids, 1)

	select {
	case val := <-ran:
		assert.Equal(t, "ping", val)
	case <-time.After(5 * time.Second):
		t.Fatal("task was not executed within timeout")
	}
}

func TestAuditLinksTaskConfig(t *testing.T) {
	cfg := AuditLinksTask{}.Config()

	assert.Equal(t, "audit_links", cfg.Name)
	assert.Equal(t, 1, cfg.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.Timeout)
	require.NotNil(t, cfg.Retention)
	assert.Equal(t, 24*time.Hour, cfg.Retention.Duration)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}
