package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepipe/invoice-extractor/constants"
)

type countingProcessor struct {
	mu    sync.Mutex
	paths []string
}

func (p *countingProcessor) ProcessFile(_ context.Context, job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paths = append(p.paths, job.Path)
	return nil
}

func TestQueueProcessesAllJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(8))

	for _, path := range []string{"a.pdf", "b.png", "c.jpg"} {
		require.NoError(t, q.Enqueue(context.Background(), Job{Path: path, MediaType: constants.PDF}))
	}
	q.Shutdown(context.Background())

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Len(t, proc.paths, 3)
	assert.ElementsMatch(t, []string{"a.pdf", "b.png", "c.jpg"}, proc.paths)
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, nil, WithWorkers(1))

	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}

type blockingProcessor struct {
	release chan struct{}
}

func (p *blockingProcessor) ProcessFile(_ context.Context, _ Job) error {
	<-p.release
	return nil
}

func TestQueueFullEnqueueHonorsContext(t *testing.T) {
	proc := &blockingProcessor{release: make(chan struct{})}
	q := NewProcessorQueue(proc, nil, WithWorkers(1), WithQueueSize(1))

	// First job occupies the worker, second fills the buffer.
	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "a.pdf"}))
	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "b.pdf"}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, Job{Path: "c.pdf"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(proc.release)
	q.Shutdown(context.Background())
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{Path: "late.pdf"})

	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Empty(t, proc.paths)
}
