package storage

import (
	"context"
	"testing"

	"ScoringEngine/internal/config"
	"ScoringEngine/internal/engine/models"
	"ScoringEngine/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T, mr *miniredis.Miniredis, namespace, name string) Queue {
	t.Helper()

	cfg := &config.RedisConfig{Addr: mr.Addr(), Namespace: namespace}
	queue, err := NewRedisQueue(context.Background(), cfg, name, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = queue.Close() })
	return queue
}

func ref(serviceID int64) models.ServiceReference {
	return models.ServiceReference{ServiceID: serviceID, EnvironmentID: serviceID * 10, TeamID: 1, Round: 1}
}

func TestQueueRoundTrip(t *testing.T) {
	ctx := context.Background()
	queue := newTestQueue(t, miniredis.RunT(t), "test", "queued")

	fresh := models.NewJob(ref(1), "ping -c 1 127.0.0.1")

	done := models.NewJob(ref(2), "echo hi")
	done.SetOutput("hi\n")

	failed := models.NewJob(ref(3), "sleep 60")
	failed.SetFail("Command Timed Out")

	for _, job := range []*models.Job{fresh, done, failed} {
		require.NoError(t, queue.Push(ctx, job))
	}

	for _, want := range []*models.Job{fresh, done, failed} {
		got, err := queue.Pop(ctx)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestQueueAcceptsJobValue(t *testing.T) {
	ctx := context.Background()
	queue := newTestQueue(t, miniredis.RunT(t), "test", "queued")

	require.NoError(t, queue.Push(ctx, *models.NewJob(ref(1), "true")))

	got, err := queue.Pop(ctx)
	require.NoError(t, err)
	require.Equal(t, "true", got.Command)
}

func TestQueueFIFOAndSize(t *testing.T) {
	ctx := context.Background()
	queue := newTestQueue(t, miniredis.RunT(t), "test", "queued")

	a := models.NewJob(ref(1), "echo a")
	b := models.NewJob(ref(2), "echo b")
	require.NoError(t, queue.Push(ctx, a))
	require.NoError(t, queue.Push(ctx, b))

	size, err := queue.Size(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), size)

	got, err := queue.Pop(ctx)
	require.NoError(t, err)
	require.Equal(t, "echo a", got.Command)

	size, err = queue.Size(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), size)

	got, err = queue.Pop(ctx)
	require.NoError(t, err)
	require.Equal(t, "echo b", got.Command)

	got, err = queue.Pop(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestQueueClear(t *testing.T) {
	ctx := context.Background()
	queue := newTestQueue(t, miniredis.RunT(t), "test", "queued")

	for i := range 3 {
		require.NoError(t, queue.Push(ctx, models.NewJob(ref(int64(i)), "true")))
	}
	require.NoError(t, queue.Clear(ctx))

	size, err := queue.Size(ctx)
	require.NoError(t, err)
	require.Zero(t, size)

	require.NoError(t, queue.Clear(ctx))
}

func TestQueueRejectsMalformedJobs(t *testing.T) {
	ctx := context.Background()
	queue := newTestQueue(t, miniredis.RunT(t), "test", "queued")

	var nilJob *models.Job
	for _, value := range []any{
		"ping -c 1 127.0.0.1",
		[]byte(`{"command":"true"}`),
		map[string]any{"command": "true"},
		nil,
		nilJob,
		models.NewJob(ref(1), ""),
	} {
		require.ErrorIs(t, queue.Push(ctx, value), ErrMalformedJob)
	}

	size, err := queue.Size(ctx)
	require.NoError(t, err)
	require.Zero(t, size)
}

func TestQueuePopUndecodableRecord(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	queue := newTestQueue(t, mr, "test", "finished")

	_, err := mr.RPush("test:finished", "not json")
	require.NoError(t, err)

	_, err = queue.Pop(ctx)
	require.ErrorIs(t, err, ErrMalformedJob)
}

func TestQueueToleratesMissingOptionalKeys(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	queue := newTestQueue(t, mr, "test", "queued")

	_, err := mr.RPush("test:queued", `{"service_reference":{"service_id":4},"command":"id"}`)
	require.NoError(t, err)

	got, err := queue.Pop(ctx)
	require.NoError(t, err)
	require.Equal(t, "id", got.Command)
	require.Nil(t, got.Output)
	require.Empty(t, got.Result)
	require.False(t, got.Finished)
}

func TestQueueNamespacing(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	work := newTestQueue(t, mr, "scoring", "queued")
	results := newTestQueue(t, mr, "scoring", "finished")
	other := newTestQueue(t, mr, "practice", "queued")

	require.Equal(t, "scoring:queued", work.Key())
	require.Equal(t, "scoring:finished", results.Key())

	require.NoError(t, work.Push(ctx, models.NewJob(ref(1), "true")))

	require.True(t, mr.Exists("scoring:queued"))
	for _, q := range []Queue{results, other} {
		size, err := q.Size(ctx)
		require.NoError(t, err)
		require.Zero(t, size)
	}
}

func TestNewRedisQueueUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisQueue(context.Background(), &config.RedisConfig{Addr: addr, Namespace: "test"}, "queued", logger.Discard())
	require.Error(t, err)
}
