package jobs_test

import (
	"errors"
	"testing"
	"testing/synctest"

	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/objdelta/objdelta/internal/engine/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_EnqueueAndPoll(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		reg := jobs.NewRegistry()

		job := reg.Enqueue(jobs.KindBuild, "obj.o", func(status *jobs.Status, cancel <-chan struct{}) (jobs.Result, error) {
			if err := jobs.UpdateStatus(status, "working", 1, 2, cancel); err != nil {
				return nil, err
			}
			return "done", nil
		})
		require.Equal(t, uint64(1), job.ID)
		require.Equal(t, "obj.o", job.Target)

		synctest.Wait()
		require.True(t, job.Finished())

		finished := reg.PollFinished()
		require.Len(t, finished, 1)
		assert.Equal(t, job.ID, finished[0].Job.ID)
		assert.Equal(t, "done", finished[0].Result)
		assert.NoError(t, finished[0].Err)
	})
}

func TestRegistry_PollFinishedYieldsEachOutcomeExactlyOnce(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		reg := jobs.NewRegistry()
		reg.Enqueue(jobs.KindBuild, "a.o", func(*jobs.Status, <-chan struct{}) (jobs.Result, error) {
			return 1, nil
		})
		reg.Enqueue(jobs.KindBuild, "b.o", func(*jobs.Status, <-chan struct{}) (jobs.Result, error) {
			return 2, nil
		})
		synctest.Wait()

		first := reg.PollFinished()
		require.Len(t, first, 2)
		assert.Empty(t, reg.PollFinished())
		assert.Empty(t, reg.PollFinished())
	})
}

func TestRegistry_PollFinishedSkipsRunningJobs(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		reg := jobs.NewRegistry()
		release := make(chan struct{})
		job := reg.Enqueue(jobs.KindBuild, "slow.o", func(*jobs.Status, <-chan struct{}) (jobs.Result, error) {
			<-release
			return nil, nil
		})

		synctest.Wait()
		assert.False(t, job.Finished())
		assert.Empty(t, reg.PollFinished())

		close(release)
		synctest.Wait()
		assert.Len(t, reg.PollFinished(), 1)
	})
}

func TestRegistry_CancelUnwindsAtNextCheckpoint(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		reg := jobs.NewRegistry()
		entered := make(chan struct{})
		release := make(chan struct{})

		job := reg.Enqueue(jobs.KindBuild, "obj.o", func(status *jobs.Status, cancel <-chan struct{}) (jobs.Result, error) {
			if err := jobs.UpdateStatus(status, "stage one", 0, 2, cancel); err != nil {
				return nil, err
			}
			close(entered)
			<-release
			// Next checkpoint observes the token delivered mid-stage.
			if err := jobs.UpdateStatus(status, "stage two", 1, 2, cancel); err != nil {
				return nil, err
			}
			return "unreachable", nil
		})

		<-entered
		reg.Cancel(job.ID)
		close(release)
		synctest.Wait()

		finished := reg.PollFinished()
		require.Len(t, finished, 1)
		assert.True(t, errors.Is(finished[0].Err, domain.ErrCancelled))
		assert.Nil(t, finished[0].Result)
	})
}

func TestRegistry_CancelUnknownIDIsANoOp(t *testing.T) {
	reg := jobs.NewRegistry()
	reg.Cancel(42)
	assert.Zero(t, reg.Len())
}

func TestRegistry_CancelAfterCompletionIsANoOp(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		reg := jobs.NewRegistry()
		job := reg.Enqueue(jobs.KindBuild, "obj.o", func(*jobs.Status, <-chan struct{}) (jobs.Result, error) {
			return "ok", nil
		})
		synctest.Wait()

		reg.Cancel(job.ID)
		reg.Cancel(job.ID)

		finished := reg.PollFinished()
		require.Len(t, finished, 1)
		assert.Equal(t, "ok", finished[0].Result)
		assert.NoError(t, finished[0].Err)
	})
}

func TestRegistry_PanickingWorkerBecomesJobError(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		reg := jobs.NewRegistry()
		job := reg.Enqueue(jobs.KindBuild, "obj.o", func(*jobs.Status, <-chan struct{}) (jobs.Result, error) {
			panic("boom")
		})
		synctest.Wait()

		finished := reg.PollFinished()
		require.Len(t, finished, 1)
		require.Error(t, finished[0].Err)
		assert.True(t, errors.Is(finished[0].Err, domain.ErrJobPanicked))
		assert.Error(t, job.Status.Snapshot().Err)
	})
}

func TestRegistry_PruneRemovesOnlyJoinedJobs(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		reg := jobs.NewRegistry()
		release := make(chan struct{})
		reg.Enqueue(jobs.KindBuild, "fast.o", func(*jobs.Status, <-chan struct{}) (jobs.Result, error) {
			return nil, nil
		})
		reg.Enqueue(jobs.KindBuild, "slow.o", func(*jobs.Status, <-chan struct{}) (jobs.Result, error) {
			<-release
			return nil, nil
		})
		synctest.Wait()

		// Finished but unreaped: prune must keep it.
		reg.Prune()
		assert.Equal(t, 2, reg.Len())

		require.Len(t, reg.PollFinished(), 1)
		reg.Prune()
		assert.Equal(t, 1, reg.Len())

		close(release)
		synctest.Wait()
		require.Len(t, reg.PollFinished(), 1)
		reg.Prune()
		assert.Zero(t, reg.Len())
	})
}

func TestRegistry_InFlight(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		reg := jobs.NewRegistry()
		release := make(chan struct{})
		reg.Enqueue(jobs.KindBuild, "obj.o", func(*jobs.Status, <-chan struct{}) (jobs.Result, error) {
			<-release
			return nil, nil
		})

		assert.True(t, reg.InFlight(jobs.KindBuild, "obj.o"))
		assert.False(t, reg.InFlight(jobs.KindBuild, "other.o"))

		close(release)
		synctest.Wait()

		// Finished but unjoined still counts as in flight.
		assert.True(t, reg.InFlight(jobs.KindBuild, "obj.o"))
		reg.PollFinished()
		assert.False(t, reg.InFlight(jobs.KindBuild, "obj.o"))
	})
}

func TestRegistry_IDsAreMonotonic(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		reg := jobs.NewRegistry()
		var last uint64
		for range 5 {
			job := reg.Enqueue(jobs.KindBuild, "obj.o", func(*jobs.Status, <-chan struct{}) (jobs.Result, error) {
				return nil, nil
			})
			require.Greater(t, job.ID, last)
			last = job.ID
		}
		synctest.Wait()
		reg.PollFinished()
		reg.Prune()

		job := reg.Enqueue(jobs.KindBuild, "obj.o", func(*jobs.Status, <-chan struct{}) (jobs.Result, error) {
			return nil, nil
		})
		assert.Greater(t, job.ID, last)
		synctest.Wait()
	})
}
