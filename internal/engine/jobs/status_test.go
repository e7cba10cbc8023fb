package jobs_test

import (
	"errors"
	"testing"

	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/objdelta/objdelta/internal/engine/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatus_RecordsProgress(t *testing.T) {
	status := &jobs.Status{}
	cancel := make(chan struct{})

	err := jobs.UpdateStatus(status, "Building asm obj.o", 0, 5, cancel)
	require.NoError(t, err)

	snap := status.Snapshot()
	assert.Equal(t, "Building asm obj.o", snap.Message)
	assert.Equal(t, 0, snap.Step)
	assert.Equal(t, 5, snap.Total)
	assert.NoError(t, snap.Err)
}

func TestUpdateStatus_CancelledChannelReturnsError(t *testing.T) {
	status := &jobs.Status{}
	cancel := make(chan struct{})
	close(cancel)

	err := jobs.UpdateStatus(status, "Loading asm obj.o", 2, 5, cancel)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCancelled))

	// Status is written before the cancellation check, so the last
	// checkpoint message survives.
	snap := status.Snapshot()
	assert.Equal(t, "Loading asm obj.o", snap.Message)
	assert.Equal(t, 2, snap.Step)
}

func TestUpdateStatus_OpenChannelDoesNotBlock(t *testing.T) {
	status := &jobs.Status{}
	cancel := make(chan struct{})

	for step := range 5 {
		require.NoError(t, jobs.UpdateStatus(status, "step", step, 5, cancel))
	}
	assert.Equal(t, 4, status.Snapshot().Step)
}
