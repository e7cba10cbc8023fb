package config_test

import (
	"sync"
	"testing"

	"github.com/objdelta/objdelta/internal/adapters/config"
	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SnapshotReturnsAClone(t *testing.T) {
	store := config.NewStore(domain.Config{
		ProjectRoot:  "/proj",
		BuildCommand: []string{"make", "all"},
	})

	snap := store.Snapshot()
	snap.ProjectRoot = "/mutated"
	snap.BuildCommand[0] = "mutated"

	fresh := store.Snapshot()
	assert.Equal(t, "/proj", fresh.ProjectRoot)
	assert.Equal(t, "make", fresh.BuildCommand[0])
}

func TestStore_UpdateIsVisibleToLaterSnapshots(t *testing.T) {
	store := config.NewStore(domain.Config{TargetObject: "a.o"})
	store.Update(func(c *domain.Config) {
		c.TargetObject = "b.o"
	})
	assert.Equal(t, "b.o", store.Snapshot().TargetObject)
}

func TestStore_SeededRootCountsAsPendingChange(t *testing.T) {
	store := config.NewStore(domain.Config{ProjectRoot: "/proj"})
	assert.True(t, store.ConsumeRootChange())
	assert.False(t, store.ConsumeRootChange())
}

func TestStore_EmptySeedHasNoPendingChange(t *testing.T) {
	store := config.NewStore(domain.Config{})
	assert.False(t, store.ConsumeRootChange())
}

func TestStore_SetProjectRootFlagsExactlyOneChange(t *testing.T) {
	store := config.NewStore(domain.Config{})
	store.SetProjectRoot("/new")

	assert.Equal(t, "/new", store.Snapshot().ProjectRoot)
	assert.True(t, store.ConsumeRootChange())
	assert.False(t, store.ConsumeRootChange())
}

func TestStore_SettingIdenticalRootDoesNotFlag(t *testing.T) {
	store := config.NewStore(domain.Config{ProjectRoot: "/proj"})
	require.True(t, store.ConsumeRootChange())

	store.SetProjectRoot("/proj")
	assert.False(t, store.ConsumeRootChange())
}

func TestStore_UpdateThatEditsRootFlagsChange(t *testing.T) {
	store := config.NewStore(domain.Config{})
	store.Update(func(c *domain.Config) {
		c.ProjectRoot = "/elsewhere"
	})
	assert.True(t, store.ConsumeRootChange())
}

func TestStore_UpdateWithoutRootEditDoesNotFlag(t *testing.T) {
	store := config.NewStore(domain.Config{})
	store.Update(func(c *domain.Config) {
		c.TargetObject = "x.o"
	})
	assert.False(t, store.ConsumeRootChange())
}

func TestStore_ConcurrentReadersAndWriters(t *testing.T) {
	store := config.NewStore(domain.Config{TargetObject: "a.o"})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = store.Snapshot()
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				store.Update(func(c *domain.Config) {
					c.TargetObject = "b.o"
				})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, "b.o", store.Snapshot().TargetObject)
}
