package trigger_test

import (
	"context"
	"iter"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/objdelta/objdelta/internal/core/ports"
	"github.com/objdelta/objdelta/internal/engine/trigger"
	"github.com/stretchr/testify/assert"
)

func TestDetector_HandleEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     ports.WatchEvent
		wantDirty bool
	}{
		{
			name:      "write to c source",
			event:     ports.WatchEvent{Path: "/proj/src/main.c", Operation: ports.OpWrite},
			wantDirty: true,
		},
		{
			name:      "write to cpp source",
			event:     ports.WatchEvent{Path: "/proj/src/game.cpp", Operation: ports.OpWrite},
			wantDirty: true,
		},
		{
			name:      "write to cp source",
			event:     ports.WatchEvent{Path: "/proj/src/legacy.cp", Operation: ports.OpWrite},
			wantDirty: true,
		},
		{
			name:      "write to header",
			event:     ports.WatchEvent{Path: "/proj/include/game.h", Operation: ports.OpWrite},
			wantDirty: true,
		},
		{
			name:      "write to hpp header",
			event:     ports.WatchEvent{Path: "/proj/include/game.hpp", Operation: ports.OpWrite},
			wantDirty: true,
		},
		{
			name:      "write to object file",
			event:     ports.WatchEvent{Path: "/proj/build/main.o", Operation: ports.OpWrite},
			wantDirty: false,
		},
		{
			name:      "write to extensionless file",
			event:     ports.WatchEvent{Path: "/proj/Makefile", Operation: ports.OpWrite},
			wantDirty: false,
		},
		{
			name:      "create of c source is not a content change",
			event:     ports.WatchEvent{Path: "/proj/src/new.c", Operation: ports.OpCreate},
			wantDirty: false,
		},
		{
			name:      "remove of c source is not a content change",
			event:     ports.WatchEvent{Path: "/proj/src/old.c", Operation: ports.OpRemove},
			wantDirty: false,
		},
		{
			name:      "rename of header is not a content change",
			event:     ports.WatchEvent{Path: "/proj/include/old.h", Operation: ports.OpRename},
			wantDirty: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := trigger.NewDetector()
			d.HandleEvent(tt.event)
			assert.Equal(t, tt.wantDirty, d.IsDirty())
		})
	}
}

func TestDetector_EventsCoalesceIntoOneFlag(t *testing.T) {
	d := trigger.NewDetector()
	for range 10 {
		d.HandleEvent(ports.WatchEvent{Path: "/proj/src/main.c", Operation: ports.OpWrite})
	}
	assert.True(t, d.IsDirty())

	d.Clear()
	assert.False(t, d.IsDirty())
}

func TestDetector_IsDirtyDoesNotClear(t *testing.T) {
	d := trigger.NewDetector()
	d.Mark()
	assert.True(t, d.IsDirty())
	assert.True(t, d.IsDirty())
}

func TestDetector_IgnoredEventDoesNotClearExistingFlag(t *testing.T) {
	d := trigger.NewDetector()
	d.Mark()
	d.HandleEvent(ports.WatchEvent{Path: "/proj/build/main.o", Operation: ports.OpWrite})
	assert.True(t, d.IsDirty())
}

// eventsWatcher is a watcher stub that replays a fixed event slice.
type eventsWatcher struct {
	events []ports.WatchEvent
}

func (w *eventsWatcher) Start(context.Context, string) error { return nil }
func (w *eventsWatcher) Stop() error                         { return nil }

func (w *eventsWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, ev := range w.events {
			if !yield(ev) {
				return
			}
		}
	}
}

func TestDetector_PumpDrainsTheStream(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := trigger.NewDetector()
		w := &eventsWatcher{events: []ports.WatchEvent{
			{Path: "/proj/README.md", Operation: ports.OpWrite},
			{Path: "/proj/src/main.c", Operation: ports.OpWrite},
		}}

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Pump(context.Background(), w)
		}()
		wg.Wait()

		assert.True(t, d.IsDirty())
	})
}
