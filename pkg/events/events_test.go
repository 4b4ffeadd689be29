package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishFanOut(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe()
	b := bus.Subscribe()

	bus.Publish(Event{Type: TypeScanProgress, Data: ScanProgress{JobID: 1}})

	assert.Equal(t, TypeScanProgress, (<-a.Events()).Type)
	assert.Equal(t, TypeScanProgress, (<-b.Events()).Type)
}

func TestSlowSubscriberDropsOldest(t *testing.T) {
	bus := NewBus()
	s := bus.Subscribe()

	for i := 0; i < DefaultBufferSize+10; i++ {
		bus.Publish(Event{Type: TypeScanProgress, Data: ScanProgress{JobID: 1, ProcessedFiles: i}})
	}
	bus.Publish(Event{Type: TypeScanDone, Data: ScanDone{JobID: 1, Status: "completed"}})

	// oldest events were dropped, the terminal event survives at the tail
	var last Event
	drained := 0
	for {
		select {
		case evt := <-s.Events():
			last = evt
			drained++
			continue
		default:
		}
		break
	}

	assert.Equal(t, DefaultBufferSize, drained)
	assert.Equal(t, TypeScanDone, last.Type)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	s := bus.Subscribe()
	bus.Unsubscribe(s)

	_, open := <-s.Events()
	require.False(t, open)

	// double unsubscribe is a no-op
	bus.Unsubscribe(s)

	// publishing after unsubscribe does not panic
	bus.Publish(Event{Type: TypeScanDone})
}
