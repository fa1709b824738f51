package observability

import (
	"fmt"
	"testing"
	"time"
)

type countingProjectionHooks struct {
	starts    int
	completes int
}

func (h *countingProjectionHooks) OnGenerateStart(int) { h.starts++ }
func (h *countingProjectionHooks) OnGenerateComplete(int, bool, time.Duration, error) {
	h.completes++
}

type countingFeedHooks struct {
	published int
	snapshots int
	decodeErr int
}

func (h *countingFeedHooks) OnPublish(string, int)       { h.published++ }
func (h *countingFeedHooks) OnSnapshot(string, int)      { h.snapshots++ }
func (h *countingFeedHooks) OnDecodeError(string, error) { h.decodeErr++ }

func TestSetProjectionHooks(t *testing.T) {
	defer Reset()

	h := &countingProjectionHooks{}
	SetProjectionHooks(h)

	Projection().OnGenerateStart(3)
	Projection().OnGenerateComplete(3, true, time.Millisecond, nil)

	if h.starts != 1 || h.completes != 1 {
		t.Errorf("starts=%d completes=%d, want 1/1", h.starts, h.completes)
	}
}

func TestSetFeedHooks(t *testing.T) {
	defer Reset()

	h := &countingFeedHooks{}
	SetFeedHooks(h)

	Feed().OnPublish("ch", 128)
	Feed().OnSnapshot("ch", 5)
	Feed().OnDecodeError("ch", fmt.Errorf("bad payload"))

	if h.published != 1 || h.snapshots != 1 || h.decodeErr != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", h.published, h.snapshots, h.decodeErr)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	defer Reset()

	SetProjectionHooks(nil)
	SetFeedHooks(nil)

	// Defaults stay in place and do not panic.
	Projection().OnGenerateStart(0)
	Feed().OnSnapshot("ch", 0)
}

func TestReset(t *testing.T) {
	h := &countingProjectionHooks{}
	SetProjectionHooks(h)
	Reset()

	Projection().OnGenerateStart(1)
	if h.starts != 0 {
		t.Errorf("hooks still registered after Reset")
	}
}
