package feed

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/a17hq/btviz/pkg/behaviour"
	"github.com/a17hq/btviz/pkg/errors"
)

func TestCodecRoundTrip(t *testing.T) {
	leaf := behaviour.Behaviour{ID: uuid.New(), Name: "Leaf", Status: behaviour.StatusSuccess}
	root := behaviour.Behaviour{
		ID:       uuid.New(),
		Name:     "Root",
		Type:     behaviour.TypeSelector,
		Status:   behaviour.StatusRunning,
		ChildIDs: []uuid.UUID{leaf.ID},
	}
	want := behaviour.Tree{
		Stamp:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Behaviours: []behaviour.Behaviour{root, leaf},
	}

	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !got.Stamp.Equal(want.Stamp) {
		t.Errorf("Stamp = %v, want %v", got.Stamp, want.Stamp)
	}
	if len(got.Behaviours) != 2 {
		t.Fatalf("behaviours = %d, want 2", len(got.Behaviours))
	}
	if got.Behaviours[0].ChildIDs[0] != leaf.ID {
		t.Error("child ids not preserved")
	}
	if got.Behaviours[0].Type != behaviour.TypeSelector {
		t.Errorf("type = %v, want selector", got.Behaviours[0].Type)
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	if err == nil {
		t.Fatal("Decode: want error")
	}
	if !errors.Is(err, errors.ErrCodeDecodeFailed) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDecodeFailed)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.Addr != "localhost:6379" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Channel != DefaultChannel {
		t.Errorf("Channel = %q", cfg.Channel)
	}

	cfg = Config{Addr: "redis:7000", Channel: "custom"}.withDefaults()
	if cfg.Addr != "redis:7000" || cfg.Channel != "custom" {
		t.Errorf("explicit values overridden: %+v", cfg)
	}
}
