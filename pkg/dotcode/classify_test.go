package dotcode

import (
	"testing"

	"github.com/a17hq/btviz/pkg/behaviour"
)

func TestTypeShape(t *testing.T) {
	tests := []struct {
		name string
		typ  behaviour.Type
		want string
	}{
		{"behaviour", behaviour.TypeBehaviour, ShapeEllipse},
		{"sequence", behaviour.TypeSequence, ShapeBox},
		{"selector", behaviour.TypeSelector, ShapeEllipse},
		{"unknown", behaviour.Type(99), ShapeBox},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeShape(tt.typ); got != tt.want {
				t.Errorf("TypeShape(%v) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestTypeColor(t *testing.T) {
	tests := []struct {
		name string
		typ  behaviour.Type
		want string
	}{
		{"behaviour", behaviour.TypeBehaviour, ""},
		{"sequence", behaviour.TypeSequence, "#ff9900"},
		{"selector", behaviour.TypeSelector, "#808080"},
		{"unknown", behaviour.Type(99), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeColor(tt.typ); got != tt.want {
				t.Errorf("TypeColor(%v) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		name   string
		status behaviour.Status
		want   string
	}{
		{"invalid", behaviour.StatusInvalid, "#e4e4e4"},
		{"running", behaviour.StatusRunning, "#000000"},
		{"success", behaviour.StatusSuccess, "#00ff00"},
		{"failure", behaviour.StatusFailure, "#ff0000"},
		{"unknown", behaviour.Status(99), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusColor(tt.status); got != tt.want {
				t.Errorf("StatusColor(%v) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestNodeColor(t *testing.T) {
	tests := []struct {
		name string
		b    behaviour.Behaviour
		want string
	}{
		{
			name: "status wins over type",
			b:    behaviour.Behaviour{Type: behaviour.TypeSequence, Status: behaviour.StatusSuccess},
			want: "#00ff00",
		},
		{
			name: "type when status has no colour",
			b:    behaviour.Behaviour{Type: behaviour.TypeSelector, Status: behaviour.Status(99)},
			want: "#808080",
		},
		{
			name: "backend default when neither has a colour",
			b:    behaviour.Behaviour{Type: behaviour.TypeBehaviour, Status: behaviour.Status(99)},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NodeColor(tt.b); got != tt.want {
				t.Errorf("NodeColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEdgeColor(t *testing.T) {
	tests := []struct {
		name   string
		status behaviour.Status
		want   string
	}{
		{"invalid keeps default", behaviour.StatusInvalid, EdgeColorDefault},
		{"running", behaviour.StatusRunning, "#000000"},
		{"success", behaviour.StatusSuccess, "#00ff00"},
		{"failure", behaviour.StatusFailure, "#ff0000"},
		{"unknown keeps default", behaviour.Status(99), EdgeColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EdgeColor(tt.status); got != tt.want {
				t.Errorf("EdgeColor(%v) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}
