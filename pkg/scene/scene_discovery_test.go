package scene

import (
	"errors"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"hollow-glass", "Hollow Glass"},
		{"many_spheres", "Many Spheres"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()

	expected := []string{"default", "glass", "metals", "random"}
	if len(scenes) != len(expected) {
		t.Fatalf("Expected %d scenes, got %d", len(expected), len(scenes))
	}
	for i, id := range expected {
		if scenes[i].ID != id {
			t.Errorf("Scene %d: expected %q, got %q", i, id, scenes[i].ID)
		}
		if scenes[i].DisplayName == "" || scenes[i].Description == "" {
			t.Errorf("Scene %q is missing display metadata", id)
		}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
	}{
		{"default", nil},
		{"random", nil},
		{"metals", nil},
		{"glass", nil},
		{" Default ", nil},
		{"cornell-box", ErrUnknownScene},
		{"", ErrUnknownScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := Load(tt.name, Options{Seed: 42})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if sc.World.Len() == 0 {
				t.Error("Scene should contain spheres")
			}
			if err := sc.SamplingConfig.Validate(); err != nil {
				t.Errorf("Scene sampling config should be valid: %v", err)
			}
		})
	}
}
