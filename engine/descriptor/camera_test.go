package descriptor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/prisma/engine/math"
)

func TestDecodeCameraSettingsFile(t *testing.T) {
	cs, err := DecodeCameraSettingsFile(filepath.Join("testdata", "settings.camera"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cs.Translation != math.NewVec3(3, 5, -8) {
		t.Fatalf("translation %+v", cs.Translation)
	}
	if cs.FovDegrees != 45 {
		t.Fatalf("fov %g", cs.FovDegrees)
	}
}

func TestDecodeCameraSettingsToleratesUnknownFields(t *testing.T) {
	cs, err := DecodeCameraSettings([]byte(`(
		translation: (0.0, 1.0, -2.0),
		fov_degrees: 60.0,
		near_clip: 0.01,
	)`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cs.FovDegrees != 60 {
		t.Fatalf("fov %g", cs.FovDegrees)
	}
}

func TestDecodeCameraSettingsErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"missing translation", `(fov_degrees: 45.0)`},
		{"missing fov", `(translation: (0.0, 0.0, 0.0))`},
		{"zero fov", `(translation: (0.0, 0.0, 0.0), fov_degrees: 0.0)`},
		{"fov too wide", `(translation: (0.0, 0.0, 0.0), fov_degrees: 180.0)`},
		{"translation not tuple", `(translation: "origin", fov_degrees: 45.0)`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeCameraSettings([]byte(c.in))
			if !errors.Is(err, ErrSchema) {
				t.Fatalf("expected ErrSchema, got %v", err)
			}
		})
	}
}
