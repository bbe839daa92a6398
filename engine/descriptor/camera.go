package descriptor

import (
	"fmt"
	"os"

	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/ron"
)

// CameraSettings is the content of the settings.camera file. Unknown extra
// fields are tolerated, like object files.
type CameraSettings struct {
	Translation math.Vec3
	FovDegrees  float32
}

// DecodeCameraSettings decodes a camera settings document.
func DecodeCameraSettings(data []byte) (*CameraSettings, error) {
	doc, err := ron.Parse(data)
	if err != nil {
		return nil, err
	}
	if doc.Kind != ron.KindStruct || doc.Name != "" {
		return nil, fmt.Errorf("%w: %d:%d: camera settings file must be a struct of named fields", ErrSchema, doc.Line, doc.Col)
	}

	cs := &CameraSettings{}

	translation, ok := doc.Field("translation")
	if !ok {
		return nil, fmt.Errorf("%w: missing required field translation", ErrSchema)
	}
	tr, err := tupleFloats(translation, 3)
	if err != nil {
		return nil, err
	}
	cs.Translation = math.NewVec3(tr[0], tr[1], tr[2])

	fov, ok := doc.Field("fov_degrees")
	if !ok {
		return nil, fmt.Errorf("%w: missing required field fov_degrees", ErrSchema)
	}
	cs.FovDegrees, ok = fov.Float32()
	if !ok {
		return nil, fmt.Errorf("%w: %d:%d: fov_degrees must be a number", ErrSchema, fov.Line, fov.Col)
	}
	if cs.FovDegrees <= 0 || cs.FovDegrees >= 180 {
		return nil, fmt.Errorf("%w: fov_degrees must be in (0, 180), got %g", ErrSchema, cs.FovDegrees)
	}

	return cs, nil
}

// DecodeCameraSettingsFile decodes camera settings from a file.
func DecodeCameraSettingsFile(path string) (*CameraSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cs, err := DecodeCameraSettings(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cs, nil
}
