package assets

import "path/filepath"

// ResourceType classifies a watched asset by what the engine does with it.
type ResourceType int

const (
	// ResourceTypeNone marks files the engine does not care about.
	ResourceTypeNone ResourceType = iota
	// ResourceTypeObject is an object descriptor (*.obj).
	ResourceTypeObject
	// ResourceTypeMaterialType is a material type (*.material_type).
	ResourceTypeMaterialType
	// ResourceTypeCamera is a camera settings file (*.camera).
	ResourceTypeCamera
	// ResourceTypeShader is GLSL shader source (*.vert, *.frag).
	ResourceTypeShader
	// ResourceTypeImage is a texture image (*.png, *.jpg, *.bmp, *.tiff).
	ResourceTypeImage
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeObject:
		return "object"
	case ResourceTypeMaterialType:
		return "material_type"
	case ResourceTypeCamera:
		return "camera"
	case ResourceTypeShader:
		return "shader"
	case ResourceTypeImage:
		return "image"
	}
	return "none"
}

// Resource is a loaded asset. Data holds the loader-specific payload:
// *descriptor.ObjectDescriptor, *descriptor.MaterialType,
// *descriptor.CameraSettings, *ShaderSource or *ImageInfo.
type Resource struct {
	Type ResourceType
	// Name is the asset path relative to the assets root, slash-separated.
	Name string
	// FullPath is the on-disk path the asset was read from.
	FullPath string
	Data     interface{}
}

// Loader turns a file into a Resource. Implementations have no side effects
// beyond reading the file.
type Loader interface {
	Load(fullPath, name string) (*Resource, error)
}

// DetermineResourceType classifies a path by extension.
func DetermineResourceType(path string) ResourceType {
	switch filepath.Ext(path) {
	case ".obj":
		return ResourceTypeObject
	case ".material_type":
		return ResourceTypeMaterialType
	case ".camera":
		return ResourceTypeCamera
	case ".vert", ".frag":
		return ResourceTypeShader
	case ".png", ".jpg", ".jpeg", ".bmp", ".tiff":
		return ResourceTypeImage
	}
	return ResourceTypeNone
}
