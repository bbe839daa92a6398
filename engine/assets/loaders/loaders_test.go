package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/prisma/engine/assets"
	"github.com/spaghettifunk/prisma/engine/descriptor"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	full := filepath.Join(dir, name)
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return full
}

func TestObjectLoader(t *testing.T) {
	full := writeFile(t, t.TempDir(), "cube.obj", `(
		shape: Cube(1.0),
		translation: (0.0, 0.5, 0.0),
		material: (
			material_type: "materials/m.material_type",
			resources: {},
		),
	)`)

	res, err := (&ObjectLoader{}).Load(full, "objects/cube.obj")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Type != assets.ResourceTypeObject || res.Name != "objects/cube.obj" {
		t.Fatalf("resource %+v", res)
	}
	obj, ok := res.Data.(*descriptor.ObjectDescriptor)
	if !ok {
		t.Fatalf("payload type %T", res.Data)
	}
	if obj.Shape.ShapeName() != "Cube" {
		t.Fatalf("shape %s", obj.Shape.ShapeName())
	}
}

func TestObjectLoaderPropagatesParseErrors(t *testing.T) {
	full := writeFile(t, t.TempDir(), "broken.obj", `(shape: `)
	if _, err := (&ObjectLoader{}).Load(full, "broken.obj"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestMaterialTypeLoader(t *testing.T) {
	full := writeFile(t, t.TempDir(), "m.material_type", `(
		name: "m",
		pipeline: (vertex: "shaders/v.vert"),
		resource_types: {},
	)`)

	res, err := (&MaterialTypeLoader{}).Load(full, "materials/m.material_type")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	mt, ok := res.Data.(*descriptor.MaterialType)
	if !ok {
		t.Fatalf("payload type %T", res.Data)
	}
	if mt.Name != "m" {
		t.Fatalf("name %q", mt.Name)
	}
}

func TestCameraLoader(t *testing.T) {
	full := writeFile(t, t.TempDir(), "settings.camera", `(
		translation: (1.0, 2.0, 3.0),
		fov_degrees: 60.0,
	)`)

	res, err := (&CameraLoader{}).Load(full, "settings.camera")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cs, ok := res.Data.(*descriptor.CameraSettings)
	if !ok {
		t.Fatalf("payload type %T", res.Data)
	}
	if cs.FovDegrees != 60 {
		t.Fatalf("fov %g", cs.FovDegrees)
	}
}

func TestShaderLoaderStages(t *testing.T) {
	dir := t.TempDir()
	vert := writeFile(t, dir, "base.vert", "#version 450\nvoid main() {}\n")
	frag := writeFile(t, dir, "base.frag", "#version 450\nvoid main() {}\n")

	res, err := (&ShaderLoader{}).Load(vert, "shaders/base.vert")
	if err != nil {
		t.Fatalf("load vert: %v", err)
	}
	if res.Data.(*ShaderSource).Stage != ShaderStageVertex {
		t.Fatalf("expected vertex stage")
	}

	res, err = (&ShaderLoader{}).Load(frag, "shaders/base.frag")
	if err != nil {
		t.Fatalf("load frag: %v", err)
	}
	if res.Data.(*ShaderSource).Stage != ShaderStageFragment {
		t.Fatalf("expected fragment stage")
	}
}

func TestShaderLoaderRejectsEmptySource(t *testing.T) {
	full := writeFile(t, t.TempDir(), "empty.vert", "  \n\t\n")
	if _, err := (&ShaderLoader{}).Load(full, "empty.vert"); err == nil {
		t.Fatalf("expected error for empty shader")
	}
}

func TestTextureLoader(t *testing.T) {
	dir := t.TempDir()
	full := filepath.Join(dir, "checker.png")

	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			c := color.RGBA{A: 255}
			if (x+y)%2 == 0 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(full)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	res, err := (&TextureLoader{}).Load(full, "textures/checker.png")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	info, ok := res.Data.(*ImageInfo)
	if !ok {
		t.Fatalf("payload type %T", res.Data)
	}
	if info.Width != 8 || info.Height != 4 || info.Format != "png" {
		t.Fatalf("info %+v", info)
	}
}

func TestTextureLoaderRejectsGarbage(t *testing.T) {
	full := writeFile(t, t.TempDir(), "bad.png", "not an image")
	if _, err := (&TextureLoader{}).Load(full, "bad.png"); err == nil {
		t.Fatalf("expected error for undecodable image")
	}
}
