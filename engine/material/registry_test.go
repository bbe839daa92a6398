package material

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/spaghettifunk/prisma/engine/descriptor"
)

const baseTextureType = `(
    name: "base_texture",
    pipeline: (
        vertex: "shaders/base.vert",
        fragment: Some("shaders/base_texture.frag"),
    ),
    resource_types: {
        "base_color_texture": Texture,
    },
)`

const baseColorType = `(
    name: "base_color",
    pipeline: (
        vertex: "shaders/base.vert",
        fragment: Some("shaders/base_color.frag"),
    ),
    resource_types: {
        "base_color": Color,
    },
)`

// writeAssets lays out a minimal assets tree in a temp dir and returns its
// root.
func writeAssets(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func testAssets(t *testing.T) string {
	return writeAssets(t, map[string]string{
		"materials/base_texture.material_type": baseTextureType,
		"materials/base_color.material_type":   baseColorType,
		"shaders/base.vert":                    "#version 450\nvoid main() {}\n",
		"shaders/base_texture.frag":            "#version 450\nvoid main() {}\n",
		"shaders/base_color.frag":              "#version 450\nvoid main() {}\n",
	})
}

func TestRegistryLoadOrGetMemoizes(t *testing.T) {
	r := NewRegistry(RegistryConfig{AssetsDir: testAssets(t)})

	first, err := r.LoadOrGet("materials/base_texture.material_type")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	second, err := r.LoadOrGet("materials/base_texture.material_type")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if first != second {
		t.Fatalf("expected pointer-identical cached entry")
	}
	if first.Name != "base_texture" {
		t.Fatalf("name %q", first.Name)
	}
}

func TestRegistryInvalidateDropsEntry(t *testing.T) {
	r := NewRegistry(RegistryConfig{AssetsDir: testAssets(t)})

	first, err := r.LoadOrGet("materials/base_texture.material_type")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !r.Invalidate("materials/base_texture.material_type") {
		t.Fatalf("expected cached entry to be invalidated")
	}
	if r.Invalidate("materials/base_texture.material_type") {
		t.Fatalf("second invalidation must report a miss")
	}

	second, err := r.LoadOrGet("materials/base_texture.material_type")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if first == second {
		t.Fatalf("invalidated entry must be re-parsed, not reused")
	}
}

func TestRegistryLoadErrors(t *testing.T) {
	root := writeAssets(t, map[string]string{
		"materials/broken.material_type": `(name: "broken"`,
	})
	r := NewRegistry(RegistryConfig{AssetsDir: root})

	if _, err := r.LoadOrGet("materials/missing.material_type"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := r.LoadOrGet("materials/broken.material_type"); err == nil {
		t.Fatalf("expected error for malformed file")
	}
	if got := r.Paths(); len(got) != 0 {
		t.Fatalf("failed loads must not be cached, got %v", got)
	}
}

func TestRegistryVerifyShaderPaths(t *testing.T) {
	root := writeAssets(t, map[string]string{
		"materials/base_texture.material_type": baseTextureType,
		"shaders/base.vert":                    "#version 450\nvoid main() {}\n",
		// base_texture.frag deliberately absent
	})
	r := NewRegistry(RegistryConfig{AssetsDir: root, VerifyShaderPaths: true})

	_, err := r.LoadOrGet("materials/base_texture.material_type")
	if !errors.Is(err, descriptor.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing shader, got %v", err)
	}
}

func TestRegistryInvalidateUsingShader(t *testing.T) {
	r := NewRegistry(RegistryConfig{AssetsDir: testAssets(t)})

	for _, p := range []string{
		"materials/base_texture.material_type",
		"materials/base_color.material_type",
	} {
		if _, err := r.LoadOrGet(p); err != nil {
			t.Fatalf("load %s: %v", p, err)
		}
	}

	// Both types share the vertex shader.
	invalidated := r.InvalidateUsingShader("shaders/base.vert")
	want := []string{
		"materials/base_color.material_type",
		"materials/base_texture.material_type",
	}
	if !reflect.DeepEqual(invalidated, want) {
		t.Fatalf("invalidated %v, want %v", invalidated, want)
	}
	if got := r.Paths(); len(got) != 0 {
		t.Fatalf("expected empty cache, got %v", got)
	}
}

func TestRegistryInvalidateUsingFragmentShader(t *testing.T) {
	r := NewRegistry(RegistryConfig{AssetsDir: testAssets(t)})

	for _, p := range []string{
		"materials/base_texture.material_type",
		"materials/base_color.material_type",
	} {
		if _, err := r.LoadOrGet(p); err != nil {
			t.Fatalf("load %s: %v", p, err)
		}
	}

	invalidated := r.InvalidateUsingShader("shaders/base_color.frag")
	if len(invalidated) != 1 || invalidated[0] != "materials/base_color.material_type" {
		t.Fatalf("invalidated %v", invalidated)
	}
	if got := r.Paths(); len(got) != 1 {
		t.Fatalf("expected one surviving entry, got %v", got)
	}
}

func TestRegistryOnInvalidate(t *testing.T) {
	r := NewRegistry(RegistryConfig{AssetsDir: testAssets(t)})

	var mu sync.Mutex
	var notified []string
	r.OnInvalidate(func(path string) {
		mu.Lock()
		notified = append(notified, path)
		mu.Unlock()
	})

	if _, err := r.LoadOrGet("materials/base_texture.material_type"); err != nil {
		t.Fatalf("load: %v", err)
	}
	r.Invalidate("materials/base_texture.material_type")
	r.Invalidate("materials/base_texture.material_type") // miss, no callback

	mu.Lock()
	defer mu.Unlock()
	if len(notified) != 1 || notified[0] != "materials/base_texture.material_type" {
		t.Fatalf("notified %v", notified)
	}
}

func TestRegistryConcurrentLoadOrGet(t *testing.T) {
	r := NewRegistry(RegistryConfig{AssetsDir: testAssets(t)})

	const goroutines = 16
	results := make([]*descriptor.MaterialType, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mt, err := r.LoadOrGet("materials/base_texture.material_type")
			if err != nil {
				t.Errorf("load: %v", err)
				return
			}
			results[i] = mt
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatalf("concurrent loads returned distinct instances")
		}
	}
}
