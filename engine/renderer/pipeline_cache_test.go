package renderer

import (
	"testing"

	"github.com/spaghettifunk/prisma/engine/descriptor"
)

func TestPipelineCacheDeduplicates(t *testing.T) {
	backend := NewNullBackend()
	pc := NewPipelineCache(backend)

	p := descriptor.Pipeline{Vertex: "shaders/base.vert", Fragment: "shaders/base.frag"}
	h1, err := pc.Get(p)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	h2, err := pc.Get(p)
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("same pipeline config must share one handle: %d vs %d", h1, h2)
	}
	if pc.Len() != 1 {
		t.Fatalf("cache size %d", pc.Len())
	}

	other := descriptor.Pipeline{Vertex: "shaders/base.vert", Fragment: "shaders/other.frag"}
	h3, err := pc.Get(other)
	if err != nil {
		t.Fatalf("get other: %v", err)
	}
	if h3 == h1 {
		t.Fatalf("distinct configs must not share a handle")
	}
	if pc.Len() != 2 {
		t.Fatalf("cache size %d", pc.Len())
	}
}

func TestPipelineCacheInvalidateShader(t *testing.T) {
	pc := NewPipelineCache(NewNullBackend())

	shared := descriptor.Pipeline{Vertex: "shaders/base.vert", Fragment: "shaders/a.frag"}
	other := descriptor.Pipeline{Vertex: "shaders/base.vert", Fragment: "shaders/b.frag"}
	unrelated := descriptor.Pipeline{Vertex: "shaders/sky.vert", Fragment: "shaders/sky.frag"}
	for _, p := range []descriptor.Pipeline{shared, other, unrelated} {
		if _, err := pc.Get(p); err != nil {
			t.Fatalf("get: %v", err)
		}
	}

	dropped := pc.InvalidateShader("shaders/base.vert")
	if len(dropped) != 2 {
		t.Fatalf("dropped %v", dropped)
	}
	if pc.Len() != 1 {
		t.Fatalf("cache size %d", pc.Len())
	}

	// Fragment-stage matches count too.
	if dropped := pc.InvalidateShader("shaders/sky.frag"); len(dropped) != 1 {
		t.Fatalf("dropped %v", dropped)
	}
	if pc.Len() != 0 {
		t.Fatalf("cache size %d", pc.Len())
	}
}

func TestPipelineCacheInvalidateUnknownShader(t *testing.T) {
	pc := NewPipelineCache(NewNullBackend())
	if dropped := pc.InvalidateShader("shaders/none.vert"); dropped != nil {
		t.Fatalf("dropped %v", dropped)
	}
}
