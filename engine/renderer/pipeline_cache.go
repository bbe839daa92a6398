package renderer

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/spaghettifunk/prisma/engine/descriptor"
)

const pipelineCacheSize = 64

// PipelineCache deduplicates backend pipelines by shader pair. Objects
// sharing a material type share one pipeline; a shader edit invalidates
// every pipeline built from it.
type PipelineCache struct {
	backend Backend
	cache   *lru.Cache[descriptor.Pipeline, PipelineHandle]
}

func NewPipelineCache(backend Backend) *PipelineCache {
	cache, _ := lru.NewWithEvict(pipelineCacheSize, func(_ descriptor.Pipeline, h PipelineHandle) {
		_ = backend.DestroyPipeline(h)
	})
	return &PipelineCache{backend: backend, cache: cache}
}

// Get returns the pipeline handle for the shader pair, creating it through
// the backend on first use.
func (pc *PipelineCache) Get(pipeline descriptor.Pipeline) (PipelineHandle, error) {
	if h, ok := pc.cache.Get(pipeline); ok {
		return h, nil
	}
	h, err := pc.backend.CreatePipeline(pipeline)
	if err != nil {
		return 0, err
	}
	pc.cache.Add(pipeline, h)
	return h, nil
}

// InvalidateShader drops every cached pipeline referencing the shader path
// and returns the dropped pipeline configurations. Removal destroys the
// backend pipeline through the eviction hook.
func (pc *PipelineCache) InvalidateShader(shaderPath string) []descriptor.Pipeline {
	var dropped []descriptor.Pipeline
	for _, key := range pc.cache.Keys() {
		if key.Vertex == shaderPath || key.Fragment == shaderPath {
			pc.cache.Remove(key)
			dropped = append(dropped, key)
		}
	}
	return dropped
}

// Len returns the number of cached pipelines.
func (pc *PipelineCache) Len() int {
	return pc.cache.Len()
}
