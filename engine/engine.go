package engine

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/prisma/engine/assets"
	"github.com/spaghettifunk/prisma/engine/assets/loaders"
	"github.com/spaghettifunk/prisma/engine/config"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/descriptor"
	"github.com/spaghettifunk/prisma/engine/material"
	"github.com/spaghettifunk/prisma/engine/renderer"
	"github.com/spaghettifunk/prisma/engine/renderer/components"
	"github.com/spaghettifunk/prisma/engine/scene"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// Engine owns the designer's systems: asset watching, material resolution,
// the scene and the rendering backend. It consumes debounced asset events
// and turns them into targeted reloads.
type Engine struct {
	currentStage Stage
	config       *config.Config

	assetManager *assets.AssetManager
	registry     *material.Registry
	resolver     *material.Resolver
	scene        *scene.Scene
	backend      renderer.Backend
	camera       *components.Camera

	clock *core.Clock
	quit  chan struct{}
}

func New(cfg *config.Config, backend renderer.Backend) (*Engine, error) {
	core.SetLogLevel(cfg.Log.Level)

	if !core.EventSystemInitialize() {
		return nil, fmt.Errorf("failed to initialize the event system")
	}

	am, err := assets.NewAssetManager(time.Duration(cfg.Assets.DebounceMs) * time.Millisecond)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	am.RegisterLoader(assets.ResourceTypeObject, &loaders.ObjectLoader{})
	am.RegisterLoader(assets.ResourceTypeMaterialType, &loaders.MaterialTypeLoader{})
	am.RegisterLoader(assets.ResourceTypeCamera, &loaders.CameraLoader{})
	am.RegisterLoader(assets.ResourceTypeShader, &loaders.ShaderLoader{})
	am.RegisterLoader(assets.ResourceTypeImage, &loaders.TextureLoader{})

	registry := material.NewRegistry(material.RegistryConfig{
		AssetsDir:         cfg.Assets.Dir,
		VerifyShaderPaths: true,
	})
	resolver := material.NewResolver(registry)

	return &Engine{
		currentStage: EngineStageUninitialized,
		config:       cfg,
		assetManager: am,
		registry:     registry,
		resolver:     resolver,
		scene:        scene.NewScene(registry, resolver, backend),
		backend:      backend,
		camera:       components.NewCamera(),
		clock:        core.NewClock(),
		quit:         make(chan struct{}),
	}, nil
}

// Initialize scans the asset tree, applies the camera settings and spawns
// every indexed object. A malformed object is logged and skipped so the
// rest of the scene still comes up.
func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onQuit)

	if err := e.assetManager.Initialize(e.config.Assets.Dir); err != nil {
		return fmt.Errorf("initialize asset manager: %w", err)
	}

	e.loadCamera(e.config.Assets.CameraSettings)

	for _, path := range e.assetManager.List(assets.ResourceTypeObject) {
		res, err := e.assetManager.LoadAsset(path)
		if err != nil {
			core.LogError("load object %s: %s", path, err.Error())
			continue
		}
		if _, err := e.scene.Spawn(path, res.Data.(*descriptor.ObjectDescriptor)); err != nil {
			core.LogError("spawn object %s: %s", path, err.Error())
		}
	}
	core.LogInfo("scene ready with %d objects", e.scene.Len())

	e.currentStage = EngineStageInitialized
	return nil
}

// Run consumes asset events until Shutdown is called.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine must be initialized before running")
	}
	e.currentStage = EngineStageRunning
	core.LogInfo("watching %s for changes", e.config.Assets.Dir)

	for {
		select {
		case ev := <-e.assetManager.Events():
			e.handleAssetEvent(ev)
		case <-e.quit:
			return nil
		}
	}
}

func (e *Engine) handleAssetEvent(ev assets.Event) {
	e.clock.Start()
	defer func() {
		e.clock.Update()
		core.LogDebug("handled %s %s in %.2fms", ev.Type.String(), ev.Op.String(), e.clock.ElapsedMilliseconds())
	}()

	core.LogDebug("asset %s: %s (%s)", ev.Op.String(), ev.Path, ev.Type.String())

	switch ev.Type {
	case assets.ResourceTypeObject:
		e.onObjectEvent(ev)
	case assets.ResourceTypeMaterialType:
		e.onMaterialTypeEvent(ev)
	case assets.ResourceTypeShader:
		e.onShaderEvent(ev)
	case assets.ResourceTypeCamera:
		e.onCameraEvent(ev)
	case assets.ResourceTypeImage:
		e.onImageEvent(ev)
	}
}

func (e *Engine) onObjectEvent(ev assets.Event) {
	if ev.Op == assets.EventRemoved {
		e.scene.Remove(ev.Path)
		return
	}

	res, err := e.assetManager.LoadAsset(ev.Path)
	if err != nil {
		core.LogError("reload object %s: %s", ev.Path, err.Error())
		return
	}
	if _, err := e.scene.Reload(ev.Path, res.Data.(*descriptor.ObjectDescriptor)); err != nil {
		core.LogError("reload object %s: %s", ev.Path, err.Error())
	}
}

func (e *Engine) onMaterialTypeEvent(ev assets.Event) {
	if !e.registry.Invalidate(ev.Path) && ev.Op == assets.EventRemoved {
		return
	}
	if ev.Op == assets.EventRemoved {
		// Dependents re-resolve and fail loudly against the missing file.
		core.LogWarn("material type %s removed while possibly in use", ev.Path)
	}
	updated := e.scene.ReresolveMaterialType(ev.Path)
	core.LogInfo("material type %s invalidated, %d objects re-resolved", ev.Path, len(updated))
}

func (e *Engine) onShaderEvent(ev assets.Event) {
	invalidated := e.registry.InvalidateUsingShader(ev.Path)
	dropped := e.scene.InvalidateShader(ev.Path)
	core.LogInfo("shader %s changed: %d material types invalidated, %d pipelines dropped", ev.Path, len(invalidated), len(dropped))

	for _, typePath := range invalidated {
		e.scene.ReresolveMaterialType(typePath)
	}
}

func (e *Engine) onCameraEvent(ev assets.Event) {
	if ev.Path != e.config.Assets.CameraSettings {
		return
	}
	if ev.Op == assets.EventRemoved {
		core.LogWarn("camera settings %s removed, keeping last values", ev.Path)
		return
	}
	e.loadCamera(ev.Path)
}

func (e *Engine) onImageEvent(ev assets.Event) {
	if ev.Op == assets.EventRemoved {
		core.LogWarn("texture %s removed while possibly in use", ev.Path)
		return
	}

	// Probe the file so broken images are reported before any re-upload.
	res, err := e.assetManager.LoadAsset(ev.Path)
	if err != nil {
		core.LogError("reload texture %s: %s", ev.Path, err.Error())
		return
	}
	info := res.Data.(*loaders.ImageInfo)
	core.LogDebug("texture %s: %dx%d %s", ev.Path, info.Width, info.Height, info.Format)

	updated := e.scene.RefreshTexture(ev.Path)
	core.LogInfo("texture %s changed, %d objects refreshed", ev.Path, len(updated))
}

// loadCamera reads the camera settings file and pushes the new
// view-projection to the backend. Errors keep the previous camera.
func (e *Engine) loadCamera(path string) {
	res, err := e.assetManager.LoadAsset(path)
	if err != nil {
		core.LogWarn("camera settings %s unavailable, using defaults: %s", path, err.Error())
		e.pushCamera()
		return
	}
	e.camera.Apply(res.Data.(*descriptor.CameraSettings))
	e.pushCamera()
	core.EventFire(core.EVENT_CODE_CAMERA_CHANGED, e, core.EventContext{Path: path})
}

func (e *Engine) pushCamera() {
	aspect := float32(e.config.Window.Width) / float32(e.config.Window.Height)
	if err := e.backend.SetCamera(e.camera.View(), e.camera.Projection(aspect)); err != nil {
		core.LogError("update camera: %s", err.Error())
	}
}

func (e *Engine) onQuit(code core.SystemEventCode, sender interface{}, ctx core.EventContext) bool {
	_ = e.Shutdown()
	return true
}

// Scene exposes the spawned entities, mainly for inspection and tests.
func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

// Shutdown stops the watcher and the run loop.
func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return core.ErrAlreadyClosed
	}
	e.currentStage = EngineStageShuttingDown
	core.LogInfo("shutting down")

	if err := e.assetManager.Shutdown(); err != nil && err != core.ErrAlreadyClosed {
		core.LogError("shutdown asset manager: %s", err.Error())
	}
	if err := core.EventSystemShutdown(); err != nil {
		core.LogError("shutdown event system: %s", err.Error())
	}
	close(e.quit)
	return nil
}
