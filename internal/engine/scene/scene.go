// Package scene composes the desk scene: it owns the ordered list of objects
// and, every frame, drives the camera and pushes per-object shader state
// before each draw.
package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/deskview/internal/engine/camera"
	"github.com/Faultbox/deskview/internal/engine/input"
	"github.com/Faultbox/deskview/internal/engine/lighting"
	"github.com/Faultbox/deskview/internal/engine/material"
	"github.com/Faultbox/deskview/internal/engine/mesh"
	"github.com/Faultbox/deskview/internal/engine/shader"
	"github.com/Faultbox/deskview/internal/engine/shading"
	"github.com/Faultbox/deskview/internal/engine/texture"
	"github.com/Faultbox/deskview/internal/logger"
)

// ErrNotPrepared is returned by RenderFrame before Prepare has run.
var ErrNotPrepared = errors.New("scene not prepared")

// MeshDrawer loads and draws unit primitives.
type MeshDrawer interface {
	Load(kind mesh.Kind) error
	Draw(kind mesh.Kind)
	Destroy()
}

// Config contains scene configuration options.
type Config struct {
	Camera      camera.Settings
	TextureDir  string
	MaxTextures int
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		Camera:      camera.DefaultSettings(),
		TextureDir:  "textures",
		MaxTextures: texture.DefaultCapacity,
	}
}

// Option customizes a Scene.
type Option func(*Scene)

// WithClock replaces the time source used for frame deltas.
func WithClock(now func() time.Time) Option {
	return func(s *Scene) {
		s.now = now
	}
}

// WithDecoder replaces the texture file decoder.
func WithDecoder(d texture.Decoder) Option {
	return func(s *Scene) {
		s.decoder = d
	}
}

// WithObjects replaces the desk layout.
func WithObjects(objects []Object) Option {
	return func(s *Scene) {
		s.objects = objects
	}
}

// Scene draws a fixed list of objects with a free-fly camera.
type Scene struct {
	config Config

	objects   []Object
	textures  *texture.Registry
	materials *material.Registry
	lights    *lighting.Rig
	binder    *shading.Binder
	meshes    MeshDrawer
	camera    *camera.Controller
	input     input.Source

	now       func() time.Time
	decoder   texture.Decoder
	lastFrame time.Time
	prepared  bool

	// Tags already reported as unresolved, keyed by kind and tag
	warned map[string]bool
	log    *zap.Logger
}

// New creates a scene. Nothing is loaded until Prepare.
func New(cfg Config, uniforms shader.Uniforms, meshes MeshDrawer, textures texture.Backend, src input.Source, opts ...Option) *Scene {
	s := &Scene{
		config:    cfg,
		objects:   DeskObjects(),
		materials: material.NewRegistry(),
		meshes:    meshes,
		camera:    camera.NewController(cfg.Camera),
		input:     src,
		now:       time.Now,
		warned:    make(map[string]bool),
		log:       logger.Named("scene"),
	}
	for _, opt := range opts {
		opt(s)
	}

	texOpts := []texture.Option{}
	if cfg.MaxTextures > 0 {
		texOpts = append(texOpts, texture.WithCapacity(cfg.MaxTextures))
	}
	if s.decoder != nil {
		texOpts = append(texOpts, texture.WithDecoder(s.decoder))
	}
	s.textures = texture.NewRegistry(textures, texOpts...)
	s.binder = shading.NewBinder(uniforms, s.textures, s.materials)
	return s
}

// Prepare loads meshes and textures, defines materials, configures lights and
// registers input callbacks. Missing textures are logged and skipped; a mesh
// that cannot be loaded fails preparation and releases the meshes loaded so far. Calling Prepare again is a no-op.
func (s *Scene) Prepare() error {
	if s.prepared {
		return nil
	}

	loaded := make(map[mesh.Kind]bool)
	for _, obj := range s.objects {
		if loaded[obj.Mesh] {
			continue
		}
		if err := s.meshes.Load(obj.Mesh); err != nil {
			// Release the kinds uploaded before the failure
			s.meshes.Destroy()
			return fmt.Errorf("loading %s mesh: %w", obj.Mesh, err)
		}
		loaded[obj.Mesh] = true
	}

	for _, asset := range DeskTextures() {
		path := filepath.Join(s.config.TextureDir, asset.File)
		// Failures are logged by the registry; the object falls back to its color
		_ = s.textures.Load(path, asset.Tag)
	}
	s.textures.BindAll()

	if s.materials.Len() == 0 {
		for _, m := range DeskMaterials() {
			s.materials.Define(m)
		}
	}

	s.lights = DeskLights()
	s.binder.SetupLights(s.lights)

	s.input.OnCursorMove(s.camera.HandleMouseMove)
	s.input.OnScroll(s.camera.HandleScroll)

	s.lastFrame = s.now()
	s.prepared = true

	s.log.Info("scene prepared",
		zap.Int("objects", len(s.objects)),
		zap.Int("meshes", len(loaded)),
		zap.Int("textures", s.textures.Len()),
		zap.Int("materials", s.materials.Len()),
	)
	return nil
}

// RenderFrame applies input for the time elapsed since the previous frame,
// pushes the camera, then pushes state for and draws every object in order.
func (s *Scene) RenderFrame() error {
	if !s.prepared {
		return ErrNotPrepared
	}

	now := s.now()
	dt := float32(now.Sub(s.lastFrame).Seconds())
	s.lastFrame = now

	s.camera.ProcessKeys(s.input, dt)
	s.binder.SetCamera(s.camera.ViewMatrix(), s.camera.ProjectionMatrix(), s.camera.EyePosition())

	for i := range s.objects {
		s.drawObject(&s.objects[i])
	}
	return nil
}

func (s *Scene) drawObject(obj *Object) {
	s.binder.SetTransform(obj.Transform)

	if obj.Material == "" {
		s.binder.UseDefaultMaterial()
	} else if err := s.binder.SetMaterial(obj.Material); err != nil {
		s.warnOnce("material", obj.Material, obj.Name, err)
	}

	if obj.Texture == "" {
		s.binder.SetColor(obj.Color)
	} else if err := s.binder.SetTexture(obj.Texture); err != nil {
		s.warnOnce("texture", obj.Texture, obj.Name, err)
		s.binder.SetColor(obj.Color)
	}

	s.binder.SetUVScale(obj.UVScale.X(), obj.UVScale.Y())
	s.meshes.Draw(obj.Mesh)
}

func (s *Scene) warnOnce(kind, tag, object string, err error) {
	key := kind + ":" + tag
	if s.warned[key] {
		return
	}
	s.warned[key] = true
	s.log.Warn("unresolved "+kind,
		zap.String("tag", tag),
		zap.String("object", object),
		zap.Error(err),
	)
}

// Objects returns a copy of the draw list.
func (s *Scene) Objects() []Object {
	return append([]Object(nil), s.objects...)
}

// Camera returns the camera controller.
func (s *Scene) Camera() *camera.Controller {
	return s.camera
}

// Textures returns the texture registry.
func (s *Scene) Textures() *texture.Registry {
	return s.textures
}

// Prepared reports whether Prepare has completed.
func (s *Scene) Prepared() bool {
	return s.prepared
}

// Destroy releases every texture and mesh buffer. The scene must be
// prepared again before rendering.
func (s *Scene) Destroy() {
	s.textures.Destroy()
	s.meshes.Destroy()
	s.prepared = false
	s.log.Info("scene destroyed")
}
