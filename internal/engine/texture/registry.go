package texture

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/deskview/internal/logger"
)

// NotFound is the slot returned by FindSlot for unknown tags.
const NotFound = -1

// DefaultCapacity is the number of texture units the scene may bind at once.
const DefaultCapacity = 16

// ErrCapacity is returned when every texture unit is already taken.
var ErrCapacity = errors.New("texture registry full")

// Backend owns the GPU side of textures.
type Backend interface {
	// Upload creates a texture object from decoded pixels and returns its handle.
	Upload(img *Image) (uint32, error)
	// Bind attaches a texture to a texture unit.
	Bind(unit int, handle uint32)
	// Delete releases texture objects.
	Delete(handles []uint32)
}

// Entry associates a tag with an uploaded texture.
type Entry struct {
	Tag    string
	Handle uint32
}

// Registry maps tags to uploaded textures. An entry's index is also the texture
// unit it is bound to. Lookups scan in registration order, so the first entry
// with a given tag shadows later duplicates.
type Registry struct {
	backend  Backend
	decode   Decoder
	capacity int
	entries  []Entry
	log      *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithDecoder replaces the file decoder.
func WithDecoder(d Decoder) Option {
	return func(r *Registry) {
		r.decode = d
	}
}

// WithCapacity sets how many textures may be registered.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		r.capacity = n
	}
}

// NewRegistry creates an empty registry that uploads through backend.
func NewRegistry(backend Backend, opts ...Option) *Registry {
	r := &Registry{
		backend:  backend,
		decode:   DecodeFile,
		capacity: DefaultCapacity,
		log:      logger.Named("texture"),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.entries = make([]Entry, 0, r.capacity)
	return r
}

// Load decodes the image at path, uploads it, and registers it under tag.
// Failures are logged and returned; the registry is left unchanged.
func (r *Registry) Load(path, tag string) error {
	if len(r.entries) >= r.capacity {
		r.log.Warn("no free texture unit",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Int("capacity", r.capacity),
		)
		return fmt.Errorf("loading %s as %q: %w", path, tag, ErrCapacity)
	}

	img, err := r.decode(path)
	if err != nil {
		r.log.Warn("could not load image",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Error(err),
		)
		return fmt.Errorf("loading %s as %q: %w", path, tag, err)
	}

	handle, err := r.backend.Upload(img)
	if err != nil {
		r.log.Warn("texture upload failed", zap.String("tag", tag), zap.Error(err))
		return fmt.Errorf("uploading %s as %q: %w", path, tag, err)
	}

	r.entries = append(r.entries, Entry{Tag: tag, Handle: handle})
	r.log.Info("loaded image",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("channels", img.Channels),
		zap.Int("unit", len(r.entries)-1),
	)
	return nil
}

// BindAll binds every registered texture to the unit equal to its index.
func (r *Registry) BindAll() {
	for i, e := range r.entries {
		r.backend.Bind(i, e.Handle)
	}
}

// Slot returns the texture unit registered for tag.
func (r *Registry) Slot(tag string) (int, bool) {
	for i, e := range r.entries {
		if e.Tag == tag {
			return i, true
		}
	}
	return NotFound, false
}

// FindSlot returns the texture unit registered for tag, or NotFound.
func (r *Registry) FindSlot(tag string) int {
	slot, _ := r.Slot(tag)
	return slot
}

// FindHandle returns the texture handle registered for tag.
func (r *Registry) FindHandle(tag string) (uint32, bool) {
	if slot, ok := r.Slot(tag); ok {
		return r.entries[slot].Handle, true
	}
	return 0, false
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the registered entries in unit order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Destroy releases every registered texture and empties the registry.
func (r *Registry) Destroy() {
	if len(r.entries) == 0 {
		return
	}
	handles := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		handles[i] = e.Handle
	}
	r.backend.Delete(handles)
	r.entries = r.entries[:0]
}
