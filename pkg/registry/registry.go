// Package registry keeps one hashids codec per namespace so ids of different
// kinds (users, orders, ...) are encoded under different salts.
package registry

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-hashids/pkg/datastructs/shardedmap"
	"github.com/huynhanx03/go-hashids/pkg/hash"
	"github.com/huynhanx03/go-hashids/pkg/hashids"
	"github.com/huynhanx03/go-hashids/pkg/settings"
)

// DefaultNamespace names the base codec. It cannot be registered.
const DefaultNamespace = "default"

const registryShards = 16

var (
	ErrEmptyNamespace    = errors.New("namespace name is empty")
	ErrReservedNamespace = errors.New("namespace name is reserved")
	ErrNamespaceExists   = errors.New("namespace already registered")
	ErrNamespaceNotFound = errors.New("namespace not found")
)

// Registry maps namespace names to codecs. It is safe for concurrent use.
type Registry struct {
	base   settings.Hashids
	def    *hashids.HashID
	codecs *shardedmap.Map[string, *hashids.HashID]
	log    *zap.Logger
}

// New builds the default codec from base. A nil logger disables logging.
func New(base settings.Hashids, log *zap.Logger) (*Registry, error) {
	if log == nil {
		log = zap.NewNop()
	}

	def, err := hashids.NewFromConfig(base)
	if err != nil {
		return nil, errors.Wrap(err, "build default codec")
	}

	return &Registry{
		base:   base,
		def:    def,
		codecs: shardedmap.New[string, *hashids.HashID](registryShards, hash.String),
		log:    log.Named("registry"),
	}, nil
}

// FromConfig creates a registry from cfg.Hashids and registers every entry
// of cfg.Namespaces.
func FromConfig(cfg settings.Config, log *zap.Logger) (*Registry, error) {
	r, err := New(cfg.Hashids, log)
	if err != nil {
		return nil, err
	}

	for name, ns := range cfg.Namespaces {
		if err := r.Register(name, ns); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register builds a codec for name. Zero fields of cfg inherit from the base
// configuration; an empty salt becomes "<name>:<base salt>".
func (r *Registry) Register(name string, cfg settings.Hashids) error {
	switch name {
	case "":
		return ErrEmptyNamespace
	case DefaultNamespace:
		return errors.Wrap(ErrReservedNamespace, name)
	}

	cfg = r.inherit(name, cfg)
	codec, err := hashids.NewFromConfig(cfg)
	if err != nil {
		return errors.Wrapf(err, "namespace %s", name)
	}

	if _, stored := r.codecs.SetIfAbsent(name, codec); !stored {
		return errors.Wrap(ErrNamespaceExists, name)
	}

	r.log.Info("namespace registered",
		zap.String("namespace", name),
		zap.Int("min_length", codec.MinLength()),
		zap.Int("alphabet_size", len([]rune(codec.Alphabet()))),
	)
	return nil
}

func (r *Registry) inherit(name string, cfg settings.Hashids) settings.Hashids {
	// The shuffle fills the tail of the alphabet from the leading salt
	// characters, so the name goes first or namespaces share that tail.
	if cfg.Salt == "" {
		cfg.Salt = name + ":" + r.base.Salt
	}
	if cfg.MinLength == 0 {
		cfg.MinLength = r.base.MinLength
	}
	if cfg.Alphabet == "" {
		cfg.Alphabet = r.base.Alphabet
	}
	if cfg.Separators == nil {
		cfg.Separators = r.base.Separators
	}
	return cfg
}

// Unregister removes name and reports whether it was registered.
func (r *Registry) Unregister(name string) bool {
	ok := r.codecs.Del(name)
	if ok {
		r.log.Info("namespace unregistered", zap.String("namespace", name))
	}
	return ok
}

// Get returns the codec for name. DefaultNamespace resolves to the default codec.
func (r *Registry) Get(name string) (*hashids.HashID, bool) {
	if name == DefaultNamespace {
		return r.def, true
	}
	return r.codecs.Get(name)
}

// Lookup is Get with an error suitable for returning to callers.
func (r *Registry) Lookup(name string) (*hashids.HashID, error) {
	codec, ok := r.Get(name)
	if !ok {
		return nil, errors.Wrap(ErrNamespaceNotFound, name)
	}
	return codec, nil
}

// MustGet is like Get but panics when name is unknown.
func (r *Registry) MustGet(name string) *hashids.HashID {
	codec, ok := r.Get(name)
	if !ok {
		panic("registry: unknown namespace " + name)
	}
	return codec
}

func (r *Registry) Default() *hashids.HashID { return r.def }

// Names returns the registered namespaces in lexical order, without DefaultNamespace.
func (r *Registry) Names() []string {
	return r.codecs.Keys(func(a, b string) bool { return a < b })
}

// Len returns the number of registered namespaces, without DefaultNamespace.
func (r *Registry) Len() int { return r.codecs.Len() }
