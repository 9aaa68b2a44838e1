// Package mix selects which named scenarios are produced.
package mix

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/crochess/scenes/pkg/scene"
)

// BookScenePrefix marks scenarios which belong to the book.
const BookScenePrefix = "scn_"

// Producer returns scenes of one named scenario.
type Producer func(ctx context.Context) ([]*scene.Scene, error)

type Registry struct {
	producers map[string]Producer
	recent    []string
}

func NewRegistry() *Registry {
	return &Registry{
		producers: make(map[string]Producer),
	}
}

// DefaultRegistry holds isa_one and all book scenes; recent is isa_one.
func DefaultRegistry() *Registry {
	var r = NewRegistry()
	r.Register(IsaOneName, func(ctx context.Context) ([]*scene.Scene, error) {
		return IsaOne(ctx, nil)
	})
	for _, bs := range bookScenes {
		r.Register(bs.name, bs.produce)
	}
	r.recent = []string{IsaOneName}
	return r
}

func (r *Registry) Register(name string, p Producer) {
	r.producers[name] = p
}

func (r *Registry) Get(name string) (Producer, bool) {
	var p, found = r.producers[name]
	return p, found
}

// Names returns all registered scenario names, sorted.
func (r *Registry) Names() []string {
	var result = make([]string, 0, len(r.producers))
	for name := range r.producers {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// All returns names of book scenarios.
func (r *Registry) All() []string {
	var result []string
	for _, name := range r.Names() {
		if strings.HasPrefix(name, BookScenePrefix) {
			result = append(result, name)
		}
	}
	return result
}

// Recent returns scenarios currently being worked on.
func (r *Registry) Recent() []string {
	return append([]string(nil), r.recent...)
}

func (r *Registry) SetRecent(names ...string) error {
	for _, name := range names {
		if _, found := r.producers[name]; !found {
			return fmt.Errorf("scenario not found %v", name)
		}
	}
	r.recent = append([]string(nil), names...)
	return nil
}

// Walk runs named scenarios in order and passes each scene to fn.
func (r *Registry) Walk(ctx context.Context, names []string, fn func(*scene.Scene) error) error {
	for _, name := range names {
		var p, found = r.producers[name]
		if !found {
			return fmt.Errorf("scenario not found %v", name)
		}
		var scenes, err = p(ctx)
		if err != nil {
			return fmt.Errorf("scenario %v: %w", name, err)
		}
		for _, sc := range scenes {
			if err := fn(sc); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Registry) Produce(ctx context.Context, names []string) ([]*scene.Scene, error) {
	var result []*scene.Scene
	var err = r.Walk(ctx, names, func(sc *scene.Scene) error {
		result = append(result, sc)
		return nil
	})
	return result, err
}
