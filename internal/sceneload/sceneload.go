package sceneload

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/pelletier/go-toml/v2"

	"scenegrip/internal/domain"
	"scenegrip/internal/eventbus"
	"scenegrip/internal/registry"
	"scenegrip/internal/scene"
)

// Service loads scene files and exposes the active scene graph
type Service interface {
	StartLoad(ctx context.Context, path string) error
	ActiveScene() *scene.Graph
	ActivePath() string
	Stop()
}

// loaderService is the concrete implementation
type loaderService struct {
	bus        eventbus.EventBus
	store      registry.Store
	cameraName string

	mu         sync.Mutex
	isLoading  bool
	cancelFunc context.CancelFunc
	activePath string
	wg         sync.WaitGroup

	active atomic.Pointer[scene.Graph]
}

// NewService creates a scene loader that registers entities in the store
// and creates the interactive camera under the given name
func NewService(bus eventbus.EventBus, store registry.Store, cameraName string) Service {
	ls := &loaderService{
		bus:        bus,
		store:      store,
		cameraName: cameraName,
	}

	// Subscribe to reload requests
	bus.Subscribe(eventbus.EventSceneLoadRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SceneLoadRequestedEvent); ok {
			path := event.Path
			if path == "" {
				path = ls.ActivePath()
			}
			go func() {
				if err := ls.StartLoad(context.Background(), path); err != nil {
					log.Printf("SceneLoad: reload refused: %v", err)
				}
			}()
		}
	})

	return ls
}

// StartLoad parses the scene file, registers its entities and publishes the
// resulting graph. An empty path loads the built-in sample scene. The
// previous scene stays active if loading fails.
func (ls *loaderService) StartLoad(ctx context.Context, path string) error {
	ls.mu.Lock()
	if ls.isLoading {
		ls.mu.Unlock()
		return fmt.Errorf("scene load already in progress")
	}
	ls.isLoading = true

	loadCtx, cancel := context.WithCancel(ctx)
	ls.cancelFunc = cancel
	ls.mu.Unlock()

	ls.bus.Publish(eventbus.SceneLoadStartedEvent{Path: displayPath(path)})

	ls.wg.Add(1)
	go func() {
		defer ls.wg.Done()
		defer func() {
			ls.mu.Lock()
			ls.isLoading = false
			ls.cancelFunc = nil
			ls.mu.Unlock()
		}()

		ls.load(loadCtx, path)
	}()

	return nil
}

// load runs on the loader goroutine
func (ls *loaderService) load(ctx context.Context, path string) {
	data, err := readScene(path)
	if err != nil {
		ls.fail(path, err)
		return
	}

	var file sceneFile
	if err := toml.Unmarshal(data, &file); err != nil {
		ls.fail(path, fmt.Errorf("parsing scene: %w", err))
		return
	}

	select {
	case <-ctx.Done():
		log.Printf("SceneLoad: load of %s canceled", displayPath(path))
		return
	default:
	}

	// Entities from a replaced scene must not resolve anymore
	ls.store.Reset()
	graph, entities, err := buildScene(&file, ls.store, ls.cameraName)
	if err != nil {
		ls.fail(path, err)
		return
	}

	ls.active.Store(graph)
	ls.mu.Lock()
	ls.activePath = path
	ls.mu.Unlock()

	ls.bus.Publish(eventbus.EntitiesRegisteredEvent{Entities: entities})
	ls.bus.Publish(eventbus.SceneLoadedEvent{
		Path:        displayPath(path),
		EntityCount: len(entities),
	})
	log.Printf("SceneLoad: loaded %s with %d entities", displayPath(path), len(entities))
}

func (ls *loaderService) fail(path string, err error) {
	log.Printf("SceneLoad: %v", err)
	ls.bus.Publish(eventbus.ErrorEvent{
		Message: fmt.Sprintf("Failed to load scene %s", displayPath(path)),
		Err:     err,
	})
}

// ActiveScene returns the most recently loaded graph, nil before the first
// load completes
func (ls *loaderService) ActiveScene() *scene.Graph {
	return ls.active.Load()
}

// ActivePath returns the path of the active scene file
func (ls *loaderService) ActivePath() string {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.activePath
}

// Stop cancels any in-flight load and waits for it to finish
func (ls *loaderService) Stop() {
	ls.mu.Lock()
	if ls.cancelFunc != nil {
		ls.cancelFunc()
	}
	ls.mu.Unlock()

	ls.wg.Wait()
}

func readScene(path string) ([]byte, error) {
	if path == "" {
		return []byte(sampleScene), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return data, nil
}

func displayPath(path string) string {
	if path == "" {
		return "<sample>"
	}
	return path
}

// sceneFile is the TOML layout of a scene description
type sceneFile struct {
	Name        string       `toml:"name"`
	Camera      cameraSpec   `toml:"camera"`
	Entities    []entitySpec `toml:"entities"`
	Decorations []entitySpec `toml:"decorations"`
}

type cameraSpec struct {
	Origin       []float64 `toml:"origin"`
	CellsPerUnit float64   `toml:"cells_per_unit"`
}

// entitySpec describes one box-shaped node. Decorations use the same shape
// but are never tagged with an entity id.
type entitySpec struct {
	Name     string    `toml:"name"`
	Kind     string    `toml:"kind"`
	Position []float64 `toml:"position"`
	Size     []float64 `toml:"size"`
	Scale    []float64 `toml:"scale"`
	Glyph    string    `toml:"glyph"`
	Color    string    `toml:"color"`
}

// buildScene turns a parsed scene file into a graph, registering each
// entity in the store
func buildScene(file *sceneFile, store registry.Store, cameraName string) (*scene.Graph, []domain.Entity, error) {
	graph := scene.NewGraph()

	origin := domain.Vec2{}
	if len(file.Camera.Origin) == 2 {
		origin = domain.Vec2{X: file.Camera.Origin[0], Y: file.Camera.Origin[1]}
	}
	graph.CreateCamera(cameraName, origin, file.Camera.CellsPerUnit)

	entities := make([]domain.Entity, 0, len(file.Entities))
	for i := range file.Entities {
		spec := &file.Entities[i]
		node, err := buildNode(graph, spec)
		if err != nil {
			return nil, nil, fmt.Errorf("entity %d (%s): %w", i, spec.Name, err)
		}
		entity := store.Register(spec.Name, parseKind(spec.Kind))
		node.SetEntity(entity.ID)
		graph.AddRoot(node)
		entities = append(entities, entity)
	}

	for i := range file.Decorations {
		spec := &file.Decorations[i]
		node, err := buildNode(graph, spec)
		if err != nil {
			return nil, nil, fmt.Errorf("decoration %d (%s): %w", i, spec.Name, err)
		}
		graph.AddRoot(node)
	}

	return graph, entities, nil
}

// buildNode creates a detached box node from a spec
func buildNode(graph *scene.Graph, spec *entitySpec) (*scene.Node, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(spec.Position) != 2 {
		return nil, fmt.Errorf("position must have two components")
	}
	if len(spec.Size) != 2 || spec.Size[0] <= 0 || spec.Size[1] <= 0 {
		return nil, fmt.Errorf("size must have two positive components")
	}

	node := graph.CreateNode(spec.Name)
	node.SetGeometry(scene.NewBoxGeometry(spec.Size[0], spec.Size[1]))
	node.SetLocalPosition(domain.Vec2{X: spec.Position[0], Y: spec.Position[1]})
	if len(spec.Scale) == 2 {
		node.SetLocalScale(domain.Vec2{X: spec.Scale[0], Y: spec.Scale[1]})
	}
	if spec.Glyph != "" {
		node.SetGlyph([]rune(spec.Glyph)[0])
	}
	if spec.Color != "" {
		color, err := parseHexColor(spec.Color)
		if err != nil {
			return nil, err
		}
		material := graph.CreateMaterial(spec.Name)
		material.SetDiffuse(color.R, color.G, color.B)
		node.SetMaterial(material)
	}
	return node, nil
}

func parseKind(kind string) domain.EntityKind {
	switch kind {
	case string(domain.KindLight):
		return domain.KindLight
	case string(domain.KindSensor):
		return domain.KindSensor
	case string(domain.KindMarker):
		return domain.KindMarker
	default:
		return domain.KindModel
	}
}

// parseHexColor parses "#rrggbb" into unit-range components
func parseHexColor(s string) (domain.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return domain.Color{}, fmt.Errorf("color %q must look like #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return domain.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return domain.Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}
