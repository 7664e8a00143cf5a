package selection

import (
	"log"
	"sync/atomic"

	"scenegrip/internal/domain"
	"scenegrip/internal/eventbus"
	"scenegrip/internal/scene"
)

// SceneSource provides the active scene graph once loading completes.
// ActiveScene returns nil until then.
type SceneSource interface {
	ActiveScene() *scene.Graph
}

// Manager turns clicks into a durable ordered selection with highlight
// overlays and broadcasts selection changes on the bus.
//
// Two execution contexts touch it: input contexts (the TUI mouse handler
// and bus subscriptions) only write the pending slot and the transform
// flag, while the render tick resolves clicks, mutates the selection and
// overlays, and publishes events. Scene handles never cross that boundary;
// only entity ids do.
type Manager struct {
	source     SceneSource
	cameraName string
	bus        eventbus.EventBus

	pending         pendingSlot
	transformActive atomic.Bool

	// Render-tick state, nil until the scene and camera are acquired
	graph    *scene.Graph
	camera   *scene.Camera
	overlays *OverlayStore
	list     *List

	warnedScene  bool
	warnedCamera bool
}

// NewManager creates a selection manager reading scenes from the source and
// resolving clicks through the named camera. It subscribes itself to
// transform mode changes and programmatic selection requests.
func NewManager(source SceneSource, cameraName string, bus eventbus.EventBus) *Manager {
	m := &Manager{
		source:     source,
		cameraName: cameraName,
		bus:        bus,
	}
	m.subscribeToEvents()
	return m
}

// subscribeToEvents registers the bus-driven input paths. Handlers only
// write the pending slot or the transform flag; all heavy lifting stays on
// the render tick.
func (m *Manager) subscribeToEvents() {
	m.bus.Subscribe(eventbus.EventTransformModeChanged, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.TransformModeChangedEvent); ok {
			m.transformActive.Store(evt.Active)
		}
	})

	m.bus.Subscribe(eventbus.EventSelectionRequested, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.SelectionRequestedEvent); ok {
			m.pending.put(pendingClick{
				kind:        clickDirect,
				entity:      evt.Entity,
				multiSelect: !evt.DeselectFirst,
				notify:      evt.Notify,
			})
		}
	})

	m.bus.Subscribe(eventbus.EventDeselectRequested, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.DeselectRequestedEvent); ok {
			m.pending.put(pendingClick{kind: clickDeselect, fromUser: evt.FromUser})
		}
	})
}

// OnClick records a left click on the scene viewport. Safe to call from the
// input context; resolution happens on the next render tick. The modifier
// state is captured here, at click time.
func (m *Manager) OnClick(pos domain.ScreenPoint, multiSelect bool) {
	m.pending.put(pendingClick{
		kind:        clickMouse,
		pos:         pos,
		multiSelect: multiSelect,
		notify:      true,
	})
}

// RenderTick advances initialization and resolves at most one pending
// click. Call it once per render pass from the context that owns the scene.
func (m *Manager) RenderTick() {
	m.initialize()
	if m.graph == nil || m.camera == nil {
		// Not ready, leave any pending click for a later tick
		return
	}
	m.handlePending()
}

// Selection returns the current ordered selection. Render-tick context.
func (m *Manager) Selection() []domain.EntityID {
	if m.list == nil {
		return nil
	}
	return m.list.Entities()
}

// Ready reports whether scene and camera have been acquired
func (m *Manager) Ready() bool {
	return m.graph != nil && m.camera != nil
}

// initialize re-attempts scene and camera acquisition until both resolve.
// A reloaded scene graph resets selection state, since the old overlays
// live in the discarded graph.
func (m *Manager) initialize() {
	current := m.source.ActiveScene()
	if current == nil {
		if !m.warnedScene {
			log.Printf("Selection: scene is not available yet")
			m.warnedScene = true
		}
		return
	}

	if current != m.graph {
		m.graph = current
		m.camera = nil
		m.overlays = NewOverlayStore(current)
		m.list = NewList(current, m.overlays)
		m.warnedCamera = false
		log.Printf("Selection: scene acquired")
	}

	if m.camera == nil {
		m.camera = m.graph.CameraByName(m.cameraName)
		if m.camera == nil {
			if !m.warnedCamera {
				log.Printf("Selection: camera %q is not available", m.cameraName)
				m.warnedCamera = true
			}
			return
		}
		log.Printf("Selection: camera %q acquired", m.cameraName)
	}
}

// handlePending consumes the pending slot and dispatches on the record kind
func (m *Manager) handlePending() {
	click, ok := m.pending.take()
	if !ok {
		return
	}

	switch click.kind {
	case clickMouse:
		node := m.graph.NodeAt(m.camera, click.pos)
		if node == nil {
			// Clicked empty space
			m.DeselectAll(true)
			return
		}
		entity := node.Entity()
		if entity == domain.NullEntity {
			// Clicked an untagged visual such as an outline or decoration
			return
		}
		m.handleClick(entity, click.multiSelect, click.notify)

	case clickDirect:
		if click.entity == domain.NullEntity || m.graph.NodeByEntity(click.entity) == nil {
			return
		}
		m.handleClick(click.entity, click.multiSelect, click.notify)

	case clickDeselect:
		m.DeselectAll(click.fromUser)
	}
}

// handleClick applies the selection semantics for one resolved entity
func (m *Manager) handleClick(entity domain.EntityID, multiSelect, notify bool) {
	cleared := false

	// A transform tool operates on exactly one target, so it forces a
	// clear even while the multi-select modifier is held. The clear is
	// broadcast regardless of notify because it is a new decision made
	// by this widget.
	if m.transformActive.Load() || (!multiSelect && m.list.Len() > 0) {
		m.DeselectAll(true)
		cleared = true
	}

	if !cleared && m.list.Contains(entity) {
		// Accumulating onto an already selected entity only refreshes
		// its outline
		m.overlays.Highlight(m.graph.NodeByEntity(entity))
		return
	}

	m.list.Add(entity)

	if notify || cleared {
		m.bus.Publish(domain.SelectionChangedEvent{
			Entities: m.list.Entities(),
			Appended: !cleared,
		})
	}
}

// DeselectAll clears the selection and broadcasts the clear, even when the
// selection was already empty. FromUser tells subscribers whether the clear
// came from direct user interaction.
func (m *Manager) DeselectAll(fromUser bool) {
	if m.graph == nil {
		return
	}
	m.list.ClearAll()
	m.bus.Publish(domain.DeselectAllEvent{FromUser: fromUser})
}
