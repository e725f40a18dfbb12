package gameforge

import "slices"

// Component is a behavior attached to a GameObject. Update runs once per
// frame, after the object's global transform is current.
type Component interface {
	Update(dt Time)
}

// Attacher is implemented by components that need their owner. Attach runs
// when the component is added.
type Attacher interface {
	Attach(owner *GameObject)
}

// Disposer is implemented by components that release resources when their
// owner is disposed.
type Disposer interface {
	Dispose()
}

// GameObject is a node in the object tree. It owns its components and its
// children: disposing an object disposes the whole subtree.
type GameObject struct {
	Name string

	// Transform is the local transform, relative to the parent's anchor.
	Transform Transform2

	// Anchor shifts the pivot children are placed around. It is scaled and
	// rotated by the local transform.
	Anchor Vec2f

	parent     *GameObject
	children   []*GameObject
	components []Component
	global     Transform2
	disposed   bool
}

// NewGameObject returns an object with an identity transform.
func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:      name,
		Transform: IdentityTransform(),
		global:    IdentityTransform(),
	}
}

// --- Tree manipulation ---

// AddChild appends child to this object's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this object (cycle).
func (g *GameObject) AddChild(child *GameObject) {
	if child == nil {
		panic("gameforge: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(g, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, g) {
		panic("gameforge: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = g
	g.children = append(g.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(g)
	}
}

// RemoveChild detaches child from this object without disposing it.
// Panics if child's parent is not g.
func (g *GameObject) RemoveChild(child *GameObject) {
	if child.parent != g {
		panic("gameforge: child's parent is not this object")
	}
	g.removeChildByPtr(child)
	child.parent = nil
}

// RemoveFromParent detaches this object from its parent.
// No-op if it has no parent.
func (g *GameObject) RemoveFromParent() {
	if g.parent == nil {
		return
	}
	g.parent.RemoveChild(g)
}

// Parent returns the parent, or nil for a root.
func (g *GameObject) Parent() *GameObject { return g.parent }

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (g *GameObject) Children() []*GameObject { return g.children }

// --- Components ---

// AddComponent attaches c to this object. Components update in the order
// they were added.
func (g *GameObject) AddComponent(c Component) {
	if c == nil {
		panic("gameforge: cannot add nil component")
	}
	if globalDebug {
		debugCheckDisposed(g, "AddComponent")
	}
	g.components = append(g.components, c)
	if a, ok := c.(Attacher); ok {
		a.Attach(g)
	}
}

// Components returns the component list. The returned slice MUST NOT be mutated by the caller.
func (g *GameObject) Components() []Component { return g.components }

// ComponentOf returns the first component of g with type T.
func ComponentOf[T Component](g *GameObject) (T, bool) {
	for _, c := range g.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// --- Update ---

// GlobalTransform returns the transform computed by the last Update.
func (g *GameObject) GlobalTransform() Transform2 { return g.global }

// Update recomputes global transforms for the whole subtree, then updates
// components depth-first: each child's subtree before this object's own
// components.
func (g *GameObject) Update(dt Time) {
	g.updateGlobal(g.parentPivot())
	g.updateComponents(dt)
}

// parentPivot returns the transform children of the parent are placed in.
func (g *GameObject) parentPivot() Transform2 {
	if g.parent == nil {
		return IdentityTransform()
	}
	return g.parent.pivot()
}

// pivot is the global transform moved by the anchor offset.
func (g *GameObject) pivot() Transform2 {
	offset := g.Anchor.Mul(g.Transform.Scale).Rotated(g.Transform.Rotation)
	return g.global.Translate(offset)
}

func (g *GameObject) updateGlobal(parent Transform2) {
	g.global = parent.Mul(g.Transform)
	pivot := g.pivot()
	for _, child := range g.children {
		child.updateGlobal(pivot)
	}
}

// updateComponents walks snapshots of the child and component lists, so
// components may add, remove or dispose objects while it runs. Objects that
// leave g or are disposed mid-pass are skipped; objects added mid-pass first
// update on the next frame.
func (g *GameObject) updateComponents(dt Time) {
	for _, child := range slices.Clone(g.children) {
		if child.parent != g || child.disposed {
			continue
		}
		child.updateComponents(dt)
		if g.disposed {
			return
		}
	}
	for _, c := range slices.Clone(g.components) {
		c.Update(dt)
		if g.disposed {
			return
		}
	}
}

// WorldMatrix returns the affine matrix that maps this object's local space
// to the root's, composing each ancestor's Transform.Matrix. Unlike
// GlobalTransform it rotates and scales children with their parents.
func (g *GameObject) WorldMatrix() [6]float64 {
	m := g.Transform.Matrix()
	for p := g.parent; p != nil; p = p.parent {
		m = multiplyAffine(p.Transform.Matrix(), m)
	}
	return m
}

// LocalToWorld maps a local point through WorldMatrix.
func (g *GameObject) LocalToWorld(p Vec2f) Vec2f {
	x, y := transformPoint(g.WorldMatrix(), p.X, p.Y)
	return Vec2f{X: x, Y: y}
}

// WorldToLocal maps a world point into this object's local space.
func (g *GameObject) WorldToLocal(p Vec2f) Vec2f {
	x, y := transformPoint(invertAffine(g.WorldMatrix()), p.X, p.Y)
	return Vec2f{X: x, Y: y}
}

// --- Disposal ---

// Dispose removes this object from its parent, disposes components that
// implement Disposer, and recursively disposes all descendants.
func (g *GameObject) Dispose() {
	if g.disposed {
		return
	}
	g.RemoveFromParent()
	g.dispose()
}

func (g *GameObject) dispose() {
	g.disposed = true
	for _, c := range g.components {
		if d, ok := c.(Disposer); ok {
			d.Dispose()
		}
	}
	g.components = nil
	for _, child := range g.children {
		child.parent = nil
		child.dispose()
	}
	g.children = nil
	g.parent = nil
}

// IsDisposed returns true if this object has been disposed.
func (g *GameObject) IsDisposed() bool { return g.disposed }

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of g (or g itself).
func isAncestor(candidate, g *GameObject) bool {
	for p := g; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from g.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (g *GameObject) removeChildByPtr(child *GameObject) {
	for i, c := range g.children {
		if c == child {
			copy(g.children[i:], g.children[i+1:])
			g.children[len(g.children)-1] = nil
			g.children = g.children[:len(g.children)-1]
			return
		}
	}
}
