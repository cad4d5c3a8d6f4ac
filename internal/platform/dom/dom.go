// Package dom is the presentation layer shared by the terminal hosts: a
// page of identified elements positioned in pixels and rasterized into a
// core.Screen, one terminal cell per CellWidth x CellHeight pixels.
package dom

import (
	"sort"
	"strings"

	"github.com/vovakirdan/bouncebox/internal/bounce"
	"github.com/vovakirdan/bouncebox/internal/core"
)

// Element is a rectangle on the page. Inactive elements are not drawn.
type Element struct {
	id       string
	position core.Measurements
	size     core.Measurements
	classes  []string
	fill     core.Cell
}

// ID returns the element identifier.
func (e *Element) ID() string { return e.id }

// SetSize sets width and height in pixels.
func (e *Element) SetSize(width, height float64) {
	e.size = core.M(width, height)
}

// SetPosition sets the left and top offsets in pixels.
func (e *Element) SetPosition(left, top float64) {
	e.position = core.M(left, top)
}

// Activate marks the element active, which reveals it.
func (e *Element) Activate() {
	e.AddClass(bounce.ActiveClass)
}

// AddClass adds a class if not already present.
func (e *Element) AddClass(class string) {
	if !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// ClassName returns the classes joined by spaces.
func (e *Element) ClassName() string {
	return strings.Join(e.classes, " ")
}

// Position returns the left and top offsets in pixels.
func (e *Element) Position() core.Measurements { return e.position }

// Size returns width and height in pixels.
func (e *Element) Size() core.Measurements { return e.size }

// Page holds the elements a host draws.
type Page struct {
	cellW, cellH int
	elements     map[string]*Element
}

// NewPage creates an empty page. cellW and cellH are the pixel size of one
// terminal cell.
func NewPage(cellW, cellH int) *Page {
	return &Page{
		cellW:    core.Max(cellW, 1),
		cellH:    core.Max(cellH, 1),
		elements: make(map[string]*Element),
	}
}

// Add creates an element drawn with fill and returns it. Adding an existing
// ID replaces its fill and returns the existing element.
func (p *Page) Add(id string, fill core.Cell) *Element {
	if el, ok := p.elements[id]; ok {
		el.fill = fill
		return el
	}
	el := &Element{id: id, fill: fill}
	p.elements[id] = el
	return el
}

// ElementByID implements bounce.Document.
func (p *Page) ElementByID(id string) (bounce.Element, bool) {
	el, ok := p.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

// Element returns the concrete element for id, or nil.
func (p *Page) Element(id string) *Element {
	return p.elements[id]
}

// Viewport returns the pixel size of a cols x rows terminal area.
func (p *Page) Viewport(cols, rows int) core.Measurements {
	return core.Viewport(cols, rows, p.cellW, p.cellH)
}

// CellSize returns the pixel size of one cell.
func (p *Page) CellSize() (int, int) {
	return p.cellW, p.cellH
}

// Draw clears dst and rasterizes every active element into it, in ID order.
func (p *Page) Draw(dst *core.Screen) {
	dst.Clear()

	ids := make([]string, 0, len(p.elements))
	for id := range p.elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		el := p.elements[id]
		if !el.HasClass(bounce.ActiveClass) {
			continue
		}
		dst.FillRect(p.CellRect(el), el.fill)
	}
}

// CellRect returns the cells covered by el.
func (p *Page) CellRect(el *Element) core.Rect {
	return core.CellRect(el.position, el.size, p.cellW, p.cellH)
}
