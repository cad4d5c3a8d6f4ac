package bounce

import "errors"

// DefaultElementID is the identifier of the element the box is drawn as.
const DefaultElementID = "rectangle"

// ActiveClass is the class an element receives once the animation starts.
const ActiveClass = "active"

var (
	// ErrElementNotFound is returned when the document has no element with
	// the configured ID.
	ErrElementNotFound = errors.New("element not found")

	// ErrViewportTooSmall is returned when a viewport dimension is not
	// positive.
	ErrViewportTooSmall = errors.New("viewport too small")

	// ErrAlreadyRunning is returned by Start once the loop is running.
	ErrAlreadyRunning = errors.New("simulation already running")
)

// Element is the visual element the box is presented as.
// All values are in pixels.
type Element interface {
	// SetSize sets the element's width and height.
	SetSize(width, height float64)
	// SetPosition sets the element's left and top offsets.
	SetPosition(left, top float64)
	// Activate reveals the element.
	Activate()
}

// Document looks up elements by identifier.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// ReadyState is the host's lifecycle state.
type ReadyState int

const (
	ReadyLoading ReadyState = iota
	ReadyInteractive
	ReadyComplete
)

// String returns a human-readable name for the ready state.
func (r ReadyState) String() string {
	switch r {
	case ReadyLoading:
		return "loading"
	case ReadyInteractive:
		return "interactive"
	case ReadyComplete:
		return "complete"
	default:
		return "unknown"
	}
}
