// Package navstack holds the navigation history of nested views.
package navstack

// View is the closed set of screens the program can show.
type View int

const (
	Containers View = iota
	Networks
	ContainerDetail
	NetworkDetail
	Logs
)

func (v View) String() string {
	switch v {
	case Containers:
		return "containers"
	case Networks:
		return "networks"
	case ContainerDetail:
		return "container detail"
	case NetworkDetail:
		return "network detail"
	case Logs:
		return "logs"
	}
	return "unknown"
}

// Stack is a non-empty stack of views. The zero value is not valid; use New.
type Stack struct {
	views []View
}

func New(root View) Stack {
	return Stack{views: []View{root}}
}

func (s *Stack) Current() View {
	return s.views[len(s.views)-1]
}

func (s *Stack) Push(v View) {
	s.views = append(s.views, v)
}

// Pop removes the current view and reports whether anything was popped.
// Popping the root is a no-op; the caller decides what "no further back" means.
func (s *Stack) Pop() bool {
	if len(s.views) == 1 {
		return false
	}
	s.views = s.views[:len(s.views)-1]
	return true
}

// Replace swaps the current view in place. Used for the container/network
// list toggle, which is a sibling swap rather than a push.
func (s *Stack) Replace(v View) {
	s.views[len(s.views)-1] = v
}

func (s *Stack) Depth() int {
	return len(s.views)
}
