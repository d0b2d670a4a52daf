// Package aviary is the birdhouse side of the sample zoo. It deliberately
// re-declares Keeper so analyzer tests can observe the name-collision
// warning.
package aviary

// Bird is a feathered resident.
type Bird struct {
	Wingspan int
}

// Keeper also exists in package zoo; the diagram merges same-named types.
type Keeper struct {
	Station string
}

// Flock groups birds of one kind.
type Flock[T any] struct {
	members []T
}

// Size returns the number of birds in the flock.
func (f *Flock[T]) Size() int {
	return len(f.members)
}
