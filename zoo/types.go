// Package zoo is a small sample package exercised by the analyzer tests
// and handy for demoing the generator:
//
//	classdiag generate classdiag/zoo
package zoo

// Animal is the common base every creature embeds.
type Animal struct {
	name string
	Age  int
}

// Name returns the animal's display name.
func (a *Animal) Name() string {
	return a.name
}

// SetName updates the animal's display name.
func (a *Animal) SetName(name string) {
	a.name = name
}

// Barker is anything that can bark.
type Barker interface {
	Bark() string
}

// Dog is a domesticated barker.
type Dog struct {
	Animal
	Breed string
}

// Bark returns the dog's bark.
func (d *Dog) Bark() string {
	return "woof"
}

// Keeper is on staff but has nothing modeled yet.
type Keeper struct{}

// Mood is a coarse emotional state for an animal.
type Mood int

const (
	MoodCalm Mood = iota
	MoodHungry
	MoodFeisty
)
