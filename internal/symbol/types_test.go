package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModel_OrderAndLookup(t *testing.T) {
	model := NewModel()

	barker := &TypeSymbol{Name: "Barker", Kind: KindInterface}
	animal := &TypeSymbol{Name: "Animal", Kind: KindClass}
	mood := &TypeSymbol{Name: "Mood", Kind: KindEnum}
	dog := &TypeSymbol{Name: "Dog", Kind: KindClass}

	model.Add(barker)
	model.Add(animal)
	model.Add(mood)
	model.Add(dog)

	assert.Equal(t, 4, model.Len())
	assert.Same(t, animal, model.Lookup("Animal"))
	assert.Nil(t, model.Lookup("Cat"))

	// Partition helpers preserve insertion order.
	assert.Equal(t, []*TypeSymbol{barker}, model.Interfaces())
	assert.Equal(t, []*TypeSymbol{animal, dog}, model.Classes())
	assert.Equal(t, []*TypeSymbol{mood}, model.Enums())
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "interface", KindInterface.String())
	assert.Equal(t, "class", KindClass.String())
	assert.Equal(t, "enum", KindEnum.String())
	assert.Equal(t, "unknown", TypeKind(42).String())

	assert.Equal(t, "property", MemberProperty.String())
	assert.Equal(t, "method", MemberMethod.String())

	assert.Equal(t, "public", VisPublic.String())
	assert.Equal(t, "protected internal", VisProtectedInternal.String())
	assert.Equal(t, "unknown", Visibility(42).String())

	assert.Equal(t, "user", OriginUser.String())
	assert.Equal(t, "framework", OriginFramework.String())
}
