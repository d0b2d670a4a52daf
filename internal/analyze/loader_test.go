package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classdiag/internal/diagnostic"
	"classdiag/internal/symbol"
)

// findDiagnostic returns the first diagnostic with the given code, or nil.
func findDiagnostic(diags []diagnostic.Diagnostic, code string) *diagnostic.Diagnostic {
	for i := range diags {
		if diags[i].Code == code {
			return &diags[i]
		}
	}

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	model, err := analyzer.LoadPackages("classdiag/zoo")
	require.NoError(t, err)
	require.NotNil(t, model)

	// Animal, Barker, Dog, Keeper, Mood
	assert.Equal(t, 5, model.Len())

	assert.Len(t, model.Interfaces(), 1)
	assert.Len(t, model.Classes(), 3)
	assert.Len(t, model.Enums(), 1)
}

func TestAnalyzer_ClassSymbols(t *testing.T) {
	analyzer := NewAnalyzer()
	model, err := analyzer.LoadPackages("classdiag/zoo")
	require.NoError(t, err)

	dog := model.Lookup("Dog")
	require.NotNil(t, dog)
	assert.Equal(t, symbol.KindClass, dog.Kind)
	assert.Equal(t, "classdiag/zoo", dog.Namespace)
	assert.Equal(t, symbol.OriginUser, dog.Origin)

	// The embedded Animal resolves to the same symbol the model holds.
	animal := model.Lookup("Animal")
	require.NotNil(t, animal)
	assert.Same(t, animal, dog.Base)

	// Dog satisfies the user-defined Barker interface.
	barker := model.Lookup("Barker")
	require.NotNil(t, barker)
	assert.Contains(t, dog.Implements, barker)
}

func TestAnalyzer_Members(t *testing.T) {
	analyzer := NewAnalyzer()
	model, err := analyzer.LoadPackages("classdiag/zoo")
	require.NoError(t, err)

	dog := model.Lookup("Dog")
	require.NotNil(t, dog)

	members := make(map[string]symbol.MemberSymbol)
	for _, m := range dog.Members {
		members[m.Name] = m
	}

	// The embedded field is modeled but implicit.
	embedded, ok := members["Animal"]
	require.True(t, ok)
	assert.Equal(t, symbol.MemberProperty, embedded.Kind)
	assert.True(t, embedded.Implicit)

	breed, ok := members["Breed"]
	require.True(t, ok)
	assert.Equal(t, symbol.MemberProperty, breed.Kind)
	assert.Equal(t, "string", breed.TypeName)
	assert.Equal(t, symbol.VisPublic, breed.Visibility)
	assert.False(t, breed.Implicit)

	bark, ok := members["Bark"]
	require.True(t, ok)
	assert.Equal(t, symbol.MemberMethod, bark.Kind)
	assert.Equal(t, "string", bark.TypeName)
	assert.False(t, bark.Implicit)
	assert.False(t, bark.Accessor)

	// Methods promoted from the embedded Animal are implicit.
	promoted, ok := members["SetName"]
	require.True(t, ok)
	assert.True(t, promoted.Implicit)
}

func TestAnalyzer_AccessorDetection(t *testing.T) {
	analyzer := NewAnalyzer()
	model, err := analyzer.LoadPackages("classdiag/zoo")
	require.NoError(t, err)

	animal := model.Lookup("Animal")
	require.NotNil(t, animal)

	members := make(map[string]symbol.MemberSymbol)
	for _, m := range animal.Members {
		members[m.Name] = m
	}

	name, ok := members["name"]
	require.True(t, ok)
	assert.Equal(t, symbol.MemberProperty, name.Kind)
	assert.Equal(t, symbol.VisPrivate, name.Visibility)

	getter, ok := members["Name"]
	require.True(t, ok)
	assert.True(t, getter.Accessor)

	setter, ok := members["SetName"]
	require.True(t, ok)
	assert.True(t, setter.Accessor)
	assert.Len(t, setter.Params, 1)
	assert.Equal(t, "string", setter.Params[0].TypeName)
}

func TestAnalyzer_EnumDetection(t *testing.T) {
	analyzer := NewAnalyzer()
	model, err := analyzer.LoadPackages("classdiag/zoo")
	require.NoError(t, err)

	mood := model.Lookup("Mood")
	require.NotNil(t, mood)
	assert.Equal(t, symbol.KindEnum, mood.Kind)
}

func TestAnalyzer_NameCollisionWarning(t *testing.T) {
	analyzer := NewAnalyzer()
	model, err := analyzer.LoadPackages("classdiag/zoo", "classdiag/zoo/aviary")
	require.NoError(t, err)

	// Both packages declare Keeper; the model keeps both entries and the
	// analyzer flags the merge.
	assert.Len(t, model.Classes(), 6)

	warning := findDiagnostic(analyzer.Diagnostics().Warnings, "name-collision")
	require.NotNil(t, warning)
	assert.Equal(t, "Keeper", warning.Symbol)
}

func TestAnalyzer_GenericTypeInfo(t *testing.T) {
	analyzer := NewAnalyzer()
	model, err := analyzer.LoadPackages("classdiag/zoo/aviary")
	require.NoError(t, err)

	// Generic classes are still modeled with their members.
	flock := model.Lookup("Flock")
	require.NotNil(t, flock)
	assert.Equal(t, symbol.KindClass, flock.Kind)

	// Interface satisfaction is skipped for them, with a note.
	assert.Empty(t, flock.Implements)

	info := findDiagnostic(analyzer.Diagnostics().Infos, "generic-type")
	require.NotNil(t, info)
	assert.Equal(t, "Flock", info.Symbol)
}

func TestAnalyzer_LoadFailure(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages("classdiag/no/such/package")
	assert.Error(t, err)
}

func TestAnalyzer_Deterministic(t *testing.T) {
	first, err := NewAnalyzer().LoadPackages("classdiag/zoo")
	require.NoError(t, err)

	second, err := NewAnalyzer().LoadPackages("classdiag/zoo")
	require.NoError(t, err)

	require.Equal(t, first.Len(), second.Len())
	for i, sym := range first.Types() {
		assert.Equal(t, sym.Name, second.Types()[i].Name)
		assert.Equal(t, sym.Kind, second.Types()[i].Kind)
	}
}
