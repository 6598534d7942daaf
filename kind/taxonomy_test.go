package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomy(t *testing.T) {
	t.Parallel()

	t.Run("subsumption follows declared generalizations", func(t *testing.T) {
		taxonomy := NewTaxonomy()
		numeric := taxonomy.MustDeclare("Numeric")
		integer := taxonomy.MustDeclare("Integer", numeric)
		fixnum := taxonomy.MustDeclare("Fixnum", integer)
		float := taxonomy.MustDeclare("Float", numeric)

		assert.True(t, numeric.Subsumes(numeric))
		assert.True(t, numeric.Subsumes(integer))
		assert.True(t, numeric.Subsumes(fixnum))
		assert.True(t, integer.Subsumes(fixnum))
		assert.True(t, numeric.Subsumes(float))

		assert.False(t, integer.Subsumes(numeric))
		assert.False(t, integer.Subsumes(float))
		assert.False(t, fixnum.Subsumes(integer))
		assert.False(t, numeric.Subsumes(Of[int]()))

		assert.Equal(t, []*NominalKind{numeric}, taxonomy.Generalizations(integer))
		assert.Equal(t, []*NominalKind{integer, float}, taxonomy.Specializations(numeric))
		assert.Equal(t, []*NominalKind{numeric, integer, fixnum, float}, taxonomy.Kinds())
	})

	t.Run("kinds of distinct taxonomies are unrelated", func(t *testing.T) {
		a := NewTaxonomy().MustDeclare("Symbol")
		b := NewTaxonomy().MustDeclare("Symbol")

		assert.False(t, a.Subsumes(b))
		assert.False(t, b.Subsumes(a))

		_, err := NewTaxonomy().Declare("Sub", a)
		assert.ErrorIs(t, err, ErrForeignNominalKind)
	})

	t.Run("duplicate & empty names", func(t *testing.T) {
		taxonomy := NewTaxonomy()
		taxonomy.MustDeclare("Symbol")

		_, err := taxonomy.Declare("Symbol")
		assert.ErrorIs(t, err, ErrKindAlreadyDeclared)

		_, err = taxonomy.Declare("")
		assert.ErrorIs(t, err, ErrEmptyNominalKindName)

		k, ok := taxonomy.Lookup("Symbol")
		require.True(t, ok)
		assert.Equal(t, "Symbol", k.Name())
	})

	t.Run("AddGeneralization", func(t *testing.T) {
		taxonomy := NewTaxonomy()
		comparable := taxonomy.MustDeclare("Comparable")
		str := taxonomy.MustDeclare("String")

		assert.False(t, comparable.Subsumes(str))
		require.NoError(t, taxonomy.AddGeneralization(str, comparable))
		assert.True(t, comparable.Subsumes(str))

		//adding the same relation twice is a no-op.
		require.NoError(t, taxonomy.AddGeneralization(str, comparable))
	})

	t.Run("AddGeneralization rejects cycles and leaves the taxonomy unchanged", func(t *testing.T) {
		taxonomy := NewTaxonomy()
		a := taxonomy.MustDeclare("A")
		b := taxonomy.MustDeclare("B", a)
		c := taxonomy.MustDeclare("C", b)

		err := taxonomy.AddGeneralization(a, c)
		assert.ErrorIs(t, err, ErrSpecializationCycle)
		assert.False(t, c.Subsumes(a))
		assert.True(t, a.Subsumes(c))

		err = taxonomy.AddGeneralization(a, a)
		assert.ErrorIs(t, err, ErrSpecializationCycle)
	})
}

func TestUniverse(t *testing.T) {
	t.Parallel()

	u := NewUniverse()

	kinds, err := u.Resolve("string", "number", "object", "array", "any")
	require.NoError(t, err)
	assert.Equal(t, []Kind{Of[string](), Of[float64](), Of[map[string]any](), Of[[]any](), Any}, kinds)

	_, err = u.Resolve("string", "symbol")
	assert.ErrorIs(t, err, ErrUnknownKindName)

	require.NoError(t, u.Define("symbol", Of[symbol]()))
	assert.ErrorIs(t, u.Define("symbol", Of[string]()), ErrKindNameTaken)
	assert.ErrorIs(t, u.Define("other", "not a kind"), ErrInvalidKind)

	k, ok := u.Lookup("symbol")
	require.True(t, ok)
	assert.Equal(t, Kind(Of[symbol]()), k)

	taxonomy := NewTaxonomy()
	taxonomy.MustDeclare("Numeric")
	require.NoError(t, u.DefineTaxonomy(taxonomy))

	_, ok = u.Lookup("Numeric")
	assert.True(t, ok)
	assert.Contains(t, u.Names(), "Numeric")
}
