package ripper

import (
	"testing"

	"github.com/katalvlaran/ripper/antecedent"
	"github.com/katalvlaran/ripper/attribute"
	"github.com/katalvlaran/ripper/dataset"
	"github.com/katalvlaran/ripper/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reviseSchema builds class/a/b, all discrete two-value attributes.
func reviseSchema(t *testing.T) []attribute.Attribute {
	t.Helper()
	class, err := attribute.NewDiscrete("class", []string{"no", "yes"})
	require.NoError(t, err)
	a, err := attribute.NewDiscrete("a", []string{"lo", "hi"})
	require.NoError(t, err)
	b, err := attribute.NewDiscrete("b", []string{"x", "y"})
	require.NoError(t, err)
	return []attribute.Attribute{class, a, b}
}

// TestReviseVariantGrowsOnlyWithinOriginalCoverage pins down that
// reviseVariant grows the cloned rule on original.CoveredBy(growData),
// never on the unfiltered growData. original here covers exactly one row
// (a==hi), too few to clear minNo for any further split; the rest of
// growData is a separate a==lo group where b perfectly predicts class with
// plenty of weight to clear minNo. If growth ran on the unfiltered pool,
// that b split would be picked up and the revised rule would grow past
// original's single antecedent; grown correctly, it must not. The prune set
// is chosen so that an added b==x antecedent would raise the worth rate and
// survive pruning, while a==hi alone still beats the default rate.
func TestReviseVariantGrowsOnlyWithinOriginalCoverage(t *testing.T) {
	schema := reviseSchema(t)
	d, err := dataset.New(schema)
	require.NoError(t, err)

	require.NoError(t, d.PushInstance([]float64{1, 1, 0})) // a=hi, b=x, class=yes: the only row original covers

	for i := 0; i < 9; i++ {
		require.NoError(t, d.PushInstance([]float64{1, 0, 0})) // a=lo, b=x, class=yes
	}
	for i := 0; i < 9; i++ {
		require.NoError(t, d.PushInstance([]float64{0, 0, 1})) // a=lo, b=y, class=no
	}

	original := rule.New(1)
	aHi, err := antecedent.NewDiscrete(schema, 1)
	require.NoError(t, err)
	aHi.Target = 1
	original.Antecedents = append(original.Antecedents, *aHi)

	p, err := dataset.New(schema)
	require.NoError(t, err)
	require.NoError(t, p.PushInstance([]float64{1, 1, 0})) // a=hi, b=x, class=yes
	require.NoError(t, p.PushInstance([]float64{0, 1, 1})) // a=hi, b=y, class=no
	require.NoError(t, p.PushInstance([]float64{0, 0, 1})) // a=lo, b=y, class=no
	require.NoError(t, p.PushInstance([]float64{0, 0, 1})) // a=lo, b=y, class=no

	l := New()
	revised := l.reviseVariant(original, d, p)

	assert.Equal(t, 1, original.Size(), "original must be untouched by reviseVariant")
	assert.Equal(t, original.Size(), revised.Size(),
		"growth must be confined to original's own coverage, not the wider grow pool")
}
