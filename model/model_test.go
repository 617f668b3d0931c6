package model_test

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/katalvlaran/ripper/antecedent"
	"github.com/katalvlaran/ripper/attribute"
	"github.com/katalvlaran/ripper/dataset"
	"github.com/katalvlaran/ripper/model"
	"github.com/katalvlaran/ripper/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playSchema(t *testing.T) []attribute.Attribute {
	t.Helper()
	class, err := attribute.NewDiscrete("play", []string{"no", "yes"})
	require.NoError(t, err)
	outlook, err := attribute.NewDiscrete("outlook", []string{"sunny", "rain"})
	require.NoError(t, err)
	return []attribute.Attribute{class, outlook}
}

func buildModel(t *testing.T, schema []attribute.Attribute) *model.Model {
	t.Helper()
	sunny, err := antecedent.NewDiscrete(schema, 1)
	require.NoError(t, err)
	sunny.Target = 0

	noRule := rule.New(0)
	noRule.Antecedents = append(noRule.Antecedents, *sunny)

	defaultRule := rule.New(1)

	return model.New(schema, []*rule.Rule{noRule, defaultRule})
}

func buildData(t *testing.T, schema []attribute.Attribute, rows [][]float64) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New(schema)
	require.NoError(t, err)
	for _, r := range rows {
		require.NoError(t, d.PushInstance(r))
	}
	return d
}

func TestPredict(t *testing.T) {
	schema := playSchema(t)
	m := buildModel(t, schema)
	d := buildData(t, schema, [][]float64{
		{1, 0}, // sunny -> predicted "no" (0)
		{1, 1}, // rain -> falls through to default "yes" (1)
	})

	preds, err := m.Predict(d)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, preds)
}

func TestPredictReordersMismatchedSchema(t *testing.T) {
	schema := playSchema(t)
	m := buildModel(t, schema)

	flipped := []attribute.Attribute{schema[1], schema[0]} // outlook, play
	d, err := dataset.New(flipped)
	require.NoError(t, err)
	require.NoError(t, d.PushInstance([]float64{0, 1})) // outlook=sunny, play=yes

	preds, err := m.Predict(d)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, preds, "row should be reordered to (play=1,outlook=0) then matched by the sunny rule")
}

func TestTestBinaryClass(t *testing.T) {
	schema := playSchema(t)
	m := buildModel(t, schema)
	d := buildData(t, schema, [][]float64{
		{0, 0}, // actual no, sunny -> predicted no: correct
		{1, 1}, // actual yes, rain -> predicted yes: correct
		{0, 1}, // actual no, rain -> predicted yes: wrong
	})

	measures, err := m.Test(d)
	require.NoError(t, err)
	require.Len(t, measures, 1)

	mm := measures[0]
	assert.Equal(t, 1.0, mm.Positives)
	assert.Equal(t, 2.0, mm.Negatives)
	assert.Equal(t, 1.0, mm.TP)
	assert.Equal(t, 1.0, mm.TN)
	assert.Equal(t, 1.0, mm.FP)
	assert.Equal(t, 0.0, mm.FN)
	assert.InDelta(t, 0.667, mm.Accuracy, 0.001)
	assert.Equal(t, 0.5, mm.PPV)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	schema := playSchema(t)
	m := buildModel(t, schema)

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))

	loaded, err := model.Load(&buf)
	require.NoError(t, err)

	d := buildData(t, schema, [][]float64{{1, 0}, {1, 1}})
	want, err := m.Predict(d)
	require.NoError(t, err)
	got, err := loaded.Predict(d)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	_, err := model.Load(bytes.NewReader([]byte("not a gob stream")))
	require.Error(t, err)

	// A well-formed gob stream whose Magic field is not this package's tag.
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(struct{ Magic string }{Magic: "not-a-ripper-model"}))
	_, err = model.Load(&buf)
	require.ErrorIs(t, err, model.ErrBadMagic)
}
