package client

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jbrukh/bayesian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxbridge/taxbridge/dto"
)

func trainTestModel(t *testing.T) string {
	t.Helper()

	food := bayesian.Class("food")
	travel := bayesian.Class("travel")
	cl := bayesian.NewClassifierTfIdf(food, travel)

	for _, s := range []string{"swiggy order lunch", "zomato dinner delivery", "restaurant meal"} {
		cl.Learn(strings.Fields(s), food)
	}
	for _, s := range []string{"uber ride airport", "ola cab office", "irctc train ticket"} {
		cl.Learn(strings.Fields(s), travel)
	}
	cl.ConvertTermsFreqToTfIdf()

	path := filepath.Join(t.TempDir(), "classifier.gob")
	require.NoError(t, cl.WriteToFile(path))
	return path
}

func TestNewModelClient(t *testing.T) {
	m, err := NewModelClient(trainTestModel(t))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"food", "travel"}, m.Classes())
	assert.Equal(t, "food", m.Classify("swiggy order 48213"))
	assert.Equal(t, "travel", m.Classify("uber ride to airport"))
}

func TestNewModelClientMissingArtifact(t *testing.T) {
	_, err := NewModelClient(filepath.Join(t.TempDir(), "nope.gob"))
	assert.ErrorIs(t, err, dto.ErrModelUnavailable)
}
