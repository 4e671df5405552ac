package client

import (
	"fmt"
	"strings"

	"github.com/jbrukh/bayesian"

	"github.com/taxbridge/taxbridge/dto"
)

// ModelClient wraps the persisted TF-IDF naive Bayes classifier. The
// artifact is loaded once per process; after loading the classifier is
// read-only and safe for concurrent use.
type ModelClient struct {
	cl *bayesian.Classifier
}

// NewModelClient loads the classifier artifact from modelPath. A missing or
// corrupt artifact yields ErrModelUnavailable; callers decide whether that
// is fatal for their context.
func NewModelClient(modelPath string) (*ModelClient, error) {
	cl, err := bayesian.NewClassifierFromFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", dto.ErrModelUnavailable, modelPath, err)
	}
	if len(cl.Classes) == 0 {
		return nil, fmt.Errorf("%w: artifact %s has no classes", dto.ErrModelUnavailable, modelPath)
	}
	return &ModelClient{cl: cl}, nil
}

// Classify returns the most likely expense category for a cleaned
// description.
func (m *ModelClient) Classify(cleanText string) string {
	_, inx, _ := m.cl.LogScores(strings.Fields(cleanText))
	return string(m.cl.Classes[inx])
}

// Classes returns the label set the artifact was trained on.
func (m *ModelClient) Classes() []string {
	out := make([]string, len(m.cl.Classes))
	for i, c := range m.cl.Classes {
		out[i] = string(c)
	}
	return out
}
