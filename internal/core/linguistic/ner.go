package linguistic

import (
	"errors"
	"fmt"

	"github.com/jdkato/prose/v2"
)

var ErrRecognizer = errors.New("entity recognizer failed")

const personLabel = "PERSON"

// EntityRecognizer finds person names in free text. Implementations are
// shared between concurrent extractions and must not mutate state per call.
type EntityRecognizer interface {
	Persons(text string) ([]string, error)
}

// ProseRecognizer runs prose's averaged-perceptron NER. The model is loaded
// once at construction and only read afterwards.
type ProseRecognizer struct {
	model *prose.Model
}

// NewProseRecognizer loads a model from modelDir, or prose's built-in English
// model when modelDir is empty. Either way the model is decoded here and
// reused by every Persons call.
func NewProseRecognizer(modelDir string) (r *ProseRecognizer, err error) {
	source := modelDir
	if source == "" {
		source = "built-in model"
	}
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, fmt.Errorf("%w: loading %s: %v", ErrRecognizer, source, p)
		}
	}()

	if modelDir != "" {
		return &ProseRecognizer{model: prose.ModelFromDisk(modelDir)}, nil
	}

	// prose only exposes its embedded model through a document.
	doc, err := prose.NewDocument("", prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", ErrRecognizer, source, err)
	}
	if doc.Model == nil {
		return nil, fmt.Errorf("%w: %s unavailable", ErrRecognizer, source)
	}
	return &ProseRecognizer{model: doc.Model}, nil
}

func (r *ProseRecognizer) Persons(text string) (names []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			names, err = nil, fmt.Errorf("%w: %v", ErrRecognizer, p)
		}
	}()

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.UsingModel(r.model))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecognizer, err)
	}

	for _, ent := range doc.Entities() {
		if ent.Label == personLabel {
			names = append(names, ent.Text)
		}
	}
	return names, nil
}
