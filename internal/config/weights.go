package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/othello-go/internal/errors"
	"github.com/lgbarn/othello-go/internal/eval"
	"github.com/lgbarn/othello-go/internal/othello"
)

// weightsFile is the on-disk form of eval.Weights. Missing sections keep
// their default values.
type weightsFile struct {
	Table  []int        `json:"table"`
	Phases []eval.Phase `json:"phases"`
}

// LoadWeights reads an evaluation weight set from a JSON file.
func LoadWeights(path string) (eval.Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return eval.Weights{}, err
	}
	defer f.Close()

	w, err := ReadWeights(f)
	if err != nil {
		return eval.Weights{}, errors.Wrap(err, path)
	}
	return w, nil
}

// ReadWeights decodes a weight set from r and validates it.
func ReadWeights(r io.Reader) (eval.Weights, error) {
	var doc weightsFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return eval.Weights{}, fmt.Errorf("%v: %w", err, errors.ErrInvalidWeights)
	}

	w := eval.DefaultWeights()
	if doc.Table != nil {
		if len(doc.Table) != othello.NumCells {
			return eval.Weights{}, fmt.Errorf("table has %d cells, want %d: %w",
				len(doc.Table), othello.NumCells, errors.ErrInvalidWeights)
		}
		copy(w.Table[:], doc.Table)
	}
	if doc.Phases != nil {
		w.Phases = doc.Phases
	}

	if err := w.Validate(); err != nil {
		return eval.Weights{}, err
	}
	return w, nil
}
