// Package catalog holds the static question catalog: an ordered,
// category-grouped list of assessment questions, read-only after load.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/readylabs/aiready-backend/internal/model"
)

// Catalog is an immutable ordered question list.
type Catalog struct {
	questions []model.Question
}

// New builds a catalog from the given questions, sorted by Order ascending.
// The input slice is copied; later mutation of it does not affect the
// catalog.
func New(questions []model.Question) *Catalog {
	qs := make([]model.Question, len(questions))
	copy(qs, questions)
	sort.SliceStable(qs, func(i, j int) bool {
		return qs[i].Order < qs[j].Order
	})
	return &Catalog{questions: qs}
}

// Default returns a catalog seeded with the built-in AI-readiness
// assessment questions.
func Default() *Catalog {
	return New(seedQuestions())
}

// LoadFile builds a catalog from a JSON file holding an array of questions.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var questions []model.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return New(questions), nil
}

// ListAll returns every question sorted by Order ascending.
func (c *Catalog) ListAll() []model.Question {
	out := make([]model.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// ListByCategory returns the questions in the given category, keeping the
// catalog order. An unknown category yields an empty slice, not an error.
func (c *Catalog) ListByCategory(category string) []model.Question {
	out := []model.Question{}
	for _, q := range c.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}
