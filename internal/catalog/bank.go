package catalog

import (
	"math/rand"
	"sync"
	"time"

	"judgesim/internal/model"
)

// Bank serves the static question and award catalogs. The catalogs are
// compiled in and loaded once; selection is the only stateful operation.
type Bank struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewBank creates a question bank with a time-seeded shuffle source
func NewBank() *Bank {
	return newBank(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newBank(rng *rand.Rand) *Bank {
	return &Bank{rng: rng}
}

// Questions returns the full catalog
func (b *Bank) Questions() []model.Question {
	out := make([]model.Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionsByAward filters the catalog to questions tagged for the award
func (b *Bank) QuestionsByAward(awardID string) []model.Question {
	var out []model.Question
	for _, q := range questions {
		if q.ForAward(awardID) {
			out = append(out, q)
		}
	}
	return out
}

// SelectForSession returns a random subset of at most count questions tagged
// for the award, without replacement. An award matching no questions yields
// an empty slice; the caller handles the degenerate zero-question session.
func (b *Bank) SelectForSession(awardID string, count int) []model.Question {
	relevant := b.QuestionsByAward(awardID)
	if len(relevant) == 0 || count <= 0 {
		return nil
	}

	b.mu.Lock()
	b.rng.Shuffle(len(relevant), func(i, j int) {
		relevant[i], relevant[j] = relevant[j], relevant[i]
	})
	b.mu.Unlock()

	if count > len(relevant) {
		count = len(relevant)
	}
	return relevant[:count]
}

// Awards returns the full award catalog
func (b *Bank) Awards() []model.Award {
	out := make([]model.Award, len(awards))
	copy(out, awards)
	return out
}

// AwardByID looks up one award; nil if unknown
func (b *Bank) AwardByID(id string) *model.Award {
	for i := range awards {
		if awards[i].ID == id {
			a := awards[i]
			return &a
		}
	}
	return nil
}
