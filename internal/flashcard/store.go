// Package flashcard holds the flashcard collection and its add, review and
// delete operations. Storage is delegated to a repository.FlashcardRepository;
// user interaction during a review goes through a Session.
package flashcard

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
	"github.com/vytor/flashcards/internal/repository"
)

// ShuffleFunc permutes n elements through swap, with the contract of rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// Session is the interactive side of a review. Ask shows a question and returns
// the raw line typed in reply; Report is called with the outcome before the next
// question is asked.
type Session interface {
	Ask(ctx context.Context, question string) (string, error)
	Report(ctx context.Context, outcome models.Outcome)
}

// Store owns the ordered, duplicate-free flashcard collection.
type Store struct {
	repo    repository.FlashcardRepository
	shuffle ShuffleFunc
}

// Option configures a Store.
type Option func(*Store)

// WithShuffle replaces the permutation source used for shuffled reviews.
func WithShuffle(fn ShuffleFunc) Option {
	return func(s *Store) {
		s.shuffle = fn
	}
}

// NewStore creates a Store on top of repo.
func NewStore(repo repository.FlashcardRepository, opts ...Option) *Store {
	s := &Store{
		repo:    repo,
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new card with a zero incorrect counter. An identical
// question/answer pair already in the store yields a DUPLICATE error and
// leaves the store untouched. Empty strings are accepted as-is.
func (s *Store) Add(ctx context.Context, question, answer string) (models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_store")

	exists, err := s.repo.Exists(ctx, question, answer)
	if err != nil {
		log.Error("failed to check for duplicate: %v", err)
		return models.Flashcard{}, errors.NewInternalError(err)
	}
	if exists {
		log.Debug("duplicate flashcard rejected")
		return models.Flashcard{}, errors.NewDuplicateError("flashcard")
	}

	card, err := s.repo.Insert(ctx, models.Flashcard{Question: question, Answer: answer})
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeDuplicate) {
			return models.Flashcard{}, err
		}
		log.Error("failed to insert flashcard: %v", err)
		return models.Flashcard{}, errors.NewInternalError(err)
	}

	log.Info("flashcard added: id=%d", card.ID)
	return card, nil
}

// List returns the cards in storage order, which is the order used for
// delete numbering.
func (s *Store) List(ctx context.Context) ([]models.Flashcard, error) {
	cards, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

// Review asks every card once through session. With shuffle set the cards are
// presented in a uniformly random order; storage order is never changed, so
// delete numbering stays the same after a review. Each wrong answer increments
// that card's incorrect counter by one. An empty store yields an EMPTY error
// without asking anything.
func (s *Store) Review(ctx context.Context, session Session, shuffle bool) (models.ReviewSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_store")

	cards, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list flashcards: %v", err)
		return models.ReviewSummary{}, errors.NewInternalError(err)
	}
	if len(cards) == 0 {
		return models.ReviewSummary{}, errors.NewEmptyError("review")
	}

	order := s.presentationOrder(len(cards), shuffle)
	log.Debug("starting review: cards=%d, shuffle=%t", len(cards), shuffle)

	summary := models.ReviewSummary{Outcomes: make([]models.Outcome, 0, len(cards))}
	for _, idx := range order {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		card := cards[idx]
		given, err := session.Ask(ctx, card.Question)
		if err != nil {
			log.Warn("review aborted after %d of %d cards: %v", summary.Total(), len(cards), err)
			return summary, err
		}

		outcome := models.Outcome{
			CardID:   card.ID,
			Question: card.Question,
			Expected: card.Answer,
			Given:    given,
			Correct:  given == card.Answer,
		}
		if outcome.Correct {
			summary.Correct++
		} else {
			if err := s.repo.IncrementIncorrect(ctx, card.ID); err != nil {
				log.Error("failed to record incorrect answer: id=%d: %v", card.ID, err)
				return summary, errors.NewInternalError(err)
			}
			summary.Incorrect++
		}
		summary.Outcomes = append(summary.Outcomes, outcome)
		session.Report(ctx, outcome)
	}

	log.Info("review finished: correct=%d, incorrect=%d", summary.Correct, summary.Incorrect)
	return summary, nil
}

func (s *Store) presentationOrder(n int, shuffle bool) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if shuffle {
		s.shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order
}

// Delete removes the card shown at the 1-based displayIndex; later cards move
// up one place. An empty store yields EMPTY, an index outside [1, size] yields
// VALIDATION_ERROR, and neither changes the store.
func (s *Store) Delete(ctx context.Context, displayIndex int) (models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_store")

	count, err := s.repo.Count(ctx)
	if err != nil {
		log.Error("failed to count flashcards: %v", err)
		return models.Flashcard{}, errors.NewInternalError(err)
	}
	if count == 0 {
		return models.Flashcard{}, errors.NewEmptyError("delete")
	}
	if displayIndex < 1 || displayIndex > count {
		log.Debug("delete index out of range: index=%d, size=%d", displayIndex, count)
		return models.Flashcard{}, errors.NewValidationError("index", fmt.Sprintf("must be between 1 and %d", count))
	}

	removed, err := s.repo.DeleteAt(ctx, displayIndex-1)
	if err != nil {
		log.Error("failed to delete flashcard at %d: %v", displayIndex, err)
		return models.Flashcard{}, errors.NewInternalError(err)
	}

	log.Info("flashcard deleted: id=%d", removed.ID)
	return removed, nil
}

// ParseIndex parses a typed menu choice or card number. Surrounding whitespace
// is ignored; anything else that is not a base-10 integer is a VALIDATION_ERROR.
func ParseIndex(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.NewValidationError("choice", fmt.Sprintf("%q is not a number", raw))
	}
	return n, nil
}
