// Package memory keeps flashcards in a plain slice for the lifetime of the process.
package memory

import (
	"context"
	"sync"

	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
	"github.com/vytor/flashcards/internal/repository"
)

type flashcardRepository struct {
	mu     sync.Mutex
	cards  []models.Flashcard
	nextID int64
}

// NewFlashcardRepository creates an empty slice-backed FlashcardRepository.
func NewFlashcardRepository() repository.FlashcardRepository {
	return &flashcardRepository{nextID: 1}
}

func (r *flashcardRepository) Insert(ctx context.Context, c models.Flashcard) (models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.cards {
		if existing.Matches(c.Question, c.Answer) {
			log.Debug("rejecting duplicate flashcard: id=%d", existing.ID)
			return models.Flashcard{}, errors.NewDuplicateError("flashcard")
		}
	}

	c.ID = r.nextID
	r.nextID++
	r.cards = append(r.cards, c)
	log.Debug("flashcard inserted: id=%d, size=%d", c.ID, len(r.cards))
	return c, nil
}

func (r *flashcardRepository) Exists(ctx context.Context, question, answer string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.cards {
		if c.Matches(question, answer) {
			return true, nil
		}
	}
	return false, nil
}

func (r *flashcardRepository) List(ctx context.Context) ([]models.Flashcard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Flashcard, len(r.cards))
	copy(out, r.cards)
	return out, nil
}

func (r *flashcardRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cards), nil
}

func (r *flashcardRepository) IncrementIncorrect(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cards {
		if r.cards[i].ID == id {
			r.cards[i].TimesIncorrect++
			return nil
		}
	}
	return errors.NewNotFoundError("flashcard", id)
}

func (r *flashcardRepository) DeleteAt(ctx context.Context, position int) (models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	r.mu.Lock()
	defer r.mu.Unlock()

	if position < 0 || position >= len(r.cards) {
		return models.Flashcard{}, errors.NewNotFoundError("flashcard at position", position)
	}

	removed := r.cards[position]
	r.cards = append(r.cards[:position], r.cards[position+1:]...)
	log.Debug("flashcard deleted: id=%d, size=%d", removed.ID, len(r.cards))
	return removed, nil
}
