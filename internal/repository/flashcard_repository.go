package repository

import (
	"context"

	"github.com/vytor/flashcards/internal/models"
)

// FlashcardRepository handles flashcard data access. Implementations keep cards
// in insertion order and never hold two cards with the same question and answer.
type FlashcardRepository interface {
	// Insert appends the card and returns it with its assigned ID.
	Insert(ctx context.Context, flashcard models.Flashcard) (models.Flashcard, error)
	Exists(ctx context.Context, question, answer string) (bool, error)
	// List returns every card in storage order.
	List(ctx context.Context) ([]models.Flashcard, error)
	Count(ctx context.Context) (int, error)
	IncrementIncorrect(ctx context.Context, id int64) error
	// DeleteAt removes the card at the 0-based position and returns it.
	DeleteAt(ctx context.Context, position int) (models.Flashcard, error)
}
