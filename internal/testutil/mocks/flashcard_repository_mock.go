package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/flashcards/internal/models"
)

// MockFlashcardRepository is a mock implementation of repository.FlashcardRepository
type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) Insert(ctx context.Context, flashcard models.Flashcard) (models.Flashcard, error) {
	args := m.Called(ctx, flashcard)
	return args.Get(0).(models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) Exists(ctx context.Context, question, answer string) (bool, error) {
	args := m.Called(ctx, question, answer)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlashcardRepository) List(ctx context.Context) ([]models.Flashcard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockFlashcardRepository) IncrementIncorrect(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlashcardRepository) DeleteAt(ctx context.Context, position int) (models.Flashcard, error) {
	args := m.Called(ctx, position)
	return args.Get(0).(models.Flashcard), args.Error(1)
}
