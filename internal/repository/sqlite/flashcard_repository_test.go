package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/flashcards/internal/db"
	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/models"
	"github.com/vytor/flashcards/internal/repository"
	"github.com/vytor/flashcards/internal/repository/sqlite"
	"github.com/vytor/flashcards/internal/testutil"
)

type FlashcardRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.FlashcardRepository
}

func (s *FlashcardRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewFlashcardRepository(s.db.DB)
}

func (s *FlashcardRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *FlashcardRepositorySuite) insert(question, answer string) models.Flashcard {
	card, err := s.repo.Insert(context.Background(), models.Flashcard{Question: question, Answer: answer})
	s.Require().NoError(err)
	return card
}

func (s *FlashcardRepositorySuite) TestInsertAndList() {
	first := s.insert("1+1", "2")
	second := s.insert("3+3", "6")
	s.Assert().Greater(second.ID, first.ID)

	cards, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(cards, 2)
	s.Assert().Equal(models.Flashcard{ID: first.ID, Question: "1+1", Answer: "2"}, cards[0])
	s.Assert().Equal(models.Flashcard{ID: second.ID, Question: "3+3", Answer: "6"}, cards[1])
}

func (s *FlashcardRepositorySuite) TestListEmpty() {
	cards, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Assert().NotNil(cards)
	s.Assert().Empty(cards)
}

func (s *FlashcardRepositorySuite) TestInsertDuplicate() {
	s.insert("2+2", "4")

	_, err := s.repo.Insert(context.Background(), models.Flashcard{Question: "2+2", Answer: "4"})
	s.Assert().True(errors.HasCode(err, errors.ErrCodeDuplicate))

	count, err := s.repo.Count(context.Background())
	s.Require().NoError(err)
	s.Assert().Equal(1, count)
}

func (s *FlashcardRepositorySuite) TestEmptyStringsAreStored() {
	card := s.insert("", "")
	s.Assert().NotZero(card.ID)

	ok, err := s.repo.Exists(context.Background(), "", "")
	s.Require().NoError(err)
	s.Assert().True(ok)
}

func (s *FlashcardRepositorySuite) TestExists() {
	s.insert("Capital", "Paris")

	ok, err := s.repo.Exists(context.Background(), "Capital", "Paris")
	s.Require().NoError(err)
	s.Assert().True(ok)

	ok, err = s.repo.Exists(context.Background(), "Capital", " Paris")
	s.Require().NoError(err)
	s.Assert().False(ok)
}

func (s *FlashcardRepositorySuite) TestIncrementIncorrect() {
	card := s.insert("A", "B")

	s.Require().NoError(s.repo.IncrementIncorrect(context.Background(), card.ID))

	var times int
	err := s.db.GetContext(context.Background(), &times, `SELECT times_incorrect FROM flashcards WHERE id = ?`, card.ID)
	s.Require().NoError(err)
	s.Assert().Equal(1, times)

	err = s.repo.IncrementIncorrect(context.Background(), card.ID+100)
	s.Assert().True(errors.HasCode(err, errors.ErrCodeNotFound))
}

func (s *FlashcardRepositorySuite) TestDeleteAt() {
	s.insert("1+1", "2")
	s.insert("3+3", "6")

	removed, err := s.repo.DeleteAt(context.Background(), 0)
	s.Require().NoError(err)
	s.Assert().Equal("1+1", removed.Question)

	cards, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(cards, 1)
	s.Assert().Equal("3+3", cards[0].Question)
}

func (s *FlashcardRepositorySuite) TestDeleteAtOutOfRange() {
	s.insert("1+1", "2")

	for _, pos := range []int{-1, 1, 7} {
		_, err := s.repo.DeleteAt(context.Background(), pos)
		s.Assert().True(errors.HasCode(err, errors.ErrCodeNotFound), "position %d", pos)
	}

	count, err := s.repo.Count(context.Background())
	s.Require().NoError(err)
	s.Assert().Equal(1, count)
}

func (s *FlashcardRepositorySuite) TestReinsertAfterDeleteAppendsAtEnd() {
	s.insert("a", "1")
	s.insert("b", "2")
	_, err := s.repo.DeleteAt(context.Background(), 0)
	s.Require().NoError(err)

	s.insert("a", "1")

	cards, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(cards, 2)
	s.Assert().Equal("b", cards[0].Question)
	s.Assert().Equal("a", cards[1].Question)
}

func TestFlashcardRepositorySuite(t *testing.T) {
	suite.Run(t, new(FlashcardRepositorySuite))
}
