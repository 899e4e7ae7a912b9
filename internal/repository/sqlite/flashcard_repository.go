package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
	"github.com/vytor/flashcards/internal/repository"
)

var flashcardColumns = []string{"id", "question", "answer", "times_incorrect"}

type flashcardRepository struct {
	db *sqlx.DB
}

// NewFlashcardRepository creates a new FlashcardRepository implementation
func NewFlashcardRepository(db *sqlx.DB) repository.FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) Insert(ctx context.Context, c models.Flashcard) (models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("inserting flashcard")

	query, args, err := sqlBuilder.
		Insert("flashcards").
		Columns("question", "answer", "times_incorrect").
		Values(c.Question, c.Answer, c.TimesIncorrect).
		ToSql()
	if err != nil {
		return models.Flashcard{}, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("rejecting duplicate flashcard")
			return models.Flashcard{}, errors.NewDuplicateError("flashcard")
		}
		log.Error("failed to insert flashcard: %v", err)
		return models.Flashcard{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get flashcard id: %v", err)
		return models.Flashcard{}, err
	}
	c.ID = id
	log.Debug("flashcard inserted: id=%d", id)
	return c, nil
}

func (r *flashcardRepository) Exists(ctx context.Context, question, answer string) (bool, error) {
	query, args, err := sqlBuilder.
		Select("COUNT(*)").
		From("flashcards").
		Where(squirrel.Eq{"question": question, "answer": answer}).
		ToSql()
	if err != nil {
		return false, err
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		logger.FromContext(ctx).WithPrefix("flashcard_repo").Error("failed to check flashcard: %v", err)
		return false, err
	}
	return n > 0, nil
}

func (r *flashcardRepository) List(ctx context.Context) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	query, args, err := sqlBuilder.
		Select(flashcardColumns...).
		From("flashcards").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	cards := []models.Flashcard{}
	if err := r.db.SelectContext(ctx, &cards, query, args...); err != nil {
		log.Error("failed to list flashcards: %v", err)
		return nil, err
	}
	log.Debug("listed %d flashcards", len(cards))
	return cards, nil
}

func (r *flashcardRepository) Count(ctx context.Context) (int, error) {
	query, args, err := sqlBuilder.Select("COUNT(*)").From("flashcards").ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *flashcardRepository) IncrementIncorrect(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("incrementing incorrect counter: id=%d", id)

	query, args, err := sqlBuilder.
		Update("flashcards").
		Set("times_incorrect", squirrel.Expr("times_incorrect + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update flashcard: %v", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NewNotFoundError("flashcard", id)
	}
	return nil
}

func (r *flashcardRepository) DeleteAt(ctx context.Context, position int) (models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("deleting flashcard at position %d", position)

	if position < 0 {
		return models.Flashcard{}, errors.NewNotFoundError("flashcard at position", position)
	}

	var removed models.Flashcard
	err := tx(ctx, r.db, func(tx *sqlx.Tx) error {
		query, args, err := sqlBuilder.
			Select(flashcardColumns...).
			From("flashcards").
			OrderBy("id").
			Limit(1).
			Offset(uint64(position)).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &removed, query, args...); err != nil {
			if stderrors.Is(err, sql.ErrNoRows) {
				return errors.NewNotFoundError("flashcard at position", position)
			}
			return err
		}

		query, args, err = sqlBuilder.
			Delete("flashcards").
			Where(squirrel.Eq{"id": removed.ID}).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return models.Flashcard{}, err
	}

	log.Debug("flashcard deleted: id=%d", removed.ID)
	return removed, nil
}
