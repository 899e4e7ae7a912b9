package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/vytor/flashcards/internal/console"
	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/flashcard"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
)

const (
	msgInvalidInput  = "Please enter a valid input."
	msgAdded         = "Flashcard added!"
	msgDuplicate     = "Duplicate flashcard not added. A flashcard with the same question and answer already exists."
	msgNothingReview = "No flashcards to review."
	msgNothingDelete = "No flashcards available to delete."
	msgInvalidChoice = "Invalid choice. Please enter a valid number."
	msgDeleted       = "Flashcard deleted!"
	msgGoodbye       = "Goodbye!"
	msgUnexpected    = "Something went wrong, please try again."
)

const menuText = `
--- Flashcard System Menu ---
1. Add Flashcard
2. Review Flashcards
3. Delete Flashcard
4. Exit
Enter your choice: `

var errExit = stderrors.New("exit requested")

type menuHandler func(ctx context.Context) error

// App is the interactive menu. It owns the store for the whole session.
type App struct {
	store    *flashcard.Store
	in       console.LineReader
	out      io.Writer
	shuffle  bool
	handlers map[int]menuHandler
}

// Option configures an App.
type Option func(*App)

// WithShuffle sets whether reviews present cards in random order. On by default.
func WithShuffle(enabled bool) Option {
	return func(a *App) {
		a.shuffle = enabled
	}
}

// New creates the menu around store, reading from in and writing to out.
func New(store *flashcard.Store, in console.LineReader, out io.Writer, opts ...Option) *App {
	a := &App{
		store:   store,
		in:      in,
		out:     out,
		shuffle: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.handlers = map[int]menuHandler{
		1: a.handleAdd,
		2: a.handleReview,
		3: a.handleDelete,
		4: a.handleExit,
	}
	return a
}

// Run shows the menu until the user exits or input ends. Bad choices and
// rejected operations are reported and the menu is shown again; only a
// cancelled context is returned as an error.
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("menu")
	log.Debug("menu started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(a.out, menuText)
		line, err := a.in.ReadLine()
		if err != nil {
			return a.finish(ctx, err)
		}

		choice, err := flashcard.ParseIndex(line)
		handler, ok := a.handlers[choice]
		if err != nil || !ok {
			log.Debug("invalid menu choice: %q", line)
			a.println(msgInvalidInput)
			continue
		}

		if err := handler(ctx); err != nil {
			if stderrors.Is(err, errExit) {
				log.Debug("menu exited")
				return nil
			}
			return a.finish(ctx, err)
		}
	}
}

// finish ends the loop on an input error. End of input counts as Exit.
func (a *App) finish(ctx context.Context, err error) error {
	if stderrors.Is(err, io.EOF) {
		logger.FromContext(ctx).Debug("input closed, exiting")
		a.println("")
		a.println(msgGoodbye)
		return nil
	}
	return err
}

func (a *App) handleAdd(ctx context.Context) error {
	fmt.Fprint(a.out, "Enter Question: ")
	question, err := a.in.ReadLine()
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, "Enter Answer: ")
	answer, err := a.in.ReadLine()
	if err != nil {
		return err
	}

	if _, err := a.store.Add(ctx, question, answer); err != nil {
		a.report(ctx, err)
		return nil
	}
	a.println(msgAdded)
	return nil
}

func (a *App) handleReview(ctx context.Context) error {
	summary, err := a.store.Review(ctx, &reviewSession{app: a}, a.shuffle)
	if err != nil {
		if stderrors.Is(err, io.EOF) || stderrors.Is(err, context.Canceled) {
			return err
		}
		if errors.HasCode(err, errors.ErrCodeEmpty) {
			a.println(msgNothingReview)
			return nil
		}
		a.report(ctx, err)
		return nil
	}
	a.println(fmt.Sprintf("Score: %d/%d", summary.Correct, summary.Total()))
	return nil
}

func (a *App) handleDelete(ctx context.Context) error {
	cards, err := a.store.List(ctx)
	if err != nil {
		a.report(ctx, err)
		return nil
	}
	if len(cards) == 0 {
		a.println(msgNothingDelete)
		return nil
	}

	a.println("\n--- Flashcards ---")
	for i, c := range cards {
		a.println(fmt.Sprintf("%d. %s", i+1, c.Question))
	}
	fmt.Fprint(a.out, "Enter the number of the flashcard to delete: ")

	line, err := a.in.ReadLine()
	if err != nil {
		return err
	}
	index, err := flashcard.ParseIndex(line)
	if err != nil {
		a.report(ctx, err)
		return nil
	}
	if _, err := a.store.Delete(ctx, index); err != nil {
		if errors.HasCode(err, errors.ErrCodeEmpty) {
			a.println(msgNothingDelete)
			return nil
		}
		a.report(ctx, err)
		return nil
	}
	a.println(msgDeleted)
	return nil
}

func (a *App) handleExit(ctx context.Context) error {
	a.println(msgGoodbye)
	return errExit
}

// report turns a store error into the message shown to the user.
func (a *App) report(ctx context.Context, err error) {
	log := logger.FromContext(ctx).WithPrefix("menu")

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.NewInternalError(err)
	}

	switch appErr.Code {
	case errors.ErrCodeDuplicate:
		a.println(msgDuplicate)
	case errors.ErrCodeValidation:
		log.Debug("rejected input: %v", appErr)
		a.println(msgInvalidChoice)
	default:
		log.Error("unexpected error: %v", appErr)
		a.println(msgUnexpected)
	}
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

// reviewSession prints each question and reads the reply from the menu's input.
type reviewSession struct {
	app *App
}

func (s *reviewSession) Ask(ctx context.Context, question string) (string, error) {
	fmt.Fprintf(s.app.out, "\nQuestion: %s\n", question)
	fmt.Fprint(s.app.out, "Your Answer: ")
	return s.app.in.ReadLine()
}

func (s *reviewSession) Report(ctx context.Context, outcome models.Outcome) {
	if outcome.Correct {
		s.app.println("Correct!")
		return
	}
	s.app.println(fmt.Sprintf("Incorrect! The correct answer is: %s", outcome.Expected))
}
