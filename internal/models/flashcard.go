package models

// Flashcard is a question/answer pair with a counter of wrong answers.
// Identity for duplicate detection is the exact (Question, Answer) pair; ID is
// a storage handle and never shown to the user.
type Flashcard struct {
	ID             int64  `json:"id" db:"id"`
	Question       string `json:"question" db:"question"`
	Answer         string `json:"answer" db:"answer"`
	TimesIncorrect int    `json:"times_incorrect" db:"times_incorrect"`
}

// Matches reports whether the card holds exactly this question and answer.
func (f Flashcard) Matches(question, answer string) bool {
	return f.Question == question && f.Answer == answer
}

// Outcome is the result of asking one card during a review.
type Outcome struct {
	CardID   int64  `json:"card_id"`
	Question string `json:"question"`
	Expected string `json:"expected"`
	Given    string `json:"given"`
	Correct  bool   `json:"correct"`
}

// ReviewSummary collects the outcomes of one review session in presentation order.
type ReviewSummary struct {
	Outcomes  []Outcome `json:"outcomes"`
	Correct   int       `json:"correct"`
	Incorrect int       `json:"incorrect"`
}

// Total is the number of cards asked.
func (s ReviewSummary) Total() int {
	return len(s.Outcomes)
}
