package domain

import "errors"

var (
	// ErrInvalidDifficulty is returned for difficulty text or values outside easy/medium/hard.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	// ErrEmptyQuestion indicates a question was built without any text.
	ErrEmptyQuestion = errors.New("question text is empty")
	// ErrInvalidOptions indicates the option set is not 2-6 distinct, non-empty strings.
	ErrInvalidOptions = errors.New("question options must be 2-6 distinct values")
	// ErrAnswerNotInOptions indicates the correct answer is not one of the options.
	ErrAnswerNotInOptions = errors.New("answer not found in options")
	// ErrEmptyPlayerName is returned when a session is started without a player.
	ErrEmptyPlayerName = errors.New("player name is empty")
	// ErrInvalidSelection marks raw input that is not one of the presented option numbers.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNotAwaitingAnswer is returned when an answer is submitted with no open question.
	ErrNotAwaitingAnswer = errors.New("session is not awaiting an answer")
	// ErrSessionNotFinished is returned when a result is requested before the last question resolved.
	ErrSessionNotFinished = errors.New("session not finished")
	// ErrLedgerNotPersisted wraps storage failures after the in-memory ledger was updated.
	ErrLedgerNotPersisted = errors.New("ledger not persisted")
)
