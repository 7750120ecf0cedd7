package memory

import (
	"context"

	"keyword-quiz/internal/domain"
)

// StaticQuestionLoader serves a fixed question slice (the built-in bank, tests).
type StaticQuestionLoader struct {
	questions []domain.Question
}

func NewStaticQuestionLoader(questions []domain.Question) *StaticQuestionLoader {
	return &StaticQuestionLoader{questions: questions}
}

// NewBuiltinQuestionLoader serves the Python keyword bank shipped with the game.
func NewBuiltinQuestionLoader() *StaticQuestionLoader {
	return NewStaticQuestionLoader(BuiltinQuestions())
}

func (l *StaticQuestionLoader) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	return append([]domain.Question(nil), l.questions...), nil
}

// BuiltinQuestions returns the static bank. Construction panics on a malformed entry.
func BuiltinQuestions() []domain.Question {
	q := domain.MustQuestion
	return []domain.Question{
		q("What keyword is used to define a function in Python?", "def",
			[]string{"def", "function", "define", "func"}, domain.Easy),
		q("Which keyword is used for conditional statements?", "if",
			[]string{"if", "when", "condition", "check"}, domain.Easy),
		q("What keyword represents the Boolean value 'true'?", "True",
			[]string{"True", "true", "YES", "1"}, domain.Easy),
		q("Which keyword is used to exit a loop prematurely?", "break",
			[]string{"break", "exit", "stop", "end"}, domain.Easy),
		q("Which symbol represents the 'and' operator in Python?", "and",
			[]string{"and", "&&", "&", "+"}, domain.Easy),
		q("What was Python named after?", "Monty Python",
			[]string{"Monty Python", "Snake", "Python's Triangle", "A person named Python"}, domain.Easy),

		q("Which keyword is used to handle exceptions?", "try",
			[]string{"try", "catch", "except", "handle"}, domain.Medium),
		q("What keyword is used to skip the current iteration in a loop?", "continue",
			[]string{"continue", "skip", "next", "pass"}, domain.Medium),
		q("Which keyword represents 'nothing' in Python?", "None",
			[]string{"None", "Null", "nil", "void"}, domain.Medium),
		q("What keyword is used to create a class?", "class",
			[]string{"class", "struct", "object", "type"}, domain.Medium),
		q("Which keyword is used with 'try' to handle specific exceptions?", "except",
			[]string{"except", "catch", "error", "handle"}, domain.Medium),
		q("Which built-in function converts a value to an integer?", "int()",
			[]string{"int()", "integer()", "to_int()", "parse_int()"}, domain.Medium),

		q("Which keyword creates anonymous functions?", "lambda",
			[]string{"lambda", "anonymous", "function", "arrow"}, domain.Hard),
		q("What keyword allows a function to produce a series of values over time?", "yield",
			[]string{"yield", "produce", "generate", "return"}, domain.Hard),
		q("Which keyword is used to work with global variables inside functions?", "global",
			[]string{"global", "public", "extern", "shared"}, domain.Hard),
		q("What keyword is used for cleanup actions in exception handling?", "finally",
			[]string{"finally", "cleanup", "end", "always"}, domain.Hard),
		q("Which keyword refers to variables in enclosing (but not global) scopes?", "nonlocal",
			[]string{"nonlocal", "enclosed", "outer", "parent"}, domain.Hard),
		q("What is the name of Python's package manager?", "pip",
			[]string{"pip", "pypm", "conda", "npm"}, domain.Hard),
	}
}
