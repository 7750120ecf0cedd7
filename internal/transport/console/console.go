package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"keyword-quiz/internal/app"
	"keyword-quiz/internal/domain"
)

// Console is the line-oriented terminal side of a quiz. It implements app.Presenter.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// readLine returns one line without its terminator. Lines have no length limit;
// a final line without a newline is still returned before io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskName prompts until a non-blank name is entered.
func (c *Console) AskName() (string, error) {
	for {
		fmt.Fprint(c.out, "\nEnter your name: ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		fmt.Fprintln(c.out, "Please enter a valid name.")
	}
}

// Intro announces the session about to start.
func (c *Console) Intro(settings app.Settings, questionCount int) {
	fmt.Fprintf(c.out, "\nSTARTING QUIZ - %s DIFFICULTY\n", strings.ToUpper(settings.Tier.String()))
	fmt.Fprintf(c.out, "You'll have %d questions, %s each.\n", questionCount, settings.TimeLimit)
}

func (c *Console) ShowQuestion(p app.Prompt) {
	fmt.Fprintf(c.out, "\nQuestion %d/%d\n%s\n%s\n", p.Number, p.Total, strings.Repeat("-", 30), p.Text)
	for i, opt := range p.Options {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, opt)
	}
}

func (c *Console) ReadSelection(remaining time.Duration) (string, error) {
	fmt.Fprintf(c.out, "Your answer [%.0fs remaining]: ", remaining.Seconds())
	return c.readLine()
}

func (c *Console) RejectSelection(_ string, optionCount int) {
	fmt.Fprintf(c.out, "Invalid input. Please enter a number between 1 and %d.\n", optionCount)
}

func (c *Console) ShowOutcome(o app.Outcome) {
	switch {
	case o.TimedOut:
		fmt.Fprintf(c.out, "Time's up! The correct answer was: %s\n", o.CorrectAnswer)
	case o.Correct:
		fmt.Fprintf(c.out, "Correct! You earned %d point(s). Current score: %d\n", o.Awarded, o.TotalScore)
	default:
		fmt.Fprintf(c.out, "Wrong! The correct answer was: %s\n", o.CorrectAnswer)
	}
}

// ShowSummary prints the end-of-quiz result and any ledger warning.
func (c *Console) ShowSummary(s app.Summary) {
	fmt.Fprintf(c.out, "\nQUIZ COMPLETED!\nYour final score: %d points\n", s.Result.Score)
	fmt.Fprintf(c.out, "You got %.1f%% of the maximum possible score (%s).\n", s.Percentage, s.Rating)
	if s.Warning != nil {
		fmt.Fprintln(c.out, "Could not save high score.")
		return
	}
	fmt.Fprintf(c.out, "Your score has been saved. Best: %d, attempts: %d\n", s.Record.BestScore, s.Record.Attempts)
}

// AskPlayAgain returns true for "1", false for "2", and re-prompts otherwise.
func (c *Console) AskPlayAgain() (bool, error) {
	fmt.Fprintln(c.out, "\nWould you like to play again?\n1. Yes\n2. No")
	for {
		fmt.Fprint(c.out, "Enter your choice (1-2): ")
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.TrimSpace(line) {
		case "1":
			return true, nil
		case "2":
			return false, nil
		}
		fmt.Fprintln(c.out, "Invalid choice. Please try again.")
	}
}

// ShowScores prints ranked ledger records.
func (c *Console) ShowScores(records []domain.PlayerRecord) {
	if len(records) == 0 {
		fmt.Fprintln(c.out, "No high scores yet. Be the first!")
		return
	}
	fmt.Fprintln(c.out, "RANK | NAME               | BEST | LAST | ATTEMPTS | DIFFICULTY | DATE")
	fmt.Fprintln(c.out, strings.Repeat("-", 80))
	for i, rec := range records {
		name := rec.Name
		if r := []rune(name); len(r) > 18 {
			name = string(r[:18]) + "..."
		}
		fmt.Fprintf(c.out, "%4d | %-18s | %4d | %4d | %8d | %-10s | %s\n",
			i+1, name, rec.BestScore, rec.LastScore, rec.Attempts, rec.Difficulty, rec.Date)
	}
}

// Farewell prints the player's final stats.
func (c *Console) Farewell(player string, best int, tier domain.Difficulty) {
	fmt.Fprintf(c.out, "\n%s, thanks for playing!\nHighest score: %d points\nDifficulty: %s\n", player, best, tier)
}
