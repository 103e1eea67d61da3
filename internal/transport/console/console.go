package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const (
	prompt   = "> "
	helpText = `Commands:
  0-8, play N   place your mark on cell N
  jump N, j N   go back (or forward) to move N
  restart       go back to the empty board
  history       list the moves
  help          show this help
  quit          leave the game
`
)

type session interface {
	PlayMove(cell int) bool
	JumpTo(move int) bool
	Restart() bool
	View() *usecase.View
	OnChange(fn usecase.RenderFunc)
}

// Console is a line-oriented terminal front end for one game session.
type Console struct {
	logger *slog.Logger

	session     session
	in          io.Reader
	out         io.Writer
	hideHistory bool
}

func New(logger *slog.Logger, session session, in io.Reader, out io.Writer, hideHistory bool) *Console {
	that := &Console{
		logger:      logger.With("component", "console"),
		session:     session,
		in:          in,
		out:         out,
		hideHistory: hideHistory,
	}

	session.OnChange(that.Render)

	return that
}

// Run reads commands until quit, end of input or ctx cancellation.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	that.Render(that.session.View())
	that.write("Type 'help' for the list of commands.\n" + prompt)

	for {
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				log.Info("input closed")
				return nil
			}

			if quit := that.handle(line); quit {
				log.Info("player quit")
				return nil
			}

			that.write(prompt)
		}
	}
}

// handle executes one input line and reports whether the player asked to quit.
func (that *Console) handle(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	command, args := fields[0], fields[1:]

	switch command {
	case "quit", "q", "exit":
		return true
	case "help", "?":
		that.write(helpText)
	case "history", "h":
		that.write(formatHistory(that.session.View()))
	case "restart", "r":
		that.session.Restart()
	case "jump", "j":
		if move, ok := that.argument(command, args); ok {
			that.session.JumpTo(move)
		}
	case "play", "p":
		if cell, ok := that.argument(command, args); ok {
			that.session.PlayMove(cell)
		}
	default:
		cell, err := strconv.Atoi(command)
		if err != nil {
			that.write(fmt.Sprintf("Unknown command %q. Type 'help' for the list of commands.\n", command))
			return false
		}

		that.session.PlayMove(cell)
	}

	return false
}

func (that *Console) argument(command string, args []string) (int, bool) {
	if len(args) != 1 {
		that.write(fmt.Sprintf("Usage: %s N\n", command))
		return 0, false
	}

	value, err := strconv.Atoi(args[0])
	if err != nil {
		that.write(fmt.Sprintf("%q is not a number.\n", args[0]))
		return 0, false
	}

	return value, true
}

// Render draws the board, the status line and, unless hidden, the history.
func (that *Console) Render(view *usecase.View) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(formatBoard(view))
	sb.WriteString(view.StatusText)
	sb.WriteString("\n")

	if !that.hideHistory {
		sb.WriteString(formatHistory(view))
	}

	that.write(sb.String())
}

func (that *Console) write(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// formatBoard prints empty cells as their index and the winning line in brackets.
func formatBoard(view *usecase.View) string {
	var sb strings.Builder

	for cell, mark := range view.Board {
		label := string(mark)
		if mark == entity.EmptyCell {
			label = strconv.Itoa(cell)
		}

		if view.Verdict != nil && view.Verdict.Contains(cell) {
			sb.WriteString("[" + label + "]")
		} else {
			sb.WriteString(" " + label + " ")
		}

		switch {
		case cell == entity.BoardSize-1:
			sb.WriteString("\n")
		case cell%3 == 2:
			sb.WriteString("\n---+---+---\n")
		default:
			sb.WriteString("|")
		}
	}

	return sb.String()
}

func formatHistory(view *usecase.View) string {
	var sb strings.Builder

	sb.WriteString("History:\n")
	for _, entry := range view.History {
		marker := "  "
		if entry.Current {
			marker = "* "
		}
		fmt.Fprintf(&sb, "%s%d. %s\n", marker, entry.Move, entry.Label)
	}

	return sb.String()
}
