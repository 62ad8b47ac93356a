package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/shashtable/ds/sortedhashtable"
	"github.com/iotaledger/shashtable/logger"
)

// absentValue is printed by get for keys that are not stored in the table.
const absentValue = "(nil)"

// Shell executes line based commands against a single SortedHashTable and writes the results to its output.
type Shell struct {
	*logger.WrappedLogger

	table    *sortedhashtable.SortedHashTable
	output   io.Writer
	commands map[string]*command
}

// command describes a shell command and the number of arguments it accepts.
type command struct {
	usage   string
	minArgs int
	maxArgs int // -1 means unbounded
	handler func(args []string) error
}

// New creates a Shell that operates on the given table.
func New(table *sortedhashtable.SortedHashTable, output io.Writer, log *zap.Logger) *Shell {
	s := &Shell{
		WrappedLogger: logger.NewWrappedLogger(log),
		table:         table,
		output:        output,
	}

	s.commands = map[string]*command{
		"set":       {usage: "set <key> [value]", minArgs: 1, maxArgs: -1, handler: s.set},
		"get":       {usage: "get <key>", minArgs: 1, maxArgs: 1, handler: s.get},
		"print":     {usage: "print", handler: s.print},
		"print_rev": {usage: "print_rev", handler: s.printReverse},
		"size":      {usage: "size", handler: s.size},
		"stats":     {usage: "stats", handler: s.stats},
		"destroy":   {usage: "destroy", handler: s.destroy},
		"help":      {usage: "help", handler: s.help},
		"exit":      {usage: "exit", handler: s.exit},
		"quit":      {usage: "quit", handler: s.exit},
	}

	return s
}

// Run executes every line of input until the input is exhausted, an exit command is read or the context is done.
// Failing commands are reported on the output and do not stop the session.
// Lines are not limited in length.
func (s *Shell) Run(ctx context.Context, input io.Reader) error {
	reader := bufio.NewReader(input)
	for lineNumber := 1; ; lineNumber++ {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !ierrors.Is(readErr, io.EOF) {
			s.LogError("reading input failed", zap.Int("line", lineNumber), zap.Error(readErr))

			return ierrors.Errorf("failed to read input: %w", readErr)
		}
		if line == "" && readErr != nil {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.Execute(strings.TrimRight(line, "\r\n")); err != nil {
			if ierrors.Is(err, ErrExit) {
				s.LogDebug("session ended by user", zap.Int("line", lineNumber))

				return nil
			}

			s.LogWarn("command failed", zap.Int("line", lineNumber), zap.Error(err))
			if _, writeErr := fmt.Fprintf(s.output, "error: %s\n", err); writeErr != nil {
				return ierrors.Errorf("failed to write to output: %w", writeErr)
			}
		}

		if readErr != nil {
			return nil
		}
	}
}

// Execute runs a single command line. Empty lines and lines starting with # are ignored.
func (s *Shell) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name, args := fields[0], fields[1:]
	cmd, exists := s.commands[name]
	if !exists {
		return ierrors.Wrapf(ErrUnknownCommand, "%q", name)
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return ierrors.Wrapf(ErrInvalidArguments, "usage: %s", cmd.usage)
	}

	s.LogDebug("executing command", zap.String("command", name), zap.Strings("args", args))

	return cmd.handler(args)
}

// set stores the key with the remaining fields joined by a single space as value.
func (s *Shell) set(args []string) error {
	return s.table.Set(args[0], strings.Join(args[1:], " "))
}

func (s *Shell) get(args []string) error {
	value, exists := s.table.Get(args[0])
	if !exists {
		return s.println(absentValue)
	}

	return s.println(value)
}

func (s *Shell) print(_ []string) error {
	return s.table.Fprint(s.output)
}

func (s *Shell) printReverse(_ []string) error {
	return s.table.FprintReverse(s.output)
}

func (s *Shell) size(_ []string) error {
	return s.println(s.table.Size())
}

func (s *Shell) stats(_ []string) error {
	return s.println(s.table.Stats())
}

func (s *Shell) destroy(_ []string) error {
	s.table.Destroy()
	s.LogInfo("table destroyed")

	return nil
}

func (s *Shell) help(_ []string) error {
	usages := make([]string, 0, len(s.commands))
	for _, cmd := range s.commands {
		usages = append(usages, cmd.usage)
	}
	sort.Strings(usages)

	return s.println(strings.Join(usages, "\n"))
}

func (s *Shell) exit(_ []string) error {
	return ErrExit
}

func (s *Shell) println(args ...interface{}) error {
	if _, err := fmt.Fprintln(s.output, args...); err != nil {
		return ierrors.Errorf("failed to write to output: %w", err)
	}

	return nil
}
