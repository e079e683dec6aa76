// Package main provides a small CLI around the calculator tool. With
// arguments it evaluates them as one expression; without, it reads
// expressions interactively until EOF or /exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/agentlet/agentlet/chat"
	"github.com/agentlet/agentlet/tools/calculator"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tool := calculator.New()
	ctx := context.Background()

	if len(os.Args) > 1 {
		expression := strings.Join(os.Args[1:], " ")
		return evaluate(ctx, tool, expression)
	}

	rl, err := readline.New("calc> ")
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) ||
				errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if chat.IsExitCommand(line) {
			return nil
		}
		if err := evaluate(ctx, tool, line); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

// evaluate validates the expression against the tool's input schema, runs
// the tool, and prints the result.
func evaluate(ctx context.Context, tool *calculator.Tool, expression string) error {
	args := map[string]any{"expression": expression}
	if err := calculator.InputSchema.Validate(args); err != nil {
		return err
	}

	output, err := tool.Call(ctx, calculator.Input{Expression: expression})
	if err != nil {
		return err
	}
	fmt.Println(output.Result)
	return nil
}
