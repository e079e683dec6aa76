// Package chat provides the interactive read-evaluate-print loop that drives
// an agentlet agent from a line-based input source.
//
// The loop contract is small: the literal commands /exit and /quit
// (case-insensitive) end the loop without being forwarded to the agent, blank
// lines are skipped, and every other line is forwarded as a user turn.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agentlet/agentlet"
)

// exitCommands are the literal inputs that end the loop. Matching is
// case-insensitive after trimming surrounding whitespace.
var exitCommands = []string{"/exit", "/quit"}

// IsExitCommand reports whether line is one of the loop's exit commands.
func IsExitCommand(line string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	for _, cmd := range exitCommands {
		if trimmed == cmd {
			return true
		}
	}
	return false
}

// LineReader supplies user input one line at a time. readline.Instance
// satisfies this interface.
type LineReader interface {
	Readline() (string, error)
}

// Runner is the part of the agent the session drives. *agentlet.Agent
// satisfies this interface.
type Runner interface {
	Run(ctx context.Context, input agentlet.Input) (agentlet.Output, error)
}

// Session wires an agent to an output writer and drives the chat loop.
type Session struct {
	agent Runner
	out   io.Writer

	userPrefix  string
	agentPrefix string
	farewell    string
}

// NewSession creates a Session writing agent replies to out.
func NewSession(agent Runner, out io.Writer) *Session {
	return &Session{
		agent:       agent,
		out:         out,
		agentPrefix: "Agent: ",
		farewell:    "Exiting chat, see you later ...",
	}
}

// WithAgentPrefix sets the prefix printed before agent replies.
// Returns self for chaining.
func (s *Session) WithAgentPrefix(prefix string) *Session {
	s.agentPrefix = prefix
	return s
}

// WithFarewell sets the message printed when the loop exits.
// Returns self for chaining.
func (s *Session) WithFarewell(farewell string) *Session {
	s.farewell = farewell
	return s
}

// Greet prints the given assistant greeting, typically the seeded first turn
// of the agent's memory.
func (s *Session) Greet(greeting string) {
	fmt.Fprintf(s.out, "%s%s\n", s.agentPrefix, greeting)
}

// HandleLine processes a single line of user input. It returns done=true when
// the line is an exit command; otherwise the line is forwarded to the agent
// (blank lines are skipped) and the reply is printed.
//
// Agent errors are returned to the caller; the loop in Run reports them and
// keeps going, matching the interactive tutorial behavior where one failed
// turn should not end the session.
func (s *Session) HandleLine(ctx context.Context, line string) (done bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false, nil
	}
	if IsExitCommand(trimmed) {
		fmt.Fprintln(s.out, s.farewell)
		return true, nil
	}

	output, err := s.agent.Run(ctx, agentlet.Input{ChatMessage: trimmed})
	if err != nil {
		return false, err
	}
	fmt.Fprintf(s.out, "%s%s\n", s.agentPrefix, output.ChatMessage)
	return false, nil
}

// Run drives the loop until an exit command, end of input, or context
// cancellation. Read errors other than io.EOF are returned; agent errors are
// printed and the loop continues.
func (s *Session) Run(ctx context.Context, reader LineReader) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := reader.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		done, err := s.HandleLine(ctx, line)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		if done {
			return nil
		}
	}
}
