// Package main provides the interactive chat CLI: a readline loop over an
// agentlet agent backed by Groq, with the tutorial system prompt and a
// current-date context provider.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"

	"github.com/agentlet/agentlet"
	"github.com/agentlet/agentlet/chat"
	"github.com/agentlet/agentlet/hooks"
	"github.com/agentlet/agentlet/models"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorBold  = "\033[1m"
)

const (
	defaultModel = "llama3-70b-8192"
	greeting     = "How do you do and what can I do for you today?"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	apiKey := os.Getenv("GROQ_API_KEY")
	model, err := models.NewGroqModel(modelName(), apiKey)
	if err != nil {
		return err
	}

	generator := agentlet.NewSystemPromptGenerator(agentlet.PromptInfo{
		Background: []string{
			"This assistant is a general-purpose AI designed to be helpful and friendly.",
		},
		Steps: []string{
			"Understand the user input.",
			"Reason about the input.",
			"Respond to the user.",
		},
		OutputInstructions: []string{
			"Provide helpful and relevant information to assist the user.",
			"Be friendly and respectful in all conversations.",
			"Always use the available additional information and context to enhance the response",
		},
	})
	generator.RegisterProvider("date",
		agentlet.NewCurrentDateProvider("Datetime Context Provider"))

	memory := agentlet.NewMemory()
	memory.Add(agentlet.RoleAssistant, greeting)

	registry := hooks.NewRegistry()
	logHook, closeLog, err := newLogHook()
	if err != nil {
		return err
	}
	defer closeLog()
	registry.Register(logHook)

	agent, err := agentlet.NewAgent(agentlet.Config{
		Model:                 model,
		Memory:                memory,
		SystemPromptGenerator: generator,
		Hooks:                 registry,
	})
	if err != nil {
		return err
	}

	rl, err := readline.New(
		colorCyan + colorBold + "User: " + colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	session := chat.NewSession(agent, os.Stdout).
		WithAgentPrefix(colorGreen + "Agent: " + colorReset)
	session.Greet(greeting)

	err = session.Run(ctx, rl)
	if errors.Is(err, readline.ErrInterrupt) ||
		errors.Is(err, context.Canceled) {
		fmt.Printf("\n%sGoodbye!%s\n", colorGreen, colorReset)
		return nil
	}
	return err
}

// modelName returns the Groq model to use, overridable via GROQ_MODEL.
func modelName() string {
	if name := os.Getenv("GROQ_MODEL"); name != "" {
		return name
	}
	return defaultModel
}

// newLogHook creates a hook that logs model calls to .logs/chat.log.
func newLogHook() (*logHook, func(), error) {
	logDir := ".logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.Create(filepath.Join(logDir, "chat.log"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	hook := &logHook{logger: log.New(logFile, "", log.LstdFlags)}
	return hook, func() { logFile.Close() }, nil
}

// logHook logs model calls and run failures.
type logHook struct {
	logger *log.Logger
}

func (h *logHook) OnBeforeModelCall(
	_ context.Context,
	event agentlet.BeforeModelCallEvent,
) {
	h.logger.Printf("model call: %d messages", len(event.Request))
}

func (h *logHook) OnAfterModelCall(
	_ context.Context,
	event agentlet.AfterModelCallEvent,
) {
	if event.Error != nil {
		h.logger.Printf("model call failed after %v: %v",
			event.Duration, event.Error)
		return
	}
	info := event.Response.Info
	h.logger.Printf("model call done in %v (in=%d out=%d tokens)",
		event.Duration, info.InputTokens, info.OutputTokens)
}

func (h *logHook) OnError(_ context.Context, event agentlet.ErrorEvent) {
	h.logger.Printf("run failed: %v", event.Err)
}
