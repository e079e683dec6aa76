// Package agentlet provides a small toolkit for building chat agents in Go.
//
// The toolkit is deliberately minimal: an agent is a thin facade over a
// language model, an ordered conversation [Memory], and a [SystemPromptGenerator]
// that assembles the system prompt from structured background, steps, and
// output instructions plus any registered [ContextProvider] values.
//
// # Quick Start
//
//	generator := agentlet.NewSystemPromptGenerator(agentlet.PromptInfo{
//	    Background: []string{
//	        "This assistant is a general-purpose AI designed to be helpful and friendly.",
//	    },
//	    Steps: []string{
//	        "Understand the user input.",
//	        "Reason about the input.",
//	        "Respond to the user.",
//	    },
//	    OutputInstructions: []string{
//	        "Provide helpful and relevant information to assist the user.",
//	    },
//	})
//	generator.RegisterProvider("date",
//	    agentlet.NewCurrentDateProvider("Datetime Context Provider"))
//
//	memory := agentlet.NewMemory()
//	memory.Add(agentlet.RoleAssistant, "How do you do and what can I do for you today?")
//
//	model, err := models.NewGroqModel("llama3-70b-8192", os.Getenv("GROQ_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	agent, err := agentlet.NewAgent(agentlet.Config{
//	    Model:                 model,
//	    Memory:                memory,
//	    SystemPromptGenerator: generator,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := agent.Run(ctx, agentlet.Input{ChatMessage: "Hello!"})
//
// # Tools
//
// A [Tool] exposes a fixed input shape, a fixed output shape, and a single
// Call method. Tools hold no state between calls; see tools/calculator for
// the canonical example.
//
// # Concurrency
//
// Everything in this package is single-goroutine by design. Memory does no
// internal locking; callers that share an agent across goroutines must
// serialize access themselves.
package agentlet
