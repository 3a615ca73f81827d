// Package agent hosts the conversational bookkeeper built on Gemini
// function calling. The model can consult the dataset and draft
// transactions, but every mutation goes through the caller as an explicit
// proposal.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the interactive chat session with the bookkeeper.
type Agent struct {
	w          io.Writer
	r          *bufio.Reader
	Bookkeeper *Expert
	// Render formats the model's markdown for the terminal. Nil means
	// print as-is.
	Render func(string) string
}

// New creates an Agent around the given bookkeeper expert. It takes an
// io.Writer for output (e.g. os.Stdout) and an io.Reader for user input
// (e.g. os.Stdin).
func New(w io.Writer, r io.Reader, bookkeeper *Expert) *Agent {
	return &Agent{
		w:          w,
		r:          bufio.NewReader(r),
		Bookkeeper: bookkeeper,
	}
}

const prompt = "dnb> "

// Run starts the REPL session. Any initial prompts are consumed before
// reading from the user, which lets a command line question flow straight
// into the chat.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Bookkeeper.chat == nil {
		if err := a.Bookkeeper.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the dnb bookkeeper. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush queued prompts first, then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Bookkeeper.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		text := content.Parts[0].Text
		if a.Render != nil {
			text = a.Render(text)
		}
		fmt.Fprintln(a.w, text)
	}
}
