// Package console is the terminal fallback for confirmations when no
// Telegram bot is configured.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/ports"
)

// UI prompts on stdout and reads one line from the reader per confirmation.
type UI struct {
	In  *bufio.Reader
	Out io.Writer
	// AutoApprove skips the prompt entirely. Used by the -yes flag.
	AutoApprove bool
}

func NewUI(in io.Reader, out io.Writer) *UI {
	return &UI{In: bufio.NewReader(in), Out: out}
}

var _ ports.Interaction = (*UI)(nil)

func (ui *UI) Confirm(ctx context.Context, title, body string) (ports.UserAction, error) {
	fmt.Fprintf(ui.Out, "\n=== %s ===\n%s\n", title, body)
	if ui.AutoApprove {
		fmt.Fprintln(ui.Out, "auto-approved")
		return ports.ActionApprove, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return ports.ActionSkip, err
		}
		fmt.Fprint(ui.Out, "[y] approve  [r] regenerate  [n] skip > ")
		line, err := ui.In.ReadString('\n')
		if err != nil {
			return ports.ActionSkip, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return ports.ActionApprove, nil
		case "r", "regenerate":
			return ports.ActionRegenerate, nil
		case "n", "no", "skip":
			return ports.ActionSkip, nil
		}
		fmt.Fprintln(ui.Out, "unrecognized answer")
	}
}
