package services

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type promptService struct {
	logger      LogService
	interactive bool
	assumeYes   bool

	in  *bufio.Reader
	out io.Writer
}

func newPromptService(logger LogService, interactive, assumeYes bool) PromptService {
	return &promptService{
		logger:      logger,
		interactive: interactive,
		assumeYes:   assumeYes,
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stderr,
	}
}

// NewPrompt constructs a PromptService reading answers from in and writing
// questions to out.
func NewPrompt(logger LogService, in io.Reader, out io.Writer, assumeYes bool) PromptService {
	return &promptService{
		logger:      logger,
		interactive: true,
		assumeYes:   assumeYes,
		in:          bufio.NewReader(in),
		out:         out,
	}
}

// Ask prints message and reads a y/n answer, repeating the question until it
// gets one. End of input is a refusal. Without a terminal the answer is always
// no unless the service was built to assume yes.
func (p *promptService) Ask(message string) bool {
	if p.assumeYes {
		p.logger.Debugf("auto-confirming: %s", message)
		return true
	}
	if !p.interactive {
		p.logger.Warningf("%s (no terminal, answering no; use --yes to confirm)", message)
		return false
	}

	for {
		fmt.Fprintf(p.out, "%s %s ", message, color.HiBlackString("[y/n]"))
		line, err := p.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			return false
		}
	}
}
