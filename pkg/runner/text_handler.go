package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/solitaire/pkg/domain"
)

// DefaultPrompt is shown before each command line.
const DefaultPrompt = `Enter a command (type "?" for help): `

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
	Prompt   string
	// Echo writes each line read back after the prompt, so transcripts of
	// scripted input read like an interactive session.
	Echo bool

	inputChan chan inputResult
	done      chan struct{} // closed by Close
	pumpDone  chan struct{} // closed when pump returns
	initOnce  sync.Once
	startOnce sync.Once
	closeOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the help renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithPrompt replaces DefaultPrompt.
func WithPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// WithEcho echoes every line read.
func WithEcho(echo bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Echo = echo
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		Prompt: DefaultPrompt,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) init() {
	h.initOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		h.done = make(chan struct{})
		h.pumpDone = make(chan struct{})
	})
}

func (h *TextHandler) initPump() {
	h.init()
	h.startOnce.Do(func() {
		go h.pump()
	})
}

// Close stops the background reader. A line it has already read is
// dropped, and later calls to Input return io.EOF.
func (h *TextHandler) Close() error {
	h.init()
	h.closeOnce.Do(func() {
		close(h.done)
	})
	return nil
}

// send hands res to Input, giving up once the handler is closed.
func (h *TextHandler) send(res inputResult) bool {
	select {
	case h.inputChan <- res:
		return true
	case <-h.done:
		return false
	}
}

// pump reads lines in the background so Input can give up on ctx.
func (h *TextHandler) pump() {
	defer close(h.pumpDone)
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" && !h.send(inputResult{text: text}) {
			return
		}
		if err != nil {
			if err != io.EOF && !h.send(inputResult{err: err}) {
				return
			}
			close(h.inputChan)
			return
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, msgs []domain.Message) error {
	for _, msg := range msgs {
		output := msg.Text
		if msg.Kind == domain.MessageHelp && h.Renderer != nil {
			if rendered, err := h.Renderer(msg.Text); err == nil {
				output = rendered
			}
		}
		if msg.Kind == domain.MessageBoard {
			output = strings.TrimRight(output, "\n")
		} else {
			output = strings.TrimSpace(output)
		}
		if _, err := fmt.Fprintln(h.Writer, output); err != nil {
			return err
		}
	}
	return nil
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, h.Prompt)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-h.done:
			return "", io.EOF
		case res, ok := <-h.inputChan:
			if !ok {
				fmt.Fprintln(h.Writer)
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			text := strings.TrimSpace(res.text)
			if h.Echo {
				fmt.Fprintln(h.Writer, text)
			}

			clean, err := SanitizeInput(text)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}
