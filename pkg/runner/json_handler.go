package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/solitaire/pkg/domain"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines
// communication: one JSON array of messages per Output, one command per
// input line.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: enc,
	}
}

func (h *JSONHandler) Output(ctx context.Context, msgs []domain.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	return h.Encoder.Encode(msgs)
}

// Input accepts either a JSON string ("t 1 2") or the raw command text.
// A line that fails sanitizing is answered with an error message and the
// next line is read.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := h.Reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return "", err
		}
		text = strings.TrimSpace(text)

		var val string
		if err := json.Unmarshal([]byte(text), &val); err == nil {
			text = val
		}

		clean, err := SanitizeInput(text)
		if err != nil {
			msg := domain.Message{Kind: domain.MessageError, Text: fmt.Sprintf("Error: %v. Please try again.", err)}
			if err := h.Output(ctx, []domain.Message{msg}); err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}
