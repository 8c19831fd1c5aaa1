package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/tempera/pkg/form"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
//
// Every input line is either a command object
//
//	{"field": "hot", "value": "85"}
//	{"command": "reset"}
//
// or a partial fields object applied at once:
//
//	{"hot": 85, "mode": "ice"}
//
// Every output line is a form.View, or {"message": "..."} for system output.
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
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

type systemMessage struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *JSONHandler) Output(ctx context.Context, view form.View) error {
	return h.Encoder.Encode(view)
}

func (h *JSONHandler) Input(ctx context.Context) (Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Command{}, err
		}

		text, err := h.Reader.ReadString('\n')
		line := strings.TrimSpace(text)
		if line == "" {
			if err != nil {
				return Command{}, err
			}
			continue
		}

		cmd, perr := decodeJSONCommand(line)
		if perr == nil {
			return cmd, nil
		}
		if errors.Is(perr, ErrEmptyCommand) {
			continue
		}
		if encErr := h.Encoder.Encode(systemMessage{Error: perr.Error()}); encErr != nil {
			return Command{}, encErr
		}
		if err != nil {
			return Command{}, err
		}
	}
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(systemMessage{Message: msg})
}

func decodeJSONCommand(line string) (Command, error) {
	clean, err := SanitizeInput(line)
	if err != nil {
		return Command{}, err
	}

	// A bare JSON string is treated like a line typed at the prompt.
	var text string
	if err := json.Unmarshal([]byte(clean), &text); err == nil {
		return ParseCommand(text)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(clean), &obj); err != nil {
		return Command{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if len(obj) == 0 {
		return Command{}, ErrEmptyCommand
	}

	if c, ok := obj["command"].(string); ok {
		return ParseCommand(c)
	}
	if field, ok := obj["field"].(string); ok {
		value := ""
		switch v := obj["value"].(type) {
		case string:
			value = v
		case nil:
		default:
			value = fmt.Sprint(v)
		}
		return ParseCommand(field + "=" + value)
	}

	return Command{Kind: CommandApply, Fields: obj}, nil
}
