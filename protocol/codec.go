package protocol

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"jedna/game"
)

// maxLineSize bounds one message line. States stay small in practice but
// the game master is free to send large hands.
const maxLineSize = 1024 * 1024

// Decoder reads one JSON message per line.
type Decoder struct {
	scanner *bufio.Scanner
}

func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, maxLineSize)
	scanner.Buffer(buf, len(buf))
	return &Decoder{scanner: scanner}
}

// Next returns the next message, io.EOF once the game master closes the
// stream, or an error for any line that is not a JSON message.
func (d *Decoder) Next() (Message, error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return Message{}, fmt.Errorf("read message: %w", err)
		}
		return Message{}, io.EOF
	}

	var message Message
	if err := json.Unmarshal(d.scanner.Bytes(), &message); err != nil {
		return Message{}, fmt.Errorf("parse message: %w", err)
	}
	return message, nil
}

// Encoder writes one JSON action per line. Every line is flushed before
// Encode returns; the game master blocks until it arrives.
type Encoder struct {
	writer *bufio.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{writer: bufio.NewWriter(w)}
}

func (e *Encoder) Encode(action game.Action) error {
	data, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("encode action: %w", err)
	}
	if _, err := e.writer.Write(data); err != nil {
		return fmt.Errorf("write action: %w", err)
	}
	if err := e.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("write action: %w", err)
	}
	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("flush action: %w", err)
	}
	return nil
}
