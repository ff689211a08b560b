package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"jedna/protocol"
	"jedna/stats"
	"jedna/strategy"
)

// End reasons reported by Run.
const (
	EndGameOver     = "game_end"
	EndStreamClosed = "eof"
)

// Engine runs the agent's side of a session: read one message, decide,
// reply, strictly one reply per request before the next read.
type Engine struct {
	decoder   *protocol.Decoder
	encoder   *protocol.Encoder
	strategy  strategy.Strategy
	collector stats.Collector
}

func New(decoder *protocol.Decoder, encoder *protocol.Encoder, s strategy.Strategy, collector stats.Collector) *Engine {
	return &Engine{
		decoder:   decoder,
		encoder:   encoder,
		strategy:  s,
		collector: collector,
	}
}

// Run executes the message loop until the game master ends the game or
// closes the stream, and returns the end reason.
func (e *Engine) Run() (string, error) {
	for {
		message, err := e.decoder.Next()
		if errors.Is(err, io.EOF) {
			log.Info().Msg("game master closed the stream")
			return EndStreamClosed, nil
		}
		if err != nil {
			return "", fmt.Errorf("receive message: %w", err)
		}

		switch message.Type {
		case protocol.TypeRequestAction:
			if message.State == nil {
				return "", fmt.Errorf("request_action without state")
			}

			action := e.strategy.Decide(*message.State)
			if err := e.encoder.Encode(action); err != nil {
				return "", fmt.Errorf("send action: %w", err)
			}
			e.collector.AddAction(action)
			log.Debug().Msgf("replied with %s", action.Action)

		case protocol.TypeGameEnd:
			log.Info().Msg("game over")
			return EndGameOver, nil

		default:
			log.Warn().Msgf("ignoring message of unknown type %q", message.Type)
			e.collector.AddUnknown()
		}
	}
}
