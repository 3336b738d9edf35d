package listener

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/veilbrook/go-haunt/internal/engine"
)

// Subscriber lets a connection watch its session's notification
// subject. Implemented by messaging.NatsServer.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// ConnectionManager turns an accepted transport connection into a
// session loop: every line read becomes one engine turn, keyed by a
// session id minted for the connection.
type ConnectionManager struct {
	engine *engine.Engine
	subs   Subscriber
}

func NewConnectionManager(eng *engine.Engine, subs Subscriber) *ConnectionManager {
	return &ConnectionManager{
		engine: eng,
		subs:   subs,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.runSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "session ended with error", "error", err)
	}
}

func (m *ConnectionManager) runSession(ctx context.Context, conn io.ReadWriter) error {
	sessionId := uuid.New().String()

	// Stream out-of-band notifications for this session as they
	// arrive. Turn responses are written synchronously below.
	if m.subs != nil {
		unsubscribe, err := m.subs.Subscribe(engine.NotificationSubject(sessionId), func(data []byte) {
			_, _ = conn.Write([]byte("\n" + string(data) + "\n"))
		})
		if err != nil {
			return fmt.Errorf("subscribing session %s: %w", sessionId, err)
		}
		defer unsubscribe()
	}

	// An empty first command materializes the session and shows the
	// starting room.
	resp, err := m.engine.ExecuteTurn(sessionId, "look")
	if err != nil {
		return fmt.Errorf("opening turn: %w", err)
	}
	if err := writeResponse(conn, resp); err != nil {
		return err
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, open := <-lines:
			if !open {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}

			line = strings.TrimSpace(line)
			if line == "" {
				if err := prompt(conn); err != nil {
					return err
				}
				continue
			}

			resp, err := m.engine.ExecuteTurn(sessionId, line)
			if err != nil {
				// System failure, not a player mistake; drop the link.
				return fmt.Errorf("executing turn: %w", err)
			}

			if err := writeResponse(conn, resp); err != nil {
				return err
			}
			if resp.Quit || resp.Won {
				return nil
			}
		}
	}
}

func writeResponse(conn io.ReadWriter, resp *engine.TurnResponse) error {
	if _, err := conn.Write([]byte(resp.Message + "\n")); err != nil {
		return err
	}
	return prompt(conn)
}

func prompt(conn io.ReadWriter) error {
	_, err := conn.Write([]byte("> "))
	return err
}
