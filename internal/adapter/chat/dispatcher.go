// Package chat routes inbound group messages: slash commands are dispatched
// directly, everything else is offered to the reset confirmation machine
// first and then to the entry parser. Text that matches neither is silently
// ignored, so ordinary conversation never draws a reply.
package chat

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pattarin/banchi/internal/infrastructure/metrics"
	"github.com/pattarin/banchi/internal/usecase"
)

// Message is one inbound group message as the transport delivers it.
type Message struct {
	GroupID    string
	SenderID   string
	SenderName string
	Text       string
}

// Dispatcher owns command routing and reply formatting.
type Dispatcher struct {
	ledger  *usecase.LedgerUseCase
	reset   *usecase.ResetUseCase
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(ledger *usecase.LedgerUseCase, reset *usecase.ResetUseCase, logger zerolog.Logger, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		ledger:  ledger,
		reset:   reset,
		logger:  logger,
		metrics: m,
	}
}

// Handle processes one message and returns the reply text. An empty reply
// with a nil error means the message was deliberately ignored.
func (d *Dispatcher) Handle(ctx context.Context, msg Message) (string, error) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		d.count("ignored")
		return "", nil
	}

	if strings.HasPrefix(text, "/") {
		return d.handleCommand(ctx, msg, text)
	}

	outcome, marker, err := d.reset.Confirm(ctx, msg.GroupID, msg.SenderID, text)
	if err != nil {
		d.count("error")
		return "", err
	}

	switch outcome {
	case usecase.ConfirmApplied:
		d.logger.Info().
			Str("group_id", msg.GroupID).
			Str("requester_id", msg.SenderID).
			Str("cycle_key", marker.CycleKey.String()).
			Msg("cycle balance reset")
		d.count("reset_confirmed")

		return replyResetConfirmed(marker.CycleKey), nil
	case usecase.ConfirmExpired:
		d.count("reset_expired")
		return replyResetExpired(), nil
	}

	entry, recorded, err := d.ledger.RecordText(ctx, msg.GroupID, msg.SenderID, msg.SenderName, text)
	if err != nil {
		d.count("error")
		return "", err
	}
	if !recorded {
		d.count("ignored")
		return "", nil
	}

	cycleSum, err := d.ledger.CycleSummary(ctx, msg.GroupID, entry.CycleKey)
	if err != nil {
		d.count("error")
		return "", err
	}
	d.count("recorded")

	return replyRecorded(entry, cycleSum), nil
}

func (d *Dispatcher) handleCommand(ctx context.Context, msg Message, text string) (string, error) {
	fields := strings.Fields(text)
	cmd := fields[0]
	// Group chats may address commands as /cmd@botname.
	if at := strings.IndexByte(cmd, '@'); at > 0 {
		cmd = cmd[:at]
	}

	switch cmd {
	case "/start":
		d.count("command")
		return replyStart(), nil

	case "/today":
		sum, entries, err := d.ledger.TodaySummary(ctx, msg.GroupID)
		if err != nil {
			d.count("error")
			return "", err
		}
		d.count("command")

		return replyToday(d.ledger.TodayKey(), entries, sum), nil

	case "/month":
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		key, err := d.ledger.ResolveCycleKey(arg)
		if err != nil {
			d.count("command")
			return replyMonthUsage(), nil
		}

		sum, err := d.ledger.CycleSummary(ctx, msg.GroupID, key)
		if err != nil {
			d.count("error")
			return "", err
		}
		d.count("command")

		start, end := d.ledger.CycleBounds(key)

		return replyCycle(key, start, end, sum), nil

	case "/reset":
		if _, err := d.reset.Begin(ctx, msg.GroupID, msg.SenderID); err != nil {
			d.count("error")
			return "", err
		}
		d.count("command")

		return replyResetRequested(d.reset.Window()), nil

	case "/cancel":
		existed, err := d.reset.Cancel(ctx, msg.GroupID, msg.SenderID)
		if err != nil {
			d.count("error")
			return "", err
		}
		d.count("command")

		return replyCancelled(existed), nil
	}

	// Unknown commands belong to other bots in the group.
	d.count("ignored")

	return "", nil
}

func (d *Dispatcher) count(outcome string) {
	if d.metrics != nil {
		d.metrics.MessagesHandled.WithLabelValues(outcome).Inc()
	}
}
