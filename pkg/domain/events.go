package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDeal    EventType = "deal"
	EventCommand EventType = "command"
	EventWin     EventType = "win"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	GameID    string    `json:"game_id"`
}

// NewEventBase stamps an event of type t for game id.
func NewEventBase(t EventType, gameID string) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t, GameID: gameID}
}

// DealEvent is emitted after a new game has been dealt.
type DealEvent struct {
	EventBase
	StockCount int `json:"stock_count"`
}

// CommandEvent is emitted after every non-blank input line.
type CommandEvent struct {
	EventBase
	Action string `json:"action"`
	Input  string `json:"input"`
	Result Result `json:"result"`
	Err    error  `json:"-"`
}

// WinEvent is emitted once per game, when the last card reaches the foundation.
type WinEvent struct {
	EventBase
	Moves int `json:"moves"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnDeal    func(context.Context, *DealEvent)
	OnCommand func(context.Context, *CommandEvent)
	OnWin     func(context.Context, *WinEvent)
}

// MergeHooks fans every event out to each of hooks in order.
func MergeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnDeal: func(ctx context.Context, e *DealEvent) {
			for _, h := range hooks {
				if h.OnDeal != nil {
					h.OnDeal(ctx, e)
				}
			}
		},
		OnCommand: func(ctx context.Context, e *CommandEvent) {
			for _, h := range hooks {
				if h.OnCommand != nil {
					h.OnCommand(ctx, e)
				}
			}
		},
		OnWin: func(ctx context.Context, e *WinEvent) {
			for _, h := range hooks {
				if h.OnWin != nil {
					h.OnWin(ctx, e)
				}
			}
		},
	}
}
