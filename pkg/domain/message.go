package domain

// MessageKind tells the host how to present a Message.
type MessageKind string

const (
	// MessageInfo is plain feedback, e.g. "New deal.".
	MessageInfo MessageKind = "info"
	// MessageError reports a rejected command. The game is unchanged.
	MessageError MessageKind = "error"
	// MessageHelp carries markdown meant for a content renderer.
	MessageHelp MessageKind = "help"
	// MessageBoard carries an already rendered board.
	MessageBoard MessageKind = "board"
	// MessageSystem is a meta-message: welcome, exit, win.
	MessageSystem MessageKind = "system"
)

// Message is one piece of output for the player.
type Message struct {
	Kind MessageKind `json:"kind"`
	Text string      `json:"text"`
}

// Result classifies how a command ended.
type Result string

const (
	ResultOK          Result = "ok"
	ResultRejected    Result = "rejected"
	ResultInvalid     Result = "invalid"
	ResultUnavailable Result = "unavailable"
)

// Outcome is what the host needs to know after one input line.
type Outcome struct {
	// Action is the name of the parsed action.
	Action string
	Result Result
	// Messages are shown in order, before the board.
	Messages []Message
	// ShowBoard asks the host to redraw the board.
	ShowBoard bool
	// Won is set on the command that completed the foundation.
	Won bool
	// Quit asks the host to stop reading input.
	Quit bool
}

// Info appends an info message.
func (o *Outcome) Info(text string) {
	o.Messages = append(o.Messages, Message{Kind: MessageInfo, Text: text})
}

// Error appends an error message.
func (o *Outcome) Error(text string) {
	o.Messages = append(o.Messages, Message{Kind: MessageError, Text: text})
}

// System appends a system message.
func (o *Outcome) System(text string) {
	o.Messages = append(o.Messages, Message{Kind: MessageSystem, Text: text})
}
