package domain

// ClientMessage is sent by websocket clients.
type ClientMessage struct {
	Type       string  `json:"type"` // "init", "request_move"
	JWT        string  `json:"jwt,omitempty"`
	RequestID  string  `json:"request_id,omitempty"`
	Board      [][]int `json:"board,omitempty"`
	Side       string  `json:"side,omitempty"`
	Suggestion string  `json:"suggestion,omitempty"`
}

// ServerMessage is sent to websocket clients.
type ServerMessage struct {
	Type      string      `json:"type"` // "ready", "ai_move", "error"
	RequestID string      `json:"request_id,omitempty"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}
