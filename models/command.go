package models

// IncomingCommand holds the fields of a Mattermost outgoing webhook request.
// It is constructed once by the handler and never mutated afterwards.
type IncomingCommand struct {
	Channel  string
	UserName string
	UserID   string
	Text     string
	Token    string
}
