package room

// Broadcaster delivers one outbound message to one connection. Sends
// to connections that no longer exist are silently dropped.
type Broadcaster interface {
	Send(connID string, action string, data interface{})
}
