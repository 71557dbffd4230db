package room

// Broadcaster pushes room events to connected clients.
type Broadcaster interface {
	Broadcast(roomCode, action string, data interface{})
}
