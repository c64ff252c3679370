package core

// DefaultName is the display name of a client that has not introduced itself yet.
const DefaultName = "Anonymous"

// Client is a connected chat participant as seen by the core layer.
// The room is fixed at connect time; there is no room-switching command,
// so changing rooms means opening a new connection.
type Client struct {
	Conn Conn
	Name string
	Room string
}

// NewClient constructs the session record for a freshly opened connection.
func NewClient(conn Conn, room string) *Client {
	return &Client{
		Conn: conn,
		Name: DefaultName,
		Room: room,
	}
}
