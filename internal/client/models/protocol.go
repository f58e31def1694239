package models

// Protocol is the data source the operator picks after authentication.
type Protocol int

const (
	ProtocolOnline Protocol = iota
	ProtocolUser
	ProtocolQuit
)

// Protocols lists every menu option in display order.
var Protocols = []Protocol{ProtocolOnline, ProtocolUser, ProtocolQuit}

func (p Protocol) String() string {
	switch p {
	case ProtocolOnline:
		return "Online"
	case ProtocolUser:
		return "User"
	case ProtocolQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ProtocolNames returns the menu labels in display order.
func ProtocolNames() []string {
	names := make([]string, len(Protocols))
	for i, p := range Protocols {
		names[i] = p.String()
	}
	return names
}
