package protocol

import (
	"github.com/spaghettifunk/scenecast/scene"
	"github.com/spaghettifunk/scenecast/wire"
)

/**
 * @brief An ordered batch of commands shipped to the viewer as a single
 * msgpack document with a "commands" list.
 */
type Message struct {
	Commands []Command
}

func NewMessage(commands ...Command) *Message {
	return &Message{Commands: commands}
}

func (m *Message) Serialize() (scene.Record, error) {
	commands := make([]scene.Record, 0, len(m.Commands))
	for _, command := range m.Commands {
		record, err := command.Serialize()
		if err != nil {
			return nil, err
		}
		commands = append(commands, record)
	}
	return scene.Record{"commands": commands}, nil
}

// Pack serializes and encodes the message for the transport. A failing
// command aborts the whole message; nothing partial is emitted.
func (m *Message) Pack() ([]byte, error) {
	document, err := m.Serialize()
	if err != nil {
		return nil, err
	}
	return wire.Marshal(document)
}
