package tui

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgLoaded is sent when a list has been read from the store.
type MsgLoaded struct {
	Screen string
}

func (MsgLoaded) sealed() {}

// MsgSaved is sent when a form submission has been persisted.
type MsgSaved struct {
	Screen string
	Status string // Status line text
}

func (MsgSaved) sealed() {}

// MsgRemoved is sent when a to-do was deleted or an order cancelled.
type MsgRemoved struct {
	Screen string
	Status string
}

func (MsgRemoved) sealed() {}

// MsgFormError is sent when a submission fails; the form stays open.
type MsgFormError struct {
	Err error
}

func (MsgFormError) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
