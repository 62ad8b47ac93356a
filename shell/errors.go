package shell

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrUnknownCommand is returned if a line starts with an unknown command.
	ErrUnknownCommand = ierrors.New("unknown command")
	// ErrInvalidArguments is returned if a command is called with the wrong number of arguments.
	ErrInvalidArguments = ierrors.New("invalid arguments")
	// ErrExit is returned by Execute if the line ends the session.
	ErrExit = ierrors.New("exit")
)
