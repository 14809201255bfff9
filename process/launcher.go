package process

import (
	"errors"
	"os/exec"

	"github.com/ochinchina/homedash/config"
	log "github.com/sirupsen/logrus"
)

// ErrAppNotFound is returned when the requested name has no entry in the
// Apps section
var ErrAppNotFound = errors.New("App not found")

// Launcher starts applications registered in the Apps configuration section.
// Launches are fire-and-forget: the spawned process is never supervised,
// its exit status is collected and dropped.
type Launcher struct {
	store *config.Store
}

// NewLauncher creates a Launcher on top of the configuration store
func NewLauncher(store *config.Store) *Launcher {
	return &Launcher{store: store}
}

// Launch looks up the named application and starts it without waiting for it
// to exit. The command string is split into an argument vector, it is not
// handed to a shell.
func (l *Launcher) Launch(name string) error {
	command, ok := l.store.Get().Apps[name]
	if !ok {
		return ErrAppNotFound
	}
	args, err := parseCommand(command)
	if err != nil {
		return err
	}
	cmd := exec.Command(args[0])
	if len(args) > 1 {
		cmd.Args = args
	}
	if err := cmd.Start(); err != nil {
		log.WithFields(log.Fields{"app": name, log.ErrorKey: err}).Error("fail to start the app")
		return err
	}
	log.WithFields(log.Fields{"app": name, "pid": cmd.Process.Pid}).Info("app started")
	// collect the exit status so the child does not linger
	go cmd.Wait()
	return nil
}
