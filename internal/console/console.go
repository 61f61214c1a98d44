// Package console owns the terminal mode for the lifetime of a game.
package console

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

var ErrTerminalSetup = errors.New("terminal setup failed")

// Mode is the part of golang.org/x/term the console needs.
type Mode interface {
	IsTerminal(fd int) bool
	MakeRaw(fd int) (*term.State, error)
	Restore(fd int, state *term.State) error
	GetSize(fd int) (width, height int, err error)
}

type systemMode struct{}

func (systemMode) IsTerminal(fd int) bool                  { return term.IsTerminal(fd) }
func (systemMode) MakeRaw(fd int) (*term.State, error)     { return term.MakeRaw(fd) }
func (systemMode) Restore(fd int, state *term.State) error { return term.Restore(fd, state) }
func (systemMode) GetSize(fd int) (int, int, error)        { return term.GetSize(fd) }

// Requirements is the smallest terminal the game can be drawn in.
type Requirements struct {
	MinWidth  int
	MinHeight int
}

// Console is a terminal held in raw mode. Release puts it back.
type Console struct {
	fd       int
	mode     Mode
	state    *term.State
	released bool
}

// Acquire switches f into raw mode and checks its size. If anything fails
// after raw mode was entered, the original mode is restored before returning.
func Acquire(f *os.File, req Requirements) (*Console, error) {
	return acquire(systemMode{}, int(f.Fd()), req)
}

func acquire(mode Mode, fd int, req Requirements) (_ *Console, err error) {
	if !mode.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: input is not a terminal", ErrTerminalSetup)
	}

	state, err := mode.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: raw mode: %v", ErrTerminalSetup, err)
	}
	c := &Console{fd: fd, mode: mode, state: state}
	defer func() {
		if err != nil {
			if rerr := c.Release(); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}
	}()

	width, height, err := mode.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: size: %v", ErrTerminalSetup, err)
	}
	if width < req.MinWidth || height < req.MinHeight {
		return nil, fmt.Errorf("%w: terminal is %dx%d, need at least %dx%d",
			ErrTerminalSetup, width, height, req.MinWidth, req.MinHeight)
	}

	return c, nil
}

// Release restores the mode the terminal had before Acquire. Calling it more
// than once is harmless.
func (c *Console) Release() error {
	if c == nil || c.released {
		return nil
	}
	c.released = true
	if err := c.mode.Restore(c.fd, c.state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// Released reports whether Release has run.
func (c *Console) Released() bool {
	return c.released
}
