// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/vc-tracker/internal/adapter"
	"github.com/MKhiriev/vc-tracker/internal/config"
	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// readTerminalPassword reads a password without echo.
var readTerminalPassword = term.ReadPassword

// Env carries the dependencies shared by every command.
type Env struct {
	Adapter  adapter.ServerAdapter
	Session  *SessionFile
	Currency string

	In  io.Reader
	Out io.Writer
	Err io.Writer

	Logger *logger.Logger
}

// NewEnv wires an Env for the real terminal.
func NewEnv(cfg config.ClientConfig, serverAdapter adapter.ServerAdapter, log *logger.Logger) *Env {
	return &Env{
		Adapter:  serverAdapter,
		Session:  NewSessionFile(cfg.SessionFile),
		Currency: cfg.Currency,
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Logger:   log,
	}
}

// Register adds every vc-tracker command to c.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(&registerCmd{env: env}, "account")
	c.Register(&loginCmd{env: env}, "account")
	c.Register(&logoutCmd{env: env}, "account")
	c.Register(&whoamiCmd{env: env}, "account")

	c.Register(&listCmd{env: env}, "records")
	c.Register(&showCmd{env: env}, "records")
	c.Register(&addCmd{env: env}, "records")
	c.Register(&editCmd{env: env}, "records")
	c.Register(&deleteCmd{env: env}, "records")

	c.Register(&payCmd{env: env}, "payments")
	c.Register(&unpayCmd{env: env}, "payments")

	c.Register(&metricsCmd{env: env}, "reports")
}

// requireSession loads the saved session and hands its token to the
// adapter. It prints a hint and reports false when nobody is logged in.
func (e *Env) requireSession() (SavedSession, bool) {
	session, err := e.Session.Load()
	if err != nil {
		if errors.Is(err, ErrNotLoggedIn) {
			fmt.Fprintln(e.Err, "Not logged in. Run `login` or `register` first.")
		} else {
			e.Logger.Error().Err(err).Msg("load session")
			fmt.Fprintf(e.Err, "Error: %v\n", err)
		}
		return SavedSession{}, false
	}

	e.Adapter.SetToken(session.Token)
	return session, true
}

// fail reports err for an authenticated command. A 401 means the saved token
// is no longer accepted, so the session is dropped.
func (e *Env) fail(command string, err error) subcommands.ExitStatus {
	e.Logger.Error().Err(err).Str("command", command).Msg("command failed")

	if errors.Is(err, adapter.ErrUnauthorized) {
		if rmErr := e.Session.Remove(); rmErr != nil {
			e.Logger.Error().Err(rmErr).Msg("drop expired session")
		}
		fmt.Fprintln(e.Err, "Session expired or invalid. Run `login` again.")
		return subcommands.ExitFailure
	}

	fmt.Fprintf(e.Err, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// usage prints a usage error for command.
func (e *Env) usage(command string, err error) subcommands.ExitStatus {
	fmt.Fprintf(e.Err, "%s: %v\n", command, err)
	return subcommands.ExitUsageError
}

// readPassword returns flagValue or, when it is empty, prompts for it on
// e.In. On a terminal the input is not echoed.
func (e *Env) readPassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fmt.Fprint(e.Out, "Password: ")

	var password string
	if f, ok := e.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := readTerminalPassword(int(f.Fd()))
		fmt.Fprintln(e.Out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		password = string(raw)
	} else {
		line, err := bufio.NewReader(e.In).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if password == "" {
		return "", errEmptyPassword
	}
	return password, nil
}
