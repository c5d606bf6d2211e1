// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/vc-tracker/models"
	"github.com/google/subcommands"
)

// authFlags are shared by register and login.
type authFlags struct {
	username string
	password string
}

func (a *authFlags) set(f *flag.FlagSet) {
	f.StringVar(&a.username, "u", "", "Username.")
	f.StringVar(&a.password, "p", "", "Password. Prompted for when omitted.")
}

func (a *authFlags) credentials(env *Env) (models.Credentials, error) {
	if a.username == "" {
		return models.Credentials{}, fmt.Errorf("%w: -u <username>", errMissingArgument)
	}
	password, err := env.readPassword(a.password)
	if err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{Username: a.username, Password: password}, nil
}

// authenticate runs call and saves the resulting session.
func (e *Env) authenticate(ctx context.Context, command string, creds models.Credentials,
	call func(context.Context, models.Credentials) error) subcommands.ExitStatus {
	if err := call(ctx, creds); err != nil {
		e.Logger.Error().Err(err).Str("command", command).Str("username", creds.Username).Msg("authentication failed")
		fmt.Fprintf(e.Err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := e.Session.Save(SavedSession{Username: creds.Username, Token: e.Adapter.Token()}); err != nil {
		fmt.Fprintf(e.Err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type registerCmd struct {
	env *Env
	authFlags
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create an account and log in" }
func (*registerCmd) Usage() string {
	return `register -u <username> [-p <password>]

  Creates a new account and logs in. Passwords need 6 to 72 characters.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	creds, err := c.credentials(c.env)
	if err != nil {
		return c.env.usage(c.Name(), err)
	}

	status := c.env.authenticate(ctx, c.Name(), creds, c.env.Adapter.Register)
	if status == subcommands.ExitSuccess {
		fmt.Fprintf(c.env.Out, "Registered and logged in as %s.\n", creds.Username)
	}
	return status
}

type loginCmd struct {
	env *Env
	authFlags
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in to an existing account" }
func (*loginCmd) Usage() string {
	return `login -u <username> [-p <password>]

  Logs in and remembers the session for the following commands.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *loginCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	creds, err := c.credentials(c.env)
	if err != nil {
		return c.env.usage(c.Name(), err)
	}

	status := c.env.authenticate(ctx, c.Name(), creds, c.env.Adapter.Login)
	if status == subcommands.ExitSuccess {
		fmt.Fprintf(c.env.Out, "Logged in as %s.\n", creds.Username)
	}
	return status
}

type logoutCmd struct {
	env *Env
}

func (*logoutCmd) Name() string             { return "logout" }
func (*logoutCmd) Synopsis() string         { return "forget the saved session" }
func (*logoutCmd) Usage() string            { return "logout\n" }
func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.env.Session.Remove(); err != nil {
		fmt.Fprintf(c.env.Err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.env.Out, "Logged out.")
	return subcommands.ExitSuccess
}

type whoamiCmd struct {
	env *Env
}

func (*whoamiCmd) Name() string             { return "whoami" }
func (*whoamiCmd) Synopsis() string         { return "show the logged-in user" }
func (*whoamiCmd) Usage() string            { return "whoami\n" }
func (*whoamiCmd) SetFlags(_ *flag.FlagSet) {}

func (c *whoamiCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, ok := c.env.requireSession(); !ok {
		return subcommands.ExitFailure
	}

	session, err := c.env.Adapter.Session(ctx)
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	fmt.Fprintln(c.env.Out, session.Username)
	return subcommands.ExitSuccess
}
