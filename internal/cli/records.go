// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/vc-tracker/models"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// recordFlags holds the raw values of the record fields accepted by add and
// edit.
type recordFlags struct {
	name      string
	principal string
	rate      string
	start     string
	members   int
	month     int
	left      int
	active    bool
}

func (r *recordFlags) set(f *flag.FlagSet) {
	f.StringVar(&r.name, "name", "", "Record name.")
	f.StringVar(&r.principal, "principal", "", "Principal amount, e.g. 10000 or 2500.50.")
	f.StringVar(&r.rate, "rate", "", "Annual interest rate in percent, e.g. 5.")
	f.StringVar(&r.start, "start", "", "Start date (YYYY-MM-DD).")
	f.IntVar(&r.members, "members", 0, "Committee members (enables installment tracking).")
	f.IntVar(&r.month, "month", 0, "Current committee month.")
	f.IntVar(&r.left, "left", 0, "Committee months left.")
	f.BoolVar(&r.active, "active", false, "Whether the committee is still running.")
}

func parseAmount(flagName, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid -%s %q: %w", flagName, value, err)
	}
	return d, nil
}

func (r *recordFlags) newRecord() (models.NewRecord, error) {
	if r.name == "" || r.principal == "" || r.rate == "" {
		return models.NewRecord{}, fmt.Errorf("%w: -name, -principal and -rate are required", errMissingArgument)
	}

	principal, err := parseAmount("principal", r.principal)
	if err != nil {
		return models.NewRecord{}, err
	}
	rate, err := parseAmount("rate", r.rate)
	if err != nil {
		return models.NewRecord{}, err
	}

	start := models.Today()
	if r.start != "" {
		if start, err = models.ParseDate(r.start); err != nil {
			return models.NewRecord{}, err
		}
	}

	return models.NewRecord{
		Name:            r.name,
		PrincipalAmount: principal,
		InterestRate:    rate,
		StartDate:       start,
		NumMembers:      r.members,
		CurrentMonth:    r.month,
		MonthsLeft:      r.left,
		IsActive:        r.active,
	}, nil
}

// update builds a RecordUpdate holding only the flags present in f.
func (r *recordFlags) update(f *flag.FlagSet) (models.RecordUpdate, error) {
	var (
		update models.RecordUpdate
		err    error
	)

	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "name":
			update.Name = &r.name
		case "principal":
			var d decimal.Decimal
			if d, err = parseAmount("principal", r.principal); err == nil {
				update.PrincipalAmount = &d
			}
		case "rate":
			var d decimal.Decimal
			if d, err = parseAmount("rate", r.rate); err == nil {
				update.InterestRate = &d
			}
		case "start":
			var d models.Date
			if d, err = models.ParseDate(r.start); err == nil {
				update.StartDate = &d
			}
		case "members":
			update.NumMembers = &r.members
		case "month":
			update.CurrentMonth = &r.month
		case "left":
			update.MonthsLeft = &r.left
		case "active":
			update.IsActive = &r.active
		}
	})
	if err != nil {
		return models.RecordUpdate{}, err
	}
	if update.IsEmpty() {
		return models.RecordUpdate{}, errNothingToUpdate
	}

	return update, nil
}

// recordID returns the first positional argument.
func recordID(f *flag.FlagSet) (string, error) {
	if f.NArg() < 1 || f.Arg(0) == "" {
		return "", fmt.Errorf("%w: <record-id>", errMissingArgument)
	}
	return f.Arg(0), nil
}

type listCmd struct {
	env *Env
}

func (*listCmd) Name() string             { return "list" }
func (*listCmd) Synopsis() string         { return "list your VC records" }
func (*listCmd) Usage() string            { return "list\n" }
func (*listCmd) SetFlags(_ *flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, ok := c.env.requireSession(); !ok {
		return subcommands.ExitFailure
	}

	records, err := c.env.Adapter.ListRecords(ctx)
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	c.env.printRecords(records)
	return subcommands.ExitSuccess
}

type showCmd struct {
	env *Env
}

func (*showCmd) Name() string             { return "show" }
func (*showCmd) Synopsis() string         { return "show one record with its payments" }
func (*showCmd) Usage() string            { return "show <record-id>\n" }
func (*showCmd) SetFlags(_ *flag.FlagSet) {}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := recordID(f)
	if err != nil {
		return c.env.usage(c.Name(), err)
	}
	if _, ok := c.env.requireSession(); !ok {
		return subcommands.ExitFailure
	}

	record, err := c.env.Adapter.GetRecord(ctx, id)
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	c.env.printRecord(record)
	return subcommands.ExitSuccess
}

type addCmd struct {
	env *Env
	recordFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a VC record" }
func (*addCmd) Usage() string {
	return `add -name <name> -principal <amount> -rate <percent> [-start <YYYY-MM-DD>]
    [-members <n> -month <n> -left <n> -active]

  Adds a record. The start date defaults to today. Committee fields are
  optional; with -members set, metrics include expected installments.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input, err := c.newRecord()
	if err != nil {
		return c.env.usage(c.Name(), err)
	}
	if _, ok := c.env.requireSession(); !ok {
		return subcommands.ExitFailure
	}

	record, err := c.env.Adapter.AddRecord(ctx, input)
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	fmt.Fprintf(c.env.Out, "Added record %s.\n", record.ID)
	return subcommands.ExitSuccess
}

type editCmd struct {
	env *Env
	recordFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of a record" }
func (*editCmd) Usage() string {
	return `edit [-name <name>] [-principal <amount>] [-rate <percent>] [-start <YYYY-MM-DD>]
    [-members <n>] [-month <n>] [-left <n>] [-active=<bool>] <record-id>

  Only the flags given are changed.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := recordID(f)
	if err != nil {
		return c.env.usage(c.Name(), err)
	}
	update, err := c.update(f)
	if err != nil {
		return c.env.usage(c.Name(), err)
	}
	if _, ok := c.env.requireSession(); !ok {
		return subcommands.ExitFailure
	}

	if _, err = c.env.Adapter.EditRecord(ctx, id, update); err != nil {
		return c.env.fail(c.Name(), err)
	}

	fmt.Fprintf(c.env.Out, "Updated record %s.\n", id)
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	env *Env
}

func (*deleteCmd) Name() string             { return "delete" }
func (*deleteCmd) Synopsis() string         { return "delete a record and its payments" }
func (*deleteCmd) Usage() string            { return "delete <record-id>\n" }
func (*deleteCmd) SetFlags(_ *flag.FlagSet) {}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := recordID(f)
	if err != nil {
		return c.env.usage(c.Name(), err)
	}
	if _, ok := c.env.requireSession(); !ok {
		return subcommands.ExitFailure
	}

	if err = c.env.Adapter.DeleteRecord(ctx, id); err != nil {
		return c.env.fail(c.Name(), err)
	}

	fmt.Fprintf(c.env.Out, "Deleted record %s.\n", id)
	return subcommands.ExitSuccess
}
