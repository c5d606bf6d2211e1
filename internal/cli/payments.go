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

type payCmd struct {
	env    *Env
	amount string
	date   string
	note   string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment received for a record" }
func (*payCmd) Usage() string {
	return `pay -amount <amount> [-date <YYYY-MM-DD>] [-note <text>] <record-id>

  Records a payment. The date defaults to today. For a running committee
  the current month advances by one.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount received.")
	f.StringVar(&c.date, "date", "", "Payment date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *payCmd) payment() (models.NewPayment, error) {
	if c.amount == "" {
		return models.NewPayment{}, fmt.Errorf("%w: -amount", errMissingArgument)
	}
	amount, err := parseAmount("amount", c.amount)
	if err != nil {
		return models.NewPayment{}, err
	}

	date := models.Today()
	if c.date != "" {
		if date, err = models.ParseDate(c.date); err != nil {
			return models.NewPayment{}, err
		}
	}

	return models.NewPayment{Amount: amount, Date: date, Note: c.note}, nil
}

func (c *payCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := recordID(f)
	if err != nil {
		return c.env.usage(c.Name(), err)
	}
	input, err := c.payment()
	if err != nil {
		return c.env.usage(c.Name(), err)
	}
	if _, ok := c.env.requireSession(); !ok {
		return subcommands.ExitFailure
	}

	payment, err := c.env.Adapter.AddPayment(ctx, id, input)
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	fmt.Fprintf(c.env.Out, "Recorded payment %s of %s.\n", payment.ID, c.env.money(payment.Amount))
	return subcommands.ExitSuccess
}

type unpayCmd struct {
	env *Env
}

func (*unpayCmd) Name() string             { return "unpay" }
func (*unpayCmd) Synopsis() string         { return "delete a payment from a record" }
func (*unpayCmd) Usage() string            { return "unpay <record-id> <payment-id>\n" }
func (*unpayCmd) SetFlags(_ *flag.FlagSet) {}

func (c *unpayCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 || f.Arg(0) == "" || f.Arg(1) == "" {
		return c.env.usage(c.Name(), fmt.Errorf("%w: <record-id> <payment-id>", errMissingArgument))
	}
	if _, ok := c.env.requireSession(); !ok {
		return subcommands.ExitFailure
	}

	recordID, paymentID := f.Arg(0), f.Arg(1)
	if err := c.env.Adapter.DeletePayment(ctx, recordID, paymentID); err != nil {
		return c.env.fail(c.Name(), err)
	}

	fmt.Fprintf(c.env.Out, "Deleted payment %s.\n", paymentID)
	return subcommands.ExitSuccess
}
