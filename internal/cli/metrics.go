// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"flag"

	"github.com/MKhiriev/vc-tracker/models"
	"github.com/google/subcommands"
)

type metricsCmd struct {
	env  *Env
	asOf string
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "show interest, profit and savings of a record" }
func (*metricsCmd) Usage() string {
	return `metrics [-as-of <YYYY-MM-DD>] <record-id>

  Computes interest = principal x rate / 100 x years and
  profit = payments + interest - principal, as of today unless -as-of is set.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "as-of", "", "Evaluation date (YYYY-MM-DD). Defaults to the server's today.")
}

func (c *metricsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := recordID(f)
	if err != nil {
		return c.env.usage(c.Name(), err)
	}

	var asOf models.Date
	if c.asOf != "" {
		if asOf, err = models.ParseDate(c.asOf); err != nil {
			return c.env.usage(c.Name(), err)
		}
	}
	if _, ok := c.env.requireSession(); !ok {
		return subcommands.ExitFailure
	}

	metrics, err := c.env.Adapter.Metrics(ctx, id, asOf)
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	c.env.printMetrics(metrics)
	return subcommands.ExitSuccess
}
