// diagnose runs the business diagnostic from the command line.
//
// Usage:
//
//	diagnose run --sector restaurant --answers answers.json [--pretty]
//	diagnose questions --sector retail
//	diagnose solutions
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"diagnostic-backend/internal/bootstrap"
	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/engine"
	"diagnostic-backend/internal/diagnostics/format"
	"diagnostic-backend/internal/diagnostics/knowledge"
	"diagnostic-backend/internal/shared/config"
)

var version = "dev"

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:    "diagnose",
		Usage:   "Small-business digital diagnostic",
		Version: version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "currency",
				Usage:   "Currency symbol for money amounts",
				EnvVars: []string{"DIAG_CURRENCY_SYMBOL"},
			},
			&cli.Float64Flag{
				Name:    "system-cost",
				Usage:   "Monthly system cost used for ROI",
				EnvVars: []string{"DIAG_SYSTEM_MONTHLY_COST"},
			},
		},
		Commands: []*cli.Command{
			runCommand(),
			questionsCommand(),
			solutionsCommand(),
		},
	}
}

func engineFrom(c *cli.Context) *engine.Engine {
	return bootstrap.NewEngine(config.EngineConfig{
		CurrencySymbol:    c.String("currency"),
		SystemMonthlyCost: c.Float64("system-cost"),
	})
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run a diagnostic for an answers file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "sector",
				Aliases: []string{"s"},
				Usage:   "Sector id; defaults to answers.businessType",
			},
			&cli.StringFlag{
				Name:     "answers",
				Aliases:  []string{"a"},
				Usage:    "Path to a JSON object of answers, or - for stdin",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Print a readable summary instead of JSON",
			},
		},
		Action: func(c *cli.Context) error {
			data, err := readAnswers(c.String("answers"))
			if err != nil {
				return err
			}
			raw, err := answers.DecodeObject(data)
			if err != nil {
				return err
			}
			sector := c.String("sector")
			if sector == "" {
				sector = answers.BusinessType(raw)
			}

			e := engineFrom(c)
			res, err := e.ProcessRaw(sector, raw)
			if err != nil {
				return err
			}
			if c.Bool("pretty") {
				printSummary(c.App.Writer, res, e.Config().CurrencySymbol)
				return nil
			}
			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
}

func questionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "questions",
		Usage: "List the questionnaire for a sector",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sector", Aliases: []string{"s"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			sector, err := knowledge.ParseSector(c.String("sector"))
			if err != nil {
				return err
			}
			qs, err := engineFrom(c).Knowledge().QuestionsForSector(sector)
			if err != nil {
				return err
			}
			w := c.App.Writer
			for _, q := range qs {
				fmt.Fprintf(w, "%s [%s] %s\n", q.ID, q.Kind, q.Prompt)
				for _, o := range q.Options {
					fmt.Fprintf(w, "    %-20s %s\n", o.Value, o.Label)
				}
			}
			return nil
		},
	}
}

func solutionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "solutions",
		Usage: "List the solution catalog",
		Action: func(c *cli.Context) error {
			for _, s := range engineFrom(c).Knowledge().Solutions() {
				fmt.Fprintf(c.App.Writer, "%-28s %s (%s)\n", s.ID, s.Title, strings.Join(s.Modules, ", "))
			}
			return nil
		},
	}
}

func readAnswers(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	return data, nil
}

func printSummary(w io.Writer, res engine.Result, currency string) {
	s := res.Summary
	fmt.Fprintf(w, "Sector:          %s\n", res.BusinessType)
	fmt.Fprintf(w, "Urgency:         %s\n", res.Urgency)
	fmt.Fprintf(w, "Recommendation:  %s (%d)\n", res.Recommendation.Primary.Title, res.Recommendation.Primary.MatchScore)
	fmt.Fprintf(w, "Current cost:    %s h/week, %s/month\n",
		format.Hours(s.TotalCurrentCost.TimeHours), format.Money(currency, s.TotalCurrentCost.MoneyCost))
	fmt.Fprintf(w, "Savings:         %s h/week, %s/month\n",
		format.Hours(s.TotalPotentialSavings.TimeHours), format.Money(currency, s.TotalPotentialSavings.MoneyCost))
	fmt.Fprintf(w, "ROI:             %s\n", format.Percent(s.ROI))
	for _, op := range res.Opportunities {
		fmt.Fprintf(w, "  * %s\n", op.Title)
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning: %s=%s (%s)\n", warn.QuestionID, warn.Value, warn.Reason)
	}
}
