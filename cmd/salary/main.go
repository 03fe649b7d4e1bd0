package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paylens/salary-compare/internal/config"
	"github.com/paylens/salary-compare/internal/currency"
	"github.com/paylens/salary-compare/internal/regimes"
	"github.com/paylens/salary-compare/internal/tax"
)

func main() {
	gross := flag.String("gross", "", "Gross annual salary in EUR (e.g. 100000 or 100,000)")
	keys := flag.String("regimes", "", "Comma-separated regime keys (default: all)")
	list := flag.Bool("list", false, "List available regimes and exit")
	flag.Parse()

	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		cfg = config.Default()
	}

	fetcher := currency.NewClient(currency.Config{
		BaseURL:        cfg.Currency.BaseURL,
		TimeoutSeconds: cfg.Currency.TimeoutSeconds,
	})
	rates := currency.NewService(fetcher, currency.NewMemoryCache(), cfg.Currency.CacheTTL(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	registry, err := regimes.NewRegistry(ctx, rates)
	if err != nil {
		log.Fatalf("Failed to build regime registry: %v", err)
	}

	if *list {
		printRegimes(registry)
		return
	}

	if *gross == "" {
		fmt.Fprintln(os.Stderr, "Usage: salary -gross <amount> [-regimes de,cz_salaried,...]")
		fmt.Fprintln(os.Stderr, "       salary -list")
		os.Exit(2)
	}

	amount, err := tax.ParseAmount(*gross)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var selected []string
	if *keys != "" {
		for _, k := range strings.Split(*keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				selected = append(selected, k)
			}
		}
	}
	if len(selected) == 0 {
		selected = registry.Keys()
	}

	results, err := tax.NewComparator(registry).Compare(amount, selected)
	if err != nil {
		log.Fatalf("%v", err)
	}

	printResults(amount, results)
}

func printRegimes(registry *tax.Registry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTITLE\tCOUNTRY\tTYPE")
	for _, info := range registry.Infos() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Key, info.Title, info.Country, info.EmploymentType)
	}
	w.Flush()
}

func printResults(gross decimal.Decimal, results []tax.Result) {
	fmt.Printf("Gross annual salary: %s EUR\n\n", gross.StringFixed(2))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REGIME\tCOUNTRY\tDEDUCTIONS\tNET (EUR)\tNET %")
	for _, r := range results {
		netPct := "-"
		if gross.IsPositive() {
			netPct = r.NetSalary.Div(gross).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Key, r.Country, r.TotalDeductions.StringFixed(2), r.NetSalary.StringFixed(2), netPct)
	}
	w.Flush()

	for _, r := range results {
		fmt.Printf("\n%s (%s, %s)\n", r.Key, r.Country, r.EmploymentType)
		for _, d := range r.Deductions {
			fmt.Printf("  %-28s %12s  (%s%%)\n", d.Name, d.Amount.StringFixed(2), d.Rate.Mul(decimal.NewFromInt(100)).StringFixed(2))
		}
		fmt.Printf("  %-28s %12s\n", "Net salary", r.NetSalary.StringFixed(2))
	}
}
