package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fxconverter/internal/domain"
	"fxconverter/internal/rate"

	"github.com/shopspring/decimal"
)

const codesPerRow = 8

// Run prints the available currencies of snapshot and then converts amounts read from in
// until "quit", "exit" or end of input.
func Run(in io.Reader, out io.Writer, snapshot *domain.Snapshot) error {
	base := snapshot.Base()
	rates := snapshot.Rates()
	w := bufio.NewWriter(out)
	defer w.Flush()

	printHeader(w, snapshot)

	scanner := bufio.NewScanner(in)
	readLine := func(prompt string) (string, bool) {
		fmt.Fprint(w, prompt)
		if err := w.Flush(); err != nil {
			return "", false
		}
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		rawAmount, ok := readLine(fmt.Sprintf("Enter amount in %s (e.g. 1000): ", base))
		if !ok {
			break
		}
		if rawAmount == "" {
			continue
		}
		if strings.EqualFold(rawAmount, "quit") || strings.EqualFold(rawAmount, "exit") {
			fmt.Fprintln(w, "Goodbye!")
			return w.Flush()
		}
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			fmt.Fprintln(w, "Invalid amount. Please enter a number.")
			continue
		}

		to, ok := readLine("To currency (e.g. USD): ")
		if !ok {
			break
		}
		to = rate.NormalizeCode(to)
		if to == "" {
			continue
		}
		if !snapshot.Has(to) {
			fmt.Fprintf(w, "Unknown currency: %s. Try again.\n", to)
			continue
		}

		result, err := rate.Convert(amount.InexactFloat64(), base, to, base, rates)
		if err != nil {
			fmt.Fprintf(w, "Conversion failed: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "-> %s %s = %s %s\n\n", amount.StringFixed(4), base, decimal.NewFromFloat(result).StringFixed(4), to)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return w.Flush()
}

func printHeader(w io.Writer, snapshot *domain.Snapshot) {
	codes := snapshot.Codes()
	fmt.Fprintf(w, "\nAvailable currencies (base: %s):\n", snapshot.Base())
	for start := 0; start < len(codes); start += codesPerRow {
		end := min(start+codesPerRow, len(codes))
		fmt.Fprintf(w, "  %s\n", strings.Join(codes[start:end], "  "))
	}
	fmt.Fprintf(w, "\nRates as of: %s\n", snapshot.Date())
	fmt.Fprintln(w, "\nType 'quit' or 'exit' or Ctrl+C to quit")
	fmt.Fprintln(w)
}
