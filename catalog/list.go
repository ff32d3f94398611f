// SPDX-License-Identifier: EPL-2.0

package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteList prints the brainwave table and every category with its entries.
func (c *Catalog) WriteList(w io.Writer) error {
	bw := bufio.NewWriter(w)
	rule := strings.Repeat("=", 70)

	fmt.Fprintf(bw, "\n%s\nDOCUMENTED FREQUENCIES DATABASE\n%s\n\n", rule, rule)

	fmt.Fprintln(bw, "--- Brainwave States (for Binaural Beats) ---")
	for _, s := range BrainwaveStates {
		fmt.Fprintf(bw, "  %8s (%4g-%3g Hz): %s\n", strings.ToUpper(s.Name), s.Low, s.High, s.Description)
	}

	for _, cat := range c.categories {
		fmt.Fprintf(bw, "\n--- %s ---\n", cat.DisplayName)
		for _, e := range cat.Frequencies {
			if e.Silent() {
				fmt.Fprintf(bw, "  %7s Hz: %s - %s\n", "N/A", e.Name, e.Description)
				continue
			}
			fmt.Fprintf(bw, "  %7.2f Hz: %s\n", e.Hz, e.Description)
		}
	}

	return bw.Flush()
}
