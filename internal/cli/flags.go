package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/beurling/pkg/factor"
)

// pick returns the flag value when it was set on the command line and the
// configured value otherwise.
func pick[T any](cmd *cobra.Command, name string, flag, configured T) T {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return configured
}

// parseSerials reads whitespace or semicolon separated serial factorizations,
// e.g. "0,0; 0,1; 1,1; 0,2".
func parseSerials(s string) ([]factor.Factorization, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]factor.Factorization, 0, len(fields))
	for _, f := range fields {
		v, err := factor.Parse(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
