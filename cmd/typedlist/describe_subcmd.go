package main

import (
	"fmt"
	"slices"

	"github.com/inoxlang/typedlist/internal/utils"
	"github.com/inoxlang/typedlist/kind"
	"github.com/inoxlang/typedlist/typedlist"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
)

func (c *cli) newDescribeCommand() *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the kinds and the variants declared by the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSchema()
			if err != nil {
				return err
			}

			taxonomy := s.Taxonomy()
			for _, k := range taxonomy.Kinds() {
				generalizations := utils.MapSlice(taxonomy.Generalizations(k), func(e *kind.NominalKind) string {
					return e.Name()
				})
				if len(generalizations) == 0 {
					fmt.Fprintf(c.outW, "kind %s\n", k.Name())
				} else {
					fmt.Fprintf(c.outW, "kind %s specializes %v\n", k.Name(), generalizations)
				}
			}

			variants := s.Variants()
			if sorted {
				slices.SortStableFunc(variants, compareVariantNames)
			}

			for _, v := range variants {
				c.describeVariant(v)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sorted, SORT_FLAG_NAME, false, "sort the variants by name (natural order) instead of declaration order")
	return cmd
}

func compareVariantNames(a, b *typedlist.Variant) int {
	switch {
	case natural.Less(a.Name(), b.Name()):
		return -1
	case natural.Less(b.Name(), a.Name()):
		return 1
	}
	return 0
}

func (c *cli) describeVariant(v *typedlist.Variant) {
	allowList := kind.Format(v.AllowList())

	if parent := v.Parent(); parent != nil {
		fmt.Fprintf(c.outW, "variant %s derives %s: %s\n", v.Name(), parent.Name(), allowList)
	} else {
		fmt.Fprintf(c.outW, "variant %s: %s\n", v.Name(), allowList)
	}
}
