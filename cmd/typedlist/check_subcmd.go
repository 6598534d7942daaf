package main

import (
	"fmt"

	"github.com/inoxlang/typedlist/internal/utils"
	"github.com/spf13/cobra"
)

func (c *cli) newCheckCommand() *cobra.Command {
	var variantName, path string

	cmd := &cobra.Command{
		Use:   "check --variant NAME DOCUMENT...",
		Short: "Check that JSON arrays only contain elements allowed by a variant",
		Long:  "Check that JSON arrays only contain elements allowed by a variant. DOCUMENT can be a glob pattern (e.g. data/**/*.json), documents ending with .gz are decompressed.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.checkDocuments(variantName, path, args)
		},
	}

	cmd.Flags().StringVar(&variantName, VARIANT_FLAG_NAME, "", "name of the variant")
	cmd.Flags().StringVar(&path, PATH_FLAG_NAME, "", "path of the array in each document (e.g. data.items), the whole document by default")
	utils.PanicIfErr(cmd.MarkFlagRequired(VARIANT_FLAG_NAME))
	return cmd
}

// checkDocuments decodes every document as a list of the variant, all documents are checked
// even if some of them are invalid.
func (c *cli) checkDocuments(variantName string, path string, patterns []string) error {
	s, err := c.loadSchema()
	if err != nil {
		return err
	}

	variant, err := s.Variant(variantName)
	if err != nil {
		return err
	}

	filePaths, err := expandDocumentPatterns(patterns)
	if err != nil {
		return err
	}

	var errs []error

	for _, filePath := range filePaths {
		data, err := readDocument(filePath, path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", filePath, err))
			continue
		}

		list, err := variant.DecodeJSON(data)
		if err != nil {
			c.logger.Debug().Str("file", filePath).Err(err).Msg("invalid document")
			errs = append(errs, fmt.Errorf("%s: %w", filePath, err))
			continue
		}

		fmt.Fprintf(c.outW, "%s: ok (%d elements)\n", filePath, list.Len())
	}

	if len(errs) > 0 {
		return utils.CombineErrorsWithPrefixMessage(fmt.Sprintf("%d invalid document(s)", len(errs)), errs...)
	}
	return nil
}
