package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <data-file>",
	Short: "Validate resume data without rendering",
	Long:  "Checks a resume JSON file against the schema and required fields of the selected template's layout, and optionally against an extra JSON Schema.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var (
	validateTemplate string
	validateSchema   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateTemplate, "template", "t", "", "Template id whose layout rules apply")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Additional JSON Schema file the data must satisfy")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	_, _, gen, err := setup(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if validateSchema != "" {
		if err := schemas.ValidateJSON(validateSchema, args[0]); err != nil {
			printSchemaError(printer, err)
			return err
		}
	}
	if _, err := gen.Validate(validateTemplate, data); err != nil {
		printValidationError(printer, err)
		return err
	}
	printer.PrintFieldErrors(nil, nil)
	return nil
}

// printValidationError prints the field list of a resume validation error; other errors
// are left to the caller
func printValidationError(p *observability.Printer, err error) {
	var dataErr *resume.ValidationError
	var missingErr *resume.MissingFieldError
	switch {
	case errors.As(err, &missingErr):
		p.PrintFieldErrors(missingErr.Fields, nil)
	case errors.As(err, &dataErr):
		fields := make([]string, 0, len(dataErr.Fields))
		messages := make([]string, 0, len(dataErr.Fields))
		for _, f := range dataErr.Fields {
			fields = append(fields, f.Field)
			messages = append(messages, f.Message)
		}
		if len(fields) == 0 {
			fields = append(fields, "data")
			messages = append(messages, dataErr.Message)
		}
		p.PrintFieldErrors(fields, messages)
	}
}

// printSchemaError prints the field list of a schema validation error
func printSchemaError(p *observability.Printer, err error) {
	var schemaErr *schemas.ValidationError
	if !errors.As(err, &schemaErr) {
		return
	}
	fields := make([]string, 0, len(schemaErr.Errors))
	messages := make([]string, 0, len(schemaErr.Errors))
	for _, fe := range schemaErr.Errors {
		fields = append(fields, fe.Field)
		messages = append(messages, fe.Message)
	}
	p.PrintFieldErrors(fields, messages)
}
