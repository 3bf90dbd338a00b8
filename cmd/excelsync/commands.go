package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/excelsync-go/pkg/excelsync"
	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
	"github.com/ukaji3/excelsync-go/pkg/excelsync/output"
	"github.com/ukaji3/excelsync-go/pkg/excelsync/schema"
	"gopkg.in/yaml.v3"
)

func newExtractCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
		sheetsDir  string
	)
	cmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract the workbook structure as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openWorkbook(args[0])
			if err != nil {
				return err
			}
			doc, err := s.ExtractStructure(0)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}

			jsonData, err := output.ToJSON(doc, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			if outputPath != "" || sheetsDir == "" {
				if err := writeOutput(cmd.OutOrStdout(), outputPath, jsonData); err != nil {
					return err
				}
			}

			if sheetsDir != "" {
				if err := writeSheetFiles(doc, sheetsDir, pretty); err != nil {
					return fmt.Errorf("failed to write sheet files: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var against string
	cmd := &cobra.Command{
		Use:   "validate [input.xlsx]",
		Short: "Check a workbook against a recorded structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openWorkbook(args[0])
			if err != nil {
				return err
			}

			var expected *models.Document
			if against != "" {
				expected, err = excelsync.LoadStructureFile(against)
				if err != nil {
					return err
				}
			}
			ok, issues, err := s.ValidateStructure(expected, 0)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ok {
				fmt.Fprintln(out, "Structure is valid")
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintf(out, "- %s\n", issue)
			}
			return fmt.Errorf("structure does not match: %d issue(s)", len(issues))
		},
	}
	cmd.Flags().StringVar(&against, "against", "", "Structure file (JSON or YAML) to validate against")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		outputPath string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "export [input.xlsx]",
		Short: "Export sheet contents together with the structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openWorkbook(args[0])
			if err != nil {
				return err
			}
			export, err := s.ExportData(0)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			data, err := encodeExport(export, format)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), outputPath, data)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml, json, toon")
	return cmd
}

func newTemplateCmd() *cobra.Command {
	var (
		outputPath string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "template [structure.json]",
		Short: "Generate an example data document from a structure file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := excelsync.LoadStructureFile(args[0])
			if err != nil {
				return err
			}
			data, err := encodeExport(schema.Template(doc), format)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), outputPath, data)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml, json, toon")
	return cmd
}

func newJSONSchemaCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
	)
	cmd := &cobra.Command{
		Use:   "json-schema [structure.json]",
		Short: "Convert a structure file to a JSON Schema for its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := excelsync.LoadStructureFile(args[0])
			if err != nil {
				return err
			}
			data, err := output.SchemaToJSON(schema.ToJSONSchema(doc), pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd.OutOrStdout(), outputPath, data)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	return cmd
}

func newValidateDataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-data [structure.json] [data.yaml]",
		Short: "Check a data document against the schema of a structure file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := excelsync.LoadStructureFile(args[0])
			if err != nil {
				return err
			}
			data, err := readDataFile(args[1])
			if err != nil {
				return err
			}
			messages, err := schema.ValidateData(doc, data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(messages) == 0 {
				fmt.Fprintln(out, "Data is valid")
				return nil
			}
			for _, msg := range messages {
				fmt.Fprintf(out, "- %s\n", msg)
			}
			return fmt.Errorf("data does not match schema: %d error(s)", len(messages))
		},
	}
}

func encodeExport(export *models.DataExport, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return output.ToYAML(export)
	case "json":
		return output.ExportToJSON(export, true)
	case "toon":
		s, err := output.ToTOON(export)
		if err != nil {
			return nil, err
		}
		return []byte(s + "\n"), nil
	}
	return nil, fmt.Errorf("invalid format: %s (must be yaml, json or toon)", format)
}

// readDataFile loads a YAML or JSON data document. A data export is
// accepted as well; only its data section is used.
func readDataFile(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if data, ok := doc["data"]; ok {
		return data, nil
	}
	return doc, nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(ensureNewline(data))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("output written", "path", path, "bytes", len(data))
	return nil
}

func ensureNewline(data []byte) []byte {
	if len(data) == 0 || data[len(data)-1] == '\n' {
		return data
	}
	return append(data, '\n')
}

func writeSheetFiles(doc *models.Document, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheetName := range doc.Sheets.Keys() {
		sheet, _ := doc.Sheets.Get(sheetName)
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
