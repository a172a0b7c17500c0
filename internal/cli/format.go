package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/palettegen/internal/colour"
)

// Output formats.
const (
	formatText  = "text"
	formatHex   = "hex"
	formatRGB   = "rgb"
	formatTable = "table"
	formatJSON  = "json"
)

const previewWidth = 8

var (
	imageFormats = []string{formatText, formatHex, formatRGB, formatTable, formatJSON}
	videoFormats = []string{formatText, formatTable, formatJSON}
)

// validateFormat checks format against the formats a command supports.
func validateFormat(format string, supported []string) error {
	if !slices.Contains(supported, format) {
		return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(supported, ", "))
	}
	return nil
}

// formatPalette formats the palette according to the specified format.
// An empty palette formats as an empty string except in JSON.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case formatText:
		return formatLines(palette, showPreview, func(int, colour.ColorRecord) string { return "" }), nil
	case formatHex:
		return formatLines(palette, showPreview, func(_ int, r colour.ColorRecord) string { return r.Hex() }), nil
	case formatRGB:
		return formatLines(palette, showPreview, func(_ int, r colour.ColorRecord) string { return r.RGB() }), nil
	case formatTable:
		if palette.Len() == 0 {
			return "", nil
		}
		return paletteTable(palette).Render(), nil
	case formatJSON:
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatLines renders one line per record. An empty field value falls back to
// the record's text export line.
func formatLines(palette *colour.Palette, showPreview bool, field func(int, colour.ColorRecord) string) string {
	if palette.Len() == 0 {
		return ""
	}

	textLines := strings.Split(palette.Text(), "\n")

	var b strings.Builder
	for i, r := range palette.All() {
		line := field(i, r)
		if line == "" {
			line = textLines[i]
		}
		if showPreview {
			line = colour.FormatRecordWithPreview(r, line, previewWidth)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// paletteTable lays the palette out as a table. Video palettes get a frame
// column, image palettes get count and share columns.
func paletteTable(palette *colour.Palette) *Table {
	if palette.Records[0].Frame() > 0 {
		table := NewTable([]string{"FRAME", "HEX", "RGB"})
		for _, r := range palette.All() {
			table.AddRow([]string{strconv.Itoa(r.Frame()), r.Hex(), r.RGB()})
		}
		return table
	}

	stats := palette.Stats()
	table := NewTable([]string{"#", "HEX", "RGB", "COUNT", "SHARE"})
	for i, r := range palette.All() {
		share := 0.0
		if i < len(stats.Shares) {
			share = stats.Shares[i]
		}
		table.AddRow([]string{
			strconv.Itoa(i + 1),
			r.Hex(),
			r.RGB(),
			strconv.Itoa(r.Count()),
			strconv.FormatFloat(share*100, 'f', 1, 64) + "%",
		})
	}
	return table
}

// writeOutput writes output to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, logger hclog.Logger, path, output string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), output)
		return err
	}

	logger.Debug("writing output", "path", path)
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil { // #nosec G306 - Palette output is not sensitive
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("wrote palette", "path", path)
	return nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
