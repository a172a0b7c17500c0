package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/palettegen/internal/colour"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})

	table.AddRow([]string{"Alice", "30"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Short rows are padded.
	table.AddRow([]string{"Bob"})
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected padded row, got %q", table.rows[1])
	}

	// Long rows are truncated.
	table.AddRow([]string{"Charlie", "25", "Extra"})
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Short", "Very Long Header", "Mid"})
	table.AddRow([]string{"A", "B", "C"})
	table.AddRow([]string{"123456789", "X", "Test"})

	lines := strings.Split(table.Render(), "\n")
	if len(lines) != 5 { // header + separator + 2 rows + trailing newline
		t.Fatalf("Expected 5 lines, got %d: %q", len(lines), lines)
	}

	if !strings.HasPrefix(lines[1], "---------  ----------------  ----") {
		t.Errorf("Unexpected separator line: %q", lines[1])
	}
	for i := 2; i < 4; i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf("Row %d length %d does not match header length %d", i, len(lines[i]), len(lines[0]))
		}
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Expected empty string for table without headers, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"}, // Width less than string length
		{"", 5, "     "},
	}

	for _, tt := range tests {
		result := padRight(tt.input, tt.width)
		if result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}

func TestPaletteTable(t *testing.T) {
	t.Run("image palette", func(t *testing.T) {
		palette := colour.NewPalette([]colour.ColorRecord{
			colour.NewColorRecord(colour.RGB{R: 255}, 3),
			colour.NewColorRecord(colour.RGB{B: 255}, 1),
		})

		output := paletteTable(palette).Render()
		for _, want := range []string{"COUNT", "SHARE", "#ff0000", "rgb(0, 0, 255)", "75.0%", "25.0%"} {
			if !strings.Contains(output, want) {
				t.Errorf("table missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("video palette", func(t *testing.T) {
		palette := colour.NewPalette([]colour.ColorRecord{
			colour.NewColorRecord(colour.RGB{G: 128}, 0).WithFrame(1),
			colour.NewColorRecord(colour.RGB{}, 0).WithFrame(2),
		})

		output := paletteTable(palette).Render()
		if !strings.HasPrefix(output, "FRAME") {
			t.Errorf("expected frame column first:\n%s", output)
		}
		if strings.Contains(output, "COUNT") {
			t.Errorf("video table should not have a count column:\n%s", output)
		}
	})
}

func TestFormatPalette(t *testing.T) {
	palette := colour.NewPalette([]colour.ColorRecord{
		colour.NewColorRecord(colour.RGB{R: 10, G: 20, B: 30}, 2),
		colour.NewColorRecord(colour.RGB{R: 255, G: 255, B: 255}, 1),
	})

	tests := []struct {
		format string
		want   string
	}{
		{formatText, "Color 1: #0a141e (rgb(10, 20, 30))\nColor 2: #ffffff (rgb(255, 255, 255))\n"},
		{formatHex, "#0a141e\n#ffffff\n"},
		{formatRGB, "rgb(10, 20, 30)\nrgb(255, 255, 255)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := formatPalette(palette, tt.format, false)
			if err != nil {
				t.Fatalf("formatPalette() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("formatPalette() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("preview", func(t *testing.T) {
		got, err := formatPalette(palette, formatHex, true)
		if err != nil {
			t.Fatalf("formatPalette() error = %v", err)
		}
		if !strings.Contains(got, "\033[48;2;10;20;30m") {
			t.Errorf("expected ANSI preview block, got %q", got)
		}
	})

	t.Run("empty palette", func(t *testing.T) {
		for _, format := range []string{formatText, formatHex, formatRGB, formatTable} {
			got, err := formatPalette(colour.NewPalette(nil), format, false)
			if err != nil || got != "" {
				t.Errorf("%s: formatPalette(empty) = %q, %v; want empty", format, got, err)
			}
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if err := validateFormat("yaml", imageFormats); err == nil {
			t.Error("validateFormat(yaml) expected error")
		}
		if err := validateFormat(formatHex, videoFormats); err == nil {
			t.Error("validateFormat(hex) for video expected error")
		}
	})
}
