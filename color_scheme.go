package lineedit

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors the bundled terminal front end uses for
// the prompt line and the completion menu.
type ColorScheme struct {
	Name      string `json:"name"`
	Prefix    Color  `json:"prefix"`
	Input     Color  `json:"input"`
	Candidate Color  `json:"candidate"`
	Selected  Color  `json:"selected"`
}

// Color represents an RGB color with optional bold formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with a green prefix and white
// input text.
var ThemeDefault = &ColorScheme{
	Name:      "default",
	Prefix:    Color{R: 0, G: 255, B: 0, Bold: true},
	Input:     Color{R: 255, G: 255, B: 255, Bold: true},
	Candidate: Color{R: 200, G: 200, B: 200},
	Selected:  Color{R: 0, G: 255, B: 255, Bold: true},
}

// ThemeDark is a dark theme with a light blue prefix.
var ThemeDark = &ColorScheme{
	Name:      "Dark",
	Prefix:    Color{R: 102, G: 217, B: 239, Bold: true},
	Input:     Color{R: 248, G: 248, B: 242},
	Candidate: Color{R: 189, G: 147, B: 249},
	Selected:  Color{R: 80, G: 250, B: 123, Bold: true},
}

// ThemeLight is a light theme with a blue prefix and dark gray text.
var ThemeLight = &ColorScheme{
	Name:      "Light",
	Prefix:    Color{R: 0, G: 119, B: 187, Bold: true},
	Input:     Color{R: 36, G: 41, B: 46},
	Candidate: Color{R: 88, G: 96, B: 105},
	Selected:  Color{R: 40, G: 167, B: 69, Bold: true},
}

// ThemeMonokai is the Monokai color scheme.
var ThemeMonokai = &ColorScheme{
	Name:      "Monokai",
	Prefix:    Color{R: 249, G: 38, B: 114, Bold: true},
	Input:     Color{R: 248, G: 248, B: 242},
	Candidate: Color{R: 166, G: 226, B: 46},
	Selected:  Color{R: 102, G: 217, B: 239, Bold: true},
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string
	if c.Bold {
		codes = append(codes, "1")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
