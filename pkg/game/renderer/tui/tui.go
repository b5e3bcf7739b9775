package tui

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazewalk/pkg/engine/input"
	"mazewalk/pkg/engine/terminal"
	"mazewalk/pkg/game/renderer"
	"mazewalk/pkg/maze/generator"
)

// Glyphs used when colour is disabled, one per layer
var plainGlyphs = map[renderer.Layer]string{
	renderer.LayerWall:         "██",
	renderer.LayerPassage:      "  ",
	renderer.LayerPath:         "··",
	renderer.LayerSolveCurrent: "::",
	renderer.LayerSolution:     "<>",
	renderer.LayerStart:        "SS",
	renderer.LayerEnd:          "EE",
}

// StatusLines is the number of terminal lines drawn below the maze
const StatusLines = 12

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out *bufio.Writer

	// Plain draws with glyphs and no escape codes
	Plain bool

	layerStyles      map[renderer.Layer]color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to w
func New(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: bufio.NewWriter(w)}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.layerStyles = map[renderer.Layer]color.Style{
		renderer.LayerWall:         {color.BgBlack},
		renderer.LayerPassage:      {color.BgWhite},
		renderer.LayerPath:         {color.BgLightBlue},
		renderer.LayerSolveCurrent: {color.BgYellow},
		renderer.LayerSolution:     {color.BgLightYellow},
		renderer.LayerStart:        {color.BgRed},
		renderer.LayerEnd:          {color.BgBlue},
	}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
	return nil
}

// Clear moves the cursor home and clears the screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, "\x1b[H\x1b[2J")
}

// Home moves the cursor to the top left without clearing, so animation
// frames overwrite each other in place.
func (t *TUIRenderer) Home() {
	fmt.Fprint(t.out, "\x1b[H")
}

// Close flushes pending output
func (t *TUIRenderer) Close() error {
	return t.out.Flush()
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.paint(t.colorItem, operand)
		case "ACTION":
			val = t.paint(t.colorActionShort, operand[0:1]) + t.paint(t.colorAction, operand[1:])
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// RenderFrame draws the maze, the status line, the key help and the
// messages pane, then flushes.
func (t *TUIRenderer) RenderFrame(f renderer.Frame) error {
	t.printMaze(f)
	t.printStatusBar(f)
	t.printPossibleActions()
	t.printMessagesPane(f)
	return t.out.Flush()
}

// renderCell returns the string drawn for one cell
func (t *TUIRenderer) renderCell(l renderer.Layer) string {
	if t.Plain {
		return plainGlyphs[l]
	}
	return t.layerStyles[l].Sprint("  ")
}

// paint applies a style unless the renderer is plain
func (t *TUIRenderer) paint(s color.Style, text string) string {
	if t.Plain {
		return text
	}
	return s.Sprint(text)
}

func (t *TUIRenderer) printMaze(f renderer.Frame) {
	var line strings.Builder
	for y := 0; y < f.Rows; y++ {
		line.Reset()
		for x := 0; x < f.Columns; x++ {
			line.WriteString(t.renderCell(f.At(x, y)))
		}
		fmt.Fprintln(t.out, line.String())
	}
}

// printStatusBar renders the algorithm and progress line
func (t *TUIRenderer) printStatusBar(f renderer.Frame) {
	fmt.Fprintln(t.out)
	fmt.Fprint(t.out, t.FormatText("GT{STATUS_ALGORITHM}: "), t.paint(t.colorItem, f.Title), "   ")

	switch {
	case f.Generation == generator.Failed:
		fmt.Fprint(t.out, t.paint(t.colorDenied, gotext.Get("STATUS_FAILED")))
	case !f.Generated:
		fmt.Fprint(t.out, t.paint(t.colorSubtle, dynamicGet("STATUS_GENERATING", f.GenerationSteps)))
	case f.Solved && f.Found:
		fmt.Fprint(t.out, t.paint(t.colorItem, dynamicGet("STATUS_SOLVED", f.Solution, f.SolveSteps)))
	case f.Solved:
		fmt.Fprint(t.out, t.paint(t.colorDenied, gotext.Get("STATUS_UNSOLVABLE")))
	case f.Solving:
		fmt.Fprint(t.out, t.paint(t.colorSubtle, dynamicGet("STATUS_SOLVING", f.SolveSteps)))
	default:
		fmt.Fprint(t.out, t.paint(t.colorSubtle, dynamicGet("STATUS_GENERATED", f.GenerationSteps)))
	}
	fmt.Fprintln(t.out, t.clearLine())
}

// printPossibleActions lists the control keys
func (t *TUIRenderer) printPossibleActions() {
	t.printString("ACTION{n} GT{HELP_STEP}  ACTION{g} GT{HELP_GENERATE}  ACTION{p} GT{HELP_PLAY}  ACTION{r} GT{HELP_RESET}  ACTION{1}-4 GT{HELP_SELECT}\n")
	t.printString("ACTION{s} GT{HELP_SOLVE_STEP}  ACTION{S} GT{HELP_SOLVE}  ACTION{o} GT{HELP_SOLVE_PLAY}  ACTION{x} GT{HELP_SOLVE_RESET}  ACTION{q} GT{HELP_QUIT}\n")
}

// printMessagesPane renders the last few session messages
func (t *TUIRenderer) printMessagesPane(f renderer.Frame) {
	width := f.Columns * terminal.CellWidth

	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", rightLen)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.paint(t.colorSubtle, leftDashes+label+rightDashes))

	if len(f.Messages) == 0 {
		fmt.Fprintln(t.out, t.paint(t.colorSubtle, "  "+gotext.Get("NO_MESSAGES"))+t.clearLine())
	} else {
		for _, msg := range f.Messages {
			fmt.Fprintf(t.out, "  %s%s\n", msg, t.clearLine())
		}
	}
}

// clearLine erases the rest of the line left over from a longer frame
func (t *TUIRenderer) clearLine() string {
	if t.Plain {
		return ""
	}
	return "\x1b[K"
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// DescribeBindings returns one help line per action, listing its keys
func DescribeBindings() []string {
	bindings := input.GetBindingsByAction()
	var lines []string
	for a := input.ActionGenerateStep; a <= input.ActionQuit; a++ {
		codes, ok := bindings[a]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-18s %s", input.ActionName(a), strings.Join(codes, ", ")))
	}
	return lines
}
