package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/tutils/lcgen/lcg"
)

const columnGap = "  "

// terminalWidth is the column count of f, or 0 when f is not a terminal.
func terminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func periodLine(p lcg.Params, period int) string {
	if period == lcg.PeriodNotFound {
		return fmt.Sprintf("period: not found within %d steps", lcg.DetectionHorizon(p))
	}
	return fmt.Sprintf("period: %d", period)
}

// renderValues writes values numbered from 1. With width > 0 the numbered
// cells are packed into as many columns as fit, otherwise one per line.
func renderValues(w io.Writer, values []int64, width int) error {
	bw := bufio.NewWriter(w)
	if width <= 0 {
		for i, v := range values {
			fmt.Fprintf(bw, "%d: %d\n", i+1, v)
		}
		return bw.Flush()
	}

	idxWidth := len(strconv.Itoa(len(values)))
	valWidth := 1
	for _, v := range values {
		if n := len(strconv.FormatInt(v, 10)); n > valWidth {
			valWidth = n
		}
	}
	cellWidth := idxWidth + 2 + valWidth
	cols := (width + len(columnGap)) / (cellWidth + len(columnGap))
	if cols < 1 {
		cols = 1
	}

	line := &strings.Builder{}
	for i, v := range values {
		if i%cols != 0 {
			line.WriteString(columnGap)
		}
		fmt.Fprintf(line, "%*d: %-*d", idxWidth, i+1, valWidth, v)
		if (i+1)%cols == 0 || i == len(values)-1 {
			bw.WriteString(strings.TrimRight(line.String(), " "))
			bw.WriteByte('\n')
			line.Reset()
		}
	}
	return bw.Flush()
}
