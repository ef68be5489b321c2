package prettyprinter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/funvibe/monkey/internal/token"
)

// WriteTokenTable renders toks as a table of position, type and literal.
func WriteTokenTable(w io.Writer, toks []token.Token) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Pos", "Type", "Literal"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, tok := range toks {
		table.Append([]string{
			fmt.Sprintf("%d:%d", tok.Line, tok.Column),
			string(tok.Type),
			strconv.Quote(tok.Literal),
		})
	}
	table.Render()
}
