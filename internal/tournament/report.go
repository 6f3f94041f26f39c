package tournament

import (
	"fmt"
	"html/template"
	"io"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/tui-battlebots/internal/storage"
)

// Row is one line of the standings.
type Row struct {
	Bot    string `csv:"bot"`
	Points int    `csv:"points"`
	Wins   int    `csv:"wins"`
	Draws  int    `csv:"draws"`
	Losses int    `csv:"losses"`
}

// Rows returns the table ordered by points, wins, then bot ID.
func (t Table) Rows() []Row {
	rows := make([]Row, 0, len(t))
	for bot, rec := range t {
		rows = append(rows, Row{
			Bot:    bot,
			Points: rec.Points(),
			Wins:   rec.Wins,
			Draws:  rec.Draws,
			Losses: rec.Losses,
		})
	}
	slices.SortFunc(rows, func(a, b Row) int {
		if a.Points != b.Points {
			return b.Points - a.Points
		}
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		return strings.Compare(a.Bot, b.Bot)
	})
	return rows
}

// WriteCSV writes the standings with a header row.
func (t Table) WriteCSV(w io.Writer) error {
	rows := t.Rows()
	return gocsv.Marshal(&rows, w)
}

// ReadCSV loads a table written by WriteCSV. Points are recomputed.
func ReadCSV(r io.Reader) (Table, error) {
	var rows []Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("tournament: cannot read standings: %w", err)
	}
	t := make(Table, len(rows))
	for _, row := range rows {
		t[row.Bot] = &storage.Record{Wins: row.Wins, Draws: row.Draws, Losses: row.Losses}
	}
	return t, nil
}

var standingsPage = template.Must(template.New("standings").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta http-equiv="refresh" content="5">
    <title>Battle Bots Results</title>
    <style>
      body { font-family: sans-serif; text-align: center; }
      table { margin: 0 auto; border-collapse: collapse; }
      th, td { padding: 4px 12px; border-bottom: 1px solid #ccc; }
    </style>
  </head>
  <body>
    <h1>Battle Bots Results</h1>
    <table>
      <caption>Points: (2 points for a win, 1 point for draw, 0 for loss)</caption>
      <tr>
        <th scope="col">NAME</th>
        <th scope="col">POINTS</th>
        <th scope="col">WINS</th>
        <th scope="col">DRAWS</th>
        <th scope="col">LOSSES</th>
      </tr>
      <tbody>
{{- range . }}
        <tr><th scope="row">{{ .Bot }}</th><td>{{ .Points }}</td><td>{{ .Wins }}</td><td>{{ .Draws }}</td><td>{{ .Losses }}</td></tr>
{{- end }}
      </tbody>
    </table>
  </body>
</html>
`))

// WriteHTML renders a self-refreshing standings page.
func (t Table) WriteHTML(w io.Writer) error {
	return standingsPage.Execute(w, t.Rows())
}
