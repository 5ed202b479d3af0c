package subcmd

import (
	"encoding/json"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/oliveagle/jsonpath"
	"github.com/pkg/errors"
)

func renderTable(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

// filterValue evaluates a jsonpath expression (e.g. $.name) against an
// entity by round-tripping it through its json form.
func filterValue(entity any, path string) (any, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize entity for filtering")
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize entity for filtering")
	}
	return jsonpath.JsonPathLookup(doc, path)
}

// matchesFilter keeps an entity when the expression resolves to a non-nil,
// non-empty value. An unresolvable path drops the entity.
func matchesFilter(entity any, path string) bool {
	if path == "" {
		return true
	}
	value, err := filterValue(entity, path)
	if err != nil || value == nil {
		return false
	}
	if s, ok := value.(string); ok && s == "" {
		return false
	}
	return true
}
