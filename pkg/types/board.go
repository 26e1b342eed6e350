package types

// DefaultColumnNames is the column set a board receives when the caller
// does not supply its own.
var DefaultColumnNames = []string{"Backlog", "In Progress", "Done"}

// Column is a named workflow stage within a board. Tasks reference a
// column by ID but columns do not own tasks.
type Column struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BoardSettings holds per-board presentation preferences. The store
// persists them verbatim and never interprets them.
type BoardSettings struct {
	DefaultColumns  []string `json:"default_columns"`
	WIPHelpText     string   `json:"wip_help_text"`
	ShowColorLegend bool     `json:"show_color_legend"`
}

// DefaultBoardSettings returns the settings a new board starts with.
func DefaultBoardSettings() BoardSettings {
	return BoardSettings{
		DefaultColumns:  append([]string(nil), DefaultColumnNames...),
		ShowColorLegend: true,
	}
}

// Board is a top-level workspace containing an ordered sequence of
// columns. Column order is display and workflow order.
type Board struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Columns  []*Column     `json:"columns"`
	Archived bool          `json:"archived"`
	Settings BoardSettings `json:"settings"`
}

// ColumnByID returns the column with the given ID, or nil if the board
// has no such column.
func (b *Board) ColumnByID(id string) *Column {
	for _, c := range b.Columns {
		if c.ID == id {
			return c
		}
	}
	return nil
}
