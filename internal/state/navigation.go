package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/rove/internal/db"
)

type NavigationState struct {
	CurrentPath  string
	SelectedName string
	Sort         string // basename, size, mtime or type; empty keeps the configured order
	SortReverse  bool
	ShowHidden   bool
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT current_path, selected_name, sort, sort_reverse, show_hidden
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var selectedName, sortName sql.NullString

	err := row.Scan(&state.CurrentPath, &selectedName, &sortName, &state.SortReverse, &state.ShowHidden)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.SelectedName = dbutil.NullStringValue(selectedName)
	state.Sort = dbutil.NullStringValue(sortName)

	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, current_path, selected_name, sort, sort_reverse, show_hidden)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			current_path = excluded.current_path,
			selected_name = excluded.selected_name,
			sort = excluded.sort,
			sort_reverse = excluded.sort_reverse,
			show_hidden = excluded.show_hidden
	`, state.CurrentPath, state.SelectedName, state.Sort, state.SortReverse, state.ShowHidden)

	return err
}
