// internal/app/persistence.go
package app

import "github.com/llehouerou/rove/internal/state"

// saveNavigation persists the current directory, selection and listing
// options. The state manager debounces the write.
func (m *Model) saveNavigation() {
	if m.quitting {
		return
	}
	opts := m.browser.Options()
	m.state.SaveNavigation(state.NavigationState{
		CurrentPath:  m.browser.Dir(),
		SelectedName: m.browser.SelectedName(),
		Sort:         string(opts.Sort),
		SortReverse:  opts.Reverse,
		ShowHidden:   opts.ShowHidden,
	})
}
