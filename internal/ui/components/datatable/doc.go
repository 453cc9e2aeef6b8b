// Package datatable renders tabular data from a column model.
//
// Rendering is a pipeline: columns and rows are resolved into cells, cells are
// arranged into a View whose State is one of Loading, Empty or Populated, and
// the View is drawn for a terminal (lipgloss) or as HTML (safehtml). The table
// keeps no state between renders; identical props always yield identical output.
//
//	columns := []datatable.Column[User]{
//		{ID: "name", Header: "Name", Accessor: datatable.Field[User]("Name")},
//		{ID: "status", Header: "Status", Accessor: datatable.Field[User]("Status"),
//			Cell: func(c datatable.CellContext[User]) ui.Renderable {
//				return components.SuccessBadge(fmt.Sprint(c.Value))
//			}},
//	}
//	fmt.Println(datatable.New(columns, users).WithStriped(true).View())
//
// Misconfigured columns never fail a render; they produce blank cells. Lint
// reports them during development.
package datatable
