package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

const peopleYAML = `title: People
options:
  striped: true
  row_key: email
columns:
  - id: name
    header: Name
    accessor: name
  - id: status
    header: Status
    accessor: status
    align: center
    cell:
      format: badge
      badges:
        active: success
        away: warning
  - id: city
    header: City
    accessor: address.city
rows:
  - name: Alice
    email: alice@example.com
    status: active
    address:
      city: Lisbon
  - name: Bob
    email: bob@example.com
    status: away
`

func TestParseFile(t *testing.T) {
	t.Parallel()

	invalidYAML := `title: [1, 0]
columns:
  - id: name
`

	missingColumns := `title: "No columns"
rows:
  - name: Alice
`

	badColumnID := `columns:
  - id: "9lives"
    accessor: name
`

	badAlign := `columns:
  - id: name
    align: justify
`

	badBadge := `columns:
  - id: status
    cell:
      format: badge
      badges:
        active: neon
`

	duplicateID := `columns:
  - id: name
  - id: name
`

	badgesWithoutFormat := `columns:
  - id: status
    cell:
      format: code
      default_badge: success
`

	malformedPath := `columns:
  - id: city
    accessor: address..city
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: peopleYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				require.Equal(t, "People", doc.Title)
				require.Len(t, doc.Columns, 3)
				require.Len(t, doc.Rows, 2)
				require.True(t, doc.Options.Striped)
				require.True(t, doc.Options.HoverEnabled())
				require.Equal(t, "badge", doc.Columns[1].Cell.Format)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, _ *Document, err error) {
				var parseErr *dserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "columns are required",
			contents: missingColumns,
			assert: func(t *testing.T, _ *Document, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "columns", validationErr.Field)
			},
		},
		{
			name:     "column id must start with a letter",
			contents: badColumnID,
			assert: func(t *testing.T, _ *Document, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "columns[0].id", validationErr.Field)
				require.Contains(t, validationErr.Message, "column_id")
			},
		},
		{
			name:     "align is restricted",
			contents: badAlign,
			assert: func(t *testing.T, _ *Document, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "columns[0].align", validationErr.Field)
			},
		},
		{
			name:     "badge variants must exist",
			contents: badBadge,
			assert: func(t *testing.T, _ *Document, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "badge_variant")
			},
		},
		{
			name:     "duplicate column ids are rejected",
			contents: duplicateID,
			assert: func(t *testing.T, _ *Document, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "columns[1].id", validationErr.Field)
				require.Contains(t, validationErr.Message, "first used by columns[0]")
			},
		},
		{
			name:     "badge options need the badge format",
			contents: badgesWithoutFormat,
			assert: func(t *testing.T, _ *Document, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "columns[0].cell.badges", validationErr.Field)
			},
		},
		{
			name:     "accessor paths must not have empty segments",
			contents: malformedPath,
			assert: func(t *testing.T, _ *Document, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "columns[0].accessor", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempDocument(t, tc.contents)
			doc, err := ParseFile(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *dserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateDocumentNil(t *testing.T) {
	t.Parallel()

	var validationErr *dserrors.ValidationError
	require.ErrorAs(t, ValidateDocument(nil), &validationErr)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 0, extractLine(os.ErrClosed))
}

func writeTempDocument(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
