package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gridstorm/internal/config"
	"github.com/dshills/gridstorm/internal/selection"
)

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.History.MaxEntries = 1
	cfg.Text.RowSeparator = `;`
	cfg.Text.ColumnSeparator = `,`

	s, err := FromConfig(cfg)
	require.NoError(t, err)

	require.NoError(t, s.Load("a,b;c"))
	assert.Equal(t, "c", text(t, s, 0, 1))
	assert.Equal(t, "a,b;c,", s.String(), "short rows are padded to the bounding box")

	require.NoError(t, s.SetText(cells(selection.Cell(0, 0)), "x"))
	require.NoError(t, s.SetText(cells(selection.Cell(1, 0)), "y"))
	assert.Equal(t, 1, s.UndoCount())
}

func TestRaggedTextRoundTrips(t *testing.T) {
	cfg := config.Default()
	cfg.Text.RowSeparator = `;`
	cfg.Text.ColumnSeparator = `,`

	for _, in := range []string{"a,b;c", "a;b,c,d;;e", ",x;y"} {
		t.Run(in, func(t *testing.T) {
			first, err := FromConfig(cfg)
			require.NoError(t, err)
			require.NoError(t, first.Load(in))
			out := first.String()

			second, err := FromConfig(cfg)
			require.NoError(t, err)
			require.NoError(t, second.Load(out))

			assert.Equal(t, first.Content().Map(), second.Content().Map())
			assert.Equal(t, out, second.String())
		})
	}
}

func TestFromConfigRejectsBadSeparators(t *testing.T) {
	cfg := config.Default()
	cfg.Text.ColumnSeparator = cfg.Text.RowSeparator
	_, err := FromConfig(cfg)
	assert.Error(t, err)
}
