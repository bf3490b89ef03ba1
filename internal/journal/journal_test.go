package journal

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/paletteedit/internal/color"
)

var errStop = errors.New("stop replay")

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "edits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestRecordAndReplay(t *testing.T) {
	s := openTestStore(t)

	first := []color.RGBA{{R: 255, A: 255}, {G: 255, A: 255}}
	second := []color.RGBA{{B: 128, A: 200}}
	require.NoError(t, s.Record(0, 2, 3, first))
	require.NoError(t, s.Record(1, 5, 5, second))

	n, err := s.Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	var entries []Entry
	require.NoError(t, s.Replay(func(e Entry) error {
		entries = append(entries, e)
		return nil
	}))
	require.Len(t, entries, 2)

	require.Equal(t, 0, entries[0].Frame)
	require.Equal(t, 2, entries[0].From)
	require.Equal(t, 3, entries[0].To)
	require.Equal(t, first, entries[0].Colors)

	require.Equal(t, 1, entries[1].Frame)
	require.Equal(t, second, entries[1].Colors)
}

func TestRecordRejectsMismatchedRange(t *testing.T) {
	s := openTestStore(t)

	err := s.Record(0, 0, 2, []color.RGBA{{A: 255}})
	require.Error(t, err)

	n, err := s.Len()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestReplayPropagatesCallbackError(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Record(0, 0, 0, []color.RGBA{{A: 255}}))
	require.NoError(t, s.Record(0, 1, 1, []color.RGBA{{A: 255}}))

	calls := 0
	err := s.Replay(func(Entry) error {
		calls++
		return errStop
	})
	require.ErrorIs(t, err, errStop)
	require.Equal(t, 1, calls)
}

func TestReopenKeepsEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edits.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(0, 0, 0, []color.RGBA{{R: 7, A: 255}}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Len()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
