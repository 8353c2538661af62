package coff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sethm/we32dis/internal/ioutil"
)

func buildStringTable(entries ...string) []byte {
	var body []byte
	for _, e := range entries {
		body = append(body, []byte(e)...)
		body = append(body, 0)
	}
	size := uint32(len(body) + 4)
	return append(putU32BE(nil, size), body...)
}

func TestReadStringTable_RoundTrip(t *testing.T) {
	buf := buildStringTable("alpha", "beta")
	st, err := readStringTable(ioutil.NewCursor(buf))
	require.NoError(t, err)

	s, err := st.NameAt(4)
	require.NoError(t, err)
	require.Equal(t, "alpha", s)

	s, err = st.NameAt(10)
	require.NoError(t, err)
	require.Equal(t, "beta", s)
}

func TestStringTable_Entries(t *testing.T) {
	buf := buildStringTable("one", "two", "three")
	st, err := readStringTable(ioutil.NewCursor(buf))
	require.NoError(t, err)

	entries := st.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, "one", entries[0].Value)
	require.Equal(t, "two", entries[1].Value)
	require.Equal(t, "three", entries[2].Value)
}

func TestStringTable_Entries_TrailingUnterminatedBytesIgnored(t *testing.T) {
	buf := buildStringTable("one")
	buf = append(buf, []byte("trailing-no-nul")...)
	st, err := readStringTable(ioutil.NewCursor(buf))
	require.NoError(t, err)

	entries := st.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "one", entries[0].Value)
}

func TestReadStringTable_EmptyWhenTruncatedRightAfterSymbols(t *testing.T) {
	st, err := readStringTable(ioutil.NewCursor(nil))
	require.NoError(t, err)
	require.Equal(t, uint32(4), st.DataSize)
	require.Empty(t, st.Entries())
}

func TestReadStringTable_RejectsSizeSmallerThanPrefix(t *testing.T) {
	buf := putU32BE(nil, 2)
	_, err := readStringTable(ioutil.NewCursor(buf))
	require.Error(t, err)
}

func TestNameAt_OutOfRangeErrors(t *testing.T) {
	buf := buildStringTable("x")
	st, err := readStringTable(ioutil.NewCursor(buf))
	require.NoError(t, err)
	_, err = st.NameAt(999)
	require.Error(t, err)
}
