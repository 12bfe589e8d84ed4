package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
)

var rosterHeader = []string{"Nachname", "Vorname", "Klasse", "eindeutige Nummer (GUID)"}

func TestNewDecoder(t *testing.T) {
	t.Run("accepts known schemas", func(t *testing.T) {
		for _, schema := range []domain.Schema{domain.SchemaRoster, domain.SchemaGuest} {
			d, err := NewDecoder(schema)
			require.NoError(t, err)
			assert.NotNil(t, d)
		}
	})

	t.Run("rejects unknown schema", func(t *testing.T) {
		_, err := NewDecoder("mystery")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownSchema)
	})
}

func TestDecoder_Roster(t *testing.T) {
	d, err := NewDecoder(domain.SchemaRoster)
	require.NoError(t, err)

	t.Run("decodes rows in order", func(t *testing.T) {
		records, rowErrs, err := d.Decode("in.csv", rosterHeader, [][]string{
			{"Schmidt", "Lena", "11b", "guid-1"},
			{"Weber", "Tom", "ABI", "guid-2"},
		})

		require.NoError(t, err)
		assert.Empty(t, rowErrs)
		require.Len(t, records, 2)
		assert.Equal(t, domain.SchemaRoster, records[0].Record.Schema)
		require.NotNil(t, records[0].Record.Roster)
		assert.Equal(t, "Schmidt", records[0].Record.Roster.Surname)
		assert.Equal(t, "Weber", records[1].Record.Roster.Surname)
		assert.Equal(t, 2, records[0].Row)
		assert.Equal(t, 3, records[1].Row)
	})

	t.Run("maps reordered columns by header name", func(t *testing.T) {
		header := []string{"Klasse", "eindeutige Nummer (GUID)", "Nachname", "Vorname"}

		records, rowErrs, err := d.Decode("in.csv", header, [][]string{
			{"11b", "guid-1", "Schmidt", "Lena"},
		})

		require.NoError(t, err)
		assert.Empty(t, rowErrs)
		require.Len(t, records, 1)
		assert.Equal(t, "Schmidt", records[0].Record.Roster.Surname)
		assert.Equal(t, "11b", records[0].Record.Roster.GroupLabel)
	})

	t.Run("missing column fails the file", func(t *testing.T) {
		header := []string{"Nachname", "Vorname", "Klasse"}

		_, _, err := d.Decode("in.csv", header, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRowDecode)
		assert.Contains(t, err.Error(), "eindeutige Nummer (GUID)")
	})

	t.Run("header matching is case-sensitive", func(t *testing.T) {
		header := []string{"NACHNAME", "Vorname", "Klasse", "eindeutige Nummer (GUID)"}

		_, _, err := d.Decode("in.csv", header, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRowDecode)
	})

	t.Run("empty required cell skips the row only", func(t *testing.T) {
		records, rowErrs, err := d.Decode("in.csv", rosterHeader, [][]string{
			{"Schmidt", "Lena", "11b", "guid-1"},
			{"Weber", "", "12c", "guid-2"},
			{"Braun", "Mia", "13a", "guid-3"},
		})

		require.NoError(t, err)
		require.Len(t, rowErrs, 1)
		assert.ErrorIs(t, rowErrs[0], domain.ErrRowDecode)
		assert.Equal(t, 3, rowErrs[0].Row)
		assert.Equal(t, "in.csv", rowErrs[0].File)

		require.Len(t, records, 2)
		assert.Equal(t, "Schmidt", records[0].Record.Roster.Surname)
		assert.Equal(t, "Braun", records[1].Record.Roster.Surname)
	})

	t.Run("short row skips the row only", func(t *testing.T) {
		records, rowErrs, err := d.Decode("in.csv", rosterHeader, [][]string{
			{"Schmidt", "Lena"},
			{"Braun", "Mia", "13a", "guid-3"},
		})

		require.NoError(t, err)
		require.Len(t, rowErrs, 1)
		assert.ErrorIs(t, rowErrs[0], domain.ErrRowDecode)
		require.Len(t, records, 1)
		assert.Equal(t, "Braun", records[0].Record.Roster.Surname)
	})
}

func TestDecoder_Guest(t *testing.T) {
	d, err := NewDecoder(domain.SchemaGuest)
	require.NoError(t, err)

	t.Run("decodes uppercase headers including non-ASCII", func(t *testing.T) {
		header := []string{"NAME, VORNAME", "KLASSE", "SCHÜLERNR"}

		records, rowErrs, err := d.Decode("guests.csv", header, [][]string{
			{"*Müller, Anna (G)", "11b", "4711"},
		})

		require.NoError(t, err)
		assert.Empty(t, rowErrs)
		require.Len(t, records, 1)
		assert.Equal(t, domain.SchemaGuest, records[0].Record.Schema)
		require.NotNil(t, records[0].Record.Guest)
		assert.Equal(t, "*Müller, Anna (G)", records[0].Record.Guest.CombinedName)
		assert.Equal(t, "4711", records[0].Record.Guest.ExternalID)
	})

	t.Run("missing student number column fails the file", func(t *testing.T) {
		header := []string{"NAME, VORNAME", "KLASSE"}

		_, _, err := d.Decode("guests.csv", header, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRowDecode)
		assert.Contains(t, err.Error(), "SCHÜLERNR")
	})
}
