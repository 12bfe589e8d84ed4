package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReader_Path(t *testing.T) {
	r := New("/tmp/in.csv", domain.EncodingUTF8)

	assert.Equal(t, "/tmp/in.csv", r.Path())
}

func TestReader_Read_UTF8(t *testing.T) {
	path := writeFixture(t, "in.csv", []byte("Nachname;Vorname\nMüller;Anna\nWeber;Tom\n"))
	r := New(path, domain.EncodingUTF8)

	header, rows, rowErrs, err := r.Read(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Equal(t, []string{"Nachname", "Vorname"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Müller", "Anna"}, rows[0])
	assert.Equal(t, []string{"Weber", "Tom"}, rows[1])
}

func TestReader_Read_UTF8ByteOrderMark(t *testing.T) {
	// Spreadsheet tools prepend a BOM to UTF-8 CSV exports; it must not
	// stick to the first header name.
	data := []byte("\xef\xbb\xbfNachname;Vorname\nMüller;Anna\n")
	path := writeFixture(t, "bom.csv", data)
	r := New(path, domain.EncodingUTF8)

	header, rows, rowErrs, err := r.Read(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Equal(t, []string{"Nachname", "Vorname"}, header)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Müller", "Anna"}, rows[0])
}

func TestReader_Read_Windows1252(t *testing.T) {
	// "Müller" with the legacy single-byte 0xFC for ü.
	data := []byte("Nachname;Vorname\nM\xfcller;Anna\n")
	path := writeFixture(t, "legacy.csv", data)
	r := New(path, domain.EncodingWindows1252)

	header, rows, rowErrs, err := r.Read(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Equal(t, []string{"Nachname", "Vorname"}, header)
	require.Len(t, rows, 1)
	assert.Equal(t, "Müller", rows[0][0])
}

func TestReader_Read_VaryingFieldCounts(t *testing.T) {
	// Short and long rows tokenize fine; field counts are the decoder's
	// concern.
	path := writeFixture(t, "in.csv", []byte("a;b;c\n1;2\n1;2;3;4\n"))
	r := New(path, domain.EncodingUTF8)

	_, rows, rowErrs, err := r.Read(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 2)
	assert.Len(t, rows[1], 4)
}

func TestReader_Read_UntokenizableRowIsSkipped(t *testing.T) {
	path := writeFixture(t, "in.csv", []byte("a;b\nok;row\n\"broken;row\nnext;row\n"))
	r := New(path, domain.EncodingUTF8)

	header, rows, rowErrs, err := r.Read(context.Background())

	require.NoError(t, err, "a broken row must not fail the file")
	assert.Equal(t, []string{"a", "b"}, header)
	require.NotEmpty(t, rowErrs)
	assert.ErrorIs(t, rowErrs[0], domain.ErrRowDecode)
	assert.Equal(t, path, rowErrs[0].File)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"ok", "row"}, rows[0])
}

func TestReader_Read_UntokenizableHeaderFailsFile(t *testing.T) {
	// A bare quote breaks tokenization of the header line itself. The
	// first data row must not silently take the header's place.
	path := writeFixture(t, "in.csv", []byte("Nach\"name;Vorname\nMüller;Anna\n"))
	r := New(path, domain.EncodingUTF8)

	_, _, _, err := r.Read(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRowDecode)
	assert.Contains(t, err.Error(), "header")
}

func TestReader_Read_MissingFile(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "absent.csv"), domain.EncodingUTF8)

	_, _, _, err := r.Read(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceOpen)
}

func TestReader_Read_EmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.csv", nil)
	r := New(path, domain.EncodingUTF8)

	_, _, _, err := r.Read(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRowDecode)
}

func TestReader_Read_Restartable(t *testing.T) {
	path := writeFixture(t, "in.csv", []byte("a;b\n1;2\n"))
	r := New(path, domain.EncodingUTF8)

	_, first, _, err := r.Read(context.Background())
	require.NoError(t, err)
	_, second, _, err := r.Read(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReader_Read_CancelledContext(t *testing.T) {
	path := writeFixture(t, "in.csv", []byte("a;b\n1;2\n"))
	r := New(path, domain.EncodingUTF8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := r.Read(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
