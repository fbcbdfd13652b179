package types

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")

	b := NewAddressBook()
	john, err := NewRecord("John Smith", "1990-05-21")
	require.NoError(t, err)
	require.NoError(t, john.AddPhone("1234567890"))
	require.NoError(t, john.AddPhone("5555555555"))
	b.Add(john)
	b.Add(newTestRecord(t, "Jane Doe"))

	require.NoError(t, b.Save(path))

	loaded := NewAddressBook()
	require.NoError(t, loaded.Load(path))
	require.Equal(t, []string{"John Smith", "Jane Doe"}, names(loaded.Records()))

	got, ok := loaded.Find("John Smith")
	require.True(t, ok)
	assert.Equal(t, []string{"1234567890", "5555555555"}, got.Phones())
	bd, ok := got.Birthday()
	assert.True(t, ok)
	assert.Equal(t, "1990-05-21", bd)

	jane, ok := loaded.Find("Jane Doe")
	require.True(t, ok)
	assert.Empty(t, jane.Phones())
	_, ok = jane.Birthday()
	assert.False(t, ok)
}

func TestEncodeFormat(t *testing.T) {
	b := NewAddressBook()
	john, err := NewRecord("John Smith", "1990-05-21")
	require.NoError(t, err)
	require.NoError(t, john.AddPhone("1234567890"))
	b.Add(john)
	b.Add(newTestRecord(t, "Jane Doe"))

	var buf bytes.Buffer
	require.NoError(t, b.Encode(&buf))

	want := `[
  {
    "name": "John Smith",
    "phones": [
      "1234567890"
    ],
    "birthday": "1990-05-21"
  },
  {
    "name": "Jane Doe",
    "phones": [],
    "birthday": null
  }
]
`
	assert.Equal(t, want, buf.String())
}

func TestEncodeEmptyBook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewAddressBook().Encode(&buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestDecodeOverwritesExisting(t *testing.T) {
	b := NewAddressBook()
	b.Add(newTestRecord(t, "John Smith", "1111111111"))
	b.Add(newTestRecord(t, "Other"))

	input := `[{"name": "John Smith", "phones": ["2222222222"], "birthday": null}]`
	require.NoError(t, b.Decode(strings.NewReader(input)))

	assert.Equal(t, []string{"John Smith", "Other"}, names(b.Records()))
	got, _ := b.Find("John Smith")
	assert.Equal(t, []string{"2222222222"}, got.Phones())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "not json", input: `{{`, wantErr: ErrMalformedData},
		{name: "object instead of array", input: `{"name": "x"}`, wantErr: ErrMalformedData},
		{name: "element not an object", input: `[1]`, wantErr: ErrMalformedData},
		{name: "missing name", input: `[{"phones": [], "birthday": null}]`, wantErr: ErrMalformedData},
		{name: "missing phones", input: `[{"name": "A", "birthday": null}]`, wantErr: ErrMalformedData},
		{name: "missing birthday", input: `[{"name": "A", "phones": []}]`, wantErr: ErrMalformedData},
		{name: "phones not a list", input: `[{"name": "A", "phones": "123", "birthday": null}]`, wantErr: ErrMalformedData},
		{name: "name not a string", input: `[{"name": 5, "phones": [], "birthday": null}]`, wantErr: ErrMalformedData},
		{name: "null name", input: `[{"name": null, "phones": [], "birthday": null}]`, wantErr: ErrMalformedData},
		{name: "null phones", input: `[{"name": "A", "phones": null, "birthday": null}]`, wantErr: ErrMalformedData},
		{name: "null element", input: `[null]`, wantErr: ErrMalformedData},
		{name: "top-level null", input: `null`, wantErr: ErrMalformedData},
		{name: "empty input", input: ``, wantErr: ErrMalformedData},
		{name: "trailing data", input: `[{"name": "A", "phones": [], "birthday": null}] garbage`, wantErr: ErrMalformedData},
		{name: "second array", input: `[] []`, wantErr: ErrMalformedData},
		{name: "bad phone", input: `[{"name": "A", "phones": ["12"], "birthday": null}]`, wantErr: ErrInvalidValue},
		{name: "bad birthday", input: `[{"name": "A", "phones": [], "birthday": "2024-02-30"}]`, wantErr: ErrInvalidValue},
		{name: "blank name", input: `[{"name": "", "phones": [], "birthday": null}]`, wantErr: ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewAddressBook()
			b.Add(newTestRecord(t, "Existing"))

			err := b.Decode(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{"Existing"}, names(b.Records()), "book should not change on error")
		})
	}
}

func TestDecodeIsAllOrNothing(t *testing.T) {
	input := `[
  {"name": "Good", "phones": ["1234567890"], "birthday": null},
  {"name": "Bad", "phones": ["nope"], "birthday": null}
]`
	b := NewAddressBook()
	err := b.Decode(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 0, b.Len())
}

func TestLoadMissingFile(t *testing.T) {
	err := NewAddressBook().Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	b := newTestBook(t, "A")
	require.NoError(t, b.Save(filepath.Join(dir, "contacts.json")))
	require.NoError(t, b.Save(filepath.Join(dir, "contacts.json")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "contacts.json", entries[0].Name())
}
