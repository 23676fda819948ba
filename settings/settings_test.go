package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/comi/alias"
	"github.com/ardnew/comi/pkg"
)

func str(s string) *string { return &s }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "settings.json", `{
  "com_ports": [
    {"alias": "printer", "product_id": 4660, "serial_number": "ABC123", "manufacturer": "Acme", "product_name": null},
    {"alias": "", "product_id": 67, "serial_number": "XYZ999"}
  ]
}`)

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.ComPorts, 2)

	assert.Equal(t, alias.Entry{
		Alias:        "printer",
		ProductID:    0x1234,
		SerialNumber: "ABC123",
		Manufacturer: str("Acme"),
	}, s.ComPorts[0])
	assert.Empty(t, s.ComPorts[1].Alias)
	assert.Nil(t, s.ComPorts[1].Manufacturer)
	assert.Nil(t, s.ComPorts[1].ProductName)
}

func TestLoad_MissingOrNullList(t *testing.T) {
	for name, content := range map[string]string{
		"absent": `{}`,
		"null":   `{"com_ports": null}`,
		"empty":  `{"com_ports": []}`,
	} {
		t.Run(name, func(t *testing.T) {
			s, err := Load(writeFile(t, "settings.json", content))
			require.NoError(t, err)
			assert.Empty(t, s.ComPorts)
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "settings.yaml", `com_ports:
  - alias: printer
    product_id: 4660
    serial_number: ABC123
    manufacturer: null
    product_name: Widget
`)

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.ComPorts, 1)
	assert.Equal(t, "printer", s.ComPorts[0].Alias)
	assert.Equal(t, uint16(0x1234), s.ComPorts[0].ProductID)
	assert.Nil(t, s.ComPorts[0].Manufacturer)
	require.NotNil(t, s.ComPorts[0].ProductName)
	assert.Equal(t, "Widget", *s.ComPorts[0].ProductName)
}

func TestLoad_Malformed(t *testing.T) {
	tests := map[string]string{
		"settings.json": `{"com_ports": [`,
		"settings.yml":  "com_ports: [\n  - alias: [",
		"range.json":    `{"com_ports": [{"product_id": 70000, "serial_number": "S"}]}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, name, content))
			assert.ErrorIs(t, err, pkg.ErrConfigParse)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, pkg.ErrConfigParse)
}

func TestSave_RoundTrip(t *testing.T) {
	want := Settings{ComPorts: alias.Config{
		{Alias: "printer", ProductID: 0x1234, SerialNumber: "ABC123", ProductName: str("Widget")},
	}}

	for _, name := range []string{"settings.json", "settings.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, want))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSave_EmptyWritesList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, Save(path, Settings{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"com_ports": []}`, string(data))
}

func TestAppend(t *testing.T) {
	path := writeFile(t, "settings.json", `{"com_ports": [
    {"alias": "printer", "product_id": 4660, "serial_number": "ABC123", "manufacturer": null, "product_name": null}
]}`)

	n, err := Append(path, alias.Config{
		{ProductID: 0x1234, SerialNumber: "ABC123", Manufacturer: str("Acme")},
		{ProductID: 0x0043, SerialNumber: "NEW1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.ComPorts, 2)
	assert.Equal(t, "printer", s.ComPorts[0].Alias)
	assert.Equal(t, "NEW1", s.ComPorts[1].SerialNumber)
}

func TestAppend_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	n, err := Append(path, alias.Config{{ProductID: 1, SerialNumber: "S"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.ComPorts, 1)
}

func TestAppend_Errors(t *testing.T) {
	_, err := Append("", alias.Config{{ProductID: 1, SerialNumber: "S"}})
	assert.ErrorIs(t, err, pkg.ErrNoSettingsPath)

	path := writeFile(t, "settings.json", `not json`)
	_, err = Append(path, nil)
	assert.ErrorIs(t, err, pkg.ErrConfigParse)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "not json", string(data), "malformed file must not be overwritten")
}
