package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	designpattern "github.com/chriskaliX/coffee-decorator/Design-Pattern"
)

const defaultOrder = "Tipo: plain coffee | Preço: R$5.00\n" +
	"Tipo: plain coffee, with milk | Preço: R$7.50\n" +
	"Tipo: plain coffee, with milk, with chocolate | Preço: R$10.50\n"

func TestMainDefaultOrder(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("COFFEE_LOG_LEVEL", "warn")

	var out, errOut bytes.Buffer
	require.NoError(t, execute([]string{"coffee"}, &out, &errOut))
	assert.Equal(t, defaultOrder, out.String())
	assert.Empty(t, errOut.String())
}

func TestMainAddonFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	require.NoError(t, execute([]string{"coffee", "-a", "chocolate", "--addon", "milk"}, &out, io.Discard))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Tipo: plain coffee, with chocolate, with milk | Preço: R$10.50", lines[2])
}

func TestMainConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("order:\n  addons: [milk]\nlog:\n  level: debug\n  format: json\n"), 0o644))

	var out, errOut bytes.Buffer
	require.NoError(t, execute([]string{"coffee", "--config", path}, &out, &errOut))

	assert.Equal(t, "Tipo: plain coffee | Preço: R$5.00\nTipo: plain coffee, with milk | Preço: R$7.50\n", out.String())
	assert.Contains(t, errOut.String(), `"msg":"order ready"`)
	assert.Contains(t, errOut.String(), `"order":`)
}

func TestMainUnknownAddon(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	err := execute([]string{"coffee", "-a", "sugar"}, &out, io.Discard)
	assert.ErrorIs(t, err, designpattern.ErrUnknownAddon)
	assert.Empty(t, out.String())
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"coffee", "unknown"}, &out, &out)
	assert.Error(t, err)
}

func TestRunMainSuccess(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	called := false
	runMain([]string{"coffee"}, &out, io.Discard, func(int) { called = true })
	assert.False(t, called)
	assert.Equal(t, defaultOrder, out.String())
}

func TestRunMainError(t *testing.T) {
	orig := executeFunc
	defer func() { executeFunc = orig }()
	executeFunc = func([]string, io.Writer, io.Writer) error { return errors.New("boom") }

	var errOut bytes.Buffer
	code := 0
	runMain([]string{"coffee"}, io.Discard, &errOut, func(c int) { code = c })
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "boom")
}

func TestMenu(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"coffee", "menu"}, &out, io.Discard))
	assert.Contains(t, out.String(), "milk")
	assert.Contains(t, out.String(), "+R$3.00")
}

func TestMenuYAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"coffee", "menu", "--yaml"}, &out, io.Discard))

	var items []designpattern.MenuItem
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &items))
	assert.Equal(t, designpattern.Menu(), items)
}

func TestColorLine(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })

	line := lineStrategy(true).Line(designpattern.BasicCoffee{})
	assert.Contains(t, line, "\x1b[")
	assert.Contains(t, line, "plain coffee")
	assert.Contains(t, line, "R$5.00")
}

func TestColorLine_Disabled(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	assert.Equal(t, designpattern.PlainLine{}.Line(designpattern.BasicCoffee{}),
		lineStrategy(true).Line(designpattern.BasicCoffee{}))
}
