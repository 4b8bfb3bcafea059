package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/attclean/attclean-go/pkg/attclean"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeInput(t *testing.T, withHeader bool) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "EmpCode")
	f.SetCellValue("Sheet1", "B1", "E7")
	if withHeader {
		f.SetCellValue("Sheet1", "A2", "Date")
		f.SetCellValue("Sheet1", "B2", "Present")
		f.SetCellValue("Sheet1", "A3", "01-Jan")
		f.SetCellValue("Sheet1", "B3", 1)
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRunCleanWritesWorkbook(t *testing.T) {
	in := writeInput(t, true)
	out := filepath.Join(t.TempDir(), "out.xlsx")

	var stdout bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)

	err := runClean(cmd, in, cleanFlags{outputPath: out, lookahead: 10})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Cleaned 1 rows")

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Date", "Present", "Empcode", "EmpName"},
		{"01-Jan", "1", "E7"},
	}, rows)
}

func TestRunCleanJSON(t *testing.T) {
	in := writeInput(t, true)

	var stdout bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)

	require.NoError(t, runClean(cmd, in, cleanFlags{asJSON: true}))
	assert.True(t, strings.Contains(stdout.String(), `"total_rows":1`))
	assert.True(t, strings.Contains(stdout.String(), `"EmpName":null`))
}

func TestRunCleanNoData(t *testing.T) {
	in := writeInput(t, false)
	err := runClean(&cobra.Command{}, in, cleanFlags{outputPath: filepath.Join(t.TempDir(), "x.xlsx")})
	assert.True(t, errors.Is(err, attclean.ErrNoData))
}

func TestRunCleanMissingFile(t *testing.T) {
	err := runClean(&cobra.Command{}, filepath.Join(os.TempDir(), "does-not-exist.xlsx"), cleanFlags{})
	assert.True(t, errors.Is(err, ErrFileNotFound))
}
