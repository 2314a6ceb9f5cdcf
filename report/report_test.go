package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/distributed_lab/logan/v3"

	"github.com/tutils/lcgen/lcg"
)

var generatedAt = time.Date(2026, 10, 19, 14, 3, 9, 0, time.Local)

func testReport(t *testing.T) Report {
	t.Helper()
	p, err := lcg.NewParams(1023, 32, 0, 2, 5)
	require.NoError(t, err)
	return New(p, lcg.Generate(p), generatedAt)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "lcg_20261019_140309.txt", FileName(generatedAt))
}

func TestWrite(t *testing.T) {
	rep := testReport(t)
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, rep))

	out := buf.String()
	for _, line := range []string{
		"Generated at: 2026-10-19 14:03:09",
		"Run ID: " + rep.ID,
		"Modulus (m): 1023",
		"Multiplier (a): 32",
		"Increment (c): 0",
		"Seed (X0): 2",
		"Count: 5",
		"Period: 2",
		"1: 64\n2: 2\n3: 64\n4: 2\n5: 64\n",
	} {
		assert.Contains(t, out, line)
	}
	assert.True(t, strings.HasSuffix(out, "5: 64\n"))
}

func TestWritePeriodNotFound(t *testing.T) {
	rep := testReport(t)
	rep.Result.Period = lcg.PeriodNotFound
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, rep))
	assert.Contains(t, buf.String(), "Period: not found")
}

func TestWriteEmpty(t *testing.T) {
	err := Write(&bytes.Buffer{}, Report{})
	assert.Equal(t, ErrEmptyResult, err)
}

func TestNewAssignsUniqueIDs(t *testing.T) {
	a, b := testReport(t), testReport(t)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSaverSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	s, err := NewSaver(dir, logan.New())
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	path, err := s.Save(testReport(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lcg_20261019_140309.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Period: 2")

	_, err = s.Save(Report{})
	assert.Equal(t, ErrEmptyResult, err)
}

func TestNewSaverDefaultDir(t *testing.T) {
	s, err := NewSaver("", nil)
	require.NoError(t, err)
	assert.Equal(t, "Documents", filepath.Base(s.Dir()))
}
