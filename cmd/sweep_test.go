package cmd

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isf-sim/isf-sim/furnace"
)

func sweepPoints(t *testing.T) []furnace.SweepPoint {
	t.Helper()
	op := furnace.OperatingConditions{CokeRateKgph: 18000, ZnProductionTargetTPH: 30, CokeLHVMJPerKg: 28}
	cfg := furnace.SweepConfig{Points: 5, MinFactor: 0.6, MaxFactor: 1.4, MinRateKgph: 5000, Workers: 2}
	points, err := furnace.NewFurnace().CokeRateSweep(furnace.DefaultSinterFeed(), op, cfg)
	require.NoError(t, err)
	return points
}

func TestPrintSweepTable(t *testing.T) {
	var buf bytes.Buffer
	printSweepTable(&buf, sweepPoints(t))
	out := buf.String()

	assert.Contains(t, out, "Coke rate (kg/h)")
	assert.Contains(t, out, "10800.0")
	assert.Contains(t, out, "25200.0")
	assert.Contains(t, out, "92.00")
}

func TestWriteSweepCSV(t *testing.T) {
	points := sweepPoints(t)
	path := filepath.Join(t.TempDir(), "sweep.csv")
	require.NoError(t, writeSweepCSV(path, points))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(points)+1)
	assert.Equal(t, []string{"coke_rate_kgph", "zinc_recovery_pct", "energy_gj_per_t_zn", "zinc_production_tph"}, records[0])
	assert.Equal(t, "10800", records[1][0])
}

func TestWriteSweepCSV_BadPath(t *testing.T) {
	err := writeSweepCSV(filepath.Join(t.TempDir(), "missing", "sweep.csv"), nil)
	assert.ErrorContains(t, err, "creating csv file")
}
