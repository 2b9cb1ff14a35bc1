package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheet = `Asal,Tujuan,Jarak (Km),Biaya (Juta Rp),Benefit (Skor 1-100)
Sukamaju,Cibodas,4.5,850,70
Cibodas,Mekarsari,3,400,55
Mekarsari,Sukamaju,6.2,1200,90
Sukamaju,Tanjung,8,1500,0
Tanjung,Mekarsari,5.5,950,40
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// runCmd executes the root command and returns stdout and stderr.
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestPlan_Ratio(t *testing.T) {
	csv := writeFile(t, "roads.csv", sheet)
	out, logs, err := runCmd(t, "plan", csv)
	require.NoError(t, err)

	// Ratios: S-C 12.14, C-M 7.27, M-S 13.33, S-T 1.5e6, T-M 23.75.
	assert.Contains(t, out, "(MODE: RATIO)")
	assert.Contains(t, out, "Proposals received   : 5 roads")
	assert.Contains(t, out, "Roads to build       : 3 roads")
	assert.Contains(t, out, "Cibodas <--> Mekarsari")
	assert.Contains(t, out, "Sukamaju <--> Cibodas")
	assert.Contains(t, out, "Tanjung <--> Mekarsari")
	assert.Contains(t, out, "Total budget         : IDR 2.2 M")
	assert.Contains(t, logs, `"message":"network optimized"`)
}

func TestPlan_CostModeFlag(t *testing.T) {
	csv := writeFile(t, "roads.csv", sheet)
	out, _, err := runCmd(t, "plan", csv, "--mode", "COST", "--currency", "usd")
	require.NoError(t, err)

	// Costs: C-M 400, S-C 850, T-M 950.
	assert.Contains(t, out, "(MODE: COST)")
	assert.Contains(t, out, "Weight (Rp)")
	assert.Contains(t, out, "Total budget         : USD 2.2 M")
}

func TestPlan_ConfigFile(t *testing.T) {
	csv := writeFile(t, "roads.csv", sheet)
	cfg := writeFile(t, "roadnet.yaml", "planning:\n  mode: distance\n  method: prim\nlogging:\n  level: disabled\n")
	out, logs, err := runCmd(t, "plan", csv, "--config", cfg)
	require.NoError(t, err)

	// Distances: C-M 3, S-C 4.5, T-M 5.5 -> 13 km.
	assert.Contains(t, out, "(MODE: DISTANCE)")
	assert.Contains(t, out, "Total road length    : 13 km")
	assert.NotContains(t, logs, "network optimized")
}

func TestPlan_Errors(t *testing.T) {
	csv := writeFile(t, "roads.csv", sheet)

	_, _, err := runCmd(t, "plan", csv, "--mode", "fastest")
	assert.Error(t, err)

	_, _, err = runCmd(t, "plan", csv, "--method", "boruvka")
	assert.Error(t, err)

	_, _, err = runCmd(t, "plan", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = runCmd(t, "plan")
	assert.Error(t, err, "a CSV path is required")
}

func TestExport_JSON(t *testing.T) {
	csv := writeFile(t, "roads.csv", sheet)
	out, _, err := runCmd(t, "export", csv, "--seed", "3")
	require.NoError(t, err)

	var plan exportPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "ratio", plan.Mode)
	assert.Equal(t, "kruskal", plan.Method)
	assert.Len(t, plan.Villages, 4)
	assert.Len(t, plan.Proposals, 5)
	assert.Len(t, plan.Selected, 3)
	assert.True(t, plan.Summary.Connected)
	assert.Equal(t, 2200.0, plan.Summary.TotalCost)

	// Same seed, same coordinates.
	again, _, err := runCmd(t, "export", csv, "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestModes(t *testing.T) {
	out, _, err := runCmd(t, "modes")
	require.NoError(t, err)
	assert.Contains(t, out, "ratio")
	assert.Contains(t, out, "[default]")
	assert.Contains(t, out, "cost")
	assert.Contains(t, out, "distance")
}
