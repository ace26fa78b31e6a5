package transformer

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cloud-Pie/EFT/internal/util"
)

func TestRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, util.INPUT_FILE, []byte(sampleDocument), 0644))

	source := &queuedSource{values: []int{16}}
	summary, err := Run(fs, util.INPUT_FILE, util.OUTPUT_FILE, source)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Records)
	assert.Equal(t, 1, summary.IntervalsRemoved)

	content, err := afero.ReadFile(fs, util.OUTPUT_FILE)
	require.NoError(t, err)
	assert.Equal(t,
		`{"cloud_partners":[{"data_centers":[{"workload_dependent_emissions":[{"foo":"bar","center_emission_factor":17}]}]}]}`,
		string(content))

	//The input is left untouched
	input, err := afero.ReadFile(fs, util.INPUT_FILE)
	require.NoError(t, err)
	assert.Equal(t, sampleDocument, string(input))
}

func TestRunMalformedInputWritesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, util.INPUT_FILE, []byte(`{"cloud_partners": nope}`), 0644))

	_, err := Run(fs, util.INPUT_FILE, util.OUTPUT_FILE, NewSource(1))
	assert.True(t, errors.Is(err, ErrParse))

	exists, err := afero.Exists(fs, util.OUTPUT_FILE)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunMissingInput(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Run(fs, util.INPUT_FILE, util.OUTPUT_FILE, NewSource(1))
	assert.True(t, errors.Is(err, ErrFileNotFound))
}
