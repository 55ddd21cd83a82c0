package ingest_test

import (
	"strings"
	"testing"

	"github.com/qepting91/complaint-harvester/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargets(t *testing.T) {
	t.Parallel()

	src := "\uFEFFcompany,max_items\n" +
		"turk-telekom,100\n" +
		" Vodafone , 25 \n" +
		"bad slug!,10\n" +
		"turkcell,0\n" +
		"superonline,abc\n" +
		"lonely\n" +
		"a101,5\n"

	targets, err := ingest.ParseTargets(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []ingest.Target{
		{Company: "turk-telekom", MaxItems: 100},
		{Company: "vodafone", MaxItems: 25},
		{Company: "a101", MaxItems: 5},
	}, targets)
}

func TestLoadTargets_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ingest.LoadTargets("does/not/exist.csv")
	assert.Error(t, err)
}
