package rules

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStarlark(t *testing.T) {
	assert := assert.New(t)

	src, err := os.ReadFile("testdata/addition.star")
	assert.NoError(err)

	prog, err := ParseStarlark("addition.star", src)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(additionRules, prog.Rules)
	assert.Equal("Q0", prog.Start)
}

func TestParseStarlark_Generated(t *testing.T) {
	assert := assert.New(t)

	src := `
rules = []
for n in range(3):
    rules.append(("S%d" % n, "1", "S%d" % (n + 1), "1", R))
start = "S0"
`

	prog, err := ParseStarlark("count.star", src)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]Rule{
		{"S0", "1", "S1", "1", Right},
		{"S1", "1", "S2", "1", Right},
		{"S2", "1", "S3", "1", Right},
	}, prog.Rules)
	assert.Equal([]string{"S0", "S1", "S2", "S3"}, prog.States)
}

func TestParseStarlark_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		src  string
		err  error
	}){
		{"no rules", `x = 1`, ErrScriptRules},
		{"not iterable", `rules = 1`, ErrScriptRules},
		{"entry", `rules = [1]`, ErrScriptEntry},
		{"field", `rules = [("Q0", 0, "Q1", "X", R)]`, ErrScriptEntry},
		{"short", `rules = [("Q0", "0", "Q1", "X")]`, ErrFieldCount},
		{"direction", `rules = [("Q0", "0", "Q1", "X", "U")]`, ErrDirectionInvalid},
		{"start type", "rules = []\nstart = 3", ErrScriptStart},
		{"start unknown", "rules = [(\"Q0\", \"0\", \"Q1\", \"X\", R)]\nstart = \"Q7\"", ErrStateUnknown},
	}

	for _, entry := range table {
		prog, err := ParseStarlark(entry.name, entry.src)
		assert.Nil(prog, entry.name)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.name, err)
	}

	_, err := ParseStarlark("syntax", "rules = [")
	assert.Error(err)
}
