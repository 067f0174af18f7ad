package rules

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"addition.tm", "addition.star", "addition.yaml"} {
		prog, err := Load(os.DirFS("testdata"), name, false)
		assert.NoError(err, name)
		if err != nil {
			continue
		}
		assert.Equal(additionRules, prog.Rules, name)
		assert.Equal("Q0", prog.Start, name)
	}
}

func TestLoad_Verbose(t *testing.T) {
	assert := assert.New(t)

	filesys := fstest.MapFS{
		"one.yml": &fstest.MapFile{Data: []byte("rules:\n  - [A, a, B, b, N]\n")},
	}

	prog, err := Load(filesys, "one.yml", true)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(prog.Verbose)
	assert.Equal([]Rule{{"A", "a", "B", "b", None}}, prog.Rules)

	_, err = Load(filesys, "missing.tm", false)
	assert.Error(err)
}
