package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	cfg, err := loadConfig("testdata/addition.toml")
	assert.NoError(err)

	assert.Equal(config{
		Program:  "testdata/addition.tm",
		Input:    "testdata/addition.in",
		Encoding: "ordinal",
		MaxSteps: 500,
		Delay:    250 * time.Millisecond,
	}, cfg)
}

func TestLoadConfig_Defaults(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "empty.toml")
	assert.NoError(os.WriteFile(path, []byte("program = \"x.tm\"\n"), 0o644))

	cfg, err := loadConfig(path)
	assert.NoError(err)
	assert.Equal("-", cfg.Input)
	assert.Equal("raw", cfg.Encoding)
	assert.Equal("x.tm", cfg.Program)
}

func TestLoadConfig_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	assert.NoError(os.WriteFile(path, []byte("max_steps = \"many\"\n"), 0o644))
	_, err = loadConfig(path)
	assert.Error(err)
}

func TestMergeConfig(t *testing.T) {
	assert := assert.New(t)

	file := config{
		Program:  "file.tm",
		Input:    "file.in",
		Encoding: "ordinal",
		MaxSteps: 10,
		Show:     true,
	}
	flags := config{
		Program:  "flag.tm",
		Input:    "-",
		Encoding: "raw",
		MaxSteps: 20,
		Verbose:  true,
	}

	cfg := mergeConfig(file, flags, map[string]bool{"p": true, "max": true, "v": true})
	assert.Equal(config{
		Program:  "flag.tm",
		Input:    "file.in",
		Encoding: "ordinal",
		MaxSteps: 20,
		Show:     true,
		Verbose:  true,
	}, cfg)

	assert.Equal(file, mergeConfig(file, flags, nil))
}
