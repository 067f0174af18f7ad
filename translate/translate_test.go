package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/message"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 oops", From("line %d %v", 3, "oops"))
	assert.Equal("plain", From("plain"))
}

func TestLanguage(t *testing.T) {
	assert := assert.New(t)

	printer := message.NewPrinter(Language())
	assert.Equal(printer.Sprintf("%d cycles", 1234567), From("%d cycles", 1234567))
}
