package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	var out bytes.Buffer
	logger := log.New(&out, "", 0)
	released := 0
	release := func() { released++ }

	assert.Equal(t, 0, exitCode(nil, logger, release))
	assert.Equal(t, 0, exitCode(ebiten.Termination, logger, release))
	assert.Equal(t, 0, exitCode(fmt.Errorf("update: %w", ebiten.Termination), logger, release))
	assert.Zero(t, released)
	assert.Empty(t, out.String())

	assert.Equal(t, 1, exitCode(errors.New("graphics driver lost"), logger, release))
	assert.Equal(t, 1, released)
	assert.Contains(t, out.String(), "graphics driver lost")
}
