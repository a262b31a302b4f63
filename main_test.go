package main

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/netmap-visualization/internal/asset"
	"github.com/iburimskiy/netmap-visualization/internal/game"
)

func TestDescribe(t *testing.T) {
	err := &asset.LoadError{Path: "map.jpg", Err: os.ErrNotExist}
	assert.Contains(t, describe(err), "map image could not be loaded")
	assert.Contains(t, describe(err), "map.jpg")

	err2 := &game.SurfaceUnavailableError{Layer: "track", Err: errors.New("boom")}
	assert.Contains(t, describe(err2), "No drawing surface")

	assert.Equal(t, "plain", describe(errors.New("plain")))
}
