package options

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	o, _, err := Parse("gopong", nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 300, *o.Width)
	assert.Equal(t, 300, *o.Height)
	assert.Equal(t, "Pong!", *o.Title)
	assert.Equal(t, "shaders/pong.vert", *o.VertexShader)
	assert.Equal(t, "shaders/pong.frag", *o.FragmentShader)
	assert.Equal(t, "quad", *o.Mesh)
	assert.False(t, *o.Watch)

	c, err := o.RGBA()
	require.NoError(t, err)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1}, c)
}

func TestParseFlags(t *testing.T) {
	o, _, err := Parse("gopong", []string{"-width", "800", "-title", "Paddles", "-mesh", "paddles", "-clear", "0,0,0"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 800, *o.Width)
	assert.Equal(t, "Paddles", *o.Title)
	assert.Equal(t, "paddles", *o.Mesh)
	c, err := o.RGBA()
	require.NoError(t, err)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, c)
}

func TestParseInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "0"},
		{"-mesh", "cube"},
		{"-clear", "1,2,3"},
		{"-clear", "red"},
		{"-nope"},
	} {
		_, _, err := Parse("gopong", args, io.Discard)
		assert.Error(t, err, "%v", args)
	}

	_, _, err := Parse("gopong", []string{"-h"}, io.Discard)
	assert.True(t, IsHelp(err))
}

func TestConfigFileMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
width = 640
height = 480
title = "From file"
vertex_shader = "assets/a.vert"
clear_color = [0.5, 0.25, 0.0, 1.0]
watch = true
`), 0o644))

	o, _, err := Parse("gopong", []string{"-config", path, "-title", "From flag"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 640, *o.Width)
	assert.Equal(t, 480, *o.Height)
	assert.Equal(t, "From flag", *o.Title, "flags win over the file")
	assert.Equal(t, "assets/a.vert", *o.VertexShader)
	assert.Equal(t, "shaders/pong.frag", *o.FragmentShader, "absent keys keep the default")
	assert.True(t, *o.Watch)

	c, err := o.RGBA()
	require.NoError(t, err)
	assert.Equal(t, [4]float32{0.5, 0.25, 0, 1}, c)
}

func TestConfigFileErrors(t *testing.T) {
	_, _, err := Parse("gopong", []string{"-config", filepath.Join(t.TempDir(), "missing.toml")}, io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = \n"), 0o644))
	_, err = LoadFile(path)
	assert.ErrorContains(t, err, "failed to parse config")
}
