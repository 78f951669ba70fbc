package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsDocuments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.demo")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, run(options{Color: "never", Trace: "error"}, &buf))
	out := buf.String()
	assert.Contains(t, out, `<a href="/page1" class="class1 class2 " id="id_1"><a href="#me" id="id_2" data-role="button"></a></a>`)
	assert.Contains(t, out, `<a href="/about">hello, worldtext</a>`)
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestRunWithTreeAndDot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(options{Tree: true, Dot: true, Color: "never", Trace: "error"}, &buf))
	assert.Contains(t, buf.String(), "digraph g {")
	assert.Contains(t, buf.String(), `#text "hello, world"`)
}

func TestRunRejectsUnknownOptions(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, run(options{Color: "sometimes", Trace: "error"}, &buf), cli.ErrUsage)
	assert.ErrorIs(t, run(options{Color: "never", Trace: "verbose"}, &buf), cli.ErrUsage)
}

func TestRunDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(options{}, &buf)) // auto color on a non-terminal writer
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), `<a href="/about">hello, worldtext</a>`)
}

func TestCommandBuilds(t *testing.T) {
	cmd := command()
	require.NotNil(t, cmd)
}
