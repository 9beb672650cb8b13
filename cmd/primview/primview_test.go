// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/prim/cli"
	"cogentcore.org/prim/prim"
	"cogentcore.org/prim/xyz"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/gorilla/websocket"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testGeometry = `##G4.PRIM-FORMAT-2.4
#/PVName Det:1
/ColorRGB 0 0 1
/Box 1 1 1
/Polyline
/PLVertex 0 0 0
/PLVertex 1 2 3
/EndPolyline
/Text2DS 5 5 12 run 7
`

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := &Config{}
	require.NoError(t, cli.SetFromDefaults(cfg))
	return cfg
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestConfigLoad(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, ConfigFile, "divisions = 12\nformat = \"JSON\"\n")
	cfg := &Config{}
	require.NoError(t, cfg.Load(fn))
	assert.Equal(t, 12, cfg.Divisions)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "Times-Roman", cfg.Font)
	assert.Equal(t, "localhost:8080", cfg.Addr)
	assert.Equal(t, 200*time.Millisecond, cfg.Debounce)

	opts := cfg.Options()
	assert.Equal(t, 12, opts.Divisions)

	bad := writeFile(t, dir, "bad.toml", "format = \"xml\"\n")
	assert.ErrorContains(t, (&Config{}).Load(bad), "unknown format")
	low := writeFile(t, dir, "low.toml", "divisions = 2\n")
	assert.Error(t, (&Config{}).Load(low))
}

func TestConfigHome(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	writeFile(t, home, ConfigFile, "divisions = 10\n")
	writeFile(t, home, "other.toml", "divisions = 16\n")

	cfg := &Config{}
	require.NoError(t, cfg.Load(""))
	assert.Equal(t, 10, cfg.Divisions)

	file := writeFile(t, t.TempDir(), "det.prim", testGeometry)
	cfg = &Config{}
	root := newRootCmd(cfg)
	root.SetOut(io.Discard)
	root.SetArgs([]string{"info", "--config", "~/other.toml", file})
	require.NoError(t, root.Execute())
	assert.Equal(t, 16, cfg.Divisions)
	assert.Equal(t, filepath.Join(home, "other.toml"), cfg.Config)
}

func TestConfigHighlight(t *testing.T) {
	src := "#/PVName Shield\n/Box 1 1 1"
	cfg := testConfig(t)
	cfg.Highlight = []string{"Shield"}
	sc := prim.NewInterpreter(cfg.Options()).Interpret(src)
	sd := sc.Children[0].(*xyz.Solid)
	assert.False(t, sd.Material.Wireframe)
	assert.Equal(t, 1.0, sd.Material.Opacity)

	sc = prim.NewInterpreter(nil).Interpret(src)
	sd = sc.Children[0].(*xyz.Solid)
	assert.True(t, sd.Material.Wireframe)
	assert.Equal(t, 0.8, sd.Material.Opacity)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	res, err := cfg.Open(writeFile(t, dir, "det.prim", testGeometry))
	require.NoError(t, err)
	assert.Equal(t, "det.prim", res.Scene.Name)
	assert.Len(t, res.Scene.Children, 2)
	assert.Len(t, res.Scene.Texts, 1)

	_, err = cfg.Open(writeFile(t, dir, "image.prim", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	assert.ErrorContains(t, err, "not a text file")

	_, err = cfg.Open(writeFile(t, dir, "det.obj", testGeometry))
	assert.Error(t, err)
}

func TestWriteInfo(t *testing.T) {
	cfg := testConfig(t)
	res, err := cfg.Open(writeFile(t, t.TempDir(), "det.prim", testGeometry))
	require.NoError(t, err)
	res.Warnings = []string{"line 3: label dropped: no font"}
	var buf bytes.Buffer
	WriteInfo(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)), res)
	s := buf.String()
	assert.True(t, strings.HasPrefix(s, "det.prim\n"))
	assert.Contains(t, s, "  solid      1\n")
	assert.Contains(t, s, "  lines      1\n")
	assert.Contains(t, s, "  triangles  12\n")
	assert.Contains(t, s, "  points     2\n")
	assert.Contains(t, s, "  texts      1\n")
	assert.Contains(t, s, "warning: line 3: label dropped: no font")
	assert.NotContains(t, s, "marker")
}

func TestWriteExport(t *testing.T) {
	cfg := testConfig(t)
	res, err := cfg.Open(writeFile(t, t.TempDir(), "det.prim", testGeometry))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, res.Scene, "json"))
	var js map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &js))
	assert.Equal(t, "det.prim", js["name"])
	assert.Len(t, js["nodes"], 2)

	buf.Reset()
	require.NoError(t, WriteExport(&buf, res.Scene, "yaml"))
	var ym map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &ym))
	assert.Equal(t, "det.prim", ym["name"])
	assert.Len(t, ym["texts"], 1)

	buf.Reset()
	require.NoError(t, WriteExport(&buf, res.Scene, "toml"))
	var tm map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &tm))
	assert.Equal(t, "det.prim", tm["name"])

	assert.Error(t, WriteExport(io.Discard, res.Scene, "xml"))
}

func TestWriteSprites(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	res, err := cfg.Open(writeFile(t, dir, "marks.prim", "/MarkCircle2DS 0 0 0 4\n/MarkSquare2D 0 0 0 1\n/MarkSquare2DS 1 0 0 2\n"))
	require.NoError(t, err)
	files, err := WriteSprites(res.Scene, filepath.Join(dir, "sprites"))
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "000-disc.png", filepath.Base(files[0]))
	assert.Equal(t, "001-square.png", filepath.Base(files[1]))
	img, err := imgio.Open(files[0])
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
}

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "det.prim", testGeometry)
	cfgFile := writeFile(t, dir, ConfigFile, "divisions = 12\nfont = \"Courier\"\n")

	cfg := &Config{}
	root := newRootCmd(cfg)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"info", "--config", cfgFile, "--ndiv", "30", "-q", file})
	require.NoError(t, root.Execute())
	assert.Equal(t, 30, cfg.Divisions)
	assert.Equal(t, "Courier", cfg.Font)
	assert.True(t, cfg.Quiet)
	assert.Contains(t, buf.String(), "det.prim")

	cfg = &Config{}
	root = newRootCmd(cfg)
	buf.Reset()
	root.SetOut(&buf)
	root.SetArgs([]string{"export", "--config", cfgFile, "-f", "json", file})
	require.NoError(t, root.Execute())
	assert.Equal(t, 12, cfg.Divisions)
	assert.True(t, json.Valid(buf.Bytes()))

	root = newRootCmd(&Config{})
	root.SetOut(io.Discard)
	root.SetArgs([]string{"info", "--config", cfgFile, filepath.Join(dir, "missing.prim")})
	assert.Error(t, root.Execute())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "det.prim", testGeometry)
	writeFile(t, dir, "other.prim", "")

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan bool, 10)
	done := make(chan error)
	go func() {
		done <- Watch(ctx, file, 10*time.Millisecond, func() { changed <- true })
	}()

	// keep writing until the watcher has started and seen a change
	timeout := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case <-changed:
			break loop
		case <-tick.C:
			writeFile(t, dir, "det.prim", testGeometry+"/Sphere 1\n")
		case <-timeout:
			t.Fatal("no change seen")
		}
	}
	cancel()
	assert.NoError(t, <-done)
}

func TestServer(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "det.prim", testGeometry)
	sv := NewServer(testConfig(t), file)
	ts := httptest.NewServer(sv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/scene")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	require.NoError(t, sv.Reload())
	resp, err = http.Get(ts.URL + "/scene")
	require.NoError(t, err)
	var upd Update
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&upd))
	resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, 1, upd.Version)
	require.NotNil(t, upd.Scene)
	assert.Len(t, upd.Scene.Nodes, 2)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	upd = Update{}
	require.NoError(t, conn.ReadJSON(&upd))
	assert.Equal(t, 1, upd.Version)
	assert.Equal(t, 1, sv.Clients())

	writeFile(t, dir, "det.prim", testGeometry+"/Sphere 1\n")
	require.NoError(t, sv.Reload())
	upd = Update{}
	require.NoError(t, conn.ReadJSON(&upd))
	assert.Equal(t, 2, upd.Version)
	assert.Len(t, upd.Scene.Nodes, 3)
	assert.Empty(t, upd.Error)

	writeFile(t, dir, "det.prim", "\x00\x01\x02")
	assert.Error(t, sv.Reload())
	upd = Update{}
	require.NoError(t, conn.ReadJSON(&upd))
	assert.Equal(t, 3, upd.Version)
	assert.Contains(t, upd.Error, "not a text file")
	assert.Len(t, upd.Scene.Nodes, 3)
}
