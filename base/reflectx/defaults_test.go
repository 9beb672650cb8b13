// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testServe struct {
	Addr     string        `default:"localhost:8080"`
	Debounce time.Duration `default:"200ms"`
}

type testConfig struct {
	Ndiv    int      `default:"24"`
	Font    string   `default:"Times-Roman"`
	Scale   float64  `default:"0.1"`
	Verbose bool     `default:"true"`
	Formats []string `default:"yaml,json"`
	Plain   int
	Serve   testServe
}

func TestSetFromDefaultTags(t *testing.T) {
	c := &testConfig{Plain: 7}
	assert.NoError(t, SetFromDefaultTags(c))
	assert.Equal(t, 24, c.Ndiv)
	assert.Equal(t, "Times-Roman", c.Font)
	assert.Equal(t, 0.1, c.Scale)
	assert.True(t, c.Verbose)
	assert.Equal(t, []string{"yaml", "json"}, c.Formats)
	assert.Equal(t, 7, c.Plain)
	assert.Equal(t, "localhost:8080", c.Serve.Addr)
	assert.Equal(t, 200*time.Millisecond, c.Serve.Debounce)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaultTags(testConfig{}))

	type bad struct {
		N int `default:"many"`
	}
	assert.Error(t, SetFromDefaultTags(&bad{}))
	assert.NoError(t, SetFromDefaultTags(nil))
}

func TestNonPointerValue(t *testing.T) {
	v := 1
	p := &v
	assert.Equal(t, reflect.Int, NonPointerValue(reflect.ValueOf(&p)).Kind())
}
