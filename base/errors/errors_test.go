// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := fmt.Errorf("boom")
	assert.Equal(t, err, Log(err))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(3, fmt.Errorf("boom")))
	assert.Equal(t, "", Log1("x", fmt.Errorf("boom")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(fmt.Errorf("boom")) })
}

func TestMust1(t *testing.T) {
	assert.Equal(t, "ok", Must1("ok", nil))
	assert.Panics(t, func() { Must1("ok", fmt.Errorf("boom")) })
}
