// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package supportedlanguages includes all the supported languages for
// highlighting: import this package to get them all registered in a
// given target.
package supportedlanguages

import (
	_ "cogentcore.org/highlight/text/parse/languages/python"
)
