// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package parse is the top-level package for the highlighting grammars.

The code is organized into sub-packages dealing with the different
stages: lexer has the mode-based scanning engine, languages has the
registry of grammars and one package per language (currently python),
and supportedlanguages imports them all.
*/
package parse
