// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHandler is returned by NewServer when there is nothing to serve or
// nowhere to listen.
var errNoHandler = errors.New("server needs a handler and a listen address")
