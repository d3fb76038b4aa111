// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned from NewServer when the config yields no
// transport to serve, i.e. the HTTP address is empty.
var errNoServersAreCreated = errors.New("no servers are created")
