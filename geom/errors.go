// SPDX-License-Identifier: MIT

package geom

import "errors"

// ErrNoPoints indicates an operation that needs at least one point got none.
var ErrNoPoints = errors.New("geom: no points")
