// Copyright 2024 The Corelib Authors
// This file is part of corelib.
//
// corelib is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// corelib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with corelib. If not, see <http://www.gnu.org/licenses/>.

package object

import "github.com/petermattis/goid"

// goroutineToken approximates the "current thread" the C++ original keys its
// default autorelease pool by. goid reads the runtime goroutine id out of
// the scheduler state; it is a diagnostic identifier, not an API Go
// guarantees, but it is exactly what the wider pack reaches for (go-deadlock
// uses it to label lock owners) when code ported from a thread-per-task
// runtime needs a stable per-goroutine key.
func goroutineToken() uint64 {
	return uint64(goid.Get())
}
