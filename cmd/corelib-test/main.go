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

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "corelib-test",
		Usage:     "run the corelib TestVector scenarios (spec.md §6, §8)",
		UsageText: "corelib-test [test index]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				os.Exit(runAll())
			}

			index, err := strconv.Atoi(c.Args().Get(0))
			if err != nil || index < 0 || index >= len(vectors) {
				return cli.Exit(fmt.Sprintf("invalid test index %q: must be 0..%d", c.Args().Get(0), len(vectors)-1), 2)
			}
			os.Exit(runVector(index))
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
