// spvdis disassembles SPIR-V binary modules into .spvasm text.
package main

import (
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

func main() {
	app := &cli.Command{
		Name:        "spvdis",
		Description: "spvdis disassembles SPIR-V binaries into readable assembly",
		Args:        cli.Args{},
		Action:      disAct,
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func disAct(c *cli.Command) (err error) {
	if len(c.Args) == 0 {
		return errors.New("usage: spvdis <file.spv>...")
	}

	for _, a := range c.Args {
		data, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}

		n, err := disassemble(os.Stdout, data)
		if err != nil {
			return errors.Wrap(err, "disassemble %v", a)
		}

		tlog.V("stats").Printw("disassembled", "file", a, "instructions", n)
	}

	return nil
}
