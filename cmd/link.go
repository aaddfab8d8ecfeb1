package cmd

import (
	"bytes"
	"os/exec"

	"kushld/report"
	"kushld/toolchain"
)

// Link synthesizes the external link command for the driver's job and runs
// it.  It returns whether the link succeeded.
func (d *Driver) Link(cfg *toolchain.Config) bool {
	defer report.CatchErrors()

	// Synthesis still produces a best-effort command when it reports
	// recoverable diagnostics; the exit code accounts for them later.
	command := toolchain.SynthesizeLink(d.spec, cfg)

	// Run the linker.
	link := exec.Command(command.Path, command.Args...)
	stderrBuff := bytes.Buffer{}
	link.Stderr = &stderrBuff

	if err := link.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// Exit error => we were able to run the linker, but there were
			// link errors.  We can just relay those to the user.
			report.ReportError("link error:\n%s", stderrBuff.String())
		} else {
			// Some other error: probably couldn't spawn the linker.
			report.ReportFatal("failed to run linker: %s", err.Error())
		}

		return false
	}

	return true
}
