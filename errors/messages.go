package errors

import (
	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/fossas/vcsfetch/vcs"
)

const width = 78

var ReportBugMessage = `

` + color.HiYellowString("REPORTING A BUG:") + `
` + wordwrap.WrapString("Please try troubleshooting before filing a bug. If the suggestions do not help you can file a bug at "+color.HiBlueString("https://github.com/fossas/vcsfetch/issues/new")+".", width) + `
` + wordwrap.WrapString("Please attach the debug logs from:", width) + `

  ` + color.HiGreenString("vcsfetch <cmd> --debug")

var installURLs = map[string]string{
	"git": "https://git-scm.com/downloads",
	"hg":  "https://www.mercurial-scm.org/downloads",
}

// InstallMessage tells the user how to make a VCS client reachable.
func InstallMessage(d vcs.Descriptor) string {
	msg := "Please install " + d.Name
	if url, ok := installURLs[d.Directory]; ok {
		msg += " (" + color.HiBlueString(url) + ")"
	}
	return msg + " and make sure " + color.HiGreenString(d.Executable) +
		" is on your PATH. You can also point vcsfetch at the executable with " +
		color.HiGreenString("$"+envOverride(d)) + "."
}

func envOverride(d vcs.Descriptor) string {
	if d.Directory == string(vcs.Mercurial) {
		return "HG_BINARY"
	}
	return "GIT_BINARY"
}
