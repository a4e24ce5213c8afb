package step

import (
	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bitrise-io/go-utils/stringutil"
	"github.com/bitrise-io/go-utils/v2/log"
)

func printLastLinesOfCommandLog(logger log.Logger, rawOutput string, isRunSuccess, logExported bool) {
	const lastLines = "Last lines of the command log:"
	if !isRunSuccess {
		logger.Errorf(lastLines)
	} else {
		logger.Infof(lastLines)
	}

	logger.Printf("%s", stringutil.LastNLines(rawOutput, 20))

	if !logExported {
		return
	}

	if !isRunSuccess {
		logger.Warnf("If you can't find the reason of the error in the log, please check the xcode_invoke.log.")
	}

	logger.Infof(colorstring.Magenta(`
The log file is stored in $BITRISE_DEPLOY_DIR, and its full path
is available in the $XCODE_INVOKE_LOG_PATH environment variable.

If you have the Deploy to Bitrise.io step (after this step),
that will attach the file to your build as an artifact!`))
}
