package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-steputils/v2/stepenv"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-xcode-invoke/output"
	"github.com/bitrise-steplib/steps-xcode-invoke/step"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcode"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcodecommand"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()
	configParser, xcodeInvoker := createStep(logger)

	config, err := configParser.ProcessConfig()
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return 1
	}

	result, runErr := xcodeInvoker.Run(config)
	if runErr != nil {
		logger.Errorf("%s", runErr)
	}

	if err := xcodeInvoker.Export(result, runErr != nil); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return 1
	}

	if runErr != nil {
		return 1
	}

	logger.Println()
	logger.Donef("Command finished")
	return 0
}

func createStep(logger log.Logger) (step.XcodeInvokeConfigParser, step.XcodeInvoker) {
	osEnvRepository := env.NewRepository()
	envRepository := stepenv.NewRepository(osEnvRepository)
	commandFactory := command.NewFactory(osEnvRepository)

	inputParser := stepconf.NewInputParser(osEnvRepository)
	pathModifier := pathutil.NewPathModifier()
	configParser := step.NewXcodeInvokeConfigParser(inputParser, logger, pathModifier)

	runner := xcodecommand.NewRunner(logger, commandFactory, osEnvRepository)
	fileSystem := xcode.NewFileSystem(pathutil.NewPathChecker())
	locator := xcode.NewLocator(logger, runner, fileSystem, osEnvRepository)

	outputExporter := output.NewExporter(envRepository, logger, fileutil.NewFileManager())
	xcodeInvoker := step.NewXcodeInvoker(logger, step.NewXcodeLocator(locator), outputExporter)

	return configParser, xcodeInvoker
}
