package step

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/progress"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	cmd "github.com/bitrise-steplib/steps-xcode-invoke/command"
	"github.com/bitrise-steplib/steps-xcode-invoke/output"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcode"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcodecommand"
	"github.com/hashicorp/go-version"
	shellquote "github.com/kballard/go-shellquote"
)

// Input ...
type Input struct {
	// Xcode selection
	SwiftVersion string `env:"swift_version"`
	DeveloperDir string `env:"developer_dir"`
	Toolchain    string `env:"toolchain"`

	// Command
	Command        string `env:"command,required"`
	OutputMode     string `env:"output_mode,opt[stdout,separate,combined]"`
	CommandTimeout int    `env:"command_timeout"`

	// Debug
	Verbose bool `env:"verbose,opt[yes,no]"`

	// Output export
	DeployDir string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	SwiftVersion *version.Version
	DeveloperDir string
	Toolchain    string

	CommandArgs    []string
	OutputMode     xcodecommand.Mode
	CommandTimeout time.Duration

	DeployDir string
}

// XcodeInvokeConfigParser ...
type XcodeInvokeConfigParser struct {
	inputParser  stepconf.InputParser
	logger       log.Logger
	pathModifier pathutil.PathModifier
}

// NewXcodeInvokeConfigParser ...
func NewXcodeInvokeConfigParser(inputParser stepconf.InputParser, logger log.Logger, pathModifier pathutil.PathModifier) XcodeInvokeConfigParser {
	return XcodeInvokeConfigParser{
		inputParser:  inputParser,
		logger:       logger,
		pathModifier: pathModifier,
	}
}

// ProcessConfig ...
func (p XcodeInvokeConfigParser) ProcessConfig() (Config, error) {
	var input Input
	err := p.inputParser.Parse(&input)
	if err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	p.logger.Println()

	p.logger.EnableDebugLog(input.Verbose)

	commandArgs, err := shellquote.Split(input.Command)
	if err != nil {
		return Config{}, fmt.Errorf("failed to split Command (command) %s: %w", input.Command, err)
	}
	if len(commandArgs) == 0 {
		return Config{}, errors.New("Command (command) is empty")
	}

	outputMode, ok := xcodecommand.ParseMode(input.OutputMode)
	if !ok {
		return Config{}, fmt.Errorf("internal error, unexpected value (%s) for output_mode", input.OutputMode)
	}

	if input.CommandTimeout < 0 {
		return Config{}, fmt.Errorf("invalid Command timeout (command_timeout): %d, should not be negative", input.CommandTimeout)
	}

	if input.SwiftVersion != "" && input.DeveloperDir != "" {
		return Config{}, errors.New("Swift version (swift_version) and Developer directory (developer_dir) cannot be used together")
	}
	if input.SwiftVersion != "" && input.Toolchain != "" {
		return Config{}, errors.New("Swift version (swift_version) selects the toolchain, it cannot be used together with Toolchain (toolchain)")
	}

	var swiftVersion *version.Version
	if input.SwiftVersion != "" {
		swiftVersion, err = version.NewVersion(input.SwiftVersion)
		if err != nil {
			return Config{}, fmt.Errorf("invalid Swift version (swift_version) %s: %w", input.SwiftVersion, err)
		}
	}

	developerDir, err := p.absPath(input.DeveloperDir)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute developer dir path: %w", err)
	}

	toolchain, err := p.absPath(input.Toolchain)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute toolchain path: %w", err)
	}

	return Config{
		SwiftVersion: swiftVersion,
		DeveloperDir: developerDir,
		Toolchain:    toolchain,

		CommandArgs:    commandArgs,
		OutputMode:     outputMode,
		CommandTimeout: time.Duration(input.CommandTimeout) * time.Second,

		DeployDir: input.DeployDir,
	}, nil
}

func (p XcodeInvokeConfigParser) absPath(pth string) (string, error) {
	if pth == "" {
		return "", nil
	}
	return p.pathModifier.AbsPath(pth)
}

// XcodeInvoker ...
type XcodeInvoker struct {
	logger         log.Logger
	locator        XcodeLocator
	outputExporter output.Exporter
}

// NewXcodeInvoker ...
func NewXcodeInvoker(logger log.Logger, locator XcodeLocator, outputExporter output.Exporter) XcodeInvoker {
	return XcodeInvoker{
		logger:         logger,
		locator:        locator,
		outputExporter: outputExporter,
	}
}

// Result ...
type Result struct {
	Xcode     output.SelectedXcode
	ExitCode  int
	Output    string
	DeployDir string
}

// Run ...
func (s XcodeInvoker) Run(cfg Config) (Result, error) {
	ctx := context.Background()

	installation, err := s.selectInstallation(ctx, cfg)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Xcode:     s.describe(ctx, installation),
		DeployDir: cfg.DeployDir,
	}

	s.logger.Infof("Selected Xcode")
	s.logger.Printf("- developer dir: %s", result.Xcode.DeveloperDir)
	if result.Xcode.Toolchain != "" {
		s.logger.Printf("- toolchain: %s", result.Xcode.Toolchain)
	}
	s.logger.Printf("- xcodebuildVersion: %s (%s)", result.Xcode.XcodeVersion, result.Xcode.BuildVersion)
	s.logger.Printf("- swiftVersion: %s", result.Xcode.SwiftVersion)
	s.logger.Println()

	runCtx := ctx
	if cfg.CommandTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cfg.CommandTimeout)
		defer cancel()
	}

	envs := []string{fmt.Sprintf("%s=%s", xcode.DeveloperDirEnvKey, installation.DeveloperDir())}
	s.logger.Infof("Running command")
	s.logger.Donef("$ %s", cmd.PrintableCommandArgsWithEnvs(cfg.CommandArgs, envs))

	var (
		out    xcodecommand.Output
		runErr error
	)
	progress.SimpleProgress(".", time.Minute, func() {
		out, runErr = installation.Run(runCtx, cfg.CommandArgs, xcode.RunOpts{Mode: cfg.OutputMode})
	})
	s.logger.Println()

	result.ExitCode = out.ExitCode
	result.Output = string(out.Stdout)
	if len(out.Stderr) > 0 {
		result.Output += string(out.Stderr)
	}

	if runErr != nil {
		return result, fmt.Errorf("failed to run %s: %w", cfg.CommandArgs[0], runErr)
	}

	if out.ExitCode != 0 {
		return result, fmt.Errorf("%s exited with code %d", cfg.CommandArgs[0], out.ExitCode)
	}

	return result, nil
}

func (s XcodeInvoker) selectInstallation(ctx context.Context, cfg Config) (Installation, error) {
	switch {
	case cfg.SwiftVersion != nil:
		s.logger.Printf("Searching for an Xcode with Swift %s", cfg.SwiftVersion)
		installation, err := s.locator.FindSwiftVersion(ctx, cfg.SwiftVersion)
		if err != nil {
			return nil, fmt.Errorf("failed to find Xcode: %w", err)
		}
		return installation, nil
	case cfg.DeveloperDir != "":
		return s.locator.Installation(cfg.DeveloperDir, cfg.Toolchain), nil
	default:
		installation, err := s.locator.Selected(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get the selected Xcode: %w", err)
		}
		if cfg.Toolchain != "" {
			return s.locator.Installation(installation.DeveloperDir(), cfg.Toolchain), nil
		}
		return installation, nil
	}
}

func (s XcodeInvoker) describe(ctx context.Context, installation Installation) output.SelectedXcode {
	selected := output.SelectedXcode{
		DeveloperDir: installation.DeveloperDir(),
		Toolchain:    installation.Toolchain(),
	}

	if info, ok := installation.XcodebuildInfo(ctx); ok {
		selected.XcodeVersion = info.Version
		selected.BuildVersion = info.BuildVersion
	} else {
		s.logger.Warnf("Failed to determine the Xcode version of %s", installation)
	}

	if swiftVersion, ok := installation.SwiftVersion(ctx); ok {
		selected.SwiftVersion = swiftVersion.Original()
	} else {
		s.logger.Warnf("Failed to determine the Swift version of %s", installation)
	}

	return selected
}

// Export ...
func (s XcodeInvoker) Export(result Result, failed bool) error {
	s.outputExporter.ExportCommandResult(failed)

	if result.Xcode.DeveloperDir != "" {
		s.outputExporter.ExportSelectedXcode(result.Xcode)
	}

	if result.Output == "" {
		return nil
	}

	logExported := false
	if result.DeployDir != "" {
		if err := s.outputExporter.ExportCommandLog(result.DeployDir, result.Output); err != nil {
			return err
		}
		logExported = true
	}

	printLastLinesOfCommandLog(s.logger, result.Output, !failed, logExported)

	return nil
}
