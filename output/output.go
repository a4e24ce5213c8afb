package output

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
)

// Exported environment variables ...
const (
	DeveloperDirKey  = "XCODE_DEVELOPER_DIR"
	ToolchainKey     = "XCODE_TOOLCHAIN"
	XcodeVersionKey  = "XCODE_VERSION"
	BuildVersionKey  = "XCODE_BUILD_VERSION"
	SwiftVersionKey  = "XCODE_SWIFT_VERSION"
	CommandResultKey = "XCODE_INVOKE_RESULT"
	CommandLogKey    = "XCODE_INVOKE_LOG_PATH"
)

const commandLogFileName = "xcode_invoke.log"

// SelectedXcode ...
type SelectedXcode struct {
	DeveloperDir string
	Toolchain    string
	XcodeVersion string
	BuildVersion string
	SwiftVersion string
}

// Exporter ...
type Exporter interface {
	ExportSelectedXcode(xcode SelectedXcode)
	ExportCommandResult(failed bool)
	ExportCommandLog(deployDir, commandLog string) error
}

type exporter struct {
	envRepository env.Repository
	logger        log.Logger
	fileManager   fileutil.FileManager
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, fileManager fileutil.FileManager) Exporter {
	return &exporter{
		envRepository: envRepository,
		logger:        logger,
		fileManager:   fileManager,
	}
}

func (e exporter) ExportSelectedXcode(xcode SelectedXcode) {
	for _, pair := range [][2]string{
		{DeveloperDirKey, xcode.DeveloperDir},
		{ToolchainKey, xcode.Toolchain},
		{XcodeVersionKey, xcode.XcodeVersion},
		{BuildVersionKey, xcode.BuildVersion},
		{SwiftVersionKey, xcode.SwiftVersion},
	} {
		if err := e.envRepository.Set(pair[0], pair[1]); err != nil {
			e.logger.Warnf("Failed to export: %s: %s", pair[0], err)
		}
	}
}

func (e exporter) ExportCommandResult(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	if err := e.envRepository.Set(CommandResultKey, status); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", CommandResultKey, err)
	}
}

func (e exporter) ExportCommandLog(deployDir, commandLog string) error {
	if deployDir == "" {
		return errors.New("no deploy dir set")
	}

	pth := filepath.Join(deployDir, commandLogFileName)
	if err := e.fileManager.Write(pth, commandLog, 0644); err != nil {
		return fmt.Errorf("failed to write command log: %w", err)
	}

	if err := e.envRepository.Set(CommandLogKey, pth); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", CommandLogKey, err)
	}

	return nil
}
