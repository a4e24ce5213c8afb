package command

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PrintableCommandArgs ...
func PrintableCommandArgs(fullCommandArgs []string) string {
	return PrintableCommandArgsWithEnvs(fullCommandArgs, []string{})
}

// PrintableCommandArgsWithEnvs ...
func PrintableCommandArgsWithEnvs(fullCommandArgs []string, envs []string) string {
	cmdArgsDecorated := []string{}
	for idx, anArg := range fullCommandArgs {
		quotedArg := strconv.Quote(anArg)
		if idx == 0 {
			quotedArg = anArg
		}
		cmdArgsDecorated = append(cmdArgsDecorated, quotedArg)
	}

	fullCmdArgs := cmdArgsDecorated
	if len(envs) > 0 {
		fullCmdArgs = []string{"env"}
		for _, anArg := range envs {
			quotedArg := strconv.Quote(anArg)
			fullCmdArgs = append(fullCmdArgs, quotedArg)
		}
		fullCmdArgs = append(fullCmdArgs, cmdArgsDecorated...)
	}

	return strings.Join(fullCmdArgs, " ")
}

// EnvList converts an environment map to KEY=value pairs, sorted by key.
func EnvList(envs map[string]string) []string {
	keys := make([]string, 0, len(envs))
	for key := range envs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	list := make([]string, 0, len(keys))
	for _, key := range keys {
		list = append(list, fmt.Sprintf("%s=%s", key, envs[key]))
	}
	return list
}

// EnvMap parses KEY=value pairs, later pairs override earlier ones.
func EnvMap(envs []string) map[string]string {
	m := make(map[string]string, len(envs))
	for _, pair := range envs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		m[key] = value
	}
	return m
}
