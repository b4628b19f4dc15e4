// Package cmd is the top-level driver for the flowpathc command-line tool:
// argument parsing and orchestration of the lowering library against a
// project's on-disk configuration.
package cmd

import (
	"fmt"
	"os"

	"github.com/ComedicChimera/olive"

	"flowpathc/common"
	"flowpathc/config"
	"flowpathc/pipeline"
	"flowpathc/report"
)

// Execute is the entry point for the `flowpathc` command-line utility.
func Execute() {
	cli := olive.NewCLI("flowpathc", "flowpathc is the lowering stage of the flowpath compiler", true)

	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the reporter log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("warn")

	checkCmd := cli.AddSubcommand("check", "validate a project's configuration and field-mapping table", true)
	checkCmd.AddPrimaryArg("project-path", "the path to the project directory", true)

	cli.AddSubcommand("version", "print the flowpathc version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("%s", err)
		return
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		report.InitReporter(logLevelArg(result))
		execCheckCommand(subResult)
	case "version":
		fmt.Println("flowpathc", common.FlowpathVersion)
	default:
		fmt.Println("usage: flowpathc <check|version> [arguments]")
	}
}

func logLevelArg(result *olive.ArgParseResult) int {
	lvl, _ := result.Arguments["loglevel"].(string)
	switch lvl {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "verbose":
		return report.LogLevelVerbose
	default:
		return report.LogLevelWarn
	}
}

// execCheckCommand loads a project's flowpath.mod and, if it declares one,
// its field-mapping file, reporting any error found in either.  It does not
// lower anything -- lowering an actual module requires a name-resolved,
// type-checked AST, which is produced by the (out of scope) front end and
// handed to this package's lower.Lowerer as a library call.
func execCheckCommand(result *olive.ArgParseResult) {
	rootPath, _ := result.PrimaryArg()

	proj, err := config.LoadProject(rootPath)
	if err != nil {
		report.ReportFatal("%s", err)
		return
	}

	fields := pipeline.NewFieldMapping()
	if proj.FieldMappingPath != "" {
		fields, err = pipeline.LoadFieldMapping(proj.FieldMappingPath)
		if err != nil {
			report.ReportFatal("%s", err)
			return
		}
	}

	fmt.Printf("project `%s` is valid (%d field mappings loaded)\n", proj.Name, fields.Len())
}
