package cmd

import (
	"os"

	"cruxc/report"

	"github.com/ComedicChimera/olive"
)

// CruxcVersion is the current version string of the Crux comptime evaluator.
const CruxcVersion = "0.1.0"

// loglevels maps log level argument values to reporter log levels.
var loglevels = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// Execute is the main entry point for the `cruxi` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("cruxi", "cruxi is a debugging tool for the Crux compile-time evaluator", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	evalCmd := cli.AddSubcommand("eval", "evaluate a single scalar operation", true)
	evalCmd.AddPrimaryArg("operator", "the name of the operator to apply", true)
	evalCmd.AddStringArg("type", "t", "the operand type", true)
	evalCmd.AddStringArg("lhs", "l", "the left (or sole) operand literal", true)
	evalCmd.AddStringArg("rhs", "r", "the right operand literal", false)
	evalCmd.AddStringArg("shift-type", "st", "the right operand type for shift operators", false)
	evalCmd.AddStringArg("target", "tg", "the path to a TOML target description", false)

	cli.AddSubcommand("version", "print the evaluator version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportFatal(err.Error())
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "eval":
		execEvalCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		report.InitReporter(report.LogLevelVerbose)
		report.DisplayInfoMessage("Crux Comptime", CruxcVersion)
	}
}
