package common

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
)

const JSONOutputFlag = "json"

type ICommandResult interface {
	GetOutput() string
}

type OutputFormatter interface {
	SetError(err error)
	SetCommandResult(result ICommandResult)
	WriteOutput()
	WriteCommandResult(result ICommandResult) error
}

type CliCommandExecutor interface {
	Execute(outputter OutputFormatter) (ICommandResult, error)
}

type cliOutput struct {
	err        error
	result     ICommandResult
	jsonOutput bool
}

var _ OutputFormatter = (*cliOutput)(nil)

func InitializeOutputter(cmd *cobra.Command) OutputFormatter {
	jsonOutput := false

	if flag := cmd.Flags().Lookup(JSONOutputFlag); flag != nil {
		jsonOutput = flag.Value.String() == "true"
	}

	return &cliOutput{jsonOutput: jsonOutput}
}

func (o *cliOutput) SetError(err error) {
	o.err = err
}

func (o *cliOutput) SetCommandResult(result ICommandResult) {
	o.result = result
}

func (o *cliOutput) WriteCommandResult(result ICommandResult) error {
	return o.write(result)
}

func (o *cliOutput) WriteOutput() {
	if o.err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[ERROR]\n%s\n", o.err.Error())

		os.Exit(1)
	}

	if o.result != nil {
		_ = o.write(o.result)
	}
}

func (o *cliOutput) write(result ICommandResult) error {
	if o.jsonOutput {
		bytes, err := json.MarshalIndent(result, "", "\t")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(os.Stdout, string(bytes))

		return err
	}

	_, err := fmt.Fprintln(os.Stdout, result.GetOutput())

	return err
}

func GetCliRunCommand(executor CliCommandExecutor) func(cmd *cobra.Command, _ []string) {
	return func(cmd *cobra.Command, _ []string) {
		outputter := InitializeOutputter(cmd)
		defer outputter.WriteOutput()

		result, err := executor.Execute(outputter)
		if err != nil {
			outputter.SetError(err)

			return
		}

		outputter.SetCommandResult(result)
	}
}

// FormatKV formats "key|value" rows as aligned columns
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}
