package clirelayerkey

import (
	"bytes"
	"fmt"

	"github.com/Ethernal-Tech/ovm-message-relayer/common"
)

type CmdResult struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey,omitempty"`
}

func (r CmdResult) GetOutput() string {
	var buffer bytes.Buffer

	vals := []string{fmt.Sprintf("Address|%s", r.Address)}

	if r.PrivateKey != "" {
		vals = append(vals, fmt.Sprintf("Private Key|%s", r.PrivateKey))
	}

	buffer.WriteString("\n[RELAYER KEY]\n")
	buffer.WriteString(common.FormatKV(vals))
	buffer.WriteString("\n")

	return buffer.String()
}
