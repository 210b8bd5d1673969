package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// lineConfirmer asks y/N questions on a line-oriented terminal.
type lineConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func (c lineConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	fmt.Fprint(c.out, styles.Warning.Render(prompt)+" [y/N] ")
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// readLine prompts for one line of input.
func readLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
