package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	type TC struct {
		Args   []string
		Code   int
		Stdout string
		Stderr string
		Mark   error
	}

	tcs := []TC{
		{
			Args:   []string{"parse", "1.5", "0.1"},
			Stdout: "1.5\t0x3ff8000000000000\n0.1\t0x3fb999999999999a\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"parse", "--f32", "0.1"},
			Stdout: "0.1\t0x3dcccccd\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"parse", "--radix", "16", "FF.8"},
			Stdout: "255.5\t0x406ff00000000000\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"parse", "--debug", "9007199254740993"},
			Stdout: "9.007199254740992e15\t0x4340000000000000\n",
			Stderr: "tier=bigcomp",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"parse", "1x"},
			Code:   1,
			Stderr: "invalid digit at index 1",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"write", "-r", "3", "0.5"},
			Stdout: "0.1111111111111111111111111111111112\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"write", "--max", "4", "--truncate", "1.2345678901234567890"},
			Stdout: "1.234\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"write", "--trim", "--radix", "2", "8"},
			Stdout: "1000\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"write", "--radix", "40", "1"},
			Code:   1,
			Stderr: "invalid radix",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"int", "--to", "16", "--", "255", "-1"},
			Stdout: "FF\n-1\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"int", "--bits", "8", "--unsigned", "256"},
			Code:   1,
			Stderr: "overflow at index 0",
			Mark:   oops.New("unexpected"),
		},
		{
			Args:   []string{"int", "--bits", "12", "1"},
			Code:   1,
			Stderr: "unsupported integer width",
			Mark:   oops.New("unexpected"),
		},
		{
			Args: []string{"bogus"},
			Code: 2,
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, strings.Join(tc.Args, " ")), func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tc.Args, &stdout, &stderr)
			require.Equal(t, tc.Code, code, tc.Mark, stderr.String())
			require.Equal(t, tc.Stdout, stdout.String(), tc.Mark)
			require.Contains(t, stderr.String(), tc.Stderr, tc.Mark)
		})
	}
}
