package main

import (
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog"
	"github.com/zeebo/errs"

	"github.com/calebcase/lexical"
	"github.com/calebcase/lexical/extfloat"
	"github.com/calebcase/lexical/options"
	"github.com/calebcase/lexical/parse"
)

func parseCmd(args []string, stdout io.Writer, log zerolog.Logger) (err error) {
	defer Error.WrapP(&err)

	fs, radix, debug := newFlags("parse")
	f32 := fs.Bool("f32", false, "parse as float32")
	lossy := fs.Bool("lossy", false, "skip the big integer tier")

	if err = fs.Parse(args); err != nil {
		return err
	}
	setLevel(&log, *debug)

	opts := options.ParseRadix(*radix)
	opts.Lossy = *lossy
	if err = opts.Validate(); err != nil {
		return err
	}

	info := extfloat.Float64
	if *f32 {
		info = extfloat.Float32
	}

	var failed int
	for _, arg := range fs.Args() {
		bits, tier, err := parse.Trace([]byte(arg), info, &opts)
		if err != nil {
			log.Warn().Err(err).Str("input", arg).Msg("parse")
			failed++

			continue
		}

		log.Debug().
			Str("input", arg).
			Stringer("tier", tier).
			Uint32("radix", *radix).
			Msg("resolved")

		if *f32 {
			f := math.Float32frombits(uint32(bits))
			fmt.Fprintf(stdout, "%s\t%#08x\n", lexical.FormatFloat32(f), bits)
		} else {
			f := math.Float64frombits(bits)
			fmt.Fprintf(stdout, "%s\t%#016x\n", lexical.FormatFloat64(f), bits)
		}
	}

	if failed > 0 {
		return errs.New("%d of %d inputs failed", failed, len(fs.Args()))
	}

	return nil
}

func writeCmd(args []string, stdout io.Writer, log zerolog.Logger) (err error) {
	defer Error.WrapP(&err)

	fs, radix, debug := newFlags("write")
	f32 := fs.Bool("f32", false, "write as float32")
	maxDigits := fs.Int("max", 0, "maximum significant digits, 0 for shortest")
	minDigits := fs.Int("min", 0, "minimum significant digits")
	trim := fs.Bool("trim", false, "omit a trailing .0")
	truncate := fs.Bool("truncate", false, "truncate instead of rounding to max digits")

	if err = fs.Parse(args); err != nil {
		return err
	}
	setLevel(&log, *debug)

	opts := options.WriteRadix(*radix)
	opts.MaxSignificantDigits = *maxDigits
	opts.MinSignificantDigits = *minDigits
	opts.TrimFloats = *trim
	if *truncate {
		opts.RoundMode = options.Truncate
	}
	if err = opts.Validate(); err != nil {
		return err
	}

	log.Debug().
		Uint32("radix", opts.Radix).
		Stringer("round", opts.RoundMode).
		Int("buffer", lexical.BufferSize64(&opts)).
		Msg("options")

	var failed int
	for _, arg := range fs.Args() {
		var (
			out []byte
			err error
		)

		if *f32 {
			var f float32
			f, err = lexical.ParseFloat32([]byte(arg))
			if err == nil {
				out, err = lexical.AppendFloat32Options(nil, f, &opts)
			}
		} else {
			var f float64
			f, err = lexical.ParseFloat64([]byte(arg))
			if err == nil {
				out, err = lexical.AppendFloat64Options(nil, f, &opts)
			}
		}

		if err != nil {
			log.Warn().Err(err).Str("input", arg).Msg("write")
			failed++

			continue
		}

		fmt.Fprintln(stdout, string(out))
	}

	if failed > 0 {
		return errs.New("%d of %d inputs failed", failed, len(fs.Args()))
	}

	return nil
}

func intCmd(args []string, stdout io.Writer, log zerolog.Logger) (err error) {
	defer Error.WrapP(&err)

	fs, radix, debug := newFlags("int")
	to := fs.Uint32P("to", "t", 10, "radix of the output")
	size := fs.Int("bits", 64, "integer width: 8, 16, 32 or 64")
	unsigned := fs.Bool("unsigned", false, "parse as an unsigned integer")

	if err = fs.Parse(args); err != nil {
		return err
	}
	setLevel(&log, *debug)

	convert, err := converter(*size, *unsigned)
	if err != nil {
		return err
	}

	var failed int
	for _, arg := range fs.Args() {
		out, err := convert([]byte(arg), *radix, *to)
		if err != nil {
			log.Warn().Err(err).Str("input", arg).Int("bits", *size).Msg("int")
			failed++

			continue
		}

		fmt.Fprintln(stdout, out)
	}

	if failed > 0 {
		return errs.New("%d of %d inputs failed", failed, len(fs.Args()))
	}

	return nil
}

type convertFunc func(b []byte, from, to uint32) (string, error)

func converter(size int, unsigned bool) (convertFunc, error) {
	switch {
	case size == 8 && unsigned:
		return convertInt[uint8], nil
	case size == 8:
		return convertInt[int8], nil
	case size == 16 && unsigned:
		return convertInt[uint16], nil
	case size == 16:
		return convertInt[int16], nil
	case size == 32 && unsigned:
		return convertInt[uint32], nil
	case size == 32:
		return convertInt[int32], nil
	case size == 64 && unsigned:
		return convertInt[uint64], nil
	case size == 64:
		return convertInt[int64], nil
	}

	return nil, errs.New("unsupported integer width: %d", size)
}

func convertInt[T int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64](b []byte, from, to uint32) (string, error) {
	v, err := lexical.ParseInt[T](b, from)
	if err != nil {
		return "", err
	}

	return lexical.FormatInt(v, to)
}
