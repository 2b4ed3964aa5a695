package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DecodeRaw converts count fixed-width samples from data into float64
// values. Each sample occupies enc.Width() consecutive bytes, assembled
// into an integer accumulator under the given byte order and then
// reinterpreted according to the encoding.
func DecodeRaw(data []byte, count int, enc Encoding, order Order) ([]float64, error) {
	width := enc.Width()
	if width == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEncoding, enc)
	}
	if order != BigEndian && order != LittleEndian {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOrder, order)
	}
	if len(data) < count*width {
		return nil, fmt.Errorf("%w: need %d bytes for %d %v samples, have %d",
			ErrShortData, count*width, count, enc, len(data))
	}

	out := make([]float64, count)
	for i := 0; i < count; i++ {
		chunk := data[i*width : (i+1)*width]
		var acc uint64
		if order == BigEndian {
			for _, b := range chunk {
				acc = acc<<8 | uint64(b)
			}
		} else {
			for j, b := range chunk {
				acc |= uint64(b) << (8 * j)
			}
		}
		v, err := sampleValue(acc, enc)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// sampleValue reinterprets an assembled bit pattern as a real sample value
func sampleValue(bits uint64, enc Encoding) (float64, error) {
	switch enc {
	case Uint8:
		return float64(bits & 0xff), nil
	case Uint16:
		return float64(bits & 0xffff), nil
	case Int16:
		return float64(int16(bits)), nil
	case Int32:
		return float64(int32(bits)), nil
	case Float32:
		return float64(math.Float32frombits(uint32(bits))), nil
	case Float64:
		return math.Float64frombits(bits), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownEncoding, enc)
}

// DecodeASCII reads count samples from a text source, one sample per line.
// Lines may carry leading columns (such as grid coordinates); only the
// trailing whitespace-separated token is parsed as the sample value.
func DecodeASCII(r io.Reader, count int) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	out := make([]float64, 0, count)
	for line := 1; line <= count; line++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			return nil, &ParseError{Line: line, Err: errors.New("unexpected end of input")}
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return nil, &ParseError{Line: line, Err: errors.New("empty line")}
		}
		v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
