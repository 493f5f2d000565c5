package ortlite

import (
	"fmt"

	"github.com/x448/float16"
)

var f16LookupTable [65536]float32

func init() {
	// precompute float16 lookup table for faster conversion to float32
	for i := range f16LookupTable {
		f16 := float16.Frombits(uint16(i))
		f16LookupTable[i] = f16.Float32()
	}
}

// F16BufferToF32 widens a raw little endian float16 tensor buffer into a
// float32 slice
func F16BufferToF32(buf []byte) ([]float32, error) {

	if len(buf)%2 != 0 {
		return nil, fmt.Errorf("float16 buffer has odd byte length %d", len(buf))
	}

	out := make([]float32, len(buf)/2)

	for i := range out {
		bits := uint16(buf[i*2]) | uint16(buf[i*2+1])<<8
		out[i] = f16LookupTable[bits]
	}

	return out, nil
}
