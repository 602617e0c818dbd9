// internal/ciphersuite/pad.go
package ciphersuite

import "fmt"

// pkcs7Fill writes PKCS#7 padding into tail. The pad byte equals the number
// of padding bytes, which is always in [1, BlockSize].
func pkcs7Fill(tail []byte) {
	pad := byte(len(tail))
	for i := range tail {
		tail[i] = pad
	}
}

// pkcs7Strip validates the PKCS#7 padding at the end of buf and returns the
// unpadded length. Invalid padding is a finalize failure.
func pkcs7Strip(buf []byte) (int, error) {
	if len(buf) == 0 || len(buf)%BlockSize != 0 {
		return 0, fmt.Errorf("%w: padded length %d is not a positive multiple of %d",
			ErrTransformFinalize, len(buf), BlockSize)
	}
	pad := int(buf[len(buf)-1])
	if pad == 0 || pad > BlockSize {
		return 0, fmt.Errorf("%w: invalid padding byte %d", ErrTransformFinalize, pad)
	}
	for _, b := range buf[len(buf)-pad:] {
		if int(b) != pad {
			return 0, fmt.Errorf("%w: inconsistent padding", ErrTransformFinalize)
		}
	}
	return len(buf) - pad, nil
}
