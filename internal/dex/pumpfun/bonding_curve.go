// ==============================================
// File: internal/dex/pumpfun/bonding_curve.go
// ==============================================
package pumpfun

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	discriminatorSize = 8
	// BondingCurveDataSize is the minimum account size: discriminator plus 5 int64 fields and the complete flag.
	BondingCurveDataSize = discriminatorSize + 5*8 + 1

	bondingCurveDiscriminatorValue uint64 = 6966180631402821399
)

// BondingCurveDiscriminator is the 8-byte tag every bonding curve account starts with.
var BondingCurveDiscriminator = func() []byte {
	discriminator := make([]byte, discriminatorSize)
	binary.LittleEndian.PutUint64(discriminator, bondingCurveDiscriminatorValue)
	return discriminator
}()

// DecodeBondingCurve parses raw bonding curve account data.
func DecodeBondingCurve(data []byte) (*BondingCurveState, error) {
	if data == nil {
		return nil, ErrAccountNotFound
	}

	if len(data) < BondingCurveDataSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrInvalidLength, len(data), BondingCurveDataSize)
	}

	if !bytes.Equal(data[:discriminatorSize], BondingCurveDiscriminator) {
		return nil, fmt.Errorf("%w: %x", ErrInvalidSchema, data[:discriminatorSize])
	}

	return &BondingCurveState{
		VirtualTokenReserves: readInt64(data, 8),
		VirtualSolReserves:   readInt64(data, 16),
		RealTokenReserves:    readInt64(data, 24),
		RealSolReserves:      readInt64(data, 32),
		TokenTotalSupply:     readInt64(data, 40),
		Complete:             data[48] == 1,
	}, nil
}

// EncodeBondingCurve writes the state back into the on-chain layout.
// It is the inverse of DecodeBondingCurve and is used to build fixtures.
func EncodeBondingCurve(state BondingCurveState) []byte {
	data := make([]byte, BondingCurveDataSize)
	copy(data, BondingCurveDiscriminator)
	binary.LittleEndian.PutUint64(data[8:], uint64(state.VirtualTokenReserves))
	binary.LittleEndian.PutUint64(data[16:], uint64(state.VirtualSolReserves))
	binary.LittleEndian.PutUint64(data[24:], uint64(state.RealTokenReserves))
	binary.LittleEndian.PutUint64(data[32:], uint64(state.RealSolReserves))
	binary.LittleEndian.PutUint64(data[40:], uint64(state.TokenTotalSupply))
	if state.Complete {
		data[48] = 1
	}
	return data
}

func readInt64(data []byte, offset int) int64 {
	return int64(binary.LittleEndian.Uint64(data[offset : offset+8]))
}
