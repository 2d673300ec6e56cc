package rsa

import (
	"github.com/fxamacker/cbor/v2"
)

type keyPairMarshal struct {
	N   int64
	E   int64
	D   int64
	Phi int64
}

// MarshalBinary encodes the key pair as cbor.
func (kp *KeyPair) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&keyPairMarshal{
		N:   kp.N,
		E:   kp.E,
		D:   kp.D,
		Phi: kp.Phi,
	})
}

// UnmarshalBinary decodes a cbor key pair and checks its invariants, so
// a corrupted or hand-edited export is rejected rather than producing
// garbage ciphertexts later.
func (kp *KeyPair) UnmarshalBinary(data []byte) error {
	var km keyPairMarshal
	if err := cbor.Unmarshal(data, &km); err != nil {
		return err
	}
	decoded := KeyPair{N: km.N, E: km.E, D: km.D, Phi: km.Phi}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*kp = decoded
	return nil
}
