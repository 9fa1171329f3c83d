package irdecode

import "fmt"

// Config selects the sample rate and the protocol set a Decoder is built
// with. The zero value is not usable; call Validate or NewDecoder, both
// apply the checks below.
type Config struct {
	// SampleRate in Hz. The engine accepts 10000..20000; 15000 is the usual
	// choice for timer driven receivers, 20000 gives the tightest windows.
	SampleRate uint32

	// Protocols enabled for classification. Zero means DefaultProtocols.
	Protocols ProtocolSet

	// Command32 widens the command register to 32 bits. Merlin requires it.
	Command32 bool
}

// Protocol pairs whose timing windows collide so badly that classification
// cannot keep them apart. Enabling both is a configuration error.
var exclusivePairs = [][2]ProtocolTag{
	{ProtoDenon, ProtoRuwido},
	{ProtoDenon, ProtoACP24},
	{ProtoDenon, ProtoThomson},
	{ProtoKaseikyo, ProtoPanasonic},
	{ProtoRC6, ProtoRoomba},
	{ProtoPanasonic, ProtoMitsuHeavy},
	{ProtoRC5, ProtoOrtek},
	{ProtoRC5, ProtoS100},
	{ProtoFDC, ProtoOrtek},
	{ProtoOrtek, ProtoNetbox},
	{ProtoNubert, ProtoFan},
	{ProtoGrundig, ProtoRCII},
	{ProtoNokia, ProtoRCII},
}

// Protocols that only exist as pivot targets of a base protocol.
var requiredBase = map[ProtocolTag]ProtocolTag{
	ProtoJVC:       ProtoNEC,
	ProtoNEC16:     ProtoNEC,
	ProtoNEC42:     ProtoNEC,
	ProtoLGAir:     ProtoNEC,
	ProtoSamsung48: ProtoSamsung,
}

// Sample-rate floors and ceilings for protocols whose pulses are too short
// (or windows too tight) outside the range.
var minRate = map[ProtocolTag]uint32{
	ProtoSiemens:   15000,
	ProtoRuwido:    15000,
	ProtoRECS80:    15000,
	ProtoRECS80Ext: 15000,
	ProtoRCMM32:    15000,
	ProtoRCMM24:    15000,
	ProtoRCMM12:    15000,
	ProtoA1TVBox:   15000,
	ProtoLego:      20000,
}

var maxRate = map[ProtocolTag]uint32{
	ProtoPentax: 16000,
	ProtoGree:   16000,
}

// Validate checks the sample rate bounds, per-protocol rate constraints,
// mutual exclusions and pivot-base dependencies. It fills in defaults for
// the zero protocol set.
func (c *Config) Validate() error {
	if c.SampleRate < 10000 || c.SampleRate > 20000 {
		return fmt.Errorf("sample rate %d out of range 10000..20000", c.SampleRate)
	}
	if c.Protocols == 0 {
		c.Protocols = DefaultProtocols()
	}
	for _, pair := range exclusivePairs {
		if c.Protocols.Has(pair[0]) && c.Protocols.Has(pair[1]) {
			return fmt.Errorf("protocols %s and %s cannot be enabled together", pair[0], pair[1])
		}
	}
	for proto, base := range requiredBase {
		if c.Protocols.Has(proto) && !c.Protocols.Has(base) {
			return fmt.Errorf("protocol %s requires %s", proto, base)
		}
	}
	for proto, rate := range minRate {
		if c.Protocols.Has(proto) && c.SampleRate < rate {
			return fmt.Errorf("protocol %s needs a sample rate of at least %d Hz", proto, rate)
		}
	}
	for proto, rate := range maxRate {
		if c.Protocols.Has(proto) && c.SampleRate > rate {
			return fmt.Errorf("protocol %s needs a sample rate of at most %d Hz", proto, rate)
		}
	}
	if c.Protocols.Has(ProtoMerlin) && !c.Command32 {
		return fmt.Errorf("protocol MERLIN requires the 32 bit command register")
	}
	return nil
}
