package irdecode

// ProtocolTag identifies one supported remote-control protocol. The numeric
// values are part of the external contract (frames published over MQTT and
// the websocket carry them verbatim) and must not be reordered.
type ProtocolTag uint8

const (
	ProtoUnknown ProtocolTag = iota
	ProtoSIRCS
	ProtoNEC
	ProtoSamsung
	ProtoMatsushita
	ProtoKaseikyo
	ProtoRECS80
	ProtoRC5
	ProtoDenon
	ProtoRC6
	ProtoSamsung32
	ProtoApple
	ProtoRECS80Ext
	ProtoNubert
	ProtoBangOlufsen
	ProtoGrundig
	ProtoNokia
	ProtoSiemens
	ProtoFDC
	ProtoRCCar
	ProtoJVC
	ProtoRC6A
	ProtoNikon
	ProtoRuwido
	ProtoIR60
	ProtoKathrein
	ProtoNetbox
	ProtoNEC16
	ProtoNEC42
	ProtoLego
	ProtoThomson
	ProtoBose
	ProtoA1TVBox
	ProtoOrtek
	ProtoTelefunken
	ProtoRoomba
	ProtoRCMM32
	ProtoRCMM24
	ProtoRCMM12
	ProtoSpeaker
	ProtoLGAir
	ProtoSamsung48
	ProtoMerlin
	ProtoPentax
	ProtoFan
	ProtoS100
	ProtoACP24
	ProtoTechnics
	ProtoPanasonic
	ProtoMitsuHeavy
	ProtoVincent
	ProtoSamsungAH
	ProtoIRMP16
	ProtoGree
	ProtoRCII
	ProtoMetz
	ProtoOnkyo
	ProtoRadio1

	protocolCount
)

// protocolNames holds the short uppercase identifiers, indexed by tag.
var protocolNames = [protocolCount]string{
	"UNKNOWN",
	"SIRCS",
	"NEC",
	"SAMSUNG",
	"MATSUSH",
	"KASEIKYO",
	"RECS80",
	"RC5",
	"DENON",
	"RC6",
	"SAMSG32",
	"APPLE",
	"RECS80EX",
	"NUBERT",
	"BANG OLU",
	"GRUNDIG",
	"NOKIA",
	"SIEMENS",
	"FDC",
	"RCCAR",
	"JVC",
	"RC6A",
	"NIKON",
	"RUWIDO",
	"IR60",
	"KATHREIN",
	"NETBOX",
	"NEC16",
	"NEC42",
	"LEGO",
	"THOMSON",
	"BOSE",
	"A1TVBOX",
	"ORTEK",
	"TELEFUNKEN",
	"ROOMBA",
	"RCMM32",
	"RCMM24",
	"RCMM12",
	"SPEAKER",
	"LGAIR",
	"SAMSG48",
	"MERLIN",
	"PENTAX",
	"FAN",
	"S100",
	"ACP24",
	"TECHNICS",
	"PANASONIC",
	"MITSU_HEAVY",
	"VINCENT",
	"SAMSUNGAH",
	"IRMP16",
	"GREE",
	"RCII",
	"METZ",
	"ONKYO",
	"RADIO1",
}

// ProtocolName maps a protocol tag to its short uppercase identifier.
// Unknown or out-of-range tags map to "UNKNOWN".
func ProtocolName(tag ProtocolTag) string {
	if tag >= protocolCount {
		return protocolNames[ProtoUnknown]
	}
	return protocolNames[tag]
}

func (t ProtocolTag) String() string { return ProtocolName(t) }

// ProtocolSet is a bitmask of enabled protocols.
type ProtocolSet uint64

// Set returns a copy of the set with the given tags enabled.
func (s ProtocolSet) Set(tags ...ProtocolTag) ProtocolSet {
	for _, t := range tags {
		s |= 1 << t
	}
	return s
}

// Clear returns a copy of the set with the given tags disabled.
func (s ProtocolSet) Clear(tags ...ProtocolTag) ProtocolSet {
	for _, t := range tags {
		s &^= 1 << t
	}
	return s
}

// Has reports whether the given tag is enabled.
func (s ProtocolSet) Has(tag ProtocolTag) bool { return s&(1<<tag) != 0 }

// Tags returns the enabled tags in ascending order.
func (s ProtocolSet) Tags() []ProtocolTag {
	var tags []ProtocolTag
	for t := ProtocolTag(1); t < protocolCount; t++ {
		if s.Has(t) {
			tags = append(tags, t)
		}
	}
	return tags
}

// ParseProtocol resolves a short identifier (as returned by ProtocolName,
// case sensitive) back to its tag.
func ParseProtocol(name string) (ProtocolTag, bool) {
	for t := ProtocolTag(0); t < protocolCount; t++ {
		if protocolNames[t] == name {
			return t, true
		}
	}
	return ProtoUnknown, false
}

// DefaultProtocols is the set enabled when the configuration does not name an
// explicit list: the common consumer protocols that coexist without any of
// the mutual-exclusion conflicts checked by Config.Validate.
func DefaultProtocols() ProtocolSet {
	var s ProtocolSet
	return s.Set(
		ProtoSIRCS, ProtoNEC, ProtoSamsung, ProtoSamsung32, ProtoSamsung48,
		ProtoMatsushita, ProtoTechnics, ProtoKaseikyo, ProtoRC5, ProtoRC6,
		ProtoRC6A, ProtoApple, ProtoOnkyo, ProtoJVC, ProtoNEC16, ProtoNEC42,
		ProtoLGAir, ProtoGrundig, ProtoNokia, ProtoIR60, ProtoBose,
		ProtoTelefunken, ProtoDenon, ProtoNubert, ProtoSpeaker,
	)
}
