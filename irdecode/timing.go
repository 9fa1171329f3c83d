package irdecode

// family selects the bit-decoding routine a protocol uses.
type family uint8

const (
	famNone          family = iota
	famPulseDistance        // fixed pulse, the pause length carries the bit
	famPulseWidth           // pulse and pause both change with the bit value
	famBiphase              // Manchester, one transition per bit
	famSerial               // self clocked, run length divided by the unit
	famRCMM                 // fixed pulse, four pause lengths, two bits each
	famBeo                  // fixed pulse, five pause lengths
)

type descFlag uint16

const (
	flagLSBFirst    descFlag = 1 << iota
	flagStopBit              // frame ends with a trailing short pulse
	flagFirstHalfOne         // biphase: pulse in the first half encodes 1
	flagStartIsData          // no dedicated start bit, the leading pair is bit 0
	flagLongTimeout          // frame timeout extends to the long threshold
)

// timingSpec is one row of the timing table: nominal durations in seconds,
// tolerance classes, and the bit layout. Converted to a descriptor with
// integer tick windows when a Decoder is built.
type timingSpec struct {
	family family

	startPulse float64
	startPause float64
	startTol   float64

	// famPulseDistance / famPulseWidth / famRCMM / famBeo
	pulse1   float64
	pause1   float64
	pulse0   float64
	pause0   float64
	pulseTol float64
	pauseTol float64

	// famBiphase / famSerial half-bit or unit period
	unit    float64
	unitTol float64

	addrOfs uint8
	addrLen uint8
	cmdOfs  uint8
	cmdLen  uint8

	completeLen uint8
	minLen      uint8 // 0 means completeLen exactly

	flags descFlag

	// By-design frame repetition: the remote transmits each key press this
	// many times; the decoder reports the first frame of each group.
	repeats   uint8
	repeatGap float64 // max spacing between frames of one group
}

// Durations the state machine needs outside the per-bit windows.
const (
	frameTimeout     = 15.5e-3  // pause that terminates any ordinary frame
	frameTimeoutLong = 29.5e-3  // Nikon start pause, Bang & Olufsen spacers
	keyRepeatWindow  = 150e-3   // window for the repetition flag
	necRepeatPause   = 2250e-6  // NEC key-held repeat frame start pause
	denonPairGap     = 45e-3    // Denon inverted-complement frame spacing
	appleVendorAddr  = 0x87EE   // NEC address claimed by Apple remotes
	nokiaLeadInAddr  = 0x00FF
	nokiaLeadInCmd   = 0x00FE
)

// rcmmPauses encodes the four RCMM symbol pauses for 00, 01, 10, 11.
var rcmmPauses = [4]float64{277e-6, 444e-6, 611e-6, 777e-6}

// beoPauses encodes the Bang & Olufsen pause alphabet.
const (
	beoPauseZero    = 2925e-6  // bit 0
	beoPauseSame    = 6050e-6  // repeat previous bit value
	beoPauseOne     = 9150e-6  // bit 1
	beoPauseTrailer = 12300e-6 // trailer, end of data
	beoPauseSpacer  = 15625e-6 // third start-bit spacer
)

// timings is indexed by ProtocolTag. Protocols that only exist as pivot
// targets of another protocol (Apple, Onkyo) alias their parent's row.
var timings = [protocolCount]timingSpec{
	ProtoSIRCS: {
		family:     famPulseWidth,
		startPulse: 2400e-6, startPause: 600e-6, startTol: tol10,
		pulse1: 1200e-6, pause1: 600e-6, pulse0: 600e-6, pause0: 600e-6,
		pulseTol: tol20, pauseTol: tol30,
		addrOfs: 15, addrLen: 5, cmdOfs: 0, cmdLen: 15,
		completeLen: 20, minLen: 12,
		flags:   flagLSBFirst,
		repeats: 3, repeatGap: 50e-3,
	},
	ProtoNEC: {
		family:     famPulseDistance,
		startPulse: 9000e-6, startPause: 4500e-6, startTol: tol30,
		pulse1: 560e-6, pause1: 1690e-6, pulse0: 560e-6, pause0: 560e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 16, cmdOfs: 16, cmdLen: 16,
		completeLen: 32,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoSamsung: {
		family:     famPulseDistance,
		startPulse: 4500e-6, startPause: 4500e-6, startTol: tol10,
		pulse1: 550e-6, pause1: 1650e-6, pulse0: 550e-6, pause0: 550e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 16, cmdOfs: 17, cmdLen: 16,
		completeLen: 49, minLen: 33, // resolved to SAMSG32 or SAMSG48 at the sync bit
		flags: flagLSBFirst | flagStopBit,
	},
	ProtoMatsushita: {
		family:     famPulseDistance,
		startPulse: 3488e-6, startPause: 3488e-6, startTol: tol10,
		pulse1: 872e-6, pause1: 2616e-6, pulse0: 872e-6, pause0: 872e-6,
		pulseTol: tol30, pauseTol: tol30,
		addrOfs: 12, addrLen: 12, cmdOfs: 0, cmdLen: 12,
		completeLen: 24, minLen: 22, // 22-bit frames pivot to Technics
		flags: flagLSBFirst | flagStopBit,
	},
	ProtoKaseikyo: {
		family:     famPulseDistance,
		startPulse: 3380e-6, startPause: 1690e-6, startTol: tol10,
		pulse1: 423e-6, pause1: 1269e-6, pulse0: 423e-6, pause0: 423e-6,
		pulseTol: tol50, pauseTol: tol30,
		addrOfs: 0, addrLen: 16, cmdOfs: 28, cmdLen: 12,
		completeLen: 48,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoRECS80: {
		family:     famPulseDistance,
		startPulse: 158e-6, startPause: 7432e-6, startTol: tol10,
		pulse1: 158e-6, pause1: 7432e-6, pulse0: 158e-6, pause0: 4902e-6,
		pulseTol: tol50, pauseTol: tol10,
		addrOfs: 1, addrLen: 3, cmdOfs: 4, cmdLen: 6,
		completeLen: 10,
		flags:       flagStopBit,
	},
	ProtoRC5: {
		family: famBiphase,
		unit:   889e-6, unitTol: tol20,
		addrOfs: 3, addrLen: 5, cmdOfs: 8, cmdLen: 6,
		completeLen: 14, // start, field, toggle, 5 address, 6 command
	},
	ProtoDenon: {
		family: famPulseDistance,
		pulse1: 310e-6, pause1: 1780e-6, pulse0: 310e-6, pause0: 745e-6,
		pulseTol: tol50, pauseTol: tol20,
		addrOfs: 0, addrLen: 5, cmdOfs: 5, cmdLen: 10,
		completeLen: 15,
		flags:       flagLSBFirst | flagStopBit | flagStartIsData,
	},
	ProtoRC6: {
		family:     famBiphase,
		startPulse: 2666e-6, startPause: 889e-6, startTol: tol10,
		unit: 444e-6, unitTol: tol20,
		addrOfs: 5, addrLen: 8, cmdOfs: 13, cmdLen: 8,
		completeLen: 21, // start bit, 3 mode bits, toggle, 8+8 payload
		flags:       flagFirstHalfOne,
	},
	ProtoSamsung32: {
		family:     famPulseDistance,
		startPulse: 4500e-6, startPause: 4500e-6, startTol: tol10,
		pulse1: 550e-6, pause1: 1650e-6, pulse0: 550e-6, pause0: 550e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 16, cmdOfs: 17, cmdLen: 16,
		completeLen: 33,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoApple: { // pivot target of NEC, shares its row
		family:     famPulseDistance,
		startPulse: 9000e-6, startPause: 4500e-6, startTol: tol30,
		pulse1: 560e-6, pause1: 1690e-6, pulse0: 560e-6, pause0: 560e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 16, cmdOfs: 16, cmdLen: 8,
		completeLen: 32,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoRECS80Ext: {
		family:     famPulseDistance,
		startPulse: 3600e-6, startPause: 7432e-6, startTol: tol10,
		pulse1: 158e-6, pause1: 7432e-6, pulse0: 158e-6, pause0: 4902e-6,
		pulseTol: tol50, pauseTol: tol10,
		addrOfs: 1, addrLen: 4, cmdOfs: 5, cmdLen: 6,
		completeLen: 11,
		flags:       flagStopBit,
	},
	ProtoNubert: {
		family:     famPulseWidth,
		startPulse: 1340e-6, startPause: 340e-6, startTol: tol10,
		pulse1: 1340e-6, pause1: 340e-6, pulse0: 500e-6, pause0: 1300e-6,
		pulseTol: tol20, pauseTol: tol20,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 10,
		completeLen: 10,
		flags:       flagStopBit,
		repeats:     2, repeatGap: 50e-3,
	},
	ProtoBangOlufsen: {
		family:     famBeo,
		startPulse: 200e-6, startPause: beoPauseSpacer, startTol: tol10,
		pulse1: 200e-6, pulseTol: tol50, pauseTol: tol10,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 16,
		completeLen: 16,
		flags:       flagLongTimeout,
	},
	ProtoGrundig: {
		family:     famBiphase,
		startPulse: 528e-6, startPause: 2639e-6, startTol: tol20,
		unit: 528e-6, unitTol: tol20,
		addrOfs: 0, addrLen: 0, cmdOfs: 1, cmdLen: 9,
		completeLen: 17, minLen: 5, // 5..8 bits is IR60, 10 is Grundig, 17 is Nokia
		flags: flagFirstHalfOne,
	},
	ProtoNokia: {
		family:     famBiphase,
		startPulse: 528e-6, startPause: 2639e-6, startTol: tol20,
		unit: 528e-6, unitTol: tol20,
		addrOfs: 9, addrLen: 8, cmdOfs: 1, cmdLen: 8,
		completeLen: 17,
		flags:       flagFirstHalfOne,
	},
	ProtoSiemens: {
		family:     famBiphase,
		startPulse: 595e-6, startPause: 248e-6, startTol: tol10,
		unit: 275e-6, unitTol: tol10,
		addrOfs: 1, addrLen: 11, cmdOfs: 12, cmdLen: 11,
		completeLen: 23,
		flags:       flagFirstHalfOne,
	},
	ProtoFDC: {
		family:     famPulseDistance,
		startPulse: 2085e-6, startPause: 966e-6, startTol: tol5,
		pulse1: 216e-6, pause1: 760e-6, pulse0: 216e-6, pause0: 220e-6,
		pulseTol: tol50, pauseTol: tol30,
		addrOfs: 0, addrLen: 14, cmdOfs: 20, cmdLen: 12,
		completeLen: 40,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoRCCar: {
		family:     famPulseDistance,
		startPulse: 2000e-6, startPause: 2000e-6, startTol: tol10,
		pulse1: 520e-6, pause1: 1560e-6, pulse0: 520e-6, pause0: 520e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 13,
		completeLen: 13,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoJVC: {
		family:     famPulseDistance,
		startPulse: 8400e-6, startPause: 4200e-6, startTol: tol10,
		pulse1: 526e-6, pause1: 1574e-6, pulse0: 526e-6, pause0: 526e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 4, cmdOfs: 4, cmdLen: 12,
		completeLen: 16,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoRC6A: {
		family:     famBiphase,
		startPulse: 2666e-6, startPause: 889e-6, startTol: tol10,
		unit: 444e-6, unitTol: tol20,
		addrOfs: 20, addrLen: 8, cmdOfs: 28, cmdLen: 8,
		completeLen: 36,
		flags:       flagFirstHalfOne,
	},
	ProtoNikon: {
		family:     famPulseDistance,
		startPulse: 2200e-6, startPause: 27100e-6, startTol: tol5,
		pulse1: 500e-6, pause1: 3500e-6, pulse0: 500e-6, pause0: 1500e-6,
		pulseTol: tol40, pauseTol: tol20,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 2,
		completeLen: 2,
		flags:       flagLSBFirst | flagStopBit | flagLongTimeout,
	},
	ProtoRuwido: {
		family:     famBiphase,
		startPulse: 595e-6, startPause: 248e-6, startTol: tol10,
		unit: 275e-6, unitTol: tol10,
		addrOfs: 1, addrLen: 9, cmdOfs: 10, cmdLen: 5,
		completeLen: 23, minLen: 15, // 15 bits is Ruwido, a 23 bit frame is Siemens
		flags: flagFirstHalfOne,
	},
	ProtoIR60: {
		family:     famBiphase,
		startPulse: 528e-6, startPause: 2639e-6, startTol: tol20,
		unit: 528e-6, unitTol: tol20,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 7,
		completeLen: 7,
		flags:       flagFirstHalfOne,
	},
	ProtoKathrein: {
		family:     famPulseDistance,
		startPulse: 210e-6, startPause: 6218e-6, startTol: tol10,
		pulse1: 210e-6, pause1: 3000e-6, pulse0: 210e-6, pause0: 1400e-6,
		pulseTol: tol50, pauseTol: tol20,
		addrOfs: 1, addrLen: 4, cmdOfs: 5, cmdLen: 7,
		completeLen: 12,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoNetbox: {
		family: famSerial,
		unit:   275e-6, unitTol: tol20,
		startPulse: 825e-6, startPause: 275e-6, startTol: tol20,
		addrOfs: 0, addrLen: 4, cmdOfs: 4, cmdLen: 12,
		completeLen: 16,
		flags:       flagLSBFirst,
	},
	ProtoNEC16: {
		family:     famPulseDistance,
		startPulse: 9000e-6, startPause: 4500e-6, startTol: tol30,
		pulse1: 560e-6, pause1: 1690e-6, pulse0: 560e-6, pause0: 560e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 8, cmdOfs: 9, cmdLen: 8,
		completeLen: 17, // 8 address, sync bit, 8 command
		flags: flagLSBFirst | flagStopBit,
	},
	ProtoNEC42: {
		family:     famPulseDistance,
		startPulse: 9000e-6, startPause: 4500e-6, startTol: tol30,
		pulse1: 560e-6, pause1: 1690e-6, pulse0: 560e-6, pause0: 560e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 13, cmdOfs: 26, cmdLen: 8,
		completeLen: 42, minLen: 16, // shorter frames pivot to JVC, NEC16, LGAIR or NEC
		flags: flagLSBFirst | flagStopBit,
	},
	ProtoLego: {
		family:     famPulseDistance,
		startPulse: 158e-6, startPause: 1026e-6, startTol: tol10,
		pulse1: 158e-6, pause1: 553e-6, pulse0: 158e-6, pause0: 263e-6,
		pulseTol: tol50, pauseTol: tol20,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 12,
		completeLen: 16, // 12 data bits plus 4 bit checksum
		flags: flagStopBit,
	},
	ProtoThomson: {
		family: famPulseDistance,
		pulse1: 550e-6, pause1: 4500e-6, pulse0: 550e-6, pause0: 2000e-6,
		pulseTol: tol40, pauseTol: tol20,
		addrOfs: 0, addrLen: 4, cmdOfs: 4, cmdLen: 8,
		completeLen: 12,
		flags:       flagLSBFirst | flagStopBit | flagStartIsData,
	},
	ProtoBose: {
		family:     famPulseDistance,
		startPulse: 1060e-6, startPause: 1425e-6, startTol: tol5,
		pulse1: 550e-6, pause1: 1425e-6, pulse0: 550e-6, pause0: 437e-6,
		pulseTol: tol40, pauseTol: tol20,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 16,
		completeLen: 16, // 8 bit command followed by its complement
		flags: flagLSBFirst | flagStopBit,
	},
	ProtoA1TVBox: {
		family:     famBiphase,
		startPulse: 300e-6, startPause: 340e-6, startTol: tol10,
		unit: 300e-6, unitTol: tol10,
		addrOfs: 1, addrLen: 8, cmdOfs: 9, cmdLen: 8,
		completeLen: 17,
		flags:       flagFirstHalfOne,
	},
	ProtoOrtek: {
		family:     famBiphase,
		startPulse: 2000e-6, startPause: 1000e-6, startTol: tol10,
		unit: 500e-6, unitTol: tol20,
		addrOfs: 0, addrLen: 5, cmdOfs: 8, cmdLen: 6,
		completeLen: 17, // 14 payload bits, parity, 2 frame-counter bits
		repeats: 2, repeatGap: 60e-3,
	},
	ProtoTelefunken: {
		family:     famPulseDistance,
		startPulse: 600e-6, startPause: 1500e-6, startTol: tol10,
		pulse1: 600e-6, pause1: 1500e-6, pulse0: 600e-6, pause0: 600e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 15,
		completeLen: 15,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoRoomba: {
		family: famPulseWidth,
		pulse1: 3000e-6, pause1: 1000e-6, pulse0: 1000e-6, pause0: 3000e-6,
		pulseTol: tol20, pauseTol: tol20,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 7,
		completeLen: 7,
		flags:       flagStartIsData,
	},
	ProtoRCMM32: {
		family:     famRCMM,
		startPulse: 416e-6, startPause: 277e-6, startTol: tol10,
		pulse1: 166e-6, pulseTol: tol40, pauseTol: tolExact,
		addrOfs: 0, addrLen: 16, cmdOfs: 16, cmdLen: 16,
		completeLen: 32, minLen: 12, // 12 and 24 bit frames repack at finalize
	},
	ProtoRCMM24: {
		family:     famRCMM,
		startPulse: 416e-6, startPause: 277e-6, startTol: tol10,
		pulse1: 166e-6, pulseTol: tol40, pauseTol: tolExact,
		addrOfs: 0, addrLen: 12, cmdOfs: 12, cmdLen: 12,
		completeLen: 24,
	},
	ProtoRCMM12: {
		family:     famRCMM,
		startPulse: 416e-6, startPause: 277e-6, startTol: tol10,
		pulse1: 166e-6, pulseTol: tol40, pauseTol: tolExact,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 12,
		completeLen: 12,
	},
	ProtoSpeaker: {
		family:     famPulseWidth,
		startPulse: 440e-6, startPause: 2250e-6, startTol: tol10,
		pulse1: 1340e-6, pause1: 340e-6, pulse0: 500e-6, pause0: 1300e-6,
		pulseTol: tol20, pauseTol: tol20,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 10,
		completeLen: 10,
		flags:       flagStopBit,
		repeats:     2, repeatGap: 50e-3,
	},
	ProtoLGAir: {
		family:     famPulseDistance,
		startPulse: 9000e-6, startPause: 4500e-6, startTol: tol30,
		pulse1: 560e-6, pause1: 1690e-6, pulse0: 560e-6, pause0: 560e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 8, cmdOfs: 8, cmdLen: 16,
		completeLen: 28, // trailing 4 bits carry the nibble checksum
		flags: flagLSBFirst | flagStopBit,
	},
	ProtoSamsung48: {
		family:     famPulseDistance,
		startPulse: 4500e-6, startPause: 4500e-6, startTol: tol10,
		pulse1: 550e-6, pause1: 1650e-6, pulse0: 550e-6, pause0: 550e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 16, cmdOfs: 17, cmdLen: 16,
		completeLen: 49, minLen: 33,
		flags: flagLSBFirst | flagStopBit,
	},
	ProtoMerlin: {
		family:     famBiphase,
		startPulse: 294e-6, startPause: 882e-6, startTol: tol10,
		unit: 294e-6, unitTol: tol10,
		addrOfs: 1, addrLen: 8, cmdOfs: 9, cmdLen: 32,
		completeLen: 45, minLen: 10, // variable length, command width goes to Flags
		flags: flagFirstHalfOne,
	},
	ProtoPentax: {
		family:     famPulseDistance,
		startPulse: 13000e-6, startPause: 3000e-6, startTol: tol10,
		pulse1: 1000e-6, pause1: 3000e-6, pulse0: 1000e-6, pause0: 1000e-6,
		pulseTol: tol30, pauseTol: tol20,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 6,
		completeLen: 6,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoFan: {
		family:     famPulseWidth,
		startPulse: 1280e-6, startPause: 380e-6, startTol: tol10,
		pulse1: 1280e-6, pause1: 380e-6, pulse0: 380e-6, pause0: 1280e-6,
		pulseTol: tol20, pauseTol: tol20,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 11,
		completeLen: 11, // no stop bit; frames end on the tabulated length
	},
	ProtoS100: {
		family: famBiphase,
		unit:   889e-6, unitTol: tol20,
		addrOfs: 3, addrLen: 5, cmdOfs: 8, cmdLen: 9,
		completeLen: 17,
	},
	ProtoACP24: {
		family:     famPulseDistance,
		startPulse: 390e-6, startPause: 950e-6, startTol: tol10,
		pulse1: 390e-6, pause1: 1300e-6, pulse0: 390e-6, pause0: 950e-6,
		pulseTol: tol50, pauseTol: tol10,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 0, // scattered, see finalize
		completeLen: 70,
		flags:       flagStopBit,
	},
	ProtoTechnics: {
		family:     famPulseDistance,
		startPulse: 3488e-6, startPause: 3488e-6, startTol: tol10,
		pulse1: 872e-6, pause1: 2616e-6, pulse0: 872e-6, pause0: 872e-6,
		pulseTol: tol30, pauseTol: tol30,
		addrOfs: 0, addrLen: 0, cmdOfs: 0, cmdLen: 11,
		completeLen: 22, // second half is the bitwise inverse of the first
		flags: flagLSBFirst | flagStopBit,
	},
	ProtoPanasonic: {
		family:     famPulseDistance,
		startPulse: 3600e-6, startPause: 3600e-6, startTol: tol10,
		pulse1: 565e-6, pause1: 1140e-6, pulse0: 565e-6, pause0: 390e-6,
		pulseTol: tol40, pauseTol: tol20,
		addrOfs: 24, addrLen: 16, cmdOfs: 40, cmdLen: 16,
		completeLen: 56,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoMitsuHeavy: {
		family:     famPulseDistance,
		startPulse: 3200e-6, startPause: 1600e-6, startTol: tol10,
		pulse1: 400e-6, pause1: 1200e-6, pulse0: 400e-6, pause0: 400e-6,
		pulseTol: tol50, pauseTol: tol30,
		addrOfs: 0, addrLen: 8, cmdOfs: 8, cmdLen: 8,
		completeLen: 88,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoVincent: {
		family:     famPulseDistance,
		startPulse: 2500e-6, startPause: 4600e-6, startTol: tol10,
		pulse1: 550e-6, pause1: 1540e-6, pulse0: 550e-6, pause0: 550e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 16, cmdOfs: 16, cmdLen: 16,
		completeLen: 32,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoSamsungAH: {
		family:     famPulseDistance,
		startPulse: 2500e-6, startPause: 1900e-6, startTol: tol10,
		pulse1: 550e-6, pause1: 1650e-6, pulse0: 550e-6, pause0: 550e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 16, cmdOfs: 16, cmdLen: 16,
		completeLen: 48,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoIRMP16: {
		family:     famBiphase,
		startPulse: 780e-6, startPause: 958e-6, startTol: tol10,
		unit: 420e-6, unitTol: tol10,
		addrOfs: 0, addrLen: 8, cmdOfs: 8, cmdLen: 8,
		completeLen: 16,
		flags:       flagFirstHalfOne,
	},
	ProtoGree: {
		family:     famPulseDistance,
		startPulse: 9000e-6, startPause: 4500e-6, startTol: tol10,
		pulse1: 620e-6, pause1: 1600e-6, pulse0: 620e-6, pause0: 540e-6,
		pulseTol: tol40, pauseTol: tol20,
		addrOfs: 0, addrLen: 16, cmdOfs: 16, cmdLen: 16,
		completeLen: 35,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoRCII: {
		family:     famBiphase,
		startPulse: 3600e-6, startPause: 1800e-6, startTol: tol10,
		unit: 512e-6, unitTol: tol20,
		addrOfs: 8, addrLen: 8, cmdOfs: 16, cmdLen: 16,
		completeLen: 32,
		flags:       flagFirstHalfOne,
	},
	ProtoMetz: {
		family:     famPulseDistance,
		startPulse: 870e-6, startPause: 2300e-6, startTol: tol10,
		pulse1: 435e-6, pause1: 1680e-6, pulse0: 435e-6, pause0: 765e-6,
		pulseTol: tol40, pauseTol: tol20,
		addrOfs: 1, addrLen: 6, cmdOfs: 7, cmdLen: 6,
		completeLen: 22,
		flags:       flagStopBit,
	},
	ProtoOnkyo: { // pivot target of NEC, shares its row
		family:     famPulseDistance,
		startPulse: 9000e-6, startPause: 4500e-6, startTol: tol30,
		pulse1: 560e-6, pause1: 1690e-6, pulse0: 560e-6, pause0: 560e-6,
		pulseTol: tol40, pauseTol: tol30,
		addrOfs: 0, addrLen: 16, cmdOfs: 16, cmdLen: 16,
		completeLen: 32,
		flags:       flagLSBFirst | flagStopBit,
	},
	ProtoRadio1: {
		family:     famPulseDistance,
		startPulse: 3000e-6, startPause: 7000e-6, startTol: tol10,
		pulse1: 500e-6, pause1: 2500e-6, pulse0: 500e-6, pause0: 1000e-6,
		pulseTol: tol40, pauseTol: tol20,
		addrOfs: 0, addrLen: 7, cmdOfs: 7, cmdLen: 16,
		completeLen: 23,
		flags:       flagLSBFirst | flagStopBit,
	},
}
